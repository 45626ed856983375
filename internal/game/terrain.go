package game

import (
	"math"
	"math/rand/v2"
)

// Discovery summary:
// - Charts are square tile grids that wrap like a torus, so every voyage line stays in bounds.
// - Depth is carved from seeded lattice noise, land sits at exactly zero and blocks passage.
// - Tiles are 4 m on a side, matching the scale the physics and fishing radii assume.

// TileSize is the edge length of one chart tile in meters.
const TileSize = 4.0

// MaxWaterDepth is the deepest water the generator produces, in meters.
const MaxWaterDepth = 18.0

// shallowCutoff splits shallow water from deep water, in meters.
const shallowCutoff = 5.0

// landCut is the noise level above which a tile becomes shore.
const landCut = 0.62

type TerrainClass uint8

const (
	TerrainShore TerrainClass = iota
	TerrainShallow
	TerrainDeep
)

func (c TerrainClass) String() string {
	switch c {
	case TerrainShore:
		return "shore"
	case TerrainShallow:
		return "shallow"
	default:
		return "deep"
	}
}

func ClassifyDepth(depth float64) TerrainClass {
	switch {
	case depth <= 0:
		return TerrainShore
	case depth < shallowCutoff:
		return TerrainShallow
	default:
		return TerrainDeep
	}
}

// DepthGrid is the seabed chart. Depths are meters of water per tile in
// row-major order; zero means shore and is impassable.
type DepthGrid struct {
	EdgeTiles int       `json:"edge_tiles"`
	Depths    []float64 `json:"depths"`
}

// noiseOctaves are the lattice spacings (in tiles) and weights blended into
// the depth field. Spacings must divide any supported edge length so the
// field stays seamless across the torus seam.
var noiseOctaves = []struct {
	spacing int
	weight  float64
}{
	{16, 0.55},
	{8, 0.30},
	{4, 0.15},
}

// NewDepthGrid carves a chart for the given seed. The same seed and edge
// always produce the same chart.
func NewDepthGrid(seed int64, edgeTiles int) *DepthGrid {
	grid := &DepthGrid{
		EdgeTiles: edgeTiles,
		Depths:    make([]float64, edgeTiles*edgeTiles),
	}

	for ty := 0; ty < edgeTiles; ty++ {
		for tx := 0; tx < edgeTiles; tx++ {
			n := 0.0
			for octave, band := range noiseOctaves {
				n += band.weight * latticeNoiseAt(seed, uint32(octave), tx, ty, band.spacing, edgeTiles)
			}
			grid.Depths[ty*edgeTiles+tx] = depthFromNoise(n)
		}
	}

	return grid
}

// latticeNoiseAt samples smoothed value noise at tile (tx, ty) for one
// octave. Lattice corners wrap modulo the period so the noise is continuous
// across the map seam.
func latticeNoiseAt(seed int64, octave uint32, tx, ty, spacing, edgeTiles int) float64 {
	period := edgeTiles / spacing
	if period < 1 {
		period = 1
	}

	fx := float64(tx) / float64(spacing)
	fy := float64(ty) / float64(spacing)
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tX := smoothstep(fx - float64(x0))
	tY := smoothstep(fy - float64(y0))

	corner := func(cx, cy int) float64 {
		return noiseLattice(seed, octave, int32(floorMod(cx, period)), int32(floorMod(cy, period)))
	}

	top := lerp(corner(x0, y0), corner(x0+1, y0), tX)
	bottom := lerp(corner(x0, y0+1), corner(x0+1, y0+1), tX)
	return lerp(top, bottom, tY)
}

func depthFromNoise(n float64) float64 {
	if n >= landCut {
		return 0
	}
	depth := (landCut - n) / landCut * MaxWaterDepth
	if depth > MaxWaterDepth {
		depth = MaxWaterDepth
	}
	return depth
}

func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// MapSize is the edge length of the chart in meters.
func (g *DepthGrid) MapSize() float64 {
	return float64(g.EdgeTiles) * TileSize
}

func (g *DepthGrid) tileIndex(tx, ty int) int {
	tx = floorMod(tx, g.EdgeTiles)
	ty = floorMod(ty, g.EdgeTiles)
	return ty*g.EdgeTiles + tx
}

// DepthAtTile reports the water depth of a tile, wrapping coordinates onto
// the torus.
func (g *DepthGrid) DepthAtTile(tx, ty int) float64 {
	return g.Depths[g.tileIndex(tx, ty)]
}

// TileAt gives the tile indices under a world position.
func (g *DepthGrid) TileAt(pos Vec2) (int, int) {
	wrapped := g.WrapPoint(pos)
	return int(wrapped.X / TileSize), int(wrapped.Y / TileSize)
}

// DepthAt reports the water depth in meters under a world position.
func (g *DepthGrid) DepthAt(pos Vec2) float64 {
	tx, ty := g.TileAt(pos)
	return g.DepthAtTile(tx, ty)
}

// IsShore reports whether the position sits on an impassable shore tile.
func (g *DepthGrid) IsShore(pos Vec2) bool {
	return g.DepthAt(pos) <= 0
}

func (g *DepthGrid) IsPassable(pos Vec2) bool {
	return g.DepthAt(pos) > 0
}

// TileCenter gives the world position of a tile's center point.
func (g *DepthGrid) TileCenter(tx, ty int) Vec2 {
	tx = floorMod(tx, g.EdgeTiles)
	ty = floorMod(ty, g.EdgeTiles)
	return vec2(float64(tx)*TileSize+TileSize/2, float64(ty)*TileSize+TileSize/2)
}

// WrapPoint maps a position onto the torus so both components land in
// [0, MapSize). Floating point remainders can return the modulus itself,
// which would index one tile past the edge, so that case snaps to zero.
func (g *DepthGrid) WrapPoint(pos Vec2) Vec2 {
	size := g.MapSize()
	x := math.Mod(pos.X, size)
	if x < 0 {
		x += size
	}
	y := math.Mod(pos.Y, size)
	if y < 0 {
		y += size
	}
	if x >= size {
		x = 0
	}
	if y >= size {
		y = 0
	}
	return vec2(x, y)
}

// TorusDelta is the shortest vector from one position to another across the
// wrapped chart.
func (g *DepthGrid) TorusDelta(from, to Vec2) Vec2 {
	size := g.MapSize()
	half := size / 2

	delta := g.WrapPoint(to).Sub(g.WrapPoint(from))
	if math.Abs(delta.X) > half {
		delta.X -= signum(delta.X) * size
	}
	if math.Abs(delta.Y) > half {
		delta.Y -= signum(delta.Y) * size
	}
	return delta
}

// TorusDistance is the shortest distance between two positions on the
// wrapped chart.
func (g *DepthGrid) TorusDistance(from, to Vec2) float64 {
	return g.TorusDelta(from, to).Magnitude()
}

// RandomLocationWhere draws a uniform position whose tile depth satisfies
// pred. Rejection sampling covers the common case; a bounded scan from a
// random tile picks up charts where matching tiles are rare. Returns false
// when no tile qualifies.
func (g *DepthGrid) RandomLocationWhere(rng *rand.Rand, pred func(depth float64) bool) (Vec2, bool) {
	size := g.MapSize()
	for attempt := 0; attempt < 64; attempt++ {
		candidate := vec2(rng.Float64()*size, rng.Float64()*size)
		if pred(g.DepthAt(candidate)) {
			return candidate, true
		}
	}

	total := g.EdgeTiles * g.EdgeTiles
	start := rng.IntN(total)
	for offset := 0; offset < total; offset++ {
		idx := (start + offset) % total
		if !pred(g.Depths[idx]) {
			continue
		}
		tx := idx % g.EdgeTiles
		ty := idx / g.EdgeTiles
		jitter := vec2((rng.Float64()-0.5)*TileSize, (rng.Float64()-0.5)*TileSize)
		return g.TileCenter(tx, ty).Add(jitter), true
	}

	return Vec2{}, false
}

// RandomOpenWater draws a uniform passable position.
func (g *DepthGrid) RandomOpenWater(rng *rand.Rand) (Vec2, bool) {
	return g.RandomLocationWhere(rng, func(depth float64) bool { return depth > 0 })
}

// PassableTileCount reports how many tiles of the chart are open water.
func (g *DepthGrid) PassableTileCount() int {
	count := 0
	for _, depth := range g.Depths {
		if depth > 0 {
			count++
		}
	}
	return count
}
