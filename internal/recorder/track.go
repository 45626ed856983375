package recorder

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/appengine-ltd/sail-it/internal/game"
)

var trackBufferPool = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

// encodeTrack packs a polyline as little-endian float64 pairs and
// compresses it with LZ4.
func encodeTrack(points []game.Vec2) ([]byte, error) {
	raw := make([]byte, 0, len(points)*16)
	var scratch [8]byte
	for _, p := range points {
		binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(p.X))
		raw = append(raw, scratch[:]...)
		binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(p.Y))
		raw = append(raw, scratch[:]...)
	}

	buf := trackBufferPool.Get().(*bytes.Buffer)
	defer trackBufferPool.Put(buf)
	buf.Reset()

	w := lz4.NewWriter(buf)
	if _, err := w.Write(raw); err != nil {
		return nil, fmt.Errorf("compressing track: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing track writer: %w", err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// decodeTrack reverses encodeTrack.
func decodeTrack(data []byte) ([]game.Vec2, error) {
	var raw bytes.Buffer
	if _, err := raw.ReadFrom(lz4.NewReader(bytes.NewReader(data))); err != nil {
		return nil, fmt.Errorf("decompressing track: %w", err)
	}

	b := raw.Bytes()
	if len(b)%16 != 0 {
		return nil, fmt.Errorf("track payload is %d bytes, not a whole number of points", len(b))
	}

	points := make([]game.Vec2, 0, len(b)/16)
	for i := 0; i+16 <= len(b); i += 16 {
		points = append(points, game.Vec2{
			X: math.Float64frombits(binary.LittleEndian.Uint64(b[i : i+8])),
			Y: math.Float64frombits(binary.LittleEndian.Uint64(b[i+8 : i+16])),
		})
	}
	return points, nil
}
