package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math/rand/v2"

	"lukechampine.com/blake3"
)

func seededRNG(seed int64, salt string) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, salt+":a"), seedWord(seed, salt+":b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// deterministicRoll yields a stable float in [0,1) for a seed/context tuple,
// so replays produce identical outcomes without consuming stream state.
func deterministicRoll(seed int64, salt string, parts ...uint64) float64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	var buf [8]byte
	for _, p := range parts {
		binary.LittleEndian.PutUint64(buf[:], p)
		_, _ = h.Write(buf[:])
	}
	return float64(h.Sum64()&0x7fffffff) / float64(0x7fffffff)
}

// noiseLattice hashes a lattice point of the terrain noise field into [0,1).
// BLAKE3 keeps the field stable across platforms and Go releases, unlike
// stream-based generators whose draw order would leak into the map.
func noiseLattice(seed int64, octave uint32, x, y int32) float64 {
	var buf [20]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(seed))
	binary.LittleEndian.PutUint32(buf[8:], octave)
	binary.LittleEndian.PutUint32(buf[12:], uint32(x))
	binary.LittleEndian.PutUint32(buf[16:], uint32(y))
	digest := blake3.Sum256(buf[:])
	v := binary.LittleEndian.Uint64(digest[:8])
	return float64(v>>11) / float64(1<<53)
}

// epochRNG derives the wind stream for one wind epoch.
func epochRNG(seed int64, epoch uint64) *rand.Rand {
	// #nosec G404
	return rand.New(rand.NewPCG(
		seedWord(seed, fmt.Sprintf("wind:%d:a", epoch)),
		seedWord(seed, fmt.Sprintf("wind:%d:b", epoch)),
	))
}
