package board

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// Source is the random stream piece types are drawn from.
// *frand.RNG and *math/rand.Rand both satisfy it.
type Source interface {
	Intn(n int) int
}

// NewSource returns a deterministic ChaCha-based stream for a non-zero seed
// and an entropy-seeded one for seed 0.
func NewSource(seed int64) Source {
	if seed == 0 {
		return frand.New()
	}
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, uint64(seed))
	return frand.NewCustom(key, 1024, 12)
}

// Generator draws uniformly random piece types from the first n real types.
type Generator struct {
	src   Source
	types int
}

// NewGenerator creates a generator over the first types piece types.
// types is clamped to [1, NumPieceTypes].
func NewGenerator(src Source, types int) *Generator {
	if types < 1 {
		types = 1
	}
	if types > NumPieceTypes {
		types = NumPieceTypes
	}
	return &Generator{src: src, types: types}
}

// Next returns a random piece type. It never returns Unknown.
func (g *Generator) Next() PieceType {
	return PieceType(g.src.Intn(g.types) + 1)
}

// NextExcept returns a random piece type different from except.
// If except is Unknown, outside the generator's range, or the generator only
// has one type, it behaves like Next.
func (g *Generator) NextExcept(except PieceType) PieceType {
	if !except.Valid() || int(except) > g.types || g.types == 1 {
		return g.Next()
	}
	v := PieceType(g.src.Intn(g.types-1) + 1)
	if v >= except {
		v++
	}
	return v
}
