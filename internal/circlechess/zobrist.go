package circlechess

import "sync"

const zobristPieceTypes = int(PieceKing) + 1 // index 0 unused

var (
	zobristOnce sync.Once

	zobristPieces [2][zobristPieceTypes][NumTiles]uint64
	zobristSide   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for pt := 1; pt < zobristPieceTypes; pt++ {
				for idx := 0; idx < NumTiles; idx++ {
					zobristPieces[side][pt][idx] = next()
				}
			}
		}
		zobristSide = next()
	})
}

func pieceHashKey(pt PieceType, side Side, t Tile) uint64 {
	if (side != White && side != Black) || !inBounds(t) {
		return 0
	}
	if pt <= PieceNone || int(pt) >= zobristPieceTypes {
		return 0
	}
	return zobristPieces[side][pt][indexOf(t.File, t.Rank)]
}

// CalculateHash recomputes the Zobrist key of the position from scratch.
// Move keeps Hash up to date incrementally.
func (g *Game) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for _, a := range g.armies {
		for _, p := range a.pieces {
			h ^= pieceHashKey(p.Type, p.Side, p.Tile)
		}
	}
	if g.CurrentSide() == Black {
		h ^= zobristSide
	}
	return h
}
