package engine

import "circlechess/internal/circlechess"

// Kings are never captured, so they carry no material value.
var pieceValue = map[circlechess.PieceType]int{
	circlechess.PiecePawn:   100,
	circlechess.PieceKnight: 300,
	circlechess.PieceBishop: 320,
	circlechess.PieceRook:   500,
	circlechess.PieceQueen:  900,
	circlechess.PieceKing:   0,
}

const (
	checkBonus = 40
	tempoBonus = 8
)

// Evaluate scores the game from White's point of view: positive favours
// White, negative favours Black.
func Evaluate(g *circlechess.Game) int {
	score := 0
	for _, p := range g.Pieces() {
		v := pieceValue[p.Type] + positionalBonus(p)
		if p.Side == circlechess.White {
			score += v
		} else {
			score -= v
		}
	}

	if tile, ok := g.Checked(); ok {
		// the marker always names the king of the side to move
		if victim := g.PieceAt(tile); victim != nil && victim.Side == circlechess.Black {
			score += checkBonus
		} else {
			score -= checkBonus
		}
	}

	if g.CurrentSide() == circlechess.White {
		score += tempoBonus
	} else {
		score -= tempoBonus
	}
	return score
}

// PieceValue is the material value of pt in centipawns.
func PieceValue(pt circlechess.PieceType) int { return pieceValue[pt] }

func positionalBonus(p circlechess.PieceView) int {
	// distance walked inward from the pawn line
	advance := circlechess.PawnStartRank - p.Tile.Rank
	switch p.Type {
	case circlechess.PiecePawn:
		b := advance * 6
		if p.Tile.Rank <= 2 {
			b += 20 // close to queening
		}
		return b
	case circlechess.PieceKnight, circlechess.PieceBishop:
		// minor pieces are cramped on the seam rank
		if p.Tile.Rank == circlechess.SeamRank {
			return -10
		}
		return 4
	case circlechess.PieceRook, circlechess.PieceQueen:
		// inner rings are short, outer rings long; middle ranks see both
		if p.Tile.Rank >= 2 && p.Tile.Rank <= 5 {
			return 6
		}
		return 0
	case circlechess.PieceKing:
		if p.Tile.Rank == circlechess.SeamRank {
			return 10
		}
		return -advance * 4
	}
	return 0
}
