package circlechess

import "testing"

func pv(side Side, pt PieceType, file, rank int) PieceView {
	return PieceView{Tile: Tile{File: file, Rank: rank}, Type: pt, Side: side}
}

func tl(file, rank int) Tile { return Tile{File: file, Rank: rank} }

// mustGame builds a position; both kings have to be listed by the caller.
func mustGame(t *testing.T, moveCount int, pieces ...PieceView) *Game {
	t.Helper()
	g, err := NewGameFromPieces(pieces, moveCount)
	if err != nil {
		t.Fatalf("build position: %v", err)
	}
	return g
}

// Kings parked on the seam rank, out of the way of most test lines.
var (
	whiteKing = pv(White, PieceKing, 14, 7)
	blackKing = pv(Black, PieceKing, 4, 7)
)
