package circlechess

import (
	"reflect"
	"testing"
)

func pathOf(g *Game, from, to Tile) []Tile {
	p := g.PieceAt(from)
	if p == nil {
		return nil
	}
	return MovePath(p, to, g.Army(p.Side.Opponent()), g.Army(p.Side))
}

func TestJumpPieces(t *testing.T) {
	g := mustGame(t, 0,
		whiteKing, blackKing,
		pv(White, PieceKnight, 23, 3),
		pv(White, PieceKnight, 2, 5),
		pv(Black, PiecePawn, 1, 3),
	)

	cases := []struct {
		name     string
		from, to Tile
		want     []Tile
	}{
		{"wraps ring", tl(23, 3), tl(1, 4), []Tile{tl(1, 4)}},
		{"wraps ring backwards", tl(23, 3), tl(22, 1), []Tile{tl(22, 1)}},
		{"not an L", tl(23, 3), tl(1, 5), nil},
		{"captures", tl(2, 5), tl(1, 3), []Tile{tl(1, 3)}},
		{"missing seam tile", tl(2, 5), tl(1, 7), nil},
		{"seam tile that exists", tl(2, 5), tl(3, 7), []Tile{tl(3, 7)}},
		{"king one step", tl(14, 7), tl(15, 6), []Tile{tl(15, 6)}},
		{"king two steps", tl(14, 7), tl(16, 7), nil},
	}
	for _, tc := range cases {
		got := pathOf(g, tc.from, tc.to)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: path %v->%v = %v, want %v", tc.name, tc.from, tc.to, got, tc.want)
		}
	}
}

func TestRookRadialAndRing(t *testing.T) {
	g := mustGame(t, 0,
		whiteKing, blackKing,
		pv(White, PieceRook, 8, 1),
		pv(Black, PiecePawn, 8, 4),
		pv(Black, PieceKnight, 11, 1),
	)

	if got, want := pathOf(g, tl(8, 1), tl(8, 4)), []Tile{tl(8, 2), tl(8, 3), tl(8, 4)}; !reflect.DeepEqual(got, want) {
		t.Fatalf("radial capture path = %v, want %v", got, want)
	}
	if got := pathOf(g, tl(8, 1), tl(8, 5)); got != nil {
		t.Fatalf("rook jumped over a capture: %v", got)
	}
	if got, want := pathOf(g, tl(8, 1), tl(8, 0)), []Tile{tl(8, 0)}; !reflect.DeepEqual(got, want) {
		t.Fatalf("inward path = %v, want %v", got, want)
	}
	if got, want := pathOf(g, tl(8, 1), tl(11, 1)), []Tile{tl(9, 1), tl(10, 1), tl(11, 1)}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ring capture path = %v, want %v", got, want)
	}
	// (12,1) is behind the knight going up, but free going down round the ring.
	got := pathOf(g, tl(8, 1), tl(12, 1))
	if len(got) != RingFiles-4 || got[0] != tl(7, 1) || got[len(got)-1] != tl(12, 1) {
		t.Fatalf("long way round = %v", got)
	}
	if got := pathOf(g, tl(8, 1), tl(9, 2)); got != nil {
		t.Fatalf("rook moved diagonally: %v", got)
	}
}

func TestRookBlockedBySeam(t *testing.T) {
	g := mustGame(t, 1,
		pv(White, PieceKing, 5, 0),
		pv(Black, PieceKing, 5, 5),
		pv(Black, PieceRook, 9, 7),
	)
	// Both ways round the outer rank cross the cut-away tiles.
	if got := pathOf(g, tl(9, 7), tl(14, 7)); got != nil {
		t.Fatalf("rook crossed the seam: %v", got)
	}
	if got := pathOf(g, tl(9, 7), tl(2, 7)); len(got) != 7 {
		t.Fatalf("rook along its own half: %v", got)
	}
}

func TestBishopDiagonals(t *testing.T) {
	g := mustGame(t, 0,
		whiteKing, blackKing,
		pv(White, PieceBishop, 23, 3),
		pv(Black, PiecePawn, 2, 0),
		pv(White, PiecePawn, 21, 1),
	)

	if got, want := pathOf(g, tl(23, 3), tl(1, 1)), []Tile{tl(0, 2), tl(1, 1)}; !reflect.DeepEqual(got, want) {
		t.Fatalf("wrapped diagonal = %v, want %v", got, want)
	}
	if got, want := pathOf(g, tl(23, 3), tl(2, 0)), []Tile{tl(0, 2), tl(1, 1), tl(2, 0)}; !reflect.DeepEqual(got, want) {
		t.Fatalf("diagonal capture = %v, want %v", got, want)
	}
	if got := pathOf(g, tl(23, 3), tl(21, 1)); got != nil {
		t.Fatalf("bishop captured its own pawn: %v", got)
	}
	if got := pathOf(g, tl(23, 3), tl(20, 0)); got != nil {
		t.Fatalf("bishop passed through its own pawn: %v", got)
	}
	if got := pathOf(g, tl(23, 3), tl(1, 2)); got != nil {
		t.Fatalf("not a diagonal: %v", got)
	}
	if got, want := pathOf(g, tl(23, 3), tl(19, 7)), []Tile{tl(22, 4), tl(21, 5), tl(20, 6), tl(19, 7)}; !reflect.DeepEqual(got, want) {
		t.Fatalf("outward diagonal = %v, want %v", got, want)
	}
}

// Walks every diagonal on an empty board: a path exists exactly when every
// stepped tile exists, so the off-diagonal guard in bishopPath never fires.
func TestBishopGuardNeverRejectsTrueDiagonal(t *testing.T) {
	white, black := newArmy(White), newArmy(Black)
	for from := 0; from < NumTiles; from++ {
		src := tileOf(from)
		if !src.Exists() {
			continue
		}
		for to := 0; to < NumTiles; to++ {
			dst := tileOf(to)
			dr, df := dst.Rank-src.Rank, fileDelta(src.File, dst.File)
			if dr == 0 || abs(dr) != abs(df) || !dst.Exists() {
				continue
			}
			allExist := true
			for i := 1; i <= abs(dr); i++ {
				if !TileExists(wrapFile(src.File+i*sign(df)), src.Rank+i*sign(dr)) {
					allExist = false
				}
			}
			got := bishopPath(src, dst, black, white)
			if allExist && len(got) != abs(dr) {
				t.Fatalf("bishop %v -> %v: path %v, want %d steps", src, dst, got, abs(dr))
			}
			if !allExist && got != nil {
				t.Fatalf("bishop %v -> %v crossed a missing tile: %v", src, dst, got)
			}
		}
	}
}

func TestQueenIsRookThenBishop(t *testing.T) {
	g := mustGame(t, 0,
		whiteKing, blackKing,
		pv(White, PieceQueen, 10, 3),
	)
	if got := pathOf(g, tl(10, 3), tl(10, 0)); len(got) != 3 {
		t.Fatalf("queen radial = %v", got)
	}
	if got := pathOf(g, tl(10, 3), tl(13, 3)); len(got) != 3 {
		t.Fatalf("queen ring = %v", got)
	}
	if got := pathOf(g, tl(10, 3), tl(8, 1)); len(got) != 2 {
		t.Fatalf("queen diagonal = %v", got)
	}
	if got := pathOf(g, tl(10, 3), tl(11, 5)); got != nil {
		t.Fatalf("queen moved like a knight: %v", got)
	}
}

func TestPawnRules(t *testing.T) {
	g := mustGame(t, 0,
		whiteKing, blackKing,
		pv(White, PiecePawn, 16, 6),
		pv(White, PiecePawn, 20, 5),
		pv(Black, PiecePawn, 20, 4),
		pv(Black, PieceKnight, 0, 3),
		pv(White, PiecePawn, 23, 4),
		pv(Black, PiecePawn, 10, 3),
	)

	cases := []struct {
		name     string
		from, to Tile
		want     []Tile
	}{
		{"one step", tl(16, 6), tl(16, 5), []Tile{tl(16, 5)}},
		{"two steps from start", tl(16, 6), tl(16, 4), []Tile{tl(16, 5), tl(16, 4)}},
		{"three steps", tl(16, 6), tl(16, 3), nil},
		{"backwards", tl(20, 5), tl(20, 6), nil},
		{"straight into enemy", tl(20, 5), tl(20, 4), nil},
		{"two steps off start rank", tl(23, 4), tl(23, 2), nil},
		{"diagonal without victim", tl(16, 6), tl(17, 5), nil},
		{"diagonal capture over ring end", tl(23, 4), tl(0, 3), []Tile{tl(0, 3)}},
		{"black pawn also heads inward", tl(10, 3), tl(10, 2), []Tile{tl(10, 2)}},
	}
	for _, tc := range cases {
		got := pathOf(g, tc.from, tc.to)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: path %v->%v = %v, want %v", tc.name, tc.from, tc.to, got, tc.want)
		}
	}
}

func TestMovePathDoesNotMutate(t *testing.T) {
	g := NewGame()
	before := g.Encode()
	p := g.PieceAt(tl(14, 6))
	tile := p.Tile
	for idx := 0; idx < NumTiles; idx++ {
		MovePath(p, tileOf(idx), g.Army(Black), g.Army(White))
	}
	if p.Tile != tile || p.Moved {
		t.Fatalf("piece mutated by MovePath: %+v", p)
	}
	if after := g.Encode(); after != before {
		t.Fatalf("board mutated by MovePath:\n%s\n%s", before, after)
	}
}
