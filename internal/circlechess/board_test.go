package circlechess

import "testing"

func TestTileExistence(t *testing.T) {
	missing := 0
	for f := 0; f < RingFiles; f++ {
		for r := 0; r < Ranks; r++ {
			got := TileExists(f, r)
			want := true
			if r == Ranks-1 {
				switch f % Files {
				case 0, 1, Files - 2, Files - 1:
					want = false
				}
			}
			if got != want {
				t.Fatalf("TileExists(%d, %d) = %v, want %v", f, r, got, want)
			}
			if !got {
				missing++
			}
		}
	}
	if missing != 8 {
		t.Fatalf("missing tiles = %d, want 8 (four per half)", missing)
	}

	for _, tc := range []Tile{{-1, 0}, {RingFiles, 0}, {0, -1}, {3, Ranks}} {
		if tc.Exists() {
			t.Fatalf("%v should be off the board", tc)
		}
	}
}

func TestFileDeltaTakesShortWay(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{0, 3, 3},
		{3, 0, -3},
		{23, 1, 2},
		{1, 23, -2},
		{0, 12, 12},
		{5, 5, 0},
	}
	for _, tc := range cases {
		if got := fileDelta(tc.a, tc.b); got != tc.want {
			t.Errorf("fileDelta(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestInitialPiecesStandOnExistingTiles(t *testing.T) {
	for _, p := range initialPieces() {
		if !p.Tile.Exists() {
			t.Fatalf("%v %v placed on missing tile %v", p.Side, p.Type, p.Tile)
		}
	}
}
