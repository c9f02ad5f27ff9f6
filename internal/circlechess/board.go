package circlechess

import "unicode"

const (
	Files     = 12        // files per half board
	RingFiles = 2 * Files // the file axis wraps here
	Ranks     = 8

	NumTiles = RingFiles * Ranks

	SeamRank      = Ranks - 1 // outer rank, missing four tiles where the halves meet
	PawnStartRank = Ranks - 2
	PromotionRank = 0
)

func indexOf(file, rank int) int { return rank*RingFiles + file }
func tileOf(idx int) Tile        { return Tile{File: idx % RingFiles, Rank: idx / RingFiles} }

func inBounds(t Tile) bool {
	return t.File >= 0 && t.File < RingFiles && t.Rank >= 0 && t.Rank < Ranks
}

// TileExists reports whether (file, rank) is a square of the board. On the
// seam rank the files {0, 1, F-2, F-1} of each half are cut away.
func TileExists(file, rank int) bool {
	if file < 0 || file >= RingFiles || rank < 0 || rank >= Ranks {
		return false
	}
	if rank != SeamRank {
		return true
	}
	switch file % Files {
	case 0, 1, Files - 2, Files - 1:
		return false
	}
	return true
}

// wrapFile folds any integer onto the ring [0, RingFiles).
func wrapFile(f int) int {
	f %= RingFiles
	if f < 0 {
		f += RingFiles
	}
	return f
}

// fileDelta returns the signed file distance from a to b taking the short
// way round the ring, in (-Files, Files].
func fileDelta(a, b int) int {
	d := wrapFile(b - a)
	if d > Files {
		d -= RingFiles
	}
	return d
}

// Both armies start on the outer ring, so every pawn advances toward the
// centre.
func pawnDir(side Side) int {
	if side == NoSide {
		return 0
	}
	return -1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

var letterToPieceType = map[rune]PieceType{
	'p': PiecePawn,
	'n': PieceKnight,
	'b': PieceBishop,
	'r': PieceRook,
	'q': PieceQueen,
	'k': PieceKing,
}

var pieceTypeToLetter = map[PieceType]rune{
	PiecePawn:   'p',
	PieceKnight: 'n',
	PieceBishop: 'b',
	PieceRook:   'r',
	PieceQueen:  'q',
	PieceKing:   'k',
}

// White is upper case, Black lower case.
func pieceToChar(pt PieceType, side Side) rune {
	base, ok := pieceTypeToLetter[pt]
	if !ok {
		return '.'
	}
	if side == White {
		return unicode.ToUpper(base)
	}
	return base
}

var backRankOrder = [8]PieceType{
	PieceRook, PieceKnight, PieceBishop, PieceQueen,
	PieceKing, PieceBishop, PieceKnight, PieceRook,
}

// Each army fills the eight existing seam-rank files of its half, pawns in
// front of them.
func initialPieces() []PieceView {
	out := make([]PieceView, 0, 32)
	for _, army := range []struct {
		side  Side
		first int
	}{
		{White, Files + 2},
		{Black, 2},
	} {
		for i, pt := range backRankOrder {
			out = append(out, PieceView{
				Tile: Tile{File: army.first + i, Rank: SeamRank},
				Type: pt,
				Side: army.side,
			})
		}
		for i := 0; i < len(backRankOrder); i++ {
			out = append(out, PieceView{
				Tile: Tile{File: army.first + i, Rank: PawnStartRank},
				Type: PiecePawn,
				Side: army.side,
			})
		}
	}
	return out
}
