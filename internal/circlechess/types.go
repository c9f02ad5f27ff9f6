package circlechess

type Side int8

const (
	NoSide Side = -1
	White  Side = 0
	Black  Side = 1
)

func (s Side) Opponent() Side {
	switch s {
	case White:
		return Black
	case Black:
		return White
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "none"
}

type PieceType int8

const (
	PieceNone PieceType = iota
	PiecePawn
	PieceKnight
	PieceBishop
	PieceRook
	PieceQueen
	PieceKing
)

var pieceTypeNames = [...]string{
	PieceNone:   "none",
	PiecePawn:   "pawn",
	PieceKnight: "knight",
	PieceBishop: "bishop",
	PieceRook:   "rook",
	PieceQueen:  "queen",
	PieceKing:   "king",
}

func (pt PieceType) String() string {
	if pt < 0 || int(pt) >= len(pieceTypeNames) {
		return "none"
	}
	return pieceTypeNames[pt]
}

// Tile is a (file, rank) pair. File runs around the ring, rank runs outward
// from the centre.
type Tile struct {
	File int
	Rank int
}

// Exists reports whether the tile is a playable square of the board.
func (t Tile) Exists() bool { return TileExists(t.File, t.Rank) }

// Piece is owned by exactly one Army for as long as it is on the board.
// Moved is set by every applied move; no movement rule reads it yet.
type Piece struct {
	Type  PieceType
	Side  Side
	Tile  Tile
	Moved bool
}

// PieceView is the read-only triple handed to renderers.
type PieceView struct {
	Tile Tile
	Type PieceType
	Side Side
}

type Move struct {
	From Tile
	To   Tile
}

// MoveResult describes an attempted move. When OK is false nothing else is
// set and the game is untouched.
type MoveResult struct {
	OK       bool
	From     Tile
	To       Tile
	Captured PieceType
	Promoted bool
	Check    bool
	Checked  Tile // king tile under attack, valid when Check is set
}
