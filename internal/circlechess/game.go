package circlechess

import (
	"errors"
	"fmt"
)

// Game is one session's board state: both armies, the move counter and the
// tile of the king currently in check. It is not safe for concurrent use.
type Game struct {
	armies    [2]*Army
	moveCount int
	checked   Tile
	inCheck   bool
	hash      uint64
}

var ErrInvalidPosition = errors.New("invalid position")

// NewGame sets up the opening position with White to move.
func NewGame() *Game {
	g, err := NewGameFromPieces(initialPieces(), 0)
	if err != nil {
		panic(err)
	}
	return g
}

// NewGameFromPieces builds an arbitrary position. moveCount fixes the side
// to move by its parity. The check marker is derived from the position as
// if the side that moved last had just played.
func NewGameFromPieces(pieces []PieceView, moveCount int) (*Game, error) {
	if moveCount < 0 {
		return nil, fmt.Errorf("%w: negative move count", ErrInvalidPosition)
	}
	g := &Game{
		armies:    [2]*Army{newArmy(White), newArmy(Black)},
		moveCount: moveCount,
	}
	kings := [2]int{}
	for _, pv := range pieces {
		if pv.Side != White && pv.Side != Black {
			return nil, fmt.Errorf("%w: piece without a side at %v", ErrInvalidPosition, pv.Tile)
		}
		if pv.Type <= PieceNone || pv.Type > PieceKing {
			return nil, fmt.Errorf("%w: unknown piece type at %v", ErrInvalidPosition, pv.Tile)
		}
		if !pv.Tile.Exists() {
			return nil, fmt.Errorf("%w: tile %v does not exist", ErrInvalidPosition, pv.Tile)
		}
		if g.PieceAt(pv.Tile) != nil {
			return nil, fmt.Errorf("%w: tile %v taken twice", ErrInvalidPosition, pv.Tile)
		}
		if pv.Type == PieceKing {
			kings[pv.Side]++
		}
		g.armies[pv.Side].place(&Piece{Type: pv.Type, Side: pv.Side, Tile: pv.Tile})
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return nil, fmt.Errorf("%w: need exactly one king per side", ErrInvalidPosition)
	}
	g.updateCheck(g.CurrentSide().Opponent())
	g.hash = g.CalculateHash()
	return g, nil
}

// CurrentSide is White after an even number of moves, Black after an odd one.
func (g *Game) CurrentSide() Side {
	if g.moveCount%2 == 0 {
		return White
	}
	return Black
}

func (g *Game) MoveCount() int { return g.moveCount }
func (g *Game) Hash() uint64   { return g.hash }

func (g *Game) Army(side Side) *Army {
	if side != White && side != Black {
		return nil
	}
	return g.armies[side]
}

// Checked returns the tile of the king under attack, if any.
func (g *Game) Checked() (Tile, bool) {
	return g.checked, g.inCheck
}

func (g *Game) PieceAt(t Tile) *Piece {
	if p := g.armies[White].At(t); p != nil {
		return p
	}
	return g.armies[Black].At(t)
}

// Pieces lists every piece, White first.
func (g *Game) Pieces() []PieceView {
	out := make([]PieceView, 0, g.armies[White].Len()+g.armies[Black].Len())
	for _, a := range g.armies {
		for _, p := range a.pieces {
			out = append(out, PieceView{Tile: p.Tile, Type: p.Type, Side: p.Side})
		}
	}
	return out
}

func (g *Game) Clone() *Game {
	c := *g
	c.armies = [2]*Army{g.armies[White].clone(), g.armies[Black].clone()}
	return &c
}

// MovePiece attempts to move the piece on start to target for the side to
// move. It either applies the whole move or changes nothing.
func (g *Game) MovePiece(start, target Tile) bool {
	return g.Move(start, target).OK
}

// Move is MovePiece reporting what happened.
func (g *Game) Move(start, target Tile) MoveResult {
	if !start.Exists() || !target.Exists() {
		return MoveResult{}
	}
	side := g.CurrentSide()
	own, opp := g.armies[side], g.armies[side.Opponent()]

	pc := own.At(start)
	if pc == nil {
		return MoveResult{}
	}
	path := MovePath(pc, target, opp, own)
	if len(path) == 0 {
		return MoveResult{}
	}
	dest := path[len(path)-1]

	captured := opp.At(dest)
	if captured != nil && captured.Type == PieceKing {
		return MoveResult{}
	}

	// Nothing has been touched so far; from here on the move commits.
	res := MoveResult{OK: true, From: start, To: dest}
	h := g.hash
	h ^= pieceHashKey(pc.Type, side, start)
	if captured != nil {
		res.Captured = captured.Type
		h ^= pieceHashKey(captured.Type, captured.Side, dest)
		opp.remove(captured)
	}

	own.relocate(pc, dest)
	pc.Moved = true
	if pc.Type == PiecePawn && dest.Rank == PromotionRank {
		queen := &Piece{Type: PieceQueen, Side: side, Moved: true}
		own.replace(pc, queen)
		pc = queen
		res.Promoted = true
	}
	h ^= pieceHashKey(pc.Type, side, dest)
	h ^= zobristSide

	g.updateCheck(side)
	g.moveCount++
	g.hash = h

	res.Checked, res.Check = g.Checked()
	return res
}
