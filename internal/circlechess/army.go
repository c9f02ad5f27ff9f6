package circlechess

// Army is one side's piece collection: an ordered slice plus a tile index.
type Army struct {
	side   Side
	pieces []*Piece
	at     [NumTiles]*Piece
}

func newArmy(side Side) *Army {
	return &Army{side: side, pieces: make([]*Piece, 0, 16)}
}

func (a *Army) Side() Side { return a.side }
func (a *Army) Len() int   { return len(a.pieces) }

// Pieces returns the army in placement order. Callers must not modify it.
func (a *Army) Pieces() []*Piece { return a.pieces }

// At returns the piece standing on t, or nil.
func (a *Army) At(t Tile) *Piece {
	if a == nil || !inBounds(t) {
		return nil
	}
	return a.at[indexOf(t.File, t.Rank)]
}

func (a *Army) King() *Piece {
	for _, p := range a.pieces {
		if p.Type == PieceKing {
			return p
		}
	}
	return nil
}

func (a *Army) place(p *Piece) {
	if !p.Tile.Exists() {
		panic("circlechess: piece placed off the board")
	}
	idx := indexOf(p.Tile.File, p.Tile.Rank)
	if a.at[idx] != nil {
		panic("circlechess: tile already taken")
	}
	a.at[idx] = p
	a.pieces = append(a.pieces, p)
}

func (a *Army) remove(p *Piece) {
	idx := indexOf(p.Tile.File, p.Tile.Rank)
	if a.at[idx] != p {
		panic("circlechess: removing a piece the army does not hold")
	}
	a.at[idx] = nil
	for i, q := range a.pieces {
		if q == p {
			a.pieces = append(a.pieces[:i], a.pieces[i+1:]...)
			break
		}
	}
}

func (a *Army) relocate(p *Piece, to Tile) {
	from := indexOf(p.Tile.File, p.Tile.Rank)
	if a.at[from] != p {
		panic("circlechess: relocating a piece the army does not hold")
	}
	a.at[from] = nil
	p.Tile = to
	a.at[indexOf(to.File, to.Rank)] = p
}

// replace swaps old for repl on the same tile and slot.
func (a *Army) replace(old, repl *Piece) {
	idx := indexOf(old.Tile.File, old.Tile.Rank)
	if a.at[idx] != old {
		panic("circlechess: replacing a piece the army does not hold")
	}
	repl.Tile = old.Tile
	a.at[idx] = repl
	for i, q := range a.pieces {
		if q == old {
			a.pieces[i] = repl
			break
		}
	}
}

func (a *Army) clone() *Army {
	c := &Army{side: a.side, pieces: make([]*Piece, 0, len(a.pieces))}
	for _, p := range a.pieces {
		cp := *p
		c.pieces = append(c.pieces, &cp)
		c.at[indexOf(cp.Tile.File, cp.Tile.Rank)] = &cp
	}
	return c
}
