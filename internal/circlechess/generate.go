package circlechess

// LegalTargets lists every tile the side to move can send the piece on from
// to. Captures of the enemy king are left out since MovePiece refuses them.
func (g *Game) LegalTargets(from Tile) []Tile {
	side := g.CurrentSide()
	own, opp := g.armies[side], g.armies[side.Opponent()]
	pc := own.At(from)
	if pc == nil {
		return nil
	}
	var out []Tile
	for idx := 0; idx < NumTiles; idx++ {
		t := tileOf(idx)
		if !t.Exists() {
			continue
		}
		path := MovePath(pc, t, opp, own)
		if len(path) == 0 {
			continue
		}
		dest := path[len(path)-1]
		if victim := opp.At(dest); victim != nil && victim.Type == PieceKing {
			continue
		}
		out = append(out, dest)
	}
	return out
}

// LegalMoves generates every move MovePiece would accept right now.
func (g *Game) LegalMoves() []Move {
	var moves []Move
	for _, p := range g.armies[g.CurrentSide()].pieces {
		for _, to := range g.LegalTargets(p.Tile) {
			moves = append(moves, Move{From: p.Tile, To: to})
		}
	}
	return moves
}
