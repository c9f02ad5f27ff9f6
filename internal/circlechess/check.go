package circlechess

// attackPath returns the path of the first piece of bySide that can legally
// move onto t, or nil. Attacks are move simulation: a pawn only attacks a
// tile diagonally when an enemy stands on it.
func (g *Game) attackPath(t Tile, bySide Side) []Tile {
	attackers := g.Army(bySide)
	defenders := g.Army(bySide.Opponent())
	if attackers == nil || defenders == nil {
		return nil
	}
	for _, p := range attackers.pieces {
		if path := MovePath(p, t, defenders, attackers); len(path) > 0 {
			return path
		}
	}
	return nil
}

// IsAttacked reports whether any piece of bySide could move onto t.
func (g *Game) IsAttacked(t Tile, bySide Side) bool {
	return g.attackPath(t, bySide) != nil
}

// InCheck reports whether side's king is attacked right now.
func (g *Game) InCheck(side Side) bool {
	army := g.Army(side)
	if army == nil {
		return false
	}
	king := army.King()
	if king == nil {
		return false
	}
	return g.IsAttacked(king.Tile, side.Opponent())
}

// updateCheck recomputes the marker for the king of mover's opponent.
func (g *Game) updateCheck(mover Side) {
	g.checked, g.inCheck = Tile{}, false
	army := g.Army(mover.Opponent())
	if army == nil {
		return
	}
	king := army.King()
	if king == nil {
		panic("circlechess: army without a king")
	}
	if path := g.attackPath(king.Tile, mover); path != nil {
		g.checked, g.inCheck = path[len(path)-1], true
	}
}
