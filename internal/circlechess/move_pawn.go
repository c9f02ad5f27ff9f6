package circlechess

func pawnPath(p *Piece, to Tile, opponents, own *Army) []Tile {
	from := p.Tile
	dir := pawnDir(p.Side)
	if dir == 0 {
		return nil
	}
	dr := to.Rank - from.Rank
	df := fileDelta(from.File, to.File)

	switch {
	case df == 0 && dr == dir:
		// straight ahead never captures
		if occupied(to, opponents, own) {
			return nil
		}
		return []Tile{to}

	case df == 0 && dr == 2*dir:
		if from.Rank != PawnStartRank {
			return nil
		}
		mid := Tile{File: from.File, Rank: from.Rank + dir}
		if occupied(mid, opponents, own) || occupied(to, opponents, own) {
			return nil
		}
		// the skipped tile stays in the path for a future en-passant rule
		return []Tile{mid, to}

	case abs(df) == 1 && dr == dir:
		if opponents.At(to) == nil {
			return nil
		}
		return []Tile{to}
	}
	return nil
}
