package circlechess

// Jumping pieces only care about the landing tile.
func landing(to Tile, own *Army) []Tile {
	if own.At(to) != nil {
		return nil
	}
	return []Tile{to}
}

func knightPath(from, to Tile, own *Army) []Tile {
	dr := abs(to.Rank - from.Rank)
	df := abs(fileDelta(from.File, to.File))
	if !(dr == 1 && df == 2) && !(dr == 2 && df == 1) {
		return nil
	}
	return landing(to, own)
}

func kingPath(from, to Tile, own *Army) []Tile {
	dr := abs(to.Rank - from.Rank)
	df := abs(fileDelta(from.File, to.File))
	if dr > 1 || df > 1 || (dr == 0 && df == 0) {
		return nil
	}
	return landing(to, own)
}
