package circlechess

// MovePath returns the tiles p passes through to reach target, ending at
// the tile it comes to rest on, or nil when the move is illegal. It only
// reads the armies.
func MovePath(p *Piece, target Tile, opponents, own *Army) []Tile {
	if p == nil || !target.Exists() || target == p.Tile {
		return nil
	}
	switch p.Type {
	case PiecePawn:
		return pawnPath(p, target, opponents, own)
	case PieceKnight:
		return knightPath(p.Tile, target, own)
	case PieceBishop:
		return bishopPath(p.Tile, target, opponents, own)
	case PieceRook:
		return rookPath(p.Tile, target, opponents, own)
	case PieceQueen:
		return queenPath(p.Tile, target, opponents, own)
	case PieceKing:
		return kingPath(p.Tile, target, own)
	}
	return nil
}

func occupied(t Tile, opponents, own *Army) bool {
	return opponents.At(t) != nil || own.At(t) != nil
}

// clearPath: every tile before the last must exist and be empty, the last
// must exist and not hold a friend. An enemy there is a capture.
func clearPath(path []Tile, opponents, own *Army) bool {
	if len(path) == 0 {
		return false
	}
	last := len(path) - 1
	for i, t := range path {
		if !t.Exists() {
			return false
		}
		if i < last {
			if occupied(t, opponents, own) {
				return false
			}
			continue
		}
		if own.At(t) != nil {
			return false
		}
	}
	return true
}

var ringDirs = [2]int{+1, -1}

// Rook: radially along its file, or round the ring along its rank. On the
// ring both directions reach the target; the first clear one is taken.
func rookPath(from, to Tile, opponents, own *Army) []Tile {
	if from.File == to.File {
		step := sign(to.Rank - from.Rank)
		path := make([]Tile, 0, abs(to.Rank-from.Rank))
		for r := from.Rank + step; ; r += step {
			path = append(path, Tile{File: from.File, Rank: r})
			if r == to.Rank {
				break
			}
		}
		if !clearPath(path, opponents, own) {
			return nil
		}
		return path
	}
	if from.Rank == to.Rank {
		for _, dir := range ringDirs {
			path := ringPath(from, to, dir)
			if clearPath(path, opponents, own) {
				return path
			}
		}
	}
	return nil
}

func ringPath(from, to Tile, dir int) []Tile {
	var path []Tile
	for f := wrapFile(from.File + dir); ; f = wrapFile(f + dir) {
		path = append(path, Tile{File: f, Rank: from.Rank})
		if f == to.File {
			return path
		}
	}
}

// Bishop: equal rank and file steps, the file step taken the short way
// round the ring.
func bishopPath(from, to Tile, opponents, own *Army) []Tile {
	dr := to.Rank - from.Rank
	df := fileDelta(from.File, to.File)
	if dr == 0 || abs(dr) != abs(df) {
		return nil
	}
	sr, sf := sign(dr), sign(df)
	path := make([]Tile, 0, abs(dr))
	r, f := from.Rank, from.File
	for {
		r += sr
		f = wrapFile(f + sf)
		t := Tile{File: f, Rank: r}
		path = append(path, t)
		if t == to {
			break
		}
		// Safety guard: with fileDelta taking the short way and equal steps no
		// intermediate tile shares the target's file or rank, so this only
		// fires if the stepping above is ever changed.
		if f == to.File || r == to.Rank {
			return nil
		}
	}
	if !clearPath(path, opponents, own) {
		return nil
	}
	return path
}

func queenPath(from, to Tile, opponents, own *Army) []Tile {
	if path := rookPath(from, to, opponents, own); path != nil {
		return path
	}
	return bishopPath(from, to, opponents, own)
}
