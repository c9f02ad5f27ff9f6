package engine

import "circlechess/internal/circlechess"

type boundKind uint8

const (
	boundExact boundKind = iota
	boundLower           // fail high: real score >= Score
	boundUpper           // fail low: real score <= Score
)

type ttEntry struct {
	Key   uint64
	Depth int
	Score int
	Bound boundKind
	Move  circlechess.Move
}

func (e *Engine) probeTT(key uint64) (ttEntry, bool) {
	entry, ok := e.tt[key]
	if !ok || entry.Key != key {
		return ttEntry{}, false
	}
	return entry, true
}

func (e *Engine) storeTT(key uint64, depth, score int, bound boundKind, mv circlechess.Move) {
	if len(e.tt) > ttCap {
		e.tt = make(map[uint64]ttEntry, 1<<16)
	}
	old, ok := e.tt[key]
	if ok && depth < old.Depth {
		return
	}
	e.tt[key] = ttEntry{
		Key:   key,
		Depth: depth,
		Score: score,
		Bound: bound,
		Move:  mv,
	}
}

// usable reports whether a stored score settles the node for the window.
func (en ttEntry) usable(depth, alpha, beta int) bool {
	if en.Depth < depth {
		return false
	}
	switch en.Bound {
	case boundExact:
		return true
	case boundLower:
		return en.Score >= beta
	case boundUpper:
		return en.Score <= alpha
	}
	return false
}
