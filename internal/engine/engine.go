package engine

import (
	"sync"
)

const ttCap = 1_000_000

// Engine is a small alpha-beta searcher over circlechess games. The
// transposition table is shared by every search of one Engine.
type Engine struct {
	mu sync.Mutex
	tt map[uint64]ttEntry

	nodes int64
}

func NewEngine() *Engine {
	return &Engine{
		tt: make(map[uint64]ttEntry, 1<<16),
	}
}

// Reset drops everything learnt by earlier searches.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.tt = make(map[uint64]ttEntry, 1<<16)
	e.mu.Unlock()
}

// child engines own a private table so root moves can be searched in
// parallel without locking.
func (e *Engine) child() *Engine {
	return &Engine{tt: make(map[uint64]ttEntry, 1<<12)}
}
