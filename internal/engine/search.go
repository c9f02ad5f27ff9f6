package engine

import (
	"context"
	"runtime"
	"sort"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"circlechess/internal/circlechess"
)

const scoreInf = 1_000_000_000

type SearchConfig struct {
	MaxDepth  int           // plies; 0 means 3
	TimeLimit time.Duration // 0 means no limit
}

type SearchResult struct {
	BestMove circlechess.Move
	Found    bool // false when the side to move has no legal move
	Score    int  // White's point of view
	Depth    int  // deepest fully searched iteration
	Nodes    int64
	TimeUsed time.Duration
}

// Search runs iterative deepening on a copy of g; g itself is never
// modified. An iteration interrupted by the time limit or ctx is discarded.
func (e *Engine) Search(ctx context.Context, g *circlechess.Game, cfg SearchConfig) SearchResult {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = 3
	}
	if cfg.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.TimeLimit)
		defer cancel()
	}
	start := time.Now()
	atomic.StoreInt64(&e.nodes, 0)

	root := g.Clone()
	var res SearchResult
	for depth := 1; depth <= cfg.MaxDepth; depth++ {
		if ctx.Err() != nil {
			break
		}
		score, mv, ok := e.searchRoot(ctx, root, depth)
		if !ok {
			break
		}
		if ctx.Err() != nil && res.Found {
			break
		}
		res.BestMove, res.Found, res.Score, res.Depth = mv, true, score, depth
	}
	res.Nodes = atomic.LoadInt64(&e.nodes)
	res.TimeUsed = time.Since(start)
	return res
}

// searchRoot searches every root move in parallel, each on a private child
// engine, and picks the best for the side to move.
func (e *Engine) searchRoot(ctx context.Context, g *circlechess.Game, depth int) (int, circlechess.Move, bool) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return Evaluate(g), circlechess.Move{}, false
	}

	key := g.Hash()
	e.mu.Lock()
	entry, hit := e.probeTT(key)
	e.mu.Unlock()
	var ttMove *circlechess.Move
	if hit {
		ttMove = &entry.Move
	}
	orderMoves(g, moves, ttMove)

	scores := make([]int, len(moves))
	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())
	for i, mv := range moves {
		child := g.Clone()
		if !child.MovePiece(mv.From, mv.To) {
			scores[i] = worstFor(g.CurrentSide())
			continue
		}
		i := i
		eg.Go(func() error {
			local := e.child()
			scores[i] = local.alphaBeta(ctx, child, depth-1, -scoreInf, scoreInf)
			atomic.AddInt64(&e.nodes, local.nodes)
			return nil
		})
	}
	_ = eg.Wait()

	maximize := g.CurrentSide() == circlechess.White
	best := 0
	for i := range moves {
		if i == 0 || (maximize && scores[i] > scores[best]) || (!maximize && scores[i] < scores[best]) {
			best = i
		}
	}

	if ctx.Err() == nil {
		e.mu.Lock()
		e.storeTT(key, depth, scores[best], boundExact, moves[best])
		e.mu.Unlock()
	}
	return scores[best], moves[best], true
}

func (e *Engine) alphaBeta(ctx context.Context, g *circlechess.Game, depth, alpha, beta int) int {
	e.nodes++

	if depth <= 0 || ctx.Err() != nil {
		return Evaluate(g)
	}

	key := g.Hash()
	entry, hit := e.probeTT(key)
	if hit && entry.usable(depth, alpha, beta) {
		return entry.Score
	}

	moves := g.LegalMoves()
	if len(moves) == 0 {
		return Evaluate(g)
	}
	var ttMove *circlechess.Move
	if hit {
		ttMove = &entry.Move
	}
	orderMoves(g, moves, ttMove)

	alphaOrig, betaOrig := alpha, beta
	maximize := g.CurrentSide() == circlechess.White
	best := worstFor(g.CurrentSide())
	var bestMove circlechess.Move
	for _, mv := range moves {
		child := g.Clone()
		if !child.MovePiece(mv.From, mv.To) {
			continue
		}
		score := e.alphaBeta(ctx, child, depth-1, alpha, beta)
		if maximize {
			if score > best {
				best, bestMove = score, mv
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if score < best {
				best, bestMove = score, mv
			}
			if best < beta {
				beta = best
			}
		}
		if alpha >= beta {
			break
		}
	}

	if ctx.Err() != nil {
		return best
	}
	bound := boundExact
	switch {
	case best <= alphaOrig:
		bound = boundUpper
	case best >= betaOrig:
		bound = boundLower
	}
	e.storeTT(key, depth, best, bound, bestMove)
	return best
}

func worstFor(side circlechess.Side) int {
	if side == circlechess.White {
		return -scoreInf
	}
	return scoreInf
}

// orderMoves puts the remembered best move first, then captures, most
// valuable victim first and cheapest attacker first.
func orderMoves(g *circlechess.Game, moves []circlechess.Move, ttMove *circlechess.Move) {
	key := func(mv circlechess.Move) int {
		if ttMove != nil && mv == *ttMove {
			return 1 << 20
		}
		victim := g.PieceAt(mv.To)
		if victim == nil {
			return 0
		}
		k := pieceValue[victim.Type] * 10
		if attacker := g.PieceAt(mv.From); attacker != nil {
			k -= pieceValue[attacker.Type]
		}
		return k
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return key(moves[i]) > key(moves[j])
	})
}
