package mcts

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"circlechess/internal/circlechess"
	"circlechess/internal/engine"
)

// Searcher runs PUCT tree search. Leaves are scored with engine.Evaluate
// instead of random rollouts.
type Searcher struct {
	params SearchParams
}

func NewSearcher(params SearchParams) *Searcher {
	def := DefaultParams()
	if params.Simulations <= 0 {
		params.Simulations = def.Simulations
	}
	if params.NumThreads <= 0 {
		params.NumThreads = def.NumThreads
	}
	if params.UtilityScale <= 0 {
		params.UtilityScale = def.UtilityScale
	}
	if params.CpuctExplorationBase <= 0 {
		params.CpuctExplorationBase = def.CpuctExplorationBase
	}
	return &Searcher{params: params}
}

// Search never modifies g. Score in the result is the root utility mapped
// back to centipawns so it can be compared with alpha-beta scores.
func (s *Searcher) Search(ctx context.Context, g *circlechess.Game) engine.SearchResult {
	start := time.Now()
	if s.params.MaxTime > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.params.MaxTime)
		defer cancel()
	}

	root := NewNode(circlechess.Move{}, nil, g.CurrentSide())
	s.expandNode(root, g)
	root.RecordPlayout(s.params.UtilityOf(engine.Evaluate(g)), 1.0)

	// 并行执行仿真，所有线程共用一个计数
	var remaining atomic.Int64
	remaining.Store(int64(s.params.Simulations))
	var eg errgroup.Group
	for t := 0; t < s.params.NumThreads; t++ {
		eg.Go(func() error {
			for remaining.Add(-1) >= 0 {
				if ctx.Err() != nil {
					break
				}
				s.playout(root, g)
			}
			return nil
		})
	}
	_ = eg.Wait()

	res := engine.SearchResult{TimeUsed: time.Since(start)}
	st := root.stats()
	res.Nodes = st.Visits
	res.Score = s.params.ScoreOf(st.UtilityAvg)

	// 选择访问量最大的走法
	maxVisits := int64(-1)
	for mv, child := range root.Children {
		if v := child.stats().Visits; v > maxVisits {
			maxVisits = v
			res.BestMove, res.Found = mv, true
		}
	}
	if res.Found {
		res.Depth = principalDepth(root)
	}
	return res
}

func (s *Searcher) playout(root *MCTSNode, g *circlechess.Game) {
	node := root
	pos := g.Clone()
	path := []*MCTSNode{node}

	// Selection
	for node.expanded() && !node.IsTerminal {
		next := s.selectChildPUCT(node)
		if next == nil {
			break
		}
		next.VirtualLosses.Add(1)
		node = next
		path = append(path, node)
		if !pos.MovePiece(node.Move.From, node.Move.To) {
			break // children come from LegalMoves, so this is unreachable
		}
	}

	// Expansion & Evaluation
	if !node.expanded() {
		s.expandNode(node, pos)
	}
	utility := s.params.UtilityOf(engine.Evaluate(pos))

	// Backpropagation
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i]
		n.RecordPlayout(utility, 1.0)
		if i > 0 {
			n.VirtualLosses.Add(-1)
		}
	}
}

func (s *Searcher) selectChildPUCT(node *MCTSNode) *MCTSNode {
	var bestChild *MCTSNode
	maxSelectionValue := math.Inf(-1)

	parent := node.stats()
	cpuct := s.params.GetCpuct(parent.WeightSum)
	fpuValue := utilityFor(parent.UtilityAvg, node.NextPla) - s.params.FpuReductionMax

	for mv, child := range node.Children {
		st := child.stats()
		childWeight := st.WeightSum
		vLoss := float64(child.VirtualLosses.Load())

		var childUtility float64
		if childWeight > 0 {
			childUtility = utilityFor(st.UtilityAvg, node.NextPla)
			// 正在被其他线程探索的子节点按输棋折算
			if vLoss > 0 {
				f := vLoss / (vLoss + childWeight)
				childUtility = childUtility*(1-f) - f
			}
		} else {
			childUtility = fpuValue
		}
		childWeight += vLoss

		exploreValue := cpuct * node.PriorMap[mv] * math.Sqrt(parent.WeightSum+1.0) / (1.0 + childWeight)
		if v := childUtility + exploreValue; v > maxSelectionValue {
			maxSelectionValue = v
			bestChild = child
		}
	}
	return bestChild
}

// expandNode: Unevaluated -> Evaluating -> Expanded. Losing the race leaves
// the node to whoever won it.
func (s *Searcher) expandNode(node *MCTSNode, pos *circlechess.Game) {
	if !node.State.CompareAndSwap(StateUnevaluated, StateEvaluating) {
		return
	}

	moves := pos.LegalMoves()
	node.mu.Lock()
	defer node.mu.Unlock()
	if len(moves) == 0 {
		node.IsTerminal = true
		node.State.Store(StateExpanded)
		return
	}

	node.PriorMap = priors(pos, moves)
	nextPla := node.NextPla.Opponent()
	for _, mv := range moves {
		node.Children[mv] = NewNode(mv, node, nextPla)
	}
	node.State.Store(StateExpanded)
}

// priors favours captures of valuable pieces; quiet moves share a flat
// base weight.
func priors(pos *circlechess.Game, moves []circlechess.Move) map[circlechess.Move]float64 {
	out := make(map[circlechess.Move]float64, len(moves))
	total := 0.0
	for _, mv := range moves {
		w := 1.0
		if victim := pos.PieceAt(mv.To); victim != nil {
			w += float64(engine.PieceValue(victim.Type)) / 100
		}
		out[mv] = w
		total += w
	}
	for mv := range out {
		out[mv] /= total
	}
	return out
}

// principalDepth follows the most visited child from the root.
func principalDepth(root *MCTSNode) int {
	depth := 0
	for n := root; n.expanded() && len(n.Children) > 0; depth++ {
		var next *MCTSNode
		best := int64(0)
		for _, c := range n.Children {
			if v := c.stats().Visits; v > best {
				best, next = v, c
			}
		}
		if next == nil {
			break
		}
		n = next
	}
	return depth
}
