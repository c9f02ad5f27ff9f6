package mcts

import (
	"sync"
	"sync/atomic"

	"circlechess/internal/circlechess"
)

const (
	StateUnevaluated = iota
	StateEvaluating
	StateExpanded
)

type NodeStats struct {
	Visits     int64
	WeightSum  float64
	UtilityAvg float64 // White's view: 1 White wins, -1 Black wins
}

// MCTSNode is one position in the tree. Children and PriorMap are written
// once, before State becomes StateExpanded, and only read afterwards.
type MCTSNode struct {
	mu sync.Mutex

	Move     circlechess.Move
	NextPla  circlechess.Side // side to move at this node
	Parent   *MCTSNode
	Children map[circlechess.Move]*MCTSNode
	PriorMap map[circlechess.Move]float64
	State    atomic.Int32

	Stats         NodeStats
	VirtualLosses atomic.Int32

	IsTerminal bool
}

func NewNode(mv circlechess.Move, parent *MCTSNode, pla circlechess.Side) *MCTSNode {
	return &MCTSNode{
		Move:     mv,
		Parent:   parent,
		NextPla:  pla,
		Children: make(map[circlechess.Move]*MCTSNode),
	}
}

func (n *MCTSNode) expanded() bool { return n.State.Load() == StateExpanded }

func (n *MCTSNode) RecordPlayout(utility float64, weight float64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.Stats.Visits++
	n.Stats.WeightSum += weight
	delta := utility - n.Stats.UtilityAvg
	n.Stats.UtilityAvg += delta * weight / n.Stats.WeightSum
}

func (n *MCTSNode) stats() NodeStats {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.Stats
}

// utilityFor flips a White-view utility to pla's view.
func utilityFor(u float64, pla circlechess.Side) float64 {
	if pla == circlechess.White {
		return u
	}
	return -u
}
