package mcts

import (
	"math"
	"runtime"
	"time"
)

// SearchParams 控制一次 MCTS 搜索
type SearchParams struct {
	Simulations int
	MaxTime     time.Duration // 0 表示不限时
	NumThreads  int

	CpuctExploration     float64
	CpuctExplorationBase float64
	CpuctExplorationLog  float64

	FpuReductionMax float64

	// UtilityScale 把 engine.Evaluate 的分数压到 (-1, 1)：tanh(score / UtilityScale)
	UtilityScale float64
}

func DefaultParams() SearchParams {
	return SearchParams{
		Simulations:          800,
		MaxTime:              5 * time.Second,
		NumThreads:           runtime.NumCPU(),
		CpuctExploration:     1.1,
		CpuctExplorationBase: 10000.0,
		CpuctExplorationLog:  0.4,
		FpuReductionMax:      0.2,
		UtilityScale:         600,
	}
}

func (p *SearchParams) GetCpuct(totalChildWeight float64) float64 {
	return p.CpuctExploration + p.CpuctExplorationLog*math.Log((totalChildWeight+p.CpuctExplorationBase)/p.CpuctExplorationBase)
}

// UtilityOf maps a centipawn score (White's view) to a utility in (-1, 1).
func (p *SearchParams) UtilityOf(score int) float64 {
	return math.Tanh(float64(score) / p.UtilityScale)
}

// ScoreOf is the inverse of UtilityOf, clamped away from ±1.
func (p *SearchParams) ScoreOf(u float64) int {
	const edge = 0.999999
	u = math.Max(-edge, math.Min(edge, u))
	return int(math.Atanh(u) * p.UtilityScale)
}
