package httpserver

import (
	"circlechess/internal/circlechess"
	"circlechess/internal/engine"
	"circlechess/internal/mcts"
)

// TileDTO 前端用的格子坐标：file 沿圆环 0..23，rank 从中心向外 0..7
type TileDTO struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

type MoveDTO struct {
	From TileDTO `json:"from"`
	To   TileDTO `json:"to"`
}

type PieceDTO struct {
	Tile TileDTO `json:"tile"`
	Type string  `json:"type"` // "pawn" / "knight" / ...
	Side int     `json:"side"` // 0=白, 1=黑
}

// StateResponse 是 new_game / state / play 共用的盘面快照
type StateResponse struct {
	GameID     string     `json:"game_id"`
	Position   string     `json:"position"`
	ToMove     int        `json:"to_move"`
	MoveCount  int        `json:"move_count"`
	Pieces     []PieceDTO `json:"pieces"`
	Checked    *TileDTO   `json:"checked,omitempty"` // 被将军的王所在格
	LegalMoves []MoveDTO  `json:"legal_moves"`
	Status     string     `json:"status"` // "ongoing" / "check" / "no_moves"
}

type NewGameResponse = StateResponse

// State 请求：前端刷新时用 game_id 来要当前盘面
type StateRequest struct {
	GameID string `json:"game_id"`
}

type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

type PlayResponse struct {
	StateResponse
	Captured string `json:"captured,omitempty"`
	Promoted bool   `json:"promoted"`
}

// AiMoveRequest 请求让 AI 为当前局面想一步。
// 给 game_id 时用服务器上的对局；否则用 position（Encode 的结果）。
type AiMoveRequest struct {
	GameID   string `json:"game_id"`
	Position string `json:"position"`
	MaxDepth int    `json:"max_depth"`
	TimeMs   int64  `json:"time_ms"`
	Apply    bool   `json:"apply"` // 只对 game_id 有效：顺手把这步走掉

	// MCTS 相关的参数
	UseMCTS         bool `json:"use_mcts"`
	MCTSSimulations int  `json:"mcts_simulations"`
}

type AiMoveResponse struct {
	BestMove *MoveDTO      `json:"best_move,omitempty"`
	Score    int           `json:"score"`    // 白方视角
	WinProb  float64       `json:"win_prob"` // 白方胜率
	Depth    int           `json:"depth"`
	Nodes    int64         `json:"nodes"`
	TimeMs   int64         `json:"time_ms"`
	Status   string        `json:"status"` // "ok" / "no_moves"
	State    StateResponse `json:"state"`  // apply 时是走完之后的局面
}

func sideToInt(s circlechess.Side) int {
	switch s {
	case circlechess.White:
		return 0
	case circlechess.Black:
		return 1
	default:
		return -1
	}
}

func tileToDTO(t circlechess.Tile) TileDTO { return TileDTO{File: t.File, Rank: t.Rank} }

func dtoToTile(d TileDTO) circlechess.Tile { return circlechess.Tile{File: d.File, Rank: d.Rank} }

func moveToDTO(m circlechess.Move) MoveDTO {
	return MoveDTO{From: tileToDTO(m.From), To: tileToDTO(m.To)}
}

func movesToDTO(ms []circlechess.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

func piecesToDTO(ps []circlechess.PieceView) []PieceDTO {
	out := make([]PieceDTO, len(ps))
	for i, p := range ps {
		out[i] = PieceDTO{Tile: tileToDTO(p.Tile), Type: p.Type.String(), Side: sideToInt(p.Side)}
	}
	return out
}

func stateOf(id string, g *circlechess.Game) StateResponse {
	legal := g.LegalMoves()
	resp := StateResponse{
		GameID:     id,
		Position:   g.Encode(),
		ToMove:     sideToInt(g.CurrentSide()),
		MoveCount:  g.MoveCount(),
		Pieces:     piecesToDTO(g.Pieces()),
		LegalMoves: movesToDTO(legal),
		Status:     "ongoing",
	}
	if t, ok := g.Checked(); ok {
		d := tileToDTO(t)
		resp.Checked = &d
		resp.Status = "check"
	}
	// 没有将死判定：无子可走时只报告 no_moves
	if len(legal) == 0 {
		resp.Status = "no_moves"
	}
	return resp
}

func searchToDTO(res engine.SearchResult, p mcts.SearchParams) AiMoveResponse {
	out := AiMoveResponse{
		Score:   res.Score,
		WinProb: (p.UtilityOf(res.Score) + 1) / 2,
		Depth:   res.Depth,
		Nodes:   res.Nodes,
		TimeMs:  res.TimeUsed.Milliseconds(),
		Status:  "no_moves",
	}
	if res.Found {
		mv := moveToDTO(res.BestMove)
		out.BestMove = &mv
		out.Status = "ok"
	}
	return out
}
