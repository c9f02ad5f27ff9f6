package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"circlechess/internal/circlechess"
	"circlechess/internal/engine"
	"circlechess/internal/mcts"
	"circlechess/internal/server/game"
)

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games  *game.Manager
	engine *engine.Engine
}

func NewHandler(games *game.Manager, eng *engine.Engine) *Handler {
	if eng == nil {
		eng = engine.NewEngine()
	}
	return &Handler{games: games, engine: eng}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/new_game":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleNewGame(w, r)

	case "/api/play":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handlePlay(w, r)

	case "/api/state":
		// GET ?game_id=... 支持 If-None-Match；POST 保留给老前端
		if r.Method != http.MethodPost && r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleState(w, r)

	case "/api/ai_move":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleAiMove(w, r)

	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	g, err := h.games.NewGame()
	if err != nil {
		writeError(w, err)
		return
	}
	var resp NewGameResponse
	g.View(func(pos *circlechess.Game) {
		resp = stateOf(g.ID, pos)
		setETag(w, pos)
	})
	writeJSON(w, resp)
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	from, to := dtoToTile(req.Move.From), dtoToTile(req.Move.To)
	var resp PlayResponse
	res, err := h.games.PlayView(req.GameID, from, to, func(pos *circlechess.Game) {
		resp.StateResponse = stateOf(req.GameID, pos)
		setETag(w, pos)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	resp.Promoted = res.Promoted
	if res.Captured != circlechess.PieceNone {
		resp.Captured = res.Captured.String()
	}
	writeJSON(w, resp)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if r.Method == http.MethodGet {
		req.GameID = r.URL.Query().Get("game_id")
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}

	var (
		resp        StateResponse
		notModified bool
	)
	g.View(func(pos *circlechess.Game) {
		tag := setETag(w, pos)
		if r.Method == http.MethodGet && r.Header.Get("If-None-Match") == tag {
			notModified = true
			return
		}
		resp = stateOf(g.ID, pos)
	})
	if notModified {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	writeJSON(w, resp)
}

func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	// ===== 1. 找到要思考的局面 =====
	var (
		sess *game.GameState
		pos  *circlechess.Game
		err  error
	)
	switch {
	case req.GameID != "":
		sess, err = h.games.Get(req.GameID)
		if err != nil {
			writeError(w, err)
			return
		}
		pos = sess.Snapshot()
	case req.Position != "":
		pos, err = circlechess.DecodeGame(req.Position)
		if err != nil {
			writeError(w, err)
			return
		}
	default:
		http.Error(w, "missing game_id or position", http.StatusBadRequest)
		return
	}

	// ===== 2. 搜索参数 =====
	depth, limit, sims := searchLimits(req)
	params := mcts.DefaultParams()
	params.MaxTime = limit
	params.Simulations = sims

	// 客户端断开时 r.Context() 会取消，搜索随之停下
	var res engine.SearchResult
	if req.UseMCTS {
		res = mcts.NewSearcher(params).Search(r.Context(), pos)
	} else {
		res = h.engine.Search(r.Context(), pos, engine.SearchConfig{MaxDepth: depth, TimeLimit: limit})
	}
	resp := searchToDTO(res, params)

	// ===== 3. 需要的话直接落子 =====
	if req.Apply && sess != nil && res.Found {
		_, err := h.games.PlayView(sess.ID, res.BestMove.From, res.BestMove.To, func(g *circlechess.Game) {
			resp.State = stateOf(sess.ID, g)
		})
		if err != nil {
			// 思考期间有人先走了一步，快照已过期
			writeError(w, err)
			return
		}
	} else {
		resp.State = stateOf(req.GameID, pos)
	}
	log.Printf("ai_move: mcts=%v depth=%d nodes=%d score=%d time=%dms status=%s",
		req.UseMCTS, resp.Depth, resp.Nodes, resp.Score, resp.TimeMs, resp.Status)
	writeJSON(w, resp)
}

// 客户端给的搜索参数要设上限，不然一个请求就能把 CPU 占满
const (
	defaultDepth   = 3
	maxDepth       = 6
	maxSimulations = 20000
	defaultThink   = 10 * time.Second
	maxThink       = 60 * time.Second
)

// searchLimits 把请求里的深度、时间、模拟次数收敛到允许范围内
func searchLimits(req AiMoveRequest) (depth int, limit time.Duration, sims int) {
	depth = req.MaxDepth
	switch {
	case depth <= 0:
		depth = defaultDepth
	case depth > maxDepth:
		depth = maxDepth
	}

	limit = defaultThink
	if req.TimeMs > 0 {
		limit = min(time.Duration(req.TimeMs)*time.Millisecond, maxThink)
	}

	sims = mcts.DefaultParams().Simulations
	if req.MCTSSimulations > 0 {
		sims = min(req.MCTSSimulations, maxSimulations)
	}
	return depth, limit, sims
}

// setETag 用 Zobrist hash 和步数标识一个局面
func setETag(w http.ResponseWriter, pos *circlechess.Game) string {
	tag := fmt.Sprintf(`"%016x-%d"`, pos.Hash(), pos.MoveCount())
	w.Header().Set("ETag", tag)
	return tag
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		http.Error(w, "game not found", http.StatusNotFound)
	case errors.Is(err, game.ErrIllegalMove):
		http.Error(w, "illegal move", http.StatusBadRequest)
	case errors.Is(err, circlechess.ErrInvalidFEN):
		http.Error(w, "invalid position", http.StatusBadRequest)
	default:
		log.Println("internal error:", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
