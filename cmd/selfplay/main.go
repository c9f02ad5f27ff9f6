package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"circlechess/internal/circlechess"
	"circlechess/internal/engine"
)

func main() {
	depth := flag.Int("depth", 3, "search depth")
	maxMoves := flag.Int("maxmoves", 40, "max moves to play")
	timeMs := flag.Int("time", 0, "per-move time limit in ms (0: depth only)")
	games := flag.Int("games", 0, "play a depth match of this many games instead of one verbose game")
	shallow := flag.Int("shallow", 1, "depth of the weaker player in a match")
	mctsSims := flag.Int("mcts-sims", 0, "in a match, replace the weaker player with MCTS using this many simulations")
	pprof := flag.String("pprof", "", "serve net/http/pprof on this address")
	flag.Parse()

	if *pprof != "" {
		go func() {
			log.Printf("pprof listening on %s", *pprof)
			if err := http.ListenAndServe(*pprof, nil); err != nil {
				log.Printf("pprof failed: %v", err)
			}
		}()
	}

	e := engine.NewEngine()
	if *games > 0 {
		runMatch(e, *games, *depth, *shallow, *mctsSims, *maxMoves)
		return
	}

	g := circlechess.NewGame()
	cfg := engine.SearchConfig{MaxDepth: *depth, TimeLimit: time.Duration(*timeMs) * time.Millisecond}
	for i := 0; i < *maxMoves; i++ {
		log.Printf("--- Move %d, Side: %v ---", i+1, g.CurrentSide())

		start := time.Now()
		res := e.Search(context.Background(), g, cfg)
		duration := time.Since(start)

		if !res.Found {
			log.Printf("Game over: no moves.")
			break
		}

		fmt.Printf("BestMove: %v, Score: %d, Depth: %d, Nodes: %d, Time: %v, NPS: %d\n",
			res.BestMove, res.Score, res.Depth, res.Nodes, duration, int64(float64(res.Nodes)/duration.Seconds()))

		mr := g.Move(res.BestMove.From, res.BestMove.To)
		if !mr.OK {
			log.Fatalf("engine chose a move the game rejects: %v", res.BestMove)
		}
		if mr.Check {
			fmt.Printf("Check on %v\n", mr.Checked)
		}
		if err := checkInvariants(g, i+1); err != nil {
			log.Fatalf("after move %d: %v", i+1, err)
		}
		fmt.Println(g.Encode())
	}

	log.Println("Selfplay finished.")
}

// checkInvariants re-derives everything the game maintains incrementally.
func checkInvariants(g *circlechess.Game, wantCount int) error {
	if g.MoveCount() != wantCount {
		return fmt.Errorf("move count %d, want %d", g.MoveCount(), wantCount)
	}
	if h := g.CalculateHash(); h != g.Hash() {
		return fmt.Errorf("incremental hash %016x, recomputed %016x", g.Hash(), h)
	}
	seen := make(map[circlechess.Tile]bool)
	kings := [2]int{}
	for _, p := range g.Pieces() {
		if !p.Tile.Exists() {
			return fmt.Errorf("%v %v on missing tile %v", p.Side, p.Type, p.Tile)
		}
		if seen[p.Tile] {
			return fmt.Errorf("two pieces on %v", p.Tile)
		}
		seen[p.Tile] = true
		if p.Type == circlechess.PieceKing {
			kings[p.Side]++
		}
	}
	if kings != [2]int{1, 1} {
		return fmt.Errorf("king count %v", kings)
	}
	back, err := circlechess.DecodeGame(g.Encode())
	if err != nil {
		return fmt.Errorf("decode own encoding: %w", err)
	}
	if back.Hash() != g.Hash() {
		return fmt.Errorf("codec round trip changed the hash")
	}
	return nil
}
