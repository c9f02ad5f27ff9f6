package main

import (
	"context"
	"fmt"

	"circlechess/internal/circlechess"
	"circlechess/internal/engine"
	"circlechess/internal/mcts"
)

type PlayerConfig struct {
	Name string
	Cfg  engine.SearchConfig
	MCTS *mcts.Searcher // when set, Cfg is ignored
}

func (p PlayerConfig) search(e *engine.Engine, g *circlechess.Game) engine.SearchResult {
	if p.MCTS != nil {
		return p.MCTS.Search(context.Background(), g)
	}
	return e.Search(context.Background(), g, p.Cfg)
}

// runMatch plays a deep searcher against a shallow one (or an MCTS player
// when mctsSims > 0), alternating colours. Kings cannot be taken, so games
// are adjudicated on material when they reach maxMoves.
func runMatch(e *engine.Engine, totalGames, deep, shallow, mctsSims, maxMoves int) {
	playerDeep := PlayerConfig{Name: fmt.Sprintf("Alpha-Beta (Depth %d)", deep), Cfg: engine.SearchConfig{MaxDepth: deep}}
	playerShallow := PlayerConfig{Name: fmt.Sprintf("Alpha-Beta (Depth %d)", shallow), Cfg: engine.SearchConfig{MaxDepth: shallow}}
	if mctsSims > 0 {
		p := mcts.DefaultParams()
		p.Simulations = mctsSims
		playerShallow = PlayerConfig{Name: fmt.Sprintf("MCTS (%d Sims)", mctsSims), MCTS: mcts.NewSearcher(p)}
	}

	deepWins, shallowWins, draws := 0, 0, 0
	for g := 0; g < totalGames; g++ {
		white, black := playerDeep, playerShallow
		if g%2 == 1 {
			white, black = playerShallow, playerDeep
		}

		fmt.Printf("\n=== Game %d: White [%s] vs Black [%s] ===\n", g+1, white.Name, black.Name)
		winner := playGame(e, white, black, maxMoves)

		deepIsWhite := g%2 == 0
		switch {
		case winner == circlechess.NoSide:
			draws++
			fmt.Println("Result: Draw")
		case (winner == circlechess.White) == deepIsWhite:
			deepWins++
			fmt.Printf("Result: %s Wins!\n", playerDeep.Name)
		default:
			shallowWins++
			fmt.Printf("Result: %s Wins!\n", playerShallow.Name)
		}
	}

	fmt.Printf("\n=== Final Score ===\n")
	fmt.Printf("deep   %s: %d\n", playerDeep.Name, deepWins)
	fmt.Printf("shallow %s: %d\n", playerShallow.Name, shallowWins)
	fmt.Printf("Draws: %d\n", draws)
}

// adjudicateMargin is the material lead, in centipawns, that counts as a win.
const adjudicateMargin = 300

func playGame(e *engine.Engine, white, black PlayerConfig, maxMoves int) circlechess.Side {
	g := circlechess.NewGame()
	e.Reset()
	for i := 0; i < maxMoves; i++ {
		player := white
		if g.CurrentSide() == circlechess.Black {
			player = black
		}

		res := player.search(e, g)
		if !res.Found {
			// 无子可动，当前方输
			return g.CurrentSide().Opponent()
		}
		if !g.MovePiece(res.BestMove.From, res.BestMove.To) {
			fmt.Printf("Error: invalid move %v\n", res.BestMove)
			return circlechess.NoSide
		}
	}

	switch score := engine.Evaluate(g); {
	case score >= adjudicateMargin:
		return circlechess.White
	case score <= -adjudicateMargin:
		return circlechess.Black
	}
	return circlechess.NoSide
}
