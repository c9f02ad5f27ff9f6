package main

import (
	"flag"
	"fmt"
	"log"

	"circlechess/internal/circlechess"
	"circlechess/internal/engine"
)

func main() {
	fen := flag.String("fen", "", "position to inspect (default: the opening)")
	flag.Parse()

	g := circlechess.NewGame()
	if *fen != "" {
		var err error
		if g, err = circlechess.DecodeGame(*fen); err != nil {
			log.Fatalf("decode: %v", err)
		}
	}
	fmt.Println("FEN:", g.Encode())
	fmt.Printf("Hash: %016x\n", g.Hash())
	fmt.Println("Side to move:", g.CurrentSide())
	if t, ok := g.Checked(); ok {
		fmt.Println("Checked king on:", t)
	}
	moves := g.LegalMoves()
	fmt.Println("Legal moves:", len(moves))
	for _, m := range moves {
		fmt.Printf("  %v -> %v\n", m.From, m.To)
	}
	fmt.Println("Eval:", engine.Evaluate(g))
}
