package main

import (
	"flag"
	"fmt"
	"log"

	"draughts/internal/draughts"
)

func main() {
	variant := flag.String("variant", "standard", "draughts variant")
	fen := flag.String("fen", "", "board string or lidraughts FEN (empty = start position)")
	flag.Parse()

	g, err := draughts.NewGameByName(*variant, *fen)
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Println("Board:", g.BoardString())
	fmt.Println("FEN:", g.LiFEN())
	fmt.Println("To move:", g.WhoseTurn())
	moves := g.LegalMoves()
	pdns := g.PDNMoves()
	fmt.Println("Legal moves:", len(moves))
	for i, m := range moves {
		fmt.Printf("  %-12s %-20s %s\n", draughts.ToLi(m), draughts.ToHub(m), pdns[i])
	}
}
