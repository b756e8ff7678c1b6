package main

import (
	"flag"
	"fmt"
	"log"

	"draughts/internal/draughts"
	"draughts/internal/strategy"
)

type PlayerConfig struct {
	Name     string
	Strategy strategy.Strategy
}

func newPlayer(name string, seed int64) PlayerConfig {
	kind, err := strategy.Parse(name)
	if err != nil {
		log.Fatalf("%v", err)
	}
	s, err := strategy.New(kind, seed)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return PlayerConfig{Name: kind.String(), Strategy: s}
}

func main() {
	variantName := flag.String("variant", "standard", "draughts variant")
	totalGames := flag.Int("games", 10, "number of games to play")
	first := flag.String("a", "random", "strategy A")
	second := flag.String("b", "first-li", "strategy B")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	moveLimit := flag.Int("move-limit", draughts.DefaultMoveLimit, "quiet moves before a draw")
	verbose := flag.Bool("v", false, "print every game's moves")
	flag.Parse()

	v, err := draughts.ParseVariant(*variantName)
	if err != nil {
		log.Fatalf("%v", err)
	}
	playerA := newPlayer(*first, *seed)
	playerB := newPlayer(*second, *seed+1)

	aWins, bWins, draws := 0, 0, 0
	for g := 0; g < *totalGames; g++ {
		var white, black PlayerConfig
		if g%2 == 0 {
			white, black = playerA, playerB
		} else {
			white, black = playerB, playerA
		}

		fmt.Printf("\n=== Game %d (%s): White [%s] vs Black [%s] ===\n", g+1, v, white.Name, black.Name)
		winner, moves, err := playGame(v, *moveLimit, white, black)
		if err != nil {
			log.Fatalf("game %d: %v", g+1, err)
		}
		if *verbose {
			fmt.Println(moves)
		}

		aIsWhite := g%2 == 0
		switch {
		case winner == draughts.NoPlayer:
			draws++
			fmt.Println("Result: Draw")
		case (winner == draughts.White) == aIsWhite:
			aWins++
			fmt.Printf("Result: %s Wins!\n", playerA.Name)
		default:
			bWins++
			fmt.Printf("Result: %s Wins!\n", playerB.Name)
		}
	}

	fmt.Printf("\n=== Final Score ===\n")
	fmt.Printf("A %s: %d\n", playerA.Name, aWins)
	fmt.Printf("B %s: %d\n", playerB.Name, bWins)
	fmt.Printf("Draws: %d\n", draws)
}

func playGame(v draughts.Variant, moveLimit int, white, black PlayerConfig) (draughts.Player, []string, error) {
	g, err := draughts.NewGame(v, "", draughts.WithMoveLimit(moveLimit))
	if err != nil {
		return draughts.NoPlayer, nil, err
	}
	for !g.IsOver() {
		current := white
		if g.WhoseTurn() == draughts.Black {
			current = black
		}
		m, err := current.Strategy.Choose(g)
		if err != nil {
			return draughts.NoPlayer, nil, err
		}
		if err := g.Apply(m); err != nil {
			return draughts.NoPlayer, nil, fmt.Errorf("%s played %s: %w", current.Name, m, err)
		}
	}
	return g.Winner(), g.HubHistory(), nil
}
