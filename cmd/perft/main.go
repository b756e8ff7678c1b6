package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
	"time"

	"draughts/internal/draughts"
)

// TestCase 是一个局面及其全部合法走法，给其他实现做对拍用
type TestCase struct {
	Variant string   `json:"variant"`
	Board   string   `json:"board"`
	FEN     string   `json:"fen"`
	Li      []string `json:"li"`
	Hub     []string `json:"hub"`
	PDN     []string `json:"pdn"`
}

func main() {
	variantName := flag.String("variant", "standard", "draughts variant")
	fen := flag.String("fen", "", "board string or lidraughts FEN (empty = start position)")
	depth := flag.Int("depth", 4, "perft depth")
	divide := flag.Bool("divide", false, "print leaf counts per first move")
	out := flag.String("out", "", "write random-game test vectors to this JSON file")
	numGames := flag.Int("games", 10, "random games for -out")
	flag.Parse()

	g, err := draughts.NewGameByName(*variantName, *fen)
	if err != nil {
		log.Fatalf("%v", err)
	}
	ctx := context.Background()

	if *divide {
		counts, err := draughts.Divide(ctx, g, *depth)
		if err != nil {
			log.Fatalf("divide: %v", err)
		}
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s: %d\n", k, counts[k])
		}
	}

	for d := 1; d <= *depth; d++ {
		start := time.Now()
		n, err := draughts.Perft(ctx, g, d)
		if err != nil {
			log.Fatalf("perft %d: %v", d, err)
		}
		fmt.Printf("perft(%d) = %d  (%v)\n", d, n, time.Since(start))
	}

	if *out != "" {
		cases := randomGames(g, *numGames)
		data, err := json.MarshalIndent(cases, "", "  ")
		if err != nil {
			log.Fatalf("marshal: %v", err)
		}
		if err := os.WriteFile(*out, data, 0644); err != nil {
			log.Fatalf("write %s: %v", *out, err)
		}
		fmt.Printf("Generated %d test cases from %d random games to %s\n", len(cases), *numGames, *out)
	}
}

func randomGames(start *draughts.Game, numGames int) []TestCase {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var cases []TestCase
	for i := 0; i < numGames; i++ {
		g := start.Clone()
		maxMoves := 500 // 防死循环
		for moveCount := 0; moveCount < maxMoves && !g.IsOver(); moveCount++ {
			legal := g.LegalMoves()
			tc := TestCase{
				Variant: g.Variant().String(),
				Board:   g.BoardString(),
				FEN:     g.LiFEN(),
				PDN:     g.PDNMoves(),
			}
			for _, m := range legal {
				tc.Li = append(tc.Li, draughts.ToLi(m))
				tc.Hub = append(tc.Hub, draughts.ToHub(m))
			}
			cases = append(cases, tc)

			if err := g.Apply(legal[rng.Intn(len(legal))]); err != nil {
				log.Printf("random game %d: %v", i+1, err)
				break
			}
		}
	}
	return cases
}
