package draughts

import (
	"context"
	"testing"
)

func TestPerftStartPosition(t *testing.T) {
	cases := []struct {
		v     Variant
		depth int
		want  int64
	}{
		{Standard, 0, 1},
		{Standard, 1, 9},
		{Standard, 2, 81},
		{Brazilian, 2, 49},
		{Russian, 2, 49},
	}
	for _, c := range cases {
		g := mustGame(t, c.v, "")
		got, err := Perft(context.Background(), g, c.depth)
		if err != nil {
			t.Fatalf("%s depth %d: %v", c.v, c.depth, err)
		}
		if got != c.want {
			t.Fatalf("%s depth %d: got=%d want=%d", c.v, c.depth, got, c.want)
		}
		if len(g.History()) != 0 {
			t.Fatalf("perft modified the game")
		}
	}
}

func TestDivideSumsToPerft(t *testing.T) {
	g := mustGame(t, Standard, "")
	div, err := Divide(context.Background(), g, 3)
	if err != nil {
		t.Fatalf("divide: %v", err)
	}
	total, err := Perft(context.Background(), g, 3)
	if err != nil {
		t.Fatalf("perft: %v", err)
	}
	var sum int64
	for _, n := range div {
		sum += n
	}
	if len(div) != 9 || sum != total {
		t.Fatalf("divide got %d moves summing to %d, perft=%d", len(div), sum, total)
	}
}

func TestPerftCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Perft(ctx, mustGame(t, Standard, ""), 3); err == nil {
		t.Fatalf("cancelled perft should fail")
	}
}
