package strategy

import (
	"errors"
	"strings"
	"testing"

	"draughts/internal/draughts"
)

func TestParse(t *testing.T) {
	cases := map[string]Kind{
		"random":              Random,
		"RandomMove":          Random,
		"first-li":            FirstLi,
		"FirstMoveLidraughts": FirstLi,
		"first-hub":           FirstHub,
		"firstmovepdn":        FirstPDN,
	}
	for name, want := range cases {
		got, err := Parse(name)
		if err != nil || got != want {
			t.Fatalf("parse %q got=%s err=%v want=%s", name, got, err, want)
		}
	}
	if _, err := Parse("minimax"); !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("want ErrUnknownStrategy, got %v", err)
	}
	if len(Kinds()) != 4 || Kinds()[0] != Random {
		t.Fatalf("kinds got=%v", Kinds())
	}
}

func TestFirstMoveStrategies(t *testing.T) {
	g, err := draughts.NewGame(draughts.Standard, "")
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	want := map[Kind]string{
		FirstLi:  "3126",
		FirstHub: "3126",
		FirstPDN: "3126",
	}
	for k, li := range want {
		s, err := New(k, 0)
		if err != nil {
			t.Fatalf("new %s: %v", k, err)
		}
		m, err := s.Choose(g)
		if err != nil {
			t.Fatalf("%s choose: %v", k, err)
		}
		if got := draughts.ToLi(m); got != li {
			t.Fatalf("%s got=%s want=%s", k, got, li)
		}
	}
}

// 06-01 要排在 31-26 前面，三种记谱的"第一步"一致
func TestFirstMovesAgreeOnLowSquares(t *testing.T) {
	board := []byte("W" + strings.Repeat("e", draughts.Standard.NumSquares()))
	board[6], board[31], board[45] = 'w', 'w', 'b'
	g, err := draughts.NewGame(draughts.Standard, string(board))
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	for _, k := range []Kind{FirstLi, FirstHub, FirstPDN} {
		s, err := New(k, 0)
		if err != nil {
			t.Fatalf("new %s: %v", k, err)
		}
		m, err := s.Choose(g)
		if err != nil {
			t.Fatalf("%s choose: %v", k, err)
		}
		if got := draughts.ToLi(m); got != "0601" {
			t.Fatalf("%s got=%s want=0601", k, got)
		}
	}
}

func TestRandomMoveIsLegalAndSeeded(t *testing.T) {
	g, err := draughts.NewGame(draughts.Russian, "")
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	a, _ := New(Random, 7)
	b, _ := New(Random, 7)
	for i := 0; i < 20 && !g.IsOver(); i++ {
		ma, err := a.Choose(g)
		if err != nil {
			t.Fatalf("choose: %v", err)
		}
		mb, _ := b.Choose(g)
		if !ma.SameSteps(mb) {
			t.Fatalf("same seed picked %s and %s", ma, mb)
		}
		if err := g.Apply(ma); err != nil {
			t.Fatalf("random move rejected: %v", err)
		}
	}
}

func TestNoMoves(t *testing.T) {
	g, err := draughts.NewGame(draughts.Standard, "W"+repeat('e', 49)+"b")
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	for _, k := range Kinds() {
		s, _ := New(k, 1)
		if _, err := s.Choose(g); !errors.Is(err, ErrNoMoves) {
			t.Fatalf("%s: want ErrNoMoves, got %v", k, err)
		}
	}
}

func repeat(c byte, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = c
	}
	return string(b)
}
