package game

import (
	"errors"
	"sync"
	"testing"

	"draughts/internal/draughts"
)

func TestManagerLifecycle(t *testing.T) {
	m := NewManager(draughts.WithMoveLimit(10))
	s, err := m.NewGame("russian", "")
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	got, err := m.Get(s.ID)
	if err != nil || got != s {
		t.Fatalf("get: %v", err)
	}
	s.View(func(g *draughts.Game) {
		if g.Variant() != draughts.Russian || g.MoveLimit() != 10 {
			t.Fatalf("unexpected game: %s limit=%d", g.Variant(), g.MoveLimit())
		}
	})
	if err := m.Delete(s.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := m.Get(s.ID); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("want ErrGameNotFound, got %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("len got=%d", m.Len())
	}
}

func TestManagerRejectsBadInput(t *testing.T) {
	m := NewManager()
	if _, err := m.NewGame("chess", ""); !errors.Is(err, draughts.ErrUnknownVariant) {
		t.Fatalf("want ErrUnknownVariant, got %v", err)
	}
	if _, err := m.NewGame("standard", "Wxyz"); !errors.Is(err, draughts.ErrInvalidFEN) {
		t.Fatalf("want ErrInvalidFEN, got %v", err)
	}
}

func TestUpdateFailureKeepsTimestamp(t *testing.T) {
	m := NewManager()
	s, err := m.NewGame("standard", "")
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	before := s.UpdatedAt
	err = s.Update(func(g *draughts.Game) error {
		return g.Apply(draughts.Move{Steps: []draughts.Step{{From: 31, To: 22}}})
	})
	if !errors.Is(err, draughts.ErrIllegalMove) {
		t.Fatalf("want ErrIllegalMove, got %v", err)
	}
	if !s.UpdatedAt.Equal(before) {
		t.Fatalf("failed update touched the timestamp")
	}
}

func TestConcurrentGames(t *testing.T) {
	m := NewManager()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := m.NewGame("standard", "")
			if err != nil {
				t.Errorf("new game: %v", err)
				return
			}
			err = s.Update(func(g *draughts.Game) error {
				mv, err := g.FromLi("3126")
				if err != nil {
					return err
				}
				return g.Apply(mv)
			})
			if err != nil {
				t.Errorf("play: %v", err)
			}
		}()
	}
	wg.Wait()
	if m.Len() != 8 {
		t.Fatalf("len got=%d want=8", m.Len())
	}
}
