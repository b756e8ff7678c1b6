package game

import (
	"sync"
	"time"

	"draughts/internal/draughts"
)

// GameState 是一局对局及其元数据，对 game 的访问都要经过 Update/View
type GameState struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time

	mu   sync.Mutex
	game *draughts.Game
}

// Update 在锁内修改对局；fn 返回错误时不刷新 UpdatedAt
func (s *GameState) Update(fn func(g *draughts.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.game); err != nil {
		return err
	}
	s.UpdatedAt = time.Now()
	return nil
}

// View 在锁内只读访问对局
func (s *GameState) View(fn func(g *draughts.Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}

// Snapshot 返回对局的独立副本
func (s *GameState) Snapshot() *draughts.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Clone()
}
