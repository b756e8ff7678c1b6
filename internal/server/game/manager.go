package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"draughts/internal/draughts"
)

var ErrGameNotFound = errors.New("game not found")

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
	opts  []draughts.Option
}

// NewManager 的 opts 会用于之后创建的每一局
func NewManager(opts ...draughts.Option) *Manager {
	return &Manager{games: make(map[string]*GameState), opts: opts}
}

// NewGame 按变体名和初始局面（空串、盘面字符串或 lidraughts FEN）开一局
func (m *Manager) NewGame(variant, fen string) (*GameState, error) {
	g, err := draughts.NewGameByName(variant, fen, m.opts...)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	s := &GameState{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		game:      g,
	}
	m.games[s.ID] = s
	return s, nil
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return s, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	delete(m.games, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
