package strategy

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"draughts/internal/draughts"
)

var (
	ErrNoMoves         = errors.New("no legal moves")
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// Kind 是内置选步策略的封闭枚举
type Kind int

const (
	Random Kind = iota
	FirstLi
	FirstHub
	FirstPDN
)

var kindNames = map[Kind]string{
	Random:   "random",
	FirstLi:  "first-li",
	FirstHub: "first-hub",
	FirstPDN: "first-pdn",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("strategy(%d)", int(k))
}

// Parse 按名字取策略，启动时调用一次
func Parse(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, s := range kindNames {
		if s == name {
			return k, nil
		}
	}
	switch name {
	case "randommove", "":
		return Random, nil
	case "firstmovelidraughts", "firstmoveli":
		return FirstLi, nil
	case "firstmovehub":
		return FirstHub, nil
	case "firstmovepdn":
		return FirstPDN, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Kinds 返回所有策略，按枚举顺序
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames))
	for k := range kindNames {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Strategy 从当前合法走法里挑一步，不改动对局
type Strategy interface {
	Kind() Kind
	Choose(g *draughts.Game) (draughts.Move, error)
}

// New 创建策略；seed 只影响 Random
func New(k Kind, seed int64) (Strategy, error) {
	switch k {
	case Random:
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return &randomMove{rng: rand.New(rand.NewSource(seed))}, nil
	case FirstLi:
		return firstBy{kind: FirstLi, key: func(_ *draughts.Game, ms []draughts.Move) []string {
			keys := make([]string, len(ms))
			for i, m := range ms {
				keys[i] = draughts.ToLi(m)
			}
			return keys
		}}, nil
	case FirstHub:
		return firstBy{kind: FirstHub, key: func(_ *draughts.Game, ms []draughts.Move) []string {
			keys := make([]string, len(ms))
			for i, m := range ms {
				keys[i] = draughts.ToHub(m)
			}
			return keys
		}}, nil
	case FirstPDN:
		return firstBy{kind: FirstPDN, key: func(g *draughts.Game, _ []draughts.Move) []string {
			return g.PDNMoves()
		}}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, k)
}

type randomMove struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *randomMove) Kind() Kind { return Random }

func (s *randomMove) Choose(g *draughts.Game) (draughts.Move, error) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return draughts.Move{}, ErrNoMoves
	}
	s.mu.Lock()
	i := s.rng.Intn(len(moves))
	s.mu.Unlock()
	return moves[i], nil
}

// firstBy 取按某种记谱排序后的第一步
type firstBy struct {
	kind Kind
	key  func(g *draughts.Game, moves []draughts.Move) []string
}

func (s firstBy) Kind() Kind { return s.kind }

func (s firstBy) Choose(g *draughts.Game) (draughts.Move, error) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return draughts.Move{}, ErrNoMoves
	}
	keys := s.key(g, moves)
	best := 0
	for i := 1; i < len(moves); i++ {
		if keys[i] < keys[best] {
			best = i
		}
	}
	return moves[best], nil
}
