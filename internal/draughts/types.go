package draughts

import "fmt"

type Player int8

const (
	NoPlayer Player = 0
	Black    Player = 1 // 上方，初始占 1..k 号格，向下走
	White    Player = 2 // 下方，初始占 N-k+1..N 号格，向上走，先手
)

func (p Player) Opponent() Player {
	switch p {
	case Black:
		return White
	case White:
		return Black
	}
	return NoPlayer
}

func (p Player) String() string {
	switch p {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "none"
}

// 子力走向：黑向下(+1)，白向上(-1)
func forwardDir(p Player) int {
	if p == Black {
		return +1
	}
	return -1
}

// NeverKing 表示从未升变
const NeverKing = -100

type Piece struct {
	Player     Player
	King       bool
	Square     int
	BecameKing int // 升变时的回合序号
}

// Step 是一次原子走子（单步移动或一次跳吃）
type Step struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func (s Step) String() string {
	return fmt.Sprintf("%02d%02d", s.From, s.To)
}

// Move 是一整个回合：一步平移，或一串连吃。
// Captured 与 Steps 一一对应，记录每一跳吃掉的格子；平移时为空。
type Move struct {
	Steps    []Step `json:"steps"`
	Captured []int  `json:"captured,omitempty"`
}

func (m Move) IsCapture() bool { return len(m.Captured) > 0 }

func (m Move) From() int {
	if len(m.Steps) == 0 {
		return 0
	}
	return m.Steps[0].From
}

func (m Move) To() int {
	if len(m.Steps) == 0 {
		return 0
	}
	return m.Steps[len(m.Steps)-1].To
}

// SameSteps 只比较走法路径，不看被吃子
func (m Move) SameSteps(o Move) bool {
	if len(m.Steps) != len(o.Steps) {
		return false
	}
	for i := range m.Steps {
		if m.Steps[i] != o.Steps[i] {
			return false
		}
	}
	return true
}

func (m Move) clone() Move {
	out := Move{Steps: append([]Step(nil), m.Steps...)}
	if len(m.Captured) > 0 {
		out.Captured = append([]int(nil), m.Captured...)
	}
	return out
}

func (m Move) String() string { return toLi(m) }
