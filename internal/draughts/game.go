package draughts

import (
	"fmt"
	"strings"
)

// DefaultMoveLimit 连续不吃子的回合上限
const DefaultMoveLimit = 1000

// Game 包装 Board，负责历史记录、合法性过滤、和棋计数与记谱转换。
type Game struct {
	variant    Variant
	initialFEN string
	board      *Board

	steps        []Step   // 所有已走的原子步
	history      []Move   // 已提交的完整回合
	liStack      []string // history 的 li 记谱
	hubStack     []string // history 的 hub 记谱
	hashes       []uint64 // 每个回合边界的局面哈希，含初始局面
	pending      Move     // 本回合尚未提交的连吃片段
	turnMoves    []Move   // 本回合开始时的合法走法，提交后清空
	sinceCapture int
	moveLimit    int
}

type Option func(*Game)

// WithMoveLimit 设置连续不吃子的回合上限
func WithMoveLimit(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.moveLimit = n
		}
	}
}

// NewGame 创建对局。fen 可以是空串/"startpos"、盘面字符串或 lidraughts FEN。
func NewGame(v Variant, fen string, opts ...Option) (*Game, error) {
	if !v.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	boardString := strings.TrimSpace(fen)
	if boardString == "" || boardString == "startpos" || strings.Contains(boardString, ":") {
		var err error
		boardString, err = ParseLiFEN(v, boardString)
		if err != nil {
			return nil, err
		}
	}
	b, err := ParseBoardString(v, boardString)
	if err != nil {
		return nil, err
	}
	g := &Game{
		variant:    v,
		initialFEN: boardString,
		board:      b,
		hashes:     []uint64{b.Hash()},
		moveLimit:  DefaultMoveLimit,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// NewGameByName 按 lidraughts 变体名创建对局
func NewGameByName(variant, fen string, opts ...Option) (*Game, error) {
	v, err := ParseVariant(variant)
	if err != nil {
		return nil, err
	}
	return NewGame(v, fen, opts...)
}

// Clone 复制对局；Board 发布后不可变，直接共享。
func (g *Game) Clone() *Game {
	ng := *g
	ng.steps = append([]Step(nil), g.steps...)
	ng.history = append([]Move(nil), g.history...)
	ng.liStack = append([]string(nil), g.liStack...)
	ng.hubStack = append([]string(nil), g.hubStack...)
	ng.hashes = append([]uint64(nil), g.hashes...)
	ng.pending = g.pending.clone()
	return &ng
}

func (g *Game) Variant() Variant { return g.variant }

func (g *Game) InitialFEN() string { return g.initialFEN }

func (g *Game) Board() *Board { return g.board }

func (g *Game) WhoseTurn() Player { return g.board.turn }

func (g *Game) BoardString() string { return g.board.Encode() }

func (g *Game) LiFEN() string { return g.board.LiFEN() }

func (g *Game) MoveLimit() int { return g.moveLimit }

func (g *Game) MovesSinceCapture() int { return g.sinceCapture }

// History 返回已提交回合（连吃合并为一个 Move）
func (g *Game) History() []Move { return append([]Move(nil), g.history...) }

func (g *Game) LiHistory() []string { return append([]string(nil), g.liStack...) }

func (g *Game) HubHistory() []string { return append([]string(nil), g.hubStack...) }

// Steps 返回所有已走的原子步
func (g *Game) Steps() []Step { return append([]Step(nil), g.steps...) }

// Pending 返回本回合已走但未提交的连吃片段
func (g *Game) Pending() Move { return g.pending.clone() }

func (g *Game) moveNumber() int { return len(g.history) + 1 }

// Push 走一个原子步（连吃的其中一跳），必须是某个合法回合的下一跳。
// 换手时提交整个回合。
func (g *Game) Push(s Step) error {
	if !g.extendsLegal(s) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, s)
	}
	return g.push(s)
}

func (g *Game) push(s Step) error {
	turn := g.board.turn
	nb, captured, err := g.board.Apply(s, g.moveNumber())
	if err != nil {
		return err
	}
	g.board = nb
	g.steps = append(g.steps, s)
	if nb.prevCapture {
		g.sinceCapture = 0
	} else {
		g.sinceCapture++
	}

	g.pending.Steps = append(g.pending.Steps, s)
	if captured != 0 {
		g.pending.Captured = append(g.pending.Captured, captured)
	}
	if nb.turn == turn {
		return nil
	}
	m := g.pending
	g.pending = Move{}
	g.turnMoves = nil
	g.history = append(g.history, m)
	g.liStack = append(g.liStack, toLi(m))
	g.hubStack = append(g.hubStack, toHub(m))
	g.hashes = append(g.hashes, nb.Hash())
	return nil
}

// PushStep 接受 lidraughts API 的单步格式 "3228"
func (g *Game) PushStep(s string) error {
	sq, err := parseSquares(s, g.board.layout.NumSquares())
	if err != nil {
		return err
	}
	if len(sq) != 2 {
		return fmt.Errorf("%w: step %q must name exactly two squares", ErrMalformedNotation, s)
	}
	return g.Push(Step{From: sq[0], To: sq[1]})
}

// Apply 走一个完整回合；不在 LegalMoves 里就拒绝，对局不变。
func (g *Game) Apply(m Move) error {
	for _, lm := range g.LegalMoves() {
		if lm.SameSteps(m) {
			return g.play(lm)
		}
	}
	return fmt.Errorf("%w: %s", ErrIllegalMove, toLi(m))
}

// play 执行一个已知合法的回合
func (g *Game) play(m Move) error {
	for _, s := range m.Steps {
		if err := g.push(s); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) MoveLimitReached() bool { return g.sinceCapture >= g.moveLimit }

// IsRepetition 当前局面（回合边界）出现过至少 n 次
func (g *Game) IsRepetition(n int) bool {
	if len(g.pending.Steps) > 0 {
		return false
	}
	h := g.board.Hash()
	count := 0
	for _, seen := range g.hashes {
		if seen == h {
			count++
		}
	}
	return count >= n
}

func (g *Game) hasKing() bool {
	for _, pc := range g.board.pieces {
		if pc.King {
			return true
		}
	}
	return false
}

func (g *Game) IsOver() bool {
	if g.MoveLimitReached() {
		return true
	}
	if g.variant == Breakthrough && g.hasKing() {
		return true
	}
	return len(g.LegalMoves()) == 0
}

// Winner 返回胜方；和棋或未结束返回 NoPlayer
func (g *Game) Winner() Player {
	turn := g.board.turn
	if !g.board.HasMovablePieces(turn) {
		if g.variant == Antidraughts {
			return turn
		}
		return turn.Opponent()
	}
	if g.variant == Breakthrough {
		for _, pc := range g.board.pieces {
			if pc.King {
				return pc.Player
			}
		}
	}
	return NoPlayer
}
