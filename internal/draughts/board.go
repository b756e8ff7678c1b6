package draughts

import (
	"fmt"
	"sort"
)

// Board 是一个完整局面。发布出去（进入对局历史）后不再修改，
// 每次走子都在副本上进行。
type Board struct {
	variant     Variant
	layout      Layout
	turn        Player
	pieces      []Piece
	prevCapture bool
	continuing  int   // 连吃中必须继续的棋子所在格，0 表示没有
	vacated     []int // 本回合已经吃掉的格子
	search      Searcher
}

func newBoard(v Variant, pieces []Piece, turn Player) *Board {
	b := &Board{
		variant: v,
		layout:  layoutFor(v),
		turn:    turn,
	}
	b.replacePieces(pieces)
	return b
}

// replacePieces 是修改棋子列表的唯一入口，返回前同步重建索引
func (b *Board) replacePieces(pieces []Piece) {
	sort.SliceStable(pieces, func(i, j int) bool { return pieces[i].Square < pieces[j].Square })
	b.pieces = pieces
	b.search = buildSearcher(b.pieces, b.layout.NumSquares())
}

func (b *Board) clone() *Board {
	nb := *b
	nb.vacated = append([]int(nil), b.vacated...)
	nb.replacePieces(append([]Piece(nil), b.pieces...))
	return &nb
}

func (b *Board) Variant() Variant { return b.variant }

func (b *Board) Layout() Layout { return b.layout }

func (b *Board) Turn() Player { return b.turn }

func (b *Board) PreviousMoveWasCapture() bool { return b.prevCapture }

// Continuing 返回连吃中必须继续走的格子
func (b *Board) Continuing() (int, bool) { return b.continuing, b.continuing != 0 }

func (b *Board) Searcher() *Searcher { return &b.search }

func (b *Board) Pieces() []Piece { return append([]Piece(nil), b.pieces...) }

func (b *Board) PieceAt(sq int) (Piece, bool) {
	i := b.search.index(sq)
	if i < 0 {
		return Piece{}, false
	}
	return b.pieces[i], true
}

func (b *Board) isOpen(sq int) bool { return b.search.index(sq) < 0 }

func (b *Board) isVacated(sq int) bool {
	for _, v := range b.vacated {
		if v == sq {
			return true
		}
	}
	return false
}

// PiecesInPlay：连吃中只有那一个子，否则是走子方全部棋子
func (b *Board) PiecesInPlay() []Piece {
	if b.continuing != 0 {
		if pc, ok := b.PieceAt(b.continuing); ok {
			return []Piece{pc}
		}
		return nil
	}
	out := make([]Piece, 0, len(b.search.playerPieces[b.turn]))
	for _, i := range b.search.playerPieces[b.turn] {
		out = append(out, b.pieces[i])
	}
	return out
}

func (b *Board) captureMoves() []captureStep {
	var steps []captureStep
	for _, pc := range b.PiecesInPlay() {
		b.genCaptureSteps(pc, &steps)
	}
	return steps
}

func (b *Board) positionalMoves() []Step {
	var steps []Step
	for _, pc := range b.PiecesInPlay() {
		b.genPositionalSteps(pc, &steps)
	}
	return steps
}

// PossibleSteps 生成伪合法的原子步：有吃必吃
func (b *Board) PossibleSteps() (steps []Step, capture bool) {
	if caps := b.captureMoves(); len(caps) > 0 {
		steps = make([]Step, len(caps))
		for i, c := range caps {
			steps[i] = c.Step
		}
		return steps, true
	}
	return b.positionalMoves(), false
}

// HasMovablePieces 判断 p 是否还有能动的子
func (b *Board) HasMovablePieces(p Player) bool {
	var caps []captureStep
	var steps []Step
	for _, i := range b.search.playerPieces[p] {
		pc := b.pieces[i]
		b.genCaptureSteps(pc, &caps)
		b.genPositionalSteps(pc, &steps)
		if len(caps) > 0 || len(steps) > 0 {
			return true
		}
	}
	return false
}

// Apply 在副本上执行一步，返回新局面和被吃格（0 表示没吃子）。
// moveNumber 是当前回合序号，用于记录升变时间。
func (b *Board) Apply(s Step, moveNumber int) (*Board, int, error) {
	if caps := b.captureMoves(); len(caps) > 0 {
		for _, c := range caps {
			if c.Step == s {
				return b.applyCapture(c, moveNumber), c.enemy, nil
			}
		}
		return nil, 0, fmt.Errorf("%w: %s (capture required)", ErrIllegalMove, s)
	}
	for _, st := range b.positionalMoves() {
		if st == s {
			return b.applyPositional(s, moveNumber), 0, nil
		}
	}
	return nil, 0, fmt.Errorf("%w: %s", ErrIllegalMove, s)
}

func (b *Board) applyPositional(s Step, moveNumber int) *Board {
	nb := b.clone()
	pieces := nb.pieces
	i := nb.search.index(s.From)
	pieces[i].Square = s.To
	nb.promote(&pieces[i], moveNumber)
	nb.replacePieces(pieces)

	nb.prevCapture = false
	nb.continuing = 0
	nb.vacated = nil
	nb.turn = nb.turn.Opponent()
	return nb
}

func (b *Board) applyCapture(c captureStep, moveNumber int) *Board {
	nb := b.clone()
	nb.prevCapture = true

	var mover Piece
	pieces := make([]Piece, 0, len(nb.pieces)-1)
	for _, pc := range nb.pieces {
		switch pc.Square {
		case c.enemy:
			continue
		case c.From:
			mover = pc
			continue
		}
		pieces = append(pieces, pc)
	}
	originallyKing := mover.King
	mover.Square = c.To
	nb.promote(&mover, moveNumber)
	nb.vacated = append(nb.vacated, c.enemy)

	var further []captureStep
	if !originallyKing && mover.King && !nb.variant.promotesMidCapture() {
		// 连吃途中先按兵继续探测，吃不动了才真正升变
		probe := mover
		probe.King = false
		probe.BecameKing = NeverKing
		nb.replacePieces(withPiece(pieces, probe))
		nb.genCaptureSteps(probe, &further)
		if len(further) == 0 {
			nb.replacePieces(withPiece(pieces, mover))
		}
	} else {
		nb.replacePieces(withPiece(pieces, mover))
		nb.genCaptureSteps(mover, &further)
	}

	if len(further) > 0 {
		nb.continuing = c.To
		return nb
	}
	nb.continuing = 0
	nb.vacated = nil
	nb.turn = nb.turn.Opponent()
	return nb
}

// replacePieces 会原地排序，这里每次给一份新切片
func withPiece(pieces []Piece, pc Piece) []Piece {
	out := make([]Piece, len(pieces)+1)
	copy(out, pieces)
	out[len(pieces)] = pc
	return out
}

func (b *Board) promote(pc *Piece, moveNumber int) {
	if pc.King {
		return
	}
	if b.layout.Row(pc.Square) == b.layout.lastRow(pc.Player) {
		pc.King = true
		pc.BecameKing = moveNumber
	}
}

// sequences 递归展开所有完整回合（连吃展开到换手为止）
func (b *Board) sequences(moveNumber int) []Move {
	caps := b.captureMoves()
	if len(caps) == 0 {
		steps := b.positionalMoves()
		out := make([]Move, len(steps))
		for i, s := range steps {
			out[i] = Move{Steps: []Step{s}}
		}
		return out
	}
	var out []Move
	for _, c := range caps {
		nb := b.applyCapture(c, moveNumber)
		if nb.turn != b.turn {
			out = append(out, Move{Steps: []Step{c.Step}, Captured: []int{c.enemy}})
			continue
		}
		for _, tail := range nb.sequences(moveNumber) {
			m := Move{
				Steps:    append([]Step{c.Step}, tail.Steps...),
				Captured: append([]int{c.enemy}, tail.Captured...),
			}
			out = append(out, m)
		}
	}
	return out
}
