package draughts

// 弗里斯兰规则的吃子价值（千分制，王 1.501，兵 1）
const (
	frisianKingValue = 1501
	frisianManValue  = 1000
)

// LegalMoves 返回过滤后的合法回合。
// 连吃进行到一半时，返回本回合合法走法中与已走片段吻合的剩余部分。
func (g *Game) LegalMoves() []Move {
	turn := g.turnLegal()
	k := len(g.pending.Steps)
	out := make([]Move, 0, len(turn))
	for _, m := range turn {
		if k == 0 {
			out = append(out, m.clone())
			continue
		}
		if !hasPrefix(m, g.pending) {
			continue
		}
		out = append(out, Move{
			Steps:    append([]Step(nil), m.Steps[k:]...),
			Captured: append([]int(nil), m.Captured[len(g.pending.Captured):]...),
		})
	}
	return out
}

// turnLegal 在回合开始时生成并缓存本回合的合法走法。
// 连吃中途 turnMoves 一定已经有值：Push 和 play 都先经过它。
func (g *Game) turnLegal() []Move {
	if g.turnMoves == nil {
		moves := g.filterLegal(g.board.sequences(g.moveNumber()))
		if moves == nil {
			moves = []Move{}
		}
		g.turnMoves = moves
	}
	return g.turnMoves
}

func (g *Game) extendsLegal(s Step) bool {
	k := len(g.pending.Steps)
	for _, m := range g.turnLegal() {
		if len(m.Steps) > k && m.Steps[k] == s && hasPrefix(m, g.pending) {
			return true
		}
	}
	return false
}

func hasPrefix(m, prefix Move) bool {
	if len(m.Steps) < len(prefix.Steps) {
		return false
	}
	for i, s := range prefix.Steps {
		if m.Steps[i] != s {
			return false
		}
	}
	return true
}

// filterLegal 在伪合法回合上应用各变体的规则，重复调用结果不变
func (g *Game) filterLegal(moves []Move) []Move {
	if len(moves) == 0 {
		return moves
	}
	switch g.variant {
	case Russian:
		return moves
	case Frisian, Frysk:
		return g.filterFrisian(moves)
	}
	return longestCaptures(moves)
}

// 取吃子数最多的（平移回合长度都是 1）
func longestCaptures(moves []Move) []Move {
	longest := 0
	for _, m := range moves {
		if len(m.Steps) > longest {
			longest = len(m.Steps)
		}
	}
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if len(m.Steps) == longest {
			out = append(out, m)
		}
	}
	return out
}

func (g *Game) filterFrisian(moves []Move) []Move {
	b := g.board
	values := make([]int, len(moves))
	best := 0
	for i, m := range moves {
		for _, sq := range m.Captured {
			if pc, ok := b.PieceAt(sq); ok && pc.King {
				values[i] += frisianKingValue
			} else {
				values[i] += frisianManValue
			}
		}
		if values[i] > best {
			best = values[i]
		}
	}
	byValue := make([]Move, 0, len(moves))
	for i, m := range moves {
		if values[i] == best {
			byValue = append(byValue, m)
		}
	}

	// 同价值时，王能吃就必须用王吃
	withKing := false
	for _, m := range byValue {
		if g.startsWithKing(m) {
			withKing = true
			break
		}
	}
	out := byValue
	if withKing {
		out = make([]Move, 0, len(byValue))
		for _, m := range byValue {
			if !m.IsCapture() || g.startsWithKing(m) {
				out = append(out, m)
			}
		}
	}

	blocked, ok := g.frisianBlockedKing()
	if !ok {
		return out
	}
	kept := make([]Move, 0, len(out))
	for _, m := range out {
		if m.From() != blocked || m.IsCapture() {
			kept = append(kept, m)
		}
	}
	return kept
}

func (g *Game) startsWithKing(m Move) bool {
	if len(g.pending.Steps) > 0 {
		return g.boardPieceKing(g.pending.From())
	}
	return g.boardPieceKing(m.From())
}

func (g *Game) boardPieceKing(sq int) bool {
	pc, ok := g.board.PieceAt(sq)
	return ok && pc.King
}

// frisianBlockedKing：己方还有兵时，同一个王连续三个回合不吃子地走动，
// 且已经当了至少三个回合的王，则这一回合它只能吃子。
func (g *Game) frisianBlockedKing() (int, bool) {
	n := len(g.history)
	if n < 6 || len(g.pending.Steps) > 0 {
		return 0, false
	}
	hasMan := false
	for _, i := range g.board.search.playerPieces[g.board.turn] {
		if !g.board.pieces[i].King {
			hasMan = true
			break
		}
	}
	if !hasMan {
		return 0, false
	}
	last := [3]Move{g.history[n-6], g.history[n-4], g.history[n-2]}
	if last[0].To() != last[1].From() || last[1].To() != last[2].From() {
		return 0, false
	}
	for _, m := range last {
		if m.IsCapture() {
			return 0, false
		}
	}
	sq := last[2].To()
	pc, ok := g.board.PieceAt(sq)
	if !ok || !pc.King {
		return 0, false
	}
	if n-pc.BecameKing < 6 {
		return 0, false
	}
	return sq, true
}
