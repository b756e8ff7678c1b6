package draughts

// captureStep 是一次跳吃及其吃掉的格子
type captureStep struct {
	Step
	enemy int
}

// 兵：只能向前斜走一格；王：四条斜线滑行直到被挡
func (b *Board) genPositionalSteps(pc Piece, steps *[]Step) {
	from := pc.Square
	if !pc.King {
		fwd := forwardDir(pc.Player)
		for _, d := range diagonalDirs {
			if d.row != fwd {
				continue
			}
			to := b.layout.offset(from, d, 1)
			if to != 0 && b.isOpen(to) {
				*steps = append(*steps, Step{From: from, To: to})
			}
		}
		return
	}
	for _, d := range diagonalDirs {
		for n := 1; ; n++ {
			to := b.layout.offset(from, d, n)
			if to == 0 || !b.isOpen(to) {
				break
			}
			*steps = append(*steps, Step{From: from, To: to})
		}
	}
}

func (b *Board) captureDirs() []dir {
	if b.variant.orthogonalCaptures() {
		dirs := make([]dir, 0, len(diagonalDirs)+len(orthogonalDirs))
		dirs = append(dirs, diagonalDirs...)
		return append(dirs, orthogonalDirs...)
	}
	return diagonalDirs
}

func (b *Board) genCaptureSteps(pc Piece, steps *[]captureStep) {
	if pc.King {
		b.genKingCaptures(pc, steps)
		return
	}
	from := pc.Square
	enemy := pc.Player.Opponent()
	// 吃子时兵可以向后吃
	for _, d := range b.captureDirs() {
		over := b.layout.offset(from, d, 1)
		if over == 0 {
			continue
		}
		victim, ok := b.PieceAt(over)
		if !ok || victim.Player != enemy {
			continue
		}
		to := b.layout.offset(from, d, 2)
		if to == 0 || !b.isOpen(to) || b.isVacated(to) {
			continue
		}
		*steps = append(*steps, captureStep{Step: Step{From: from, To: to}, enemy: over})
	}
}

// 飞王吃子：线上恰好一个敌子，之后的每个空格都可落点。
// 遇到己方子、第二个子或本回合已吃掉的格子，这条线作废。
func (b *Board) genKingCaptures(pc Piece, steps *[]captureStep) {
	from := pc.Square
	for _, d := range b.captureDirs() {
		found := 0
		for n := 1; ; n++ {
			sq := b.layout.offset(from, d, n)
			if sq == 0 || b.isVacated(sq) {
				break
			}
			other, ok := b.PieceAt(sq)
			if ok {
				if other.Player == pc.Player || found != 0 {
					break
				}
				found = sq
				continue
			}
			if found != 0 {
				*steps = append(*steps, captureStep{Step: Step{From: from, To: sq}, enemy: found})
			}
		}
	}
}
