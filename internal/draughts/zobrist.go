package draughts

import "sync"

// zobristTable 每格四个键：白兵、白王、黑兵、黑王，下标 sq*4+kind
type zobristTable struct {
	pieces []uint64
	side   uint64
}

var (
	zobristOnce sync.Once
	zobrist     zobristTable
)

func splitmix(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func zobristKeys() *zobristTable {
	zobristOnce.Do(func() {
		squares := 0
		for v := range variantNames {
			squares = max(squares, v.NumSquares())
		}
		var state uint64
		zobrist.pieces = make([]uint64, (squares+1)*4)
		for i := 4; i < len(zobrist.pieces); i++ {
			zobrist.pieces[i] = splitmix(&state)
		}
		zobrist.side = splitmix(&state)
	})
	return &zobrist
}

func (z *zobristTable) key(pc Piece) uint64 {
	kind := 0
	if pc.Player == Black {
		kind = 2
	}
	if pc.King {
		kind++
	}
	i := pc.Square*4 + kind
	if pc.Square < 1 || i >= len(z.pieces) {
		return 0
	}
	return z.pieces[i]
}

// Hash 全量计算局面的 Zobrist 哈希，用于判断重复局面。
func (b *Board) Hash() uint64 {
	z := zobristKeys()
	var h uint64
	for _, pc := range b.pieces {
		h ^= z.key(pc)
	}
	if b.turn == Black {
		h ^= z.side
	}
	return h
}
