package draughts

// Searcher 是棋子列表的派生索引，只能由 Board.replacePieces 重建。
type Searcher struct {
	bySquare      []int // 格子 -> pieces 下标，空格为 -1；下标 0 不用
	filled        []int
	open          []int
	playerSquares [3][]int
	playerPieces  [3][]int // pieces 下标
}

func buildSearcher(pieces []Piece, n int) Searcher {
	s := Searcher{bySquare: make([]int, n+1)}
	for i := range s.bySquare {
		s.bySquare[i] = -1
	}
	for i, pc := range pieces {
		if pc.Square < 1 || pc.Square > n {
			continue
		}
		s.bySquare[pc.Square] = i
		s.filled = append(s.filled, pc.Square)
		s.playerSquares[pc.Player] = append(s.playerSquares[pc.Player], pc.Square)
		s.playerPieces[pc.Player] = append(s.playerPieces[pc.Player], i)
	}
	s.open = make([]int, 0, n-len(s.filled))
	for sq := 1; sq <= n; sq++ {
		if s.bySquare[sq] < 0 {
			s.open = append(s.open, sq)
		}
	}
	return s
}

func (s *Searcher) index(sq int) int {
	if sq < 1 || sq >= len(s.bySquare) {
		return -1
	}
	return s.bySquare[sq]
}

// 以下查询都返回副本，局面发布后索引不可改
func (s *Searcher) FilledSquares() []int { return append([]int(nil), s.filled...) }

func (s *Searcher) OpenSquares() []int { return append([]int(nil), s.open...) }

func (s *Searcher) SquaresOf(p Player) []int {
	if p != Black && p != White {
		return nil
	}
	return append([]int(nil), s.playerSquares[p]...)
}
