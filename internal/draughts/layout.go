package draughts

// Layout 把 1..N 的格子编号映射到行列。
// 只给深色格编号：偶数行的深色格在奇数列(x)，奇数行在偶数列。
// x 是整盘(含浅色格)的列坐标，走子方向都在 (行, x) 坐标下计算。
type Layout struct {
	width  int // 每行深色格数
	height int
}

func layoutFor(v Variant) Layout {
	return Layout{width: v.Width(), height: v.Height()}
}

func (l Layout) NumSquares() int { return l.width * l.height }

func (l Layout) Contains(sq int) bool { return sq >= 1 && sq <= l.NumSquares() }

// Row = ⌈sq/width⌉-1
func (l Layout) Row(sq int) int { return (sq - 1) / l.width }

// Column = (sq-1) mod width
func (l Layout) Column(sq int) int { return (sq - 1) % l.width }

// Square 由行与压缩列取编号，越界返回 0
func (l Layout) Square(row, col int) int {
	if row < 0 || row >= l.height || col < 0 || col >= l.width {
		return 0
	}
	return row*l.width + col + 1
}

func (l Layout) file(sq int) int {
	row, col := l.Row(sq), l.Column(sq)
	if row%2 == 0 {
		return 2*col + 1
	}
	return 2 * col
}

// 按整盘坐标取格子；浅色格或越界返回 0
func (l Layout) squareAt(row, x int) int {
	if row < 0 || row >= l.height || x < 0 || x >= 2*l.width {
		return 0
	}
	if (row+x)%2 == 0 {
		return 0
	}
	return l.Square(row, x/2)
}

// 从 sq 沿 d 走 n 步
func (l Layout) offset(sq int, d dir, n int) int {
	return l.squareAt(l.Row(sq)+d.row*n, l.file(sq)+d.x*n)
}

// lastRow 返回 p 的升变行
func (l Layout) lastRow(p Player) int {
	if p == Black {
		return l.height - 1
	}
	return 0
}

type dir struct{ row, x int }

var (
	diagonalDirs = []dir{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	// 横向相邻深色格隔一列，纵向隔一行
	orthogonalDirs = []dir{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
)
