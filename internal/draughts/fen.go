package draughts

import (
	"fmt"
	"strconv"
	"strings"
)

// 盘面字符串：首字母 W/B 表示走子方，之后每格一个字母：
// e 空，w/b 兵，W/B 王。
func (b *Board) Encode() string {
	n := b.layout.NumSquares()
	var sb strings.Builder
	sb.Grow(n + 1)
	if b.turn == White {
		sb.WriteByte('W')
	} else {
		sb.WriteByte('B')
	}
	for sq := 1; sq <= n; sq++ {
		pc, ok := b.PieceAt(sq)
		if !ok {
			sb.WriteByte('e')
			continue
		}
		sb.WriteByte(pieceToChar(pc))
	}
	return sb.String()
}

func pieceToChar(pc Piece) byte {
	var c byte = 'b'
	if pc.Player == White {
		c = 'w'
	}
	if pc.King {
		c -= 'a' - 'A'
	}
	return c
}

// ParseBoardString 解析 Encode 的输出
func ParseBoardString(v Variant, s string) (*Board, error) {
	if !v.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	n := v.NumSquares()
	if len(s) != n+1 {
		return nil, fmt.Errorf("%w: want %d characters for %s, got %d", ErrInvalidFEN, n+1, v, len(s))
	}
	var turn Player
	switch s[0] {
	case 'W', 'w':
		turn = White
	case 'B', 'b':
		turn = Black
	default:
		return nil, fmt.Errorf("%w: bad side to move %q", ErrInvalidFEN, s[0])
	}
	var pieces []Piece
	for i := 1; i < len(s); i++ {
		pc := Piece{Square: i, BecameKing: NeverKing}
		switch s[i] {
		case 'e':
			continue
		case 'w':
			pc.Player = White
		case 'W':
			pc.Player, pc.King = White, true
		case 'b':
			pc.Player = Black
		case 'B':
			pc.Player, pc.King = Black, true
		default:
			return nil, fmt.Errorf("%w: bad square letter %q at %d", ErrInvalidFEN, s[i], i)
		}
		pieces = append(pieces, pc)
	}
	return newBoard(v, pieces, turn), nil
}

// ParseLiFEN 把 lidraughts 的 FEN（W:W31,32,K40:B1-20）转成盘面字符串。
// "startpos" 返回该变体的初始局面；":H0:F1" 这类尾部字段忽略。
func ParseLiFEN(v Variant, fen string) (string, error) {
	if !v.valid() {
		return "", fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	fen = strings.TrimSpace(fen)
	if fen == "" || fen == "startpos" {
		return v.StartPosition(), nil
	}
	parts := strings.Split(strings.TrimSuffix(fen, "."), ":")
	if len(parts) < 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidFEN, fen)
	}
	n := v.NumSquares()
	squares := make([]byte, n+1)
	for i := range squares {
		squares[i] = 'e'
	}
	switch parts[0] {
	case "W", "w":
		squares[0] = 'W'
	case "B", "b":
		squares[0] = 'B'
	default:
		return "", fmt.Errorf("%w: bad side to move in %q", ErrInvalidFEN, fen)
	}
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		var man byte
		switch part[0] {
		case 'W', 'w':
			man = 'w'
		case 'B', 'b':
			man = 'b'
		default:
			// H（半回合计数）、F 等字段
			continue
		}
		if len(part) == 1 {
			continue
		}
		for _, tok := range strings.Split(part[1:], ",") {
			if tok == "" {
				continue
			}
			c := man
			if tok[0] == 'K' || tok[0] == 'k' {
				c = man - ('a' - 'A')
				tok = tok[1:]
			}
			lo, hi, err := parseSquareRange(tok, n)
			if err != nil {
				return "", fmt.Errorf("%w: %v", ErrInvalidFEN, err)
			}
			for sq := lo; sq <= hi; sq++ {
				squares[sq] = c
			}
		}
	}
	return string(squares), nil
}

func parseSquareRange(tok string, n int) (int, int, error) {
	lo, hi := tok, tok
	if i := strings.IndexByte(tok, '-'); i >= 0 {
		lo, hi = tok[:i], tok[i+1:]
	}
	a, err := strconv.Atoi(lo)
	if err != nil {
		return 0, 0, fmt.Errorf("bad square %q", tok)
	}
	b, err := strconv.Atoi(hi)
	if err != nil {
		return 0, 0, fmt.Errorf("bad square %q", tok)
	}
	if a < 1 || b > n || a > b {
		return 0, 0, fmt.Errorf("square %q out of range 1..%d", tok, n)
	}
	return a, b, nil
}

// LiFEN 生成 lidraughts 格式的 FEN
func (b *Board) LiFEN() string {
	var sb strings.Builder
	if b.turn == White {
		sb.WriteString("W")
	} else {
		sb.WriteString("B")
	}
	for _, p := range []Player{White, Black} {
		sb.WriteByte(':')
		if p == White {
			sb.WriteByte('W')
		} else {
			sb.WriteByte('B')
		}
		for i, sq := range b.search.SquaresOf(p) {
			if i > 0 {
				sb.WriteByte(',')
			}
			if pc, _ := b.PieceAt(sq); pc.King {
				sb.WriteByte('K')
			}
			sb.WriteString(strconv.Itoa(sq))
		}
	}
	return sb.String()
}
