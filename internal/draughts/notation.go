package draughts

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// 三种记谱：
//   li  ：起点加每一跳的落点，两位数拼接，"322312"
//   hub ：起点-终点，吃子时用 x 连上排序后的被吃格，"32x12x18x28"
//   PDN ：起终点能唯一确定时用 "32x12"，否则退回完整路径 "32x23x12"；格号同样补足两位

func pad2(sq int) string {
	if sq < 10 {
		return "0" + strconv.Itoa(sq)
	}
	return strconv.Itoa(sq)
}

func toLi(m Move) string {
	if len(m.Steps) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(pad2(m.Steps[0].From))
	for _, s := range m.Steps {
		sb.WriteString(pad2(s.To))
	}
	return sb.String()
}

func toHub(m Move) string {
	if len(m.Steps) == 0 {
		return ""
	}
	parts := []string{pad2(m.From()), pad2(m.To())}
	if !m.IsCapture() {
		return strings.Join(parts, "-")
	}
	caps := make([]string, len(m.Captured))
	for i, sq := range m.Captured {
		caps[i] = pad2(sq)
	}
	sort.Strings(caps)
	return strings.Join(append(parts, caps...), "x")
}

// ToLi 返回 li 记谱
func ToLi(m Move) string { return toLi(m) }

// ToHub 返回 hub 记谱
func ToHub(m Move) string { return toHub(m) }

// LiSteps 把回合拆成 lidraughts API 的逐步格式 ["3223", "2312"]
func LiSteps(m Move) []string {
	out := make([]string, len(m.Steps))
	for i, s := range m.Steps {
		out[i] = pad2(s.From) + pad2(s.To)
	}
	return out
}

// ToPDN 生成 PDN 记谱。m 必须在当前 LegalMoves 里。
func (g *Game) ToPDN(m Move) (string, error) {
	legal := g.LegalMoves()
	found := false
	same := 0
	for _, lm := range legal {
		if lm.SameSteps(m) {
			found = true
		}
		if lm.From() == m.From() && lm.To() == m.To() {
			same++
		}
	}
	if !found {
		return "", fmt.Errorf("%w: %s", ErrIllegalMove, toLi(m))
	}
	return pdnFor(m, same == 1), nil
}

func pdnFor(m Move, short bool) string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	if short {
		return pad2(m.From()) + sep + pad2(m.To())
	}
	parts := make([]string, 0, len(m.Steps)+1)
	parts = append(parts, pad2(m.From()))
	for _, s := range m.Steps {
		parts = append(parts, pad2(s.To))
	}
	return strings.Join(parts, sep)
}

// PDNMoves 给当前所有合法回合生成 PDN，与 LegalMoves 一一对应
func (g *Game) PDNMoves() []string {
	legal := g.LegalMoves()
	ends := make(map[[2]int]int, len(legal))
	for _, m := range legal {
		ends[[2]int{m.From(), m.To()}]++
	}
	out := make([]string, len(legal))
	for i, m := range legal {
		out[i] = pdnFor(m, ends[[2]int{m.From(), m.To()}] == 1)
	}
	return out
}

// parseSquares 把连续的两位数格号切开
func parseSquares(s string, n int) ([]int, error) {
	if len(s) == 0 || len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedNotation, s)
	}
	out := make([]int, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		sq, err := parseSquare(s[i:i+2], n)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedNotation, s)
		}
		out = append(out, sq)
	}
	return out, nil
}

func parseSquare(tok string, n int) (int, error) {
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrMalformedNotation, tok)
		}
	}
	sq, err := strconv.Atoi(tok)
	if err != nil || sq < 1 || sq > n {
		return 0, fmt.Errorf("%w: square %q out of range 1..%d", ErrMalformedNotation, tok, n)
	}
	return sq, nil
}

// splitTokens 按 '-'/'x' 切分；没有分隔符时按两位一组切
func splitTokens(s string, n int) ([]int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, fmt.Errorf("%w: empty move", ErrMalformedNotation)
	}
	if !strings.ContainsAny(s, "-x") {
		return parseSquares(s, n)
	}
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == 'x' })
	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedNotation, s)
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		if len(f) > 2 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedNotation, s)
		}
		sq, err := parseSquare(f, n)
		if err != nil {
			return nil, err
		}
		out[i] = sq
	}
	return out, nil
}

func (g *Game) numSquares() int { return g.board.layout.NumSquares() }

func chainMatches(m Move, sq []int) bool {
	if len(sq) != len(m.Steps)+1 || m.From() != sq[0] {
		return false
	}
	for i, s := range m.Steps {
		if s.To != sq[i+1] {
			return false
		}
	}
	return true
}

// FromLi 在当前合法回合里找 li 记谱对应的走法
func (g *Game) FromLi(s string) (Move, error) {
	sq, err := parseSquares(strings.TrimSpace(s), g.numSquares())
	if err != nil {
		return Move{}, err
	}
	if len(sq) < 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrMalformedNotation, s)
	}
	for _, m := range g.LegalMoves() {
		if chainMatches(m, sq) {
			return m, nil
		}
	}
	return Move{}, fmt.Errorf("%w: %s", ErrIllegalMove, s)
}

// FromHub 解析 hub 记谱：起点、终点以及（吃子时）被吃格
func (g *Game) FromHub(s string) (Move, error) {
	sq, err := splitTokens(s, g.numSquares())
	if err != nil {
		return Move{}, err
	}
	if len(sq) < 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrMalformedNotation, s)
	}
	want := append([]int(nil), sq[2:]...)
	sort.Ints(want)
	for _, m := range g.LegalMoves() {
		if m.From() != sq[0] || m.To() != sq[1] || len(m.Captured) != len(want) {
			continue
		}
		got := append([]int(nil), m.Captured...)
		sort.Ints(got)
		match := true
		for i := range got {
			if got[i] != want[i] {
				match = false
				break
			}
		}
		if match {
			return m, nil
		}
	}
	return Move{}, fmt.Errorf("%w: %s", ErrIllegalMove, s)
}

// FromPDN 先按完整路径匹配，再按起终点匹配；起终点对应多个回合时报错
func (g *Game) FromPDN(s string) (Move, error) {
	sq, err := splitTokens(s, g.numSquares())
	if err != nil {
		return Move{}, err
	}
	if len(sq) < 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrMalformedNotation, s)
	}
	legal := g.LegalMoves()
	for _, m := range legal {
		if chainMatches(m, sq) {
			return m, nil
		}
	}
	var hits []Move
	if len(sq) == 2 {
		for _, m := range legal {
			if m.From() == sq[0] && m.To() == sq[1] {
				hits = append(hits, m)
			}
		}
	}
	switch len(hits) {
	case 0:
		return Move{}, fmt.Errorf("%w: %s", ErrIllegalMove, s)
	case 1:
		return hits[0], nil
	}
	return Move{}, fmt.Errorf("%w: %s is ambiguous (%d moves)", ErrIllegalMove, s, len(hits))
}

// ParseMove 按记谱名解析："li"、"hub"、"pdn"
func (g *Game) ParseMove(notation, s string) (Move, error) {
	switch strings.ToLower(notation) {
	case "", "li":
		return g.FromLi(s)
	case "hub":
		return g.FromHub(s)
	case "pdn":
		return g.FromPDN(s)
	}
	return Move{}, fmt.Errorf("%w: unknown notation %q", ErrMalformedNotation, notation)
}
