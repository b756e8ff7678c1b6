package draughts

import (
	"fmt"
	"strings"
)

type Variant int8

const (
	Standard Variant = iota // 国际跳棋 10x10
	Brazilian
	Russian
	Frisian
	Frysk
	Breakthrough
	Antidraughts
)

var variantNames = map[Variant]string{
	Standard:     "standard",
	Brazilian:    "brazilian",
	Russian:      "russian",
	Frisian:      "frisian",
	Frysk:        "frysk!",
	Breakthrough: "breakthrough",
	Antidraughts: "antidraughts",
}

var variantAliases = map[string]Variant{
	"standard":      Standard,
	"international": Standard,
	"from position": Standard,
	"normal":        Standard,
	"brazilian":     Brazilian,
	"russian":       Russian,
	"frisian":       Frisian,
	"frysk!":        Frysk,
	"frysk":         Frysk,
	"breakthrough":  Breakthrough,
	"bt":            Breakthrough,
	"antidraughts":  Antidraughts,
	"losing":        Antidraughts,
}

// ParseVariant 接受 lidraughts 的变体名及常见别名
func ParseVariant(name string) (Variant, error) {
	v, ok := variantAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return v, nil
}

func (v Variant) String() string {
	if s, ok := variantNames[v]; ok {
		return s
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

func (v Variant) valid() bool {
	_, ok := variantNames[v]
	return ok
}

// Width 每行可走格数
func (v Variant) Width() int {
	if v == Brazilian || v == Russian {
		return 4
	}
	return 5
}

func (v Variant) Height() int {
	if v == Brazilian || v == Russian {
		return 8
	}
	return 10
}

func (v Variant) NumSquares() int { return v.Width() * v.Height() }

func (v Variant) startRows() int {
	switch v {
	case Frysk:
		return 1
	case Brazilian, Russian:
		return 3
	}
	return 4
}

// 弗里斯兰规则：横竖也能吃
func (v Variant) orthogonalCaptures() bool {
	return v == Frisian || v == Frysk
}

// 俄罗斯规则：连吃途中到底线立刻升变
func (v Variant) promotesMidCapture() bool {
	return v == Russian
}

// StartPosition 返回该变体初始局面的盘面字符串
func (v Variant) StartPosition() string {
	n := v.NumSquares()
	k := v.startRows() * v.Width()
	var sb strings.Builder
	sb.Grow(n + 1)
	sb.WriteByte('W')
	for sq := 1; sq <= n; sq++ {
		switch {
		case sq <= k:
			sb.WriteByte('b')
		case sq > n-k:
			sb.WriteByte('w')
		default:
			sb.WriteByte('e')
		}
	}
	return sb.String()
}
