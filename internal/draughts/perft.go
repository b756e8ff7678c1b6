package draughts

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Perft 统计 depth 个回合后的叶子数（连吃算一个回合）。
// 第一层按走法分给各 goroutine，每个 goroutine 用自己的 Clone。
func Perft(ctx context.Context, g *Game, depth int) (int64, error) {
	if depth <= 0 {
		return 1, nil
	}
	moves := g.LegalMoves()
	if depth == 1 {
		return int64(len(moves)), nil
	}
	counts := make([]int64, len(moves))
	eg, ctx := errgroup.WithContext(ctx)
	for i, m := range moves {
		i, m := i, m
		eg.Go(func() error {
			child := g.Clone()
			if err := child.play(m); err != nil {
				return fmt.Errorf("perft %s: %w", toLi(m), err)
			}
			n, err := perft(ctx, child, depth-1)
			if err != nil {
				return err
			}
			counts[i] = n
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	var total int64
	for _, n := range counts {
		total += n
	}
	return total, nil
}

func perft(ctx context.Context, g *Game, depth int) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	moves := g.LegalMoves()
	if depth == 1 {
		return int64(len(moves)), nil
	}
	var total int64
	for _, m := range moves {
		child := g.Clone()
		if err := child.play(m); err != nil {
			return 0, fmt.Errorf("perft %s: %w", toLi(m), err)
		}
		n, err := perft(ctx, child, depth-1)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// Divide 返回第一层每个走法（li 记谱）下的叶子数
func Divide(ctx context.Context, g *Game, depth int) (map[string]int64, error) {
	out := make(map[string]int64)
	if depth <= 0 {
		return out, nil
	}
	for _, m := range g.LegalMoves() {
		child := g.Clone()
		if err := child.play(m); err != nil {
			return nil, fmt.Errorf("divide %s: %w", toLi(m), err)
		}
		n, err := Perft(ctx, child, depth-1)
		if err != nil {
			return nil, err
		}
		out[toLi(m)] = n
	}
	return out, nil
}
