package sorting

import (
	"context"

	"github.com/san-kum/sortviz/internal/visual"
)

// Merge is a top-down merge sort that merges adjacent runs in place, so it
// can be shown with the same swap and no-swap steps as the other
// algorithms.
type Merge struct{}

func (Merge) Name() string { return MergeSort }

func (m Merge) Sort(ctx context.Context, ops Ops) error {
	n := ops.Len()
	if err := m.sort(ctx, ops, 0, n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := ops.Settle(ctx, i); err != nil {
			return err
		}
	}
	return nil
}

func (m Merge) sort(ctx context.Context, ops Ops, lo, hi int) error {
	if hi-lo < 2 {
		return nil
	}
	mid := lo + (hi-lo)/2
	if err := m.sort(ctx, ops, lo, mid); err != nil {
		return err
	}
	if err := m.sort(ctx, ops, mid, hi); err != nil {
		return err
	}
	return m.merge(ctx, ops, lo, mid, hi)
}

// merge combines the sorted runs [lo, mid) and [mid, hi). Each comparison
// of the two fronts is one decision. A smaller right front is rotated in
// front of the left run with adjacent swaps; equal fronts keep the left
// element first.
func (m Merge) merge(ctx context.Context, ops Ops, lo, mid, hi int) error {
	i, j := lo, mid
	for i < j && j < hi {
		if err := ops.Track(ctx, visual.TrackerLeft, i); err != nil {
			return err
		}
		if err := ops.Track(ctx, visual.TrackerRight, j); err != nil {
			return err
		}

		rightSmaller, err := ops.Compare(i, j)
		if err != nil {
			return err
		}
		if !rightSmaller {
			if err := ops.NoSwap(ctx, i, j); err != nil {
				return err
			}
			i++
			continue
		}

		for k := j; k > i; k-- {
			if err := ops.Swap(ctx, k-1, k); err != nil {
				return err
			}
		}
		i++
		j++
	}
	return nil
}
