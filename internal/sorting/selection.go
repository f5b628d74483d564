package sorting

import (
	"context"

	"github.com/san-kum/sortviz/internal/visual"
)

type Selection struct{}

func (Selection) Name() string { return SelectionSort }

// Sort scans [i, n) for a strictly smaller value, so ties keep the
// earlier minimum and never cause a swap. Every scanned position counts
// as one comparison, the first being the minimum against itself.
func (Selection) Sort(ctx context.Context, ops Ops) error {
	n := ops.Len()
	for i := 0; i < n; i++ {
		minIdx := i
		if err := ops.Track(ctx, visual.TrackerMinimum, i); err != nil {
			return err
		}

		for j := i; j < n; j++ {
			if err := ops.Track(ctx, visual.TrackerItem, j); err != nil {
				return err
			}
			smaller, err := ops.Compare(minIdx, j)
			if err != nil {
				return err
			}
			if smaller {
				minIdx = j
				if err := ops.Track(ctx, visual.TrackerMinimum, j); err != nil {
					return err
				}
			}
		}

		if minIdx != i {
			if err := ops.Swap(ctx, i, minIdx); err != nil {
				return err
			}
		}
		if err := ops.Settle(ctx, i); err != nil {
			return err
		}
	}
	return nil
}
