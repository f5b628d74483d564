package sorting

import "context"

type Bubble struct{}

func (Bubble) Name() string { return BubbleSort }

// Sort makes exactly n(n-1)/2 comparisons whatever the input order and
// settles the last unsettled position after every pass.
func (Bubble) Sort(ctx context.Context, ops Ops) error {
	n := ops.Len()
	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			if err := compareAndStep(ctx, ops, j, j+1); err != nil {
				return err
			}
		}
		if err := ops.Settle(ctx, n-i-1); err != nil {
			return err
		}
	}
	return nil
}

// compareAndStep swaps the pair when it is out of order and confirms it
// otherwise.
func compareAndStep(ctx context.Context, ops Ops, i, j int) error {
	outOfOrder, err := ops.Compare(i, j)
	if err != nil {
		return err
	}
	if outOfOrder {
		return ops.Swap(ctx, i, j)
	}
	return ops.NoSwap(ctx, i, j)
}
