package sorting

import "context"

type Insertion struct{}

func (Insertion) Name() string { return InsertionSort }

// Sort sinks each new element left with adjacent swaps. The decision that
// stops the sink is always counted once and shown as a no-swap on
// (i-1, i). If the element reached position 0 no comparison stopped it, so
// the confirming comparison is made explicitly.
func (Insertion) Sort(ctx context.Context, ops Ops) error {
	n := ops.Len()
	for i := 1; i < n; i++ {
		j := i
		for j > 0 {
			outOfOrder, err := ops.Compare(j-1, j)
			if err != nil {
				return err
			}
			if !outOfOrder {
				break
			}
			if err := ops.Swap(ctx, j-1, j); err != nil {
				return err
			}
			j--
		}
		if j == 0 {
			if _, err := ops.Compare(i-1, i); err != nil {
				return err
			}
		}
		if err := ops.NoSwap(ctx, i-1, i); err != nil {
			return err
		}
	}
	return nil
}
