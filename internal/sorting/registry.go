package sorting

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

const (
	BubbleSort    = "Bubble Sort"
	SelectionSort = "Selection Sort"
	InsertionSort = "Insertion Sort"
	MergeSort     = "Merge Sort"
)

// Ops is the step surface an algorithm drives. Compare counts one decision;
// every Compare is followed by Swap or NoSwap unless it only moves a tracker.
type Ops interface {
	Len() int
	Compare(i, j int) (bool, error)
	Swap(ctx context.Context, i, j int) error
	NoSwap(ctx context.Context, i, j int) error
	Settle(ctx context.Context, i int) error
	Track(ctx context.Context, name string, i int) error
}

type Algorithm interface {
	Name() string
	Sort(ctx context.Context, ops Ops) error
}

type Registry struct {
	algorithms map[string]func() Algorithm
	order      []string
	aliases    map[string]string
}

func NewRegistry() *Registry {
	r := &Registry{
		algorithms: make(map[string]func() Algorithm),
		aliases:    make(map[string]string),
	}

	r.Register(BubbleSort, func() Algorithm { return Bubble{} })
	r.Register(SelectionSort, func() Algorithm { return Selection{} })
	r.Register(InsertionSort, func() Algorithm { return Insertion{} })
	r.Register(MergeSort, func() Algorithm { return Merge{} })

	return r
}

// Register adds an algorithm under its canonical name plus the slug
// aliases "bubble", "bubble-sort" and "bubble_sort".
func (r *Registry) Register(name string, fn func() Algorithm) {
	if _, ok := r.algorithms[name]; !ok {
		r.order = append(r.order, name)
	}
	r.algorithms[name] = fn

	lower := strings.ToLower(name)
	short := strings.TrimSuffix(lower, " sort")
	for _, alias := range []string{
		lower,
		short,
		strings.ReplaceAll(lower, " ", "-"),
		strings.ReplaceAll(lower, " ", "_"),
	} {
		r.aliases[alias] = name
	}
}

// Resolve maps a canonical name or alias to the canonical name.
func (r *Registry) Resolve(name string) (string, error) {
	if _, ok := r.algorithms[name]; ok {
		return name, nil
	}
	if canonical, ok := r.aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return canonical, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func (r *Registry) Get(name string) (Algorithm, error) {
	canonical, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}
	return r.algorithms[canonical](), nil
}

// Names lists canonical names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Run resolves name and sorts through ops. An unknown name fails before
// any step is taken.
func (r *Registry) Run(ctx context.Context, name string, ops Ops) error {
	alg, err := r.Get(name)
	if err != nil {
		return err
	}
	return alg.Sort(ctx, ops)
}
