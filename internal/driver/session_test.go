package driver_test

import (
	"context"
	"math/rand"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/events"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/sequence"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/visual"
)

type noticeLog struct {
	mu      sync.Mutex
	notices []driver.Notice
}

func (l *noticeLog) Notify(n driver.Notice) {
	l.mu.Lock()
	l.notices = append(l.notices, n)
	l.mu.Unlock()
}

func (l *noticeLog) kinds() []driver.NoticeKind {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []driver.NoticeKind
	for _, n := range l.notices {
		out = append(out, n.Kind)
	}
	return out
}

func (l *noticeLog) last() driver.Notice {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.notices[len(l.notices)-1]
}

type eventLog struct {
	mu     sync.Mutex
	events []events.Event
}

func (l *eventLog) Emit(e events.Event) {
	l.mu.Lock()
	l.events = append(l.events, e)
	l.mu.Unlock()
}

func (l *eventLog) count(kind events.Kind) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (l *eventLog) reset() {
	l.mu.Lock()
	l.events = nil
	l.mu.Unlock()
}

// gate blocks every pause until released.
type gate struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGate() *gate {
	return &gate{entered: make(chan struct{}), release: make(chan struct{})}
}

func (g *gate) Pause(ctx context.Context, _ time.Duration) error {
	g.once.Do(func() { close(g.entered) })
	select {
	case <-g.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// hook runs fn before delegating to a recording scheduler.
type hook struct {
	visual.Recording
	fn func(n int)
	n  int
}

func (h *hook) Pause(ctx context.Context, d time.Duration) error {
	h.n++
	if h.fn != nil {
		h.fn(h.n)
	}
	return h.Recording.Pause(ctx, d)
}

var _ = Describe("Session", func() {
	var (
		ctx      context.Context
		notices  *noticeLog
		sink     *eventLog
		recorder *visual.Recording
		session  *driver.Session
		merge    bool
	)

	newSession := func(scheduler visual.Scheduler) *driver.Session {
		return driver.New(driver.Options{
			Sink:             sink,
			Scheduler:        scheduler,
			Notifier:         notices,
			Logger:           logging.Discard(),
			Rand:             rand.New(rand.NewSource(7)),
			MergeSortEnabled: merge,
		})
	}

	BeforeEach(func() {
		ctx = context.Background()
		notices = &noticeLog{}
		sink = &eventLog{}
		recorder = &visual.Recording{}
		merge = false
	})

	JustBeforeEach(func() {
		session = newSession(recorder)
	})

	It("starts with the default settings", func() {
		Expect(session.Count()).To(Equal(10))
		Expect(session.Algorithm()).To(Equal(sorting.BubbleSort))
		Expect(session.Speed()).To(Equal(visual.Normal))
		Expect(session.ID()).To(HaveLen(36))
	})

	Describe("Generate", func() {
		It("creates n elements in range and resets the counter", func() {
			Expect(session.Generate(6)).To(Succeed())

			values := session.Values()
			Expect(values).To(HaveLen(6))
			for _, v := range values {
				Expect(v).To(BeNumerically(">=", sequence.MinValue))
				Expect(v).To(BeNumerically("<=", sequence.MaxValue))
			}
			Expect(session.Comparisons()).To(BeZero())
			Expect(session.Sorted()).To(BeFalse())
			Expect(session.Count()).To(Equal(6))
			Expect(sink.count(events.ElementCreated)).To(Equal(6))
		})

		DescribeTable("rejects counts outside [2, 10] and resets the setting",
			func(n int) {
				Expect(session.Load([]int{4, 2})).To(Succeed())
				session.SetCount(n)

				err := session.Generate(n)

				var cfgErr *driver.ConfigError
				Expect(err).To(BeAssignableToTypeOf(cfgErr))
				Expect(err).To(MatchError(sequence.ErrInvalidCount))
				Expect(session.Count()).To(Equal(10))
				Expect(session.Values()).To(Equal([]int{4, 2}))
				Expect(notices.kinds()).To(ConsistOf(driver.InvalidElementCount))
				Expect(notices.last().Warning()).To(BeTrue())
			},
			Entry("one", 1),
			Entry("eleven", 11),
			Entry("zero", 0),
			Entry("negative", -3),
		)

		It("clears the sorted flag of a finished run", func() {
			Expect(session.Load([]int{2, 1})).To(Succeed())
			_, err := session.StartSort(ctx, sorting.BubbleSort, "Fast")
			Expect(err).NotTo(HaveOccurred())
			Expect(session.Sorted()).To(BeTrue())

			Expect(session.Generate(3)).To(Succeed())
			Expect(session.Sorted()).To(BeFalse())
			Expect(session.Comparisons()).To(BeZero())
		})
	})

	Describe("StartSort", func() {
		It("sorts the scenario sequence with bubble sort", func() {
			Expect(session.Load([]int{5, 3, 8, 1})).To(Succeed())
			sink.reset()

			res, err := session.StartSort(ctx, "Bubble Sort", "Normal")
			Expect(err).NotTo(HaveOccurred())

			Expect(res.Final).To(Equal([]int{1, 3, 5, 8}))
			Expect(res.Initial).To(Equal([]int{5, 3, 8, 1}))
			Expect(res.Comparisons).To(Equal(6))
			Expect(res.Swaps).To(Equal(4))
			Expect(res.SessionID).To(Equal(session.ID()))
			Expect(session.Sorted()).To(BeTrue())
			Expect(session.Running()).To(BeFalse())

			Expect(sink.count(events.ElementsSwapped)).To(Equal(4))
			Expect(sink.count(events.NoSwapConfirmed)).To(Equal(2))
			Expect(sink.count(events.ElementSettled)).To(Equal(4))
			Expect(sink.count(events.ElementConfirmed)).To(Equal(4))
			Expect(sink.count(events.SortCompleted)).To(Equal(1))
		})

		It("paces every step at the selected speed", func() {
			Expect(session.Load([]int{5, 3, 8, 1})).To(Succeed())
			_, err := session.StartSort(ctx, "Bubble Sort", "Normal")
			Expect(err).NotTo(HaveOccurred())

			// 4 swaps at 2s, 2 confirmations at 1s, 4 settles at 0.5s,
			// then 1s + 4 x 0.5s + 0.5s of finishing.
			Expect(recorder.Pauses()).To(HaveLen(20))
			Expect(recorder.Total()).To(Equal(15500 * time.Millisecond))
		})

		It("reports a second start as already sorted and changes nothing", func() {
			Expect(session.Load([]int{5, 3, 8, 1})).To(Succeed())
			_, err := session.StartSort(ctx, sorting.BubbleSort, "Fast")
			Expect(err).NotTo(HaveOccurred())
			before := session.Comparisons()

			_, err = session.StartSort(ctx, sorting.SelectionSort, "Fast")
			Expect(err).To(MatchError(driver.ErrAlreadySorted))
			Expect(session.Comparisons()).To(Equal(before))
			Expect(notices.last().Kind).To(Equal(driver.AlreadySorted))
			Expect(notices.last().Values).To(Equal([]int{1, 3, 5, 8}))
		})

		It("sorts equal values without swapping", func() {
			Expect(session.Load([]int{2, 2, 2})).To(Succeed())
			res, err := session.StartSort(ctx, sorting.SelectionSort, "Fast")
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Final).To(Equal([]int{2, 2, 2}))
			Expect(res.Swaps).To(BeZero())
		})

		It("refuses merge sort while it is disabled", func() {
			Expect(session.Load([]int{5, 3, 8, 1})).To(Succeed())
			sink.reset()

			_, err := session.StartSort(ctx, "Merge Sort", "Normal")
			Expect(err).To(MatchError(driver.ErrFeatureUnavailable))
			Expect(session.Values()).To(Equal([]int{5, 3, 8, 1}))
			Expect(session.Comparisons()).To(BeZero())
			Expect(session.Sorted()).To(BeFalse())
			Expect(sink.events).To(BeEmpty())
			Expect(notices.last().Kind).To(Equal(driver.FeatureUnavailable))
			Expect(notices.last().Warning()).To(BeFalse())
		})

		Context("with merge sort enabled", func() {
			BeforeEach(func() { merge = true })

			It("sorts with merge sort", func() {
				Expect(session.Load([]int{5, 3, 8, 1})).To(Succeed())
				res, err := session.StartSort(ctx, "merge", "Slow")
				Expect(err).NotTo(HaveOccurred())
				Expect(res.Algorithm).To(Equal(sorting.MergeSort))
				Expect(res.Final).To(Equal([]int{1, 3, 5, 8}))
			})
		})

		It("rejects an unknown algorithm and resets the setting", func() {
			Expect(session.Load([]int{3, 1})).To(Succeed())
			session.SetAlgorithm("Bogo Sort")

			_, err := session.StartSort(ctx, "Bogo Sort", "Normal")
			Expect(err).To(MatchError(sorting.ErrUnknownAlgorithm))
			Expect(session.Algorithm()).To(Equal(sorting.BubbleSort))
			Expect(session.Values()).To(Equal([]int{3, 1}))
			Expect(notices.last().Kind).To(Equal(driver.InvalidAlgorithm))
		})

		It("rejects an unknown speed before anything else", func() {
			Expect(session.Load([]int{3, 1})).To(Succeed())
			session.SetSpeed("Turbo")

			_, err := session.StartSort(ctx, "Bogo Sort", "Turbo")
			Expect(err).To(MatchError(visual.ErrInvalidSpeed))
			Expect(session.Speed()).To(Equal(visual.Normal))
			Expect(session.Algorithm()).To(Equal(sorting.BubbleSort))
			Expect(notices.kinds()).To(ConsistOf(driver.InvalidSpeedLevel))
		})

		It("needs a sequence", func() {
			_, err := session.StartSort(ctx, sorting.BubbleSort, "Normal")
			Expect(err).To(MatchError(driver.ErrNoSequence))
			Expect(notices.last().Kind).To(Equal(driver.NoSequence))
		})

		It("picks up speed changes mid-run", func() {
			h := &hook{}
			session = newSession(h)
			h.fn = func(n int) {
				if n == 2 {
					session.SetSpeed("Fast")
				}
			}
			Expect(session.Load([]int{5, 3, 8, 1})).To(Succeed())

			_, err := session.StartSort(ctx, sorting.BubbleSort, "Slow")
			Expect(err).NotTo(HaveOccurred())

			pauses := h.Pauses()
			Expect(pauses[0]).To(Equal(1500 * time.Millisecond))
			Expect(pauses[1]).To(Equal(1500 * time.Millisecond))
			Expect(pauses[2]).To(Equal(500 * time.Millisecond))
		})

		It("stops when the context is cancelled", func() {
			Expect(session.Load([]int{5, 3, 8, 1})).To(Succeed())
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := session.StartSort(cancelled, sorting.BubbleSort, "Normal")
			Expect(err).To(MatchError(context.Canceled))
			Expect(session.Running()).To(BeFalse())
			Expect(session.Sorted()).To(BeFalse())
		})
	})

	Describe("a run in progress", func() {
		It("refuses to start again or regenerate", func() {
			g := newGate()
			session = newSession(g)
			Expect(session.Load([]int{5, 3, 8, 1})).To(Succeed())

			done := make(chan error, 1)
			go func() {
				_, err := session.StartSort(ctx, sorting.BubbleSort, "Normal")
				done <- err
			}()
			Eventually(g.entered).Should(BeClosed())
			Expect(session.Running()).To(BeTrue())

			_, err := session.StartSort(ctx, sorting.BubbleSort, "Normal")
			Expect(err).To(MatchError(driver.ErrSortInProgress))
			Expect(session.Generate(5)).To(MatchError(driver.ErrSortInProgress))
			Expect(session.Load([]int{1, 2})).To(MatchError(driver.ErrSortInProgress))

			close(g.release)
			Eventually(done, 5*time.Second).Should(Receive(BeNil()))
			Expect(session.Sorted()).To(BeTrue())
			Expect(session.Running()).To(BeFalse())
		})

		It("reports values and comparisons as of the current step", func() {
			g := newGate()
			session = newSession(g)
			Expect(session.Load([]int{5, 3, 8, 1})).To(Succeed())

			done := make(chan error, 1)
			go func() {
				_, err := session.StartSort(ctx, sorting.BubbleSort, "Normal")
				done <- err
			}()
			Eventually(g.entered).Should(BeClosed())

			// first pause: 5 and 3 compared, swap in flight
			Expect(session.Comparisons()).To(Equal(1))
			Expect(session.Values()).To(Equal([]int{5, 3, 8, 1}))
			Expect(session.Sorted()).To(BeFalse())

			close(g.release)
			Eventually(done, 5*time.Second).Should(Receive(BeNil()))
			Expect(session.Values()).To(Equal([]int{1, 3, 5, 8}))
			Expect(session.Comparisons()).To(Equal(6))
		})
	})
})
