package driver

import (
	"context"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/san-kum/sortviz/internal/events"
	"github.com/san-kum/sortviz/internal/sequence"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/visual"
	"github.com/sirupsen/logrus"
)

const (
	DefaultCount     = sequence.MaxCount
	DefaultAlgorithm = sorting.BubbleSort
	DefaultSpeed     = visual.Normal

	// FinishDelay separates the last algorithm step from the confirmation pass.
	FinishDelay = time.Second
	// FinishHold is held after every position has been confirmed.
	FinishHold = 500 * time.Millisecond
)

type Options struct {
	Sink      events.Sink
	Scheduler visual.Scheduler
	Notifier  Notifier
	Logger    *logrus.Logger
	Rand      *rand.Rand
	Registry  *sorting.Registry
	// MergeSortEnabled lets StartSort run the merge sort instead of
	// refusing it as unavailable.
	MergeSortEnabled bool
}

// Result summarises one completed run.
type Result struct {
	SessionID   string
	Algorithm   string
	Initial     []int
	Final       []int
	Comparisons int
	Swaps       int
	Elapsed     time.Duration
}

// Session owns everything a run touches: the sequence, the selected
// settings and the in-progress guard. Settings may change at any time;
// the sequence only changes through Generate, Load and StartSort.
type Session struct {
	mu        sync.Mutex
	id        string
	seq       *sequence.Sequence
	sink      events.Sink
	scheduler visual.Scheduler
	notifier  Notifier
	log       *logrus.Entry
	rng       *rand.Rand
	registry  *sorting.Registry
	merge     bool
	snap      *snapshot

	count     int
	algorithm string
	speed     visual.Speed
	running   bool
}

func New(opts Options) *Session {
	if opts.Sink == nil {
		opts.Sink = events.Discard
	}
	if opts.Scheduler == nil {
		opts.Scheduler = visual.RealTime{}
	}
	if opts.Notifier == nil {
		opts.Notifier = NotifierFunc(func(Notice) {})
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Registry == nil {
		opts.Registry = sorting.NewRegistry()
	}

	id := uuid.NewString()
	snap := &snapshot{}
	return &Session{
		id:        id,
		seq:       sequence.New(events.NewMulti(snap, opts.Sink)),
		snap:      snap,
		sink:      opts.Sink,
		scheduler: opts.Scheduler,
		notifier:  opts.Notifier,
		log:       opts.Logger.WithField("session", id[:8]),
		rng:       opts.Rand,
		registry:  opts.Registry,
		merge:     opts.MergeSortEnabled,
		count:     DefaultCount,
		algorithm: DefaultAlgorithm,
		speed:     DefaultSpeed,
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

func (s *Session) SetCount(n int) {
	s.mu.Lock()
	s.count = n
	s.mu.Unlock()
}

func (s *Session) Algorithm() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.algorithm
}

func (s *Session) SetAlgorithm(name string) {
	s.mu.Lock()
	s.algorithm = name
	s.mu.Unlock()
}

// Speed is read by the running sort before every pause. Unknown levels
// are tolerated here and paced at the default.
func (s *Session) Speed() visual.Speed {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speed
}

func (s *Session) SetSpeed(level string) {
	s.mu.Lock()
	s.speed = visual.Speed(level)
	s.mu.Unlock()
}

func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Session) Sorted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq.Finished()
}

// Values and Comparisons may be read while a sort is running; they return
// the state as of the last emitted event.
func (s *Session) Values() []int {
	values, _ := s.snap.read()
	return values
}

func (s *Session) Comparisons() int {
	_, n := s.snap.read()
	return n
}

// Generate draws a fresh random sequence of n elements. An invalid n is
// reported, the count setting falls back to DefaultCount and the current
// sequence is kept.
func (s *Session) Generate(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.idle(); err != nil {
		return err
	}
	if !sequence.ValidCount(n) {
		return s.rejectCount(n, sequence.ErrInvalidCount)
	}
	if err := s.seq.Generate(n, s.rng); err != nil {
		return err
	}
	s.count = n
	s.log.WithFields(logrus.Fields{"count": n, "values": s.seq.Values()}).Info("sequence generated")
	return nil
}

// Load replaces the sequence with fixed values, under the same rules as
// Generate plus the value range check.
func (s *Session) Load(values []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.idle(); err != nil {
		return err
	}
	if err := s.seq.Load(values); err != nil {
		if errors.Is(err, sequence.ErrInvalidCount) {
			return s.rejectCount(len(values), err)
		}
		return err
	}
	s.count = len(values)
	s.log.WithField("values", values).Info("sequence loaded")
	return nil
}

func (s *Session) rejectCount(n int, cause error) error {
	s.count = DefaultCount
	s.notifier.Notify(warning(InvalidElementCount, "'%d' is not a valid number of elements!", n))
	s.log.WithField("count", n).Warn("rejected element count")
	return &ConfigError{Setting: "count", Value: strconv.Itoa(n), Reset: strconv.Itoa(DefaultCount), Err: cause}
}

// idle must be called with mu held.
func (s *Session) idle() error {
	if s.running {
		s.notifier.Notify(info(SortInProgress, "Busy", "A sort is already running."))
		return ErrSortInProgress
	}
	return nil
}

// StartSort validates the request, runs the algorithm and then the
// confirmation pass. Every rejection leaves the sequence, the counter and
// the sorted flag untouched.
func (s *Session) StartSort(ctx context.Context, algorithm, speed string) (*Result, error) {
	name, err := s.begin(algorithm, speed)
	if err != nil {
		return nil, err
	}
	defer s.end()

	initial := s.seq.Values()
	step := visual.NewSync(s.seq, s.sink, s.scheduler, s.Speed)
	log := s.log.WithFields(logrus.Fields{"algorithm": name, "count": len(initial)})
	log.Info("sort started")

	start := time.Now()
	if err := s.registry.Run(ctx, name, step); err != nil {
		log.WithError(err).Warn("sort interrupted")
		return nil, errors.Wrapf(err, "run %s", name)
	}
	if err := s.finish(ctx, step); err != nil {
		log.WithError(err).Warn("finish failed")
		return nil, err
	}

	res := &Result{
		SessionID:   s.id,
		Algorithm:   name,
		Initial:     initial,
		Final:       s.seq.Values(),
		Comparisons: s.seq.Comparisons(),
		Swaps:       step.Swaps(),
		Elapsed:     time.Since(start),
	}
	log.WithFields(logrus.Fields{
		"comparisons": res.Comparisons,
		"swaps":       res.Swaps,
		"elapsed":     res.Elapsed,
	}).Info("sort completed")
	return res, nil
}

func (s *Session) begin(algorithm, speed string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seq.Empty() {
		s.notifier.Notify(info(NoSequence, "Info", "Please generate a sequence first!"))
		return "", ErrNoSequence
	}
	if err := s.idle(); err != nil {
		return "", err
	}

	level, err := visual.ParseSpeed(speed)
	if err != nil {
		s.speed = DefaultSpeed
		s.notifier.Notify(warning(InvalidSpeedLevel, "'%s' is not a valid speed level!", speed))
		s.log.WithField("speed", speed).Warn("rejected speed level")
		return "", &ConfigError{Setting: "speed", Value: speed, Reset: string(DefaultSpeed), Err: err}
	}

	if s.seq.Finished() {
		values := s.seq.Values()
		n := warning(AlreadySorted, "Sequence %v is already sorted!\nPlease generate a new sequence!", values)
		n.Values = values
		s.notifier.Notify(n)
		return "", ErrAlreadySorted
	}

	name, err := s.registry.Resolve(algorithm)
	if err != nil {
		s.algorithm = DefaultAlgorithm
		s.notifier.Notify(warning(InvalidAlgorithm,
			"'%s' is not a valid sorting algorithm!\nPlease select a different algorithm!", algorithm))
		s.log.WithField("algorithm", algorithm).Warn("rejected algorithm")
		return "", &ConfigError{Setting: "algorithm", Value: algorithm, Reset: DefaultAlgorithm, Err: err}
	}
	if name == sorting.MergeSort && !s.merge {
		s.notifier.Notify(info(FeatureUnavailable, sorting.MergeSort, "%s is not yet available!", sorting.MergeSort))
		return "", errors.Wrap(ErrFeatureUnavailable, sorting.MergeSort)
	}

	s.speed = level
	s.algorithm = name
	s.running = true
	return name, nil
}

func (s *Session) end() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// finish confirms every position left to right, then sets the sorted flag.
func (s *Session) finish(ctx context.Context, step *visual.Sync) error {
	if err := step.Hold(ctx, FinishDelay); err != nil {
		return err
	}
	for i := 0; i < s.seq.Len(); i++ {
		if err := step.Confirm(ctx, i); err != nil {
			return err
		}
	}
	if err := step.Hold(ctx, FinishHold); err != nil {
		return err
	}
	if !s.seq.IsSorted() {
		return errors.Wrapf(ErrNotSorted, "values %v", s.seq.Values())
	}

	s.mu.Lock()
	s.seq.MarkFinished()
	s.mu.Unlock()
	s.sink.Emit(events.Completed())
	return nil
}
