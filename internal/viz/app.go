package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/events"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/visual"
	"github.com/sirupsen/logrus"
)

const eventBuffer = 256

type (
	eventMsg  events.Event
	noticeMsg driver.Notice
	// ConfigMsg carries a reloaded config file into the running app.
	ConfigMsg *config.Config
	// ErrMsg reports a failure from outside the update loop.
	ErrMsg struct{ Err error }

	generatedMsg struct{ err error }
	sortDoneMsg  struct {
		res *driver.Result
		err error
	}
)

// Notices forwards driver notices without ever blocking the caller; the
// update loop may be the one raising them.
type Notices chan driver.Notice

func (n Notices) Notify(notice driver.Notice) {
	select {
	case n <- notice:
	default:
	}
}

// App is the interactive control panel around a driver session.
type App struct {
	session    *driver.Session
	events     *events.Channel
	notices    Notices
	algorithms []string
	values     []int

	board    Board
	theme    Theme
	status   string
	warning  bool
	result   *driver.Result
	showHelp bool
	width    int

	ctx    context.Context
	cancel context.CancelFunc
}

// Options wires an App. Sink receives every event in addition to the
// board, e.g. a trace recorder.
type Options struct {
	Config   *config.Config
	Sink     events.Sink
	Build    func(driver.Options) *driver.Session
	Registry *sorting.Registry
	// Logger defaults to a discarding logger; the program owns the terminal.
	Logger *logrus.Logger
}

func NewApp(opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if opts.Registry == nil {
		opts.Registry = sorting.NewRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	ch := events.NewChannel(eventBuffer)
	notices := make(Notices, 16)
	sink := events.NewMulti(ch, opts.Sink)

	dopts := driver.Options{
		Sink:             sink,
		Scheduler:        visual.NewScheduler(cfg.TimeScale),
		Notifier:         notices,
		Logger:           opts.Logger,
		Registry:         opts.Registry,
		MergeSortEnabled: cfg.ExperimentalMergeSort,
	}
	build := opts.Build
	if build == nil {
		build = driver.New
	}
	session := build(dopts)
	session.SetAlgorithm(cfg.Algorithm)
	session.SetSpeed(cfg.Speed)
	session.SetCount(cfg.Count)

	ctx, cancel := context.WithCancel(context.Background())
	return &App{
		session:    session,
		events:     ch,
		notices:    notices,
		algorithms: opts.Registry.Names(),
		values:     cfg.Values,
		board:      NewBoard(),
		theme:      GetTheme(cfg.Theme),
		status:     "press g to generate a sequence",
		width:      80,
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (a *App) Session() *driver.Session { return a.session }

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.waitEvent(), a.waitNotice(), a.generate())
}

func (a *App) waitEvent() tea.Cmd {
	return func() tea.Msg { return eventMsg(<-a.events.C) }
}

func (a *App) waitNotice() tea.Cmd {
	return func() tea.Msg { return noticeMsg(<-a.notices) }
}

// generate runs outside the update loop because it emits into the event
// channel the loop drains.
func (a *App) generate() tea.Cmd {
	values, n := a.values, a.session.Count()
	return func() tea.Msg {
		if len(values) > 0 {
			return generatedMsg{err: a.session.Load(values)}
		}
		return generatedMsg{err: a.session.Generate(n)}
	}
}

func (a *App) start() tea.Cmd {
	algorithm, speed := a.session.Algorithm(), string(a.session.Speed())
	return func() tea.Msg {
		res, err := a.session.StartSort(a.ctx, algorithm, speed)
		return sortDoneMsg{res: res, err: err}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width

	case eventMsg:
		a.board.Apply(events.Event(msg))
		if msg.Kind == events.ElementCreated && msg.I == 0 {
			a.result = nil
		}
		return a, a.waitEvent()

	case noticeMsg:
		a.status = driver.Notice(msg).Message
		a.warning = true
		return a, a.waitNotice()

	case generatedMsg:
		if msg.err == nil {
			a.status = "ready"
			a.warning = false
		}

	case sortDoneMsg:
		if msg.err == nil {
			a.result = msg.res
			a.status = fmt.Sprintf("sorted with %s", msg.res.Algorithm)
			a.warning = false
		}

	case ConfigMsg:
		a.applyConfig((*config.Config)(msg))

	case ErrMsg:
		a.status = msg.Err.Error()
		a.warning = true
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		a.cancel()
		return a, tea.Quit
	case "g":
		a.values = nil
		return a, a.generate()
	case "s", "enter":
		return a, a.start()
	case "a":
		a.session.SetAlgorithm(a.nextAlgorithm())
	case "v":
		a.session.SetSpeed(string(a.session.Speed().Next()))
	case "+", "=", "n":
		a.session.SetCount(a.session.Count() + 1)
	case "-", "_", "N":
		a.session.SetCount(a.session.Count() - 1)
	case "t":
		a.theme = NextTheme(a.theme.Name)
	case "?", "h":
		a.showHelp = !a.showHelp
	}
	return a, nil
}

func (a *App) nextAlgorithm() string {
	current := a.session.Algorithm()
	for i, name := range a.algorithms {
		if name == current {
			return a.algorithms[(i+1)%len(a.algorithms)]
		}
	}
	return a.algorithms[0]
}

func (a *App) applyConfig(cfg *config.Config) {
	a.session.SetAlgorithm(cfg.Algorithm)
	a.session.SetSpeed(cfg.Speed)
	a.session.SetCount(cfg.Count)
	a.theme = GetTheme(cfg.Theme)
	if len(cfg.Values) > 0 {
		a.values = cfg.Values
	}
	a.status = "config reloaded"
	a.warning = false
}

func (a *App) View() string {
	var b strings.Builder

	title := GradientText("SORTVIZ", a.theme.Title, a.theme.Bar)
	b.WriteString("\n  " + title + "  " + Subtle.Render("sorting algorithm visualizer") + "\n\n")
	b.WriteString(RenderBars(&a.board, a.theme, barHeight))
	b.WriteString("\n")
	b.WriteString(GlassPanel.Render(a.viewStats()))
	b.WriteString("\n  " + Separator(min(a.width-4, 60)) + "\n")
	b.WriteString(a.viewStatus())
	b.WriteString("\n")
	if a.showHelp {
		b.WriteString(a.viewHelp())
	} else {
		b.WriteString(a.viewKeys())
	}
	return b.String()
}

func (a *App) viewStats() string {
	state := StatusIdle.Render("idle")
	switch {
	case a.session.Running():
		state = StatusRunning.Render(AnimatedSpinner(a.board.Steps) + " sorting")
	case a.board.Done:
		state = StatusRunning.Render("sorted")
	}

	settled := 0
	for _, m := range a.board.Marks {
		if m == Settled || m == Confirmed {
			settled++
		}
	}
	progress := 0.0
	if n := len(a.board.Marks); n > 0 {
		progress = float64(settled) / float64(n)
	}

	lines := []string{
		MetricLabel.Render("algorithm") + MetricValue.Render(a.session.Algorithm()),
		MetricLabel.Render("speed") + MetricValue.Render(string(a.session.Speed())),
		MetricLabel.Render("count") + MetricValue.Render(fmt.Sprint(a.session.Count())),
		MetricLabel.Render("comparisons") + MetricValue.Render(fmt.Sprint(a.board.Comparisons)),
		MetricLabel.Render("swaps") + MetricValue.Render(fmt.Sprint(a.board.Swaps)),
		MetricLabel.Render("state") + state,
		MetricLabel.Render("settled") + ProgressBar(progress, 20),
		MetricLabel.Render("disorder") + SparklineChart(a.board.History, 30),
	}
	if a.result != nil {
		lines = append(lines, MetricLabel.Render("elapsed")+MetricValue.Render(a.result.Elapsed.Round(time.Millisecond).String()))
	}
	return strings.Join(lines, "\n")
}

func (a *App) viewStatus() string {
	style := Subtle
	if a.warning {
		style = lipgloss.NewStyle().Foreground(a.theme.Warning).Bold(true)
	}
	msg := strings.ReplaceAll(a.status, "\n", " ")
	return "  " + style.Render(msg) + "\n"
}

func (a *App) viewKeys() string {
	keys := []struct{ key, desc string }{
		{"g", "generate"}, {"s", "start"}, {"a", "algorithm"}, {"v", "speed"},
		{"+/-", "count"}, {"t", "theme"}, {"?", "help"}, {"q", "quit"},
	}
	var parts []string
	for _, k := range keys {
		parts = append(parts, KeyName.Render(k.key)+KeyHint.Render(" "+k.desc))
	}
	return "  " + strings.Join(parts, "  ") + "\n"
}

func (a *App) viewHelp() string {
	legend := []struct {
		mark Mark
		desc string
	}{
		{Idle, "unsorted"}, {Compared, "compared, kept"}, {Swapping, "swapping"},
		{Settled, "in final place"}, {Confirmed, "confirmed"},
	}
	var b strings.Builder
	b.WriteString("  " + KeyName.Render("legend") + "\n")
	for _, l := range legend {
		sw := lipgloss.NewStyle().Foreground(a.theme.Color(l.mark)).Render("███")
		b.WriteString("    " + sw + " " + KeyHint.Render(l.desc) + "\n")
	}
	b.WriteString("    " + KeyHint.Render("trackers: min = current minimum, ^ = scanned item, L/R = merge fronts") + "\n")
	b.WriteString("    " + KeyHint.Render("speed changes apply to a running sort; other changes wait for the next start") + "\n")
	return b.String()
}

// Run starts the program and, when watch is non-nil, forwards config
// reloads into it until the program exits.
func Run(app *App, watch *config.Watcher) error {
	p := tea.NewProgram(app, tea.WithAltScreen())
	if watch != nil {
		go func() {
			_ = watch.Run(app.ctx,
				func(cfg *config.Config) { p.Send(ConfigMsg(cfg)) },
				func(err error) { p.Send(ErrMsg{Err: err}) })
		}()
	}
	_, err := p.Run()
	app.cancel()
	return err
}
