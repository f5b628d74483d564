package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/pkg/errors"
	"github.com/san-kum/sortviz/internal/bench"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/events"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/trace"
	"github.com/san-kum/sortviz/internal/tui"
	"github.com/san-kum/sortviz/internal/visual"
	"github.com/san-kum/sortviz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	algorithm  string
	speed      string
	count      int
	seed       int64
	values     []int
	timeScale  float64
	logLevel   string
	mergeSort  bool
	// run output
	live      bool
	frameRate int
	instant   bool
	plot      bool
	save      bool
	// trace output
	format string
	output string
	// bench
	benchRuns int
	// tui
	watch bool
	theme string
)

// main registers the commands and flags and starts the interactive board
// when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:          "sortviz",
		Short:        "step-by-step sorting algorithm visualizer",
		SilenceUsage: true,
		RunE:         runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sortviz", "export directory for --save")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive board",
		RunE:  runTUI,
	}
	tuiCmd.Flags().BoolVar(&watch, "watch", false, "reload the config file when it changes")
	tuiCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	addSortFlags(tuiCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "generate a sequence and sort it once",
		RunE:  runSort,
	}
	addSortFlags(runCmd)
	runCmd.Flags().BoolVar(&live, "live", false, "draw the board in the terminal while sorting")
	runCmd.Flags().IntVar(&frameRate, "fps", 0, "max frames per second for --live (0 draws every step)")
	runCmd.Flags().BoolVar(&instant, "instant", false, "skip all pauses")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot the disorder curve afterwards")
	runCmd.Flags().BoolVar(&save, "save", false, "export summary.json and events.csv under the data directory")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "sort without pauses and print the event trace",
		RunE:  runTrace,
	}
	addSortFlags(traceCmd)
	traceCmd.Flags().StringVar(&format, "format", "csv", "output format (csv, json)")
	traceCmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	benchCmd := &cobra.Command{
		Use:   "bench [algorithm...]",
		Short: "compare comparisons and swaps over many random sequences",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVarP(&count, "count", "n", config.DefaultCount, "number of elements (2-10)")
	benchCmd.Flags().IntVar(&benchRuns, "runs", 100, "sequences per algorithm")
	benchCmd.Flags().Int64Var(&seed, "seed", 1, "seed of the first sequence")

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list sorting algorithms",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			for _, name := range sorting.NewRegistry().Names() {
				note := ""
				if name == sorting.MergeSort && !cfg.ExperimentalMergeSort {
					note = "  (disabled, set experimental_merge_sort)"
				}
				fmt.Printf("  %s%s\n", name, note)
			}
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tALGORITHM\tSPEED\tVALUES")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%v\n", name, p.Algorithm, p.Speed, p.Values)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(tuiCmd, runCmd, traceCmd, benchCmd, algorithmsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSortFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", config.DefaultAlgorithm, "sorting algorithm")
	cmd.Flags().StringVarP(&speed, "speed", "s", config.DefaultSpeed, "speed level (Slow, Normal, Fast)")
	cmd.Flags().IntVarP(&count, "count", "n", config.DefaultCount, "number of elements (2-10)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().IntSliceVar(&values, "values", nil, "fixed sequence, e.g. 5,3,8,1")
	cmd.Flags().Float64Var(&timeScale, "time-scale", config.DefaultTimeScale, "multiplier for every pause")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().BoolVar(&mergeSort, "experimental-merge-sort", false, "allow Merge Sort")
}

// loadConfig layers defaults, preset, config file and changed flags, in
// that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		if preset != "" && len(fileCfg.Values) == 0 {
			fileCfg.Values = cfg.Values
			fileCfg.Count = cfg.Count
		}
		cfg = fileCfg
	}

	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		cfg.Algorithm = algorithm
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("count") {
		cfg.Count = count
		cfg.Values = nil
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("values") {
		cfg.Values = values
		cfg.Count = len(values)
	}
	if flags.Changed("time-scale") {
		cfg.TimeScale = timeScale
	}
	if flags.Changed("experimental-merge-sort") {
		cfg.ExperimentalMergeSort = mergeSort
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("log-level") || cfg.LogLevel == "" {
		cfg.LogLevel = logLevel
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func prepare(s *driver.Session, cfg *config.Config) error {
	if len(cfg.Values) > 0 {
		return s.Load(cfg.Values)
	}
	return s.Generate(cfg.Count)
}

// printNotice writes driver notices to stderr the way the board shows them.
func printNotice(n driver.Notice) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", n.Title, strings.ReplaceAll(n.Message, "\n", " "))
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var watcher *config.Watcher
	if watch {
		if configFile == "" {
			return errors.New("--watch needs --config")
		}
		watcher, err = config.NewWatcher(configFile)
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	rngSeed := cfg.Seed
	app := viz.NewApp(viz.Options{
		Config: cfg,
		Build: func(opts driver.Options) *driver.Session {
			opts.Rand = rand.New(rand.NewSource(rngSeed))
			return driver.New(opts)
		},
	})
	return viz.Run(app, watcher)
}

func runSort(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := logging.New(cfg.LogLevel)

	scale := cfg.TimeScale
	if instant {
		scale = 0
	}

	rec := trace.NewRecorder()
	sink := events.NewMulti(rec)
	var renderer *tui.LiveRenderer
	if live {
		renderer = tui.NewLiveRenderer(os.Stdout, cfg.Algorithm, frameRate)
		sink.Add(renderer)
		renderer.Start()
		defer renderer.Stop()
	}

	s := driver.New(driver.Options{
		Sink:             sink,
		Scheduler:        visual.NewScheduler(scale),
		Notifier:         driver.NotifierFunc(printNotice),
		Logger:           log,
		Rand:             rand.New(rand.NewSource(cfg.Seed)),
		MergeSortEnabled: cfg.ExperimentalMergeSort,
	})
	if err := prepare(s, cfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := s.StartSort(ctx, cfg.Algorithm, cfg.Speed)
	if err != nil {
		return err
	}

	steps := rec.Run()
	summary := trace.Summarize(res, steps)
	printSummary(os.Stdout, summary)

	if plot {
		curve := trace.Disorder(steps)
		if len(curve) > 1 {
			fmt.Println()
			fmt.Println(asciigraph.Plot(curve,
				asciigraph.Height(10),
				asciigraph.Width(60),
				asciigraph.Caption("inversions after each swap"),
			))
		} else {
			fmt.Println("\nno swaps, nothing to plot")
		}
	}

	if save {
		dir, err := trace.Export(dataDir, trace.NewDocument(summary, steps), steps)
		if err != nil {
			return err
		}
		fmt.Printf("exported: %s\n", dir)
	}
	return nil
}

func printSummary(w io.Writer, s trace.Summary) {
	fmt.Fprintf(w, "algorithm:   %s\n", s.Algorithm)
	fmt.Fprintf(w, "initial:     %v\n", s.Initial)
	fmt.Fprintf(w, "sorted:      %v\n", s.Final)
	fmt.Fprintf(w, "comparisons: %d\n", s.Comparisons)
	fmt.Fprintf(w, "swaps:       %d\n", s.Swaps)
	fmt.Fprintf(w, "kept pairs:  %d\n", s.NoSwaps)
	fmt.Fprintf(w, "steps:       %d\n", s.Steps)
}

var traceFormats = []string{"csv", "json"}

func checkTraceFormat(format string) error {
	for _, f := range traceFormats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unknown format: %s (available: %s)", format, strings.Join(traceFormats, ", "))
}

func runTrace(cmd *cobra.Command, args []string) error {
	if err := checkTraceFormat(format); err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	rec := trace.NewRecorder()
	s := driver.New(driver.Options{
		Sink:             rec,
		Scheduler:        visual.Instant{},
		Notifier:         driver.NotifierFunc(printNotice),
		Logger:           logging.New(cfg.LogLevel),
		Rand:             rand.New(rand.NewSource(cfg.Seed)),
		MergeSortEnabled: cfg.ExperimentalMergeSort,
	})
	if err := prepare(s, cfg); err != nil {
		return err
	}
	res, err := s.StartSort(context.Background(), cfg.Algorithm, cfg.Speed)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	steps := rec.Run()
	if format == "json" {
		return trace.WriteJSON(out, trace.NewDocument(trace.Summarize(res, steps), steps))
	}
	return trace.WriteCSV(out, steps)
}

func runBench(cmd *cobra.Command, args []string) error {
	stats, err := bench.NewEnsemble(count, benchRuns, seed).Run(cmd.Context(), args...)
	if err != nil {
		return err
	}

	fmt.Printf("n=%d, %d sequences per algorithm\n\n", count, benchRuns)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tCMP MIN\tCMP MEAN\tCMP MAX\tSWAP MIN\tSWAP MEAN\tSWAP MAX")
	for _, st := range stats {
		fmt.Fprintf(w, "%s\t%d\t%.1f\t%d\t%d\t%.1f\t%d\n",
			st.Algorithm,
			st.Comparisons.Min, st.Comparisons.Mean, st.Comparisons.Max,
			st.Swaps.Min, st.Swaps.Mean, st.Swaps.Max,
		)
	}
	return w.Flush()
}
