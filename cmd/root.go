package cmd

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/wavescope/wavescope/annotation"
	"github.com/wavescope/wavescope/config"
	"github.com/wavescope/wavescope/engine"
	"github.com/wavescope/wavescope/model"
	"github.com/wavescope/wavescope/store"
	"github.com/wavescope/wavescope/ui"
)

// Version is set at build time via ldflags.
var Version = "0.3.0"

// Options holds CLI configuration.
type Options struct {
	Interval   time.Duration
	DBPath     string
	WatchMode  bool
	WatchCount int
	JSONMode   bool
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `wavescope v%s — Waveform aggregation and inspection console

Usage:
  wavescope [OPTIONS] [INTERVAL_MS]

Modes:
  (default)       Interactive TUI (bubbletea, fullscreen)
  -watch          CLI output mode — prints per-domain tables with auto-refresh
  -json           Single frame snapshot as JSON to stdout, then exit
  -version        Print version and exit

Options:
  -interval N     Refresh interval in milliseconds (default: 250)
  -db PATH        Read samples from a SQLite recording instead of the demo feed
  -count N        Number of iterations for -watch mode (0 = infinite, default: 0)

Positional:
  INTERVAL_MS     First positional arg sets interval: wavescope 500

Examples:
  wavescope                         Demo feed, interactive TUI
  wavescope -db run.db              Inspect a SQLite recording
  wavescope -watch -count 5         Five plain-text frames then exit
  wavescope -json | jq '.domains'
`, Version)
}

// autoResolver labels classes no table covers, so recorded data without
// annotations still renders with deterministic colors.
type autoResolver struct{}

func (autoResolver) Resolve(_ model.EntityPath, class model.ClassID) (annotation.Info, bool, error) {
	return annotation.Info{Label: "class " + strconv.Itoa(int(class))}, true, nil
}

// Run parses flags and starts the application.
func Run() error {
	fileCfg := config.Load()
	if p := config.Path(); p != "" {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			// Seed an editable config on first run; failure is not fatal.
			_ = config.Save(fileCfg)
		}
	}

	var opts Options
	var intervalMs int
	var showVersion bool

	flag.IntVar(&intervalMs, "interval", fileCfg.IntervalMs, "Refresh interval in milliseconds")
	flag.StringVar(&opts.DBPath, "db", fileCfg.DBPath, "SQLite recording to read samples from")
	flag.BoolVar(&opts.WatchMode, "watch", false, "CLI output mode (no TUI, prints to terminal)")
	flag.IntVar(&opts.WatchCount, "count", 0, "Number of iterations for -watch (0=infinite)")
	flag.BoolVar(&opts.JSONMode, "json", false, "Output a single frame as JSON and exit")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = printUsage
	flag.Parse()

	if showVersion {
		fmt.Printf("wavescope v%s\n", Version)
		return nil
	}

	// Support positional arg for interval: `wavescope 500` = `-interval 500`
	if args := flag.Args(); len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			intervalMs = n
		}
	}
	if intervalMs <= 0 {
		intervalMs = config.Default().IntervalMs
	}
	opts.Interval = time.Duration(intervalMs) * time.Millisecond

	layout := engine.Config{
		PaddingFrac:   fileCfg.PaddingPct,
		TrackSpanFrac: fileCfg.TrackSpanPct,
		BoxFrac:       fileCfg.BoxPct,
		StrokeFrac:    fileCfg.StrokePct,
		StrokeMin:     fileCfg.StrokeMin,
	}

	var st store.Store
	var res annotation.Resolver
	if opts.DBPath != "" {
		db, err := store.OpenSQLite(opts.DBPath)
		if err != nil {
			return fmt.Errorf("open recording: %w", err)
		}
		defer db.Close()
		st = db
		res = autoResolver{}
	} else {
		st, res = demoRecording()
	}

	eng := engine.New(st, res, layout)

	if opts.JSONMode {
		return runJSON(eng)
	}
	if opts.WatchMode {
		return runWatch(eng, opts)
	}

	p := tea.NewProgram(ui.NewModel(eng, opts.Interval), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
