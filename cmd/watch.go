package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wavescope/wavescope/engine"
	"github.com/wavescope/wavescope/util"
)

// ── ANSI color/style codes ──────────────────────────────────────────────────

const (
	aR = "\033[0m" // reset
	aB = "\033[1m" // bold
	aD = "\033[2m" // dim

	aRed = "\033[31m"
	aGrn = "\033[32m"
	aYel = "\033[33m"
	aCyn = "\033[36m"
)

// runWatch prints per-domain value tables to the terminal with auto-refresh.
func runWatch(eng *engine.Engine, opts Options) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		if opts.WatchCount > 0 && i >= opts.WatchCount {
			return nil
		}
		frame, err := eng.Tick(false)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%stick failed:%s %v\n", aRed, aR, err)
		} else {
			printFrame(frame)
		}
		select {
		case <-sig:
			fmt.Println()
			return nil
		case <-ticker.C:
		}
	}
}

func printFrame(frame *engine.Frame) {
	fmt.Printf("%s%s── wavescope ──%s  t=[%s .. %s]  samples=%d\n",
		aB, aCyn, aR, util.FormatTime(frame.MinTime), util.FormatTime(frame.MaxTime),
		frame.SampleCount)

	cursor := frame.MaxTime
	for i := range frame.Domains {
		dv := &frame.Domains[i]
		fmt.Printf("%s%s%s\n", aB, dv.Domain, aR)
		if dv.Err != nil {
			fmt.Printf("  %s%v%s\n", aRed, dv.Err, aR)
			continue
		}
		fmt.Printf("  %sy=[%.3f .. %.3f]  t=[%s .. %s]%s\n",
			aD, dv.Bounds.Min, dv.Bounds.Max,
			util.FormatTime(dv.MinTime), util.FormatTime(dv.MaxTime), aR)
		for _, s := range dv.Series {
			analog, hit := engine.Lookup(s, cursor)
			line := fmt.Sprintf("  %-28s", string(s.Entity))
			switch {
			case analog.OK && analog.Interpolated:
				line += fmt.Sprintf("%s%s (I)%s", aYel, util.FormatValue(analog.Value), aR)
			case analog.OK:
				line += fmt.Sprintf("%s%s%s", aGrn, util.FormatValue(analog.Value), aR)
			case hit.Transition != nil:
				line += fmt.Sprintf("%s%s%s %s(%s)%s", aGrn, hit.Transition.Label, aR,
					aD, util.FormatTime(hit.Time), aR)
			default:
				line += aD + "—" + aR
			}
			fmt.Println(line)
		}
	}
	fmt.Println()
}

// JSON snapshot shapes; one frame of lookups at the latest timestamp.
type jsonSeries struct {
	Entity  string   `json:"entity"`
	Samples int      `json:"samples"`
	Value   *float64 `json:"value,omitempty"`
	State   string   `json:"state,omitempty"`
}

type jsonDomain struct {
	Domain  string       `json:"domain"`
	MinTime int64        `json:"min_time"`
	MaxTime int64        `json:"max_time"`
	Bounds  [2]float64   `json:"bounds"`
	Error   string       `json:"error,omitempty"`
	Series  []jsonSeries `json:"series"`
}

type jsonFrame struct {
	Timestamp string       `json:"timestamp"`
	MinTime   int64        `json:"min_time"`
	MaxTime   int64        `json:"max_time"`
	Samples   int          `json:"samples"`
	Domains   []jsonDomain `json:"domains"`
}

// runJSON runs a single pass and prints the frame as JSON.
func runJSON(eng *engine.Engine) error {
	frame, err := eng.Tick(false)
	if err != nil {
		return err
	}

	out := jsonFrame{
		Timestamp: time.Now().Format(time.RFC3339),
		MinTime:   frame.MinTime,
		MaxTime:   frame.MaxTime,
		Samples:   frame.SampleCount,
	}
	for i := range frame.Domains {
		dv := &frame.Domains[i]
		jd := jsonDomain{
			Domain:  dv.Domain,
			MinTime: dv.MinTime,
			MaxTime: dv.MaxTime,
			Bounds:  [2]float64{dv.Bounds.Min, dv.Bounds.Max},
		}
		if dv.Err != nil {
			jd.Error = dv.Err.Error()
		}
		for _, s := range dv.Series {
			js := jsonSeries{Entity: string(s.Entity), Samples: s.Len()}
			analog, hit := engine.Lookup(s, frame.MaxTime)
			if analog.OK {
				v := analog.Value
				js.Value = &v
			}
			if hit.Transition != nil {
				js.State = hit.Transition.Label
			}
			jd.Series = append(jd.Series, js)
		}
		out.Domains = append(out.Domains, jd)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
