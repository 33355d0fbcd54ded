package util

import (
	"fmt"
	"math"

	"github.com/wavescope/wavescope/model"
)

// FormatValue renders an analog value for display, limited to three
// decimal places like the cursor panel.
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return fmt.Sprintf("%.3f", v)
}

// FormatTime renders a timestamp for axis labels and deltas.
func FormatTime(t model.Time) string {
	return fmt.Sprintf("%d", t)
}

// FormatDelta renders the absolute distance between two timestamps,
// prefixed with the given marker tag (e.g. "ΔT" for the cursor, "ΔM" for
// the secondary marker).
func FormatDelta(tag string, a, b model.Time) string {
	d := a - b
	if d < 0 {
		d = -d
	}
	return fmt.Sprintf("%s: %d", tag, d)
}
