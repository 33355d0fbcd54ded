package ui

import (
	"strings"

	"github.com/wavescope/wavescope/engine"
	"github.com/wavescope/wavescope/model"
	"github.com/wavescope/wavescope/util"
)

// renderValueTable prints, for every series of a domain, the best-known
// value under the cursor: the analog value (tagged "(I)" when
// interpolated) and the active discrete transition with its start time.
// hover is the entity currently highlighted by keyboard navigation.
func renderValueTable(dv *engine.DomainView, cursor model.Time,
	hover model.EntityPath, picked map[model.EntityPath]bool, width int) string {

	var sb strings.Builder
	for _, s := range dv.Series {
		analog, hit := engine.Lookup(s, cursor)

		name := s.Entity.String()
		if max := width / 2; max > 3 && len(name) > max {
			name = name[:max-1] + "…"
		}
		nameStyle := seriesStyle(s.Color)
		if s.Entity == hover {
			nameStyle = nameStyle.Bold(true)
		}

		mark := "  "
		if picked[s.Entity] {
			mark = "✓ "
		}

		var cols []string
		if analog.OK {
			v := util.FormatValue(analog.Value)
			if analog.Interpolated {
				v += " (I)"
			}
			cols = append(cols, valueStyle.Render(v))
		}
		if hit.Transition != nil {
			label := hit.Transition.Label
			if label == "" {
				label = "·"
			}
			cols = append(cols, seriesStyle(hit.Transition.Color).Render(label)+
				dimStyle.Render(" ("+util.FormatTime(hit.Time)+")"))
		} else if s.Discrete.Init != nil && cursor < s.MinTime {
			// Pre-first-sample state comes from the explicit init.
			cols = append(cols, seriesStyle(s.Discrete.Init.Color).Render(s.Discrete.Init.Label)+
				dimStyle.Render(" (init)"))
		}

		line := mark + nameStyle.Render(name)
		if len(cols) > 0 {
			line += dimStyle.Render(" | ") + strings.Join(cols, dimStyle.Render(" | "))
		}
		if s.Entity == hover {
			line = selectedStyle.Render(" ") + line
		} else {
			line = " " + line
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}
