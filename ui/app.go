package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/wavescope/wavescope/engine"
	"github.com/wavescope/wavescope/model"
	"github.com/wavescope/wavescope/util"
)

type tickMsg time.Time

// Model is the bubbletea model: a thin rendering collaborator around the
// engine. Every refresh runs one full aggregation pass and re-renders from
// the returned frame; on a pass error the previous frame stays on screen.
type Model struct {
	eng      *engine.Engine
	interval time.Duration
	width    int
	height   int

	frame  *engine.Frame
	errMsg string

	// cursor is the query time driving the value table.
	cursor model.Time

	// Keyboard navigation over the flattened series list.
	hoverIdx int
	picked   map[model.EntityPath]bool

	paused     bool
	resetQueue bool
	showHelp   bool
}

// NewModel returns a model ticking the engine at the given interval.
func NewModel(eng *engine.Engine, interval time.Duration) Model {
	return Model{
		eng:      eng,
		interval: interval,
		picked:   make(map[model.EntityPath]bool),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// allSeries returns the flattened series list of the current frame.
func (m *Model) allSeries() []*model.WaveformSeries {
	if m.frame == nil {
		return nil
	}
	var out []*model.WaveformSeries
	for i := range m.frame.Domains {
		out = append(out, m.frame.Domains[i].Series...)
	}
	return out
}

func (m *Model) hovered() model.EntityPath {
	series := m.allSeries()
	if len(series) == 0 {
		return ""
	}
	if m.hoverIdx >= len(series) {
		m.hoverIdx = len(series) - 1
	}
	return series[m.hoverIdx].Entity
}

// cursorStep scales arrow-key movement to the visible time span.
func (m *Model) cursorStep() model.Time {
	if m.frame == nil || m.width == 0 {
		return 1
	}
	step := (m.frame.MaxTime - m.frame.MinTime) / model.Time(max(m.width, 1))
	return max(step, 1)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if !m.paused {
			frame, err := m.eng.Tick(m.resetQueue)
			m.resetQueue = false
			if err != nil {
				// Keep the previous frame; the next tick retries fresh.
				m.errMsg = err.Error()
			} else {
				m.errMsg = ""
				m.frame = frame
				if m.cursor == 0 && frame.MaxTime != 0 {
					m.cursor = frame.MaxTime
				}
			}
		}
		return m, m.tickCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.showHelp = !m.showHelp
		case "p":
			m.paused = !m.paused
		case "r":
			m.resetQueue = true
		case "left":
			m.cursor -= m.cursorStep()
		case "right":
			m.cursor += m.cursorStep()
		case "j", "down":
			if n := len(m.allSeries()); n > 0 {
				m.hoverIdx = (m.hoverIdx + 1) % n
			}
		case "k", "up":
			if n := len(m.allSeries()); n > 0 {
				m.hoverIdx = (m.hoverIdx + n - 1) % n
			}
		case " ":
			if e := m.hovered(); e != "" {
				if m.picked[e] {
					delete(m.picked, e)
				} else {
					m.picked[e] = true
				}
			}
		case "s":
			var candidates []model.EntityPath
			for e := range m.picked {
				candidates = append(candidates, e)
			}
			m.eng.View.Selection.Toggle(candidates)
			if !m.eng.View.Selection.Selected() {
				m.picked = make(map[model.EntityPath]bool)
			}
		case "m":
			m.eng.View.SetSecondMarker(m.cursor)
		case "M":
			m.eng.View.ClearSecondMarker()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if m.frame == nil {
		return dimStyle.Render("collecting…")
	}
	if len(m.frame.Domains) == 0 {
		return dimStyle.Render("No data available")
	}

	var header strings.Builder
	header.WriteString(titleStyle.Render("wavescope"))
	if m.eng.View.Selection.Selected() {
		header.WriteString("  " + modeStyle.Render("SELECTED MODE"))
	}
	if m.paused {
		header.WriteString("  " + modeStyle.Render("PAUSED"))
	}
	if m.errMsg != "" {
		header.WriteString("  " + errStyle.Render(m.errMsg))
	}
	header.WriteString("  " + dimStyle.Render("t="+util.FormatTime(m.cursor)))
	if mk, ok := m.eng.View.SecondMarker(); ok {
		header.WriteString("  " + markerStyle.Render(util.FormatDelta("T-M", m.cursor, mk)))
	}

	plotW := m.width * 2 / 3
	tableW := m.width - plotW - 1
	if tableW < 20 {
		plotW = m.width - 21
		tableW = 20
	}
	rows := max((m.height-4)/len(m.frame.Domains)-2, 4)

	var body strings.Builder
	var marker *model.Time
	if mk, ok := m.eng.View.SecondMarker(); ok {
		marker = &mk
	}
	for i := range m.frame.Domains {
		dv := &m.frame.Domains[i]
		plot := plotDomain(dv, m.frame.Events, m.frame.MinTime, m.frame.MaxTime,
			m.cursor, marker, plotW, rows)
		table := renderValueTable(dv, m.cursor, m.hovered(), m.picked, tableW)
		body.WriteString(titleStyle.Render(dv.Domain))
		body.WriteByte('\n')
		body.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, plot, " ", table))
		body.WriteByte('\n')
	}

	footer := helpStyle.Render("←/→ cursor  j/k hover  space pick  s selected-mode  m/M marker  r reset  p pause  q quit")
	if m.showHelp {
		footer = helpStyle.Render("arrow keys move the time cursor; space marks series, s shows only marked ones; m drops a secondary marker at the cursor; r resets zoom/padding")
	}

	return header.String() + "\n\n" + body.String() + footer
}
