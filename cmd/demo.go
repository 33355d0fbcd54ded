package cmd

import (
	"math"

	"github.com/wavescope/wavescope/annotation"
	"github.com/wavescope/wavescope/model"
	"github.com/wavescope/wavescope/store"
)

// Demo pump-controller state machine.
const (
	stateOff model.ClassID = iota
	stateRunning
	stateFault
)

const (
	modeManual model.ClassID = iota
	modeAuto
)

const evOvercurrent model.ClassID = 1

// demoRecording returns an in-memory feed of a small pump-controller
// scenario: two analog traces, a three-state machine with a quiet state,
// an operating mode seeded before the first sample, and a handful of
// alarm events.
func demoRecording() (store.Store, annotation.Resolver) {
	m := store.NewMemoryStore()

	// Analog traces over 0..2000 ticks.
	for t := model.Time(0); t <= 2000; t += 20 {
		phase := float64(t) / 2000 * 4 * math.Pi
		m.LogScalar("power/pump/voltage", t, 12.0+1.5*math.Sin(phase))
		m.LogScalar("power/pump/current", t, 3.0+0.8*math.Cos(phase)+0.2*math.Sin(7*phase))
	}

	// State machine: off -> running -> fault -> running -> off.
	m.LogStateNormal("motor/state", stateOff)
	m.LogState("motor/state", 0, stateOff)
	m.LogState("motor/state", 200, stateRunning)
	m.LogState("motor/state", 900, stateFault)
	m.LogState("motor/state", 1100, stateRunning)
	m.LogState("motor/state", 1800, stateOff)

	// Operating mode existed before recording started.
	m.LogStateInit("motor/mode", modeAuto)
	m.LogState("motor/mode", 600, modeManual)
	m.LogState("motor/mode", 1400, modeAuto)

	// Alarms around the fault window.
	m.LogEvent("alerts/overcurrent", 880, evOvercurrent)
	m.LogEvent("alerts/overcurrent", 905, evOvercurrent)
	m.LogEvent("alerts/overcurrent", 1050, evOvercurrent)

	res := annotation.NewStaticResolver()
	res.SetClass("motor/state", stateOff, annotation.Info{Label: "OFF"})
	res.SetClass("motor/state", stateRunning, annotation.Info{
		Label: "RUNNING",
		Color: &model.Color{R: 0x50, G: 0xfa, B: 0x7b, A: 0xff},
	})
	res.SetClass("motor/state", stateFault, annotation.Info{
		Label: "FAULT",
		Color: &model.Color{R: 0xff, G: 0x55, B: 0x55, A: 0xff},
	})
	res.SetClass("motor/mode", modeManual, annotation.Info{Label: "MANUAL"})
	res.SetClass("motor/mode", modeAuto, annotation.Info{Label: "AUTO"})
	res.SetSharedClass(evOvercurrent, annotation.Info{
		Label: "overcurrent",
		Color: &model.Color{R: 0xff, G: 0xb8, B: 0x6c, A: 0xff},
	})
	return m, res
}
