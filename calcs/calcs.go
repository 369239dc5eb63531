// Package calcs holds the dashboard computations run by the interval
// scheduler. Each computation is a no-argument method bound to Calcs and is
// listed with its refresh rate in Tasks.
package calcs

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/dahldesign/dahl-properties/interval"
	"github.com/dahldesign/dahl-properties/props"
	"github.com/dahldesign/dahl-properties/telemetry"
)

var (
	// ErrNoFrame means a task ran before any frame reached the history.
	ErrNoFrame = errors.New("no telemetry frame available")
	// ErrNoIRacingData means the newest frame carries no iRacing extension.
	ErrNoIRacingData = errors.New("frame has no iRacing telemetry")
)

// Calcs computes derived properties from the frame history.
type Calcs struct {
	settings Settings
	history  interval.Window[telemetry.Frame]
	sink     props.Sink
	gear     gearState
}

// New binds the computations to a read-only history and a property sink.
func New(settings Settings, history interval.Window[telemetry.Frame], sink props.Sink) *Calcs {
	logrus.Info("Initializing calcs")
	return &Calcs{settings: settings, history: history, sink: sink}
}

// Tasks lists every computation with its rate. Order within a rate is the
// execution order.
func (c *Calcs) Tasks() []interval.Task {
	return []interval.Task{
		{Name: "SettingsUpdate", Hz: 1, Run: c.SettingsUpdate},
		{Name: "TireAttributesUpdate", Hz: 1, Run: c.TireAttributesUpdate},
		{Name: "SmoothGear", Hz: 60, Run: c.SmoothGear},
		{Name: "GearTracking", Hz: 60, Run: c.GearTracking},
	}
}

// Declare registers the settings-derived properties with their current values.
func (c *Calcs) Declare(d props.Declarer) {
	for _, e := range settingsEcho {
		d.Declare(e.name, e.value(c.settings), "")
	}
}

// SettingsUpdate republishes the settings-derived properties.
func (c *Calcs) SettingsUpdate() error {
	for _, e := range settingsEcho {
		c.sink.SetValue(e.name, e.value(c.settings))
	}
	logrus.Debug("settings published")
	return nil
}

func (c *Calcs) newest() (telemetry.Frame, error) {
	f, ok := c.history.Newest()
	if !ok {
		return telemetry.Frame{}, ErrNoFrame
	}
	return f, nil
}
