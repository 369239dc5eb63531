// Package plugin is the dashboard-host entry point: it declares the
// properties, builds the task registry from the calcs catalog, and forwards
// every host frame into the update cycle.
package plugin

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/dahldesign/dahl-properties/calcs"
	"github.com/dahldesign/dahl-properties/interval"
	"github.com/dahldesign/dahl-properties/props"
	"github.com/dahldesign/dahl-properties/telemetry"
)

// Plugin owns the scheduler for one host process.
type Plugin struct {
	cfg   Config
	cycle *interval.Cycle[telemetry.Frame]
}

// New validates cfg, declares every property through declarer and prepares the
// scheduler. Configuration errors are returned and the plugin must not run.
func New(cfg Config, declarer props.Declarer, sink props.Sink) (*Plugin, error) {
	logrus.Info("Starting DahlDesign properties plugin")
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	table, err := props.Table()
	if err != nil {
		return nil, fmt.Errorf("loading property table: %w", err)
	}
	props.DeclareAll(declarer, table)

	history := interval.NewHistory[telemetry.Frame](cfg.Scheduler.History)
	c := calcs.New(cfg.Settings, history, sink)
	c.Declare(declarer)

	registry, err := interval.NewRegistry(cfg.Rates(), c.Tasks())
	if err != nil {
		return nil, err
	}
	logrus.Infof("Declared %d properties, scheduled %d tasks over %v Hz", len(table), registry.Len(), registry.Rates())

	return &Plugin{
		cfg:   cfg,
		cycle: interval.NewCycle(registry, history),
	}, nil
}

// DataUpdate is called by the host once per frame. Nothing happens unless the
// game is running or replaying.
func (p *Plugin) DataUpdate(sample telemetry.Sample) bool {
	return p.cycle.Advance(sample.Active(), sample.Frame)
}

// OnTaskError forwards task failures to fn in addition to logging them.
func (p *Plugin) OnTaskError(fn func(*interval.TaskError)) {
	p.cycle.OnTaskError(fn)
}

// End is called by the host on shutdown. Settings are owned by the host and
// are not written back.
func (p *Plugin) End() {
	m := p.cycle.Metrics()
	logrus.Infof("Stopping plugin after %d active ticks (%d task failures)", m.Ticks, m.TotalFailures())
}

func (p *Plugin) Config() Config { return p.cfg }

func (p *Plugin) Counter() int { return p.cycle.Counter() }

func (p *Plugin) State() interval.State { return p.cycle.State() }

func (p *Plugin) Metrics() *interval.Metrics { return p.cycle.Metrics() }
