package interval

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// State is the logical state of a Cycle as of its last Advance call.
type State string

const (
	// StateIdle means the session was inactive: Advance had no effect.
	StateIdle State = "idle"
	// StateRunning means the session was active and the full cycle executed.
	StateRunning State = "running"
)

// Cycle runs one scheduler pass per host tick. It owns the frame history and
// the wrapping counter; registered tasks only read the history.
type Cycle[F any] struct {
	registry *Registry
	history  *History[F]
	counter  int
	ticks    int64
	state    State
	metrics  *Metrics
	onError  func(*TaskError)
}

// NewCycle creates a Cycle over a built registry and the history its tasks read.
func NewCycle[F any](registry *Registry, history *History[F]) *Cycle[F] {
	return &Cycle[F]{
		registry: registry,
		history:  history,
		state:    StateIdle,
		metrics:  NewMetrics(),
	}
}

// OnTaskError installs a hook called after each failed task invocation is logged.
func (c *Cycle[F]) OnTaskError(fn func(*TaskError)) {
	c.onError = fn
}

// Advance runs one tick. When active is false nothing changes: no history push,
// no counter advance and no task runs. It reports whether the tick executed.
// The activity flag is re-evaluated on every call.
func (c *Cycle[F]) Advance(active bool, frame F) bool {
	if !active {
		c.state = StateIdle
		c.metrics.Skipped++
		return false
	}
	c.state = StateRunning

	c.history.Push(frame)
	c.counter = (c.counter + 1) % c.registry.modulus
	c.ticks++
	c.metrics.Ticks++

	for _, hz := range c.registry.rates {
		if !ShouldFire(c.counter, hz, c.registry.modulus) {
			continue
		}
		c.metrics.Fires[hz]++
		for _, t := range c.registry.buckets[hz] {
			c.invoke(t)
		}
	}
	return true
}

// invoke runs a single task, converting errors and panics into a TaskError so
// one failing computation never stops the rest of the tick.
func (c *Cycle[F]) invoke(t Task) {
	c.metrics.Runs[t.Name]++
	err := runTask(t)
	if err == nil {
		return
	}
	c.metrics.Failures[t.Name]++
	te := &TaskError{Task: t.Name, Hz: t.Hz, Tick: c.ticks, Counter: c.counter, Err: err}
	logrus.WithFields(logrus.Fields{
		"task":    t.Name,
		"hz":      t.Hz,
		"tick":    c.ticks,
		"counter": c.counter,
	}).Warnf("task failed: %v", err)
	if c.onError != nil {
		c.onError(te)
	}
}

func runTask(t Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return t.Run()
}

// Counter returns the current counter value in [0, Modulus).
func (c *Cycle[F]) Counter() int { return c.counter }

// Ticks returns the number of active ticks executed so far.
func (c *Cycle[F]) Ticks() int64 { return c.ticks }

// State reports whether the last Advance found the session active.
func (c *Cycle[F]) State() State { return c.state }

// History exposes the frame window read-only.
func (c *Cycle[F]) History() Window[F] { return c.history }

func (c *Cycle[F]) Registry() *Registry { return c.registry }

func (c *Cycle[F]) Metrics() *Metrics { return c.metrics }
