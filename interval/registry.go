package interval

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
)

// Task is a unit of work declared at a rate. Run takes no arguments: tasks read
// shared state (the frame history) captured at construction and publish through
// their own property sink.
type Task struct {
	Name string
	Hz   int
	Run  func() error
}

// Registry maps each supported rate to the ordered tasks declared at it.
// It is immutable once built.
type Registry struct {
	modulus int
	rates   []int // ascending
	buckets map[int][]Task
	count   int
}

// NewRegistry validates cfg and files each task under its declared rate,
// preserving the order of tasks. Every supported rate gets a bucket, empty or not.
// A task declaring a rate outside cfg is a configuration error, never dropped.
func NewRegistry(cfg RateConfig, tasks []Task) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Registry{
		modulus: cfg.Modulus,
		rates:   slices.Sorted(slices.Values(cfg.Rates)),
		buckets: make(map[int][]Task, len(cfg.Rates)),
	}
	for _, hz := range r.rates {
		r.buckets[hz] = []Task{}
	}

	names := make(map[string]bool, len(tasks))
	for i, t := range tasks {
		if t.Name == "" {
			return nil, configErrorf("task #%d has no name", i)
		}
		if t.Run == nil {
			return nil, configErrorf("task %s has no handler", t.Name)
		}
		if names[t.Name] {
			return nil, configErrorf("task %s registered twice", t.Name)
		}
		bucket, ok := r.buckets[t.Hz]
		if !ok {
			return nil, configErrorf("task %s declares unsupported rate %dHz (supported %v)", t.Name, t.Hz, r.rates)
		}
		names[t.Name] = true
		r.buckets[t.Hz] = append(bucket, t)
		r.count++
	}

	for _, hz := range r.rates {
		for _, t := range r.buckets[hz] {
			logrus.Infof("@ %dHz: %s", hz, t.Name)
		}
	}
	return r, nil
}

// TasksFor returns the tasks declared at hz in registration order.
func (r *Registry) TasksFor(hz int) ([]Task, error) {
	bucket, ok := r.buckets[hz]
	if !ok {
		return nil, fmt.Errorf("%w: %dHz", ErrUnknownRate, hz)
	}
	return slices.Clone(bucket), nil
}

// Rates returns the supported rates, ascending.
func (r *Registry) Rates() []int { return slices.Clone(r.rates) }

func (r *Registry) Modulus() int { return r.modulus }

// Len returns the number of registered tasks across all buckets.
func (r *Registry) Len() int { return r.count }
