package interval

import (
	"fmt"
	"slices"
)

// DefaultModulus is the counter wrap used by the dashboard host (one second at 60 frames/s).
const DefaultModulus = 60

// DefaultHz is the supported rate set. Each value divides DefaultModulus, so 7Hz
// (60/7 is not integral) is deliberately absent.
var DefaultHz = []int{1, 2, 3, 4, 5, 6, 10, 15, 30, 60}

// RateConfig describes the counter modulus and the set of rates tasks may declare.
type RateConfig struct {
	Modulus int   `yaml:"modulus"`
	Rates   []int `yaml:"rates"`
}

// DefaultRates returns the 60-tick table with the standard rate set.
func DefaultRates() RateConfig {
	return RateConfig{Modulus: DefaultModulus, Rates: slices.Clone(DefaultHz)}
}

// Validate checks that every rate is positive, unique and divides the modulus.
func (c RateConfig) Validate() error {
	if c.Modulus <= 0 {
		return configErrorf("modulus must be > 0, got %d", c.Modulus)
	}
	if len(c.Rates) == 0 {
		return configErrorf("no rates configured")
	}
	seen := make(map[int]bool, len(c.Rates))
	for _, hz := range c.Rates {
		if hz <= 0 {
			return configErrorf("rate must be > 0, got %d", hz)
		}
		if c.Modulus%hz != 0 {
			return configErrorf("%dHz does not divide modulus %d", hz, c.Modulus)
		}
		if seen[hz] {
			return configErrorf("duplicate rate %dHz", hz)
		}
		seen[hz] = true
	}
	return nil
}

// ShouldFire reports whether a bucket declared at hz is due at counter.
// modulus%hz == 0 is a precondition enforced by RateConfig.Validate.
func ShouldFire(counter, hz, modulus int) bool {
	return counter%(modulus/hz) == 0
}

// Firing returns the rates due at counter, ascending.
func (r *Registry) Firing(counter int) []int {
	var due []int
	for _, hz := range r.rates {
		if ShouldFire(counter, hz, r.modulus) {
			due = append(due, hz)
		}
	}
	return due
}

// Period returns the number of ticks between fires of a bucket declared at hz.
func (r *Registry) Period(hz int) (int, error) {
	if _, ok := r.buckets[hz]; !ok {
		return 0, fmt.Errorf("%w: %dHz", ErrUnknownRate, hz)
	}
	return r.modulus / hz, nil
}
