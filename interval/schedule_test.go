package interval

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldFire_ExactCountsPerWrap(t *testing.T) {
	for _, hz := range DefaultHz {
		var fires []int
		for counter := 0; counter < DefaultModulus; counter++ {
			if ShouldFire(counter, hz, DefaultModulus) {
				fires = append(fires, counter)
			}
		}
		if len(fires) != hz {
			t.Errorf("%dHz: fired %d times per wrap, want %d", hz, len(fires), hz)
			continue
		}
		assert.Equal(t, 0, fires[0], "%dHz must fire at counter 0", hz)
		period := DefaultModulus / hz
		for i := 1; i < len(fires); i++ {
			if fires[i]-fires[i-1] != period {
				t.Errorf("%dHz: fires %d and %d are %d apart, want %d", hz, fires[i-1], fires[i], fires[i]-fires[i-1], period)
			}
		}
	}
}

func TestShouldFire_AllRatesFireAtZero(t *testing.T) {
	for _, hz := range DefaultHz {
		assert.True(t, ShouldFire(0, hz, DefaultModulus), "%dHz", hz)
	}
}

func TestFiring_TotalAcrossOneWrapIs136(t *testing.T) {
	r, err := NewRegistry(DefaultRates(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	total := 0
	for counter := 0; counter < r.Modulus(); counter++ {
		total += len(r.Firing(counter))
	}
	assert.Equal(t, 136, total)
	assert.Equal(t, DefaultHz, r.Firing(0))
	assert.Equal(t, []int{30, 60}, r.Firing(2))
	assert.Equal(t, []int{60}, r.Firing(7))
}

func TestRateConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     RateConfig
		wantErr bool
	}{
		{"default", DefaultRates(), false},
		{"seven does not divide sixty", RateConfig{Modulus: 60, Rates: []int{1, 7}}, true},
		{"rate above modulus", RateConfig{Modulus: 60, Rates: []int{120}}, true},
		{"zero rate", RateConfig{Modulus: 60, Rates: []int{0}}, true},
		{"negative rate", RateConfig{Modulus: 60, Rates: []int{-2}}, true},
		{"duplicate", RateConfig{Modulus: 60, Rates: []int{5, 5}}, true},
		{"zero modulus", RateConfig{Modulus: 0, Rates: []int{1}}, true},
		{"no rates", RateConfig{Modulus: 60}, true},
		{"other modulus", RateConfig{Modulus: 120, Rates: []int{8, 24, 40}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestPeriod(t *testing.T) {
	r, err := NewRegistry(DefaultRates(), nil)
	assert.NoError(t, err)
	p, err := r.Period(15)
	assert.NoError(t, err)
	assert.Equal(t, 4, p)
	_, err = r.Period(7)
	assert.ErrorIs(t, err, ErrUnknownRate)
}
