package calcs

import (
	"math"
	"strconv"
)

// SmoothGear publishes the gear as it was SmoothGearDelay frames ago, which
// hides the brief neutral flicker during a shift. Until enough frames are
// buffered the current gear is published instead.
func (c *Calcs) SmoothGear() error {
	f, err := c.newest()
	if err != nil {
		return err
	}
	delay := c.settings.SmoothGearDelay
	if c.history.Len() <= delay {
		c.sink.SetValue("SmoothGear", f.Gear)
		return nil
	}
	lagged, err := c.history.At(delay)
	if err != nil {
		return err
	}
	c.sink.SetValue("SmoothGear", lagged.Gear)
	return nil
}

// gearState follows the gear currently engaged and the highest RPM seen in it.
type gearState struct {
	current string
	peakRPM float64
}

// GearTracking publishes LastGear and LastGearMaxRPM whenever the driver
// leaves a forward gear.
func (c *Calcs) GearTracking() error {
	f, err := c.newest()
	if err != nil {
		return err
	}
	g := &c.gear
	if f.Gear == g.current {
		g.peakRPM = math.Max(g.peakRPM, f.RPM)
		return nil
	}
	if n, ok := forwardGear(g.current); ok {
		c.sink.SetValue("LastGear", n)
		c.sink.SetValue("LastGearMaxRPM", int(math.Round(g.peakRPM)))
	}
	g.current, g.peakRPM = f.Gear, f.RPM
	return nil
}

// forwardGear parses "1".."n"; neutral, reverse and unknown gears are not forward.
func forwardGear(gear string) (int, bool) {
	n, err := strconv.Atoi(gear)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
