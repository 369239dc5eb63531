// Package telemetry holds the per-frame game data fed into the scheduler and
// the recording formats used to replay sessions outside the dashboard host.
package telemetry

import "time"

// Frame is one snapshot of simulator telemetry. It is treated as immutable once
// captured; the scheduler keeps read-only copies in its history.
type Frame struct {
	Gear     string        `yaml:"gear" cbor:"1,keyasint,omitempty"` // "N", "R", "1".."8"
	RPM      float64       `yaml:"rpm" cbor:"2,keyasint,omitempty"`
	MaxRPM   float64       `yaml:"max_rpm" cbor:"3,keyasint,omitempty"`
	SpeedKmh float64       `yaml:"speed_kmh" cbor:"4,keyasint,omitempty"`
	Lap      int           `yaml:"lap" cbor:"5,keyasint,omitempty"`
	Position int           `yaml:"position" cbor:"6,keyasint,omitempty"`
	Time     time.Duration `yaml:"time" cbor:"7,keyasint,omitempty"` // session time
	IRacing  *IRacing      `yaml:"iracing,omitempty" cbor:"8,keyasint,omitempty"`
}

// IRacing carries fields only the iRacing reader exposes. Nil for other games.
type IRacing struct {
	LFColdPressure float64 `yaml:"lf_cold_pressure" cbor:"1,keyasint"`
	RFColdPressure float64 `yaml:"rf_cold_pressure" cbor:"2,keyasint"`
	LRColdPressure float64 `yaml:"lr_cold_pressure" cbor:"3,keyasint"`
	RRColdPressure float64 `yaml:"rr_cold_pressure" cbor:"4,keyasint"`
}

// Sample is what the host hands over once per frame: the frame plus the two
// session flags.
type Sample struct {
	GameRunning bool  `yaml:"running" cbor:"1,keyasint"`
	GameReplay  bool  `yaml:"replay" cbor:"2,keyasint"`
	Frame       Frame `yaml:"frame" cbor:"3,keyasint"`
}

// Active reports whether the session is live or replaying.
func (s Sample) Active() bool {
	return s.GameRunning || s.GameReplay
}
