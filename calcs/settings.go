package calcs

import "fmt"

// Settings is the dashboard configuration blob persisted by the host. The
// scheduler only reads it; it is never mutated after construction.
type Settings struct {
	DDUStartLED          int     `yaml:"ddu_start_led"`
	SW1StartLED          int     `yaml:"sw1_start_led"`
	DDUEnabled           bool    `yaml:"ddu_enabled"`
	SW1Enabled           bool    `yaml:"sw1_enabled"`
	DashLEDEnabled       bool    `yaml:"dash_led_enabled"`
	ShowMapEnabled       bool    `yaml:"show_map_enabled"`
	DashType             string  `yaml:"dash_type"`
	LapInfoScreen        int     `yaml:"lap_info_screen"`
	ShiftTimingAssist    bool    `yaml:"shift_timing_assist"`
	ShiftWarning         bool    `yaml:"shift_warning"`
	SupercarSwapPosition bool    `yaml:"supercar_swap_position"`
	SupercarARBDirection bool    `yaml:"supercar_arb_direction"`
	SmallFuelIncrement   float64 `yaml:"small_fuel_increment"`
	LargeFuelIncrement   float64 `yaml:"large_fuel_increment"`
	CoupleInCarToPit     bool    `yaml:"couple_in_car_to_pit"`
	SmoothGearDelay      int     `yaml:"smooth_gear_delay"` // frames SmoothGear lags behind the newest frame
}

// DefaultSettings mirrors the host plugin's factory settings.
func DefaultSettings() Settings {
	return Settings{
		DDUStartLED:        1,
		SW1StartLED:        1,
		DDUEnabled:         true,
		SW1Enabled:         true,
		DashLEDEnabled:     true,
		ShowMapEnabled:     true,
		DashType:           "Default",
		LapInfoScreen:      1,
		ShiftTimingAssist:  false,
		ShiftWarning:       true,
		SmallFuelIncrement: 0.1,
		LargeFuelIncrement: 1,
		SmoothGearDelay:    5,
	}
}

// Validate checks ranges that would make a task misbehave.
func (s Settings) Validate(historyCapacity int) error {
	if s.SmoothGearDelay < 0 {
		return fmt.Errorf("smooth_gear_delay must be non-negative, got %d", s.SmoothGearDelay)
	}
	if s.SmoothGearDelay >= historyCapacity {
		return fmt.Errorf("smooth_gear_delay %d needs a history of at least %d frames, have %d",
			s.SmoothGearDelay, s.SmoothGearDelay+1, historyCapacity)
	}
	if s.SmallFuelIncrement < 0 || s.LargeFuelIncrement < 0 {
		return fmt.Errorf("fuel increments must be non-negative, got %v/%v", s.SmallFuelIncrement, s.LargeFuelIncrement)
	}
	return nil
}

// echo is a settings-derived property published by SettingsUpdate.
type echo struct {
	name  string
	value func(Settings) any
}

var settingsEcho = []echo{
	{"DDUstartLED", func(s Settings) any { return s.DDUStartLED }},
	{"SW1startLED", func(s Settings) any { return s.SW1StartLED }},
	{"DDUEnabled", func(s Settings) any { return s.DDUEnabled }},
	{"SW1Enabled", func(s Settings) any { return s.SW1Enabled }},
	{"DashLEDEnabled", func(s Settings) any { return s.DashLEDEnabled }},
	{"ShowMapEnabled", func(s Settings) any { return s.ShowMapEnabled }},
	{"DashType", func(s Settings) any { return s.DashType }},
	{"LapInfoScreen", func(s Settings) any { return s.LapInfoScreen }},
	{"ShiftTimingAssist", func(s Settings) any { return s.ShiftTimingAssist }},
	{"ShiftWarning", func(s Settings) any { return s.ShiftWarning }},
	{"ARBswapped", func(s Settings) any { return s.SupercarSwapPosition }},
	{"ARBstiffForward", func(s Settings) any { return s.SupercarARBDirection }},
	{"SmallFuelIncrement", func(s Settings) any { return s.SmallFuelIncrement }},
	{"LargeFuelIncrement", func(s Settings) any { return s.LargeFuelIncrement }},
	{"CoupleInCarToPit", func(s Settings) any { return s.CoupleInCarToPit }},
}
