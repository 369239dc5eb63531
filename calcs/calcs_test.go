package calcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dahldesign/dahl-properties/interval"
	"github.com/dahldesign/dahl-properties/props"
	"github.com/dahldesign/dahl-properties/telemetry"
)

type mockSink struct{ mock.Mock }

func (m *mockSink) SetValue(name string, value any) { m.Called(name, value) }

func pushGears(h *interval.History[telemetry.Frame], gears ...string) {
	for _, g := range gears {
		h.Push(telemetry.Frame{Gear: g})
	}
}

func TestSmoothGear_UsesCurrentGearUntilHistoryFills(t *testing.T) {
	h := interval.NewHistory[telemetry.Frame](10)
	sink := &mockSink{}
	c := New(DefaultSettings(), h, sink)

	pushGears(h, "1", "2", "3")
	sink.On("SetValue", "SmoothGear", "3").Once()
	require.NoError(t, c.SmoothGear())
	sink.AssertExpectations(t)
}

func TestSmoothGear_LagsFiveFramesBehindNewest(t *testing.T) {
	h := interval.NewHistory[telemetry.Frame](10)
	store := props.NewStore()
	store.Declare("SmoothGear", "", "")
	c := New(DefaultSettings(), h, store)

	pushGears(h, "1", "2", "N", "N", "3", "3")
	require.NoError(t, c.SmoothGear())
	v, _ := store.Get("SmoothGear")
	assert.Equal(t, "1", v, "with six frames the lagged gear is the first pushed")

	pushGears(h, "3", "3", "3", "3", "3", "3", "4")
	require.NoError(t, c.SmoothGear())
	v, _ = store.Get("SmoothGear")
	assert.Equal(t, "3", v)
}

func TestSmoothGear_NoFrame(t *testing.T) {
	c := New(DefaultSettings(), interval.NewHistory[telemetry.Frame](10), &mockSink{})
	assert.ErrorIs(t, c.SmoothGear(), ErrNoFrame)
}

func TestTireAttributesUpdate(t *testing.T) {
	h := interval.NewHistory[telemetry.Frame](10)
	sink := &mockSink{}
	c := New(DefaultSettings(), h, sink)

	h.Push(telemetry.Frame{Gear: "2"})
	assert.ErrorIs(t, c.TireAttributesUpdate(), ErrNoIRacingData)
	sink.AssertNotCalled(t, "SetValue", mock.Anything, mock.Anything)

	h.Push(telemetry.Frame{IRacing: &telemetry.IRacing{
		LFColdPressure: 172.4, RFColdPressure: 172.5, LRColdPressure: 165.4, RRColdPressure: 165.5,
	}})
	sink.On("SetValue", "PitServiceLFPCold", 172.4).Once()
	sink.On("SetValue", "PitServiceRFPCold", 172.5).Once()
	sink.On("SetValue", "PitServiceLRPCold", 165.4).Once()
	sink.On("SetValue", "PitServiceRRPCold", 165.5).Once()
	require.NoError(t, c.TireAttributesUpdate())
	sink.AssertExpectations(t)
}

func TestGearTracking_PublishesOnLeavingForwardGear(t *testing.T) {
	h := interval.NewHistory[telemetry.Frame](10)
	store := props.NewStore()
	store.Declare("LastGear", 0, "")
	store.Declare("LastGearMaxRPM", 0, "")
	c := New(DefaultSettings(), h, store)

	frames := []telemetry.Frame{
		{Gear: "N", RPM: 900},
		{Gear: "1", RPM: 3000},
		{Gear: "1", RPM: 7200.4},
		{Gear: "1", RPM: 6900},
		{Gear: "2", RPM: 5100},
		{Gear: "2", RPM: 7800.6},
		{Gear: "N", RPM: 4000},
	}
	for i, f := range frames {
		h.Push(f)
		require.NoError(t, c.GearTracking())
		switch i {
		case 0, 1, 2, 3:
			assert.Equal(t, 0, store.Writes("LastGear"), "frame %d", i)
		case 4:
			g, _ := store.Get("LastGear")
			rpm, _ := store.Get("LastGearMaxRPM")
			assert.Equal(t, 1, g)
			assert.Equal(t, 7200, rpm)
		}
	}
	g, _ := store.Get("LastGear")
	rpm, _ := store.Get("LastGearMaxRPM")
	assert.Equal(t, 2, g)
	assert.Equal(t, 7801, rpm)
	assert.Equal(t, 2, store.Writes("LastGear"))
}

func TestSettingsUpdate_EchoesSettings(t *testing.T) {
	settings := DefaultSettings()
	settings.DashType = "Formula"
	settings.SupercarSwapPosition = true
	store := props.NewStore()
	c := New(settings, interval.NewHistory[telemetry.Frame](10), store)

	c.Declare(store)
	assert.Equal(t, len(settingsEcho), store.Len())
	store.SetValue("DashType", "stale")

	require.NoError(t, c.SettingsUpdate())
	v, _ := store.Get("DashType")
	assert.Equal(t, "Formula", v)
	v, _ = store.Get("ARBswapped")
	assert.Equal(t, true, v)
	v, _ = store.Get("SmallFuelIncrement")
	assert.Equal(t, 0.1, v)
}

func TestTasks_RegisterWithDefaultRates(t *testing.T) {
	c := New(DefaultSettings(), interval.NewHistory[telemetry.Frame](10), &mockSink{})
	r, err := interval.NewRegistry(interval.DefaultRates(), c.Tasks())
	require.NoError(t, err)

	one, _ := r.TasksFor(1)
	sixty, _ := r.TasksFor(60)
	require.Len(t, one, 2)
	require.Len(t, sixty, 2)
	assert.Equal(t, "SettingsUpdate", one[0].Name)
	assert.Equal(t, "TireAttributesUpdate", one[1].Name)
	assert.Equal(t, "SmoothGear", sixty[0].Name)
	assert.Equal(t, "GearTracking", sixty[1].Name)
}

func TestSettings_Validate(t *testing.T) {
	s := DefaultSettings()
	assert.NoError(t, s.Validate(10))
	assert.Error(t, s.Validate(5), "delay 5 needs six frames")

	s.SmoothGearDelay = -1
	assert.Error(t, s.Validate(10))

	s = DefaultSettings()
	s.LargeFuelIncrement = -1
	assert.Error(t, s.Validate(10))
}
