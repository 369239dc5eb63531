package calcs

// TireAttributesUpdate publishes the cold tire pressures set for the next pit service.
func (c *Calcs) TireAttributesUpdate() error {
	f, err := c.newest()
	if err != nil {
		return err
	}
	if f.IRacing == nil {
		return ErrNoIRacingData
	}
	c.sink.SetValue("PitServiceLFPCold", f.IRacing.LFColdPressure)
	c.sink.SetValue("PitServiceRFPCold", f.IRacing.RFColdPressure)
	c.sink.SetValue("PitServiceLRPCold", f.IRacing.LRColdPressure)
	c.sink.SetValue("PitServiceRRPCold", f.IRacing.RRColdPressure)
	return nil
}
