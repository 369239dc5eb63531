package plugin

import (
	"github.com/sirupsen/logrus"

	"github.com/dahldesign/dahl-properties/interval"
	"github.com/dahldesign/dahl-properties/telemetry"
)

// ReplayResult summarizes feeding a recording through a plugin.
type ReplayResult struct {
	SessionID string
	Frames    int
	Active    int
	Errors    []*interval.TaskError
}

// Replay plays every sample of rec into p in order, as the host would.
func Replay(p *Plugin, rec *telemetry.Recording) ReplayResult {
	res := ReplayResult{SessionID: rec.SessionID}
	p.OnTaskError(func(te *interval.TaskError) { res.Errors = append(res.Errors, te) })
	defer p.OnTaskError(nil)

	log := logrus.WithFields(logrus.Fields{"session": rec.SessionID, "game": rec.Game})
	log.Infof("Replaying %d samples", len(rec.Samples))
	for _, s := range rec.Samples {
		res.Frames++
		if p.DataUpdate(s) {
			res.Active++
		}
	}
	log.Infof("Replay finished: %d/%d active frames, %d task errors", res.Active, res.Frames, len(res.Errors))
	return res
}
