package worktime

import (
	"time"

	"github.com/flexwork-hq/payroll-engine-go/internal/domain/worktime"
)

// NightOverlapCalculator counts the minutes of a shift interval that
// fall inside the nightly window (22:00-06:00 under the default rules).
//
// The interval is sampled in fixed steps starting at check-in; a step
// whose wall-clock hour satisfies the night predicate counts as a full
// step of night minutes. Quantized to the step size on purpose: the
// statutory source data is 15-minute granular, so a boundary that does
// not land on a step mark can be off by up to step-1 minutes.
type NightOverlapCalculator struct {
	startHour   int
	endHour     int
	stepMinutes int
}

func NewNightOverlapCalculator(rules worktime.WorkRules) *NightOverlapCalculator {
	return &NightOverlapCalculator{
		startHour:   rules.NightStartHour,
		endHour:     rules.NightEndHour,
		stepMinutes: rules.NightSampleStepMinutes,
	}
}

// NightMinutes returns the sampled night minutes of [checkIn, checkOut).
// A zero or negative interval yields 0.
func (c *NightOverlapCalculator) NightMinutes(checkIn, checkOut time.Time) int {
	if !checkOut.After(checkIn) || c.stepMinutes <= 0 {
		return 0
	}

	step := time.Duration(c.stepMinutes) * time.Minute
	total := 0
	for t := checkIn; t.Before(checkOut); t = t.Add(step) {
		if c.isNightHour(t.Hour()) {
			total += c.stepMinutes
		}
	}
	return total
}

func (c *NightOverlapCalculator) isNightHour(hour int) bool {
	if c.startHour > c.endHour {
		// Window wraps midnight, e.g. 22:00-06:00.
		return hour >= c.startHour || hour < c.endHour
	}
	return hour >= c.startHour && hour < c.endHour
}
