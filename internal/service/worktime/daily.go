package worktime

import (
	"math"
	"time"

	"github.com/flexwork-hq/payroll-engine-go/internal/domain/worktime"
)

// DailyWorkExtractor converts one raw attendance record into net worked
// minutes. Malformed records (checkout before checkin, negative break or
// training durations) clamp to zero contribution rather than failing;
// validating records up front is the caller's job.
type DailyWorkExtractor struct {
	night *NightOverlapCalculator
}

func NewDailyWorkExtractor(night *NightOverlapCalculator) *DailyWorkExtractor {
	return &DailyWorkExtractor{night: night}
}

// WorkedMinutes returns max(0, elapsed - break - training) for the record.
func (e *DailyWorkExtractor) WorkedMinutes(record worktime.DailyWorkRecord) int {
	elapsed := elapsedMinutes(record)
	if elapsed <= 0 {
		return 0
	}

	worked := elapsed - clampNonNegative(record.BreakMinutes) - clampNonNegative(record.TrainingMinutes)
	if worked < 0 {
		return 0
	}
	return worked
}

// NightWorkedMinutes returns the record's night-minute contribution net
// of break and training time. Raw night minutes over the full shift
// interval are scaled by worked/elapsed and rounded to the nearest
// minute: breaks are assumed uniformly spread across the shift since
// they carry no timestamps of their own.
func (e *DailyWorkExtractor) NightWorkedMinutes(record worktime.DailyWorkRecord) int {
	elapsed := elapsedMinutes(record)
	if elapsed <= 0 {
		return 0
	}

	raw := e.night.NightMinutes(record.CheckIn, record.CheckOut)
	if raw == 0 {
		return 0
	}

	worked := e.WorkedMinutes(record)
	return int(math.Round(float64(raw) * float64(worked) / float64(elapsed)))
}

func elapsedMinutes(record worktime.DailyWorkRecord) int {
	return int(record.CheckOut.Sub(record.CheckIn) / time.Minute)
}

func clampNonNegative(minutes int) int {
	if minutes < 0 {
		return 0
	}
	return minutes
}
