package worktime

import (
	"testing"
	"time"

	"github.com/flexwork-hq/payroll-engine-go/internal/domain/worktime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAggregator() *BiweeklyAggregator {
	rules := worktime.DefaultWorkRules()
	return NewBiweeklyAggregator(rules, NewDailyWorkExtractor(NewNightOverlapCalculator(rules)))
}

// dayShift returns a daytime record on the period's day offset lasting
// the given minutes from 09:00, no breaks.
func dayShift(day, minutes int) worktime.DailyWorkRecord {
	start := time.Date(2024, 1, 1+day, 9, 0, 0, 0, time.UTC)
	return record(start, start.Add(time.Duration(minutes)*time.Minute), 0, 0)
}

func periodBounds() (time.Time, time.Time) {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)
}

func TestBiweeklyAggregator_EmptyPeriod(t *testing.T) {
	t.Parallel()
	aggregator := newTestAggregator()
	start, end := periodBounds()

	calc := aggregator.Aggregate(start, end, nil)

	assert.Equal(t, start, calc.PeriodStart)
	assert.Equal(t, end, calc.PeriodEnd)
	assert.Zero(t, calc.TotalWorkMinutes)
	assert.Zero(t, calc.RegularMinutes)
	assert.Zero(t, calc.OvertimeMinutes)
}

func TestBiweeklyAggregator_TwelveEightHourDays(t *testing.T) {
	t.Parallel()
	aggregator := newTestAggregator()
	start, end := periodBounds()

	var records []worktime.DailyWorkRecord
	for day := 0; day < 12; day++ {
		records = append(records, dayShift(day, 480))
	}

	calc := aggregator.Aggregate(start, end, records)

	assert.Equal(t, 5760, calc.TotalWorkMinutes)
	assert.Equal(t, 960, calc.OvertimeMinutes)
	assert.Equal(t, 4800, calc.RegularMinutes)
	assert.Equal(t, calc.TotalWorkMinutes, calc.RegularMinutes+calc.OvertimeMinutes)
}

func TestBiweeklyAggregator_OvertimeThreshold(t *testing.T) {
	t.Parallel()
	aggregator := newTestAggregator()
	start, end := periodBounds()

	t.Run("exactly at standard", func(t *testing.T) {
		t.Parallel()
		var records []worktime.DailyWorkRecord
		for day := 0; day < 10; day++ {
			records = append(records, dayShift(day, 480))
		}

		calc := aggregator.Aggregate(start, end, records)

		require.Equal(t, 4800, calc.TotalWorkMinutes)
		assert.Zero(t, calc.OvertimeMinutes)
		assert.Equal(t, 4800, calc.RegularMinutes)
	})

	t.Run("one minute over", func(t *testing.T) {
		t.Parallel()
		var records []worktime.DailyWorkRecord
		for day := 0; day < 9; day++ {
			records = append(records, dayShift(day, 480))
		}
		records = append(records, dayShift(9, 481))

		calc := aggregator.Aggregate(start, end, records)

		require.Equal(t, 4801, calc.TotalWorkMinutes)
		assert.Equal(t, 1, calc.OvertimeMinutes)
		assert.Equal(t, 4800, calc.RegularMinutes)
	})
}

func TestBiweeklyAggregator_HolidayPremiumEligible(t *testing.T) {
	t.Parallel()
	aggregator := newTestAggregator()
	start, end := periodBounds()

	holiday := dayShift(6, 300)
	holiday.IsHoliday = true

	calc := aggregator.Aggregate(start, end, []worktime.DailyWorkRecord{holiday})

	assert.Equal(t, 300, calc.HolidayMinutes)
	assert.Zero(t, calc.HolidaySubstitutedMinutes)
	assert.Zero(t, calc.SubstituteHalfDays)
	assert.Zero(t, calc.SubstituteFullDays)
}

func TestBiweeklyAggregator_SubstituteLeaveUnits(t *testing.T) {
	t.Parallel()
	aggregator := newTestAggregator()
	start, end := periodBounds()

	tests := []struct {
		name               string
		workedMinutes      int
		substitutedMinutes int
		halfDays           int
		fullDays           int
	}{
		{"below half-day threshold earns nothing", 239, 0, 0, 0},
		{"half-day boundary", 240, 240, 1, 0},
		{"between thresholds", 400, 400, 1, 0},
		{"full-day boundary", 480, 480, 0, 1},
		{"above full-day threshold", 600, 600, 0, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			holiday := dayShift(6, tt.workedMinutes)
			holiday.IsHoliday = true
			holiday.SubstituteLeaveGranted = true

			calc := aggregator.Aggregate(start, end, []worktime.DailyWorkRecord{holiday})

			assert.Equal(t, tt.substitutedMinutes, calc.HolidaySubstitutedMinutes)
			assert.Equal(t, tt.halfDays, calc.SubstituteHalfDays)
			assert.Equal(t, tt.fullDays, calc.SubstituteFullDays)
			// Substituted work never lands in the premium bucket.
			assert.Zero(t, calc.HolidayMinutes)
		})
	}
}

func TestBiweeklyAggregator_NightOvertimeAllocation(t *testing.T) {
	t.Parallel()
	aggregator := newTestAggregator()
	start, end := periodBounds()

	t.Run("night fully absorbed by overtime", func(t *testing.T) {
		t.Parallel()
		var records []worktime.DailyWorkRecord
		for day := 0; day < 10; day++ {
			records = append(records, dayShift(day, 480))
		}
		// 22:00-00:00, 120 minutes of pure night work.
		nightStart := time.Date(2024, 1, 11, 22, 0, 0, 0, time.UTC)
		records = append(records, record(nightStart, nightStart.Add(2*time.Hour), 0, 0))

		calc := aggregator.Aggregate(start, end, records)

		require.Equal(t, 4920, calc.TotalWorkMinutes)
		assert.Equal(t, 120, calc.OvertimeMinutes)
		assert.Equal(t, 120, calc.NightOvertimeMinutes)
		assert.Zero(t, calc.NightMinutes)
	})

	t.Run("night split across buckets", func(t *testing.T) {
		t.Parallel()
		var records []worktime.DailyWorkRecord
		for day := 0; day < 9; day++ {
			records = append(records, dayShift(day, 480))
		}
		records = append(records, dayShift(9, 380))
		// 22:00-02:00, 240 minutes of pure night work.
		nightStart := time.Date(2024, 1, 11, 22, 0, 0, 0, time.UTC)
		records = append(records, record(nightStart, nightStart.Add(4*time.Hour), 0, 0))

		calc := aggregator.Aggregate(start, end, records)

		require.Equal(t, 4940, calc.TotalWorkMinutes)
		require.Equal(t, 140, calc.OvertimeMinutes)
		assert.Equal(t, 140, calc.NightOvertimeMinutes)
		assert.Equal(t, 100, calc.NightMinutes)
		assert.Equal(t, 240, calc.NightMinutes+calc.NightOvertimeMinutes)
	})

	t.Run("no overtime leaves night untouched", func(t *testing.T) {
		t.Parallel()
		nightStart := time.Date(2024, 1, 2, 22, 0, 0, 0, time.UTC)
		records := []worktime.DailyWorkRecord{
			record(nightStart, nightStart.Add(2*time.Hour), 0, 0),
		}

		calc := aggregator.Aggregate(start, end, records)

		assert.Equal(t, 120, calc.NightMinutes)
		assert.Zero(t, calc.NightOvertimeMinutes)
	})
}

func TestBiweeklyAggregator_MalformedRecordContributesNothing(t *testing.T) {
	t.Parallel()
	aggregator := newTestAggregator()
	start, end := periodBounds()

	records := []worktime.DailyWorkRecord{
		dayShift(0, 480),
		// Checkout before checkin; clamps instead of failing the batch.
		record(at(18, 0), at(9, 0), 0, 0),
		record(at(9, 0), at(10, 0), 600, 0),
	}

	calc := aggregator.Aggregate(start, end, records)

	assert.Equal(t, 480, calc.TotalWorkMinutes)
	assert.Equal(t, 480, calc.RegularMinutes)
}
