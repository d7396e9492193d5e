package worktime

import (
	"time"

	"github.com/flexwork-hq/payroll-engine-go/internal/domain/worktime"
)

// BiweeklyAggregator combines the daily records of one 14-day pay
// period into categorized minute buckets.
type BiweeklyAggregator struct {
	rules     worktime.WorkRules
	extractor *DailyWorkExtractor
}

func NewBiweeklyAggregator(rules worktime.WorkRules, extractor *DailyWorkExtractor) *BiweeklyAggregator {
	return &BiweeklyAggregator{
		rules:     rules,
		extractor: extractor,
	}
}

// Aggregate produces the minute breakdown for the period. Record order
// does not matter: overtime is the excess of the period total over the
// biweekly standard, and night minutes are absorbed into the overtime
// bucket by size up to its capacity rather than by chronological
// position within the period.
func (a *BiweeklyAggregator) Aggregate(periodStart, periodEnd time.Time, records []worktime.DailyWorkRecord) worktime.BiweeklyCalculation {
	calc := worktime.BiweeklyCalculation{
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	}

	rawNightMinutes := 0
	for _, record := range records {
		worked := a.extractor.WorkedMinutes(record)
		calc.TotalWorkMinutes += worked
		rawNightMinutes += a.extractor.NightWorkedMinutes(record)

		if !record.IsHoliday {
			continue
		}

		if !record.SubstituteLeaveGranted {
			calc.HolidayMinutes += worked
			continue
		}

		// Substitute leave replaces the holiday premium. Work below the
		// half-day threshold earns neither premium pay nor leave credit.
		switch {
		case worked >= a.rules.SubstituteFullDayMinutes:
			calc.HolidaySubstitutedMinutes += worked
			calc.SubstituteFullDays++
		case worked >= a.rules.SubstituteHalfDayMinutes:
			calc.HolidaySubstitutedMinutes += worked
			calc.SubstituteHalfDays++
		}
	}

	overtime := calc.TotalWorkMinutes - a.rules.BiweeklyStandardMinutes
	if overtime < 0 {
		overtime = 0
	}
	calc.OvertimeMinutes = overtime
	calc.RegularMinutes = calc.TotalWorkMinutes - overtime

	nightOvertime := 0
	if overtime > 0 {
		nightOvertime = rawNightMinutes
		if nightOvertime > overtime {
			nightOvertime = overtime
		}
	}
	calc.NightOvertimeMinutes = nightOvertime
	calc.NightMinutes = rawNightMinutes - nightOvertime

	return calc
}
