package worktime

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkRules holds the statutory parameters the engine computes with.
// Loaded once from config at startup and treated as immutable.
type WorkRules struct {
	NightStartHour           int
	NightEndHour             int
	NightSampleStepMinutes   int
	BiweeklyStandardMinutes  int
	SubstituteHalfDayMinutes int
	SubstituteFullDayMinutes int

	OvertimeMultiplier      decimal.Decimal
	NightMultiplier         decimal.Decimal
	NightOvertimeMultiplier decimal.Decimal
	HolidayMultiplier       decimal.Decimal
}

// DefaultWorkRules returns the Korean statutory defaults: 22:00-06:00
// night window, 80-hour biweekly standard, 4h/8h substitute-leave
// thresholds, 1.5x overtime, +0.5x night, 2.0x night-overtime, 1.5x
// holiday.
func DefaultWorkRules() WorkRules {
	return WorkRules{
		NightStartHour:           22,
		NightEndHour:             6,
		NightSampleStepMinutes:   15,
		BiweeklyStandardMinutes:  4800,
		SubstituteHalfDayMinutes: 240,
		SubstituteFullDayMinutes: 480,
		OvertimeMultiplier:       decimal.NewFromFloat(1.5),
		NightMultiplier:          decimal.NewFromFloat(0.5),
		NightOvertimeMultiplier:  decimal.NewFromFloat(2.0),
		HolidayMultiplier:        decimal.NewFromFloat(1.5),
	}
}

// DailyWorkRecord is one attendance record as supplied by the caller.
// Attendance capture and validation of the raw data are external
// concerns; the engine only clamps, never rejects, a single record.
type DailyWorkRecord struct {
	Date                   time.Time
	CheckIn                time.Time
	CheckOut               time.Time
	BreakMinutes           int
	TrainingMinutes        int
	IsHoliday              bool
	SubstituteLeaveGranted bool
}

// BiweeklyCalculation is the categorized minute breakdown of one 14-day
// pay period. All bucket values are non-negative minutes and
// RegularMinutes + OvertimeMinutes == TotalWorkMinutes always holds.
type BiweeklyCalculation struct {
	PeriodStart time.Time
	PeriodEnd   time.Time

	TotalWorkMinutes          int
	RegularMinutes            int
	OvertimeMinutes           int
	NightMinutes              int
	NightOvertimeMinutes      int
	HolidayMinutes            int
	HolidaySubstitutedMinutes int

	SubstituteHalfDays int
	SubstituteFullDays int
}

// PayrollCalculation extends a BiweeklyCalculation with monetary
// amounts. Amounts are integers in the smallest currency unit, each
// component rounded independently (half away from zero).
type PayrollCalculation struct {
	BiweeklyCalculation

	HourlyWage decimal.Decimal

	RegularPay       int64
	OvertimePay      int64
	NightPay         int64
	NightOvertimePay int64
	HolidayPay       int64

	// TotalAdditionalPay is the sum of the four premium components;
	// base RegularPay is excluded.
	TotalAdditionalPay int64
}
