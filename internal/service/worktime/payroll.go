package worktime

import (
	"github.com/flexwork-hq/payroll-engine-go/internal/domain/worktime"
	"github.com/shopspring/decimal"
)

var sixty = decimal.NewFromInt(60)

// PayrollCalculator converts the minute buckets of a biweekly
// calculation into monetary amounts at a given hourly wage.
//
// Each component is rounded to the smallest currency unit on its own,
// half away from zero, before summing; rounding once at the end would
// produce different totals.
type PayrollCalculator struct {
	rules worktime.WorkRules
}

func NewPayrollCalculator(rules worktime.WorkRules) *PayrollCalculator {
	return &PayrollCalculator{rules: rules}
}

// Calculate derives a PayrollCalculation from the aggregated buckets.
// Overtime pay covers only the overtime minutes not already paid at the
// combined night-overtime rate, so no minute is paid twice.
func (p *PayrollCalculator) Calculate(calc worktime.BiweeklyCalculation, hourlyWage decimal.Decimal) worktime.PayrollCalculation {
	minuteWage := hourlyWage.Div(sixty)

	plainOvertimeMinutes := calc.OvertimeMinutes - calc.NightOvertimeMinutes
	if plainOvertimeMinutes < 0 {
		plainOvertimeMinutes = 0
	}

	result := worktime.PayrollCalculation{
		BiweeklyCalculation: calc,
		HourlyWage:          hourlyWage,
		RegularPay:          componentPay(calc.RegularMinutes, minuteWage, decimal.NewFromInt(1)),
		OvertimePay:         componentPay(plainOvertimeMinutes, minuteWage, p.rules.OvertimeMultiplier),
		NightPay:            componentPay(calc.NightMinutes, minuteWage, p.rules.NightMultiplier),
		NightOvertimePay:    componentPay(calc.NightOvertimeMinutes, minuteWage, p.rules.NightOvertimeMultiplier),
		HolidayPay:          componentPay(calc.HolidayMinutes, minuteWage, p.rules.HolidayMultiplier),
	}

	result.TotalAdditionalPay = result.OvertimePay + result.NightPay + result.NightOvertimePay + result.HolidayPay

	return result
}

func componentPay(minutes int, minuteWage, multiplier decimal.Decimal) int64 {
	return decimal.NewFromInt(int64(minutes)).
		Mul(minuteWage).
		Mul(multiplier).
		Round(0).
		IntPart()
}
