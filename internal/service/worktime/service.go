package worktime

import (
	"context"
	"fmt"

	"github.com/flexwork-hq/payroll-engine-go/internal/domain/worktime"
	"github.com/flexwork-hq/payroll-engine-go/internal/pkg/format"
	"github.com/flexwork-hq/payroll-engine-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WorktimeServiceImpl struct {
	rules      worktime.WorkRules
	aggregator *BiweeklyAggregator
	payroll    *PayrollCalculator
}

func NewWorktimeService(rules worktime.WorkRules) worktime.WorktimeService {
	night := NewNightOverlapCalculator(rules)
	extractor := NewDailyWorkExtractor(night)

	return &WorktimeServiceImpl{
		rules:      rules,
		aggregator: NewBiweeklyAggregator(rules, extractor),
		payroll:    NewPayrollCalculator(rules),
	}
}

// CalculateBiweekly implements worktime.WorktimeService.
func (s *WorktimeServiceImpl) CalculateBiweekly(ctx context.Context, req worktime.BiweeklyCalculationRequest) (worktime.BiweeklyCalculationResponse, error) {
	calc, err := s.aggregateFromRequest(req)
	if err != nil {
		return worktime.BiweeklyCalculationResponse{}, err
	}

	return toBiweeklyResponse(calc), nil
}

// CalculatePayroll implements worktime.WorktimeService.
func (s *WorktimeServiceImpl) CalculatePayroll(ctx context.Context, req worktime.PayrollCalculationRequest) (worktime.PayrollCalculationResponse, error) {
	if !validator.IsFinite(req.HourlyWage) || req.HourlyWage < 0 {
		return worktime.PayrollCalculationResponse{}, fmt.Errorf("%w: got %v", worktime.ErrInvalidHourlyWage, req.HourlyWage)
	}

	calc, err := s.aggregateFromRequest(req.Biweekly())
	if err != nil {
		return worktime.PayrollCalculationResponse{}, err
	}

	result := s.payroll.Calculate(calc, decimal.NewFromFloat(req.HourlyWage))

	return worktime.PayrollCalculationResponse{
		BiweeklyCalculationResponse: toBiweeklyResponse(calc),
		HourlyWage:                  req.HourlyWage,
		RegularPay:                  result.RegularPay,
		OvertimePay:                 result.OvertimePay,
		NightPay:                    result.NightPay,
		NightOvertimePay:            result.NightOvertimePay,
		HolidayPay:                  result.HolidayPay,
		TotalAdditionalPay:          result.TotalAdditionalPay,
		RegularPayDisplay:           format.Amount(result.RegularPay),
		TotalAdditionalPayDisplay:   format.Amount(result.TotalAdditionalPay),
	}, nil
}

// GetRules implements worktime.WorktimeService.
func (s *WorktimeServiceImpl) GetRules(ctx context.Context) worktime.WorkRulesResponse {
	return worktime.WorkRulesResponse{
		NightStartHour:           s.rules.NightStartHour,
		NightEndHour:             s.rules.NightEndHour,
		NightSampleStepMinutes:   s.rules.NightSampleStepMinutes,
		BiweeklyStandardMinutes:  s.rules.BiweeklyStandardMinutes,
		SubstituteHalfDayMinutes: s.rules.SubstituteHalfDayMinutes,
		SubstituteFullDayMinutes: s.rules.SubstituteFullDayMinutes,
		OvertimeMultiplier:       s.rules.OvertimeMultiplier.String(),
		NightMultiplier:          s.rules.NightMultiplier.String(),
		NightOvertimeMultiplier:  s.rules.NightOvertimeMultiplier.String(),
		HolidayMultiplier:        s.rules.HolidayMultiplier.String(),
	}
}

// aggregateFromRequest validates the request, enforces period ordering
// and runs the aggregation.
func (s *WorktimeServiceImpl) aggregateFromRequest(req worktime.BiweeklyCalculationRequest) (worktime.BiweeklyCalculation, error) {
	if err := req.Validate(); err != nil {
		return worktime.BiweeklyCalculation{}, err
	}

	periodStart, periodEnd := req.Period()
	if periodEnd.Before(periodStart) {
		return worktime.BiweeklyCalculation{}, fmt.Errorf("%w: %s to %s", worktime.ErrInvalidPeriod, req.PeriodStart, req.PeriodEnd)
	}

	return s.aggregator.Aggregate(periodStart, periodEnd, req.ToRecords()), nil
}

func toBiweeklyResponse(calc worktime.BiweeklyCalculation) worktime.BiweeklyCalculationResponse {
	return worktime.BiweeklyCalculationResponse{
		ID:                        uuid.NewString(),
		PeriodStart:               calc.PeriodStart.Format("2006-01-02"),
		PeriodEnd:                 calc.PeriodEnd.Format("2006-01-02"),
		TotalWorkMinutes:          calc.TotalWorkMinutes,
		RegularMinutes:            calc.RegularMinutes,
		OvertimeMinutes:           calc.OvertimeMinutes,
		NightMinutes:              calc.NightMinutes,
		NightOvertimeMinutes:      calc.NightOvertimeMinutes,
		HolidayMinutes:            calc.HolidayMinutes,
		HolidaySubstitutedMinutes: calc.HolidaySubstitutedMinutes,
		SubstituteHalfDays:        calc.SubstituteHalfDays,
		SubstituteFullDays:        calc.SubstituteFullDays,
		TotalWorkDisplay:          format.Minutes(calc.TotalWorkMinutes),
		OvertimeDisplay:           format.Minutes(calc.OvertimeMinutes),
		NightDisplay:              format.Minutes(calc.NightMinutes + calc.NightOvertimeMinutes),
	}
}
