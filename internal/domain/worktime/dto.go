package worktime

import (
	"fmt"
	"time"

	"github.com/flexwork-hq/payroll-engine-go/internal/pkg/validator"
)

// ========================================
// WORKTIME DTOs
// ========================================

type DailyWorkRecordRequest struct {
	Date                   string `json:"date"`
	CheckIn                string `json:"check_in"`
	CheckOut               string `json:"check_out"`
	BreakMinutes           int    `json:"break_minutes"`
	TrainingMinutes        int    `json:"training_minutes"`
	IsHoliday              bool   `json:"is_holiday"`
	SubstituteLeaveGranted bool   `json:"substitute_leave_granted"`
}

func (r *DailyWorkRecordRequest) validate(index int) validator.ValidationErrors {
	var errs validator.ValidationErrors

	field := func(name string) string {
		return fmt.Sprintf("records[%d].%s", index, name)
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   field("date"),
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDateTime(r.CheckIn); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   field("check_in"),
			Message: "check_in must be an ISO8601 timestamp",
		})
	}

	if _, ok := validator.IsValidDateTime(r.CheckOut); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   field("check_out"),
			Message: "check_out must be an ISO8601 timestamp",
		})
	}

	if r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   field("break_minutes"),
			Message: "break_minutes must not be negative",
		})
	}

	if r.TrainingMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   field("training_minutes"),
			Message: "training_minutes must not be negative",
		})
	}

	return errs
}

// ToRecord converts a validated request into a domain record. Call
// only after validate has passed; unparseable fields become zero values.
func (r *DailyWorkRecordRequest) ToRecord() DailyWorkRecord {
	date, _ := validator.IsValidDate(r.Date)
	checkIn, _ := validator.IsValidDateTime(r.CheckIn)
	checkOut, _ := validator.IsValidDateTime(r.CheckOut)

	return DailyWorkRecord{
		Date:                   date,
		CheckIn:                checkIn,
		CheckOut:               checkOut,
		BreakMinutes:           r.BreakMinutes,
		TrainingMinutes:        r.TrainingMinutes,
		IsHoliday:              r.IsHoliday,
		SubstituteLeaveGranted: r.SubstituteLeaveGranted,
	}
}

type BiweeklyCalculationRequest struct {
	PeriodStart string                   `json:"period_start"`
	PeriodEnd   string                   `json:"period_end"`
	Records     []DailyWorkRecordRequest `json:"records"`
}

func (r *BiweeklyCalculationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PeriodStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_start",
			Message: "period_start is required",
		})
	} else if _, ok := validator.IsValidDate(r.PeriodStart); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "period_start",
			Message: "period_start must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.PeriodEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period_end is required",
		})
	} else if _, ok := validator.IsValidDate(r.PeriodEnd); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period_end must be in YYYY-MM-DD format",
		})
	}

	for i := range r.Records {
		errs = append(errs, r.Records[i].validate(i)...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Period returns the parsed period boundaries. Call only after Validate.
func (r *BiweeklyCalculationRequest) Period() (start, end time.Time) {
	start, _ = validator.IsValidDate(r.PeriodStart)
	end, _ = validator.IsValidDate(r.PeriodEnd)
	return start, end
}

// ToRecords converts all record requests into domain records.
func (r *BiweeklyCalculationRequest) ToRecords() []DailyWorkRecord {
	records := make([]DailyWorkRecord, 0, len(r.Records))
	for i := range r.Records {
		records = append(records, r.Records[i].ToRecord())
	}
	return records
}

type PayrollCalculationRequest struct {
	PeriodStart string                   `json:"period_start"`
	PeriodEnd   string                   `json:"period_end"`
	Records     []DailyWorkRecordRequest `json:"records"`
	HourlyWage  float64                  `json:"hourly_wage"`
}

func (r *PayrollCalculationRequest) Validate() error {
	// Wage sanity lives in the service, which rejects with
	// ErrInvalidHourlyWage; field-format checks stay here.
	biweekly := r.Biweekly()
	return biweekly.Validate()
}

// Biweekly returns the embedded biweekly portion of the request.
func (r *PayrollCalculationRequest) Biweekly() BiweeklyCalculationRequest {
	return BiweeklyCalculationRequest{
		PeriodStart: r.PeriodStart,
		PeriodEnd:   r.PeriodEnd,
		Records:     r.Records,
	}
}

type BiweeklyCalculationResponse struct {
	ID          string `json:"id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`

	TotalWorkMinutes          int `json:"total_work_minutes"`
	RegularMinutes            int `json:"regular_minutes"`
	OvertimeMinutes           int `json:"overtime_minutes"`
	NightMinutes              int `json:"night_minutes"`
	NightOvertimeMinutes      int `json:"night_overtime_minutes"`
	HolidayMinutes            int `json:"holiday_minutes"`
	HolidaySubstitutedMinutes int `json:"holiday_substituted_minutes"`

	SubstituteHalfDays int `json:"substitute_half_days"`
	SubstituteFullDays int `json:"substitute_full_days"`

	TotalWorkDisplay string `json:"total_work_display"`
	OvertimeDisplay  string `json:"overtime_display"`
	NightDisplay     string `json:"night_display"`
}

type PayrollCalculationResponse struct {
	BiweeklyCalculationResponse

	HourlyWage float64 `json:"hourly_wage"`

	RegularPay         int64 `json:"regular_pay"`
	OvertimePay        int64 `json:"overtime_pay"`
	NightPay           int64 `json:"night_pay"`
	NightOvertimePay   int64 `json:"night_overtime_pay"`
	HolidayPay         int64 `json:"holiday_pay"`
	TotalAdditionalPay int64 `json:"total_additional_pay"`

	RegularPayDisplay         string `json:"regular_pay_display"`
	TotalAdditionalPayDisplay string `json:"total_additional_pay_display"`
}

type WorkRulesResponse struct {
	NightStartHour           int `json:"night_start_hour"`
	NightEndHour             int `json:"night_end_hour"`
	NightSampleStepMinutes   int `json:"night_sample_step_minutes"`
	BiweeklyStandardMinutes  int `json:"biweekly_standard_minutes"`
	SubstituteHalfDayMinutes int `json:"substitute_half_day_minutes"`
	SubstituteFullDayMinutes int `json:"substitute_full_day_minutes"`

	OvertimeMultiplier      string `json:"overtime_multiplier"`
	NightMultiplier         string `json:"night_multiplier"`
	NightOvertimeMultiplier string `json:"night_overtime_multiplier"`
	HolidayMultiplier       string `json:"holiday_multiplier"`
}
