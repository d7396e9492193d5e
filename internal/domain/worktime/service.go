package worktime

import "context"

// WorktimeService defines the calculation operations exposed to callers.
// Every operation is a pure function of its request; nothing is stored.
type WorktimeService interface {
	// CalculateBiweekly aggregates the supplied records for one 14-day
	// period into categorized minute buckets.
	CalculateBiweekly(ctx context.Context, req BiweeklyCalculationRequest) (BiweeklyCalculationResponse, error)

	// CalculatePayroll runs CalculateBiweekly and converts the buckets
	// into monetary amounts at the supplied hourly wage.
	CalculatePayroll(ctx context.Context, req PayrollCalculationRequest) (PayrollCalculationResponse, error)

	// GetRules returns the rule set the engine was started with.
	GetRules(ctx context.Context) WorkRulesResponse
}
