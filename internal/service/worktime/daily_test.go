package worktime

import (
	"testing"
	"time"

	"github.com/flexwork-hq/payroll-engine-go/internal/domain/worktime"
	"github.com/stretchr/testify/assert"
)

func newTestExtractor() *DailyWorkExtractor {
	return NewDailyWorkExtractor(NewNightOverlapCalculator(worktime.DefaultWorkRules()))
}

func record(checkIn, checkOut time.Time, breakMinutes, trainingMinutes int) worktime.DailyWorkRecord {
	return worktime.DailyWorkRecord{
		Date:            time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, checkIn.Location()),
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		BreakMinutes:    breakMinutes,
		TrainingMinutes: trainingMinutes,
	}
}

func TestDailyWorkExtractor_WorkedMinutes(t *testing.T) {
	t.Parallel()
	extractor := newTestExtractor()

	tests := []struct {
		name     string
		record   worktime.DailyWorkRecord
		expected int
	}{
		{
			name:     "regular shift with break",
			record:   record(at(9, 0), at(18, 0), 60, 0),
			expected: 480,
		},
		{
			name:     "break and training subtracted",
			record:   record(at(9, 0), at(18, 0), 60, 30),
			expected: 450,
		},
		{
			name:     "checkout before checkin clamps to zero",
			record:   record(at(18, 0), at(9, 0), 0, 0),
			expected: 0,
		},
		{
			name:     "zero-length shift",
			record:   record(at(9, 0), at(9, 0), 0, 0),
			expected: 0,
		},
		{
			name:     "break exceeding elapsed clamps to zero",
			record:   record(at(9, 0), at(10, 0), 90, 0),
			expected: 0,
		},
		{
			name:     "negative break treated as zero",
			record:   record(at(9, 0), at(17, 0), -30, 0),
			expected: 480,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, extractor.WorkedMinutes(tt.record))
		})
	}
}

func TestDailyWorkExtractor_NightWorkedMinutes_ProportionalScaling(t *testing.T) {
	t.Parallel()
	extractor := newTestExtractor()

	// 09:00-23:00 with a 60-minute break: 60 raw night minutes scaled
	// by 780/840.
	rec := record(at(9, 0), at(23, 0), 60, 0)

	assert.Equal(t, 56, extractor.NightWorkedMinutes(rec))
}

func TestDailyWorkExtractor_NightWorkedMinutes_NoBreaks(t *testing.T) {
	t.Parallel()
	extractor := newTestExtractor()

	rec := record(at(22, 0), at(23, 0), 0, 0)

	assert.Equal(t, 60, extractor.NightWorkedMinutes(rec))
}

func TestDailyWorkExtractor_NightWorkedMinutes_InvalidInterval(t *testing.T) {
	t.Parallel()
	extractor := newTestExtractor()

	rec := record(at(23, 0), at(22, 0), 0, 0)

	assert.Equal(t, 0, extractor.NightWorkedMinutes(rec))
}
