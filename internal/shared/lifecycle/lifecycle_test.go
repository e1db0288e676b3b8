package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kuai-backend/internal/shared/types"
)

func intPtr(v int) *int { return &v }

func TestYearRange_Status(t *testing.T) {
	now := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		rng  YearRange
		want RosterStatus
	}{
		{"open ended", YearRange{StartYear: 2023}, StatusCurrent},
		{"ended last year", YearRange{StartYear: 2023, EndYear: intPtr(2024)}, StatusArchived},
		{"ends this year", YearRange{StartYear: 2023, EndYear: intPtr(2025)}, StatusCurrent},
		{"ends next year", YearRange{StartYear: 2025, EndYear: intPtr(2026)}, StatusCurrent},
		{"inverted range is not corrected", YearRange{StartYear: 2026, EndYear: intPtr(2020)}, StatusArchived},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rng.Status(now))
			assert.Equal(t, tt.want == StatusCurrent, tt.rng.IsCurrent(now))
		})
	}
}

func TestRosterFilters_ShareCutoff(t *testing.T) {
	now := time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC)

	clause, args := CurrentFilter("end_year", now)
	assert.Equal(t, "(end_year IS NULL OR end_year >= ?)", clause)
	assert.Equal(t, []any{2025}, args)

	clause, args = ArchivedFilter("l.end_year", now)
	assert.Equal(t, "(l.end_year IS NOT NULL AND l.end_year < ?)", clause)
	assert.Equal(t, []any{2025}, args)

	_, _, ok := RosterFilter("retired", "end_year", now)
	assert.False(t, ok)
}

func TestStatusOn(t *testing.T) {
	today := types.NewDate(2024, time.June, 1)

	assert.Equal(t, StatusPast, StatusOn(types.NewDate(2024, time.May, 31), today))
	assert.Equal(t, StatusUpcoming, StatusOn(today, today))
	assert.Equal(t, StatusUpcoming, StatusOn(types.NewDate(2024, time.June, 2), today))
}

func TestPromoteEventStatus(t *testing.T) {
	today := types.NewDate(2024, time.June, 1)
	past := types.NewDate(2024, time.January, 1)

	tests := []struct {
		name        string
		status      EventStatus
		date        types.Date
		want        EventStatus
		wantChanged bool
	}{
		{"past upcoming is completed", EventUpcoming, past, EventCompleted, true},
		{"today stays upcoming", EventUpcoming, today, EventUpcoming, false},
		{"cancelled is preserved", EventCancelled, past, EventCancelled, false},
		{"ongoing is preserved", EventOngoing, past, EventOngoing, false},
		{"completed is idempotent", EventCompleted, past, EventCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := PromoteEventStatus(tt.status, tt.date, today)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}
}

func TestPromotableFilter(t *testing.T) {
	today := types.NewDate(2024, time.June, 1)

	clause, args := PromotableFilter("status", "date", today)
	assert.Equal(t, "status = ? AND date < ?", clause)
	assert.Equal(t, []any{"upcoming", today}, args)
}

func TestEventStatus_Valid(t *testing.T) {
	assert.True(t, EventCancelled.Valid())
	assert.False(t, EventStatus("postponed").Valid())
}
