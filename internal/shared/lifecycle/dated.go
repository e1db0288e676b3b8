package lifecycle

import (
	"fmt"

	"kuai-backend/internal/shared/types"
)

// DateStatus của record gắn với một ngày duy nhất
type DateStatus string

const (
	StatusPast     DateStatus = "past"
	StatusUpcoming DateStatus = "upcoming"
)

// IsPast: date < today. date == today vẫn là upcoming.
func IsPast(date, today types.Date) bool {
	return date.Before(today)
}

func StatusOn(date, today types.Date) DateStatus {
	if IsPast(date, today) {
		return StatusPast
	}
	return StatusUpcoming
}

// PastFilter / UpcomingFilter là bản SQL của IsPast
func PastFilter(dateCol string, today types.Date) (string, []any) {
	return fmt.Sprintf("%s < ?", dateCol), []any{today}
}

func UpcomingFilter(dateCol string, today types.Date) (string, []any) {
	return fmt.Sprintf("%s >= ?", dateCol), []any{today}
}

// =====================================================
// EVENT STATUS
// =====================================================

// EventStatus là status admin set tay cho event
type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

var EventStatuses = []EventStatus{EventUpcoming, EventOngoing, EventCompleted, EventCancelled}

func (s EventStatus) Valid() bool {
	for _, v := range EventStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// PromoteEventStatus là transition thuần (status, date, today) → status'.
// Chỉ upcoming → completed khi date < today; ongoing/cancelled/completed giữ nguyên.
// changed = true nghĩa là caller phải persist status mới.
func PromoteEventStatus(status EventStatus, date, today types.Date) (EventStatus, bool) {
	if status == EventUpcoming && IsPast(date, today) {
		return EventCompleted, true
	}
	return status, false
}

// PromotableFilter chọn các row mà PromoteEventStatus sẽ đổi status, dùng cho bulk reconcile
func PromotableFilter(statusCol, dateCol string, today types.Date) (string, []any) {
	pastClause, pastArgs := PastFilter(dateCol, today)
	return fmt.Sprintf("%s = ? AND %s", statusCol, pastClause), append([]any{string(EventUpcoming)}, pastArgs...)
}
