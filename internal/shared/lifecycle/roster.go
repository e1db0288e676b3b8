package lifecycle

import (
	"fmt"
	"time"
)

// RosterStatus của một thành viên/leader theo nhiệm kỳ năm
type RosterStatus string

const (
	StatusCurrent  RosterStatus = "current"
	StatusArchived RosterStatus = "archived"
)

// YearRange là nhiệm kỳ [StartYear, EndYear]. EndYear nil = đang tại nhiệm.
// EndYear < StartYear không bị validate, data giữ nguyên như admin nhập.
type YearRange struct {
	StartYear int
	EndYear   *int
}

// cutoffYear là năm nhỏ nhất mà EndYear còn được tính là current.
// Cả predicate Go lẫn SQL clause đều đi qua hàm này.
func cutoffYear(now time.Time) int {
	return now.Year()
}

// IsCurrent: EndYear rỗng hoặc EndYear >= năm hiện tại (inclusive)
func (r YearRange) IsCurrent(now time.Time) bool {
	return r.EndYear == nil || *r.EndYear >= cutoffYear(now)
}

func (r YearRange) Status(now time.Time) RosterStatus {
	if r.IsCurrent(now) {
		return StatusCurrent
	}
	return StatusArchived
}

// CurrentFilter trả về WHERE clause (placeholder "?") chọn đúng các row mà IsCurrent trả true
func CurrentFilter(endYearCol string, now time.Time) (string, []any) {
	return fmt.Sprintf("(%s IS NULL OR %s >= ?)", endYearCol, endYearCol), []any{cutoffYear(now)}
}

// ArchivedFilter là phủ định của CurrentFilter
func ArchivedFilter(endYearCol string, now time.Time) (string, []any) {
	return fmt.Sprintf("(%s IS NOT NULL AND %s < ?)", endYearCol, endYearCol), []any{cutoffYear(now)}
}

// RosterFilter chọn filter theo status, status lạ → false
func RosterFilter(status RosterStatus, endYearCol string, now time.Time) (string, []any, bool) {
	switch status {
	case StatusCurrent:
		clause, args := CurrentFilter(endYearCol, now)
		return clause, args, true
	case StatusArchived:
		clause, args := ArchivedFilter(endYearCol, now)
		return clause, args, true
	default:
		return "", nil, false
	}
}
