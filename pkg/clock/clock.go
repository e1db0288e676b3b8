package clock

import "time"

// Clock cung cấp "now" cho business logic, inject để test được
type Clock interface {
	Now() time.Time
}

type realClock struct {
	loc *time.Location
}

// New trả về clock đọc thời gian hệ thống theo location cho trước
func New(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return realClock{loc: loc}
}

func (c realClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed luôn trả về cùng một thời điểm
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
