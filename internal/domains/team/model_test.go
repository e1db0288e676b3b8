package team

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kuai-backend/internal/shared/lifecycle"
	"kuai-backend/internal/shared/media"
)

func ptr[T any](v T) *T { return &v }

func TestMember_DisplayTitle(t *testing.T) {
	tests := []struct {
		name   string
		member Member
		want   string
	}{
		{"custom title wins", Member{Title: "Lead Researcher", RoleName: ptr("President")}, "Lead Researcher"},
		{"falls back to role", Member{RoleName: ptr("President")}, "President"},
		{"empty role name", Member{RoleName: ptr("")}, "Member"},
		{"no role", Member{}, "Member"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.member.DisplayTitle())
		})
	}
}

func TestMember_RosterStatus(t *testing.T) {
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	r := media.NewResolver("/media/")

	tests := []struct {
		name    string
		start   int
		end     *int
		want    lifecycle.RosterStatus
		current bool
	}{
		{"open ended", 2023, nil, lifecycle.StatusCurrent, true},
		{"ended last year", 2023, ptr(2024), lifecycle.StatusArchived, false},
		{"ends this year", 2023, ptr(2025), lifecycle.StatusCurrent, true},
		{"end before start kept as is", 2025, ptr(2020), lifecycle.StatusArchived, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Member{Name: "A", StartYear: tt.start, EndYear: tt.end}
			item := m.ToListItem(r, "", now)
			assert.Equal(t, tt.want, item.Status)
			assert.Equal(t, tt.current, item.IsCurrent)
		})
	}
}

func TestMemberResponse_PhotoURLs(t *testing.T) {
	r := media.NewResolver("/media/")
	m := &Member{
		Photo:         "square/abc/original.jpg",
		PhotoVariants: media.Variants{"thumbnail": "square/abc/thumbnail.jpg"},
	}

	resp := m.ToResponse(r, "https://api.kuai.example", time.Now())
	assert.Equal(t, "https://api.kuai.example/media/square/abc/original.jpg", *resp.PhotoURL)
	assert.Equal(t, "https://api.kuai.example/media/square/abc/thumbnail.jpg", *resp.PhotoThumbnailURL)

	m.Photo, m.PhotoVariants = "", nil
	resp = m.ToResponse(r, "https://api.kuai.example", time.Now())
	assert.Nil(t, resp.PhotoURL)
	assert.Nil(t, resp.PhotoThumbnailURL)
}
