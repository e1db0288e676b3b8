package team

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"kuai-backend/internal/shared/lifecycle"
	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/types"
)

// ===== ROLE =====

type RoleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	IsActive    *bool  `json:"is_active"`
}

func (r RoleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Order, validation.Min(0)),
	)
}

func (r RoleRequest) Apply(role *Role) {
	role.Name = strings.TrimSpace(r.Name)
	role.Description = strings.TrimSpace(r.Description)
	role.Order = r.Order
	role.IsActive = r.IsActive == nil || *r.IsActive
}

// ===== MEMBER =====

type MemberRequest struct {
	Name          string         `json:"name"`
	RoleID        *uuid.UUID     `json:"role"`
	Title         string         `json:"title"`
	Bio           string         `json:"bio"`
	Photo         string         `json:"photo"`
	PhotoVariants media.Variants `json:"photo_variants"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	LinkedinURL   string         `json:"linkedin_url"`
	TwitterURL    string         `json:"twitter_url"`
	GithubURL     string         `json:"github_url"`
	WebsiteURL    string         `json:"website_url"`
	Order         int            `json:"order"`
	IsActive      *bool          `json:"is_active"`
	IsExecutive   bool           `json:"is_executive"`
	JoinedDate    types.Date     `json:"joined_date"`
	StartYear     int            `json:"start_year"`
	EndYear       *int           `json:"end_year"`
}

func (r MemberRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Title, validation.Length(0, 200)),
		validation.Field(&r.Email, is.EmailFormat, validation.Length(0, 254)),
		validation.Field(&r.Phone, validation.Length(0, 20)),
		validation.Field(&r.LinkedinURL, is.URL, validation.Length(0, 200)),
		validation.Field(&r.TwitterURL, is.URL, validation.Length(0, 200)),
		validation.Field(&r.GithubURL, is.URL, validation.Length(0, 200)),
		validation.Field(&r.WebsiteURL, is.URL, validation.Length(0, 200)),
		validation.Field(&r.Order, validation.Min(0)),
		validation.Field(&r.StartYear, validation.Min(0)),
	)
}

// Apply: start_year để trống → năm hiện tại. end_year < start_year giữ nguyên như admin nhập.
func (r MemberRequest) Apply(m *Member, now time.Time) {
	m.Name = strings.TrimSpace(r.Name)
	m.RoleID = r.RoleID
	m.Title = strings.TrimSpace(r.Title)
	m.Bio = r.Bio
	m.Photo = strings.TrimSpace(r.Photo)
	m.PhotoVariants = r.PhotoVariants
	if m.PhotoVariants == nil {
		m.PhotoVariants = media.Variants{}
	}
	m.Email = strings.TrimSpace(r.Email)
	m.Phone = strings.TrimSpace(r.Phone)
	m.LinkedinURL = strings.TrimSpace(r.LinkedinURL)
	m.TwitterURL = strings.TrimSpace(r.TwitterURL)
	m.GithubURL = strings.TrimSpace(r.GithubURL)
	m.WebsiteURL = strings.TrimSpace(r.WebsiteURL)
	m.Order = r.Order
	m.IsActive = r.IsActive == nil || *r.IsActive
	m.IsExecutive = r.IsExecutive
	m.JoinedDate = r.JoinedDate
	m.StartYear = r.StartYear
	if m.StartYear == 0 {
		m.StartYear = now.Year()
	}
	m.EndYear = r.EndYear
}

// ===== RESPONSES =====

// Roster là các field derived theo năm hiện tại
type Roster struct {
	Status    lifecycle.RosterStatus `json:"status"`
	IsCurrent bool                   `json:"is_current"`
}

func roster(m *Member, now time.Time) Roster {
	term := m.Term()
	return Roster{Status: term.Status(now), IsCurrent: term.IsCurrent(now)}
}

type MemberListItem struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	RoleID            *uuid.UUID `json:"role"`
	RoleName          *string    `json:"role_name"`
	DisplayTitle      string     `json:"display_title"`
	PhotoThumbnailURL *string    `json:"photo_thumbnail_url"`
	IsExecutive       bool       `json:"is_executive"`
	Order             int        `json:"order"`
	LinkedinURL       string     `json:"linkedin_url"`
	TwitterURL        string     `json:"twitter_url"`
	GithubURL         string     `json:"github_url"`
	StartYear         int        `json:"start_year"`
	EndYear           *int       `json:"end_year"`
	Roster
}

func (m *Member) ToListItem(r *media.Resolver, base string, now time.Time) MemberListItem {
	return MemberListItem{
		ID:                m.ID,
		Name:              m.Name,
		RoleID:            m.RoleID,
		RoleName:          m.RoleName,
		DisplayTitle:      m.DisplayTitle(),
		PhotoThumbnailURL: r.ResolveVariant(m.PhotoVariants, "thumbnail", base),
		IsExecutive:       m.IsExecutive,
		Order:             m.Order,
		LinkedinURL:       m.LinkedinURL,
		TwitterURL:        m.TwitterURL,
		GithubURL:         m.GithubURL,
		StartYear:         m.StartYear,
		EndYear:           m.EndYear,
		Roster:            roster(m, now),
	}
}

type MemberResponse struct {
	*Member
	Roster
	DisplayTitle      string  `json:"display_title"`
	PhotoURL          *string `json:"photo_url"`
	PhotoThumbnailURL *string `json:"photo_thumbnail_url"`
}

func (m *Member) ToResponse(r *media.Resolver, base string, now time.Time) MemberResponse {
	return MemberResponse{
		Member:            m,
		Roster:            roster(m, now),
		DisplayTitle:      m.DisplayTitle(),
		PhotoURL:          r.Resolve(m.Photo, base),
		PhotoThumbnailURL: r.ResolveVariant(m.PhotoVariants, "thumbnail", base),
	}
}

type RoleGroupResponse struct {
	Role    *Role            `json:"role"`
	Members []MemberListItem `json:"members"`
}
