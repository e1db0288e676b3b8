package team

import (
	"time"

	"github.com/google/uuid"

	"kuai-backend/internal/shared/lifecycle"
	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/types"
)

const defaultDisplayTitle = "Member"

type Role struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Order       int       `json:"order" db:"display_order"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Member - photo variants: thumbnail 150x150
type Member struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	Name          string         `json:"name" db:"name"`
	RoleID        *uuid.UUID     `json:"role" db:"role_id"`
	RoleName      *string        `json:"role_name" db:"role_name"`
	Title         string         `json:"title" db:"title"`
	Bio           string         `json:"bio" db:"bio"`
	Photo         string         `json:"photo" db:"photo"`
	PhotoVariants media.Variants `json:"photo_variants" db:"photo_variants"`
	Email         string         `json:"email" db:"email"`
	Phone         string         `json:"phone" db:"phone"`
	LinkedinURL   string         `json:"linkedin_url" db:"linkedin_url"`
	TwitterURL    string         `json:"twitter_url" db:"twitter_url"`
	GithubURL     string         `json:"github_url" db:"github_url"`
	WebsiteURL    string         `json:"website_url" db:"website_url"`
	Order         int            `json:"order" db:"display_order"`
	IsActive      bool           `json:"is_active" db:"is_active"`
	IsExecutive   bool           `json:"is_executive" db:"is_executive"`
	JoinedDate    types.Date     `json:"joined_date" db:"joined_date"`
	StartYear     int            `json:"start_year" db:"start_year"`
	EndYear       *int           `json:"end_year" db:"end_year"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
}

// DisplayTitle: title riêng → tên role → "Member"
func (m *Member) DisplayTitle() string {
	if m.Title != "" {
		return m.Title
	}
	if m.RoleName != nil && *m.RoleName != "" {
		return *m.RoleName
	}
	return defaultDisplayTitle
}

func (m *Member) Term() lifecycle.YearRange {
	return lifecycle.YearRange{StartYear: m.StartYear, EndYear: m.EndYear}
}

type MemberFilter struct {
	RoleID      *uuid.UUID
	IsExecutive *bool
	StartYear   *int
	Roster      *lifecycle.RosterStatus
}

// RoleGroup là một phần tử của /team/members/by_role
type RoleGroup struct {
	Role    *Role
	Members []*Member
}
