package projects

import (
	"time"

	"github.com/google/uuid"

	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/types"
)

const (
	FeaturedLimit = 6
	ByStatusLimit = 10
	// ShortDescriptionMax tính cả "..."
	ShortDescriptionMax = 200
)

type Status string

const (
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusOnHold     Status = "on_hold"
)

var Statuses = []Status{StatusPlanning, StatusInProgress, StatusCompleted, StatusOnHold}

// GroupedStatuses là các nhóm trả về ở /projects/by_status, on_hold không có
var GroupedStatuses = []Status{StatusCompleted, StatusInProgress, StatusPlanning}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

type Category struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Slug          string    `json:"slug" db:"slug"`
	Description   string    `json:"description" db:"description"`
	Icon          string    `json:"icon" db:"icon"`
	Color         string    `json:"color" db:"color"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	ProjectsCount int       `json:"projects_count" db:"projects_count"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

func (c *Category) SlugSource() string  { return c.Name }
func (c *Category) GetSlug() string     { return c.Slug }
func (c *Category) SetSlug(slug string) { c.Slug = slug }

// Project - variants: thumbnail 400x300
type Project struct {
	ID               uuid.UUID      `json:"id" db:"id"`
	Title            string         `json:"title" db:"title"`
	Slug             string         `json:"slug" db:"slug"`
	Description      string         `json:"description" db:"description"`
	ShortDescription string         `json:"short_description" db:"short_description"`
	Image            string         `json:"image" db:"image"`
	ImageVariants    media.Variants `json:"image_variants" db:"image_variants"`
	CategoryID       *uuid.UUID     `json:"category" db:"category_id"`
	CategoryName     *string        `json:"category_name" db:"category_name"`
	CategoryIcon     *string        `json:"category_icon" db:"category_icon"`
	CategoryColor    *string        `json:"category_color" db:"category_color"`
	Technologies     []string       `json:"technologies" db:"technologies"`
	TeamMembers      []string       `json:"team_members" db:"team_members"`
	StartDate        types.Date     `json:"start_date" db:"start_date"`
	EndDate          types.Date     `json:"end_date" db:"end_date"`
	Status           Status         `json:"status" db:"status"`
	GithubURL        string         `json:"github_url" db:"github_url"`
	DemoURL          string         `json:"demo_url" db:"demo_url"`
	DocumentationURL string         `json:"documentation_url" db:"documentation_url"`
	IsPublished      bool           `json:"is_published" db:"is_published"`
	IsFeatured       bool           `json:"is_featured" db:"is_featured"`
	Order            int            `json:"order" db:"display_order"`
	CreatedAt        time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at" db:"updated_at"`
}

func (p *Project) SlugSource() string  { return p.Title }
func (p *Project) GetSlug() string     { return p.Slug }
func (p *Project) SetSlug(slug string) { p.Slug = slug }

type ProjectFilter struct {
	CategoryID *uuid.UUID
	Status     *string
	IsFeatured *bool
}
