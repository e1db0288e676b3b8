package events

import (
	"time"

	"github.com/google/uuid"

	"kuai-backend/internal/shared/lifecycle"
	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/types"
)

const FeaturedLimit = 6

type Category struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"`
	Icon        string    `json:"icon" db:"icon"`
	Color       string    `json:"color" db:"color"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	EventsCount int       `json:"events_count" db:"events_count"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func (c *Category) SlugSource() string  { return c.Name }
func (c *Category) GetSlug() string     { return c.Slug }
func (c *Category) SetSlug(slug string) { c.Slug = slug }

// Event - sự kiện có status admin set tay.
// upcoming → completed khi date < today, áp dụng lúc save và lúc đọc.
type Event struct {
	ID                   uuid.UUID             `json:"id" db:"id"`
	Title                string                `json:"title" db:"title"`
	Slug                 string                `json:"slug" db:"slug"`
	Description          string                `json:"description" db:"description"`
	Image                string                `json:"image" db:"image"`
	ImageVariants        media.Variants        `json:"image_variants" db:"image_variants"`
	CategoryID           *uuid.UUID            `json:"category" db:"category_id"`
	CategoryName         *string               `json:"category_name" db:"category_name"`
	Date                 types.Date            `json:"date" db:"date"`
	Time                 *string               `json:"time" db:"time"` // HH:MM
	EndDate              types.Date            `json:"end_date" db:"end_date"`
	Location             string                `json:"location" db:"location"`
	VenueDetails         string                `json:"venue_details" db:"venue_details"`
	RegistrationLink     string                `json:"registration_link" db:"registration_link"`
	RegistrationDeadline types.Date            `json:"registration_deadline" db:"registration_deadline"`
	MaxParticipants      *int                  `json:"max_participants" db:"max_participants"`
	Status               lifecycle.EventStatus `json:"status" db:"status"`
	IsPublished          bool                  `json:"is_published" db:"is_published"`
	IsFeatured           bool                  `json:"is_featured" db:"is_featured"`
	CreatedAt            time.Time             `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time             `json:"updated_at" db:"updated_at"`
}

func (e *Event) SlugSource() string  { return e.Title }
func (e *Event) GetSlug() string     { return e.Slug }
func (e *Event) SetSlug(slug string) { e.Slug = slug }

// Promote áp transition upcoming → completed, true nếu status đổi
func (e *Event) Promote(today types.Date) bool {
	next, changed := lifecycle.PromoteEventStatus(e.Status, e.Date, today)
	e.Status = next
	return changed
}

type EventFilter struct {
	CategoryID *uuid.UUID
	Status     *string
	IsFeatured *bool
	Date       *types.Date
}

// Scope là các view cố định của /events
type Scope int

const (
	ScopeAll      Scope = iota
	ScopeUpcoming       // date >= today, status upcoming, tăng dần
	ScopePast           // date < today, giảm dần
	ScopeFeatured       // featured, tối đa FeaturedLimit
)
