package events

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"kuai-backend/internal/shared/lifecycle"
	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/types"
)

var (
	clockTimeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	hexColorRe  = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// ===== CATEGORY =====

type CategoryRequest struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	IsActive *bool  `json:"is_active"`
}

func (r CategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Slug, validation.Length(0, 100)),
		validation.Field(&r.Icon, validation.Length(0, 50)),
		validation.Field(&r.Color, validation.Match(hexColorRe).Error("must be a hex color like #007bff")),
	)
}

func (r CategoryRequest) Apply(c *Category) {
	c.Name = strings.TrimSpace(r.Name)
	c.Slug = strings.TrimSpace(r.Slug)
	c.Icon = strings.TrimSpace(r.Icon)
	c.Color = r.Color
	if c.Color == "" {
		c.Color = "#007bff"
	}
	c.IsActive = r.IsActive == nil || *r.IsActive
}

// ===== EVENT =====

type EventRequest struct {
	Title                string         `json:"title"`
	Slug                 string         `json:"slug"`
	Description          string         `json:"description"`
	Image                string         `json:"image"`
	ImageVariants        media.Variants `json:"image_variants"`
	CategoryID           *uuid.UUID     `json:"category"`
	Date                 types.Date     `json:"date"`
	Time                 string         `json:"time"`
	EndDate              types.Date     `json:"end_date"`
	Location             string         `json:"location"`
	VenueDetails         string         `json:"venue_details"`
	RegistrationLink     string         `json:"registration_link"`
	RegistrationDeadline types.Date     `json:"registration_deadline"`
	MaxParticipants      *int           `json:"max_participants"`
	Status               string         `json:"status"`
	IsPublished          *bool          `json:"is_published"`
	IsFeatured           bool           `json:"is_featured"`
}

func (r EventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Slug, validation.Length(0, 200)),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.Image, validation.Required.Error("event image is required")),
		validation.Field(&r.Date, validation.By(requiredDate)),
		validation.Field(&r.Time, validation.Match(clockTimeRe).Error("must be HH:MM")),
		validation.Field(&r.Location, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.RegistrationLink, is.URL, validation.Length(0, 200)),
		validation.Field(&r.MaxParticipants, validation.When(r.MaxParticipants != nil, validation.By(positiveInt))),
		validation.Field(&r.Status, validation.In(statusValues()...)),
	)
}

// Apply + promote: save luôn chạy transition upcoming → completed
func (r EventRequest) Apply(e *Event, today types.Date) {
	e.Title = strings.TrimSpace(r.Title)
	if s := strings.TrimSpace(r.Slug); s != "" {
		e.Slug = s
	}
	e.Description = r.Description
	e.Image = strings.TrimSpace(r.Image)
	e.ImageVariants = r.ImageVariants
	if e.ImageVariants == nil {
		e.ImageVariants = media.Variants{}
	}
	e.CategoryID = r.CategoryID
	e.Date = r.Date
	e.Time = nil
	if t := strings.TrimSpace(r.Time); t != "" {
		e.Time = &t
	}
	e.EndDate = r.EndDate
	e.Location = strings.TrimSpace(r.Location)
	e.VenueDetails = r.VenueDetails
	e.RegistrationLink = strings.TrimSpace(r.RegistrationLink)
	e.RegistrationDeadline = r.RegistrationDeadline
	e.MaxParticipants = r.MaxParticipants
	e.Status = lifecycle.EventStatus(r.Status)
	if e.Status == "" {
		e.Status = lifecycle.EventUpcoming
	}
	e.IsPublished = r.IsPublished == nil || *r.IsPublished
	e.IsFeatured = r.IsFeatured
	e.Promote(today)
}

func requiredDate(value interface{}) error {
	if d, _ := value.(types.Date); d.IsZero() {
		return validation.NewError("validation_required", "cannot be blank")
	}
	return nil
}

// positiveInt: ozzo bỏ qua Min với giá trị 0, nên kiểm tra thủ công
func positiveInt(value interface{}) error {
	if n, ok := value.(*int); ok && n != nil && *n < 1 {
		return validation.NewError("validation_min_greater_equal_than_required", "must be no less than 1")
	}
	return nil
}

func statusValues() []interface{} {
	out := make([]interface{}, len(lifecycle.EventStatuses))
	for i, s := range lifecycle.EventStatuses {
		out[i] = string(s)
	}
	return out
}

// ===== RESPONSES =====

// Temporal là các field derived theo today
type Temporal struct {
	IsPast     bool `json:"is_past"`
	IsUpcoming bool `json:"is_upcoming"`
}

func temporal(date, today types.Date) Temporal {
	past := lifecycle.IsPast(date, today)
	return Temporal{IsPast: past, IsUpcoming: !past}
}

type EventListItem struct {
	ID                uuid.UUID             `json:"id"`
	Title             string                `json:"title"`
	Slug              string                `json:"slug"`
	ImageThumbnailURL *string               `json:"image_thumbnail_url"`
	CategoryID        *uuid.UUID            `json:"category"`
	CategoryName      *string               `json:"category_name"`
	Date              types.Date            `json:"date"`
	Time              *string               `json:"time"`
	Location          string                `json:"location"`
	Status            lifecycle.EventStatus `json:"status"`
	IsFeatured        bool                  `json:"is_featured"`
	Temporal
}

func (e *Event) ToListItem(r *media.Resolver, base string, today types.Date) EventListItem {
	return EventListItem{
		ID:                e.ID,
		Title:             e.Title,
		Slug:              e.Slug,
		ImageThumbnailURL: r.ResolveVariant(e.ImageVariants, "thumbnail", base),
		CategoryID:        e.CategoryID,
		CategoryName:      e.CategoryName,
		Date:              e.Date,
		Time:              e.Time,
		Location:          e.Location,
		Status:            e.Status,
		IsFeatured:        e.IsFeatured,
		Temporal:          temporal(e.Date, today),
	}
}

type EventResponse struct {
	*Event
	Temporal
	ImageURL          *string `json:"image_url"`
	ImageThumbnailURL *string `json:"image_thumbnail_url"`
}

func (e *Event) ToResponse(r *media.Resolver, base string, today types.Date) EventResponse {
	return EventResponse{
		Event:             e,
		Temporal:          temporal(e.Date, today),
		ImageURL:          r.Resolve(e.Image, base),
		ImageThumbnailURL: r.ResolveVariant(e.ImageVariants, "thumbnail", base),
	}
}
