package gallery

import (
	"time"

	"github.com/google/uuid"

	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/types"
)

const (
	FeaturedLimit   = 12
	ByCategoryLimit = 10
)

type Category struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Order       int       `json:"order" db:"display_order"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	ImagesCount int       `json:"images_count" db:"images_count"` // số ảnh active
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Image - variants: thumbnail 400x300
type Image struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	Title         string         `json:"title" db:"title"`
	Description   string         `json:"description" db:"description"`
	Image         string         `json:"image" db:"image"`
	ImageVariants media.Variants `json:"image_variants" db:"image_variants"`
	CategoryID    *uuid.UUID     `json:"category" db:"category_id"`
	CategoryName  *string        `json:"category_name" db:"category_name"`
	Photographer  string         `json:"photographer" db:"photographer"`
	EventName     string         `json:"event_name" db:"event_name"`
	DateTaken     types.Date     `json:"date_taken" db:"date_taken"`
	Tags          []string       `json:"tags" db:"tags"`
	Order         int            `json:"order" db:"display_order"`
	IsActive      bool           `json:"is_active" db:"is_active"`
	IsFeatured    bool           `json:"is_featured" db:"is_featured"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
}

type ImageFilter struct {
	CategoryID *uuid.UUID
	IsFeatured *bool
	EventName  *string
}

type CategoryGroup struct {
	Category *Category
	Images   []*Image
}
