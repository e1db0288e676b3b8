package gallery

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/types"
)

// ===== CATEGORY =====

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	IsActive    *bool  `json:"is_active"`
}

func (r CategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Order, validation.Min(0)),
	)
}

func (r CategoryRequest) Apply(c *Category) {
	c.Name = strings.TrimSpace(r.Name)
	c.Description = strings.TrimSpace(r.Description)
	c.Order = r.Order
	c.IsActive = r.IsActive == nil || *r.IsActive
}

// ===== IMAGE =====

type ImageRequest struct {
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Image         string         `json:"image"`
	ImageVariants media.Variants `json:"image_variants"`
	CategoryID    *uuid.UUID     `json:"category"`
	Photographer  string         `json:"photographer"`
	EventName     string         `json:"event_name"`
	DateTaken     types.Date     `json:"date_taken"`
	Tags          []string       `json:"tags"`
	Order         int            `json:"order"`
	IsActive      *bool          `json:"is_active"`
	IsFeatured    bool           `json:"is_featured"`
}

func (r ImageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Image, validation.Required.Error("image file is required")),
		validation.Field(&r.Photographer, validation.Length(0, 100)),
		validation.Field(&r.EventName, validation.Length(0, 200)),
		validation.Field(&r.Order, validation.Min(0)),
	)
}

func (r ImageRequest) Apply(img *Image) {
	img.Title = strings.TrimSpace(r.Title)
	img.Description = r.Description
	img.Image = strings.TrimSpace(r.Image)
	img.ImageVariants = r.ImageVariants
	if img.ImageVariants == nil {
		img.ImageVariants = media.Variants{}
	}
	img.CategoryID = r.CategoryID
	img.Photographer = strings.TrimSpace(r.Photographer)
	img.EventName = strings.TrimSpace(r.EventName)
	img.DateTaken = r.DateTaken
	img.Tags = make([]string, 0, len(r.Tags))
	for _, tag := range r.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			img.Tags = append(img.Tags, tag)
		}
	}
	img.Order = r.Order
	img.IsActive = r.IsActive == nil || *r.IsActive
	img.IsFeatured = r.IsFeatured
}

// ===== RESPONSES =====

type ImageResponse struct {
	*Image
	ImageURL          *string `json:"image_url"`
	ImageThumbnailURL *string `json:"image_thumbnail_url"`
}

func (img *Image) ToResponse(r *media.Resolver, base string) ImageResponse {
	return ImageResponse{
		Image:             img,
		ImageURL:          r.Resolve(img.Image, base),
		ImageThumbnailURL: r.ResolveVariant(img.ImageVariants, "thumbnail", base),
	}
}

type CategoryGroupResponse struct {
	Category *Category       `json:"category"`
	Images   []ImageResponse `json:"images"`
}
