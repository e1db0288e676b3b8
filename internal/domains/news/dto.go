package news

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
	Slug        string `json:"slug"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

func (r CategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Slug, validation.Length(0, 100)),
	)
}

func (r CategoryRequest) Apply(c *Category) {
	c.Name = strings.TrimSpace(r.Name)
	c.Slug = strings.TrimSpace(r.Slug)
	c.Description = strings.TrimSpace(r.Description)
	c.IsActive = r.IsActive == nil || *r.IsActive
}

// ===== ARTICLE =====

type ArticleRequest struct {
	Title           string         `json:"title"`
	Slug            string         `json:"slug"`
	Excerpt         string         `json:"excerpt"`
	Content         string         `json:"content"`
	Image           string         `json:"image"`
	ImageVariants   media.Variants `json:"image_variants"`
	CategoryID      *uuid.UUID     `json:"category"`
	Author          string         `json:"author"`
	Date            types.Date     `json:"date"`
	IsPublished     *bool          `json:"is_published"`
	IsFeatured      bool           `json:"is_featured"`
	MetaDescription string         `json:"meta_description"`
}

func (r ArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Slug, validation.Length(0, 200)),
		validation.Field(&r.Excerpt, validation.Required, validation.RuneLength(1, 300)),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.Image, validation.Required.Error("article image is required")),
		validation.Field(&r.Author, validation.Length(0, 100)),
		validation.Field(&r.MetaDescription, validation.RuneLength(0, 160)),
	)
}

// Apply không đụng tới slug đã có, slug chỉ set khi request gửi lên
func (r ArticleRequest) Apply(a *Article, today types.Date) {
	a.Title = strings.TrimSpace(r.Title)
	if s := strings.TrimSpace(r.Slug); s != "" {
		a.Slug = s
	}
	a.Excerpt = strings.TrimSpace(r.Excerpt)
	a.Content = r.Content
	a.Image = strings.TrimSpace(r.Image)
	a.ImageVariants = r.ImageVariants
	if a.ImageVariants == nil {
		a.ImageVariants = media.Variants{}
	}
	a.CategoryID = r.CategoryID
	a.Author = strings.TrimSpace(r.Author)
	a.Date = r.Date
	if a.Date.IsZero() {
		a.Date = today
	}
	a.IsPublished = r.IsPublished == nil || *r.IsPublished
	a.IsFeatured = r.IsFeatured
	a.MetaDescription = strings.TrimSpace(r.MetaDescription)
}

// ===== RESPONSES =====

// ArticleListItem - shape gọn cho list, chỉ có thumbnail
type ArticleListItem struct {
	ID                uuid.UUID  `json:"id"`
	Title             string     `json:"title"`
	Slug              string     `json:"slug"`
	Excerpt           string     `json:"excerpt"`
	ImageThumbnailURL *string    `json:"image_thumbnail_url"`
	CategoryID        *uuid.UUID `json:"category"`
	CategoryName      *string    `json:"category_name"`
	Author            string     `json:"author"`
	Date              types.Date `json:"date"`
	IsFeatured        bool       `json:"is_featured"`
}

func (a *Article) ToListItem(r *media.Resolver, base string) ArticleListItem {
	return ArticleListItem{
		ID:                a.ID,
		Title:             a.Title,
		Slug:              a.Slug,
		Excerpt:           a.Excerpt,
		ImageThumbnailURL: r.ResolveVariant(a.ImageVariants, "thumbnail", base),
		CategoryID:        a.CategoryID,
		CategoryName:      a.CategoryName,
		Author:            a.Author,
		Date:              a.Date,
		IsFeatured:        a.IsFeatured,
	}
}

type ArticleResponse struct {
	*Article
	ImageURL          *string `json:"image_url"`
	ImageThumbnailURL *string `json:"image_thumbnail_url"`
}

func (a *Article) ToResponse(r *media.Resolver, base string) ArticleResponse {
	return ArticleResponse{
		Article:           a,
		ImageURL:          r.Resolve(a.Image, base),
		ImageThumbnailURL: r.ResolveVariant(a.ImageVariants, "thumbnail", base),
	}
}
