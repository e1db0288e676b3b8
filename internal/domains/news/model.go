package news

import (
	"time"

	"github.com/google/uuid"

	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/types"
)

// Category - nhóm tin tức, slug sinh từ name
type Category struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"`
	Description string    `json:"description" db:"description"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	NewsCount   int       `json:"news_count" db:"news_count"` // số bài đã publish
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func (c *Category) SlugSource() string  { return c.Name }
func (c *Category) GetSlug() string     { return c.Slug }
func (c *Category) SetSlug(slug string) { c.Slug = slug }

// Article - bài viết, variants: thumbnail 400x300
type Article struct {
	ID              uuid.UUID      `json:"id" db:"id"`
	Title           string         `json:"title" db:"title"`
	Slug            string         `json:"slug" db:"slug"`
	Excerpt         string         `json:"excerpt" db:"excerpt"`
	Content         string         `json:"content" db:"content"`
	Image           string         `json:"image" db:"image"`
	ImageVariants   media.Variants `json:"image_variants" db:"image_variants"`
	CategoryID      *uuid.UUID     `json:"category" db:"category_id"`
	CategoryName    *string        `json:"category_name" db:"category_name"`
	Author          string         `json:"author" db:"author"`
	Date            types.Date     `json:"date" db:"date"`
	IsPublished     bool           `json:"is_published" db:"is_published"`
	IsFeatured      bool           `json:"is_featured" db:"is_featured"`
	MetaDescription string         `json:"meta_description" db:"meta_description"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`
}

func (a *Article) SlugSource() string  { return a.Title }
func (a *Article) GetSlug() string     { return a.Slug }
func (a *Article) SetSlug(slug string) { a.Slug = slug }

// ArticleFilter - các filter equality của GET /news/articles
type ArticleFilter struct {
	CategoryID *uuid.UUID
	IsFeatured *bool
	Date       *types.Date
}
