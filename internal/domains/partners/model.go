package partners

import (
	"time"

	"github.com/google/uuid"

	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/types"
)

type CategoryType string

const (
	TypePlatinum   CategoryType = "platinum"
	TypeGold       CategoryType = "gold"
	TypeSilver     CategoryType = "silver"
	TypeAcademic   CategoryType = "academic"
	TypeTechnology CategoryType = "technology"
	TypeCommunity  CategoryType = "community"
)

var CategoryTypes = []CategoryType{TypePlatinum, TypeGold, TypeSilver, TypeAcademic, TypeTechnology, TypeCommunity}

type Category struct {
	ID            uuid.UUID    `json:"id" db:"id"`
	Name          string       `json:"name" db:"name"`
	CategoryType  CategoryType `json:"category_type" db:"category_type"`
	Description   string       `json:"description" db:"description"`
	Order         int          `json:"order" db:"display_order"`
	IsActive      bool         `json:"is_active" db:"is_active"`
	PartnersCount int          `json:"partners_count" db:"partners_count"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" db:"updated_at"`
}

// Partner - logo variants: thumbnail 200x100 (fit)
type Partner struct {
	ID               uuid.UUID      `json:"id" db:"id"`
	Name             string         `json:"name" db:"name"`
	Description      string         `json:"description" db:"description"`
	Logo             string         `json:"logo" db:"logo"`
	LogoVariants     media.Variants `json:"logo_variants" db:"logo_variants"`
	CategoryID       *uuid.UUID     `json:"category" db:"category_id"`
	CategoryName     *string        `json:"category_name" db:"category_name"`
	CategoryType     *string        `json:"category_type" db:"category_type"`
	WebsiteURL       string         `json:"website_url" db:"website_url"`
	PartnershipLevel string         `json:"partnership_level" db:"partnership_level"`
	PartnershipSince types.Date     `json:"partnership_since" db:"partnership_since"`
	Order            int            `json:"order" db:"display_order"`
	IsActive         bool           `json:"is_active" db:"is_active"`
	IsFeatured       bool           `json:"is_featured" db:"is_featured"`
	CreatedAt        time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at" db:"updated_at"`
}

type PartnerFilter struct {
	CategoryID *uuid.UUID
	IsFeatured *bool
}

type CategoryGroup struct {
	Category *Category
	Partners []*Partner
}
