package partners

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/types"
)

// ===== CATEGORY =====

type CategoryRequest struct {
	Name         string `json:"name"`
	CategoryType string `json:"category_type"`
	Description  string `json:"description"`
	Order        int    `json:"order"`
	IsActive     *bool  `json:"is_active"`
}

func (r CategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.CategoryType, validation.In(typeValues()...)),
		validation.Field(&r.Order, validation.Min(0)),
	)
}

func (r CategoryRequest) Apply(c *Category) {
	c.Name = strings.TrimSpace(r.Name)
	c.CategoryType = CategoryType(r.CategoryType)
	if c.CategoryType == "" {
		c.CategoryType = TypeCommunity
	}
	c.Description = strings.TrimSpace(r.Description)
	c.Order = r.Order
	c.IsActive = r.IsActive == nil || *r.IsActive
}

func typeValues() []interface{} {
	out := make([]interface{}, len(CategoryTypes))
	for i, t := range CategoryTypes {
		out[i] = string(t)
	}
	return out
}

// ===== PARTNER =====

type PartnerRequest struct {
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	Logo             string         `json:"logo"`
	LogoVariants     media.Variants `json:"logo_variants"`
	CategoryID       *uuid.UUID     `json:"category"`
	WebsiteURL       string         `json:"website_url"`
	PartnershipLevel string         `json:"partnership_level"`
	PartnershipSince types.Date     `json:"partnership_since"`
	Order            int            `json:"order"`
	IsActive         *bool          `json:"is_active"`
	IsFeatured       bool           `json:"is_featured"`
}

func (r PartnerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Logo, validation.Required.Error("partner logo is required")),
		validation.Field(&r.WebsiteURL, is.URL, validation.Length(0, 200)),
		validation.Field(&r.PartnershipLevel, validation.Length(0, 100)),
		validation.Field(&r.Order, validation.Min(0)),
	)
}

func (r PartnerRequest) Apply(p *Partner) {
	p.Name = strings.TrimSpace(r.Name)
	p.Description = r.Description
	p.Logo = strings.TrimSpace(r.Logo)
	p.LogoVariants = r.LogoVariants
	if p.LogoVariants == nil {
		p.LogoVariants = media.Variants{}
	}
	p.CategoryID = r.CategoryID
	p.WebsiteURL = strings.TrimSpace(r.WebsiteURL)
	p.PartnershipLevel = strings.TrimSpace(r.PartnershipLevel)
	p.PartnershipSince = r.PartnershipSince
	p.Order = r.Order
	p.IsActive = r.IsActive == nil || *r.IsActive
	p.IsFeatured = r.IsFeatured
}

// ===== RESPONSES =====

type PartnerResponse struct {
	*Partner
	LogoURL          *string `json:"logo_url"`
	LogoThumbnailURL *string `json:"logo_thumbnail_url"`
}

func (p *Partner) ToResponse(r *media.Resolver, base string) PartnerResponse {
	return PartnerResponse{
		Partner:          p,
		LogoURL:          r.Resolve(p.Logo, base),
		LogoThumbnailURL: r.ResolveVariant(p.LogoVariants, "thumbnail", base),
	}
}

type CategoryGroupResponse struct {
	Category *Category         `json:"category"`
	Partners []PartnerResponse `json:"partners"`
}
