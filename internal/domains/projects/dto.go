package projects

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/types"
	"kuai-backend/internal/shared/utils"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ===== CATEGORY =====

type CategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	IsActive    *bool  `json:"is_active"`
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
	c.Description = strings.TrimSpace(r.Description)
	c.Icon = strings.TrimSpace(r.Icon)
	c.Color = utils.OrDefault(r.Color, "#007bff")
	c.IsActive = r.IsActive == nil || *r.IsActive
}

// ===== PROJECT =====

type ProjectRequest struct {
	Title            string         `json:"title"`
	Slug             string         `json:"slug"`
	Description      string         `json:"description"`
	ShortDescription string         `json:"short_description"`
	Image            string         `json:"image"`
	ImageVariants    media.Variants `json:"image_variants"`
	CategoryID       *uuid.UUID     `json:"category"`
	Technologies     []string       `json:"technologies"`
	TeamMembers      []string       `json:"team_members"`
	StartDate        types.Date     `json:"start_date"`
	EndDate          types.Date     `json:"end_date"`
	Status           string         `json:"status"`
	GithubURL        string         `json:"github_url"`
	DemoURL          string         `json:"demo_url"`
	DocumentationURL string         `json:"documentation_url"`
	IsPublished      *bool          `json:"is_published"`
	IsFeatured       bool           `json:"is_featured"`
	Order            int            `json:"order"`
}

func (r ProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Slug, validation.Length(0, 200)),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.ShortDescription, validation.RuneLength(0, ShortDescriptionMax)),
		validation.Field(&r.Image, validation.Required.Error("project image is required")),
		validation.Field(&r.Status, validation.In(statusValues()...)),
		validation.Field(&r.GithubURL, is.URL, validation.Length(0, 200)),
		validation.Field(&r.DemoURL, is.URL, validation.Length(0, 200)),
		validation.Field(&r.DocumentationURL, is.URL, validation.Length(0, 200)),
		validation.Field(&r.Order, validation.Min(0)),
	)
}

// Apply điền short_description từ description khi để trống
func (r ProjectRequest) Apply(p *Project) {
	p.Title = strings.TrimSpace(r.Title)
	if s := strings.TrimSpace(r.Slug); s != "" {
		p.Slug = s
	}
	p.Description = r.Description
	p.ShortDescription = strings.TrimSpace(r.ShortDescription)
	if p.ShortDescription == "" {
		p.ShortDescription = utils.Truncate(strings.TrimSpace(p.Description), ShortDescriptionMax, "...")
	}
	p.Image = strings.TrimSpace(r.Image)
	p.ImageVariants = r.ImageVariants
	if p.ImageVariants == nil {
		p.ImageVariants = media.Variants{}
	}
	p.CategoryID = r.CategoryID
	p.Technologies = cleanList(r.Technologies)
	p.TeamMembers = cleanList(r.TeamMembers)
	p.StartDate = r.StartDate
	p.EndDate = r.EndDate
	p.Status = Status(r.Status)
	if p.Status == "" {
		p.Status = StatusInProgress
	}
	p.GithubURL = strings.TrimSpace(r.GithubURL)
	p.DemoURL = strings.TrimSpace(r.DemoURL)
	p.DocumentationURL = strings.TrimSpace(r.DocumentationURL)
	p.IsPublished = r.IsPublished == nil || *r.IsPublished
	p.IsFeatured = r.IsFeatured
	p.Order = r.Order
}

// cleanList bỏ phần tử rỗng, không bao giờ trả nil (cột text[] NOT NULL)
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func statusValues() []interface{} {
	out := make([]interface{}, len(Statuses))
	for i, s := range Statuses {
		out[i] = string(s)
	}
	return out
}

// ===== RESPONSES =====

type ProjectListItem struct {
	ID                uuid.UUID  `json:"id"`
	Title             string     `json:"title"`
	Slug              string     `json:"slug"`
	ShortDescription  string     `json:"short_description"`
	ImageThumbnailURL *string    `json:"image_thumbnail_url"`
	CategoryID        *uuid.UUID `json:"category"`
	CategoryName      *string    `json:"category_name"`
	Technologies      []string   `json:"technologies"`
	Status            Status     `json:"status"`
	IsFeatured        bool       `json:"is_featured"`
	GithubURL         string     `json:"github_url"`
	DemoURL           string     `json:"demo_url"`
}

func (p *Project) ToListItem(r *media.Resolver, base string) ProjectListItem {
	return ProjectListItem{
		ID:                p.ID,
		Title:             p.Title,
		Slug:              p.Slug,
		ShortDescription:  p.ShortDescription,
		ImageThumbnailURL: r.ResolveVariant(p.ImageVariants, "thumbnail", base),
		CategoryID:        p.CategoryID,
		CategoryName:      p.CategoryName,
		Technologies:      p.Technologies,
		Status:            p.Status,
		IsFeatured:        p.IsFeatured,
		GithubURL:         p.GithubURL,
		DemoURL:           p.DemoURL,
	}
}

type ProjectResponse struct {
	*Project
	ImageURL          *string `json:"image_url"`
	ImageThumbnailURL *string `json:"image_thumbnail_url"`
}

func (p *Project) ToResponse(r *media.Resolver, base string) ProjectResponse {
	return ProjectResponse{
		Project:           p,
		ImageURL:          r.Resolve(p.Image, base),
		ImageThumbnailURL: r.ResolveVariant(p.ImageVariants, "thumbnail", base),
	}
}
