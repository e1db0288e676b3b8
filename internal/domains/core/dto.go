package core

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"

	"kuai-backend/internal/shared/media"
)

// ===== SITE SETTINGS =====

// SiteSettingsRequest - POST/PUT /api/admin/core/site-settings
type SiteSettingsRequest struct {
	SiteName          string `json:"site_name"`
	SiteTagline       string `json:"site_tagline"`
	Logo              string `json:"logo"`
	Favicon           string `json:"favicon"`
	ContactEmail      string `json:"contact_email"`
	ContactPhone      string `json:"contact_phone"`
	Address           string `json:"address"`
	FacebookURL       string `json:"facebook_url"`
	TwitterURL        string `json:"twitter_url"`
	InstagramURL      string `json:"instagram_url"`
	LinkedinURL       string `json:"linkedin_url"`
	YoutubeURL        string `json:"youtube_url"`
	WhatsappURL       string `json:"whatsapp_url"`
	GithubURL         string `json:"github_url"`
	MetaDescription   string `json:"meta_description"`
	MetaKeywords      string `json:"meta_keywords"`
	GoogleAnalyticsID string `json:"google_analytics_id"`
}

func (r SiteSettingsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SiteName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.SiteTagline, validation.Length(0, 500)),
		validation.Field(&r.ContactEmail, is.EmailFormat),
		validation.Field(&r.ContactPhone, validation.Length(0, 20)),
		validation.Field(&r.FacebookURL, is.URL, validation.Length(0, 200)),
		validation.Field(&r.TwitterURL, is.URL, validation.Length(0, 200)),
		validation.Field(&r.InstagramURL, is.URL, validation.Length(0, 200)),
		validation.Field(&r.LinkedinURL, is.URL, validation.Length(0, 200)),
		validation.Field(&r.YoutubeURL, is.URL, validation.Length(0, 200)),
		validation.Field(&r.WhatsappURL, is.URL, validation.Length(0, 200)),
		validation.Field(&r.GithubURL, is.URL, validation.Length(0, 200)),
		validation.Field(&r.MetaDescription, validation.Length(0, 160).Error("max 160 characters for SEO")),
		validation.Field(&r.GoogleAnalyticsID, validation.Length(0, 50)),
	)
}

// Apply copy field từ request sang entity (PUT = ghi đè toàn bộ)
func (r SiteSettingsRequest) Apply(s *SiteSettings) {
	s.SiteName = strings.TrimSpace(r.SiteName)
	s.SiteTagline = strings.TrimSpace(r.SiteTagline)
	s.Logo = strings.TrimSpace(r.Logo)
	s.Favicon = strings.TrimSpace(r.Favicon)
	s.ContactEmail = strings.TrimSpace(r.ContactEmail)
	s.ContactPhone = strings.TrimSpace(r.ContactPhone)
	s.Address = strings.TrimSpace(r.Address)
	s.FacebookURL = r.FacebookURL
	s.TwitterURL = r.TwitterURL
	s.InstagramURL = r.InstagramURL
	s.LinkedinURL = r.LinkedinURL
	s.YoutubeURL = r.YoutubeURL
	s.WhatsappURL = r.WhatsappURL
	s.GithubURL = r.GithubURL
	s.MetaDescription = strings.TrimSpace(r.MetaDescription)
	s.MetaKeywords = strings.TrimSpace(r.MetaKeywords)
	s.GoogleAnalyticsID = strings.TrimSpace(r.GoogleAnalyticsID)
}

type SiteSettingsResponse struct {
	*SiteSettings
	LogoURL    *string `json:"logo_url"`
	FaviconURL *string `json:"favicon_url"`
}

func (s *SiteSettings) ToResponse(r *media.Resolver, base string) SiteSettingsResponse {
	return SiteSettingsResponse{
		SiteSettings: s,
		LogoURL:      r.Resolve(s.Logo, base),
		FaviconURL:   r.Resolve(s.Favicon, base),
	}
}

// ===== HERO SLIDES =====

type HeroSlideRequest struct {
	Title         string         `json:"title"`
	Subtitle      string         `json:"subtitle"`
	Image         string         `json:"image"`
	ImageVariants media.Variants `json:"image_variants"`
	ImageAlt      string         `json:"image_alt"`
	Button1Text   string         `json:"button1_text"`
	Button1URL    string         `json:"button1_url"`
	Button1Style  string         `json:"button1_style"`
	Button2Text   string         `json:"button2_text"`
	Button2URL    string         `json:"button2_url"`
	Button2Style  string         `json:"button2_style"`
	Order         int            `json:"order"`
	IsActive      *bool          `json:"is_active"`
}

func (r HeroSlideRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Subtitle, validation.Length(0, 500)),
		validation.Field(&r.Image, validation.Required.Error("hero slide image is required")),
		validation.Field(&r.ImageAlt, validation.Length(0, 200)),
		validation.Field(&r.Button1Text, validation.Length(0, 50)),
		validation.Field(&r.Button1URL, validation.Length(0, 200)),
		validation.Field(&r.Button1Style, validation.In(toAny(PrimaryButtonStyles)...)),
		validation.Field(&r.Button2Text, validation.Length(0, 50)),
		validation.Field(&r.Button2URL, validation.Length(0, 200)),
		validation.Field(&r.Button2Style, validation.In(toAny(OutlineButtonStyles)...)),
	)
}

func (r HeroSlideRequest) Apply(h *HeroSlide) {
	h.Title = strings.TrimSpace(r.Title)
	h.Subtitle = strings.TrimSpace(r.Subtitle)
	h.Image = strings.TrimSpace(r.Image)
	h.ImageVariants = r.ImageVariants
	if h.ImageVariants == nil {
		h.ImageVariants = media.Variants{}
	}
	h.ImageAlt = strings.TrimSpace(r.ImageAlt)
	h.Button1Text = strings.TrimSpace(r.Button1Text)
	h.Button1URL = strings.TrimSpace(r.Button1URL)
	h.Button1Style = r.Button1Style
	if h.Button1Style == "" {
		h.Button1Style = DefaultButton1Style
	}
	h.Button2Text = strings.TrimSpace(r.Button2Text)
	h.Button2URL = strings.TrimSpace(r.Button2URL)
	h.Button2Style = r.Button2Style
	if h.Button2Style == "" {
		h.Button2Style = DefaultButton2Style
	}
	h.Order = r.Order
	h.IsActive = r.IsActive == nil || *r.IsActive
}

type HeroSlideResponse struct {
	*HeroSlide
	ImageURL        *string `json:"image_url"`
	ImageDesktopURL *string `json:"image_desktop_url"`
	ImageTabletURL  *string `json:"image_tablet_url"`
	ImageMobileURL  *string `json:"image_mobile_url"`
}

func (h *HeroSlide) ToResponse(r *media.Resolver, base string) HeroSlideResponse {
	return HeroSlideResponse{
		HeroSlide:       h,
		ImageURL:        r.Resolve(h.Image, base),
		ImageDesktopURL: r.ResolveVariant(h.ImageVariants, "desktop", base),
		ImageTabletURL:  r.ResolveVariant(h.ImageVariants, "tablet", base),
		ImageMobileURL:  r.ResolveVariant(h.ImageVariants, "mobile", base),
	}
}

// ===== CONTACT INFO =====

type ContactInfoRequest struct {
	Email            string              `json:"email"`
	Phone            string              `json:"phone"`
	Address          string              `json:"address"`
	OfficeHours      string              `json:"office_hours"`
	Latitude         decimal.NullDecimal `json:"latitude"`
	Longitude        decimal.NullDecimal `json:"longitude"`
	EmergencyContact string              `json:"emergency_contact"`
}

var (
	maxLatitude  = decimal.NewFromInt(90)
	maxLongitude = decimal.NewFromInt(180)
)

func (r ContactInfoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Phone, validation.Required, validation.Length(1, 20)),
		validation.Field(&r.Address, validation.Required),
		validation.Field(&r.OfficeHours, validation.Length(0, 200)),
		validation.Field(&r.Latitude, validation.By(coordinate(maxLatitude))),
		validation.Field(&r.Longitude, validation.By(coordinate(maxLongitude))),
		validation.Field(&r.EmergencyContact, validation.Length(0, 100)),
	)
}

// coordinate: |v| <= limit và tối đa 6 chữ số thập phân (numeric(9,6))
func coordinate(limit decimal.Decimal) validation.RuleFunc {
	return func(value interface{}) error {
		v, _ := value.(decimal.NullDecimal)
		if !v.Valid {
			return nil
		}
		if v.Decimal.Abs().GreaterThan(limit) {
			return validation.NewError("validation_coordinate_range", "coordinate out of range")
		}
		if !v.Decimal.Equal(v.Decimal.Round(6)) {
			return validation.NewError("validation_coordinate_precision", "at most 6 decimal places")
		}
		return nil
	}
}

func (r ContactInfoRequest) Apply(ci *ContactInfo) {
	ci.Email = strings.TrimSpace(r.Email)
	ci.Phone = strings.TrimSpace(r.Phone)
	ci.Address = strings.TrimSpace(r.Address)
	ci.OfficeHours = strings.TrimSpace(r.OfficeHours)
	ci.Latitude = r.Latitude
	ci.Longitude = r.Longitude
	ci.EmergencyContact = strings.TrimSpace(r.EmergencyContact)
}

// ===== API ROOT =====

// APIRoot - GET /api/
type APIRoot struct {
	Message   string                       `json:"message"`
	Version   string                       `json:"version"`
	Timestamp time.Time                    `json:"timestamp"`
	Endpoints map[string]map[string]string `json:"endpoints"`
}

var apiEndpoints = map[string]map[string]string{
	"core": {
		"site_settings": "core/site-settings/",
		"hero_slides":   "core/hero-slides/",
		"contact_info":  "core/contact-info/",
		"quick_links":   "core/quick-links/",
	},
	"about": {
		"about":   "about/",
		"current": "about/current/",
	},
	"news": {
		"categories": "news/categories/",
		"articles":   "news/articles/",
	},
	"events": {
		"categories": "events/categories/",
		"events":     "events/",
		"upcoming":   "events/upcoming/",
		"past":       "events/past/",
		"featured":   "events/featured/",
	},
	"projects": {
		"categories": "projects/categories/",
		"projects":   "projects/",
		"featured":   "projects/featured/",
		"by_status":  "projects/by_status/",
	},
	"team": {
		"roles":     "team/roles/",
		"members":   "team/members/",
		"executive": "team/members/executive/",
		"by_role":   "team/members/by_role/",
		"current":   "team/members/current/",
		"archived":  "team/members/archived/",
	},
	"gallery": {
		"categories":  "gallery/categories/",
		"images":      "gallery/images/",
		"featured":    "gallery/images/featured/",
		"by_category": "gallery/images/by_category/",
	},
	"partners": {
		"categories":  "partners/categories/",
		"partners":    "partners/",
		"featured":    "partners/featured/",
		"by_category": "partners/by_category/",
	},
	"indabax": {
		"settings":         "indabax/settings/",
		"events":           "indabax/events/",
		"latest_event":     "indabax/events/latest/",
		"speakers":         "indabax/speakers/",
		"keynote_speakers": "indabax/speakers/keynote/",
		"sessions":         "indabax/sessions/",
		"gallery":          "indabax/gallery/",
		"hero":             "indabax/hero/",
		"leaders":          "indabax/leaders/",
		"resources":        "indabax/resources/",
	},
	"search": {
		"search": "search/",
	},
}

// NewAPIRoot dựng payload GET /api/, apiBase kiểu "https://host/api/"
func NewAPIRoot(apiBase, version string, now time.Time) APIRoot {
	if !strings.HasSuffix(apiBase, "/") {
		apiBase += "/"
	}

	endpoints := make(map[string]map[string]string, len(apiEndpoints))
	for group, paths := range apiEndpoints {
		resolved := make(map[string]string, len(paths))
		for name, p := range paths {
			resolved[name] = apiBase + p
		}
		endpoints[group] = resolved
	}

	return APIRoot{
		Message:   "KUAI Club API",
		Version:   version,
		Timestamp: now,
		Endpoints: endpoints,
	}
}

// ===== helpers =====

func toAny(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
