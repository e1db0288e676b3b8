package core

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"kuai-backend/internal/shared/media"
)

// SiteSettings - cấu hình chung của site, chỉ có tối đa một row
type SiteSettings struct {
	ID          uuid.UUID `json:"id" db:"id"`
	SiteName    string    `json:"site_name" db:"site_name"`
	SiteTagline string    `json:"site_tagline" db:"site_tagline"`
	Logo        string    `json:"logo" db:"logo"`       // storage key, resize 300x100 lúc upload
	Favicon     string    `json:"favicon" db:"favicon"` // 32x32

	// Contact
	ContactEmail string `json:"contact_email" db:"contact_email"`
	ContactPhone string `json:"contact_phone" db:"contact_phone"`
	Address      string `json:"address" db:"address"`

	// Social
	FacebookURL  string `json:"facebook_url" db:"facebook_url"`
	TwitterURL   string `json:"twitter_url" db:"twitter_url"`
	InstagramURL string `json:"instagram_url" db:"instagram_url"`
	LinkedinURL  string `json:"linkedin_url" db:"linkedin_url"`
	YoutubeURL   string `json:"youtube_url" db:"youtube_url"`
	WhatsappURL  string `json:"whatsapp_url" db:"whatsapp_url"`
	GithubURL    string `json:"github_url" db:"github_url"`

	// SEO
	MetaDescription   string `json:"meta_description" db:"meta_description"`
	MetaKeywords      string `json:"meta_keywords" db:"meta_keywords"`
	GoogleAnalyticsID string `json:"google_analytics_id" db:"google_analytics_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Button styles
var (
	PrimaryButtonStyles = []string{"primary", "secondary", "success", "danger", "warning", "info", "light", "dark"}
	OutlineButtonStyles = []string{"outline-primary", "outline-secondary", "outline-light", "outline-dark"}
)

const (
	DefaultButton1Style = "primary"
	DefaultButton2Style = "outline-light"
)

// HeroSlide - slide carousel trang chủ, variants: desktop/tablet/mobile
type HeroSlide struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	Title         string         `json:"title" db:"title"`
	Subtitle      string         `json:"subtitle" db:"subtitle"`
	Image         string         `json:"image" db:"image"`
	ImageVariants media.Variants `json:"image_variants" db:"image_variants"`
	ImageAlt      string         `json:"image_alt" db:"image_alt"`
	Button1Text   string         `json:"button1_text" db:"button1_text"`
	Button1URL    string         `json:"button1_url" db:"button1_url"`
	Button1Style  string         `json:"button1_style" db:"button1_style"`
	Button2Text   string         `json:"button2_text" db:"button2_text"`
	Button2URL    string         `json:"button2_url" db:"button2_url"`
	Button2Style  string         `json:"button2_style" db:"button2_style"`
	Order         int            `json:"order" db:"display_order"`
	IsActive      bool           `json:"is_active" db:"is_active"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
}

// ContactInfo - thông tin liên hệ, singleton
type ContactInfo struct {
	ID               uuid.UUID           `json:"id" db:"id"`
	Email            string              `json:"email" db:"email"`
	Phone            string              `json:"phone" db:"phone"`
	Address          string              `json:"address" db:"address"`
	OfficeHours      string              `json:"office_hours" db:"office_hours"`
	Latitude         decimal.NullDecimal `json:"latitude" db:"latitude"`
	Longitude        decimal.NullDecimal `json:"longitude" db:"longitude"`
	EmergencyContact string              `json:"emergency_contact" db:"emergency_contact"`
	CreatedAt        time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at" db:"updated_at"`
}

// QuickLink - link ở footer
type QuickLink struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	URL        string    `json:"url" db:"url"`
	Order      int       `json:"order" db:"display_order"`
	IsActive   bool      `json:"is_active" db:"is_active"`
	OpenNewTab bool      `json:"open_new_tab" db:"open_new_tab"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
