package about

import (
	"time"

	"github.com/google/uuid"
)

// Stat - một ô số liệu, ví dụ {"500+", "Students"}
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// About - nội dung trang About, singleton
type About struct {
	ID uuid.UUID `json:"id" db:"id"`

	// Hero
	Title     string `json:"title" db:"title"`
	Content   string `json:"content" db:"content"`
	HeroStats []Stat `json:"hero_stats" db:"hero_stats"`

	// Who we are
	WhoWeAreTitle       string `json:"who_we_are_title" db:"who_we_are_title"`
	WhoWeAreDescription string `json:"who_we_are_description" db:"who_we_are_description"`
	WhoWeAreImage       string `json:"who_we_are_image" db:"who_we_are_image"`

	// Why we exist
	WhyExistTitle       string `json:"why_exist_title" db:"why_exist_title"`
	WhyExistDescription string `json:"why_exist_description" db:"why_exist_description"`
	Image               string `json:"image" db:"image"`

	Mission string `json:"mission" db:"mission"`
	Vision  string `json:"vision" db:"vision"`

	// Impact
	ImpactSubtitle string `json:"impact_subtitle" db:"impact_subtitle"`
	ImpactStats    []Stat `json:"impact_stats" db:"impact_stats"`

	// CTA
	CTATitle         string `json:"cta_title" db:"cta_title"`
	CTADescription   string `json:"cta_description" db:"cta_description"`
	CTAPrimaryText   string `json:"cta_primary_text" db:"cta_primary_text"`
	CTAPrimaryLink   string `json:"cta_primary_link" db:"cta_primary_link"`
	CTASecondaryText string `json:"cta_secondary_text" db:"cta_secondary_text"`
	CTASecondaryLink string `json:"cta_secondary_link" db:"cta_secondary_link"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

const StatCount = 4

// Số liệu mặc định khi admin chưa nhập
var (
	DefaultHeroStats = []Stat{
		{"500+", "Students"},
		{"50+", "Projects"},
		{"15+", "Partners"},
		{"3", "Years"},
	}
	DefaultImpactStats = []Stat{
		{"1000+", "Students Empowered"},
		{"75+", "AI Projects Completed"},
		{"25+", "Partner Organizations"},
		{"5", "Years of Innovation"},
	}
)
