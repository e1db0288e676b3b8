package about

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/utils"
)

// Request - POST/PUT /api/admin/about
type Request struct {
	Title               string `json:"title"`
	Content             string `json:"content"`
	HeroStats           []Stat `json:"hero_stats"`
	WhoWeAreTitle       string `json:"who_we_are_title"`
	WhoWeAreDescription string `json:"who_we_are_description"`
	WhoWeAreImage       string `json:"who_we_are_image"`
	WhyExistTitle       string `json:"why_exist_title"`
	WhyExistDescription string `json:"why_exist_description"`
	Image               string `json:"image"`
	Mission             string `json:"mission"`
	Vision              string `json:"vision"`
	ImpactSubtitle      string `json:"impact_subtitle"`
	ImpactStats         []Stat `json:"impact_stats"`
	CTATitle            string `json:"cta_title"`
	CTADescription      string `json:"cta_description"`
	CTAPrimaryText      string `json:"cta_primary_text"`
	CTAPrimaryLink      string `json:"cta_primary_link"`
	CTASecondaryText    string `json:"cta_secondary_text"`
	CTASecondaryLink    string `json:"cta_secondary_link"`
}

func (s Stat) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Value, validation.Required, validation.Length(1, 20)),
		validation.Field(&s.Label, validation.Required, validation.Length(1, 100)),
	)
}

func (r Request) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(0, 200)),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.HeroStats, validation.Length(0, StatCount)),
		validation.Field(&r.WhoWeAreTitle, validation.Length(0, 200)),
		validation.Field(&r.WhoWeAreDescription, validation.Required),
		validation.Field(&r.WhyExistTitle, validation.Length(0, 200)),
		validation.Field(&r.WhyExistDescription, validation.Required),
		validation.Field(&r.Mission, validation.Required),
		validation.Field(&r.Vision, validation.Required),
		validation.Field(&r.ImpactSubtitle, validation.Length(0, 500)),
		validation.Field(&r.ImpactStats, validation.Length(0, StatCount)),
		validation.Field(&r.CTATitle, validation.Length(0, 200)),
		validation.Field(&r.CTADescription, validation.Required),
		validation.Field(&r.CTAPrimaryText, validation.Length(0, 50)),
		validation.Field(&r.CTAPrimaryLink, validation.Length(0, 200)),
		validation.Field(&r.CTASecondaryText, validation.Length(0, 50)),
		validation.Field(&r.CTASecondaryLink, validation.Length(0, 200)),
	)
}

// Apply ghi đè entity, field rỗng lấy default giống lúc tạo bảng
func (r Request) Apply(a *About) {
	a.Title = orDefault(r.Title, "About KUAI Club")
	a.Content = strings.TrimSpace(r.Content)
	a.HeroStats = statsOrDefault(r.HeroStats, DefaultHeroStats)
	a.WhoWeAreTitle = orDefault(r.WhoWeAreTitle, "Who We Are")
	a.WhoWeAreDescription = strings.TrimSpace(r.WhoWeAreDescription)
	a.WhoWeAreImage = strings.TrimSpace(r.WhoWeAreImage)
	a.WhyExistTitle = orDefault(r.WhyExistTitle, "Why We Exist")
	a.WhyExistDescription = strings.TrimSpace(r.WhyExistDescription)
	a.Image = strings.TrimSpace(r.Image)
	a.Mission = strings.TrimSpace(r.Mission)
	a.Vision = strings.TrimSpace(r.Vision)
	a.ImpactSubtitle = strings.TrimSpace(r.ImpactSubtitle)
	a.ImpactStats = statsOrDefault(r.ImpactStats, DefaultImpactStats)
	a.CTATitle = orDefault(r.CTATitle, "Ready to Join the AI Revolution?")
	a.CTADescription = strings.TrimSpace(r.CTADescription)
	a.CTAPrimaryText = orDefault(r.CTAPrimaryText, "Get Started Today")
	a.CTAPrimaryLink = orDefault(r.CTAPrimaryLink, "/")
	a.CTASecondaryText = orDefault(r.CTASecondaryText, "Explore Programs")
	a.CTASecondaryLink = orDefault(r.CTASecondaryLink, "/#projects-section")
}

type Response struct {
	*About
	WhoWeAreImageURL *string `json:"who_we_are_image_url"`
	ImageURL         *string `json:"image_url"`
}

func (a *About) ToResponse(r *media.Resolver, base string) Response {
	return Response{
		About:            a,
		WhoWeAreImageURL: r.Resolve(a.WhoWeAreImage, base),
		ImageURL:         r.Resolve(a.Image, base),
	}
}

func orDefault(s, fallback string) string {
	return utils.OrDefault(strings.TrimSpace(s), fallback)
}

func statsOrDefault(stats, fallback []Stat) []Stat {
	if len(stats) == 0 {
		out := make([]Stat, len(fallback))
		copy(out, fallback)
		return out
	}
	return stats
}
