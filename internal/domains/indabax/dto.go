package indabax

import (
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"kuai-backend/internal/shared/lifecycle"
	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/types"
	"kuai-backend/internal/shared/utils"
)

var clockTimeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ===== SETTINGS =====

type SettingsRequest struct {
	SiteName           string `json:"site_name"`
	Tagline            string `json:"tagline"`
	Logo               string `json:"logo"`
	AboutTitle         string `json:"about_title"`
	AboutDescription   string `json:"about_description"`
	AboutImage         string `json:"about_image"`
	VisionTitle        string `json:"vision_title"`
	VisionDescription  string `json:"vision_description"`
	MissionTitle       string `json:"mission_title"`
	MissionDescription string `json:"mission_description"`
	VisionMissionImage string `json:"vision_mission_image"`
	ContactEmail       string `json:"contact_email"`
	ContactPhone       string `json:"contact_phone"`
	Location           string `json:"location"`
	FacebookURL        string `json:"facebook_url"`
	TwitterURL         string `json:"twitter_url"`
	InstagramURL       string `json:"instagram_url"`
	LinkedinURL        string `json:"linkedin_url"`
	YoutubeURL         string `json:"youtube_url"`
}

func (r SettingsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SiteName, validation.Length(0, 200)),
		validation.Field(&r.Tagline, validation.Length(0, 500)),
		validation.Field(&r.AboutTitle, validation.Length(0, 200)),
		validation.Field(&r.VisionTitle, validation.Length(0, 200)),
		validation.Field(&r.MissionTitle, validation.Length(0, 200)),
		validation.Field(&r.ContactEmail, is.EmailFormat, validation.Length(0, 254)),
		validation.Field(&r.ContactPhone, validation.Length(0, 20)),
		validation.Field(&r.Location, validation.Length(0, 200)),
		validation.Field(&r.FacebookURL, is.URL, validation.Length(0, 200)),
		validation.Field(&r.TwitterURL, is.URL, validation.Length(0, 200)),
		validation.Field(&r.InstagramURL, is.URL, validation.Length(0, 200)),
		validation.Field(&r.LinkedinURL, is.URL, validation.Length(0, 200)),
		validation.Field(&r.YoutubeURL, is.URL, validation.Length(0, 200)),
	)
}

func (r SettingsRequest) Apply(s *Settings) {
	s.SiteName = utils.OrDefault(strings.TrimSpace(r.SiteName), "Indabax Kabale")
	s.Tagline = strings.TrimSpace(r.Tagline)
	s.Logo = strings.TrimSpace(r.Logo)
	s.AboutTitle = utils.OrDefault(strings.TrimSpace(r.AboutTitle), "About Indabax Kabale")
	s.AboutDescription = r.AboutDescription
	s.AboutImage = strings.TrimSpace(r.AboutImage)
	s.VisionTitle = utils.OrDefault(strings.TrimSpace(r.VisionTitle), "Our Vision")
	s.VisionDescription = r.VisionDescription
	s.MissionTitle = utils.OrDefault(strings.TrimSpace(r.MissionTitle), "Our Mission")
	s.MissionDescription = r.MissionDescription
	s.VisionMissionImage = strings.TrimSpace(r.VisionMissionImage)
	s.ContactEmail = strings.TrimSpace(r.ContactEmail)
	s.ContactPhone = strings.TrimSpace(r.ContactPhone)
	s.Location = strings.TrimSpace(r.Location)
	s.FacebookURL = strings.TrimSpace(r.FacebookURL)
	s.TwitterURL = strings.TrimSpace(r.TwitterURL)
	s.InstagramURL = strings.TrimSpace(r.InstagramURL)
	s.LinkedinURL = strings.TrimSpace(r.LinkedinURL)
	s.YoutubeURL = strings.TrimSpace(r.YoutubeURL)
}

type SettingsResponse struct {
	*Settings
	LogoURL               *string `json:"logo_url"`
	AboutImageURL         *string `json:"about_image_url"`
	VisionMissionImageURL *string `json:"vision_mission_image_url"`
}

func (s *Settings) ToResponse(r *media.Resolver, base string) SettingsResponse {
	return SettingsResponse{
		Settings:              s,
		LogoURL:               r.Resolve(s.Logo, base),
		AboutImageURL:         r.Resolve(s.AboutImage, base),
		VisionMissionImageURL: r.Resolve(s.VisionMissionImage, base),
	}
}

// ===== EVENT =====

type EventRequest struct {
	Title                string     `json:"title"`
	Slug                 string     `json:"slug"`
	Description          string     `json:"description"`
	Theme                string     `json:"theme"`
	Image                string     `json:"image"`
	Date                 types.Date `json:"date"`
	EndDate              types.Date `json:"end_date"`
	Time                 string     `json:"time"`
	Location             string     `json:"location"`
	Venue                string     `json:"venue"`
	RegistrationURL      string     `json:"registration_url"`
	RegistrationDeadline types.Date `json:"registration_deadline"`
	MaxParticipants      *int       `json:"max_participants"`
	IsPublished          *bool      `json:"is_published"`
	IsFeatured           bool       `json:"is_featured"`
}

func (r EventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Slug, validation.Length(0, 200)),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.Theme, validation.Length(0, 200)),
		validation.Field(&r.Date, validation.By(requiredDate)),
		validation.Field(&r.Time, validation.Match(clockTimeRe).Error("must be HH:MM")),
		validation.Field(&r.Location, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Venue, validation.Length(0, 200)),
		validation.Field(&r.RegistrationURL, is.URL, validation.Length(0, 200)),
		validation.Field(&r.MaxParticipants, validation.When(r.MaxParticipants != nil, validation.By(positiveInt))),
	)
}

func (r EventRequest) Apply(e *Event) {
	e.Title = strings.TrimSpace(r.Title)
	if s := strings.TrimSpace(r.Slug); s != "" {
		e.Slug = s
	}
	e.Description = r.Description
	e.Theme = strings.TrimSpace(r.Theme)
	e.Image = strings.TrimSpace(r.Image)
	e.Date = r.Date
	e.EndDate = r.EndDate
	e.Time = nil
	if t := strings.TrimSpace(r.Time); t != "" {
		e.Time = &t
	}
	e.Location = strings.TrimSpace(r.Location)
	e.Venue = strings.TrimSpace(r.Venue)
	e.RegistrationURL = strings.TrimSpace(r.RegistrationURL)
	e.RegistrationDeadline = r.RegistrationDeadline
	e.MaxParticipants = r.MaxParticipants
	e.IsPublished = r.IsPublished == nil || *r.IsPublished
	e.IsFeatured = r.IsFeatured
}

func requiredDate(value interface{}) error {
	if d, _ := value.(types.Date); d.IsZero() {
		return validation.NewError("validation_required", "cannot be blank")
	}
	return nil
}

// positiveInt: ozzo bỏ qua Min với giá trị 0, nên kiểm tra thủ công
func positiveInt(value interface{}) error {
	if n, ok := value.(*int); ok && n != nil && *n < 1 {
		return validation.NewError("validation_min_greater_equal_than_required", "must be no less than 1")
	}
	return nil
}

type EventListItem struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Theme         string     `json:"theme"`
	ImageURL      *string    `json:"image_url"`
	Date          types.Date `json:"date"`
	EndDate       types.Date `json:"end_date"`
	Time          *string    `json:"time"`
	Location      string     `json:"location"`
	IsFeatured    bool       `json:"is_featured"`
	IsPast        bool       `json:"is_past"`
	SpeakersCount int        `json:"speakers_count"`
	SessionsCount int        `json:"sessions_count"`
}

func (e *Event) ToListItem(r *media.Resolver, base string, today types.Date) EventListItem {
	return EventListItem{
		ID:            e.ID,
		Title:         e.Title,
		Slug:          e.Slug,
		Theme:         e.Theme,
		ImageURL:      r.Resolve(e.Image, base),
		Date:          e.Date,
		EndDate:       e.EndDate,
		Time:          e.Time,
		Location:      e.Location,
		IsFeatured:    e.IsFeatured,
		IsPast:        lifecycle.IsPast(e.Date, today),
		SpeakersCount: e.SpeakersCount,
		SessionsCount: e.SessionsCount,
	}
}

type EventResponse struct {
	*Event
	ImageURL *string `json:"image_url"`
	IsPast   bool    `json:"is_past"`
}

func (e *Event) ToResponse(r *media.Resolver, base string, today types.Date) EventResponse {
	return EventResponse{
		Event:    e,
		ImageURL: r.Resolve(e.Image, base),
		IsPast:   lifecycle.IsPast(e.Date, today),
	}
}

// ===== SPEAKER / SESSION / GALLERY =====

type SpeakerResponse struct {
	*Speaker
	PhotoURL *string `json:"photo_url"`
}

func (s *Speaker) ToResponse(r *media.Resolver, base string) SpeakerResponse {
	return SpeakerResponse{Speaker: s, PhotoURL: r.Resolve(s.Photo, base)}
}

type SessionResponse struct {
	*Session
	SessionTypeDisplay string `json:"session_type_display"`
}

func (s *Session) ToResponse() SessionResponse {
	return SessionResponse{Session: s, SessionTypeDisplay: s.SessionType.Display()}
}

type GalleryItemResponse struct {
	*GalleryItem
	ImageURL          *string `json:"image_url"`
	ImageThumbnailURL *string `json:"image_thumbnail_url"`
}

func (g *GalleryItem) ToResponse(r *media.Resolver, base string) GalleryItemResponse {
	return GalleryItemResponse{
		GalleryItem:       g,
		ImageURL:          r.Resolve(g.Image, base),
		// grid indabax luôn cần ảnh, thiếu thumbnail thì dùng ảnh gốc
		ImageThumbnailURL: r.ResolveVariantOr(g.ImageVariants, "thumbnail", g.Image, base),
	}
}

// ===== HERO =====

type HeroRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	IsActive    bool   `json:"is_active"`
}

func (r HeroRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
	)
}

func (r HeroRequest) Apply(h *Hero) {
	h.Title = strings.TrimSpace(r.Title)
	h.Description = r.Description
	h.Image = strings.TrimSpace(r.Image)
	h.IsActive = r.IsActive
}

type HeroResponse struct {
	*Hero
	ImageURL *string `json:"image_url"`
}

func (h *Hero) ToResponse(r *media.Resolver, base string) HeroResponse {
	return HeroResponse{Hero: h, ImageURL: r.Resolve(h.Image, base)}
}

// ===== LEADER =====

type LeaderRequest struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	ProfileImage string `json:"profile_image"`
	Bio          string `json:"bio"`
	Course       string `json:"course"`
	StartYear    int    `json:"start_year"`
	EndYear      *int   `json:"end_year"`
	Linkedin     string `json:"linkedin"`
	Twitter      string `json:"twitter"`
	Github       string `json:"github"`
	Email        string `json:"email"`
}

func (r LeaderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Role, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Course, validation.Length(0, 100)),
		validation.Field(&r.StartYear, validation.Min(0)),
		validation.Field(&r.Linkedin, is.URL, validation.Length(0, 200)),
		validation.Field(&r.Twitter, is.URL, validation.Length(0, 200)),
		validation.Field(&r.Github, is.URL, validation.Length(0, 200)),
		validation.Field(&r.Email, is.EmailFormat, validation.Length(0, 254)),
	)
}

// Apply: start_year để trống → năm hiện tại
func (r LeaderRequest) Apply(l *Leader, now time.Time) {
	l.Name = strings.TrimSpace(r.Name)
	l.Role = strings.TrimSpace(r.Role)
	l.ProfileImage = strings.TrimSpace(r.ProfileImage)
	l.Bio = r.Bio
	l.Course = strings.TrimSpace(r.Course)
	l.StartYear = r.StartYear
	if l.StartYear == 0 {
		l.StartYear = now.Year()
	}
	l.EndYear = r.EndYear
	l.Linkedin = strings.TrimSpace(r.Linkedin)
	l.Twitter = strings.TrimSpace(r.Twitter)
	l.Github = strings.TrimSpace(r.Github)
	l.Email = strings.TrimSpace(r.Email)
}

type LeaderResponse struct {
	*Leader
	ProfileImageURL *string                `json:"profile_image_url"`
	Status          lifecycle.RosterStatus `json:"status"`
	IsCurrent       bool                   `json:"is_current"`
}

func (l *Leader) ToResponse(r *media.Resolver, base string, now time.Time) LeaderResponse {
	term := l.Term()
	return LeaderResponse{
		Leader:          l,
		ProfileImageURL: r.Resolve(l.ProfileImage, base),
		Status:          term.Status(now),
		IsCurrent:       term.IsCurrent(now),
	}
}

type ArchiveYearResponse struct {
	Year    int              `json:"year"`
	Leaders []LeaderResponse `json:"leaders"`
}

// ===== RESOURCE =====

type ResourceResponse struct {
	*Resource
	ImageURL *string `json:"image_url"`
	FileURL  *string `json:"file_url"`
}

func (res *Resource) ToResponse(r *media.Resolver, base string) ResourceResponse {
	return ResourceResponse{
		Resource: res,
		ImageURL: r.Resolve(res.Image, base),
		FileURL:  r.Resolve(res.File, base),
	}
}
