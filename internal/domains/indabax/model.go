package indabax

import (
	"time"

	"github.com/google/uuid"

	"kuai-backend/internal/shared/lifecycle"
	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/types"
)

// ===== SETTINGS (singleton) =====

type Settings struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	SiteName           string    `json:"site_name" db:"site_name"`
	Tagline            string    `json:"tagline" db:"tagline"`
	Logo               string    `json:"logo" db:"logo"`
	AboutTitle         string    `json:"about_title" db:"about_title"`
	AboutDescription   string    `json:"about_description" db:"about_description"`
	AboutImage         string    `json:"about_image" db:"about_image"`
	VisionTitle        string    `json:"vision_title" db:"vision_title"`
	VisionDescription  string    `json:"vision_description" db:"vision_description"`
	MissionTitle       string    `json:"mission_title" db:"mission_title"`
	MissionDescription string    `json:"mission_description" db:"mission_description"`
	VisionMissionImage string    `json:"vision_mission_image" db:"vision_mission_image"`
	ContactEmail       string    `json:"contact_email" db:"contact_email"`
	ContactPhone       string    `json:"contact_phone" db:"contact_phone"`
	Location           string    `json:"location" db:"location"`
	FacebookURL        string    `json:"facebook_url" db:"facebook_url"`
	TwitterURL         string    `json:"twitter_url" db:"twitter_url"`
	InstagramURL       string    `json:"instagram_url" db:"instagram_url"`
	LinkedinURL        string    `json:"linkedin_url" db:"linkedin_url"`
	YoutubeURL         string    `json:"youtube_url" db:"youtube_url"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// ===== EVENT =====

type Event struct {
	ID                   uuid.UUID  `json:"id" db:"id"`
	Title                string     `json:"title" db:"title"`
	Slug                 string     `json:"slug" db:"slug"`
	Description          string     `json:"description" db:"description"`
	Theme                string     `json:"theme" db:"theme"`
	Image                string     `json:"image" db:"image"`
	Date                 types.Date `json:"date" db:"date"`
	EndDate              types.Date `json:"end_date" db:"end_date"`
	Time                 *string    `json:"time" db:"time"`
	Location             string     `json:"location" db:"location"`
	Venue                string     `json:"venue" db:"venue"`
	RegistrationURL      string     `json:"registration_url" db:"registration_url"`
	RegistrationDeadline types.Date `json:"registration_deadline" db:"registration_deadline"`
	MaxParticipants      *int       `json:"max_participants" db:"max_participants"`
	IsPublished          bool       `json:"is_published" db:"is_published"`
	IsFeatured           bool       `json:"is_featured" db:"is_featured"`
	SpeakersCount        int        `json:"speakers_count" db:"speakers_count"`
	SessionsCount        int        `json:"sessions_count" db:"sessions_count"`
	CreatedAt            time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at" db:"updated_at"`
}

func (e *Event) SlugSource() string  { return e.Title }
func (e *Event) GetSlug() string     { return e.Slug }
func (e *Event) SetSlug(slug string) { e.Slug = slug }

type EventFilter struct {
	IsFeatured *bool
	Date       *types.Date
}

// ===== SPEAKER / SESSION / GALLERY =====

type Speaker struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Title        string     `json:"title" db:"title"`
	Organization string     `json:"organization" db:"organization"`
	Bio          string     `json:"bio" db:"bio"`
	Photo        string     `json:"photo" db:"photo"`
	EventID      *uuid.UUID `json:"event" db:"event_id"`
	EventTitle   *string    `json:"event_title" db:"event_title"`
	LinkedinURL  string     `json:"linkedin_url" db:"linkedin_url"`
	TwitterURL   string     `json:"twitter_url" db:"twitter_url"`
	WebsiteURL   string     `json:"website_url" db:"website_url"`
	Order        int        `json:"order" db:"display_order"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	IsKeynote    bool       `json:"is_keynote" db:"is_keynote"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

type SpeakerFilter struct {
	EventID   *uuid.UUID
	IsKeynote *bool
}

type SessionType string

const (
	SessionKeynote  SessionType = "keynote"
	SessionTalk     SessionType = "talk"
	SessionWorkshop SessionType = "workshop"
	SessionPanel    SessionType = "panel"
	SessionTutorial SessionType = "tutorial"
)

var sessionTypeLabels = map[SessionType]string{
	SessionKeynote:  "Keynote",
	SessionTalk:     "Talk",
	SessionWorkshop: "Workshop",
	SessionPanel:    "Panel Discussion",
	SessionTutorial: "Tutorial",
}

func (t SessionType) Valid() bool {
	_, ok := sessionTypeLabels[t]
	return ok
}

func (t SessionType) Display() string {
	return sessionTypeLabels[t]
}

type Session struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	Title        string      `json:"title" db:"title"`
	Description  string      `json:"description" db:"description"`
	SessionType  SessionType `json:"session_type" db:"session_type"`
	EventID      uuid.UUID   `json:"event" db:"event_id"`
	EventTitle   string      `json:"event_title" db:"event_title"`
	SpeakerID    *uuid.UUID  `json:"speaker" db:"speaker_id"`
	SpeakerName  *string     `json:"speaker_name" db:"speaker_name"`
	Date         types.Date  `json:"date" db:"date"`
	StartTime    string      `json:"start_time" db:"start_time"`
	EndTime      string      `json:"end_time" db:"end_time"`
	Room         string      `json:"room" db:"room"`
	SlidesURL    string      `json:"slides_url" db:"slides_url"`
	VideoURL     string      `json:"video_url" db:"video_url"`
	Order        int         `json:"order" db:"display_order"`
	IsActive     bool        `json:"is_active" db:"is_active"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`
}

type SessionFilter struct {
	EventID     *uuid.UUID
	SessionType *string
	SpeakerID   *uuid.UUID
	Date        *types.Date
}

// GalleryItem - variants: thumbnail 400x300
type GalleryItem struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	Title         string         `json:"title" db:"title"`
	Description   string         `json:"description" db:"description"`
	Image         string         `json:"image" db:"image"`
	ImageVariants media.Variants `json:"image_variants" db:"image_variants"`
	EventID       *uuid.UUID     `json:"event" db:"event_id"`
	EventTitle    *string        `json:"event_title" db:"event_title"`
	Order         int            `json:"order" db:"display_order"`
	IsActive      bool           `json:"is_active" db:"is_active"`
	DateTaken     types.Date     `json:"date_taken" db:"date_taken"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
}

// ===== HERO =====

// Hero - tối đa một row is_active, đảm bảo bởi partial unique index
type Hero struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Image       string    `json:"image" db:"image"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ===== LEADER =====

type Leader struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Role         string    `json:"role" db:"role"`
	ProfileImage string    `json:"profile_image" db:"profile_image"`
	Bio          string    `json:"bio" db:"bio"`
	Course       string    `json:"course" db:"course"`
	StartYear    int       `json:"start_year" db:"start_year"`
	EndYear      *int      `json:"end_year" db:"end_year"`
	Linkedin     string    `json:"linkedin" db:"linkedin"`
	Twitter      string    `json:"twitter" db:"twitter"`
	Github       string    `json:"github" db:"github"`
	Email        string    `json:"email" db:"email"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

func (l *Leader) Term() lifecycle.YearRange {
	return lifecycle.YearRange{StartYear: l.StartYear, EndYear: l.EndYear}
}

type LeaderFilter struct {
	Role      *string
	StartYear *int
	EndYear   *int
	Roster    *lifecycle.RosterStatus
}

// ArchiveYear là một nhóm của /indabax/leaders/archive
type ArchiveYear struct {
	Year    int
	Leaders []*Leader
}

// ===== LEARNING RESOURCE =====

type ResourceType string

const (
	ResourceVideo ResourceType = "video"
	ResourceDoc   ResourceType = "doc"
	ResourceSlide ResourceType = "slide"
	ResourceLink  ResourceType = "link"
	ResourceFile  ResourceType = "file"
)

var ResourceTypes = []ResourceType{ResourceVideo, ResourceDoc, ResourceSlide, ResourceLink, ResourceFile}

type Resource struct {
	ID           uuid.UUID    `json:"id" db:"id"`
	Title        string       `json:"title" db:"title"`
	Description  string       `json:"description" db:"description"`
	ResourceType ResourceType `json:"resource_type" db:"resource_type"`
	URL          string       `json:"url" db:"url"`
	File         string       `json:"file" db:"file"`
	Image        string       `json:"image" db:"image"`
	UploadedBy   string       `json:"uploaded_by" db:"uploaded_by"`
	DateAdded    time.Time    `json:"date_added" db:"date_added"`
	IsPublished  bool         `json:"is_published" db:"is_published"`
}
