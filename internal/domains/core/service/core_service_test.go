package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuai-backend/internal/domains/core"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/singleton"
)

// memoryRepo giả lập bảng có unique singleton_key
type memoryRepo struct {
	mu       sync.Mutex
	settings []*core.SiteSettings
	contacts []*core.ContactInfo
	slides   map[uuid.UUID]*core.HeroSlide
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{slides: map[uuid.UUID]*core.HeroSlide{}}
}

func (m *memoryRepo) SiteSettingsExists(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.settings) > 0, nil
}

func (m *memoryRepo) CurrentSiteSettings(ctx context.Context) (*core.SiteSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.settings) == 0 {
		return nil, nil
	}
	cp := *m.settings[0]
	return &cp, nil
}

func (m *memoryRepo) ListSiteSettings(ctx context.Context, p query.ListParams) ([]*core.SiteSettings, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings, len(m.settings), nil
}

func (m *memoryRepo) GetSiteSettings(ctx context.Context, id uuid.UUID) (*core.SiteSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.settings {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound("Site settings not found.")
}

func (m *memoryRepo) InsertSiteSettings(ctx context.Context, s *core.SiteSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.settings) > 0 {
		return fmt.Errorf("insert site settings: %w", singleton.ErrDuplicate)
	}
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	cp := *s
	m.settings = append(m.settings, &cp)
	return nil
}

func (m *memoryRepo) UpdateSiteSettings(ctx context.Context, s *core.SiteSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.settings {
		if existing.ID == s.ID {
			cp := *s
			m.settings[i] = &cp
			return nil
		}
	}
	return apperror.NewNotFound("Site settings not found.")
}

func (m *memoryRepo) ContactInfoExists(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.contacts) > 0, nil
}

func (m *memoryRepo) CurrentContactInfo(ctx context.Context) (*core.ContactInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.contacts) == 0 {
		return nil, nil
	}
	return m.contacts[0], nil
}

func (m *memoryRepo) ListContactInfo(ctx context.Context, p query.ListParams) ([]*core.ContactInfo, int, error) {
	return m.contacts, len(m.contacts), nil
}

func (m *memoryRepo) GetContactInfo(ctx context.Context, id uuid.UUID) (*core.ContactInfo, error) {
	for _, ci := range m.contacts {
		if ci.ID == id {
			return ci, nil
		}
	}
	return nil, apperror.NewNotFound("Contact information not found.")
}

func (m *memoryRepo) InsertContactInfo(ctx context.Context, ci *core.ContactInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.contacts) > 0 {
		return singleton.ErrDuplicate
	}
	ci.ID = uuid.New()
	m.contacts = append(m.contacts, ci)
	return nil
}

func (m *memoryRepo) UpdateContactInfo(ctx context.Context, ci *core.ContactInfo) error {
	return nil
}

func (m *memoryRepo) ListHeroSlides(ctx context.Context, p query.ListParams, activeOnly bool) ([]*core.HeroSlide, int, error) {
	var out []*core.HeroSlide
	for _, s := range m.slides {
		if activeOnly && !s.IsActive {
			continue
		}
		out = append(out, s)
	}
	return out, len(out), nil
}

func (m *memoryRepo) GetHeroSlide(ctx context.Context, id uuid.UUID, activeOnly bool) (*core.HeroSlide, error) {
	s, ok := m.slides[id]
	if !ok || (activeOnly && !s.IsActive) {
		return nil, apperror.NewNotFound("Hero slide not found.")
	}
	return s, nil
}

func (m *memoryRepo) InsertHeroSlide(ctx context.Context, h *core.HeroSlide) error {
	h.ID = uuid.New()
	m.slides[h.ID] = h
	return nil
}

func (m *memoryRepo) UpdateHeroSlide(ctx context.Context, h *core.HeroSlide) error {
	m.slides[h.ID] = h
	return nil
}

func (m *memoryRepo) DeleteHeroSlide(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.slides[id]; !ok {
		return apperror.NewNotFound("Hero slide not found.")
	}
	delete(m.slides, id)
	return nil
}

func (m *memoryRepo) ListQuickLinks(ctx context.Context, p query.ListParams) ([]*core.QuickLink, int, error) {
	return nil, 0, nil
}

func (m *memoryRepo) GetQuickLink(ctx context.Context, id uuid.UUID) (*core.QuickLink, error) {
	return nil, apperror.NewNotFound("Quick link not found.")
}

// ===== SITE SETTINGS =====

func TestSiteSettings_Lifecycle(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewCoreService(repo)
	ctx := context.Background()

	_, err := svc.CurrentSiteSettings(ctx)
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeNotConfigured, appErr.Code)

	created, err := svc.CreateSiteSettings(ctx, &core.SiteSettingsRequest{SiteName: "KUAI"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	_, err = svc.CreateSiteSettings(ctx, &core.SiteSettingsRequest{SiteName: "Other"})
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))

	updated, err := svc.UpdateSiteSettings(ctx, created.ID, &core.SiteSettingsRequest{SiteName: "KUAI Club"})
	require.NoError(t, err)
	assert.Equal(t, "KUAI Club", updated.SiteName)

	current, err := svc.CurrentSiteSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "KUAI Club", current.SiteName)

	err = svc.DeleteSiteSettings(ctx, created.ID)
	assert.True(t, apperror.IsForbidden(err))
	assert.Len(t, repo.settings, 1)
}

func TestSiteSettings_RacingCreates(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewCoreService(repo)

	var wg sync.WaitGroup
	var wins, conflicts atomic.Int32
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.CreateSiteSettings(context.Background(), &core.SiteSettingsRequest{SiteName: fmt.Sprintf("site-%d", i)})
			switch {
			case err == nil:
				wins.Add(1)
			case apperror.IsConflict(err):
				conflicts.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, int32(15), conflicts.Load())
}

func TestSiteSettings_ValidationError(t *testing.T) {
	svc := NewCoreService(newMemoryRepo())

	_, err := svc.CreateSiteSettings(context.Background(), &core.SiteSettingsRequest{
		SiteName:     "KUAI",
		ContactEmail: "not-an-email",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

// ===== CONTACT INFO =====

func TestContactInfo_CoordinatePrecision(t *testing.T) {
	svc := NewCoreService(newMemoryRepo())
	ctx := context.Background()

	req := &core.ContactInfoRequest{
		Email:    "info@kuai.example",
		Phone:    "+256700000000",
		Address:  "Kampala",
		Latitude: decimal.NewNullDecimal(decimal.RequireFromString("0.3476123")),
	}
	_, err := svc.CreateContactInfo(ctx, req)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	req.Latitude = decimal.NewNullDecimal(decimal.RequireFromString("0.347612"))
	req.Longitude = decimal.NewNullDecimal(decimal.RequireFromString("32.582520"))
	info, err := svc.CreateContactInfo(ctx, req)
	require.NoError(t, err)
	assert.True(t, info.Latitude.Valid)

	_, err = svc.CreateContactInfo(ctx, req)
	assert.True(t, apperror.IsConflict(err))
	assert.True(t, apperror.IsForbidden(svc.DeleteContactInfo(ctx, info.ID)))
}

// ===== HERO SLIDES =====

func TestHeroSlides_DefaultsAndVisibility(t *testing.T) {
	svc := NewCoreService(newMemoryRepo())
	ctx := context.Background()

	inactive := false
	slide, err := svc.CreateHeroSlide(ctx, &core.HeroSlideRequest{
		Title:    "Welcome",
		Image:    "hero/abc/original.jpg",
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, core.DefaultButton1Style, slide.Button1Style)
	assert.Equal(t, core.DefaultButton2Style, slide.Button2Style)

	_, err = svc.GetHeroSlide(ctx, slide.ID)
	assert.True(t, apperror.IsNotFound(err))

	page, err := svc.ListHeroSlides(ctx, query.ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	updated, err := svc.UpdateHeroSlide(ctx, slide.ID, &core.HeroSlideRequest{Title: "Welcome", Image: slide.Image})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)

	_, err = svc.CreateHeroSlide(ctx, &core.HeroSlideRequest{Title: "x", Image: "k", Button1Style: "neon"})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}
