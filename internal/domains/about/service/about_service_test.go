package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuai-backend/internal/domains/about"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/singleton"
)

type memoryRepo struct {
	rows []*about.About
}

func (m *memoryRepo) Exists(ctx context.Context) (bool, error) { return len(m.rows) > 0, nil }

func (m *memoryRepo) Current(ctx context.Context) (*about.About, error) {
	if len(m.rows) == 0 {
		return nil, nil
	}
	return m.rows[0], nil
}

func (m *memoryRepo) List(ctx context.Context, p query.ListParams) ([]*about.About, int, error) {
	return m.rows, len(m.rows), nil
}

func (m *memoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*about.About, error) {
	for _, a := range m.rows {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, apperror.NewNotFound("About page not found.")
}

func (m *memoryRepo) Insert(ctx context.Context, a *about.About) error {
	if len(m.rows) > 0 {
		return singleton.ErrDuplicate
	}
	a.ID = uuid.New()
	m.rows = append(m.rows, a)
	return nil
}

func (m *memoryRepo) Update(ctx context.Context, a *about.About) error { return nil }

func validRequest() *about.Request {
	return &about.Request{
		Content:             "We build AI at Kyambogo.",
		WhoWeAreDescription: "Students.",
		WhyExistDescription: "Because.",
		Mission:             "Empower.",
		Vision:              "Africa-wide AI.",
		CTADescription:      "Join us.",
	}
}

func TestAbout_CurrentNotConfigured(t *testing.T) {
	svc := NewAboutService(&memoryRepo{})

	_, err := svc.Current(context.Background())
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, "About page not configured yet.", appErr.Message)
	assert.True(t, apperror.IsNotFound(err))
}

func TestAbout_CreateFillsDefaultsAndGuards(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewAboutService(repo)
	ctx := context.Background()

	a, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, "About KUAI Club", a.Title)
	assert.Equal(t, about.DefaultHeroStats, a.HeroStats)
	assert.Len(t, a.ImpactStats, about.StatCount)
	assert.Equal(t, "/#projects-section", a.CTASecondaryLink)

	_, err = svc.Create(ctx, validRequest())
	assert.True(t, apperror.IsConflict(err))

	assert.True(t, apperror.IsForbidden(svc.Delete(ctx, a.ID)))
	assert.Len(t, repo.rows, 1)
}

func TestAbout_ValidateStats(t *testing.T) {
	svc := NewAboutService(&memoryRepo{})

	req := validRequest()
	req.HeroStats = []about.Stat{{Value: "1", Label: "a"}, {Value: "2", Label: "b"}, {Value: "3", Label: "c"}, {Value: "4", Label: "d"}, {Value: "5", Label: "e"}}
	_, err := svc.Create(context.Background(), req)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	req.HeroStats = []about.Stat{{Value: "", Label: "Students"}}
	_, err = svc.Create(context.Background(), req)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}
