package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuai-backend/internal/domains/projects"
	"kuai-backend/internal/infrastructure/search"
	"kuai-backend/internal/shared/apperror"
)

type memoryRepo struct {
	projects.Repository
	rows []*projects.Project
}

func (m *memoryRepo) ListByStatus(ctx context.Context, status projects.Status, limit int) ([]*projects.Project, error) {
	var out []*projects.Project
	for _, p := range m.rows {
		if p.IsPublished && p.Status == status && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memoryRepo) InsertProject(ctx context.Context, p *projects.Project) error {
	for _, existing := range m.rows {
		if existing.Slug == p.Slug {
			return apperror.NewSlugTaken(p.Slug, nil)
		}
	}
	p.ID = uuid.New()
	m.rows = append(m.rows, p)
	return nil
}

func (m *memoryRepo) GetProjectByID(ctx context.Context, id uuid.UUID) (*projects.Project, error) {
	for _, p := range m.rows {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound("Project not found.")
}

func (m *memoryRepo) UpdateProject(ctx context.Context, p *projects.Project) error {
	for i, existing := range m.rows {
		if existing.ID == p.ID {
			m.rows[i] = p
			return nil
		}
	}
	return apperror.NewNotFound("Project not found.")
}

type recordingIndexer struct {
	upserts []search.Document
	removed []string
}

func (r *recordingIndexer) Upsert(doc search.Document) error {
	r.upserts = append(r.upserts, doc)
	return nil
}

func (r *recordingIndexer) Remove(kind, id string) error {
	r.removed = append(r.removed, search.DocID(kind, id))
	return nil
}

func validRequest() *projects.ProjectRequest {
	return &projects.ProjectRequest{
		Title:        "Crop Disease Detector",
		Description:  "A mobile model that spots cassava leaf disease.",
		Image:        "card/1/original.jpg",
		Technologies: []string{"PyTorch", " ", "TFLite"},
	}
}

func TestCreateProject_Defaults(t *testing.T) {
	repo := &memoryRepo{}
	ix := &recordingIndexer{}
	svc := NewProjectsService(repo, ix)

	p, err := svc.CreateProject(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "crop-disease-detector", p.Slug)
	assert.Equal(t, projects.StatusInProgress, p.Status)
	assert.Equal(t, "A mobile model that spots cassava leaf disease.", p.ShortDescription)
	assert.Equal(t, []string{"PyTorch", "TFLite"}, p.Technologies)
	assert.Equal(t, []string{}, p.TeamMembers)
	require.Len(t, ix.upserts, 1)
	assert.Equal(t, search.KindProject, ix.upserts[0].Kind)
}

func TestCreateProject_ShortDescriptionTruncated(t *testing.T) {
	svc := NewProjectsService(&memoryRepo{}, search.NopIndexer{})

	req := validRequest()
	req.Description = strings.Repeat("a", 250)
	p, err := svc.CreateProject(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, p.ShortDescription, projects.ShortDescriptionMax)
	assert.Equal(t, strings.Repeat("a", 197)+"...", p.ShortDescription)
}

func TestUpdateProject_KeepsSlug(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewProjectsService(repo, search.NopIndexer{})

	p, err := svc.CreateProject(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Title = "Cassava Doctor"
	req.IsPublished = new(bool)
	ix := &recordingIndexer{}
	svc = NewProjectsService(repo, ix)

	updated, err := svc.UpdateProject(context.Background(), p.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Cassava Doctor", updated.Title)
	assert.Equal(t, "crop-disease-detector", updated.Slug)
	// unpublish → gỡ khỏi index
	assert.Equal(t, []string{"project:" + p.ID.String()}, ix.removed)
}

func TestCreateProject_SlugCollision(t *testing.T) {
	svc := NewProjectsService(&memoryRepo{}, search.NopIndexer{})

	_, err := svc.CreateProject(context.Background(), validRequest())
	require.NoError(t, err)
	_, err = svc.CreateProject(context.Background(), validRequest())
	assert.True(t, apperror.IsConflict(err))
}

func TestCreateProject_Validation(t *testing.T) {
	svc := NewProjectsService(&memoryRepo{}, search.NopIndexer{})

	req := validRequest()
	req.Status = "abandoned"
	_, err := svc.CreateProject(context.Background(), req)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	req = validRequest()
	req.GithubURL = "not a url"
	_, err = svc.CreateProject(context.Background(), req)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestByStatus_GroupsAndCaps(t *testing.T) {
	repo := &memoryRepo{}
	for i := 0; i < 12; i++ {
		repo.rows = append(repo.rows, &projects.Project{ID: uuid.New(), Status: projects.StatusCompleted, IsPublished: true})
	}
	repo.rows = append(repo.rows,
		&projects.Project{ID: uuid.New(), Status: projects.StatusPlanning, IsPublished: true},
		&projects.Project{ID: uuid.New(), Status: projects.StatusOnHold, IsPublished: true},
	)
	svc := NewProjectsService(repo, search.NopIndexer{})

	groups, err := svc.ByStatus(context.Background())
	require.NoError(t, err)

	assert.Len(t, groups, 3)
	assert.Len(t, groups[projects.StatusCompleted], projects.ByStatusLimit)
	assert.Len(t, groups[projects.StatusPlanning], 1)
	assert.Empty(t, groups[projects.StatusInProgress])
	_, hasOnHold := groups[projects.StatusOnHold]
	assert.False(t, hasOnHold)
}
