package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuai-backend/internal/domains/partners"
	"kuai-backend/internal/shared/apperror"
)

type memoryRepo struct {
	partners.Repository
	categories []*partners.Category
	partners   []*partners.Partner
	inserted   []*partners.Category
}

func (m *memoryRepo) ListActiveCategories(ctx context.Context) ([]*partners.Category, error) {
	return m.categories, nil
}

func (m *memoryRepo) ListActivePartners(ctx context.Context) ([]*partners.Partner, error) {
	return m.partners, nil
}

func (m *memoryRepo) InsertCategory(ctx context.Context, c *partners.Category) error {
	c.ID = uuid.New()
	m.inserted = append(m.inserted, c)
	return nil
}

func TestByCategory_KeepsCategoryOrder(t *testing.T) {
	gold := &partners.Category{ID: uuid.New(), Name: "Gold", CategoryType: partners.TypeGold}
	academic := &partners.Category{ID: uuid.New(), Name: "Academic", CategoryType: partners.TypeAcademic}
	empty := &partners.Category{ID: uuid.New(), Name: "Silver", CategoryType: partners.TypeSilver}

	repo := &memoryRepo{
		categories: []*partners.Category{gold, empty, academic},
		partners: []*partners.Partner{
			{ID: uuid.New(), Name: "Kabale University", CategoryID: &academic.ID},
			{ID: uuid.New(), Name: "Acme AI", CategoryID: &gold.ID},
			{ID: uuid.New(), Name: "Orphan"},
			{ID: uuid.New(), Name: "Beta Labs", CategoryID: &gold.ID},
		},
	}

	groups, err := NewPartnersService(repo).ByCategory(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "Gold", groups[0].Category.Name)
	require.Len(t, groups[0].Partners, 2)
	assert.Equal(t, "Acme AI", groups[0].Partners[0].Name)
	assert.Equal(t, "Beta Labs", groups[0].Partners[1].Name)
	assert.Equal(t, "Academic", groups[1].Category.Name)
}

func TestCreateCategory_TypeDefaultAndValidation(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewPartnersService(repo)

	c, err := svc.CreateCategory(context.Background(), &partners.CategoryRequest{Name: "Friends"})
	require.NoError(t, err)
	assert.Equal(t, partners.TypeCommunity, c.CategoryType)
	assert.True(t, c.IsActive)

	_, err = svc.CreateCategory(context.Background(), &partners.CategoryRequest{Name: "X", CategoryType: "diamond"})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	assert.Len(t, repo.inserted, 1)
}
