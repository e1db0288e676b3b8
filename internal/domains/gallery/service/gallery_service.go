package service

import (
	"context"

	"github.com/google/uuid"

	"kuai-backend/internal/domains/gallery"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/query"
)

type galleryService struct {
	repo gallery.Repository
}

func NewGalleryService(repo gallery.Repository) gallery.Service {
	return &galleryService{repo: repo}
}

// =====================================================
// CATEGORIES
// =====================================================

func (s *galleryService) ListCategories(ctx context.Context, p query.ListParams) (query.Page[*gallery.Category], error) {
	items, total, err := s.repo.ListCategories(ctx, p)
	if err != nil {
		return query.Page[*gallery.Category]{}, err
	}
	return query.NewPage(items, total, p), nil
}

func (s *galleryService) CreateCategory(ctx context.Context, req *gallery.CategoryRequest) (*gallery.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}
	c := &gallery.Category{}
	req.Apply(c)
	if err := s.repo.InsertCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// =====================================================
// IMAGES
// =====================================================

func (s *galleryService) ListImages(ctx context.Context, p query.ListParams, f gallery.ImageFilter) (query.Page[*gallery.Image], error) {
	items, total, err := s.repo.ListImages(ctx, p, f)
	if err != nil {
		return query.Page[*gallery.Image]{}, err
	}
	return query.NewPage(items, total, p), nil
}

func (s *galleryService) Featured(ctx context.Context) ([]*gallery.Image, error) {
	return s.repo.ListFeatured(ctx, gallery.FeaturedLimit)
}

func (s *galleryService) ByCategory(ctx context.Context) ([]gallery.CategoryGroup, error) {
	categories, err := s.repo.ListActiveCategories(ctx)
	if err != nil {
		return nil, err
	}

	groups := make([]gallery.CategoryGroup, 0, len(categories))
	for _, c := range categories {
		images, err := s.repo.ListByCategory(ctx, c.ID, gallery.ByCategoryLimit)
		if err != nil {
			return nil, err
		}
		if len(images) == 0 {
			continue
		}
		groups = append(groups, gallery.CategoryGroup{Category: c, Images: images})
	}
	return groups, nil
}

func (s *galleryService) GetImage(ctx context.Context, id uuid.UUID) (*gallery.Image, error) {
	return s.repo.GetImageByID(ctx, id, true)
}

func (s *galleryService) CreateImage(ctx context.Context, req *gallery.ImageRequest) (*gallery.Image, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}
	img := &gallery.Image{}
	req.Apply(img)
	if err := s.repo.InsertImage(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *galleryService) UpdateImage(ctx context.Context, id uuid.UUID, req *gallery.ImageRequest) (*gallery.Image, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}
	img, err := s.repo.GetImageByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	req.Apply(img)
	if err := s.repo.UpdateImage(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *galleryService) DeleteImage(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteImage(ctx, id)
}
