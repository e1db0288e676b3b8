package service

import (
	"context"

	"github.com/google/uuid"

	"kuai-backend/internal/domains/partners"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/query"
)

type partnersService struct {
	repo partners.Repository
}

func NewPartnersService(repo partners.Repository) partners.Service {
	return &partnersService{repo: repo}
}

func (s *partnersService) ListCategories(ctx context.Context, p query.ListParams) (query.Page[*partners.Category], error) {
	items, total, err := s.repo.ListCategories(ctx, p)
	if err != nil {
		return query.Page[*partners.Category]{}, err
	}
	return query.NewPage(items, total, p), nil
}

func (s *partnersService) CreateCategory(ctx context.Context, req *partners.CategoryRequest) (*partners.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}
	c := &partners.Category{}
	req.Apply(c)
	if err := s.repo.InsertCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *partnersService) ListPartners(ctx context.Context, p query.ListParams, f partners.PartnerFilter) (query.Page[*partners.Partner], error) {
	items, total, err := s.repo.ListPartners(ctx, p, f)
	if err != nil {
		return query.Page[*partners.Partner]{}, err
	}
	return query.NewPage(items, total, p), nil
}

func (s *partnersService) Featured(ctx context.Context) ([]*partners.Partner, error) {
	return s.repo.ListFeatured(ctx)
}

// ByCategory giữ thứ tự category (order, name), bỏ category không có partner active
func (s *partnersService) ByCategory(ctx context.Context) ([]partners.CategoryGroup, error) {
	categories, err := s.repo.ListActiveCategories(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.repo.ListActivePartners(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[uuid.UUID][]*partners.Partner)
	for _, p := range all {
		if p.CategoryID != nil {
			byCategory[*p.CategoryID] = append(byCategory[*p.CategoryID], p)
		}
	}

	groups := make([]partners.CategoryGroup, 0, len(categories))
	for _, c := range categories {
		if ps := byCategory[c.ID]; len(ps) > 0 {
			groups = append(groups, partners.CategoryGroup{Category: c, Partners: ps})
		}
	}
	return groups, nil
}

func (s *partnersService) GetPartner(ctx context.Context, id uuid.UUID) (*partners.Partner, error) {
	return s.repo.GetPartnerByID(ctx, id, true)
}

func (s *partnersService) CreatePartner(ctx context.Context, req *partners.PartnerRequest) (*partners.Partner, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}
	p := &partners.Partner{}
	req.Apply(p)
	if err := s.repo.InsertPartner(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *partnersService) UpdatePartner(ctx context.Context, id uuid.UUID, req *partners.PartnerRequest) (*partners.Partner, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}
	p, err := s.repo.GetPartnerByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	req.Apply(p)
	if err := s.repo.UpdatePartner(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *partnersService) DeletePartner(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeletePartner(ctx, id)
}
