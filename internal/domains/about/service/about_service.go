package service

import (
	"context"

	"github.com/google/uuid"

	"kuai-backend/internal/domains/about"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/singleton"
)

type aboutService struct {
	repo  about.Repository
	guard *singleton.Guard
}

func NewAboutService(repo about.Repository) about.Service {
	return &aboutService{
		repo:  repo,
		guard: singleton.NewGuard(singleton.About, repo.Exists),
	}
}

func (s *aboutService) List(ctx context.Context, p query.ListParams) (query.Page[*about.About], error) {
	items, total, err := s.repo.List(ctx, p)
	if err != nil {
		return query.Page[*about.About]{}, err
	}
	return query.NewPage(items, total, p), nil
}

func (s *aboutService) Current(ctx context.Context) (*about.About, error) {
	a, err := s.repo.Current(ctx)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, s.guard.NotConfigured("About page not configured yet.")
	}
	return a, nil
}

func (s *aboutService) GetByID(ctx context.Context, id uuid.UUID) (*about.About, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *aboutService) Create(ctx context.Context, req *about.Request) (*about.About, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	a := &about.About{}
	req.Apply(a)
	if err := s.guard.Create(ctx, func(ctx context.Context) error { return s.repo.Insert(ctx, a) }); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *aboutService) Update(ctx context.Context, id uuid.UUID, req *about.Request) (*about.About, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(a)
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *aboutService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.guard.Delete()
}
