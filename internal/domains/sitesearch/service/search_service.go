package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"kuai-backend/internal/domains/sitesearch"
	"kuai-backend/internal/infrastructure/search"
	"kuai-backend/internal/shared/apperror"
)

var validKinds = map[string]bool{
	search.KindNews:         true,
	search.KindEvent:        true,
	search.KindProject:      true,
	search.KindIndabaxEvent: true,
}

// Engine là phần của *search.Index mà service cần
type Engine interface {
	Search(q string, kinds []string, limit int) ([]search.Hit, error)
	Rebuild(docs []search.Document) error
}

type searchService struct {
	engine  Engine
	sources []sitesearch.Source
}

func NewSearchService(engine Engine, sources ...sitesearch.Source) sitesearch.Service {
	return &searchService{engine: engine, sources: sources}
}

func (s *searchService) Search(ctx context.Context, q string, kinds []string, limit int) (*sitesearch.Result, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return &sitesearch.Result{Results: []search.Hit{}}, nil
	}
	for _, k := range kinds {
		if !validKinds[k] {
			return nil, apperror.NewValidation(fmt.Sprintf("unknown kind %q", k), nil)
		}
	}
	switch {
	case limit <= 0:
		limit = sitesearch.DefaultLimit
	case limit > sitesearch.MaxLimit:
		limit = sitesearch.MaxLimit
	}

	hits, err := s.engine.Search(q, kinds, limit)
	if err != nil {
		return nil, err
	}
	return &sitesearch.Result{Query: q, Count: len(hits), Results: hits}, nil
}

func (s *searchService) Rebuild(ctx context.Context) (int, error) {
	start := time.Now()

	var docs []search.Document
	for _, src := range s.sources {
		batch, err := src.SearchDocuments(ctx)
		if err != nil {
			return 0, fmt.Errorf("collect search documents: %w", err)
		}
		docs = append(docs, batch...)
	}

	if err := s.engine.Rebuild(docs); err != nil {
		return 0, err
	}

	log.Info().Int("documents", len(docs)).Dur("took", time.Since(start)).Msg("[SEARCH] Index rebuilt")
	return len(docs), nil
}
