package sitesearch

import (
	"context"

	"kuai-backend/internal/infrastructure/search"
)

const (
	DefaultLimit = 10
	MaxLimit     = 50
)

// Source là domain service có record public cần index
type Source interface {
	SearchDocuments(ctx context.Context) ([]search.Document, error)
}

// Result là payload của GET /api/search
type Result struct {
	Query   string       `json:"query"`
	Count   int          `json:"count"`
	Results []search.Hit `json:"results"`
}

type Service interface {
	Search(ctx context.Context, q string, kinds []string, limit int) (*Result, error)
	// Rebuild gom document từ mọi source rồi swap index, trả số document
	Rebuild(ctx context.Context) (int, error)
}
