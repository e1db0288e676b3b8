package uploads

import (
	"context"
	"io"

	"kuai-backend/internal/infrastructure/storage"
	"kuai-backend/internal/shared/media"
)

// Result là key ảnh gốc + key các rendition, admin gắn thẳng vào field media của record
type Result struct {
	Profile  string         `json:"profile"`
	Path     string         `json:"path"`
	Variants media.Variants `json:"variants"`
}

// ObjectStore là phần MinIOStorage mà upload/stream cần
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Open(ctx context.Context, key string) (io.ReadCloser, *storage.ObjectInfo, error)
	RemoveFolder(ctx context.Context, prefix string) error
}

type Service interface {
	Upload(ctx context.Context, profile string, data []byte) (*Result, error)
	Open(ctx context.Context, key string) (io.ReadCloser, *storage.ObjectInfo, error)
}
