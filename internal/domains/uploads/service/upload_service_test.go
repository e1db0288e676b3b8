package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuai-backend/internal/infrastructure/storage"
	"kuai-backend/internal/shared/apperror"
)

type memoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	failOn  string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memoryStore) Put(_ context.Context, key string, data []byte, contentType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn != "" && strings.Contains(key, m.failOn) {
		return "", errors.New("bucket unavailable")
	}
	m.objects[key] = data
	m.types[key] = contentType
	return key, nil
}

func (m *memoryStore) Open(_ context.Context, key string) (io.ReadCloser, *storage.ObjectInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[key]
	if !ok {
		return nil, nil, storage.ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), &storage.ObjectInfo{Key: key, Size: int64(len(data)), ContentType: m.types[key]}, nil
}

func (m *memoryStore) RemoveFolder(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.objects {
		if strings.HasPrefix(k, prefix) {
			delete(m.objects, k)
		}
	}
	return nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

var fixedID = uuid.MustParse("6f1c2a9e-3b7d-4c1a-9f0e-2d5b8a7c4e10")

func newTestService(store *memoryStore) *uploadService {
	return &uploadService{
		store:     store,
		processor: storage.NewImageProcessor(5),
		newID:     func() uuid.UUID { return fixedID },
	}
}

func TestUpload_StoresOriginalAndRenditions(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store)

	res, err := svc.Upload(context.Background(), "hero", pngBytes(t, 64, 48))
	require.NoError(t, err)

	prefix := "hero/" + fixedID.String() + "/"
	assert.Equal(t, prefix+"original.png", res.Path)
	assert.Len(t, res.Variants, 3)
	assert.Equal(t, prefix+"desktop.png", res.Variants["desktop"])
	assert.Contains(t, store.objects, prefix+"mobile.png")
	assert.Equal(t, "image/png", store.types[prefix+"original.png"])
}

func TestUpload_ProcessedOriginal(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store)

	res, err := svc.Upload(context.Background(), "favicon", pngBytes(t, 64, 64))
	require.NoError(t, err)
	assert.Empty(t, res.Variants)

	img, _, err := image.Decode(bytes.NewReader(store.objects[res.Path]))
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
}

func TestUpload_UnknownProfile(t *testing.T) {
	svc := newTestService(newMemoryStore())

	_, err := svc.Upload(context.Background(), "banner", pngBytes(t, 8, 8))
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	assert.Contains(t, err.Error(), "hero")
}

func TestUpload_RejectsNonImage(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store)

	_, err := svc.Upload(context.Background(), "card", []byte("%PDF-1.4 not an image"))
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	assert.Empty(t, store.objects)
}

func TestUpload_CleansUpOnFailure(t *testing.T) {
	store := newMemoryStore()
	store.failOn = "thumbnail"
	svc := newTestService(store)

	_, err := svc.Upload(context.Background(), "card", pngBytes(t, 40, 30))
	require.Error(t, err)
	assert.Empty(t, store.objects)
}

func TestOpen(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store)
	_, _ = store.Put(context.Background(), "plain/a/original.png", []byte("x"), "image/png")

	rc, info, err := svc.Open(context.Background(), "/plain/a/original.png")
	require.NoError(t, err)
	defer rc.Close()
	assert.Equal(t, int64(1), info.Size)

	_, _, err = svc.Open(context.Background(), "plain/missing.png")
	assert.True(t, apperror.IsNotFound(err))

	_, _, err = svc.Open(context.Background(), "../etc/passwd")
	assert.True(t, apperror.IsNotFound(err))
}
