package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"kuai-backend/internal/domains/uploads"
	"kuai-backend/internal/infrastructure/storage"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/media"
)

type uploadService struct {
	store     uploads.ObjectStore
	processor *storage.ImageProcessor
	newID     func() uuid.UUID
}

func NewUploadService(store uploads.ObjectStore, processor *storage.ImageProcessor) uploads.Service {
	return &uploadService{store: store, processor: processor, newID: uuid.New}
}

// Upload:
//  1. validate profile + ảnh (jpeg/png/webp, ≤ MaxSize)
//  2. lưu ảnh gốc <profile>/<uuid>/original.<ext>
//  3. lưu từng rendition <profile>/<uuid>/<name>.<ext>
//
// Lỗi giữa chừng → xóa cả folder để không còn object mồ côi.
func (s *uploadService) Upload(ctx context.Context, profileName string, data []byte) (*uploads.Result, error) {
	profile, ok := storage.LookupProfile(profileName)
	if !ok {
		return nil, apperror.NewValidation(
			fmt.Sprintf("profile must be one of %s", strings.Join(storage.ProfileNames(), ", ")), nil)
	}

	format, err := s.processor.ValidateImage(data)
	if err != nil {
		return nil, apperror.NewValidation(err.Error(), nil)
	}

	folder := path.Join(profile.Name, s.newID().String())
	result, err := s.save(ctx, folder, profile, format, data)
	if err != nil {
		if rmErr := s.store.RemoveFolder(ctx, folder+"/"); rmErr != nil {
			log.Warn().Err(rmErr).Str("folder", folder).Msg("[MEDIA] Cleanup after failed upload failed")
		}
		return nil, err
	}

	log.Info().Str("profile", profile.Name).Str("path", result.Path).Int("variants", len(result.Variants)).Msg("[MEDIA] Uploaded")
	return result, nil
}

func (s *uploadService) save(ctx context.Context, folder string, profile storage.Profile, format string, data []byte) (*uploads.Result, error) {
	original := storage.EncodedImage{Data: data, ContentType: "image/" + format, Ext: extFor(format)}
	if processed, ok, err := s.processor.ProcessOriginal(data, profile); err != nil {
		return nil, apperror.NewValidation(err.Error(), nil)
	} else if ok {
		original = processed
	}

	key, err := s.store.Put(ctx, path.Join(folder, "original."+original.Ext), original.Data, original.ContentType)
	if err != nil {
		return nil, err
	}

	renditions, err := s.processor.Render(data, profile)
	if err != nil {
		return nil, apperror.NewValidation(err.Error(), nil)
	}

	variants := media.Variants{}
	for name, enc := range renditions {
		vKey, err := s.store.Put(ctx, path.Join(folder, name+"."+enc.Ext), enc.Data, enc.ContentType)
		if err != nil {
			return nil, err
		}
		variants[name] = vKey
	}

	return &uploads.Result{Profile: profile.Name, Path: key, Variants: variants}, nil
}

func extFor(format string) string {
	if format == "jpeg" {
		return "jpg"
	}
	return format
}

// Open stream object theo key; key có ".." hoặc rỗng coi như không tồn tại
func (s *uploadService) Open(ctx context.Context, key string) (io.ReadCloser, *storage.ObjectInfo, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" || strings.Contains(key, "..") {
		return nil, nil, apperror.NewNotFound("File not found.")
	}

	rc, info, err := s.store.Open(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, apperror.NewNotFound("File not found.")
		}
		return nil, nil, err
	}
	return rc, info, nil
}
