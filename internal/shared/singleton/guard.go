package singleton

import (
	"context"
	"errors"
	"fmt"

	"kuai-backend/internal/infrastructure/database"
	"kuai-backend/internal/shared/apperror"
)

// Kind là loại record chỉ được tồn tại tối đa một row
type Kind string

const (
	SiteSettings    Kind = "site_settings"
	ContactInfo     Kind = "contact_info"
	About           Kind = "about"
	IndabaxSettings Kind = "indabax_settings"
)

// registry cố định lúc compile, không thay đổi khi runtime
var registry = map[Kind]string{
	SiteSettings:    "Site settings",
	ContactInfo:     "Contact information",
	About:           "About page",
	IndabaxSettings: "Indabax settings",
}

// ErrDuplicate được repository trả về khi insert đụng unique constraint singleton_key.
// Guard chuyển nó thành ConflictError.
var ErrDuplicate = errors.New("duplicate singleton row")

// InsertError bọc lỗi insert của repository; unique violation trên constraint
// singleton_key của bảng thành ErrDuplicate.
func InsertError(err error, constraint, op string) error {
	if database.IsUniqueOn(err, constraint) {
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// IsGuarded cho biết kind có nằm trong registry không
func IsGuarded(kind Kind) bool {
	_, ok := registry[kind]
	return ok
}

// Kinds trả về danh sách kind đã đăng ký
func Kinds() []Kind {
	return []Kind{SiteSettings, ContactInfo, About, IndabaxSettings}
}

// ExistsFunc kiểm tra đã có row nào của kind chưa
type ExistsFunc func(ctx context.Context) (bool, error)

// Guard chặn create thứ hai và mọi delete của một singleton kind.
// Stateless: mỗi lần write đều hỏi lại storage.
type Guard struct {
	kind   Kind
	exists ExistsFunc
}

func NewGuard(kind Kind, exists ExistsFunc) *Guard {
	if !IsGuarded(kind) {
		panic(fmt.Sprintf("singleton: unknown kind %q", kind))
	}
	return &Guard{kind: kind, exists: exists}
}

func (g *Guard) Kind() Kind {
	return g.kind
}

// CanCreate = chưa có row nào
func (g *Guard) CanCreate(ctx context.Context) (bool, error) {
	exists, err := g.exists(ctx)
	if err != nil {
		return false, fmt.Errorf("check %s exists: %w", g.kind, err)
	}
	return !exists, nil
}

// CanDelete luôn false với kind đã đăng ký
func (g *Guard) CanDelete() bool {
	return !IsGuarded(g.kind)
}

// Create chạy insert nếu chưa có row.
// Check trước chỉ để reject nhanh; race giữa hai request do unique constraint ở DB chặn,
// insert thua race trả ErrDuplicate và cũng thành Conflict.
func (g *Guard) Create(ctx context.Context, insert func(ctx context.Context) error) error {
	ok, err := g.CanCreate(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return g.conflict(nil)
	}

	if err := insert(ctx); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return g.conflict(err)
		}
		return err
	}
	return nil
}

// Delete luôn bị từ chối
func (g *Guard) Delete() error {
	return apperror.NewForbidden(fmt.Sprintf("%s cannot be deleted", registry[g.kind]))
}

// NotConfigured là lỗi 404 khi đọc "current" mà chưa có row
func (g *Guard) NotConfigured(message string) error {
	if message == "" {
		message = fmt.Sprintf("%s not configured yet.", registry[g.kind])
	}
	return apperror.NewNotConfigured(message)
}

func (g *Guard) conflict(cause error) error {
	return apperror.NewConflict(apperror.CodeSingletonExists, "singleton already initialized", cause)
}
