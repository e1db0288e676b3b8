package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Kind phân loại lỗi nghiệp vụ, mỗi kind map sang đúng một HTTP status
type Kind string

const (
	KindConflict     Kind = "conflict"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindRateLimited  Kind = "rate_limited"
)

// Error codes
const (
	CodeConflict           = "CONFLICT"
	CodeSingletonExists    = "SINGLETON_EXISTS"
	CodeSlugTaken          = "SLUG_TAKEN"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeNotConfigured      = "NOT_CONFIGURED"
	CodeValidation         = "VALIDATION_ERROR"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeTooManyAttempts    = "TOO_MANY_ATTEMPTS"
)

// AppError là lỗi terminal trả về cho client, không retry
type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus trả về status code tương ứng với kind
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindConflict:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// =====================================================
// CONSTRUCTORS
// =====================================================

func NewConflict(code, message string, err error) *AppError {
	return &AppError{Kind: KindConflict, Code: code, Message: message, Err: err}
}

// NewSlugTaken: slug trùng là conflict cứng, không tự thêm hậu tố
func NewSlugTaken(slug string, err error) *AppError {
	return NewConflict(CodeSlugTaken, fmt.Sprintf("slug %q already exists", slug), err)
}

func NewForbidden(message string) *AppError {
	return &AppError{Kind: KindForbidden, Code: CodeForbidden, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Code: CodeNotFound, Message: message}
}

// NewNotConfigured dùng cho singleton chưa có row nào
func NewNotConfigured(message string) *AppError {
	return &AppError{Kind: KindNotFound, Code: CodeNotConfigured, Message: message}
}

func NewValidation(message string, err error) *AppError {
	return &AppError{Kind: KindValidation, Code: CodeValidation, Message: message, Err: err}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Code: CodeUnauthorized, Message: message}
}

// NewInvalidCredentials không phân biệt email sai hay password sai
func NewInvalidCredentials() *AppError {
	return &AppError{Kind: KindUnauthorized, Code: CodeInvalidCredentials, Message: "Invalid email or password."}
}

func NewTooManyAttempts(retryAfter time.Duration) *AppError {
	return &AppError{
		Kind:    KindRateLimited,
		Code:    CodeTooManyAttempts,
		Message: fmt.Sprintf("Too many failed login attempts. Try again in %d minutes.", int(retryAfter.Minutes())),
	}
}

// =====================================================
// HELPERS
// =====================================================

// As unwraps err thành *AppError nếu có
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsKind(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}

func IsNotFound(err error) bool  { return IsKind(err, KindNotFound) }
func IsConflict(err error) bool  { return IsKind(err, KindConflict) }
func IsForbidden(err error) bool { return IsKind(err, KindForbidden) }

// HTTPStatus map bất kỳ error nào sang status code, lỗi lạ → 500
func HTTPStatus(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.HTTPStatus()
	}
	return http.StatusInternalServerError
}
