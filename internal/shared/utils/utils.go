package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kuai-backend/internal/shared/apperror"
)

// ParseStringToUUID trả uuid.Nil khi chuỗi rỗng hoặc sai format
func ParseStringToUUID(s string) uuid.UUID {
	uid, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil
	}
	return uid
}

// ParamUUID đọc path param dạng UUID, sai format → validation error (400)
func ParamUUID(c *gin.Context, name string) (uuid.UUID, error) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.NewValidation("invalid "+name+" format", nil)
	}
	return id, nil
}

// Truncate cắt s còn tối đa max rune, thêm suffix khi bị cắt.
// Kết quả (kể cả suffix) không vượt quá max rune.
func Truncate(s string, max int, suffix string) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	keep := max - utf8.RuneCountInString(suffix)
	if keep < 0 {
		keep = 0
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:keep])) + suffix
}

// OrDefault trả fallback khi s chỉ gồm khoảng trắng
func OrDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
