package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"kuai-backend/internal/shared/apperror"
)

var (
	apostropheRe = regexp.MustCompile(`['’]`)
	nonSlugRe    = regexp.MustCompile(`[^a-z0-9]+`)
)

// GenerateSlug chuyển title thành slug URL-safe
// "AI & Robotics Club!" → "ai-robotics-club", "AI&Robotics" → "ai-robotics"
func GenerateSlug(input string) string {
	// Step 1: Bỏ dấu, "Café Día" → "Cafe Dia"
	ascii := RemoveDiacritics(input)

	// Step 2: Lowercase, bỏ apostrophe: "Women's" → "womens"
	lower := apostropheRe.ReplaceAllString(strings.ToLower(ascii), "")

	// Step 3: Mỗi cụm whitespace/punctuation (kể cả "_") → một hyphen
	hyphenated := nonSlugRe.ReplaceAllString(lower, "-")

	// Step 4: Trim hyphen đầu/cuối
	return strings.Trim(hyphenated, "-")
}

// RemoveDiacritics tách dấu (NFD) rồi bỏ các combining mark
func RemoveDiacritics(input string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, input)
	if err != nil {
		return input
	}
	return result
}

// Sluggable là record có slug sinh từ title/name
type Sluggable interface {
	SlugSource() string
	GetSlug() string
	SetSlug(slug string)
}

// AssignIfAbsent gán slug từ title nếu slug đang rỗng.
// Slug đã có thì giữ nguyên, đổi title sau này không sinh lại slug.
// Trùng slug do unique constraint ở DB xử lý, không tự thêm hậu tố -2.
func AssignIfAbsent(r Sluggable) error {
	if strings.TrimSpace(r.GetSlug()) != "" {
		return nil
	}

	slug := GenerateSlug(r.SlugSource())
	if slug == "" {
		return apperror.NewValidation("cannot derive slug from title", nil)
	}
	r.SetSlug(slug)
	return nil
}
