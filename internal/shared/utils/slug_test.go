package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuai-backend/internal/shared/apperror"
)

type article struct {
	Title string
	Slug  string
}

func (a *article) SlugSource() string  { return a.Title }
func (a *article) GetSlug() string     { return a.Slug }
func (a *article) SetSlug(slug string) { a.Slug = slug }

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"AI & Robotics Club!", "ai-robotics-club"},
		{"  Deep   Learning\tIndaba  ", "deep-learning-indaba"},
		{"Café Día 2024", "cafe-dia-2024"},
		{"Nguyễn Nhật Ánh", "nguyen-nhat-anh"},
		{"--already-slugged--", "already-slugged"},
		{"!!!", ""},
		{"AI&Robotics", "ai-robotics"},
		{"deep_learning.101", "deep-learning-101"},
		{"Women's Day / IWD", "womens-day-iwd"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.input))
		})
	}
}

func TestAssignIfAbsent(t *testing.T) {
	a := &article{Title: "AI & Robotics Club!"}
	require.NoError(t, AssignIfAbsent(a))
	assert.Equal(t, "ai-robotics-club", a.Slug)

	// đổi title không sinh lại slug
	a.Title = "Machine Learning Society"
	require.NoError(t, AssignIfAbsent(a))
	assert.Equal(t, "ai-robotics-club", a.Slug)
	assert.Equal(t, "Machine Learning Society", a.Title)

	custom := &article{Title: "Whatever", Slug: "hand-picked"}
	require.NoError(t, AssignIfAbsent(custom))
	assert.Equal(t, "hand-picked", custom.Slug)
}

func TestAssignIfAbsent_UnsluggableTitle(t *testing.T) {
	err := AssignIfAbsent(&article{Title: "???"})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}
