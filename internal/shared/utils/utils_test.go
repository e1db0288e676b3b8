package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuai-backend/internal/shared/apperror"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 200, "..."))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10, "..."))
	assert.Len(t, []rune(Truncate(string(make([]rune, 500)), 200, "...")), 200)
}

func TestParamUUID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	id := uuid.New()
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	got, err := ParamUUID(c, "id")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	c.Params = gin.Params{{Key: "id", Value: "nope"}}
	_, err = ParamUUID(c, "id")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, "Member", OrDefault("  ", "Member"))
	assert.Equal(t, "Lead", OrDefault("Lead", "Member"))
}
