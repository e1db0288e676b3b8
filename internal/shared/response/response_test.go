package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuai-backend/internal/shared/apperror"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func recordError(err error) (*httptest.ResponseRecorder, Response) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/test", nil)

	FromError(c, err)

	var body Response
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestFromError_AppError(t *testing.T) {
	w, body := recordError(apperror.NewConflict(apperror.CodeSingletonExists, "singleton already initialized", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, apperror.CodeSingletonExists, body.Error.Code)
	assert.Equal(t, "singleton already initialized", body.Error.Message)
}

func TestFromError_UnknownErrorHidesDetails(t *testing.T) {
	w, body := recordError(errors.New("pq: relation does not exist"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "Internal server error", body.Error.Message)
	assert.NotContains(t, w.Body.String(), "relation")
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(2, 10, 25)
	assert.Equal(t, 3, meta.TotalPages)

	assert.Equal(t, 0, NewMeta(1, 10, 0).TotalPages)
}
