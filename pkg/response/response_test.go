package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-recipe-api/pkg/result"
)

func TestStatusFor(t *testing.T) {
	cases := map[result.Kind]int{
		result.KindValidation:     http.StatusBadRequest,
		result.KindNotFound:       http.StatusNotFound,
		result.KindAuthorization:  http.StatusForbidden,
		result.KindConflict:       http.StatusConflict,
		result.KindAuthentication: http.StatusUnauthorized,
		result.KindUnexpected:     http.StatusInternalServerError,
	}
	for kind, status := range cases {
		assert.Equal(t, status, StatusFor(kind), kind.String())
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder) APIResponse[map[string]any] {
	t.Helper()
	var body APIResponse[map[string]any]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestFromResult(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("request_id", "req-1")
		FromResult(c, result.Success(map[string]any{"id": "1"}), http.StatusCreated, "created")

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decode(t, w)
		assert.True(t, body.Success)
		assert.Equal(t, "req-1", body.RequestID)
		assert.Equal(t, "1", body.Data["id"])
	})

	t.Run("failure", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		FromResult(c, result.Conflict[map[string]any]("taken"), http.StatusOK, "")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.True(t, c.IsAborted())
		body := decode(t, w)
		assert.False(t, body.Success)
		assert.Equal(t, "taken", body.Message)
		assert.Equal(t, map[string]any{"type": "conflict"}, body.Error)
	})
}
