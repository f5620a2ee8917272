package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-recipe-api/pkg/result"
)

type APIResponse[T any] struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      T           `json:"data,omitempty"`
	Meta      interface{} `json:"meta,omitempty"`
	Error     interface{} `json:"error,omitempty"`
}

// ErrorBody is the error member of a failed response.
type ErrorBody struct {
	Type    string            `json:"type"`
	Details map[string]string `json:"details,omitempty"`
}

func Success[T any](ctx *gin.Context, status int, data T, message string, meta interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusOK
	}
	return APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   true,
		Message:   message,
		Data:      data,
		Meta:      meta,
	}
}

func Error[T any](ctx *gin.Context, status int, message string, err interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	return APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   false,
		Message:   message,
		Error:     err,
	}
}

// StatusFor maps a failure kind to its HTTP status.
func StatusFor(kind result.Kind) int {
	switch kind {
	case result.KindNone:
		return http.StatusOK
	case result.KindValidation:
		return http.StatusBadRequest
	case result.KindNotFound:
		return http.StatusNotFound
	case result.KindAuthorization:
		return http.StatusForbidden
	case result.KindConflict:
		return http.StatusConflict
	case result.KindAuthentication:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// JSONError writes a failed envelope and aborts the chain.
func JSONError(c *gin.Context, status int, message string, body ErrorBody) {
	c.AbortWithStatusJSON(status, Error[any](c, status, message, body))
}

// FromResult writes r as the response: the value with okStatus on success,
// otherwise the failure message with the status matching its kind.
func FromResult[T any](c *gin.Context, r result.Result[T], okStatus int, message string) {
	if r.IsFailure() {
		status := StatusFor(r.Kind())
		JSONError(c, status, r.Message(), ErrorBody{Type: r.Kind().String()})
		return
	}
	if okStatus == 0 {
		okStatus = http.StatusOK
	}
	c.JSON(okStatus, Success(c, okStatus, r.Value(), message, nil))
}
