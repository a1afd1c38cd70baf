package httputil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/catalog-server/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"BadRequest", NewBadRequestError("msg"), http.StatusBadRequest},
		{"NotFound", NewNotFoundError("msg"), http.StatusNotFound},
		{"UnsupportedMediaType", NewUnsupportedMediaTypeError("msg"), http.StatusUnsupportedMediaType},
		{"TooManyRequests", NewTooManyRequestsError("msg"), http.StatusTooManyRequests},
		{"InternalServer", NewInternalServerError("msg"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var he *echo.HTTPError
			require.True(t, errors.As(tt.err, &he))
			assert.Equal(t, tt.expected, he.Code)
			assert.Equal(t, response.ErrorResponse{ResultCode: tt.expected, Message: "msg"}, he.Message)
		})
	}
}

func TestSuccess(t *testing.T) {
	t.Parallel()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)

	require.NoError(t, Success(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"result_code":0,"message":"성공"}`, rec.Body.String())
}
