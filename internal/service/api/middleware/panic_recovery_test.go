package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanicRecovery(t *testing.T) {
	tests := []struct {
		name         string
		panicPayload any
		requestID    string
	}{
		{"문자열 패닉", "something went wrong", ""},
		{"에러 패닉", errors.New("nil map write"), "req-123"},
	}

	hook := logtest.NewGlobal()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook.Reset()

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/panic", nil), rec)
			if tt.requestID != "" {
				c.Response().Header().Set(echo.HeaderXRequestID, tt.requestID)
			}

			err := PanicRecovery()(func(echo.Context) error {
				panic(tt.panicPayload)
			})(c)

			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.Internal))

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, logrus.ErrorLevel, entry.Level)
			assert.Equal(t, "PANIC RECOVERED", entry.Message)
			assert.Contains(t, entry.Data["stack"], "goroutine")
			if tt.requestID != "" {
				assert.Equal(t, tt.requestID, entry.Data["request_id"])
			} else {
				assert.NotContains(t, entry.Data, "request_id")
			}
		})
	}
}

func TestPanicRecovery_PassesThroughErrors(t *testing.T) {
	t.Parallel()

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	want := echo.ErrNotFound

	err := PanicRecovery()(func(echo.Context) error { return want })(c)

	assert.Equal(t, want, err)
}

func TestPanicRecovery_RepanicsAbortHandler(t *testing.T) {
	t.Parallel()

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		_ = PanicRecovery()(func(echo.Context) error { panic(http.ErrAbortHandler) })(c)
	})
}
