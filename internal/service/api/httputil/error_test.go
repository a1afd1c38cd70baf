package httputil

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

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		err            error
		expectedStatus int
		expectedJSON   string
		expectedLevel  logrus.Level
	}{
		{
			name:           "라우터 404는 한국어 메시지로 통일",
			method:         http.MethodGet,
			err:            echo.ErrNotFound,
			expectedStatus: http.StatusNotFound,
			expectedJSON:   `{"result_code":404,"message":"요청한 리소스를 찾을 수 없습니다"}`,
			expectedLevel:  logrus.WarnLevel,
		},
		{
			name:           "ErrorResponse를 담은 HTTPError",
			method:         http.MethodPost,
			err:            NewBadRequestError("정렬 기준이 올바르지 않습니다"),
			expectedStatus: http.StatusBadRequest,
			expectedJSON:   `{"result_code":400,"message":"정렬 기준이 올바르지 않습니다"}`,
			expectedLevel:  logrus.WarnLevel,
		},
		{
			name:           "InvalidInput AppError는 400과 메시지 그대로",
			method:         http.MethodPost,
			err:            apperrors.New(apperrors.InvalidInput, "Title is required"),
			expectedStatus: http.StatusBadRequest,
			expectedJSON:   `{"result_code":400,"message":"Title is required"}`,
			expectedLevel:  logrus.WarnLevel,
		},
		{
			name:           "System AppError는 500과 일반 메시지",
			method:         http.MethodGet,
			err:            apperrors.Wrap(errors.New("disk full"), apperrors.System, "저장 실패"),
			expectedStatus: http.StatusInternalServerError,
			expectedJSON:   `{"result_code":500,"message":"내부 서버 오류가 발생했습니다"}`,
			expectedLevel:  logrus.ErrorLevel,
		},
		{
			name:           "Unavailable AppError는 503",
			method:         http.MethodGet,
			err:            apperrors.New(apperrors.Unavailable, "upstream down"),
			expectedStatus: http.StatusServiceUnavailable,
			expectedJSON:   `{"result_code":503,"message":"일시적으로 요청을 처리할 수 없습니다. 잠시 후 다시 시도해주세요"}`,
			expectedLevel:  logrus.ErrorLevel,
		},
		{
			name:           "분류되지 않은 에러는 500",
			method:         http.MethodGet,
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedJSON:   `{"result_code":500,"message":"내부 서버 오류가 발생했습니다"}`,
			expectedLevel:  logrus.ErrorLevel,
		},
		{
			name:           "HEAD 요청은 본문 없이 응답",
			method:         http.MethodHead,
			err:            echo.ErrNotFound,
			expectedStatus: http.StatusNotFound,
			expectedLevel:  logrus.WarnLevel,
		},
	}

	hook := logtest.NewGlobal()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook.Reset()

			e := echo.New()
			req := httptest.NewRequest(tt.method, "/api/v1/catalog/products", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			ErrorHandler(tt.err, c)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedJSON != "" {
				assert.JSONEq(t, tt.expectedJSON, rec.Body.String())
			} else {
				assert.Empty(t, rec.Body.String())
			}

			require.NotNil(t, hook.LastEntry())
			assert.Equal(t, tt.expectedLevel, hook.LastEntry().Level)
		})
	}
}

func TestErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, c.String(http.StatusOK, "already sent"))

	ErrorHandler(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "already sent", rec.Body.String())
}

func TestStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		errType  apperrors.ErrorType
		expected int
	}{
		{apperrors.InvalidInput, http.StatusBadRequest},
		{apperrors.ParsingFailed, http.StatusBadRequest},
		{apperrors.Unauthorized, http.StatusUnauthorized},
		{apperrors.Forbidden, http.StatusForbidden},
		{apperrors.NotFound, http.StatusNotFound},
		{apperrors.Conflict, http.StatusConflict},
		{apperrors.Timeout, http.StatusGatewayTimeout},
		{apperrors.Unavailable, http.StatusServiceUnavailable},
		{apperrors.ExecutionFailed, http.StatusServiceUnavailable},
		{apperrors.System, http.StatusInternalServerError},
		{apperrors.Internal, http.StatusInternalServerError},
		{apperrors.Unknown, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.errType.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, StatusCode(tt.errType))
		})
	}
}
