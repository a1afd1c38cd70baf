package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"slices"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
)

// maxBodySnippetBytes 에러 메시지에 포함할 응답 본문의 최대 길이입니다.
const maxBodySnippetBytes = 4096

// HTTPStatusError 허용되지 않은 상태 코드의 응답입니다. Cause에는 상태 코드에 따라 분류된 AppError가 들어있습니다.
type HTTPStatusError struct {
	StatusCode  int
	Status      string
	URL         string
	Header      http.Header
	BodySnippet string
	Cause       error
}

func (e *HTTPStatusError) Error() string {
	msg := fmt.Sprintf("HTTP %d (%s)", e.StatusCode, e.Status)
	if e.URL != "" {
		msg += fmt.Sprintf(" URL: %s", e.URL)
	}
	if e.BodySnippet != "" {
		msg += fmt.Sprintf(", Body: %s", e.BodySnippet)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *HTTPStatusError) Unwrap() error {
	return e.Cause
}

// statusErrorType 상태 코드를 에러 분류로 변환합니다. 재시도 여부는 이 분류로 결정됩니다.
func statusErrorType(code int) apperrors.ErrorType {
	switch code {
	case http.StatusNotFound:
		return apperrors.NotFound
	case http.StatusForbidden, http.StatusUnauthorized:
		return apperrors.Forbidden
	case http.StatusBadRequest:
		return apperrors.InvalidInput
	case http.StatusTooManyRequests, http.StatusRequestTimeout:
		return apperrors.Unavailable
	}

	if code >= 500 {
		return apperrors.Unavailable
	}
	return apperrors.ExecutionFailed
}

// CheckResponseStatus 응답 상태 코드가 허용 목록(기본: 200)에 없으면 HTTPStatusError를 반환합니다.
// 에러를 반환하는 경우 본문 앞부분을 읽어 BodySnippet에 담습니다.
func CheckResponseStatus(resp *http.Response, allowedStatusCodes ...int) error {
	if len(allowedStatusCodes) == 0 {
		if resp.StatusCode == http.StatusOK {
			return nil
		}
	} else if slices.Contains(allowedStatusCodes, resp.StatusCode) {
		return nil
	}

	urlStr := ""
	if resp.Request != nil {
		urlStr = redactURL(resp.Request.URL)
	}

	var bodySnippet string
	if resp.Body != nil {
		if b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySnippetBytes)); err == nil {
			bodySnippet = string(b)
		}
	}

	return &HTTPStatusError{
		StatusCode:  resp.StatusCode,
		Status:      resp.Status,
		URL:         urlStr,
		Header:      redactHeaders(resp.Header),
		BodySnippet: bodySnippet,
		Cause:       newErrHTTPStatus(statusErrorType(resp.StatusCode), resp.Status, urlStr),
	}
}
