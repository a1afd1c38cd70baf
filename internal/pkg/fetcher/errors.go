package fetcher

import (
	"fmt"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
)

var (
	// ErrMaxRetriesExceeded 재시도 횟수를 모두 소진했을 때의 원인 에러입니다.
	ErrMaxRetriesExceeded = apperrors.New(apperrors.Unavailable, "최대 재시도 횟수를 초과했습니다")
)

func newErrRequestCreationFailed(err error, url string) error {
	return apperrors.Wrap(err, apperrors.Internal, fmt.Sprintf("HTTP 요청 생성에 실패했습니다 (URL: %s)", url))
}

func newErrHTTPStatus(errType apperrors.ErrorType, status, url string) error {
	return apperrors.New(errType, fmt.Sprintf("HTTP 요청이 실패했습니다. 상태 코드: %s (URL: %s)", status, url))
}

func newErrMaxRetriesExceeded(err error) error {
	return apperrors.Wrap(err, apperrors.Unavailable, "최대 재시도 횟수를 초과했습니다")
}

func newErrRetryAfterExceeded(retryAfter, maxDelay string) error {
	return apperrors.New(apperrors.Unavailable, fmt.Sprintf("서버가 요청한 재시도 대기 시간(%s)이 최대 허용치(%s)를 초과합니다", retryAfter, maxDelay))
}

// NewErrResponseBodyTooLarge 응답 본문이 제한을 넘었을 때의 에러를 생성합니다.
func NewErrResponseBodyTooLarge(limit int64) error {
	return apperrors.New(apperrors.ExecutionFailed, fmt.Sprintf("응답 본문 크기가 제한(%d 바이트)을 초과했습니다", limit))
}

// NewErrResponseBodyTooLargeByContentLength Content-Length만으로 제한 초과가 확인되었을 때의 에러를 생성합니다.
func NewErrResponseBodyTooLargeByContentLength(contentLength, limit int64) error {
	return apperrors.New(apperrors.ExecutionFailed, fmt.Sprintf("응답 본문 크기(%d 바이트)가 제한(%d 바이트)을 초과했습니다", contentLength, limit))
}

func newErrUnavailable(err error, url string) error {
	return apperrors.Wrap(err, apperrors.Unavailable, fmt.Sprintf("JSON API(%s) 요청 전송 중 에러가 발생했습니다", url))
}

func newErrJSONDecodeFailed(err error, url string) error {
	return apperrors.Wrap(err, apperrors.ParsingFailed, fmt.Sprintf("불러온 응답(%s)의 JSON 변환이 실패했습니다", url))
}

func newErrTimeout(err error, url string) error {
	return apperrors.Wrap(err, apperrors.Timeout, fmt.Sprintf("JSON API(%s) 요청이 제한 시간 안에 끝나지 않았습니다", url))
}

func newErrCanceled(err error, url string) error {
	return apperrors.Wrap(err, apperrors.Unavailable, fmt.Sprintf("JSON API(%s) 요청이 취소되었습니다", url))
}
