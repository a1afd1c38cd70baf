package remote

import (
	"fmt"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
)

// NewErrInvalidEndpoint 원격 API 주소가 올바르지 않을 때의 에러를 생성합니다.
func NewErrInvalidEndpoint(endpoint string, err error) error {
	msg := fmt.Sprintf("원격 상품 API 주소가 올바르지 않습니다: '%s'", endpoint)
	if err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, msg)
	}
	return apperrors.New(apperrors.InvalidInput, msg)
}

// NewErrUnexpectedResponse 응답이 JSON이지만 기대한 형식이 아닐 때의 에러를 생성합니다.
func NewErrUnexpectedResponse(url, details string) error {
	return apperrors.New(apperrors.ParsingFailed, fmt.Sprintf("원격 상품 API(%s)의 응답 형식이 올바르지 않습니다: %s", url, details))
}
