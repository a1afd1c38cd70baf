package catalog

import (
	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
)

// NewErrUnsupportedSortField 지원하지 않는 정렬 필드 에러를 생성합니다.
func NewErrUnsupportedSortField(field string) error {
	return apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 정렬 필드입니다: '%s' (price, name, stock, rating 중 하나여야 합니다)", field)
}

// NewErrUnsupportedSortDirection 지원하지 않는 정렬 방향 에러를 생성합니다.
func NewErrUnsupportedSortDirection(direction string) error {
	return apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 정렬 방향입니다: '%s' (asc 또는 desc여야 합니다)", direction)
}

// NewErrInvalidDraft 로컬 상품 입력값 검증 실패 에러를 생성합니다.
func NewErrInvalidDraft(message string) error {
	return apperrors.New(apperrors.InvalidInput, message)
}

// NewErrPersistFailed 로컬 상품 목록 저장 실패 에러를 생성합니다.
func NewErrPersistFailed(err error) error {
	return apperrors.Wrap(err, apperrors.System, "로컬 상품 목록을 저장하지 못했습니다")
}
