package catalog

import (
	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
)

// NewErrInvalidRefreshSchedule 갱신 스케줄(Cron 표현식)을 등록하지 못했을 때 반환하는 에러를 생성합니다.
func NewErrInvalidRefreshSchedule(err error, spec string) error {
	return apperrors.Wrapf(err, apperrors.InvalidInput, "상품 목록 갱신 스케줄 등록에 실패했습니다 (spec: %s)", spec)
}
