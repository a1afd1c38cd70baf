package storage

import (
	"fmt"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
)

var (
	// ErrKeyNotFound 요청한 키로 저장된 값이 없을 때 반환됩니다.
	ErrKeyNotFound = apperrors.New(apperrors.NotFound, "저장된 값이 없습니다")

	// ErrEmptyKey 저장 키가 비어있을 때 반환됩니다.
	ErrEmptyKey = apperrors.New(apperrors.InvalidInput, "저장 키가 비어있습니다")

	// ErrPathTraversalDetected 키로부터 만든 경로가 저장 디렉토리를 벗어날 때 반환됩니다.
	ErrPathTraversalDetected = apperrors.New(apperrors.Internal, "보안 정책 위반: 허용되지 않은 경로 접근 시도로 인해 요청이 차단되었습니다")
)

// NewErrDirectoryAccessFailed 저장 디렉토리를 만들거나 접근할 수 없을 때의 에러를 생성합니다.
func NewErrDirectoryAccessFailed(err error, dir string) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("저장소 초기화 실패: 디렉토리 접근 불가 (%s)", dir))
}

// NewErrReadFailed 저장 파일 읽기 실패 에러를 생성합니다.
func NewErrReadFailed(err error, key string) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("저장된 값을 읽지 못했습니다 (key: %s)", key))
}

// NewErrCorruptData 저장된 JSON을 해석할 수 없을 때의 에러를 생성합니다.
func NewErrCorruptData(err error, key string) error {
	return apperrors.Wrap(err, apperrors.ParsingFailed, fmt.Sprintf("저장된 값이 손상되었습니다 (key: %s)", key))
}

// NewErrMarshalFailed 저장할 값을 JSON으로 변환하지 못했을 때의 에러를 생성합니다.
func NewErrMarshalFailed(err error, key string) error {
	return apperrors.Wrap(err, apperrors.Internal, fmt.Sprintf("저장할 값을 직렬화하지 못했습니다 (key: %s)", key))
}

// NewErrWriteFailed 원자적 쓰기의 특정 단계가 실패했을 때의 에러를 생성합니다.
func NewErrWriteFailed(err error, step string) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("값 저장 실패: %s 중 오류가 발생했습니다", step))
}
