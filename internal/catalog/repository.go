package catalog

import (
	"context"
	"encoding/json"
)

// LocalEntryRepository 사용자가 등록한 로컬 상품 목록 전체를 읽고 쓰는 영속화 계층입니다.
//
// 구현체는 목록 전체를 하나의 값으로 저장하며, 값이 없거나 손상된 경우 Load는 빈 목록을 반환해야 합니다.
type LocalEntryRepository interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, entries []Entry) error
}

// PersistStatus 마지막 로컬 상품 저장 시도의 결과입니다.
type PersistStatus struct {
	Persisted bool  `json:"persisted"`
	Err       error `json:"-"`
}

// Error 저장 실패 메시지를 반환합니다. 성공했으면 빈 문자열입니다.
func (s PersistStatus) Error() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

// MarshalJSON 실패 원인을 "error" 필드의 문자열로 포함합니다.
func (s PersistStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Persisted bool   `json:"persisted"`
		Error     string `json:"error,omitempty"`
	}{
		Persisted: s.Persisted,
		Error:     s.Error(),
	})
}
