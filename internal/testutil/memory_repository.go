package testutil

import (
	"context"
	"slices"
	"sync"

	"github.com/darkkaiser/catalog-server/internal/catalog"
)

// MemoryRepository 메모리에만 보관하는 catalog.LocalEntryRepository 구현체입니다.
// 저장 실패를 흉내 내거나 저장 횟수를 확인하는 테스트에서 사용합니다.
type MemoryRepository struct {
	mu      sync.Mutex
	entries []catalog.Entry
	saveErr error
	saves   int
}

var _ catalog.LocalEntryRepository = (*MemoryRepository)(nil)

// NewMemoryRepository 초기 목록을 가진 MemoryRepository를 생성합니다.
func NewMemoryRepository(initial ...catalog.Entry) *MemoryRepository {
	return &MemoryRepository{entries: slices.Clone(initial)}
}

// FailSavesWith 이후의 Save 호출이 err를 반환하도록 설정합니다. nil이면 정상 동작으로 되돌립니다.
func (r *MemoryRepository) FailSavesWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.saveErr = err
}

// Saves 성공한 Save 호출 횟수를 반환합니다.
func (r *MemoryRepository) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.saves
}

func (r *MemoryRepository) Load(_ context.Context) ([]catalog.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.entries), nil
}

func (r *MemoryRepository) Save(_ context.Context, entries []catalog.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.saveErr != nil {
		return r.saveErr
	}
	r.entries = slices.Clone(entries)
	r.saves++

	return nil
}
