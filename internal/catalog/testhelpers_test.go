package catalog

import (
	"context"
	"slices"
	"sync"

	"github.com/shopspring/decimal"
)

func remoteEntry(id int64, title string, price float64, category string, stock int, rating float64) Entry {
	return Entry{
		ID:       id,
		Title:    title,
		Price:    decimal.NewFromFloat(price),
		Category: category,
		Stock:    stock,
		Rating:   rating,
	}
}

func titles(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Title)
	}
	return out
}

func mustCriterion(field SortField, dir SortDirection) SortCriterion {
	c, err := NewSortCriterion(field, dir)
	if err != nil {
		panic(err)
	}
	return c
}

// shoes 두 개의 원격 상품으로 구성된 기본 목록입니다.
func shoes() []Entry {
	return []Entry{
		remoteEntry(1, "Red Shoe", 10, "Shoes", 5, 4),
		remoteEntry(2, "Blue Shoe", 20, "Shoes", 0, 3),
	}
}

// memoryRepository 메모리에만 보관하는 LocalEntryRepository입니다.
type memoryRepository struct {
	mu      sync.Mutex
	entries []Entry
	saveErr error
	saves   int
}

var _ LocalEntryRepository = (*memoryRepository)(nil)

func newMemoryRepository(initial ...Entry) *memoryRepository {
	return &memoryRepository{entries: slices.Clone(initial)}
}

// failSavesWith 이후의 Save 호출이 err를 반환하도록 설정합니다. nil이면 정상 동작으로 되돌립니다.
func (r *memoryRepository) failSavesWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.saveErr = err
}

// saveCount 성공한 Save 호출 횟수를 반환합니다.
func (r *memoryRepository) saveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.saves
}

func (r *memoryRepository) Load(_ context.Context) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.entries), nil
}

func (r *memoryRepository) Save(_ context.Context, entries []Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.saveErr != nil {
		return r.saveErr
	}
	r.entries = slices.Clone(entries)
	r.saves++

	return nil
}
