package catalog

import (
	"context"
	"slices"
	"sync"

	applog "github.com/darkkaiser/catalog-server/pkg/log"
)

const component = "catalog.store"

// Store 카탈로그 화면 상태(원격/로컬 상품 목록, 검색/정렬 조건, 카테고리, 로딩 플래그)를 보관합니다.
//
// 모든 조회와 변경은 내부 RWMutex로 직렬화되며, 파일/네트워크 I/O는 잠금 밖에서 수행됩니다.
// 로딩 플래그와 추가 페이지 여부 플래그는 페이지네이션 컨트롤러만 변경합니다.
type Store struct {
	mu sync.RWMutex

	remote []Entry
	local  []Entry // 최신 항목이 앞쪽

	searchTerm       string
	selectedCategory string
	criteria         []SortCriterion
	categories       *categorySet

	loading bool
	hasMore bool

	repo LocalEntryRepository

	// persistMu 로컬 목록의 스냅샷 생성과 저장 순서를 일치시킵니다.
	persistMu   sync.Mutex
	lastPersist PersistStatus
}

// NewStore 새로운 Store를 생성합니다. 처음에는 추가 페이지가 있는 것으로 간주합니다.
func NewStore(repo LocalEntryRepository) *Store {
	if repo == nil {
		panic("LocalEntryRepository는 필수입니다")
	}

	return &Store{
		categories: newCategorySet(),
		hasMore:    true,
		repo:       repo,
	}
}

// SetRemoteEntries 원격 상품 목록 전체를 교체합니다.
func (s *Store) SetRemoteEntries(entries []Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.remote = slices.Clone(entries)
}

// AppendRemoteEntries 원격 상품 목록 뒤에 도착 순서대로 추가합니다.
func (s *Store) AppendRemoteEntries(entries []Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.remote = append(s.remote, entries...)
}

// AddLocalEntry 로컬 상품을 목록 맨 앞에 추가하고 로컬 목록 전체를 저장합니다.
//
// 저장에 실패해도 메모리 상태는 되돌리지 않으며, 결과는 반환값과 LastPersistStatus로 확인할 수 있습니다.
func (s *Store) AddLocalEntry(ctx context.Context, entry Entry) PersistStatus {
	entry.IsNew = true

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	local := make([]Entry, 0, len(s.local)+1)
	local = append(local, entry)
	local = append(local, s.local...)
	s.local = local
	s.categories.add(entry.Category)
	snapshot := slices.Clone(local)
	s.mu.Unlock()

	status := PersistStatus{Persisted: true}
	if err := s.repo.Save(ctx, snapshot); err != nil {
		status = PersistStatus{Persisted: false, Err: NewErrPersistFailed(err)}

		applog.WithComponentAndFields(component, applog.Fields{
			"entry_id":    entry.ID,
			"local_count": len(snapshot),
			"error":       err,
		}).Error("로컬 상품 저장 실패: 메모리 상태는 유지됩니다")
	}

	s.mu.Lock()
	s.lastPersist = status
	s.mu.Unlock()

	return status
}

// LoadLocalEntries 저장소에서 로컬 상품 목록을 읽어 교체하고 카테고리를 병합합니다.
//
// 읽기에 실패하면 빈 목록으로 간주하고 경고 로그만 남깁니다.
func (s *Store) LoadLocalEntries(ctx context.Context) {
	entries, err := s.repo.Load(ctx)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Warn("로컬 상품 목록 읽기 실패: 빈 목록으로 시작합니다")

		entries = nil
	}

	for i := range entries {
		entries[i].IsNew = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.local = entries
	s.categories.addEntries(entries)

	applog.WithComponentAndFields(component, applog.Fields{
		"local_count": len(entries),
	}).Debug("로컬 상품 목록 로드 완료")
}

// SetLoading 로딩 플래그를 설정합니다.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = loading
}

// SetHasMore 추가 페이지 여부 플래그를 설정합니다.
func (s *Store) SetHasMore(hasMore bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hasMore = hasMore
}

// SetSearchTerm 검색어를 설정합니다.
func (s *Store) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.searchTerm = term
}

// SetSelectedCategory 선택 카테고리를 설정합니다. AllCategories 또는 빈 문자열은 필터 해제입니다.
func (s *Store) SetSelectedCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedCategory = category
}

// AddSortCriterion 같은 필드의 정렬 기준이 있으면 그 자리에서 교체하고, 없으면 맨 뒤에 추가합니다.
func (s *Store) AddSortCriterion(c SortCriterion) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria = upsertCriterion(s.criteria, c)
}

// ReplaceSortCriteria 정렬 기준 목록 전체를 교체합니다.
func (s *Store) ReplaceSortCriteria(criteria []SortCriterion) {
	var normalized []SortCriterion
	for _, c := range criteria {
		normalized = upsertCriterion(normalized, c)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria = normalized
}

// RemoveSortCriterion 해당 필드의 정렬 기준을 제거합니다. 없으면 아무 일도 하지 않습니다.
func (s *Store) RemoveSortCriterion(field SortField) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria = removeCriterion(s.criteria, field)
}

// ToggleSortDirection 해당 필드의 정렬 방향을 제자리에서 뒤집습니다. 없으면 아무 일도 하지 않습니다.
func (s *Store) ToggleSortDirection(field SortField) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria = toggleCriterion(s.criteria, field)
}

// ClearSortCriteria 모든 정렬 기준을 제거합니다.
func (s *Store) ClearSortCriteria() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria = nil
}

// MergeCategories 처음 보는 카테고리를 발견 순서대로 추가합니다.
func (s *Store) MergeCategories(categories ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories.add(categories...)
}

// GetAllEntries 로컬 목록 뒤에 원격 목록을 이어붙인 복사본을 반환합니다.
func (s *Store) GetAllEntries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.allEntriesLocked()
}

func (s *Store) allEntriesLocked() []Entry {
	all := make([]Entry, 0, len(s.local)+len(s.remote))
	all = append(all, s.local...)
	return append(all, s.remote...)
}

// GetFilteredEntries 현재 검색어, 카테고리, 정렬 기준을 적용한 표시 목록을 반환합니다.
func (s *Store) GetFilteredEntries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Filter(s.allEntriesLocked(), s.queryLocked())
}

func (s *Store) queryLocked() Query {
	return Query{
		Search:   s.searchTerm,
		Category: s.selectedCategory,
		Criteria: s.criteria,
	}
}

// Snapshot 화면 계층이 사용하는 읽기 전용 상태입니다.
type Snapshot struct {
	Entries          []Entry         `json:"products"`
	Loading          bool            `json:"loading"`
	HasMore          bool            `json:"hasMore"`
	Categories       []string        `json:"categories"`
	SortCriteria     []SortCriterion `json:"sortOptions"`
	SortSummary      string          `json:"sortSummary"`
	SearchTerm       string          `json:"searchTerm"`
	SelectedCategory string          `json:"selectedCategory"`
	LocalCount       int             `json:"localCount"`
	RemoteCount      int             `json:"remoteCount"`
	LastPersist      PersistStatus   `json:"lastPersist"`
}

// Snapshot 현재 상태를 한 번의 잠금 안에서 읽어 반환합니다.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Entries:          Filter(s.allEntriesLocked(), s.queryLocked()),
		Loading:          s.loading,
		HasMore:          s.hasMore,
		Categories:       s.categories.list(),
		SortCriteria:     cloneCriteria(s.criteria),
		SortSummary:      SortSummary(s.criteria),
		SearchTerm:       s.searchTerm,
		SelectedCategory: s.selectedCategory,
		LocalCount:       len(s.local),
		RemoteCount:      len(s.remote),
		LastPersist:      s.lastPersist,
	}
}

func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.categories.list()
}

func (s *Store) SortCriteria() []SortCriterion {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneCriteria(s.criteria)
}

// SortSummary 정렬 버튼 문구를 반환합니다. ("Sort", 단일 기준의 Label, "N sorts")
func (s *Store) SortSummary() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return SortSummary(s.criteria)
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading
}

func (s *Store) HasMore() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hasMore
}

// RemoteCount 지금까지 불러온 원격 상품 수를 반환합니다. 다음 페이지의 offset으로 사용됩니다.
func (s *Store) RemoteCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.remote)
}

func (s *Store) LocalCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.local)
}

func (s *Store) SearchTerm() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.searchTerm
}

func (s *Store) SelectedCategory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.selectedCategory
}

// LastPersistStatus 마지막 로컬 상품 저장 결과를 반환합니다. 저장을 시도한 적이 없으면 zero value입니다.
func (s *Store) LastPersistStatus() PersistStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastPersist
}

// cloneCriteria 정렬 기준이 없어도 JSON에서 null이 아닌 빈 배열이 되도록 nil이 아닌 복사본을 반환합니다.
func cloneCriteria(criteria []SortCriterion) []SortCriterion {
	out := make([]SortCriterion, len(criteria))
	copy(out, criteria)
	return out
}
