package pagination

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	"github.com/darkkaiser/catalog-server/internal/catalog/remote"
	"github.com/darkkaiser/catalog-server/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type mockSource struct {
	mock.Mock
}

func (m *mockSource) FetchPage(ctx context.Context, offset, limit int) (*remote.Page, error) {
	args := m.Called(ctx, offset, limit)
	page, _ := args.Get(0).(*remote.Page)
	return page, args.Error(1)
}

// blockingSource release가 닫힐 때까지 응답을 보류하는 PageSource입니다.
type blockingSource struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
	page    func(offset, limit int) *remote.Page
}

func newBlockingSource(page func(offset, limit int) *remote.Page) *blockingSource {
	return &blockingSource{
		started: make(chan struct{}, 10),
		release: make(chan struct{}),
		page:    page,
	}
}

func (s *blockingSource) FetchPage(ctx context.Context, offset, limit int) (*remote.Page, error) {
	s.calls.Add(1)
	s.started <- struct{}{}

	select {
	case <-s.release:
		return s.page(offset, limit), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func makePage(offset, n, total int, category string) *remote.Page {
	p := &remote.Page{Total: total, Skip: offset, Limit: n}
	for i := range n {
		p.Products = append(p.Products, catalog.Entry{
			ID:       int64(offset + i + 1),
			Title:    fmt.Sprintf("item-%d", offset+i+1),
			Category: category,
		})
	}
	return p
}

func newStore() *catalog.Store {
	return catalog.NewStore(testutil.NewMemoryRepository())
}

func TestLoadMore_AppendsAndAdvancesOffset(t *testing.T) {
	store := newStore()
	src := &mockSource{}
	src.On("FetchPage", mock.Anything, 0, 20).Return(makePage(0, 20, 38, "beauty"), nil).Once()
	src.On("FetchPage", mock.Anything, 20, 20).Return(makePage(20, 18, 38, "groceries"), nil).Once()

	c := New(store, src)

	assert.True(t, c.LoadMore(context.Background()))
	assert.Equal(t, 20, store.RemoteCount())
	assert.True(t, store.HasMore())
	assert.False(t, store.Loading())

	assert.True(t, c.LoadMore(context.Background()))
	assert.Equal(t, 38, store.RemoteCount())
	assert.False(t, store.HasMore(), "20 + 18 = 38 = total이면 더 이상 페이지가 없습니다")
	assert.Equal(t, []string{"beauty", "groceries"}, store.Categories())

	assert.False(t, c.LoadMore(context.Background()), "추가 페이지가 없으면 요청하지 않습니다")
	src.AssertExpectations(t)
}

func TestLoadMore_PartialPageEndsPagination(t *testing.T) {
	store := newStore()
	store.AppendRemoteEntries(makePage(0, 20, 38, "x").Products)

	src := &mockSource{}
	src.On("FetchPage", mock.Anything, 20, 20).Return(&remote.Page{Products: makePage(20, 18, 38, "x").Products, Total: 38, Skip: 20, Limit: 20}, nil).Once()

	c := New(store, src)
	require.True(t, c.LoadMore(context.Background()))

	assert.False(t, store.HasMore())
	assert.Equal(t, 38, store.RemoteCount())
}

func TestLoadMore_ConcurrentCallsIssueOneFetch(t *testing.T) {
	store := newStore()
	src := newBlockingSource(func(offset, limit int) *remote.Page { return makePage(offset, limit, 100, "x") })
	c := New(store, src)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.LoadMore(context.Background())
	}()

	<-src.started
	assert.True(t, store.Loading())
	assert.False(t, c.LoadMore(context.Background()), "요청이 진행 중이면 두 번째 호출은 무시됩니다")

	close(src.release)
	wg.Wait()

	assert.Equal(t, int32(1), src.calls.Load())
	assert.Equal(t, 20, store.RemoteCount())
	assert.False(t, store.Loading())
}

func TestLoadMore_ManyConcurrentCallers(t *testing.T) {
	store := newStore()
	src := newBlockingSource(func(offset, limit int) *remote.Page { return makePage(offset, limit, 100, "x") })
	c := New(store, src)

	const callers = 10
	results := make(chan bool, callers)
	for range callers {
		go func() {
			results <- c.LoadMore(context.Background())
		}()
	}

	// 하나를 제외한 모든 호출은 요청이 보류된 동안 즉시 false로 반환되어야 합니다.
	<-src.started
	for range callers - 1 {
		assert.False(t, <-results)
	}

	close(src.release)
	assert.True(t, <-results)

	assert.Equal(t, int32(1), src.calls.Load())
	assert.Equal(t, 20, store.RemoteCount())
}

func TestLoadMore_FailureDisablesPagination(t *testing.T) {
	store := newStore()
	store.AppendRemoteEntries(makePage(0, 20, 100, "x").Products)

	src := &mockSource{}
	src.On("FetchPage", mock.Anything, 20, 20).Return(nil, errors.New("connection reset")).Once()

	c := New(store, src)
	assert.True(t, c.LoadMore(context.Background()))

	assert.False(t, store.HasMore())
	assert.False(t, store.Loading())
	assert.Equal(t, 20, store.RemoteCount(), "이미 불러온 상품은 유지됩니다")

	assert.False(t, c.LoadMore(context.Background()), "실패 후에는 자동으로 다시 요청하지 않습니다")
	src.AssertExpectations(t)
}

func TestLoadMore_CallerCancellationKeepsPagination(t *testing.T) {
	store := newStore()
	src := newBlockingSource(func(offset, limit int) *remote.Page { return makePage(offset, limit, 100, "x") })
	c := New(store, src)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan bool)
	go func() { done <- c.LoadMore(ctx) }()

	<-src.started
	cancel()
	require.True(t, <-done)

	assert.True(t, store.HasMore(), "호출자가 떠난 것은 원격 실패가 아닙니다")
	assert.False(t, store.Loading())
	assert.Zero(t, store.RemoteCount())

	// 다음 호출자는 같은 offset부터 다시 요청합니다.
	close(src.release)
	assert.True(t, c.LoadMore(context.Background()))
	assert.Equal(t, 20, store.RemoteCount())
	assert.Equal(t, int32(2), src.calls.Load())
}

func TestRefresh_CallerCancellationKeepsPagination(t *testing.T) {
	store := newStore()
	store.AppendRemoteEntries(makePage(0, 20, 100, "x").Products)

	src := &mockSource{}
	src.On("FetchPage", mock.Anything, 0, 20).Return(nil, context.Canceled).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(store, src)
	c.Refresh(ctx)

	assert.True(t, store.HasMore())
	assert.Equal(t, 20, store.RemoteCount(), "중단된 새로고침은 기존 목록을 건드리지 않습니다")
	src.AssertExpectations(t)
}

func TestRefresh_ReplacesAndReenables(t *testing.T) {
	store := newStore()
	store.AppendRemoteEntries(makePage(0, 40, 100, "old").Products)
	store.MergeCategories("old")
	store.SetHasMore(false)

	src := &mockSource{}
	src.On("FetchPage", mock.Anything, 0, 20).Return(makePage(0, 20, 100, "new"), nil).Once()

	c := New(store, src)
	c.Refresh(context.Background())

	assert.Equal(t, 20, store.RemoteCount())
	assert.True(t, store.HasMore())
	assert.False(t, store.Loading())
	assert.Equal(t, []string{"old", "new"}, store.Categories(), "카테고리는 새로고침 후에도 줄어들지 않습니다")
	src.AssertExpectations(t)
}

func TestRefresh_Failure(t *testing.T) {
	store := newStore()
	store.AppendRemoteEntries(makePage(0, 20, 100, "x").Products)

	src := &mockSource{}
	src.On("FetchPage", mock.Anything, 0, 20).Return(nil, errors.New("timeout")).Once()

	c := New(store, src)
	c.Refresh(context.Background())

	assert.False(t, store.HasMore())
	assert.Equal(t, 20, store.RemoteCount())
	assert.False(t, store.Loading())
}

func TestRefresh_DiscardsStaleLoadMore(t *testing.T) {
	store := newStore()
	store.AppendRemoteEntries(makePage(0, 20, 100, "x").Products)

	stale := newBlockingSource(func(offset, limit int) *remote.Page { return makePage(offset, limit, 100, "stale") })
	src := &switchingSource{first: stale, rest: func(offset, limit int) *remote.Page { return makePage(offset, limit, 100, "fresh") }}
	c := New(store, src)

	done := make(chan bool)
	go func() {
		done <- c.LoadMore(context.Background())
	}()
	<-stale.started

	c.Refresh(context.Background())
	assert.Equal(t, 20, store.RemoteCount())
	assert.False(t, store.Loading())

	close(stale.release)
	assert.True(t, <-done)

	all := store.GetAllEntries()
	require.Len(t, all, 20, "새로고침 이후 도착한 LoadMore 결과는 버려져야 합니다")
	for _, e := range all {
		assert.Equal(t, "fresh", e.Category)
	}
	assert.False(t, store.Loading())
	assert.NotContains(t, store.Categories(), "stale")
}

// switchingSource 첫 번째 호출은 first로, 이후 호출은 rest로 즉시 응답합니다.
type switchingSource struct {
	calls atomic.Int32
	first PageSource
	rest  func(offset, limit int) *remote.Page
}

func (s *switchingSource) FetchPage(ctx context.Context, offset, limit int) (*remote.Page, error) {
	if s.calls.Add(1) == 1 {
		return s.first.FetchPage(ctx, offset, limit)
	}
	return s.rest(offset, limit), nil
}

func TestLoadMore_PanickingSourceReturnsToIdle(t *testing.T) {
	store := newStore()
	src := &mockSource{}
	src.On("FetchPage", mock.Anything, 0, 20).Run(func(mock.Arguments) { panic("boom") }).Once()

	c := New(store, src)
	assert.Panics(t, func() { c.LoadMore(context.Background()) })

	assert.False(t, store.Loading())
	assert.False(t, c.inFlight)
}

func TestNew_Options(t *testing.T) {
	c := New(newStore(), &mockSource{}, WithPageSize(50))
	assert.Equal(t, 50, c.PageSize())

	c = New(newStore(), &mockSource{}, WithPageSize(0))
	assert.Equal(t, DefaultPageSize, c.PageSize())

	assert.Panics(t, func() { New(nil, &mockSource{}) })
	assert.Panics(t, func() { New(newStore(), nil) })
}
