// Package pagination 원격 상품 목록의 무한 스크롤 페이지 요청을 관리합니다.
package pagination

import (
	"context"
	"sync"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	"github.com/darkkaiser/catalog-server/internal/catalog/remote"
	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
)

const component = "catalog.pagination"

// DefaultPageSize 한 번에 요청하는 상품 수의 기본값입니다.
const DefaultPageSize = 20

// PageSource 원격 상품 목록을 offset부터 limit개씩 제공합니다. remote.Client가 구현합니다.
type PageSource interface {
	FetchPage(ctx context.Context, offset, limit int) (*remote.Page, error)
}

var _ PageSource = (*remote.Client)(nil)

// Option Controller 설정 함수입니다.
type Option func(*Controller)

// WithPageSize 페이지 크기를 설정합니다. 0 이하의 값은 무시합니다.
func WithPageSize(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// Controller 다음 페이지 요청 시점과 중복 요청을 관리합니다.
//
// 로딩 중 여부의 확인과 설정은 mu 안에서 원자적으로 이루어지므로, 동시에 여러 LoadMore가 호출되어도
// 요청은 하나만 나갑니다. Refresh는 세대(generation)를 올려서 진행 중이던 LoadMore의 결과를 버립니다.
type Controller struct {
	store    *catalog.Store
	source   PageSource
	pageSize int

	mu         sync.Mutex
	inFlight   bool
	generation uint64
}

// New 새로운 Controller를 생성합니다.
func New(store *catalog.Store, source PageSource, opts ...Option) *Controller {
	if store == nil {
		panic("Store는 필수입니다")
	}
	if source == nil {
		panic("PageSource는 필수입니다")
	}

	c := &Controller{
		store:    store,
		source:   source,
		pageSize: DefaultPageSize,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// PageSize 한 번에 요청하는 상품 수를 반환합니다.
func (c *Controller) PageSize() int {
	return c.pageSize
}

// LoadMore 다음 페이지를 가져와 원격 목록 뒤에 추가합니다.
//
// 이미 요청이 진행 중이거나 더 가져올 페이지가 없으면 아무 일도 하지 않고 false를 반환합니다.
// 요청을 보냈으면 성공 여부와 관계없이 true를 반환합니다. 실패는 로그로만 남습니다.
// 호출자의 ctx가 먼저 취소되어 중단된 요청은 원격 실패로 보지 않으며 hasMore를 유지합니다.
func (c *Controller) LoadMore(ctx context.Context) bool {
	c.mu.Lock()
	if c.inFlight || !c.store.HasMore() {
		c.mu.Unlock()
		return false
	}
	gen := c.begin()
	c.mu.Unlock()

	defer c.finish(gen)

	offset := c.store.RemoteCount()
	page, err := c.source.FetchPage(ctx, offset, c.pageSize)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		applog.WithComponentAndFields(component, applog.Fields{
			"offset":     offset,
			"generation": gen,
			"current":    c.generation,
		}).Debug("새로고침 이후 도착한 페이지 응답을 폐기합니다")

		return true
	}

	if err != nil {
		if ctx.Err() != nil {
			c.abandon(err, offset)
			return true
		}

		c.fail(err, offset)
		return true
	}

	c.store.AppendRemoteEntries(page.Products)
	c.succeed(page, offset)

	return true
}

// Refresh 원격 목록을 처음부터 다시 가져와 통째로 교체합니다.
//
// 진행 중인 LoadMore가 있으면 그 결과는 버려지며, 실패로 비활성화된 페이지네이션도 성공 시 다시 활성화됩니다.
func (c *Controller) Refresh(ctx context.Context) {
	c.mu.Lock()
	gen := c.begin()
	c.mu.Unlock()

	defer c.finish(gen)

	page, err := c.source.FetchPage(ctx, 0, c.pageSize)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return
	}

	if err != nil {
		if ctx.Err() != nil {
			c.abandon(err, 0)
			return
		}

		c.fail(err, 0)
		return
	}

	c.store.SetRemoteEntries(page.Products)
	c.succeed(page, 0)
}

// begin 새로운 세대의 요청을 시작합니다. mu를 보유한 상태에서 호출해야 합니다.
func (c *Controller) begin() uint64 {
	c.generation++
	c.inFlight = true
	c.store.SetLoading(true)

	return c.generation
}

// finish 현재 세대의 요청이 끝났으면 로딩 상태를 해제합니다. 소스가 패닉을 일으켜도 실행됩니다.
func (c *Controller) finish(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen == c.generation {
		c.inFlight = false
		c.store.SetLoading(false)
	}
}

func (c *Controller) succeed(page *remote.Page, offset int) {
	hasMore := offset+c.pageSize < page.Total

	c.store.SetHasMore(hasMore)
	c.store.MergeCategories(page.Categories()...)

	applog.WithComponentAndFields(component, applog.Fields{
		"offset":   offset,
		"received": len(page.Products),
		"total":    page.Total,
		"has_more": hasMore,
	}).Debug("상품 페이지 반영 완료")
}

func (c *Controller) fail(err error, offset int) {
	c.store.SetHasMore(false)

	applog.WithComponentAndFields(component, applog.Fields{
		"offset":     offset,
		"page_size":  c.pageSize,
		"error_type": apperrors.UnderlyingType(err).String(),
		"error":      err,
	}).Warn("상품 페이지 요청 실패: 추가 페이지 로드를 중단합니다")
}

// abandon 호출자의 ctx 취소로 중단된 요청을 정리합니다. 다음 LoadMore가 같은 offset부터 다시 요청할 수 있습니다.
func (c *Controller) abandon(err error, offset int) {
	applog.WithComponentAndFields(component, applog.Fields{
		"offset": offset,
		"error":  err,
	}).Info("호출자 취소로 상품 페이지 요청이 중단되었습니다")
}
