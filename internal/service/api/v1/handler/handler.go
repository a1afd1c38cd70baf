// Package handler v1 카탈로그 API의 HTTP 요청 핸들러를 제공합니다.
//
// 핸들러는 요청을 바인딩하고 검증한 뒤 catalog.Store와 페이지네이션 컨트롤러를 호출하며,
// 에러는 그대로 반환하여 전역 에러 핸들러가 응답 코드를 결정하도록 합니다.
package handler

import (
	"context"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	"github.com/darkkaiser/catalog-server/internal/catalog/pagination"
	"github.com/darkkaiser/catalog-server/internal/service/api/constants"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// PageLoader 원격 상품 페이지 요청을 수행합니다. pagination.Controller가 구현합니다.
type PageLoader interface {
	LoadMore(ctx context.Context) bool
	Refresh(ctx context.Context)
}

var _ PageLoader = (*pagination.Controller)(nil)

// Handler v1 카탈로그 API 요청을 처리합니다.
type Handler struct {
	store  *catalog.Store
	loader PageLoader
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(store *catalog.Store, loader PageLoader) *Handler {
	if store == nil {
		panic(constants.PanicMsgStoreRequired)
	}
	if loader == nil {
		panic(constants.PanicMsgLoaderRequired)
	}

	return &Handler{
		store:  store,
		loader: loader,
	}
}

// log 공통 로깅 필드가 설정된 로거 Entry를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":   c.Path(),
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	})
}
