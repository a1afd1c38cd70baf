package handler

import (
	"context"
	"net/http"

	"github.com/darkkaiser/catalog-server/internal/service/api/v1/model/response"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// LoadMoreHandler godoc
// @Summary 다음 페이지 요청
// @Description 다음 원격 페이지를 요청하고 완료될 때까지 기다립니다.
// @Description
// @Description 이미 요청이 진행 중이거나 더 가져올 페이지가 없으면 started=false로 응답합니다.
// @Description 원격 요청 실패는 에러 응답이 아니라 hasMore=false로 나타납니다.
// @Tags Pagination
// @Produce json
// @Success 200 {object} response.PaginationResponse
// @Router /api/v1/catalog/load-more [post]
//
// 페이지 요청은 모든 클라이언트가 공유하므로 요청 Context의 취소와 분리하여 실행합니다.
func (h *Handler) LoadMoreHandler(c echo.Context) error {
	started := h.loader.LoadMore(detach(c))

	h.log(c).WithFields(applog.Fields{
		"started":      started,
		"remote_count": h.store.RemoteCount(),
	}).Debug("다음 페이지 요청 처리")

	return h.paginationResponse(c, started)
}

// RefreshHandler godoc
// @Summary 첫 페이지부터 다시 요청
// @Description 원격 목록을 첫 페이지부터 다시 불러옵니다. 이전 실패로 멈춘 페이지네이션도 다시 시작됩니다.
// @Tags Pagination
// @Produce json
// @Success 200 {object} response.PaginationResponse
// @Router /api/v1/catalog/refresh [post]
func (h *Handler) RefreshHandler(c echo.Context) error {
	h.loader.Refresh(detach(c))

	h.log(c).WithFields(applog.Fields{
		"remote_count": h.store.RemoteCount(),
		"has_more":     h.store.HasMore(),
	}).Info("원격 상품 목록 새로고침 완료")

	return h.paginationResponse(c, true)
}

func (h *Handler) paginationResponse(c echo.Context, started bool) error {
	return c.JSON(http.StatusOK, response.PaginationResponse{
		Started:     started,
		HasMore:     h.store.HasMore(),
		Loading:     h.store.Loading(),
		RemoteCount: h.store.RemoteCount(),
	})
}

// detach 요청 Context의 값은 유지하되 클라이언트 연결 종료나 요청 타임아웃에 의한 취소는 전파하지 않습니다.
// 원격 요청 시간은 fetcher의 Timeout으로 제한됩니다.
func detach(c echo.Context) context.Context {
	return context.WithoutCancel(c.Request().Context())
}
