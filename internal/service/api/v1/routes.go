// Package v1 카탈로그 API의 v1 버전 라우트를 정의합니다.
//
// 모든 엔드포인트는 /api/v1/catalog 하위에 등록됩니다.
//
//   - GET    /products          상품 목록 조회 (search, category, sort 쿼리 파라미터)
//   - POST   /products          로컬 상품 등록
//   - GET    /categories        카테고리 목록
//   - POST   /sort              정렬 기준 추가/변경
//   - DELETE /sort              정렬 기준 전체 해제
//   - PATCH  /sort/:field       정렬 방향 전환
//   - DELETE /sort/:field       정렬 기준 제거
//   - PUT    /filter            검색어/카테고리 변경
//   - POST   /load-more         다음 페이지 요청
//   - POST   /refresh           첫 페이지부터 다시 요청
package v1

import (
	"github.com/darkkaiser/catalog-server/internal/service/api/middleware"
	"github.com/darkkaiser/catalog-server/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// BasePath v1 카탈로그 API의 경로 접두어
const BasePath = "/api/v1/catalog"

// RegisterRoutes Echo 인스턴스에 v1 카탈로그 API 라우트를 등록합니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	g := e.Group(BasePath)

	// 본문을 받는 엔드포인트는 JSON만 허용합니다.
	jsonOnly := middleware.ValidateContentType(echo.MIMEApplicationJSON)

	g.GET("/products", h.ListProductsHandler)
	g.POST("/products", h.CreateProductHandler, jsonOnly)
	g.GET("/categories", h.CategoriesHandler)

	g.POST("/sort", h.AddSortHandler, jsonOnly)
	g.DELETE("/sort", h.ClearSortHandler)
	g.PATCH("/sort/:field", h.ToggleSortHandler)
	g.DELETE("/sort/:field", h.RemoveSortHandler)

	g.PUT("/filter", h.SetFilterHandler, jsonOnly)

	g.POST("/load-more", h.LoadMoreHandler)
	g.POST("/refresh", h.RefreshHandler)
}
