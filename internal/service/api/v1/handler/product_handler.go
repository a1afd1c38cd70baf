package handler

import (
	"net/http"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	"github.com/darkkaiser/catalog-server/internal/service/api/v1/model/response"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// 상품 목록 조회 시 사용하는 쿼리 파라미터
const (
	queryParamSearch   = "search"
	queryParamCategory = "category"
	queryParamSort     = "sort"
)

// ListProductsHandler godoc
// @Summary 상품 목록 조회
// @Description 현재 화면 상태(필터링/정렬된 상품 목록 포함)를 반환합니다.
// @Description
// @Description 전달된 쿼리 파라미터는 조회 전에 현재 조건으로 반영됩니다. sort는 정렬 기준 목록 전체를 교체하며,
// @Description 빈 값(sort=)은 정렬 기준을 모두 해제합니다. 잘못된 sort 값이면 어떤 조건도 바꾸지 않고 400으로 응답합니다.
// @Tags Catalog
// @Produce json
// @Param search query string false "제목 검색어 (대소문자 무시)"
// @Param category query string false "카테고리 (all 또는 빈 값이면 전체)"
// @Param sort query string false "정렬 기준 목록" example(price:desc,name:asc)
// @Success 200 {object} catalog.Snapshot "현재 화면 상태"
// @Failure 400 {object} response.ErrorResponse "잘못된 정렬 기준"
// @Router /api/v1/catalog/products [get]
func (h *Handler) ListProductsHandler(c echo.Context) error {
	params := c.QueryParams()

	var criteria []catalog.SortCriterion
	if params.Has(queryParamSort) {
		parsed, err := catalog.ParseSortCriteria(params.Get(queryParamSort))
		if err != nil {
			return err
		}
		criteria = parsed
	}

	if params.Has(queryParamSearch) {
		h.store.SetSearchTerm(params.Get(queryParamSearch))
	}
	if params.Has(queryParamCategory) {
		h.store.SetSelectedCategory(params.Get(queryParamCategory))
	}
	if params.Has(queryParamSort) {
		h.store.ReplaceSortCriteria(criteria)
	}

	return c.JSON(http.StatusOK, h.store.Snapshot())
}

// CategoriesHandler godoc
// @Summary 카테고리 목록 조회
// @Description 지금까지 발견된 카테고리 목록을 "all"을 맨 앞에 붙여 반환합니다.
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.CategoriesResponse
// @Router /api/v1/catalog/categories [get]
func (h *Handler) CategoriesHandler(c echo.Context) error {
	known := h.store.Categories()

	categories := make([]string, 0, len(known)+1)
	categories = append(categories, catalog.AllCategories)
	categories = append(categories, known...)

	return c.JSON(http.StatusOK, response.CategoriesResponse{Categories: categories})
}

// CreateProductHandler godoc
// @Summary 로컬 상품 등록
// @Description 판매자가 입력한 상품을 검증하여 로컬 상품 목록 맨 앞에 추가합니다.
// @Description
// @Description 파일 저장에 실패해도 상품은 목록에 남으므로 201로 응답하고 persist 필드로 저장 결과를 알립니다.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param product body catalog.EntryDraft true "등록할 상품 정보"
// @Success 201 {object} response.CreateProductResponse "등록 성공"
// @Failure 400 {object} response.ErrorResponse "검증 실패 (제목 누락, 0.01 미만 가격 등)"
// @Failure 415 {object} response.ErrorResponse "JSON이 아닌 요청 본문"
// @Router /api/v1/catalog/products [post]
func (h *Handler) CreateProductHandler(c echo.Context) error {
	var draft catalog.EntryDraft
	if err := c.Bind(&draft); err != nil {
		return ErrInvalidBody
	}

	entry, err := catalog.NewLocalEntry(draft)
	if err != nil {
		return err
	}

	status := h.store.AddLocalEntry(c.Request().Context(), entry)

	h.log(c).WithFields(applog.Fields{
		"product_id": entry.ID,
		"category":   entry.Category,
		"persisted":  status.Persisted,
	}).Info("로컬 상품 등록 완료")

	return c.JSON(http.StatusCreated, response.CreateProductResponse{
		Product: entry,
		Persist: status,
	})
}
