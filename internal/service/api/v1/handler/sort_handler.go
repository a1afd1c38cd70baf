package handler

import (
	"net/http"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	"github.com/darkkaiser/catalog-server/internal/service/api/v1/model/request"
	"github.com/darkkaiser/catalog-server/internal/service/api/v1/model/response"
	"github.com/labstack/echo/v4"
)

// AddSortHandler godoc
// @Summary 정렬 기준 추가/변경
// @Description 정렬 기준을 추가합니다. 같은 필드의 기준이 있으면 그 자리에서 교체합니다.
// @Tags Sort
// @Accept json
// @Produce json
// @Param criterion body request.SortRequest true "정렬 기준"
// @Success 200 {object} response.SortResponse
// @Failure 400 {object} response.ErrorResponse "지원하지 않는 필드 또는 방향"
// @Router /api/v1/catalog/sort [post]
func (h *Handler) AddSortHandler(c echo.Context) error {
	var req request.SortRequest
	if err := c.Bind(&req); err != nil {
		return ErrInvalidBody
	}
	if err := request.Validate(req); err != nil {
		return err
	}

	criterion, err := req.Criterion()
	if err != nil {
		return err
	}

	h.store.AddSortCriterion(criterion)

	return h.sortResponse(c)
}

// RemoveSortHandler godoc
// @Summary 정렬 기준 제거
// @Description 필드의 정렬 기준을 제거합니다. 없는 기준이면 아무 일도 하지 않습니다.
// @Tags Sort
// @Produce json
// @Param field path string true "정렬 필드" Enums(price, name, stock, rating)
// @Success 200 {object} response.SortResponse
// @Failure 400 {object} response.ErrorResponse "지원하지 않는 필드"
// @Router /api/v1/catalog/sort/{field} [delete]
func (h *Handler) RemoveSortHandler(c echo.Context) error {
	field, err := sortFieldParam(c)
	if err != nil {
		return err
	}

	h.store.RemoveSortCriterion(field)

	return h.sortResponse(c)
}

// ToggleSortHandler godoc
// @Summary 정렬 방향 전환
// @Description 필드의 정렬 방향을 뒤집습니다. 없는 기준이면 아무 일도 하지 않습니다.
// @Tags Sort
// @Produce json
// @Param field path string true "정렬 필드" Enums(price, name, stock, rating)
// @Success 200 {object} response.SortResponse
// @Failure 400 {object} response.ErrorResponse "지원하지 않는 필드"
// @Router /api/v1/catalog/sort/{field} [patch]
func (h *Handler) ToggleSortHandler(c echo.Context) error {
	field, err := sortFieldParam(c)
	if err != nil {
		return err
	}

	h.store.ToggleSortDirection(field)

	return h.sortResponse(c)
}

// ClearSortHandler godoc
// @Summary 정렬 기준 전체 해제
// @Tags Sort
// @Produce json
// @Success 200 {object} response.SortResponse
// @Router /api/v1/catalog/sort [delete]
func (h *Handler) ClearSortHandler(c echo.Context) error {
	h.store.ClearSortCriteria()

	return h.sortResponse(c)
}

func (h *Handler) sortResponse(c echo.Context) error {
	criteria := h.store.SortCriteria()

	return c.JSON(http.StatusOK, response.SortResponse{
		SortOptions: criteria,
		SortSummary: catalog.SortSummary(criteria),
	})
}

// sortFieldParam 경로의 :field 값을 검증하여 반환합니다.
func sortFieldParam(c echo.Context) (catalog.SortField, error) {
	field := catalog.SortField(c.Param("field"))
	if !field.Valid() {
		return "", catalog.NewErrUnsupportedSortField(string(field))
	}
	return field, nil
}
