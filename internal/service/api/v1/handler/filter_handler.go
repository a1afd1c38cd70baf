package handler

import (
	"net/http"

	"github.com/darkkaiser/catalog-server/internal/service/api/v1/model/request"
	"github.com/darkkaiser/catalog-server/internal/service/api/v1/model/response"
	"github.com/labstack/echo/v4"
)

// SetFilterHandler godoc
// @Summary 검색어/카테고리 변경
// @Description 검색어와 카테고리 필터를 변경합니다. 생략된 항목은 현재 값을 유지합니다.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param filter body request.FilterRequest true "필터 조건"
// @Success 200 {object} response.FilterResponse
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Router /api/v1/catalog/filter [put]
func (h *Handler) SetFilterHandler(c echo.Context) error {
	var req request.FilterRequest
	if err := c.Bind(&req); err != nil {
		return ErrInvalidBody
	}
	if err := request.Validate(req); err != nil {
		return err
	}

	if req.Search != nil {
		h.store.SetSearchTerm(*req.Search)
	}
	if req.Category != nil {
		h.store.SetSelectedCategory(*req.Category)
	}

	return c.JSON(http.StatusOK, response.FilterResponse{
		SearchTerm:       h.store.SearchTerm(),
		SelectedCategory: h.store.SelectedCategory(),
	})
}
