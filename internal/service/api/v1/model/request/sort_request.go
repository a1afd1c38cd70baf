package request

import "github.com/darkkaiser/catalog-server/internal/catalog"

// SortRequest 정렬 기준 추가/변경 요청 (POST /sort)
type SortRequest struct {
	// Field 정렬 필드 (price, name, stock, rating)
	Field string `json:"field" validate:"required"`

	// Direction 정렬 방향 (asc, desc). 생략하면 asc입니다.
	Direction string `json:"direction" validate:"omitempty,oneof=asc desc"`
}

// Criterion 요청을 정렬 기준으로 변환합니다. 지원하지 않는 필드는 InvalidInput 에러입니다.
func (r SortRequest) Criterion() (catalog.SortCriterion, error) {
	direction := catalog.SortDirection(r.Direction)
	if direction == "" {
		direction = catalog.Asc
	}
	return catalog.NewSortCriterion(catalog.SortField(r.Field), direction)
}
