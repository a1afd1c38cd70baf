package request

// FilterRequest 검색어와 카테고리 필터 변경 요청 (PUT /filter)
//
// 생략된 항목은 현재 값을 유지합니다. 빈 검색어는 검색 조건을 해제하고,
// 빈 카테고리 또는 "all"은 카테고리 조건을 해제합니다.
type FilterRequest struct {
	Search   *string `json:"search" validate:"omitempty,max=200"`
	Category *string `json:"category" validate:"omitempty,max=100"`
}
