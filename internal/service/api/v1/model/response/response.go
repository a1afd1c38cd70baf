// Package response v1 API의 응답 본문 모델을 제공합니다.
package response

import "github.com/darkkaiser/catalog-server/internal/catalog"

// CreateProductResponse 로컬 상품 등록 결과 (POST /products)
//
// 저장에 실패해도 상품은 메모리 목록에 남으므로 201로 응답하며, 저장 결과는 Persist로 전달합니다.
type CreateProductResponse struct {
	Product catalog.Entry         `json:"product"`
	Persist catalog.PersistStatus `json:"persist"`
}

// CategoriesResponse 카테고리 목록 (GET /categories). 첫 번째 원소는 항상 "all"입니다.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// SortResponse 정렬 조건 변경 후의 정렬 기준 목록과 정렬 버튼 문구
type SortResponse struct {
	SortOptions []catalog.SortCriterion `json:"sortOptions"`
	SortSummary string                  `json:"sortSummary"`
}

// FilterResponse 필터 변경 후의 검색어와 카테고리
type FilterResponse struct {
	SearchTerm       string `json:"searchTerm"`
	SelectedCategory string `json:"selectedCategory"`
}

// PaginationResponse 페이지 요청 결과 (POST /load-more, POST /refresh)
type PaginationResponse struct {
	// Started 페이지 요청이 실제로 수행되었는지 여부
	Started     bool `json:"started"`
	HasMore     bool `json:"hasMore"`
	Loading     bool `json:"loading"`
	RemoteCount int  `json:"remoteCount"`
}
