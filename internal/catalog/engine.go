package catalog

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Query 표시 목록을 계산할 때 적용할 검색어, 카테고리, 정렬 기준입니다.
type Query struct {
	Search   string
	Category string
	Criteria []SortCriterion
}

// Filter 주어진 상품 목록에 검색, 카테고리 필터, 다중 정렬을 차례로 적용한 새 목록을 반환합니다.
//
// 적용 순서는 항상 검색 → 카테고리 → 정렬입니다.
//   - 검색: Search가 비어있지 않으면 제목에 Search가 대소문자 구분 없이 포함된 상품만 남깁니다.
//   - 카테고리: Category가 비어있지 않고 AllCategories도 아니면 카테고리가 정확히 일치하는 상품만 남깁니다.
//   - 정렬: Criteria의 순서대로 비교하여 처음으로 0이 아닌 결과를 사용하는 안정 정렬입니다.
//
// 입력 슬라이스는 수정하지 않으며, 같은 입력에 대해 항상 같은 결과를 반환합니다.
func Filter(entries []Entry, q Query) []Entry {
	out := make([]Entry, 0, len(entries))

	needle := strings.ToLower(q.Search)
	filterCategory := q.Category != "" && q.Category != AllCategories
	for _, e := range entries {
		if needle != "" && !strings.Contains(strings.ToLower(e.Title), needle) {
			continue
		}
		if filterCategory && e.Category != q.Category {
			continue
		}
		out = append(out, e)
	}

	if len(q.Criteria) > 0 && len(out) > 1 {
		slices.SortStableFunc(out, newComparator(q.Criteria))
	}

	return out
}

// newComparator 정렬 기준 목록으로 복합 비교 함수를 만듭니다.
//
// collate.Collator는 동시 사용이 안전하지 않으므로 Filter 호출마다 새로 생성합니다.
func newComparator(criteria []SortCriterion) func(a, b Entry) int {
	var coll *collate.Collator
	for _, c := range criteria {
		if c.Field == SortByName {
			coll = collate.New(language.English)
			break
		}
	}

	return func(a, b Entry) int {
		for _, c := range criteria {
			var r int
			switch c.Field {
			case SortByPrice:
				r = a.Price.Cmp(b.Price)
			case SortByName:
				r = coll.CompareString(a.Title, b.Title)
			case SortByStock:
				r = cmp.Compare(a.Stock, b.Stock)
			case SortByRating:
				r = cmp.Compare(a.Rating, b.Rating)
			}

			if r != 0 {
				if c.Direction == Desc {
					return -r
				}
				return r
			}
		}
		return 0
	}
}
