// Package catalog 상품 카탈로그의 도메인 모델, 상태 저장소(Store), 검색/필터/정렬 엔진을 제공합니다.
//
// 원격 API에서 받은 상품 목록과 사용자가 직접 등록한 로컬 상품 목록을 하나의 Store에 보관하고,
// 화면(프레젠테이션 계층)이 요청할 때마다 현재 검색어, 카테고리, 정렬 기준으로 표시 목록을 새로 계산합니다.
package catalog

import (
	"strconv"

	"github.com/shopspring/decimal"
)

func init() {
	// 원격 API와 로컬 저장소 모두 가격을 JSON 숫자로 주고받습니다.
	decimal.MarshalJSONWithoutQuotes = true
}

// AllCategories 카테고리 필터를 적용하지 않음을 나타내는 값입니다. 빈 문자열도 같은 의미입니다.
const AllCategories = "all"

// Entry 카탈로그에 표시되는 상품 하나입니다.
//
// ID는 출처(원격/로컬) 목록 안에서만 유일하며, 두 목록 사이의 중복은 허용됩니다.
type Entry struct {
	ID                 int64           `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	DiscountPercentage float64         `json:"discountPercentage"`
	Rating             float64         `json:"rating"`
	Stock              int             `json:"stock"`
	Brand              string          `json:"brand"`
	Category           string          `json:"category"`
	Thumbnail          string          `json:"thumbnail"`
	Images             []string        `json:"images"`

	// IsNew 사용자가 직접 등록한 로컬 상품이면 true입니다.
	IsNew bool `json:"isNew,omitempty"`
}

// IsLocal 사용자가 직접 등록한 상품인지 여부를 반환합니다.
func (e Entry) IsLocal() bool {
	return e.IsNew
}

// Key 출처까지 포함하여 목록 안에서 항목을 구분하는 키를 반환합니다.
func (e Entry) Key() string {
	if e.IsNew {
		return "local-" + strconv.FormatInt(e.ID, 10)
	}
	return "remote-" + strconv.FormatInt(e.ID, 10)
}
