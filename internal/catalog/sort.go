package catalog

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// SortField 정렬 기준으로 사용할 수 있는 상품 속성입니다.
type SortField string

const (
	SortByPrice  SortField = "price"
	SortByName   SortField = "name"
	SortByStock  SortField = "stock"
	SortByRating SortField = "rating"
)

// SortFields 지원하는 정렬 필드 목록입니다.
var SortFields = []SortField{SortByPrice, SortByName, SortByStock, SortByRating}

// Valid 지원하는 정렬 필드인지 확인합니다.
func (f SortField) Valid() bool {
	switch f {
	case SortByPrice, SortByName, SortByStock, SortByRating:
		return true
	}
	return false
}

// Label 화면에 표시할 필드 이름을 반환합니다. (예: "price" → "Price")
func (f SortField) Label() string {
	return strcase.ToCamel(string(f))
}

// SortDirection 정렬 방향입니다.
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// Valid 지원하는 정렬 방향인지 확인합니다.
func (d SortDirection) Valid() bool {
	return d == Asc || d == Desc
}

// Opposite 반대 방향을 반환합니다.
func (d SortDirection) Opposite() SortDirection {
	if d == Asc {
		return Desc
	}
	return Asc
}

func (d SortDirection) arrow() string {
	if d == Desc {
		return "↓"
	}
	return "↑"
}

// SortCriterion 정렬 기준 하나입니다. Label은 Field와 Direction으로부터 만들어집니다.
type SortCriterion struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
	Label     string        `json:"label"`
}

// NewSortCriterion 표시용 Label이 채워진 정렬 기준을 생성합니다.
func NewSortCriterion(field SortField, direction SortDirection) (SortCriterion, error) {
	if !field.Valid() {
		return SortCriterion{}, NewErrUnsupportedSortField(string(field))
	}
	if !direction.Valid() {
		return SortCriterion{}, NewErrUnsupportedSortDirection(string(direction))
	}
	return newSortCriterion(field, direction), nil
}

func newSortCriterion(field SortField, direction SortDirection) SortCriterion {
	return SortCriterion{
		Field:     field,
		Direction: direction,
		Label:     field.Label() + " " + direction.arrow(),
	}
}

// Toggled 방향을 뒤집고 Label을 다시 만든 정렬 기준을 반환합니다.
func (c SortCriterion) Toggled() SortCriterion {
	return newSortCriterion(c.Field, c.Direction.Opposite())
}

func (c SortCriterion) String() string {
	return string(c.Field) + ":" + string(c.Direction)
}

// ParseSortCriteria "price:desc,name:asc" 형식의 문자열을 정렬 기준 목록으로 변환합니다.
//
// 방향을 생략하면 asc로 간주합니다. 같은 필드가 여러 번 나오면 뒤의 값이 앞의 위치를 대체합니다.
// 빈 문자열은 빈 목록입니다.
func ParseSortCriteria(s string) ([]SortCriterion, error) {
	var criteria []SortCriterion
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		field, dir, found := strings.Cut(part, ":")
		if !found {
			dir = string(Asc)
		}

		c, err := NewSortCriterion(SortField(strings.ToLower(strings.TrimSpace(field))), SortDirection(strings.ToLower(strings.TrimSpace(dir))))
		if err != nil {
			return nil, err
		}
		criteria = upsertCriterion(criteria, c)
	}
	return criteria, nil
}

// FormatSortCriteria ParseSortCriteria의 역변환입니다.
func FormatSortCriteria(criteria []SortCriterion) string {
	parts := make([]string, 0, len(criteria))
	for _, c := range criteria {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, ",")
}

// SortSummary 정렬 버튼에 표시할 문구를 반환합니다.
func SortSummary(criteria []SortCriterion) string {
	switch len(criteria) {
	case 0:
		return "Sort"
	case 1:
		return criteria[0].Label
	default:
		return fmt.Sprintf("%d sorts", len(criteria))
	}
}

// upsertCriterion 같은 필드의 기준이 있으면 그 자리에서 교체하고, 없으면 맨 뒤에 추가합니다.
// 원본 슬라이스는 수정하지 않습니다.
func upsertCriterion(criteria []SortCriterion, c SortCriterion) []SortCriterion {
	out := make([]SortCriterion, len(criteria), len(criteria)+1)
	copy(out, criteria)

	for i := range out {
		if out[i].Field == c.Field {
			out[i] = c
			return out
		}
	}
	return append(out, c)
}

func removeCriterion(criteria []SortCriterion, field SortField) []SortCriterion {
	out := make([]SortCriterion, 0, len(criteria))
	for _, c := range criteria {
		if c.Field != field {
			out = append(out, c)
		}
	}
	return out
}

func toggleCriterion(criteria []SortCriterion, field SortField) []SortCriterion {
	out := make([]SortCriterion, len(criteria))
	copy(out, criteria)

	for i := range out {
		if out[i].Field == field {
			out[i] = out[i].Toggled()
			break
		}
	}
	return out
}
