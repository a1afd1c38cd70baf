package catalog

import (
	"testing"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSortCriterion_Label(t *testing.T) {
	t.Parallel()

	tests := []struct {
		field SortField
		dir   SortDirection
		want  string
	}{
		{SortByPrice, Asc, "Price ↑"},
		{SortByPrice, Desc, "Price ↓"},
		{SortByName, Asc, "Name ↑"},
		{SortByStock, Desc, "Stock ↓"},
		{SortByRating, Asc, "Rating ↑"},
	}

	for _, tt := range tests {
		t.Run(string(tt.field)+"_"+string(tt.dir), func(t *testing.T) {
			t.Parallel()

			c, err := NewSortCriterion(tt.field, tt.dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Label)
		})
	}
}

func TestNewSortCriterion_Invalid(t *testing.T) {
	t.Parallel()

	_, err := NewSortCriterion("discount", Asc)
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))

	_, err = NewSortCriterion(SortByPrice, "up")
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
}

func TestSortCriterion_Toggled(t *testing.T) {
	t.Parallel()

	c := mustCriterion(SortByStock, Asc).Toggled()
	assert.Equal(t, Desc, c.Direction)
	assert.Equal(t, "Stock ↓", c.Label)

	c = c.Toggled()
	assert.Equal(t, Asc, c.Direction)
	assert.Equal(t, "Stock ↑", c.Label)
}

func TestParseSortCriteria(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "빈 문자열", input: "", want: ""},
		{name: "단일 기준", input: "price:desc", want: "price:desc"},
		{name: "방향 생략", input: "name", want: "name:asc"},
		{name: "여러 기준", input: "price:desc, name:asc", want: "price:desc,name:asc"},
		{name: "대소문자 무시", input: "PRICE:DESC", want: "price:desc"},
		{name: "같은 필드는 제자리 교체", input: "price:asc,name:asc,price:desc", want: "price:desc,name:asc"},
		{name: "빈 항목 무시", input: ",stock:desc,,", want: "stock:desc"},
		{name: "알 수 없는 필드", input: "color:asc", wantErr: true},
		{name: "알 수 없는 방향", input: "price:up", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseSortCriteria(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatSortCriteria(got))
		})
	}
}

func TestSortSummary(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Sort", SortSummary(nil))
	assert.Equal(t, "Price ↓", SortSummary([]SortCriterion{mustCriterion(SortByPrice, Desc)}))
	assert.Equal(t, "2 sorts", SortSummary([]SortCriterion{
		mustCriterion(SortByPrice, Desc),
		mustCriterion(SortByName, Asc),
	}))
}

func TestUpsertCriterion_Law(t *testing.T) {
	t.Parallel()

	base := []SortCriterion{
		mustCriterion(SortByPrice, Asc),
		mustCriterion(SortByName, Asc),
	}

	t.Run("있는 필드는 위치를 유지하며 교체", func(t *testing.T) {
		t.Parallel()

		got := upsertCriterion(base, mustCriterion(SortByPrice, Desc))
		assert.Equal(t, "price:desc,name:asc", FormatSortCriteria(got))
		assert.Equal(t, "price:asc,name:asc", FormatSortCriteria(base), "원본은 수정되지 않아야 합니다")
	})

	t.Run("없는 필드는 맨 뒤에 추가", func(t *testing.T) {
		t.Parallel()

		got := upsertCriterion(base, mustCriterion(SortByRating, Desc))
		assert.Equal(t, "price:asc,name:asc,rating:desc", FormatSortCriteria(got))
	})

	t.Run("필드당 하나만 유지", func(t *testing.T) {
		t.Parallel()

		got := base
		for _, c := range []SortCriterion{
			mustCriterion(SortByName, Desc),
			mustCriterion(SortByName, Asc),
			mustCriterion(SortByStock, Asc),
			mustCriterion(SortByStock, Desc),
		} {
			got = upsertCriterion(got, c)
		}

		seen := map[SortField]int{}
		for _, c := range got {
			seen[c.Field]++
		}
		for field, n := range seen {
			assert.Equal(t, 1, n, "필드 %s", field)
		}
		assert.Equal(t, "price:asc,name:asc,stock:desc", FormatSortCriteria(got))
	})
}
