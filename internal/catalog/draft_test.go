package catalog

import (
	"strings"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() EntryDraft {
	return EntryDraft{
		Title:    "Handmade Cap",
		Price:    decimal.RequireFromString("12.50"),
		Category: "Hats",
		Stock:    3,
	}
}

func TestEntryDraft_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(d *EntryDraft)
		wantMsg string
	}{
		{name: "정상", modify: func(d *EntryDraft) {}},
		{name: "제목 누락", modify: func(d *EntryDraft) { d.Title = "" }, wantMsg: "Title is required"},
		{name: "제목 100자", modify: func(d *EntryDraft) { d.Title = strings.Repeat("가", 100) }},
		{name: "제목 101자", modify: func(d *EntryDraft) { d.Title = strings.Repeat("a", 101) }, wantMsg: "Title too long"},
		{name: "가격 0", modify: func(d *EntryDraft) { d.Price = decimal.Zero }, wantMsg: "Price must be greater than 0"},
		{name: "가격 음수", modify: func(d *EntryDraft) { d.Price = decimal.NewFromInt(-1) }, wantMsg: "Price must be greater than 0"},
		{name: "최소 가격", modify: func(d *EntryDraft) { d.Price = decimal.RequireFromString("0.01") }},
		{name: "카테고리 누락", modify: func(d *EntryDraft) { d.Category = "" }, wantMsg: "Category is required"},
		{name: "재고 음수", modify: func(d *EntryDraft) { d.Stock = -1 }, wantMsg: "Stock must be non-negative"},
		{name: "재고 0", modify: func(d *EntryDraft) { d.Stock = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := validDraft()
			tt.modify(&d)

			err := d.Validate()
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

// now, randIntN 패키지 변수를 교체하므로 병렬로 실행하지 않습니다.
func TestNewLocalEntry_Defaults(t *testing.T) {
	origNow, origRand := now, randIntN
	t.Cleanup(func() { now, randIntN = origNow, origRand })

	now = func() time.Time { return time.UnixMilli(1_700_000_000_000) }
	randIntN = func(n int) int { return 42 }

	e, err := NewLocalEntry(validDraft())
	require.NoError(t, err)

	assert.Equal(t, int64(1_700_000_000_042), e.ID)
	assert.Equal(t, "Handmade Cap", e.Title)
	assert.Equal(t, "New product: Handmade Cap", e.Description)
	assert.True(t, e.Price.Equal(decimal.RequireFromString("12.5")))
	assert.Zero(t, e.DiscountPercentage)
	assert.Zero(t, e.Rating)
	assert.Equal(t, 3, e.Stock)
	assert.Equal(t, LocalBrand, e.Brand)
	assert.Equal(t, "Hats", e.Category)
	assert.Equal(t, PlaceholderThumbnail, e.Thumbnail)
	assert.Equal(t, []string{PlaceholderThumbnail}, e.Images)
	assert.True(t, e.IsNew)
}

func TestNewLocalEntry_Thumbnail(t *testing.T) {
	t.Parallel()

	d := validDraft()
	d.Thumbnail = "data:image/png;base64,AAAA"

	e, err := NewLocalEntry(d)
	require.NoError(t, err)
	assert.Equal(t, d.Thumbnail, e.Thumbnail)
	assert.Equal(t, []string{d.Thumbnail}, e.Images)
}

func TestNewLocalEntry_Invalid(t *testing.T) {
	t.Parallel()

	d := validDraft()
	d.Category = ""

	_, err := NewLocalEntry(d)
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
}
