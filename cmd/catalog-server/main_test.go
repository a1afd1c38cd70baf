package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	"github.com/darkkaiser/catalog-server/internal/catalog/storage"
	"github.com/darkkaiser/catalog-server/internal/config"
	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	"github.com/darkkaiser/catalog-server/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T, endpoint string) *config.AppConfig {
	t.Helper()

	appConfig, err := config.LoadWithFile("")
	require.NoError(t, err)

	appConfig.Catalog.Endpoint = endpoint
	appConfig.Catalog.PageSize = 10
	appConfig.Catalog.DataDir = t.TempDir()
	appConfig.HTTPRetry.MaxRetries = 0

	return appConfig
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := newRootCommand()

	assert.Equal(t, config.AppName, cmd.Use)
	assert.NotNil(t, cmd.RunE, "하위 명령 없이 실행하면 serve로 동작해야 합니다")
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"serve", "browse"})

	browse, _, err := cmd.Find([]string{"browse"})
	require.NoError(t, err)
	for _, flag := range []string{"search", "category", "sort", "pages"} {
		assert.NotNil(t, browse.Flags().Lookup(flag), flag)
	}
}

func TestBanner(t *testing.T) {
	t.Parallel()

	out := fmt.Sprintf(banner, "v1.2.0")

	assert.Contains(t, out, "v1.2.0")
	assert.Contains(t, out, "developed by DarkKaiser")
	assert.NotContains(t, out, "%!")
}

func TestRunBrowse(t *testing.T) {
	t.Parallel()

	srv := testutil.NewCatalogServer(testutil.SampleProducts(25))
	defer srv.Close()

	appConfig := newTestConfig(t, srv.Endpoint())

	// 이전 실행에서 저장된 로컬 상품
	fileStore, err := storage.NewFileStore(appConfig.Catalog.DataDir)
	require.NoError(t, err)
	require.NoError(t, storage.NewLocalEntries(fileStore, appConfig.Catalog.StorageKey).Save(context.Background(), []catalog.Entry{
		{ID: 900, Title: "Handmade Laptop Sleeve", Price: decimal.RequireFromString("1234.5"), Category: "laptops", IsNew: true},
	}))

	var out bytes.Buffer
	err = runBrowse(context.Background(), &out, appConfig, browseOptions{
		category: "laptops",
		sort:     "price:desc",
		pages:    2,
	})
	require.NoError(t, err)

	text := out.String()

	// 원격 20개 중 laptops는 2, 5, 8, 11, 14, 17, 20번
	assert.Contains(t, text, "Product 20")
	assert.Contains(t, text, "Product 02")
	assert.NotContains(t, text, "Product 23", "두 페이지까지만 불러와야 합니다")
	assert.NotContains(t, text, "Product 01")

	// 로컬 상품은 정렬과 무관하게 앞에 표시됩니다.
	assert.Less(t, strings.Index(text, "Handmade Laptop Sleeve"), strings.Index(text, "Product 20"))
	assert.Less(t, strings.Index(text, "Product 20"), strings.Index(text, "Product 02"))
	assert.Contains(t, text, "🆕")
	assert.Contains(t, text, "🚫", "재고 없는 상품에는 품절 마크가 표시되어야 합니다")
	assert.Contains(t, text, "$1,234.50")
	assert.Contains(t, text, "8개 표시 (로컬 1, 원격 20) | Price ↓ | 추가 페이지: true")

	assert.Equal(t, 2, srv.Requests())
}

func TestRunBrowse_StopsWhenNoMorePages(t *testing.T) {
	t.Parallel()

	srv := testutil.NewCatalogServer(testutil.SampleProducts(15))
	defer srv.Close()

	var out bytes.Buffer
	err := runBrowse(context.Background(), &out, newTestConfig(t, srv.Endpoint()), browseOptions{pages: 5})
	require.NoError(t, err)

	assert.Equal(t, 2, srv.Requests())
	assert.Contains(t, out.String(), "15개 표시 (로컬 0, 원격 15) | Sort | 추가 페이지: false")
}

func TestRunBrowse_InvalidOptions(t *testing.T) {
	t.Parallel()

	srv := testutil.NewCatalogServer(testutil.SampleProducts(5))
	defer srv.Close()

	tests := []struct {
		name string
		opts browseOptions
	}{
		{"지원하지 않는 정렬 필드", browseOptions{sort: "weight:asc", pages: 1}},
		{"지원하지 않는 정렬 방향", browseOptions{sort: "price:up", pages: 1}},
		{"음수 페이지", browseOptions{pages: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runBrowse(context.Background(), &out, newTestConfig(t, srv.Endpoint()), tt.opts)

			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
			assert.Empty(t, out.String())
		})
	}

	assert.Zero(t, srv.Requests())
}
