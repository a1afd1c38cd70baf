package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	"github.com/shopspring/decimal"
)

// CatalogServer limit/skip 쿼리로 페이지를 나누어 응답하는 원격 상품 API 대역입니다.
type CatalogServer struct {
	*httptest.Server

	products []catalog.Entry
	requests atomic.Int32
}

// NewCatalogServer products 전체를 원격 목록으로 제공하는 서버를 시작합니다. 종료는 호출자가 Close로 합니다.
func NewCatalogServer(products []catalog.Entry) *CatalogServer {
	s := &CatalogServer{products: products}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serveProducts))
	return s
}

// Endpoint 상품 목록 주소를 반환합니다.
func (s *CatalogServer) Endpoint() string {
	return s.URL + "/products"
}

// Requests 지금까지 받은 요청 수를 반환합니다.
func (s *CatalogServer) Requests() int {
	return int(s.requests.Load())
}

func (s *CatalogServer) serveProducts(w http.ResponseWriter, r *http.Request) {
	s.requests.Add(1)

	if r.URL.Path != "/products" {
		http.NotFound(w, r)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))

	start := min(max(skip, 0), len(s.products))
	end := min(start+max(limit, 0), len(s.products))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"products": s.products[start:end],
		"total":    len(s.products),
		"skip":     skip,
		"limit":    limit,
	})
}

// SampleProducts 테스트용 원격 상품 n개를 생성합니다. 카테고리는 세 종류가 번갈아 사용됩니다.
func SampleProducts(n int) []catalog.Entry {
	categories := []string{"smartphones", "laptops", "fragrances"}

	products := make([]catalog.Entry, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, catalog.Entry{
			ID:       int64(i),
			Title:    fmt.Sprintf("Product %02d", i),
			Price:    decimal.NewFromInt(int64(i * 10)),
			Rating:   float64(i%5) + 0.5,
			Stock:    i * 3,
			Brand:    "Sample",
			Category: categories[(i-1)%len(categories)],
		})
	}
	return products
}
