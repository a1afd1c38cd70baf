// Package remote 원격 상품 API에서 상품 목록을 한 페이지씩 가져오는 클라이언트를 제공합니다.
package remote

import (
	"context"
	"net/url"
	"strconv"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	"github.com/darkkaiser/catalog-server/internal/pkg/fetcher"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
	"github.com/tidwall/gjson"
)

const component = "catalog.remote"

// DefaultEndpoint 기본 원격 상품 API 주소입니다.
const DefaultEndpoint = "https://dummyjson.com/products"

// Page 원격 API의 한 페이지 응답입니다.
type Page struct {
	Products []catalog.Entry `json:"products"`
	Total    int             `json:"total"`
	Skip     int             `json:"skip"`
	Limit    int             `json:"limit"`
}

// Categories 페이지에 포함된 상품의 카테고리를 등장 순서대로 반환합니다. 중복은 제거하지 않습니다.
func (p *Page) Categories() []string {
	out := make([]string, 0, len(p.Products))
	for _, e := range p.Products {
		out = append(out, e.Category)
	}
	return out
}

// Client GET <endpoint>?limit=&skip= 형식으로 페이지를 요청합니다.
type Client struct {
	endpoint *url.URL
	fetcher  fetcher.Fetcher
}

// NewClient endpoint가 비어있으면 DefaultEndpoint를 사용합니다.
func NewClient(endpoint string, f fetcher.Fetcher) (*Client, error) {
	if f == nil {
		panic("Fetcher는 필수입니다")
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, NewErrInvalidEndpoint(endpoint, err)
	}

	return &Client{endpoint: u, fetcher: f}, nil
}

// FetchPage offset번째 상품부터 최대 limit개를 가져옵니다.
//
// 200이 아닌 응답, 전송 실패, 응답 형식 오류는 모두 에러로 반환됩니다.
func (c *Client) FetchPage(ctx context.Context, offset, limit int) (*Page, error) {
	pageURL := c.pageURL(offset, limit)

	var page Page
	body, err := fetcher.FetchJSON(ctx, c.fetcher, pageURL, &page)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(body) || !gjson.GetBytes(body, "products").IsArray() {
		return nil, NewErrUnexpectedResponse(pageURL, "products 배열이 없습니다")
	}
	if !gjson.GetBytes(body, "total").Exists() {
		return nil, NewErrUnexpectedResponse(pageURL, "total 값이 없습니다")
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"offset":   offset,
		"limit":    limit,
		"received": len(page.Products),
		"total":    page.Total,
	}).Debug("상품 페이지 수신 완료")

	return &page, nil
}

func (c *Client) pageURL(offset, limit int) string {
	u := *c.endpoint

	q := u.Query()
	q.Set("limit", strconv.Itoa(limit))
	q.Set("skip", strconv.Itoa(offset))
	u.RawQuery = q.Encode()

	return u.String()
}
