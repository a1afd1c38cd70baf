package fetcher

import (
	"net/http"
	"time"
)

// DefaultTimeout HTTPFetcher의 기본 요청 타임아웃입니다.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent 요청에 User-Agent가 없을 때 사용하는 값입니다.
const DefaultUserAgent = "catalog-server (+https://github.com/darkkaiser/catalog-server)"

// HTTPFetcher net/http 클라이언트로 실제 요청을 수행하는 가장 안쪽 Fetcher입니다.
type HTTPFetcher struct {
	client *http.Client
}

var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher timeout이 0 이하이면 DefaultTimeout을 사용합니다.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 10

	return &HTTPFetcher{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Do User-Agent와 Accept 헤더가 없으면 기본값을 채운 뒤 요청을 수행합니다.
func (h *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", DefaultUserAgent)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	return h.client.Do(req)
}

// CloseIdleConnections 유휴 커넥션을 정리합니다.
func (h *HTTPFetcher) CloseIdleConnections() {
	h.client.CloseIdleConnections()
}
