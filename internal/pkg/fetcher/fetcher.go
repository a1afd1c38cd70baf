// Package fetcher 데코레이터 방식으로 조합하는 HTTP 클라이언트를 제공합니다.
//
// 기본 HTTPFetcher 위에 응답 크기 제한, 상태 코드 검증, 재시도, 로깅을 차례로 감싸서 사용합니다.
// 일반적인 조합은 NewFromConfig가 만들어 줍니다.
package fetcher

import (
	"context"
	"net/http"
)

const component = "fetcher"

// Fetcher HTTP 요청을 수행하는 인터페이스입니다.
//
// 반환된 응답의 Body는 호출자가 닫아야 합니다. 에러와 함께 응답이 반환될 수도 있습니다.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// Get url로 GET 요청을 보냅니다. 실패 시 응답 Body는 비우고 닫은 뒤 nil을 반환합니다.
func Get(ctx context.Context, f Fetcher, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, newErrRequestCreationFailed(err, url)
	}

	resp, err := f.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}

	return resp, nil
}
