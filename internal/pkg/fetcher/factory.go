package fetcher

import (
	"time"
)

// Config NewFromConfig가 조립할 Fetcher 체인의 설정입니다. zero value는 모두 기본값을 의미합니다.
type Config struct {
	// Timeout 요청 하나(재시도 1회분)의 타임아웃
	Timeout time.Duration

	// MaxRetries 일시적 실패에 대한 최대 재시도 횟수 (0이면 재시도하지 않음)
	MaxRetries    int
	MinRetryDelay time.Duration
	MaxRetryDelay time.Duration

	// MaxBytes 응답 본문 크기 제한 (0: 기본값, NoLimit: 제한 없음)
	MaxBytes int64

	// AllowedStatusCodes 비어있으면 200 OK만 허용합니다.
	AllowedStatusCodes []int

	DisableLogging bool
}

// NewFromConfig 설정에 따라 Fetcher 체인을 조립합니다.
//
// 안쪽부터 HTTPFetcher → MaxBytes → StatusCode → Retry → Logging 순서입니다.
// Retry가 StatusCode 바깥에 있으므로 5xx, 429 응답도 재시도 대상이 됩니다.
func NewFromConfig(cfg Config) Fetcher {
	var f Fetcher = NewHTTPFetcher(cfg.Timeout)

	f = NewMaxBytesFetcher(f, cfg.MaxBytes)
	f = NewStatusCodeFetcher(f, cfg.AllowedStatusCodes...)
	f = NewRetryFetcher(f, cfg.MaxRetries, cfg.MinRetryDelay, cfg.MaxRetryDelay)

	if !cfg.DisableLogging {
		f = NewLoggingFetcher(f)
	}

	return f
}
