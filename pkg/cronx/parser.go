// Package cronx 카탈로그 갱신 스케줄에 사용하는 Cron 표현식 파서와 검증 함수를 제공합니다.
package cronx

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// StandardParser 초 단위를 포함하는 6필드 형식([초] [분] [시] [일] [월] [요일])과
// @daily, @every 1h 같은 Descriptor를 해석하는 파서를 반환합니다. 5필드 형식은 지원하지 않습니다.
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// Validate 표현식이 StandardParser로 해석 가능한지 검사합니다. 앞뒤 공백은 무시합니다.
func Validate(spec string) error {
	trimmed := strings.TrimSpace(spec)
	if trimmed == "" {
		return fmt.Errorf("Cron 표현식이 비어있습니다")
	}

	if _, err := StandardParser().Parse(trimmed); err != nil {
		return fmt.Errorf("Cron 표현식 파싱 실패(spec=%q): %w", trimmed, err)
	}

	return nil
}
