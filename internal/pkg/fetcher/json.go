package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"strings"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
	"golang.org/x/net/html/charset"
)

// FetchJSON url로 GET 요청을 보내고 응답 본문을 v로 디코딩합니다.
// 호출자가 원본으로 추가 검사를 할 수 있도록 UTF-8로 변환된 본문을 함께 반환합니다.
//
// Content-Type에 UTF-8이 아닌 charset이 명시되어 있으면 UTF-8로 변환한 뒤 디코딩합니다.
// 이미 분류된 에러(상태 코드, 크기 제한)는 그대로, 분류되지 않은 전송 실패는 Unavailable,
// JSON 해석 실패는 ParsingFailed 유형으로 반환합니다. ctx가 끝나서 중단된 요청은 기한 초과면 Timeout,
// 취소면 Unavailable이며 errors.Is로 원래의 ctx 에러를 확인할 수 있습니다.
func FetchJSON(ctx context.Context, f Fetcher, url string, v any) ([]byte, error) {
	resp, err := Get(ctx, f, url)
	if err != nil {
		return nil, classify(ctx, err, url)
	}
	defer resp.Body.Close()

	if err := CheckResponseStatus(resp); err != nil {
		return nil, err
	}

	contentType := resp.Header.Get("Content-Type")

	var reader io.Reader = resp.Body
	if label := declaredCharset(contentType); label != "" {
		utf8Reader, err := charset.NewReaderLabel(label, resp.Body)
		if err == nil {
			reader = utf8Reader
		} else {
			applog.WithComponentAndFields(component, applog.Fields{
				"url":          url,
				"content_type": contentType,
				"error":        err,
			}).Warn("문자 인코딩 변환 실패: 인코딩 변환 없이 JSON 파싱을 계속합니다")
		}
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, classify(ctx, err, url)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return nil, newErrJSONDecodeFailed(err, url)
	}

	return body, nil
}

// declaredCharset Content-Type에 UTF-8이 아닌 charset이 명시되어 있으면 그 이름을 반환합니다.
// JSON은 기본이 UTF-8이므로 명시되지 않은 경우 추측하지 않습니다.
func declaredCharset(contentType string) string {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}

	cs := strings.ToLower(strings.TrimSpace(params["charset"]))
	if cs == "" || cs == "utf-8" || cs == "utf8" {
		return ""
	}
	return cs
}

func classify(ctx context.Context, err error, url string) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return newErrTimeout(err, url)
		}
		return newErrCanceled(err, url)
	}

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		return err
	}
	return newErrUnavailable(err, url)
}
