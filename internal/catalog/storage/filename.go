package storage

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// filenameReplacer 경로 구분자와 파일 시스템 예약 문자를 하이픈으로 치환합니다.
var filenameReplacer = strings.NewReplacer(
	"..", "--",
	"/", "-",
	"\\", "-",
	"|", "-",
	"<", "-",
	">", "-",
	":", "-",
	"\"", "-",
	"?", "-",
	"*", "-",
)

// maxReadableBytes 파일명 중 사람이 읽을 수 있는 부분의 최대 바이트 수입니다.
const maxReadableBytes = 80

// keyFilename 저장 키로부터 "catalog-{kebab-key}-{16자리 해시}.json" 형식의 파일명을 만듭니다.
//
// 해시는 원본 키로 계산하므로, 정제 후 같은 이름이 되는 서로 다른 키도 구분됩니다.
func keyFilename(key string) string {
	readable := truncateByBytes(sanitizeName(key), maxReadableBytes)

	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(key))

	return fmt.Sprintf("catalog-%s-%016x.json", readable, hasher.Sum64())
}

func sanitizeName(s string) string {
	kebab := strcase.ToKebab(s)

	kebab = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return '-'
		}
		return r
	}, kebab)

	return filenameReplacer.Replace(kebab)
}

// truncateByBytes UTF-8 문자가 잘리지 않도록 rune 경계에서 limit 바이트 이하로 자릅니다.
func truncateByBytes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	n := 0
	for n < len(s) {
		_, size := utf8.DecodeRuneInString(s[n:])
		if n+size > limit {
			break
		}
		n += size
	}
	return s[:n]
}
