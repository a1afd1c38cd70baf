package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// maxGroupedInt 정수부를 int64로 옮겨 자릿수 구분 기호를 붙일 수 있는 최댓값입니다.
var maxGroupedInt = decimal.NewFromInt(1<<63 - 1)

// FormatPrice 가격을 미국 달러 형식으로 표시합니다. (예: 1234.5 → "$1,234.50")
//
// 소수부는 decimal 값에서 바로 자르므로 큰 가격에서도 float64 변환 오차가 생기지 않습니다.
func FormatPrice(price decimal.Decimal) string {
	sign := ""
	if price.Round(2).IsNegative() {
		sign = "-"
	}

	intPart, frac, _ := strings.Cut(price.Abs().StringFixed(2), ".")

	return sign + "$" + groupThousands(intPart) + "." + frac
}

func groupThousands(digits string) string {
	d, err := decimal.NewFromString(digits)
	if err == nil && d.LessThanOrEqual(maxGroupedInt) {
		return usdPrinter.Sprintf("%d", d.IntPart())
	}

	// int64 범위를 넘는 정수부는 세 자리마다 직접 구분합니다.
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
