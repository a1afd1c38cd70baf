// Package mark 상품 목록 출력에 사용하는 이모지 마크를 정의합니다.
package mark

// Mark 이모지 마크입니다.
type Mark string

const (
	// New 사용자가 직접 등록한 로컬 상품
	New Mark = "🆕"

	// SoldOut 재고 없음
	SoldOut Mark = "🚫"
)

// WithSpace 마크 앞에 구분용 공백을 붙여 반환합니다. 빈 마크는 빈 문자열입니다.
func (m Mark) WithSpace() string {
	if m == "" {
		return ""
	}
	return " " + string(m)
}

func (m Mark) String() string {
	return string(m)
}

// Join 조건이 참인 마크만 공백으로 이어 붙입니다.
func Join(marks map[Mark]bool) string {
	var out string
	for _, m := range []Mark{New, SoldOut} {
		if marks[m] {
			out += m.WithSpace()
		}
	}
	return out
}
