package catalog

import (
	"fmt"
	"math/rand/v2"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// PlaceholderThumbnail 이미지 없이 등록된 로컬 상품의 기본 썸네일입니다.
const PlaceholderThumbnail = "/placeholder.png?height=200&width=200"

// LocalBrand 로컬 상품의 브랜드입니다.
const LocalBrand = "Local"

// 테스트에서 교체합니다.
var (
	now      = time.Now
	randIntN = rand.IntN
)

// EntryDraft 사용자가 입력한 로컬 상품 정보입니다.
type EntryDraft struct {
	Title     string          `json:"title" validate:"required,max=100"`
	Price     decimal.Decimal `json:"price" validate:"gte=0.01"`
	Category  string          `json:"category" validate:"required"`
	Stock     int             `json:"stock" validate:"min=0"`
	Thumbnail string          `json:"thumbnail"`
}

var draftValidate = newDraftValidator()

func newDraftValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// decimal.Decimal은 숫자 비교 태그(gte 등)를 적용할 수 있도록 float64로 변환하여 검증합니다.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	return v
}

// Validate 입력값을 검증합니다. 실패하면 InvalidInput 에러를 반환합니다.
func (d EntryDraft) Validate() error {
	err := draftValidate.Struct(d)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return NewErrInvalidDraft(fmt.Sprintf("상품 입력값 검증에 실패했습니다: %v", err))
	}

	fe := validationErrors[0]
	switch fe.Field() {
	case "title":
		if fe.Tag() == "max" {
			return NewErrInvalidDraft("Title too long")
		}
		return NewErrInvalidDraft("Title is required")
	case "price":
		return NewErrInvalidDraft("Price must be greater than 0")
	case "category":
		return NewErrInvalidDraft("Category is required")
	case "stock":
		return NewErrInvalidDraft("Stock must be non-negative")
	}

	return NewErrInvalidDraft(fmt.Sprintf("상품 입력값이 올바르지 않습니다: %s (조건: %s)", fe.Field(), fe.Tag()))
}

// NewLocalEntry 입력값을 검증하고 로컬 상품의 기본값을 채운 Entry를 생성합니다.
func NewLocalEntry(d EntryDraft) (Entry, error) {
	if err := d.Validate(); err != nil {
		return Entry{}, err
	}

	thumbnail := d.Thumbnail
	if thumbnail == "" {
		thumbnail = PlaceholderThumbnail
	}

	return Entry{
		ID:                 generateID(),
		Title:              d.Title,
		Description:        "New product: " + d.Title,
		Price:              d.Price,
		DiscountPercentage: 0,
		Rating:             0,
		Stock:              d.Stock,
		Brand:              LocalBrand,
		Category:           d.Category,
		Thumbnail:          thumbnail,
		Images:             []string{thumbnail},
		IsNew:              true,
	}, nil
}

// generateID 0~999999 범위의 난수에 현재 Unix 밀리초를 더한 값입니다. 유일성은 보장하지 않습니다.
func generateID() int64 {
	return int64(randIntN(1_000_000)) + now().UnixMilli()
}
