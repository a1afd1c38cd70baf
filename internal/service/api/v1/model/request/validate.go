// Package request v1 API의 요청 본문 모델과 검증 함수를 제공합니다.
package request

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// 에러 메시지에 json 태그 이름을 사용합니다.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})

	return validate
}

// Validate 구조체의 validate 태그를 기반으로 검증하고, 실패하면 첫 번째 위반 항목을 설명하는 InvalidInput 에러를 반환합니다.
func Validate(req any) error {
	err := getValidator().Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, "요청 값 검증에 실패했습니다")
	}

	return apperrors.New(apperrors.InvalidInput, formatFieldError(validationErrors[0]))
}

func formatFieldError(fieldErr validator.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s는 필수입니다", field)
	case "max":
		return fmt.Sprintf("%s는 최대 %s자까지 입력 가능합니다", field, fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s는 다음 중 하나여야 합니다: %s", field, fieldErr.Param())
	default:
		return fmt.Sprintf("%s 검증 실패: %s", field, fieldErr.Tag())
	}
}
