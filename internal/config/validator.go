package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/process-server/internal/pkg/errors"
	"github.com/darkkaiser/process-server/pkg/cronx"
	"github.com/darkkaiser/process-server/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// newValidator 커스텀 검증 태그가 등록된 Validator 인스턴스를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 Go 필드명 대신 JSON 키 이름이 나오도록 한다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("cors_origin", validateCORSOrigin); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'cors_origin' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}
	if err := v.RegisterValidation("cron_spec", validateCronSpec); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'cron_spec' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}
	if err := v.RegisterValidation("listen_port", validatePort); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'listen_port' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}
	if err := v.RegisterValidation("readable_dir", validateReadableDir); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'readable_dir' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return v
}

func validateCORSOrigin(fl validator.FieldLevel) bool {
	return validation.ValidateCORSOrigin(fl.Field().String()) == nil
}

func validateCronSpec(fl validator.FieldLevel) bool {
	return cronx.Validate(fl.Field().String()) == nil
}

func validatePort(fl validator.FieldLevel) bool {
	return validation.ValidatePort(int(fl.Field().Int())) == nil
}

func validateReadableDir(fl validator.FieldLevel) bool {
	return validation.ValidateDir(fl.Field().String()) == nil
}

// firstFieldError validator 에러에서 첫 번째 필드 에러를 꺼냅니다.
func firstFieldError(err error) (validator.FieldError, bool) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return validationErrors[0], true
	}
	return nil, false
}

// checkStruct 전용 메시지가 없는 검증 에러를 사용자 친화적인 에러로 변환합니다.
func checkStruct(err error, contextName string) error {
	if fieldErr, ok := firstFieldError(err); ok {
		return apperrors.Newf(apperrors.InvalidInput, "%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, fieldErr.Field(), fieldErr.Tag())
	}
	return apperrors.Wrapf(err, apperrors.InvalidInput, "%s 유효성 검증에 실패했습니다", contextName)
}

// checkUniqueField 슬라이스 내 특정 필드 값이 유일한지 검사합니다.
func checkUniqueField(v *validator.Validate, data any, fieldName, contextName string) error {
	if err := v.Var(data, "unique="+fieldName); err != nil {
		if fieldErr, ok := firstFieldError(err); ok && fieldErr.Tag() == "unique" {
			return apperrors.Newf(apperrors.InvalidInput, "중복된 %s ID가 존재합니다", contextName)
		}
		return apperrors.Wrapf(err, apperrors.InvalidInput, "%s 유일성 검증에 실패했습니다", contextName)
	}
	return nil
}
