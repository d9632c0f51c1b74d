package maputil

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

var durationType = reflect.TypeOf(time.Duration(0))

// stringToDurationHookFunc "1s", "250ms" 같은 문자열을 time.Duration으로 변환합니다.
//
// 정확히 time.Duration 타입인 필드만 대상으로 하며, 일반 int64 필드는 건드리지 않는다.
// 파싱에 실패하면 원본 값을 그대로 넘겨 기본 디코딩 로직이 에러를 보고하게 한다.
func stringToDurationHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != durationType {
			return data, nil
		}

		d, err := time.ParseDuration(strings.TrimSpace(reflect.ValueOf(data).String()))
		if err != nil {
			return data, nil
		}
		return d, nil
	}
}

// stringToSliceHookFunc 쉼표로 구분된 문자열을 공백을 제거한 문자열 슬라이스로 변환합니다.
// []byte 대상은 분할하지 않는다.
func stringToSliceHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Slice || t.Elem().Kind() == reflect.Uint8 {
			return data, nil
		}

		s := reflect.ValueOf(data).String()
		if s == "" {
			return []string{}, nil
		}

		parts := strings.Split(s, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	}
}
