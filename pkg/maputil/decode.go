// Package maputil 맵 형태의 동적 데이터를 타입이 정해진 구조체로 변환하는 기능을 제공합니다.
package maputil

import (
	"errors"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// DecodeTo 입력 데이터(주로 JSON에서 풀어낸 map[string]any)를 output이 가리키는 구조체에 병합합니다.
//
// 기본 동작:
//   - 구조체의 `json` 태그를 기준으로 필드를 매핑합니다.
//   - "123" -> 123 처럼 유연한 타입 변환을 허용합니다.
//   - "250ms" 같은 문자열을 time.Duration으로 변환합니다.
//   - 정의되지 않은 키는 무시합니다. 엄격한 검증이 필요하면 WithErrorUnused(true)를 사용하십시오.
//
// output에 미리 채워둔 값은 입력에 해당 키가 없으면 그대로 유지되므로 기본값 지정에 사용할 수 있습니다.
//
// 사용 예시:
//
//	params := countdownParams{Steps: 10}
//	err := maputil.DecodeTo(raw, &params, maputil.WithErrorUnused(true))
func DecodeTo[T any](input any, output *T, opts ...Option) error {
	if output == nil {
		return errors.New("디코딩 결과를 저장할 output 포인터가 nil입니다")
	}

	cfg := &decodingConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           output,
		TagName:          "json",
		WeaklyTypedInput: true,
		ErrorUnused:      cfg.errorUnused,
		Squash:           true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			stringToDurationHookFunc(),
			stringToSliceHookFunc(),
		),
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("입력 데이터를 %T(으)로 디코딩하는 데 실패했습니다: %w", output, err)
	}

	return nil
}

type decodingConfig struct {
	errorUnused bool
}

// Option 디코딩 동작을 조정하는 함수형 옵션입니다.
type Option func(*decodingConfig)

// WithErrorUnused 구조체에 없는 키가 입력에 있으면 에러를 반환하도록 합니다. (기본값: false)
func WithErrorUnused(enable bool) Option {
	return func(c *decodingConfig) { c.errorUnused = enable }
}
