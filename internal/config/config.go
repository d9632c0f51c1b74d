package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/process-server/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "process-server"

	// DefaultFilename 실행 인자로 경로가 주어지지 않았을 때 읽어들이는 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// envPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	// 예: PROCESS_PROCESS__MAX_CONCURRENT=8 -> process.max_concurrent
	envPrefix = "PROCESS_"
)

// 프로세스 실행 정책 기본값
const (
	DefaultMaxConcurrent   = 4
	DefaultQueueSize       = 64
	DefaultKeyFormat       = KeyFormatBase62
	DefaultRetention       = 1 * time.Hour
	DefaultSweepTimeSpec   = "0 */5 * * * *"
	DefaultShutdownTimeout = 30 * time.Second
	DefaultListenPort      = 8080
)

// 프로세스 키 생성 형식
const (
	KeyFormatBase62 = "base62"
	KeyFormatUUID   = "uuid"
)

// newDefaultConfig 설정 파일과 환경 변수보다 우선순위가 낮은 기본 설정을 생성합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		Process: ProcessConfig{
			MaxConcurrent:   DefaultMaxConcurrent,
			QueueSize:       DefaultQueueSize,
			KeyFormat:       DefaultKeyFormat,
			Retention:       DefaultRetention,
			SweepTimeSpec:   DefaultSweepTimeSpec,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		ProcessAPI: ProcessAPIConfig{
			WS: WSConfig{ListenPort: DefaultListenPort},
		},
	}
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다.
//
// 우선순위(낮음 -> 높음): 기본값 -> JSON 설정 파일 -> 환경 변수
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrapf(err, apperrors.System, "설정 파일을 찾을 수 없습니다: '%s'", filename)
		}
		return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "설정 파일 로드 중 오류가 발생했습니다: '%s'", filename)
	}

	if err := k.Load(env.Provider(envPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &appConfig,
			TagName:          "json",
			ErrorUnused:      true, // 구조체에 없는 키가 설정 파일에 있으면 오타로 간주한다.
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}

// normalizeEnvKey 환경 변수 이름을 koanf 키 경로로 변환합니다.
// 이중 언더스코어(__)는 계층 구분자(.)가 됩니다.
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, envPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}
