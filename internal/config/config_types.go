package config

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/process-server/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug      bool             `json:"debug"`
	Process    ProcessConfig    `json:"process"`
	ProcessAPI ProcessAPIConfig `json:"process_api"`
}

func (c *AppConfig) validate(v *validator.Validate) error {
	if err := c.Process.validate(v); err != nil {
		return err
	}
	return c.ProcessAPI.validate(v)
}

// VerifyRecommendations 동작에는 문제가 없지만 운영상 권장하지 않는 설정에 대한 경고 목록을 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	return c.ProcessAPI.VerifyRecommendations()
}

// ProcessConfig 백그라운드 프로세스 실행 정책
type ProcessConfig struct {
	MaxConcurrent   int           `json:"max_concurrent" validate:"min=1,max=256"`
	QueueSize       int           `json:"queue_size" validate:"min=1,max=10000"`
	KeyFormat       string        `json:"key_format" validate:"oneof=base62 uuid"`
	Retention       time.Duration `json:"retention" validate:"min=0"`
	SweepTimeSpec   string        `json:"sweep_time_spec" validate:"required,cron_spec"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" validate:"min=1ms"`

	// ChecksumRoot file_checksum 작업이 읽을 수 있는 기준 디렉터리입니다. 비어 있으면 file_checksum을 제공하지 않습니다.
	ChecksumRoot string `json:"checksum_root" validate:"omitempty,readable_dir"`
}

func (c *ProcessConfig) validate(v *validator.Validate) error {
	if err := v.Struct(c); err != nil {
		if fieldErr, ok := firstFieldError(err); ok {
			switch fieldErr.Field() {
			case "max_concurrent":
				return apperrors.New(apperrors.InvalidInput, "동시 실행 수(max_concurrent)는 1에서 256 사이의 값이어야 합니다")
			case "queue_size":
				return apperrors.New(apperrors.InvalidInput, "대기열 크기(queue_size)는 1에서 10000 사이의 값이어야 합니다")
			case "key_format":
				return apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 키 형식(key_format)입니다: '%v' (base62 또는 uuid)", fieldErr.Value())
			case "retention":
				return apperrors.New(apperrors.InvalidInput, "보관 기간(retention)은 음수일 수 없습니다")
			case "sweep_time_spec":
				return apperrors.Newf(apperrors.InvalidInput, "정리 주기(sweep_time_spec)가 올바른 6필드 Cron 표현식이 아닙니다: '%v'", fieldErr.Value())
			case "shutdown_timeout":
				return apperrors.New(apperrors.InvalidInput, "종료 대기 시간(shutdown_timeout)은 1ms 이상이어야 합니다")
			case "checksum_root":
				return apperrors.Newf(apperrors.InvalidInput, "체크섬 기준 디렉터리(checksum_root)가 존재하지 않거나 읽을 수 없습니다: '%v'", fieldErr.Value())
			}
		}
		return checkStruct(err, "Process")
	}
	return nil
}

// ProcessAPIConfig 프로세스 조회/취소 REST API 서버 설정
type ProcessAPIConfig struct {
	WS       WSConfig        `json:"ws"`
	CORS     CORSConfig      `json:"cors"`
	Accounts []AccountConfig `json:"accounts"`
}

func (c *ProcessAPIConfig) validate(v *validator.Validate) error {
	if err := c.WS.validate(v); err != nil {
		return err
	}
	if err := c.CORS.validate(v); err != nil {
		return err
	}

	if err := checkUniqueField(v, c.Accounts, "ID", "Account"); err != nil {
		return err
	}
	for _, account := range c.Accounts {
		if err := v.Struct(account); err != nil {
			if fieldErr, ok := firstFieldError(err); ok && fieldErr.Field() == "app_key" {
				return apperrors.Newf(apperrors.InvalidInput, "Account['%s']의 API 키(app_key)가 설정되지 않았습니다", account.ID)
			}
			return checkStruct(err, fmt.Sprintf("Account['%s']", account.ID))
		}
	}

	return nil
}

func (c *ProcessAPIConfig) VerifyRecommendations() []string {
	warnings := c.WS.VerifyRecommendations()

	hasAdmin := false
	for _, account := range c.Accounts {
		if account.Admin {
			hasAdmin = true
			break
		}
	}
	if !hasAdmin {
		warnings = append(warnings, "관리자(admin) 계정이 하나도 없습니다. 소유자가 취소할 수 없는 작업은 누구도 취소할 수 없게 됩니다")
	}

	return warnings
}

// WSConfig 웹 서버의 포트 및 TLS(HTTPS) 설정
type WSConfig struct {
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	ListenPort  int    `json:"listen_port" validate:"listen_port"`
}

func (c *WSConfig) validate(v *validator.Validate) error {
	if err := v.Struct(c); err != nil {
		if fieldErr, ok := firstFieldError(err); ok {
			switch fieldErr.Field() {
			case "listen_port":
				return apperrors.New(apperrors.InvalidInput, "웹 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다")
			case "tls_cert_file", "tls_key_file":
				if fieldErr.Tag() == "required_if" {
					return apperrors.Newf(apperrors.InvalidInput, "TLS 서버 활성화 시 %s 설정은 필수입니다", fieldErr.Field())
				}
				return apperrors.Newf(apperrors.InvalidInput, "지정된 TLS 파일(%s)을 찾을 수 없습니다: '%v'", fieldErr.Field(), fieldErr.Value())
			}
		}
		return checkStruct(err, "WS")
	}
	return nil
}

func (c *WSConfig) VerifyRecommendations() []string {
	if c.ListenPort < 1024 {
		return []string{fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.ListenPort)}
	}
	return nil
}

// CORSConfig 교차 출처 리소스 공유(CORS) 정책
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate(v *validator.Validate) error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}
	for _, origin := range c.AllowOrigins {
		if strings.TrimSpace(origin) == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다")
		}
	}

	if err := v.Struct(c); err != nil {
		if fieldErr, ok := firstFieldError(err); ok && fieldErr.Tag() == "cors_origin" {
			return apperrors.Newf(apperrors.InvalidInput, "CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fieldErr.Value())
		}
		return checkStruct(err, "CORS")
	}
	return nil
}

// AccountConfig API를 호출할 수 있는 계정입니다.
// Admin 계정은 소유자와 무관하게 모든 프로세스를 취소할 수 있습니다.
type AccountConfig struct {
	ID     string `json:"id" validate:"required"`
	Title  string `json:"title"`
	AppKey string `json:"app_key" validate:"required"`
	Admin  bool   `json:"admin"`
}
