package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/process-server/internal/service/api/constants"
	"github.com/darkkaiser/process-server/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/process-server/internal/service/api/middleware"
	applog "github.com/darkkaiser/process-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// EnableHSTS TLS 서버일 때 Strict-Transport-Security 헤더를 추가합니다.
	EnableHSTS bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	AllowOrigins []string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (0이면 60초)
	RequestTimeout time.Duration
}

// NewHTTPServer 미들웨어 체인이 설정된 Echo 인스턴스를 생성합니다.
//
// 미들웨어 적용 순서:
//  1. PanicRecovery - 이후 모든 미들웨어와 핸들러의 panic 복구
//  2. RequestID - 로그에 request_id를 남기기 위해 로깅보다 먼저 적용
//  3. Server 헤더 제거
//  4. HTTPLogger - 429, 503 응답도 기록되도록 RateLimit, Timeout보다 먼저 적용
//  5. RateLimit - IP별 초당 20회, 버스트 40
//  6. BodyLimit - 128KB
//  7. Timeout - 요청 처리 시간 제한
//  8. CORS
//  9. Secure - 보안 헤더
//
// 라우트는 포함되지 않으며 반환된 인스턴스에 별도로 등록해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = constants.DefaultRequestTimeout
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	// 서버 스택 정보(Go/Echo 버전 등)를 노출하지 않음
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Del(echo.HeaderServer)
			return next(c)
		}
	})
	e.Use(appmiddleware.HTTPLogger())
	e.Use(appmiddleware.RateLimit(constants.DefaultRateLimitPerSecond, constants.DefaultRateLimitBurst))
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout:      timeout,
		ErrorMessage: constants.ErrMsgRequestTimeout,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderContentType, constants.HeaderXAccountID, constants.HeaderXAppKey},
	}))

	secureConfig := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secureConfig.HSTSMaxAge = 31536000
	}
	e.Use(middleware.SecureWithConfig(secureConfig))

	return e
}
