package log

import (
	"fmt"
	"os"
)

// Options 로깅 시스템 초기화 옵션입니다.
type Options struct {
	Name  string // 로그 파일명에 사용할 애플리케이션 이름
	Dir   string // 로그 디렉토리 (빈 값이면 "logs")
	Level Level  // 최소 로그 레벨 (0이면 InfoLevel로 간주)

	MaxAge     int // 보관 일수 (0: 삭제하지 않음)
	MaxSizeMB  int // 파일 하나의 최대 크기 (0: 100MB)
	MaxBackups int // 보관할 로테이션 파일 수 (0: 20개)

	EnableCriticalLog bool // ERROR 이상을 별도 파일(<name>.critical.log)로 복제
	EnableVerboseLog  bool // DEBUG 이하를 별도 파일(<name>.verbose.log)로 분리
	EnableConsoleLog  bool // 모든 로그를 표준 출력에도 기록

	ReportCaller     bool   // 호출 위치(함수명과 라인) 기록
	CallerPathPrefix string // 호출 위치 출력 시 잘라낼 패키지 경로 prefix
}

// Validate 옵션 값의 유효성을 검사합니다.
func (o *Options) Validate() error {
	if o.Name == "" {
		return fmt.Errorf("애플리케이션 이름(Name)이 설정되지 않았습니다")
	}
	if o.Dir != "" {
		if fi, err := os.Stat(o.Dir); err == nil && !fi.IsDir() {
			return fmt.Errorf("로그 디렉토리 경로(%s)가 이미 파일로 존재합니다", o.Dir)
		}
	}
	if o.MaxAge < 0 || o.MaxSizeMB < 0 || o.MaxBackups < 0 {
		return fmt.Errorf("로그 보관 정책 값은 음수일 수 없습니다 (MaxAge=%d, MaxSizeMB=%d, MaxBackups=%d)", o.MaxAge, o.MaxSizeMB, o.MaxBackups)
	}
	return nil
}

// NewProductionOptions 운영 환경용 옵션을 반환합니다.
// 파일 중심으로 기록하며 장애 분석을 위해 Critical/Verbose 로그를 분리합니다.
func NewProductionOptions(appName string) Options {
	return Options{
		Name:              appName,
		Level:             InfoLevel,
		MaxAge:            30,
		MaxSizeMB:         100,
		MaxBackups:        20,
		EnableCriticalLog: true,
		EnableVerboseLog:  true,
		ReportCaller:      true,
		CallerPathPrefix:  "github.com/darkkaiser",
	}
}

// NewDevelopmentOptions 개발 환경용 옵션을 반환합니다. 모든 레벨을 하나의 파일과 콘솔에 기록합니다.
func NewDevelopmentOptions(appName string) Options {
	return Options{
		Name:             appName,
		Level:            TraceLevel,
		MaxAge:           1,
		MaxSizeMB:        50,
		MaxBackups:       5,
		EnableConsoleLog: true,
		ReportCaller:     true,
		CallerPathPrefix: "github.com/darkkaiser",
	}
}
