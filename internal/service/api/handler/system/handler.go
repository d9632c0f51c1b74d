// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 버전 정보 등 인증이 필요 없는 시스템 수준의 API를 처리합니다.
package system

import (
	"net/http"
	"runtime"
	"time"

	"github.com/darkkaiser/process-server/internal/pkg/version"
	"github.com/darkkaiser/process-server/internal/service/api/constants"
	"github.com/darkkaiser/process-server/internal/service/api/model/system"
	applog "github.com/darkkaiser/process-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// HealthChecker 프로세스 서비스의 상태를 확인하는 인터페이스입니다.
type HealthChecker interface {
	// Health 서비스가 작업을 받을 수 있으면 nil을 반환합니다.
	Health() error
}

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	healthChecker HealthChecker

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(healthChecker HealthChecker, buildInfo version.Info) *Handler {
	if healthChecker == nil {
		panic(constants.PanicMsgProcessManagerRequired)
	}

	return &Handler{
		healthChecker: healthChecker,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 프로세스 서비스의 상태를 확인합니다.
// @Description 인증 없이 호출 가능하며, 프로세스 서비스가 작업을 받을 수 없으면 전체 상태는 unhealthy입니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandlerSystem, applog.Fields{
		"endpoint":  "/health",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	dep := system.DependencyStatus{
		Status:  constants.HealthStatusHealthy,
		Message: constants.MsgDepStatusHealthy,
	}
	if err := h.healthChecker.Health(); err != nil {
		dep = system.DependencyStatus{
			Status:  constants.HealthStatusUnhealthy,
			Message: err.Error(),
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status: dep.Status,
		Uptime: int64(time.Since(h.serverStartTime).Seconds()),
		Dependencies: map[string]system.DependencyStatus{
			constants.DependencyProcessService: dep,
		},
	})
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandlerSystem, applog.Fields{
		"endpoint":  "/version",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   runtime.Version(),
		OS:          h.buildInfo.OS,
		Arch:        h.buildInfo.Arch,
		DirtyBuild:  h.buildInfo.DirtyBuild,
	})
}
