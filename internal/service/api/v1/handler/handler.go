// Package handler v1 프로세스 API의 HTTP 핸들러를 제공합니다.
package handler

import (
	"github.com/darkkaiser/process-server/internal/service/api/constants"
	"github.com/darkkaiser/process-server/internal/service/contract"
	"github.com/labstack/echo/v4"
)

// 프로세스 리소스 경로
const (
	PathProcess       = "/api/v1/process"
	PathProcessKey    = PathProcess + "/key/"
	PathProcessCancel = PathProcess + "/cancel/key/"
)

// Handler 프로세스 상태 조회, 목록, 취소, 제출 요청을 처리합니다.
type Handler struct {
	processManager contract.ProcessManager
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(processManager contract.ProcessManager) *Handler {
	if processManager == nil {
		panic(constants.PanicMsgProcessManagerRequired)
	}

	return &Handler{
		processManager: processManager,
	}
}

// baseURL 요청의 scheme과 host로 절대 URL의 기준 주소를 만듭니다.
func baseURL(c echo.Context) string {
	return c.Scheme() + "://" + c.Request().Host
}

// statusLocator 프로세스 상태 조회 URL
func statusLocator(c echo.Context, key contract.ProcessKey) string {
	return baseURL(c) + PathProcessKey + key.String()
}

// cancelLocator 프로세스 취소 URL
func cancelLocator(c echo.Context, key contract.ProcessKey) string {
	return baseURL(c) + PathProcessCancel + key.String()
}
