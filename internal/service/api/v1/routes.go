// Package v1 /api/v1 경로 하위의 프로세스 API 라우트를 설정합니다.
//
// 모든 엔드포인트는 계정 인증(X-Account-Id, X-App-Key)을 요구합니다.
package v1

import (
	"github.com/darkkaiser/process-server/internal/service/api/auth"
	"github.com/darkkaiser/process-server/internal/service/api/constants"
	"github.com/darkkaiser/process-server/internal/service/api/middleware"
	"github.com/darkkaiser/process-server/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 등록합니다.
//
// 등록되는 엔드포인트:
//   - GET  /api/v1/process/key/:keyId          프로세스 상태 조회
//   - GET  /api/v1/process?includeFinished=    프로세스 목록 조회
//   - POST /api/v1/process/cancel/key/:keyId   프로세스 취소
//   - POST /api/v1/process                     작업 제출
func RegisterRoutes(e *echo.Echo, h *handler.Handler, authenticator *auth.Authenticator) {
	g := e.Group("/api/v1", middleware.RequireAuthentication(authenticator))

	keyParam := "/:" + constants.PathParamKeyID

	g.GET("/process/key"+keyParam, h.GetStatusHandler)
	g.GET("/process", h.ListHandler)
	g.POST("/process/cancel/key"+keyParam, h.CancelHandler)
	g.POST("/process", h.SubmitHandler, middleware.ValidateContentType(echo.MIMEApplicationJSON))
}
