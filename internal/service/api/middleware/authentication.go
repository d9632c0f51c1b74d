package middleware

import (
	"github.com/darkkaiser/process-server/internal/service/api/auth"
	"github.com/darkkaiser/process-server/internal/service/api/constants"
	applog "github.com/darkkaiser/process-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// RequireAuthentication 계정 인증을 수행하는 미들웨어를 반환합니다.
//
// 처리 과정:
//  1. App Key 추출 (X-App-Key 헤더 우선, app_key 쿼리 파라미터 폴백)
//  2. 계정 ID 추출 (X-Account-Id 헤더)
//  3. Authenticator를 통한 인증 처리
//  4. 인증된 Account 객체를 Context에 저장
//
// 인증 실패 시:
//   - 400 Bad Request: App Key 또는 계정 ID 누락
//   - 401 Unauthorized: 미등록 계정 또는 잘못된 App Key
func RequireAuthentication(authenticator *auth.Authenticator) echo.MiddlewareFunc {
	if authenticator == nil {
		panic(constants.PanicMsgAuthenticatorRequired)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			appKey := extractAppKey(c)
			if appKey == "" {
				return ErrAppKeyRequired
			}

			accountID := c.Request().Header.Get(constants.HeaderXAccountID)
			if accountID == "" {
				return ErrAccountIDRequired
			}

			account, err := authenticator.Authenticate(accountID, appKey)
			if err != nil {
				return err
			}

			auth.SetAccount(c, account)

			return next(c)
		}
	}
}

// extractAppKey App Key를 추출합니다.
//
// 우선순위:
//  1. X-App-Key 헤더 (권장)
//  2. app_key 쿼리 파라미터 (레거시) - 사용 시 경고 로그 출력
func extractAppKey(c echo.Context) string {
	appKey := c.Request().Header.Get(constants.HeaderXAppKey)
	if appKey == "" {
		appKey = c.QueryParam(constants.QueryParamAppKey)

		if appKey != "" {
			applog.WithComponentAndFields(constants.ComponentMiddlewareAuthentication, applog.Fields{
				"method":    c.Request().Method,
				"path":      c.Path(),
				"remote_ip": c.RealIP(),
			}).Warn(constants.LogMsgAuthAppKeyInQuery)
		}
	}
	return appKey
}
