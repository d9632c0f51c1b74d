package constants

// 로그의 component 필드 값입니다.
const (
	ComponentService      = "api.service"
	ComponentErrorHandler = "api.error_handler"

	ComponentHandlerSystem  = "api.handler.system"
	ComponentHandlerProcess = "api.handler.v1.process"

	ComponentMiddlewareAuthentication = "api.middleware.auth"
	ComponentMiddlewareRateLimit      = "api.middleware.rate_limit"
	ComponentMiddlewarePanicRecovery  = "api.middleware.panic_recovery"
	ComponentMiddlewareContentType    = "api.middleware.content_type"
)
