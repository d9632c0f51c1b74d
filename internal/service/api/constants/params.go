package constants

// URL 쿼리 파라미터 키 상수입니다.
const (
	// QueryParamAppKey 계정 인증용 쿼리 파라미터 키 (레거시)
	QueryParamAppKey = "app_key"

	// QueryParamIncludeFinished 목록 조회 시 종료된 프로세스 포함 여부
	QueryParamIncludeFinished = "includeFinished"
)

// URL 경로 파라미터 키 상수입니다.
const (
	// PathParamKeyID 프로세스 키 경로 파라미터
	PathParamKeyID = "keyId"
)

// HTTP 헤더 키 상수입니다.
const (
	// HeaderXAccountID 계정 식별용 HTTP 헤더 키
	HeaderXAccountID = "X-Account-Id"

	// HeaderXAppKey 계정 인증용 HTTP 헤더 키 (권장 방식)
	HeaderXAppKey = "X-App-Key"

	// HeaderRetryAfter RFC 7231 Retry-After 헤더
	HeaderRetryAfter = "Retry-After"
)

// SensitiveQueryParams 로그 기록 시 마스킹 처리해야 할 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	QueryParamAppKey,
	"api_key",
	"password",
	"token",
	"secret",
}

// Context 키 상수입니다.
const (
	// ContextKeyAccount 인증된 Account 객체 저장용 Context 키
	ContextKeyAccount = "process-server/api/auth/AuthenticatedAccount"
)
