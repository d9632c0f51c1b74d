package constants

// 시스템 시작/구동 시 발생할 수 있는 크리티컬한 패닉 메시지 상수입니다.
const (
	PanicMsgAppConfigRequired      = "AppConfig는 필수입니다"
	PanicMsgProcessManagerRequired = "ProcessManager는 필수입니다"
	PanicMsgAuthenticatorRequired  = "Authenticator는 필수입니다"

	// PanicMsgAuthContextAccountNotFound 인증 미들웨어를 거치지 않은 핸들러에서 계정을 조회한 경우
	PanicMsgAuthContextAccountNotFound = "Auth: Context에서 계정 정보를 가져올 수 없습니다. 인증 미들웨어가 적용되었는지 확인해주세요. (원인: %v)"

	PanicMsgRateLimitRequestsPerSecondInvalid = "RateLimit: requestsPerSecond는 양수여야 합니다 (현재값: %d)"
	PanicMsgRateLimitBurstInvalid             = "RateLimit: burst는 양수여야 합니다 (현재값: %d)"
)
