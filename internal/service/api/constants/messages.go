package constants

// 클라이언트에게 반환되는 에러 메시지 상수입니다.
const (
	// ------------------------------------------------------------------------------------------------
	// 일반 HTTP 에러 (상태 코드 순)
	// ------------------------------------------------------------------------------------------------

	// 400 Bad Request
	ErrMsgBadRequest            = "잘못된 요청입니다"
	ErrMsgBadRequestInvalidBody = "요청 본문을 파싱할 수 없습니다. JSON 형식을 확인해주세요"
	ErrMsgBadRequestInvalidBool = "includeFinished 값은 true 또는 false여야 합니다"

	// 401 Unauthorized
	ErrMsgUnauthorizedInvalidAppKey  = "app_key가 유효하지 않습니다 (account_id: %s)"
	ErrMsgUnauthorizedUnknownAccount = "등록되지 않은 account_id입니다 (ID: %s)"

	// 404 Not Found
	ErrMsgNotFound = "요청한 리소스를 찾을 수 없습니다"

	// 413 Request Entity Too Large
	ErrMsgRequestEntityTooLarge = "요청 본문이 너무 큽니다"

	// 415 Unsupported Media Type
	ErrMsgUnsupportedMediaType = "지원하지 않는 Content-Type 형식입니다"

	// 429 Too Many Requests
	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"

	// 503 Service Unavailable
	ErrMsgRequestTimeout = "요청 처리 시간이 초과되었습니다"

	// 500 Internal Server Error
	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다"

	// ------------------------------------------------------------------------------------------------
	// 인증 에러
	// ------------------------------------------------------------------------------------------------

	// ErrMsgAuthAppKeyRequired app_key 누락 (X-App-Key 헤더 또는 app_key 쿼리 파라미터)
	ErrMsgAuthAppKeyRequired = "app_key는 필수입니다 (X-App-Key 헤더 또는 app_key 쿼리 파라미터)"

	// ErrMsgAuthAccountIDRequired X-Account-Id 헤더 누락
	ErrMsgAuthAccountIDRequired = "account_id는 필수입니다 (X-Account-Id 헤더)"
)
