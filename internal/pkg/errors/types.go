package errors

import "strconv"

// ErrorType 애플리케이션 에러의 분류입니다.
//
// HTTP 응답 코드 결정과 로그 레벨 선택은 모두 이 분류를 기준으로 이루어집니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러 (기본값)
	Unknown ErrorType = iota

	// Internal 내부 로직 오류
	Internal

	// System 디스크, 네트워크 등 인프라 수준의 오류
	System

	// Unauthorized 인증 실패
	Unauthorized

	// Forbidden 인증은 되었으나 요청한 작업에 대한 권한이 없음
	Forbidden

	// InvalidInput 입력값 검증 실패
	InvalidInput

	// Conflict 현재 상태와 충돌하는 요청 (잘못된 상태 전이, 키 충돌 등)
	Conflict

	// NotFound 요청한 리소스가 존재하지 않음
	NotFound

	// ExecutionFailed 작업 본문 실행 실패
	ExecutionFailed

	// Timeout 시간 초과
	Timeout

	// Unavailable 일시적으로 요청을 받을 수 없음 (대기열 포화, 서비스 중지 등)
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:         "Unknown",
	Internal:        "Internal",
	System:          "System",
	Unauthorized:    "Unauthorized",
	Forbidden:       "Forbidden",
	InvalidInput:    "InvalidInput",
	Conflict:        "Conflict",
	NotFound:        "NotFound",
	ExecutionFailed: "ExecutionFailed",
	Timeout:         "Timeout",
	Unavailable:     "Unavailable",
}

// String 에러 타입의 이름을 반환합니다. 정의되지 않은 값은 "ErrorType(N)" 형식으로 표현합니다.
func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}
