// Package validation 설정 파일과 API 입력값의 유효성을 검사하는 함수들을 제공합니다.
//
// 모든 함수는 유효하지 않은 입력에 대해 원인을 설명하는 error를 반환하며,
// 전역 상태를 갖지 않으므로 여러 고루틴에서 동시에 호출해도 안전합니다.
package validation
