// Package strutil 로깅과 응답 처리에 필요한 문자열 유틸리티를 제공합니다.
package strutil

// Mask 애플리케이션 키와 같은 민감한 값을 로그에 남길 수 있도록 일부만 노출합니다.
//
//   - 3자 이하: 전체 마스킹 ("***")
//   - 12자 이하: 앞 4자만 노출
//   - 그 외: 앞 4자와 뒤 4자만 노출
func Mask(data string) string {
	switch {
	case data == "":
		return ""
	case len(data) <= 3:
		return "***"
	case len(data) <= 12:
		return data[:4] + "***"
	default:
		return data[:4] + "***" + data[len(data)-4:]
	}
}
