// Package cronx 애플리케이션 전역에서 공유하는 Cron 표현식 파서와 검증 기능을 제공합니다.
package cronx

import "github.com/robfig/cron/v3"

// StandardParser 초 단위를 포함하는 6필드 Cron 표현식 파서를 반환합니다.
//
// 필드 순서는 [초] [분] [시] [일] [월] [요일]이며, @daily, @every <duration> 등의
// Descriptor 표현식도 허용합니다. 표준 5필드 형식은 지원하지 않습니다.
//
// 예시:
//   - "0 */5 * * * *" : 매 5분 0초마다 실행
//   - "@hourly"       : 매시간 정각에 실행
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}
