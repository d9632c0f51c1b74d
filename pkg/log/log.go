// Package log logrus 기반의 애플리케이션 공용 로깅 패키지입니다.
//
// 모든 로그는 component 필드를 포함하도록 WithComponent 계열 함수를 통해 기록합니다.
//
//	applog.WithComponentAndFields("process.service", applog.Fields{
//	    "process_key": key,
//	}).Info("프로세스 취소 완료")
package log

import "github.com/sirupsen/logrus"

// StandardLogger 전역 logrus 로거를 반환합니다.
// Echo 로거 어댑터나 cron 로거처럼 *Logger를 직접 요구하는 곳에서 사용합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// WithFields 전역 로거에 필드를 추가한 Entry를 반환합니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// WithComponent component 필드를 포함한 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 Entry를 반환합니다.
// 전달된 fields 맵은 변경하지 않습니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["component"] = component

	return logrus.WithFields(merged)
}
