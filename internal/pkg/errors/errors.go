// Package errors process-server 전용 에러 타입을 제공합니다.
//
// 모든 에러는 ErrorType으로 분류되며 Wrap을 통해 원인 에러와 문맥을 누적합니다.
// API 계층은 UnderlyingType으로 가장 안쪽의 분류를 꺼내 HTTP 상태 코드를 결정합니다.
//
//	if _, ok := registry.Get(key); !ok {
//	    return errors.Newf(errors.NotFound, "프로세스를 찾을 수 없습니다 (key: %s)", key)
//	}
//
//	if errors.Is(err, errors.Forbidden) {
//	    // 403
//	}
//
// 분류 선택 기준:
//   - NotFound: 레지스트리에 없는 프로세스 키
//   - Forbidden: 소유자도 관리자도 아닌 요청자의 취소 요청
//   - Conflict: 잘못된 상태 전이, 키 생성 충돌
//   - InvalidInput: 요청 본문, 작업 파라미터, 설정값 검증 실패
//   - Unavailable: 실행 대기열 포화, 서비스 미실행
//   - ExecutionFailed: 작업 본문이 반환한 에러
//   - System: 파일 I/O 등 인프라 오류
package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// AppError 분류(ErrorType), 메시지, 원인 에러, 생성 위치의 스택을 함께 보관하는 에러입니다.
type AppError struct {
	errType ErrorType
	message string
	cause   error
	stack   []StackFrame
}

// Type 에러의 분류를 반환합니다.
func (e *AppError) Type() ErrorType { return e.errType }

// Message 원인 에러를 제외한 메시지만 반환합니다.
func (e *AppError) Message() string { return e.message }

// Stack 에러 생성 시점의 스택 프레임을 반환합니다.
func (e *AppError) Stack() []StackFrame { return e.stack }

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.errType, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.errType, e.message)
}

func (e *AppError) Unwrap() error { return e.cause }

// Format %+v 사용 시 스택 트레이스와 원인 체인을 함께 출력합니다.
//
// 스택은 체인의 가장 안쪽 AppError(또는 외부 에러와의 경계)에서만 출력하여
// 동일한 호출 경로가 여러 번 반복되지 않도록 합니다.
func (e *AppError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "[%s] %s", e.errType, e.message)

			var inner *AppError
			if e.cause == nil || !errors.As(e.cause, &inner) {
				writeStack(s, e.stack)
			}

			if e.cause != nil {
				io.WriteString(s, "\nCaused by:\n")
				if f, ok := e.cause.(fmt.Formatter); ok {
					f.Format(s, verb)
				} else {
					fmt.Fprintf(s, "\t%v", e.cause)
				}
			}
			return
		}
		io.WriteString(s, e.Error())
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

func writeStack(w io.Writer, stack []StackFrame) {
	if len(stack) == 0 {
		return
	}

	io.WriteString(w, "\nStack trace:")
	for _, f := range stack {
		fn := f.Function
		if i := strings.LastIndex(fn, "/"); i != -1 {
			fn = fn[i+1:]
		}
		fmt.Fprintf(w, "\n\t%s:%d %s", f.File, f.Line, fn)
	}
}

// New 새로운 에러를 생성합니다.
func New(errType ErrorType, message string) error {
	return &AppError{errType: errType, message: message, stack: captureStack(callerSkip)}
}

// Newf 포맷 문자열로 메시지를 구성하여 새로운 에러를 생성합니다.
func Newf(errType ErrorType, format string, args ...any) error {
	return &AppError{errType: errType, message: fmt.Sprintf(format, args...), stack: captureStack(callerSkip)}
}

// Wrap 원인 에러에 분류와 문맥 메시지를 덧붙입니다. err가 nil이면 nil을 반환합니다.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{errType: errType, message: message, cause: err, stack: captureStack(callerSkip)}
}

// Wrapf Wrap의 포맷 문자열 버전입니다.
func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &AppError{errType: errType, message: fmt.Sprintf(format, args...), cause: err, stack: captureStack(callerSkip)}
}

// Is 에러 체인 어딘가에 주어진 분류의 AppError가 있는지 확인합니다.
func Is(err error, errType ErrorType) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if appErr, ok := err.(*AppError); ok && appErr.errType == errType {
			return true
		}
	}
	return false
}

// As 표준 errors.As를 그대로 노출합니다.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// RootCause 체인의 가장 안쪽 에러를 반환합니다.
func RootCause(err error) error {
	if err == nil {
		return nil
	}
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// UnderlyingType 체인에서 가장 안쪽에 있는 AppError의 분류를 반환합니다.
//
// 여러 계층에서 Internal 등으로 다시 감싸더라도 최초 분류(예: NotFound)가 유지되므로
// HTTP 상태 코드를 결정할 때 이 값을 사용합니다. AppError가 없으면 Unknown입니다.
func UnderlyingType(err error) ErrorType {
	t := Unknown
	for ; err != nil; err = errors.Unwrap(err) {
		if appErr, ok := err.(*AppError); ok {
			t = appErr.errType
		}
	}
	return t
}
