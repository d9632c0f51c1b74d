package process

import "fmt"

// OutcomeTag 종료된 프로세스 결과의 분류입니다.
type OutcomeTag int

const (
	OutcomeNone OutcomeTag = iota
	OutcomeSuccess
	OutcomeInterrupted
	OutcomeExecutionFailure
	OutcomeUnknownFailure
)

// Outcome 종료 상태의 핸들이 보관하는 태그 기반 결과입니다.
// 태그에 따라 payload, reason, cause, description 중 하나만 의미를 가집니다.
type Outcome struct {
	Tag         OutcomeTag
	Payload     any
	Reason      string
	Cause       error
	Description string
}

func successOutcome(payload any) Outcome {
	return Outcome{Tag: OutcomeSuccess, Payload: payload}
}

func interruptedOutcome(reason string) Outcome {
	return Outcome{Tag: OutcomeInterrupted, Reason: reason}
}

func executionFailureOutcome(cause error) Outcome {
	return Outcome{Tag: OutcomeExecutionFailure, Cause: cause}
}

func unknownFailureOutcome(description string) Outcome {
	return Outcome{Tag: OutcomeUnknownFailure, Description: description}
}

// result 결과 태그를 AwaitResult의 반환값으로 변환합니다.
func (o Outcome) result() (any, error) {
	switch o.Tag {
	case OutcomeSuccess:
		return o.Payload, nil
	case OutcomeInterrupted:
		return nil, &InterruptedError{Reason: o.Reason}
	case OutcomeExecutionFailure:
		return nil, &ExecutionError{Cause: o.Cause}
	case OutcomeUnknownFailure:
		return nil, &UnknownFailureError{Description: o.Description}
	default:
		return nil, &UnknownFailureError{Description: fmt.Sprintf("결과가 기록되지 않은 종료 상태입니다 (tag=%d)", o.Tag)}
	}
}

// InterruptedError 작업이 결과를 만들기 전에 중단되었음을 나타냅니다.
type InterruptedError struct {
	Reason string
}

func (e *InterruptedError) Error() string {
	if e.Reason == "" {
		return "작업이 중단되었습니다"
	}
	return e.Reason
}

// ExecutionError 작업 실행 중 발생한 에러를 감쌉니다. 메시지는 원인 에러의 메시지와 같습니다.
type ExecutionError struct {
	Cause error
}

func (e *ExecutionError) Error() string {
	if e.Cause == nil {
		return "작업 실행에 실패했습니다"
	}
	return e.Cause.Error()
}

func (e *ExecutionError) Unwrap() error { return e.Cause }

// UnknownFailureError 분류되지 않은 실패(패닉 등)를 나타냅니다.
type UnknownFailureError struct {
	Description string
}

func (e *UnknownFailureError) Error() string { return e.Description }
