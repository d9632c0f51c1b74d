package process

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/darkkaiser/process-server/internal/service/contract"
)

// unknownFailurePrefix 분류되지 않은 실패 메시지의 접두사입니다.
const unknownFailurePrefix = "Unknown exception:"

// Project 핸들의 스냅샷과 호출자가 제공한 locator로 외부 상태 뷰를 만듭니다.
//
// 다음 우선순위로 판정합니다.
//  1. 진행률: max > 0이면 floor(current*100/max), 아니면 100
//  2. 상태 코드: 종료되었으면 Finished, 아니면 Running
//  3. 취소된 핸들은 종료 여부와 무관하게 Cancelled로 표시하고 "Cancelled" 메시지를 추가
//  4. 그 외 종료된 핸들은 결과를 조회하여 실패를 Failed와 메시지로, 성공 결과는 메시지로 추가
//
// 핸들을 변경하지 않으며 진행 중인 작업과 동시에 반복 호출해도 안전합니다.
func Project(h *Handle, locator string) contract.ProcessStatus {
	snap := h.Snapshot()

	status := contract.ProcessStatus{
		Key:                snap.Key,
		Kind:               snap.Kind,
		Owner:              snap.Owner,
		StatusCode:         contract.StatusRunning,
		PercentageComplete: percentage(snap.CurrentProgress, snap.MaxProgress),
		URL:                locator,
		Messages:           []string{},
		CreatedAt:          snap.CreatedAt,
		StartedAt:          timePtr(snap.StartedAt),
		FinishedAt:         timePtr(snap.FinishedAt),
	}

	done := snap.State.IsTerminal()
	if done {
		status.StatusCode = contract.StatusFinished
	}

	if snap.State == StateCancelled {
		status.StatusCode = contract.StatusCancelled
		status.CancelledBy = snap.CancelledBy
		status.CancelledAt = timePtr(snap.CancelledAt)
		status.Messages = append(status.Messages, contract.CancelledMessage)
		return status
	}

	if !done {
		return status
	}

	// 종료 상태는 다시 바뀌지 않으므로 여기서의 대기는 즉시 반환된다.
	payload, err := h.AwaitResult(context.Background())
	if err != nil {
		status.StatusCode = contract.StatusFailed
		status.Messages = append(status.Messages, failureMessage(err))
		return status
	}

	if payload != nil {
		if text := fmt.Sprint(payload); text != "" {
			status.Messages = append(status.Messages, text)
		}
	}

	return status
}

// failureMessage AwaitResult가 반환한 에러를 사람이 읽을 수 있는 메시지로 변환합니다.
func failureMessage(err error) string {
	var interruptedErr *InterruptedError
	var executionErr *ExecutionError
	var unknownErr *UnknownFailureError

	switch {
	case errors.As(err, &interruptedErr):
		return interruptedErr.Error()
	case errors.As(err, &executionErr):
		return executionErr.Error()
	case errors.As(err, &unknownErr):
		return unknownFailurePrefix + unknownErr.Description
	default:
		return unknownFailurePrefix + err.Error()
	}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
