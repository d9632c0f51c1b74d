package process

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/darkkaiser/process-server/internal/pkg/errors"
	"github.com/darkkaiser/process-server/internal/service/contract"
)

// Handle 하나의 백그라운드 작업에 대한 진행률과 결과를 추적하는 가변 레코드입니다.
//
// 모든 필드는 하나의 RWMutex로 보호됩니다. 상태 조회는 읽기 락만 사용하므로
// 작업 실행에 의해 블로킹되지 않으며, 상태 전이는 쓰기 락 안에서 한 번에 기록됩니다.
//
// 종료 상태(Done, Cancelled, Failed)로의 전이는 먼저 도착한 쪽이 이깁니다.
// 한 번 Cancelled가 기록되면 이후 작업 완료가 이를 덮어쓰지 않습니다.
type Handle struct {
	key                contract.ProcessKey
	owner              string
	kind               string
	cancellableByOwner bool
	createdAt          time.Time

	mu sync.RWMutex

	state           State
	currentProgress int64
	maxProgress     int64
	cancelledBy     string
	cancelledAt     time.Time
	startedAt       time.Time
	finishedAt      time.Time
	outcome         Outcome

	ctx    context.Context
	cancel context.CancelFunc

	// done 종료 상태에 진입할 때 정확히 한 번 닫힙니다.
	done chan struct{}

	now func() time.Time
}

// HandleSnapshot 특정 시점의 핸들 필드를 일관되게 복사한 값입니다.
type HandleSnapshot struct {
	Key                contract.ProcessKey
	Owner              string
	Kind               string
	CancellableByOwner bool
	State              State
	CurrentProgress    int64
	MaxProgress        int64
	CancelledBy        string
	CancelledAt        time.Time
	CreatedAt          time.Time
	StartedAt          time.Time
	FinishedAt         time.Time
	Outcome            Outcome
}

func newHandle(key contract.ProcessKey, owner, kind string, cancellableByOwner bool, now func() time.Time) *Handle {
	ctx, cancel := context.WithCancel(context.Background())

	return &Handle{
		key:                key,
		owner:              owner,
		kind:               kind,
		cancellableByOwner: cancellableByOwner,
		createdAt:          now(),

		state: StatePending,

		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),

		now: now,
	}
}

func (h *Handle) Key() contract.ProcessKey { return h.key }
func (h *Handle) Owner() string            { return h.owner }
func (h *Handle) Kind() string             { return h.kind }
func (h *Handle) CancellableByOwner() bool { return h.cancellableByOwner }
func (h *Handle) CreatedAt() time.Time     { return h.createdAt }

// Context 작업 본문에 전달되는 협력적 취소 토큰입니다.
func (h *Handle) Context() context.Context { return h.ctx }

// Done 핸들이 종료 상태에 진입하면 닫히는 채널을 반환합니다.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Start Pending 상태의 핸들을 Running 상태로 전이합니다.
// 이미 시작되었거나 종료된 핸들에 대한 호출은 호출자의 오류이므로 Conflict 에러를 반환합니다.
func (h *Handle) Start() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch {
	case h.state == StateRunning:
		return apperrors.Newf(apperrors.Conflict, "이미 시작된 프로세스입니다 (key=%s)", h.key)
	case h.state.IsTerminal():
		return apperrors.Newf(apperrors.Conflict, "이미 종료된 프로세스는 시작할 수 없습니다 (key=%s, state=%s)", h.key, h.state)
	}

	h.state = StateRunning
	h.startedAt = h.now()

	return nil
}

// RecordProgress 진행률을 갱신합니다. Running 상태에서만 유효합니다.
//
// max가 0이면 진행률을 알 수 없음을 뜻합니다. max가 0보다 크면 current는 [0, max] 범위로 보정됩니다.
func (h *Handle) RecordProgress(current, max int64) error {
	if max < 0 {
		return apperrors.Newf(apperrors.InvalidInput, "최대 진행 값은 음수일 수 없습니다 (max=%d)", max)
	}
	if current < 0 {
		current = 0
	}
	if max > 0 && current > max {
		current = max
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != StateRunning {
		return apperrors.Newf(apperrors.Conflict, "실행 중인 프로세스만 진행률을 기록할 수 있습니다 (key=%s, state=%s)", h.key, h.state)
	}

	h.currentProgress = current
	h.maxProgress = max

	return nil
}

// Complete Running 상태의 핸들을 Done으로 전이하고 결과를 보관합니다.
// 이미 종료되었거나 시작되지 않은 핸들이면 아무것도 바꾸지 않고 false를 반환합니다.
func (h *Handle) Complete(payload any) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != StateRunning {
		return false
	}

	h.finishLocked(StateDone, successOutcome(payload))
	h.cancel()

	return true
}

// Fail 핸들을 Failed로 전이하고 실행 에러를 보관합니다.
// 작업을 시작조차 하지 못한 경우를 위해 Pending 상태에서도 허용됩니다.
func (h *Handle) Fail(cause error) bool {
	return h.terminate(StateFailed, executionFailureOutcome(cause))
}

// Interrupt 취소 요청 없이 작업이 중단된 경우(서버 종료 등) 핸들을 Failed로 전이합니다.
// 결과는 Interrupted로 기록되며 작업 컨텍스트도 함께 취소됩니다.
func (h *Handle) Interrupt(reason string) bool {
	return h.terminate(StateFailed, interruptedOutcome(reason))
}

// failUnknown 작업 본문의 패닉처럼 분류되지 않은 실패를 기록합니다.
func (h *Handle) failUnknown(description string) bool {
	return h.terminate(StateFailed, unknownFailureOutcome(description))
}

func (h *Handle) terminate(state State, outcome Outcome) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state.IsTerminal() {
		return false
	}

	h.finishLocked(state, outcome)
	h.cancel()

	return true
}

// RequestCancel 취소자와 취소 시각, Cancelled 상태를 하나의 원자적 단위로 기록합니다.
//
// interrupt가 true이면 작업 컨텍스트를 취소하여 실행 중인 작업에 중단 신호를 보냅니다.
// 작업이 실제로 멈추는 시점과 무관하게, 이 호출이 반환된 순간부터 외부에는 Cancelled로 보입니다.
// 이미 종료된 핸들이면 false를 반환합니다. 권한 확인은 호출자의 책임입니다.
func (h *Handle) RequestCancel(requester string, interrupt bool) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state.IsTerminal() {
		return false
	}

	h.cancelLocked(requester, interrupt)

	return true
}

// CancelResult CancelAs 호출의 처리 결과입니다.
type CancelResult int

const (
	// CancelApplied 취소가 기록되었습니다.
	CancelApplied CancelResult = iota

	// CancelAlreadyDone 이미 종료된 핸들이므로 아무것도 바꾸지 않았습니다.
	CancelAlreadyDone

	// CancelDenied 요청자에게 취소 권한이 없습니다.
	CancelDenied
)

// CancelAs 종료 여부 확인, 권한 확인, 취소 기록을 하나의 쓰기 락 안에서 수행합니다.
//
// 종료 여부를 권한보다 먼저 확인하므로, 종료된 핸들은 요청자와 무관하게 CancelAlreadyDone입니다.
// 판정 도중 작업이 완료되어 결과가 바뀌는 일은 없습니다.
func (h *Handle) CancelAs(requester contract.Requester) CancelResult {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state.IsTerminal() {
		return CancelAlreadyDone
	}
	if !CanCancel(requester, h.snapshotLocked()) {
		return CancelDenied
	}

	h.cancelLocked(requester.ID, true)

	return CancelApplied
}

func (h *Handle) cancelLocked(requester string, interrupt bool) {
	h.cancelledBy = requester
	h.finishLocked(StateCancelled, interruptedOutcome("사용자("+requester+") 요청에 의해 취소되었습니다"))
	h.cancelledAt = h.finishedAt

	if interrupt {
		h.cancel()
	}
}

// finishLocked 종료 상태를 기록하고 done 채널을 닫습니다. 호출자는 쓰기 락을 보유해야 합니다.
func (h *Handle) finishLocked(state State, outcome Outcome) {
	h.state = state
	h.outcome = outcome
	h.finishedAt = h.now()
	close(h.done)
}

// release 레지스트리에서 제거된 핸들의 컨텍스트 자원을 해제합니다.
func (h *Handle) release() {
	h.cancel()
}

func (h *Handle) State() State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

// IsStarted 작업이 시작된 적이 있는지 여부를 반환합니다.
func (h *Handle) IsStarted() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return !h.startedAt.IsZero()
}

func (h *Handle) IsCancelled() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state == StateCancelled
}

// IsDone 종료 상태(Done, Cancelled, Failed)이면 true를 반환합니다.
func (h *Handle) IsDone() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state.IsTerminal()
}

// PercentageComplete 진행률을 0~100 사이의 정수로 반환합니다.
// 최대 진행 값을 모르는 경우(0) 100을 반환합니다.
func (h *Handle) PercentageComplete() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return percentage(h.currentProgress, h.maxProgress)
}

func percentage(current, total int64) int {
	if total <= 0 {
		return 100
	}

	p := current * 100 / total
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return int(p)
}

func (h *Handle) Snapshot() HandleSnapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.snapshotLocked()
}

func (h *Handle) snapshotLocked() HandleSnapshot {
	return HandleSnapshot{
		Key:                h.key,
		Owner:              h.owner,
		Kind:               h.kind,
		CancellableByOwner: h.cancellableByOwner,
		State:              h.state,
		CurrentProgress:    h.currentProgress,
		MaxProgress:        h.maxProgress,
		CancelledBy:        h.cancelledBy,
		CancelledAt:        h.cancelledAt,
		CreatedAt:          h.createdAt,
		StartedAt:          h.startedAt,
		FinishedAt:         h.finishedAt,
		Outcome:            h.outcome,
	}
}

// AwaitResult 핸들이 종료될 때까지 기다린 뒤 성공 결과 또는 분류된 에러를 반환합니다.
//
// 반환되는 에러는 *InterruptedError, *ExecutionError, *UnknownFailureError 중 하나이며,
// ctx가 먼저 만료되면 ctx.Err()를 반환합니다.
// 이 패키지에서 유일하게 블로킹되는 연산이므로 상태 조회 경로에서는 종료된 핸들에만 사용해야 합니다.
func (h *Handle) AwaitResult(ctx context.Context) (any, error) {
	select {
	case <-h.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	h.mu.RLock()
	outcome := h.outcome
	h.mu.RUnlock()

	return outcome.result()
}
