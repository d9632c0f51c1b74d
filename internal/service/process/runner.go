package process

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/darkkaiser/process-server/internal/service/process/job"
	applog "github.com/darkkaiser/process-server/pkg/log"
	"golang.org/x/sync/semaphore"
)

// shutdownReason 서비스 종료로 중단된 프로세스에 기록되는 메시지입니다.
const shutdownReason = "서버 종료로 인해 작업이 중단되었습니다"

// submission 대기열에 들어가는 실행 단위입니다.
type submission struct {
	handle *Handle
	job    job.Job
}

// runner 대기열에 쌓인 작업을 제한된 동시성으로 실행합니다.
//
// 대기열은 queueSize 크기의 버퍼 채널이며, 동시에 실행되는 작업 본문의 수는
// 세마포어(maxConcurrent)로 제한됩니다.
type runner struct {
	registry *Registry

	queue chan submission
	sem   *semaphore.Weighted

	shutdownTimeout time.Duration

	// stopCtx 종료가 시작되면 취소되어 대기 중인 제출과 디스패처를 깨웁니다.
	stopCtx    context.Context
	stopCancel context.CancelFunc

	// mu accepting 플래그를 보호합니다.
	// 제출자는 읽기 락을 쥔 채 대기열에 전송하므로, 종료 절차가 쓰기 락을 얻은 뒤에는 새 전송이 없다.
	mu        sync.RWMutex
	accepting bool

	dispatcherDone chan struct{}
	workers        sync.WaitGroup
}

func newRunner(registry *Registry, maxConcurrent, queueSize int, shutdownTimeout time.Duration) *runner {
	stopCtx, stopCancel := context.WithCancel(context.Background())

	return &runner{
		registry: registry,

		queue: make(chan submission, queueSize),
		sem:   semaphore.NewWeighted(int64(maxConcurrent)),

		shutdownTimeout: shutdownTimeout,

		stopCtx:    stopCtx,
		stopCancel: stopCancel,

		dispatcherDone: make(chan struct{}),
	}
}

func (r *runner) start() {
	r.mu.Lock()
	r.accepting = true
	r.mu.Unlock()

	go r.dispatch()
}

// enqueue 작업을 대기열에 넣습니다.
// 대기열이 가득 차면 ctx가 만료될 때까지 기다리며, 그래도 자리가 나지 않으면 ErrQueueFull을 반환합니다.
func (r *runner) enqueue(ctx context.Context, h *Handle, j job.Job) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.accepting {
		return ErrServiceNotRunning
	}

	select {
	case r.queue <- submission{handle: h, job: j}:
		return nil
	case <-r.stopCtx.Done():
		return ErrServiceNotRunning
	case <-ctx.Done():
		return ErrQueueFull
	}
}

// dispatch 대기열에서 작업을 꺼내 세마포어 슬롯을 확보한 뒤 워커 고루틴으로 실행합니다.
func (r *runner) dispatch() {
	defer close(r.dispatcherDone)

	for {
		select {
		case <-r.stopCtx.Done():
			return

		case sub := <-r.queue:
			if err := r.sem.Acquire(r.stopCtx, 1); err != nil {
				// 종료 중이므로 남은 작업은 stop()에서 일괄 중단 처리한다.
				return
			}

			r.workers.Add(1)
			go r.execute(sub)
		}
	}
}

// execute 작업 본문을 실행하고 반환값을 핸들의 종료 상태로 기록합니다.
func (r *runner) execute(sub submission) {
	defer r.workers.Done()
	defer r.sem.Release(1)

	h := sub.handle
	fields := applog.Fields{
		"process_key": h.Key(),
		"kind":        h.Kind(),
		"owner":       h.Owner(),
	}

	defer func() {
		if rec := recover(); rec != nil {
			h.failUnknown(fmt.Sprintf("%v", rec))

			applog.WithComponentAndFields(component, applog.Fields{
				"process_key": h.Key(),
				"kind":        h.Kind(),
				"panic":       rec,
				"stack":       string(debug.Stack()),
			}).Error("프로세스 실행 중 패닉 복구: 알 수 없는 실패로 기록합니다")
		}
	}()

	// 대기열에 있는 동안 취소되었거나 종료 절차에서 중단된 핸들은 실행하지 않는다.
	if err := h.Start(); err != nil {
		applog.WithComponentAndFields(component, fields).Debug("프로세스 실행 건너뜀: 대기 중 이미 종료된 프로세스입니다")
		return
	}

	applog.WithComponentAndFields(component, fields).Debug("프로세스 실행 시작")

	payload, err := sub.job.Run(h.Context(), h)

	switch {
	case err == nil:
		if !h.Complete(payload) {
			applog.WithComponentAndFields(component, fields).Debug("프로세스 완료 결과 무시: 이미 종료 상태가 기록되어 있습니다")
		}

	case h.IsCancelled():
		// 취소가 먼저 기록되었으므로 추가로 기록할 것이 없다.

	case h.Context().Err() != nil:
		h.Interrupt(err.Error())

	default:
		if h.Fail(err) {
			applog.WithComponentAndFields(component, applog.Fields{
				"process_key": h.Key(),
				"kind":        h.Kind(),
				"error":       err,
			}).Warn("프로세스 실행 실패")
		}
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"process_key": h.Key(),
		"kind":        h.Kind(),
		"state":       h.State(),
	}).Debug("프로세스 실행 종료")
}

// stop 새 제출을 막고, 종료되지 않은 모든 프로세스를 중단시킨 뒤 워커가 끝나기를 기다립니다.
//
// 종료 순서:
//  1. stopCtx 취소: 대기 중인 제출과 디스패처를 깨운다.
//  2. accepting = false: 쓰기 락을 얻으면 진행 중인 대기열 전송이 모두 끝난 상태다.
//  3. 디스패처 종료 대기 후 대기열 비우기
//  4. 종료되지 않은 모든 핸들을 Interrupt (작업 컨텍스트도 취소된다)
//  5. 워커 종료 대기 (최대 shutdownTimeout)
func (r *runner) stop() {
	r.stopCancel()

	r.mu.Lock()
	r.accepting = false
	r.mu.Unlock()

	<-r.dispatcherDone

drain:
	for {
		select {
		case <-r.queue:
		default:
			break drain
		}
	}

	interrupted := 0
	for _, e := range r.registry.ListRunning() {
		if e.Handle.Interrupt(shutdownReason) {
			interrupted++
		}
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"interrupted_count": interrupted,
	}).Info("실행 중인 프로세스에 중단 신호를 보냈습니다. 워커 종료를 기다립니다")

	done := make(chan struct{})
	go func() {
		r.workers.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(r.shutdownTimeout):
		applog.WithComponentAndFields(component, applog.Fields{
			"timeout": r.shutdownTimeout,
		}).Warn("프로세스 서비스 강제 종료: 워커 종료 대기 시간 초과")
	}
}
