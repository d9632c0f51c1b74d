package process

import (
	"context"
	"sync"
	"time"

	"github.com/darkkaiser/process-server/internal/config"
	apperrors "github.com/darkkaiser/process-server/internal/pkg/errors"
	"github.com/darkkaiser/process-server/internal/service/contract"
	"github.com/darkkaiser/process-server/internal/service/process/job"
	applog "github.com/darkkaiser/process-server/pkg/log"
)

const component = "process.service"

// defaultEnqueueTimeout 호출자의 컨텍스트에 기한이 없을 때 대기열 자리를 기다리는 최대 시간입니다.
const defaultEnqueueTimeout = 3 * time.Second

var _ contract.ProcessManager = (*Service)(nil)

// Service 백그라운드 프로세스의 제출, 상태 조회, 목록 조회, 취소를 담당하는 서비스입니다.
type Service struct {
	appConfig *config.AppConfig

	registry *Registry
	catalog  *job.Catalog

	runner *runner

	running   bool
	runningMu sync.Mutex
}

func NewService(appConfig *config.AppConfig, registry *Registry, catalog *job.Catalog) *Service {
	return &Service{
		appConfig: appConfig,

		registry: registry,
		catalog:  catalog,

		running:   false,
		runningMu: sync.Mutex{},
	}
}

// Registry 서비스가 사용하는 레지스트리를 반환합니다. 보관 기간 정리 등 부가 컴포넌트에서 사용합니다.
func (s *Service) Registry() *Registry {
	return s.registry
}

// Start 작업 실행기를 시작하고 서비스 종료 감시 루틴을 실행합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("Process 서비스 시작중...")

	if s.appConfig == nil || s.registry == nil || s.catalog == nil {
		defer serviceStopWG.Done()
		return apperrors.New(apperrors.Internal, "Process 서비스의 의존 객체가 초기화되지 않았습니다")
	}

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(component).Warn("Process 서비스가 이미 시작됨!!!")
		return nil
	}

	pc := s.appConfig.Process
	s.runner = newRunner(s.registry, pc.MaxConcurrent, pc.QueueSize, pc.ShutdownTimeout)
	s.runner.start()

	go s.waitForShutdown(serviceStopCtx, serviceStopWG)

	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"max_concurrent": pc.MaxConcurrent,
		"queue_size":     pc.QueueSize,
		"kinds":          s.catalog.Kinds(),
	}).Info("Process 서비스 시작됨")

	return nil
}

func (s *Service) waitForShutdown(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	<-serviceStopCtx.Done()

	applog.WithComponent(component).Info("Process 서비스 중지중...")

	s.runningMu.Lock()
	r := s.runner
	s.running = false
	s.runningMu.Unlock()

	// 락 밖에서 종료한다. 종료 중에도 상태 조회와 취소 요청은 계속 처리되어야 한다.
	r.stop()

	s.runningMu.Lock()
	s.runner = nil
	s.runningMu.Unlock()

	applog.WithComponent(component).Info("Process 서비스 중지됨")
}

// Health 작업 실행기가 동작 중이면 nil, 아니면 ErrServiceNotRunning을 반환합니다.
func (s *Service) Health() error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running || s.runner == nil {
		return ErrServiceNotRunning
	}
	return nil
}

// Submit 작업을 검증하여 레지스트리에 등록하고 실행 대기열에 넣은 뒤 프로세스 키를 반환합니다.
func (s *Service) Submit(ctx context.Context, req *contract.SubmitRequest) (contract.ProcessKey, error) {
	if req == nil {
		return "", apperrors.New(apperrors.InvalidInput, "작업 제출 요청이 없습니다")
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	s.runningMu.Lock()
	r := s.runner
	running := s.running
	s.runningMu.Unlock()

	if !running || r == nil {
		return "", ErrServiceNotRunning
	}

	def, ok := s.catalog.Lookup(req.Kind)
	if !ok {
		return "", NewErrUnsupportedKind(req.Kind)
	}

	j, err := def.New(req.Params)
	if err != nil {
		return "", err
	}

	h, err := s.registry.Register(req.Requester.ID, def.Kind, def.CancellableByOwner)
	if err != nil {
		return "", err
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultEnqueueTimeout)
		defer cancel()
	}

	if err := r.enqueue(ctx, h, j); err != nil {
		s.registry.Remove(h.Key())
		return "", err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"process_key":          h.Key(),
		"kind":                 def.Kind,
		"owner":                req.Requester.ID,
		"cancellable_by_owner": def.CancellableByOwner,
	}).Info("프로세스 제출됨")

	return h.Key(), nil
}

// Status 키에 해당하는 프로세스의 현재 상태를 반환합니다.
func (s *Service) Status(key contract.ProcessKey, locator string) (contract.ProcessStatus, error) {
	h, ok := s.registry.Get(key)
	if !ok {
		return contract.ProcessStatus{}, NewErrProcessNotFound(key)
	}
	return Project(h, locator), nil
}

// List 등록된 프로세스의 상태 목록을 반환합니다.
// includeFinished가 false이면 종료되지 않은 프로세스만 포함합니다.
func (s *Service) List(includeFinished bool, locatorFor func(contract.ProcessKey) string) []contract.ProcessStatus {
	var entries []Entry
	if includeFinished {
		entries = s.registry.ListAll()
	} else {
		entries = s.registry.ListRunning()
	}

	statuses := make([]contract.ProcessStatus, 0, len(entries))
	for _, e := range entries {
		locator := ""
		if locatorFor != nil {
			locator = locatorFor(e.Key)
		}
		statuses = append(statuses, Project(e.Handle, locator))
	}

	return statuses
}

// Cancel 프로세스를 취소하고 취소 이후의 상태를 반환합니다.
//
// 처리 순서:
//  1. 키가 없으면 NotFound
//  2. 이미 종료된 프로세스는 권한 확인 없이 현재 상태를 그대로 반환 (멱등)
//  3. 권한이 없으면 Forbidden, 핸들은 변경하지 않음
//  4. 취소자, 취소 시각, Cancelled 상태를 원자적으로 기록하고 작업에 중단 신호 전달
//
// 2~4는 핸들의 쓰기 락 하나 안에서 판정되므로, 판정 도중 작업이 끝나더라도 403으로 바뀌지 않습니다.
func (s *Service) Cancel(key contract.ProcessKey, requester contract.Requester, locator string) (contract.ProcessStatus, error) {
	h, ok := s.registry.Get(key)
	if !ok {
		return contract.ProcessStatus{}, NewErrProcessNotFound(key)
	}

	switch h.CancelAs(requester) {
	case CancelDenied:
		applog.WithComponentAndFields(component, applog.Fields{
			"process_key": key,
			"owner":       h.Owner(),
			"requester":   requester.String(),
		}).Warn("프로세스 취소 거부: 권한이 없는 요청자입니다")

		return contract.ProcessStatus{}, NewErrCancelForbidden(key, requester)

	case CancelApplied:
		applog.WithComponentAndFields(component, applog.Fields{
			"process_key": key,
			"kind":        h.Kind(),
			"requester":   requester.String(),
		}).Info("프로세스 취소됨")
	}

	return Project(h, locator), nil
}
