// Package sweeper 보관 기간이 지난 종료 프로세스를 레지스트리에서 주기적으로 제거하는 서비스를 제공합니다.
package sweeper

import (
	"context"
	"sync"
	"time"

	"github.com/darkkaiser/process-server/internal/config"
	apperrors "github.com/darkkaiser/process-server/internal/pkg/errors"
	"github.com/darkkaiser/process-server/internal/service/contract"
	"github.com/darkkaiser/process-server/internal/service/process"
	"github.com/darkkaiser/process-server/pkg/cronx"
	applog "github.com/darkkaiser/process-server/pkg/log"
	"github.com/robfig/cron/v3"
)

// component Sweeper 서비스의 로깅용 컴포넌트 이름
const component = "sweeper.service"

var (
	// ErrStoreNotInitialized 서비스 시작 시 정리 대상 저장소가 초기화되지 않았을 때 반환하는 에러입니다.
	ErrStoreNotInitialized = apperrors.New(apperrors.Internal, "ProcessStore 객체가 초기화되지 않았습니다")
)

// ProcessStore 정리 대상 프로세스를 조회하고 제거하는 저장소입니다. process.Registry가 이를 구현합니다.
type ProcessStore interface {
	ListAll() []process.Entry
	Remove(key contract.ProcessKey) bool
	Len() int
}

// Sweeper 설정된 Cron 주기마다 보관 기간(retention)이 지난 종료 프로세스를 제거합니다.
//
// 보관 기간이 0이면 종료된 프로세스를 제거하지 않고 계속 조회할 수 있도록 남겨둡니다.
type Sweeper struct {
	timeSpec  string
	retention time.Duration

	store ProcessStore

	cron *cron.Cron

	now func() time.Time

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 Sweeper 서비스 인스턴스를 생성합니다.
func NewService(processConfig config.ProcessConfig, store ProcessStore) *Sweeper {
	if store == nil {
		panic("ProcessStore는 필수입니다")
	}

	return &Sweeper{
		timeSpec:  processConfig.SweepTimeSpec,
		retention: processConfig.Retention,

		store: store,

		now: time.Now,
	}
}

// Start Cron 엔진에 정리 작업을 등록하고 시작합니다.
func (s *Sweeper) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Sweeper 서비스 초기화 프로세스를 시작합니다")

	if s.store == nil {
		serviceStopWG.Done()
		return ErrStoreNotInitialized
	}

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Sweeper 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	// - StandardParser: 초 단위 스케줄링 지원 (6개 필드: 초 분 시 일 월 요일)
	// - Recover: 정리 도중 Panic이 발생해도 다음 주기에 영향을 주지 않음
	// - SkipIfStillRunning: 이전 정리가 끝나지 않았으면 다음 실행을 건너뜀
	s.cron = cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
		cron.WithChain(
			cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
		),
	)

	if s.retention > 0 {
		if _, err := s.cron.AddFunc(s.timeSpec, func() { s.Sweep() }); err != nil {
			s.cron = nil
			serviceStopWG.Done()
			return apperrors.Wrapf(err, apperrors.InvalidInput, "정리 주기 등록 실패: 잘못된 Cron 표현식입니다 (TimeSpec='%s')", s.timeSpec)
		}
	} else {
		applog.WithComponent(component).Info("보관 기간이 0으로 설정되어 종료된 프로세스를 제거하지 않습니다")
	}

	s.cron.Start()
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"time_spec": s.timeSpec,
		"retention": s.retention,
	}).Info("서비스 시작 완료: Sweeper 서비스가 정상적으로 초기화되었습니다")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.stop()
	}()

	return nil
}

func (s *Sweeper) stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: Sweeper 서비스 중지 시그널을 수신했습니다")

	// Cron 엔진 중지 및 실행 중인 정리 작업 완료 대기
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}

	s.cron = nil
	s.running = false

	applog.WithComponent(component).Info("Sweeper 서비스 종료 완료")
}

// Sweep 종료된 지 보관 기간 이상 지난 프로세스를 제거하고 제거한 개수를 반환합니다.
// 실행 중인 프로세스는 보관 기간과 무관하게 제거하지 않습니다.
func (s *Sweeper) Sweep() int {
	if s.retention <= 0 {
		return 0
	}

	now := s.now()
	removed := 0

	for _, e := range s.store.ListAll() {
		snap := e.Handle.Snapshot()
		if !snap.State.IsTerminal() || snap.FinishedAt.IsZero() {
			continue
		}
		if now.Sub(snap.FinishedAt) < s.retention {
			continue
		}

		if s.store.Remove(e.Key) {
			removed++
		}
	}

	if removed > 0 {
		applog.WithComponentAndFields(component, applog.Fields{
			"removed_count":   removed,
			"remaining_count": s.store.Len(),
			"retention":       s.retention,
		}).Info("보관 기간이 지난 프로세스를 정리했습니다")
	}

	return removed
}
