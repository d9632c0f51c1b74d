package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/process-server/internal/config"
	"github.com/darkkaiser/process-server/internal/pkg/version"
	"github.com/darkkaiser/process-server/internal/service"
	"github.com/darkkaiser/process-server/internal/service/api"
	"github.com/darkkaiser/process-server/internal/service/process"
	"github.com/darkkaiser/process-server/internal/service/process/job"
	"github.com/darkkaiser/process-server/internal/service/process/keygen"
	"github.com/darkkaiser/process-server/internal/service/sweeper"
	applog "github.com/darkkaiser/process-server/pkg/log"
)

const component = "main"

const (
	banner = `
  ____                                     ____
 |  _ \  _ __  ___    ___  ___  ___  ___  / ___|   ___  _ __ __   __  ___  _ __
 | |_) || '__|/ _ \  / __|/ _ \/ __|/ __| \___ \  / _ \| '__|\ \ / / / _ \| '__|
 |  __/ | |  | (_) || (__|  __/\__ \\__ \  ___) ||  __/| |    \ V / |  __/| |
 |_|    |_|   \___/  \___|\___||___/|___/ |____/  \___||_|     \_/   \___||_|
                                                                   %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`
)

// @title Process Server API
// @version 1.0.0
// @description 장시간 실행되는 백그라운드 작업을 제출하고, 진행률을 폴링하고, 취소할 수 있는 서버의 REST API입니다.
// @description
// @description ## 주요 기능
// @description - 작업 제출 (countdown, file_checksum, maintenance_reindex)
// @description - 프로세스 상태/진행률 조회 및 목록 조회
// @description - 소유자 또는 관리자에 의한 취소
// @description
// @description ## 인증 방법
// @description 설정 파일(process-server.json)의 process_api.accounts에 등록된 계정 ID와 App Key를
// @description X-Account-Id, X-App-Key 헤더로 전달합니다. 인증에 실패하면 401 Unauthorized를 반환합니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-App-Key
// @description 계정 App Key (X-Account-Id 헤더와 함께 전달)
func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	logOpts := applog.NewProductionOptions(config.AppName)
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	buildInfo := version.Get()
	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields(component, applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent(component).Warn(warning)
	}

	services, err := newServices(appConfig, buildInfo)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Error("서비스 생성 실패")
		return
	}

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	if err := startServices(serviceStopCtx, serviceStopWG, services); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Error("서비스 초기화 실패로 프로그램을 종료합니다")

		cancel()
		serviceStopWG.Wait()
		return
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent(component).Info("서버 가동 완료")

	<-termC

	applog.WithComponent(component).Info("종료 신호 수신, 서비스를 중지합니다")
	cancel()
	serviceStopWG.Wait()
}

// newServices 설정을 바탕으로 서비스들을 생성하고, 시작해야 하는 순서대로 반환합니다.
//
// 프로세스 서비스가 먼저 시작되어야 API 요청을 받을 수 있으므로 API 서비스는 항상 마지막입니다.
func newServices(appConfig *config.AppConfig, buildInfo version.Info) ([]service.Service, error) {
	keyGenerator, err := keygen.New(appConfig.Process.KeyFormat)
	if err != nil {
		return nil, err
	}

	catalog, err := job.DefaultCatalog(appConfig.Process.ChecksumRoot)
	if err != nil {
		return nil, err
	}

	registry := process.NewRegistry(keyGenerator)

	processService := process.NewService(appConfig, registry, catalog)
	sweeperService := sweeper.NewService(appConfig.Process, registry)
	apiService := api.NewService(appConfig, processService, buildInfo)

	return []service.Service{processService, sweeperService, apiService}, nil
}

// startServices 서비스를 순서대로 시작합니다. 하나라도 실패하면 즉시 에러를 반환하며,
// 이미 시작된 서비스를 정리하는 것은 호출자의 책임입니다.
func startServices(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup, services []service.Service) error {
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			return err
		}
	}
	return nil
}
