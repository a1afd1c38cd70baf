package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/catalog-server/internal/config"
	"github.com/darkkaiser/catalog-server/internal/pkg/version"
	"github.com/darkkaiser/catalog-server/internal/service"
	"github.com/darkkaiser/catalog-server/internal/service/api"
	catalogservice "github.com/darkkaiser/catalog-server/internal/service/catalog"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
	"github.com/spf13/cobra"
)

func newServeCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "카탈로그 API 서버를 실행합니다 (기본 명령)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), root)
		},
	}
}

// setupLogging 로그 설정은 환경설정의 debug 값에 따라 개발/운영 프로필 중 하나를 사용합니다.
func setupLogging(debug bool) (io.Closer, error) {
	logOpts := applog.NewProductionOptions(config.AppName)
	if debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	}

	closer, err := applog.Setup(logOpts)
	if err != nil {
		return nil, fmt.Errorf("로그 시스템 초기화 실패: %w", err)
	}
	return closer, nil
}

func runServe(ctx context.Context, root *rootOptions) error {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.LoadWithFile(root.configFile)
	if err != nil {
		return fmt.Errorf("환경설정 로드 실패: %w", err)
	}

	// 2. 로그 시스템 초기화
	logCloser, err := setupLogging(appConfig.Debug)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	buildInfo := version.Get()
	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	// 3. 서비스 생성
	c, err := newComponents(appConfig)
	if err != nil {
		return err
	}

	catalogService := catalogservice.NewService(c.store, c.loader, appConfig.Catalog.RefreshSchedule)
	apiService := api.NewService(appConfig, c.store, c.loader, buildInfo)

	serviceStopCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	serviceStopWG := &sync.WaitGroup{}

	// 4. 서비스 시작
	services := []service.Service{catalogService, apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 이미 시작된 서비스도 종료
			serviceStopWG.Wait()

			return err
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(termC)

	applog.WithComponent("main").Info("서버 가동 완료")

	select {
	case <-termC:
	case <-ctx.Done():
	}

	applog.WithComponent("main").Info("종료 신호 수신: 모든 서비스를 중지합니다")

	cancel()
	serviceStopWG.Wait()

	return nil
}
