// Package catalog 카탈로그 상태의 초기 적재와 주기적인 원격 목록 갱신을 담당하는 서비스를 제공합니다.
package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	"github.com/darkkaiser/catalog-server/internal/catalog/pagination"
	"github.com/darkkaiser/catalog-server/internal/service"
	"github.com/darkkaiser/catalog-server/pkg/cronx"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
	"github.com/robfig/cron/v3"
)

// component Catalog 서비스의 로깅용 컴포넌트 이름
const component = "catalog.service"

// Loader 원격 상품 목록의 페이지 요청을 수행합니다. pagination.Controller가 구현합니다.
type Loader interface {
	LoadMore(ctx context.Context) bool
	Refresh(ctx context.Context)
}

var (
	_ Loader          = (*pagination.Controller)(nil)
	_ service.Service = (*Service)(nil)
)

// Service 서비스 시작 시 저장된 로컬 상품과 첫 번째 원격 페이지를 불러오고,
// 갱신 스케줄이 설정된 경우 Cron 스케줄에 맞춰 원격 목록을 처음부터 다시 불러옵니다.
type Service struct {
	store  *catalog.Store
	loader Loader

	refreshSchedule string

	cron *cron.Cron

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 Catalog 서비스 인스턴스를 생성합니다. refreshSchedule이 비어있으면 주기적 갱신을 하지 않습니다.
func NewService(store *catalog.Store, loader Loader, refreshSchedule string) *Service {
	if store == nil {
		panic("Store는 필수입니다")
	}
	if loader == nil {
		panic("Loader는 필수입니다")
	}

	return &Service{
		store:  store,
		loader: loader,

		refreshSchedule: strings.TrimSpace(refreshSchedule),
	}
}

// Start 로컬 상품 목록을 불러오고 갱신 스케줄을 등록한 뒤, 첫 페이지 요청과 종료 대기를 고루틴에서 수행합니다.
//
// 매개변수:
//   - serviceStopCtx: 서비스 종료 신호를 받기 위한 Context
//   - serviceStopWG: 서비스 종료 완료를 알리기 위한 WaitGroup
//
// 반환값:
//   - error: 갱신 스케줄을 등록할 수 없는 경우
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Catalog 서비스 초기화 프로세스를 시작합니다")

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Catalog 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	// 1. 저장된 로컬 상품 목록 적재
	s.store.LoadLocalEntries(serviceStopCtx)

	// 2. 주기적 갱신 등록
	if s.refreshSchedule != "" {
		c := cron.New(
			cron.WithParser(cronx.StandardParser()),
			cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.WithChain(
				cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
				cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
			),
		)

		if _, err := c.AddFunc(s.refreshSchedule, func() {
			applog.WithComponentAndFields(component, applog.Fields{
				"spec": s.refreshSchedule,
			}).Debug("예약된 상품 목록 갱신을 시작합니다")

			s.loader.Refresh(serviceStopCtx)
		}); err != nil {
			serviceStopWG.Done()
			return NewErrInvalidRefreshSchedule(err, s.refreshSchedule)
		}

		c.Start()
		s.cron = c
	}

	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"local_count":      s.store.LocalCount(),
		"refresh_schedule": s.refreshSchedule,
	}).Info("서비스 시작 완료: Catalog 서비스가 정상적으로 초기화되었습니다")

	// 3. 첫 페이지 요청 및 종료 신호 대기
	go func() {
		defer serviceStopWG.Done()

		s.loadFirstPage(serviceStopCtx)

		<-serviceStopCtx.Done()

		s.Stop()
	}()

	return nil
}

// loadFirstPage 첫 페이지를 요청합니다. 페이지 소스가 패닉을 일으켜도 프로세스는 계속 실행됩니다.
func (s *Service) loadFirstPage(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"panic": r,
			}).Error("첫 페이지 요청 중단: 페이지 요청 중 패닉 발생")
		}
	}()

	s.loader.LoadMore(ctx)
}

// Stop 갱신 스케줄러를 중지하고 실행 중인 갱신 작업이 끝날 때까지 기다립니다.
func (s *Service) Stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: Catalog 서비스 중지 시그널을 수신했습니다")

	if s.cron != nil {
		<-s.cron.Stop().Done()
	}

	s.cron = nil
	s.running = false

	applog.WithComponent(component).Info("Catalog 서비스 종료 완료: 모든 리소스가 정리되었습니다")
}
