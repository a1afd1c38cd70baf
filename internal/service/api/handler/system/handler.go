// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 버전 정보 등 카탈로그 상태와 무관한 시스템 수준의 API를 처리합니다.
package system

import (
	"net/http"
	"runtime"
	"time"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	"github.com/darkkaiser/catalog-server/internal/pkg/version"
	"github.com/darkkaiser/catalog-server/internal/service/api/constants"
	"github.com/darkkaiser/catalog-server/internal/service/api/model/system"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// StatusProvider 헬스체크에 필요한 카탈로그 상태를 제공합니다. catalog.Store가 구현합니다.
type StatusProvider interface {
	LastPersistStatus() catalog.PersistStatus
	RemoteCount() int
	HasMore() bool
	Loading() bool
}

var _ StatusProvider = (*catalog.Store)(nil)

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	status StatusProvider

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(status StatusProvider, buildInfo version.Info) *Handler {
	if status == nil {
		panic(constants.PanicMsgStoreRequired)
	}

	return &Handler{
		status: status,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 상태 확인
// @Description 서버와 의존성(로컬 저장소, 원격 카탈로그)의 상태를 반환합니다.
// @Description
// @Description 로컬 저장 실패나 원격 페이지 요청 실패는 요청 처리를 막지 않으므로 항상 200으로 응답하고,
// @Description 전체 상태를 degraded로 표시합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "서버 상태"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"remote_ip": c.RealIP(),
	}).Debug("헬스체크 요청")

	deps := map[string]system.DependencyStatus{
		constants.DependencyLocalStorage:  h.localStorageStatus(),
		constants.DependencyRemoteCatalog: h.remoteCatalogStatus(),
	}

	serverStatus := constants.HealthStatusHealthy
	for _, dep := range deps {
		if dep.Status != constants.HealthStatusHealthy {
			serverStatus = constants.HealthStatusDegraded
			break
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       serverStatus,
		Uptime:       int64(time.Since(h.serverStartTime).Seconds()),
		Dependencies: deps,
	})
}

func (h *Handler) localStorageStatus() system.DependencyStatus {
	if ps := h.status.LastPersistStatus(); ps.Err != nil {
		return system.DependencyStatus{
			Status:  constants.HealthStatusDegraded,
			Message: constants.MsgDepStatusPersistFailed + ": " + ps.Err.Error(),
		}
	}
	return system.DependencyStatus{Status: constants.HealthStatusHealthy, Message: constants.MsgDepStatusHealthy}
}

func (h *Handler) remoteCatalogStatus() system.DependencyStatus {
	switch {
	case h.status.HasMore() || h.status.Loading():
		return system.DependencyStatus{Status: constants.HealthStatusHealthy, Message: constants.MsgDepStatusHealthy}
	case h.status.RemoteCount() == 0:
		return system.DependencyStatus{Status: constants.HealthStatusDegraded, Message: constants.MsgDepStatusRemoteNotLoaded}
	default:
		// 모든 페이지를 불러왔거나 마지막 요청이 실패한 상태입니다. 둘은 구분되지 않습니다.
		return system.DependencyStatus{Status: constants.HealthStatusHealthy, Message: constants.MsgDepStatusNoMorePages}
	}
}

// VersionHandler godoc
// @Summary 서버 버전 정보 조회
// @Description 서버의 빌드 정보(버전, 커밋, 빌드 날짜, Go 버전)를 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   runtime.Version(),
		DirtyBuild:  h.buildInfo.DirtyBuild,
	})
}
