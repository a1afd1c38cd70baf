package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	"github.com/darkkaiser/catalog-server/internal/catalog/pagination"
	"github.com/darkkaiser/catalog-server/internal/catalog/remote"
	"github.com/darkkaiser/catalog-server/internal/config"
	"github.com/darkkaiser/catalog-server/internal/pkg/fetcher"
	"github.com/darkkaiser/catalog-server/internal/pkg/version"
	"github.com/darkkaiser/catalog-server/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testService struct {
	service *Service
	store   *catalog.Store
	remote  *testutil.CatalogServer
	baseURL string
	port    int
}

// setupService 가짜 원격 API에 연결된 실제 Store와 Pagination Controller로 Service를 구성합니다.
func setupService(t *testing.T) *testService {
	t.Helper()

	port, err := testutil.GetFreePort()
	require.NoError(t, err, "사용 가능한 포트를 가져오는데 실패했습니다")

	srv := testutil.NewCatalogServer(testutil.SampleProducts(25))
	t.Cleanup(srv.Close)

	client, err := remote.NewClient(srv.Endpoint(), fetcher.NewFromConfig(fetcher.Config{Timeout: 2 * time.Second, DisableLogging: true}))
	require.NoError(t, err)

	store := catalog.NewStore(testutil.NewMemoryRepository())
	loader := pagination.New(store, client, pagination.WithPageSize(10))

	appConfig := &config.AppConfig{Debug: true}
	appConfig.API.ListenPort = port
	appConfig.API.CORS.AllowOrigins = []string{"*"}

	return &testService{
		service: NewService(appConfig, store, loader, version.Info{Version: "1.0.0"}),
		store:   store,
		remote:  srv,
		baseURL: fmt.Sprintf("http://localhost:%d", port),
		port:    port,
	}
}

func waitWithTimeout(t *testing.T, wg *sync.WaitGroup) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("서비스가 제한 시간 안에 종료되지 않았습니다")
	}
}

func TestNewService_PanicsOnNilDependencies(t *testing.T) {
	t.Parallel()

	appConfig := &config.AppConfig{}
	store := catalog.NewStore(testutil.NewMemoryRepository())
	loader := pagination.New(store, &remote.Client{})

	tests := []struct {
		name string
		fn   func()
	}{
		{"AppConfig 누락", func() { NewService(nil, store, loader, version.Info{}) }},
		{"Store 누락", func() { NewService(appConfig, nil, loader, version.Info{}) }},
		{"Loader 누락", func() { NewService(appConfig, store, nil, version.Info{}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, tt.fn)
		})
	}
}

func TestService_Lifecycle(t *testing.T) {
	ts := setupService(t)

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)

	require.NoError(t, ts.service.Start(ctx, wg))
	require.NoError(t, testutil.WaitForServer(ts.port, 5*time.Second))

	resp, err := http.Get(ts.baseURL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// 첫 페이지 요청
	resp, err = http.Post(ts.baseURL+"/api/v1/catalog/load-more", "", nil)
	require.NoError(t, err)

	var page struct {
		Started     bool `json:"started"`
		HasMore     bool `json:"hasMore"`
		RemoteCount int  `json:"remoteCount"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	resp.Body.Close()

	assert.True(t, page.Started)
	assert.True(t, page.HasMore)
	assert.Equal(t, 10, page.RemoteCount)

	// 로컬 상품 등록
	resp, err = http.Post(ts.baseURL+"/api/v1/catalog/products", "application/json",
		strings.NewReader(`{"title":"Handmade Mug","price":12.5,"category":"kitchen","stock":3}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.Equal(t, 1, ts.store.LocalCount())
	assert.Equal(t, 1, ts.remote.Requests())

	cancel()
	waitWithTimeout(t, wg)

	_, err = http.Get(ts.baseURL + "/health")
	assert.Error(t, err, "종료 후에는 연결할 수 없어야 합니다")
}

func TestService_DuplicateStart(t *testing.T) {
	ts := setupService(t)

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, ts.service.Start(ctx, wg))
	require.NoError(t, testutil.WaitForServer(ts.port, 5*time.Second))

	wg.Add(1)
	require.NoError(t, ts.service.Start(ctx, wg))

	cancel()
	waitWithTimeout(t, wg)
}

func TestService_PortInUse(t *testing.T) {
	ts := setupService(t)

	// 같은 포트를 먼저 점유합니다.
	blocker := setupService(t)
	blocker.service.appConfig.API.ListenPort = ts.port

	blockerCtx, blockerCancel := context.WithCancel(context.Background())
	blockerWG := &sync.WaitGroup{}
	blockerWG.Add(1)
	require.NoError(t, blocker.service.Start(blockerCtx, blockerWG))
	require.NoError(t, testutil.WaitForServer(ts.port, 5*time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, ts.service.Start(ctx, wg))

	// 바인딩에 실패한 서비스는 종료 신호 없이 스스로 정리됩니다.
	waitWithTimeout(t, wg)

	ts.service.runningMu.Lock()
	assert.False(t, ts.service.running)
	ts.service.runningMu.Unlock()

	blockerCancel()
	waitWithTimeout(t, blockerWG)
}
