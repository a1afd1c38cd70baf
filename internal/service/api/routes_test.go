package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	"github.com/darkkaiser/catalog-server/internal/pkg/version"
	"github.com/darkkaiser/catalog-server/internal/service/api/handler/system"
	systemmodel "github.com/darkkaiser/catalog-server/internal/service/api/model/system"
	"github.com/darkkaiser/catalog-server/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	e := echo.New()
	store := catalog.NewStore(testutil.NewMemoryRepository())
	RegisterRoutes(e, system.NewHandler(store, version.Info{Version: "1.2.0", Commit: "abc1234"}))

	t.Run("라우트 등록", func(t *testing.T) {
		t.Parallel()

		registered := make(map[string]bool)
		for _, r := range e.Routes() {
			registered[r.Method+" "+r.Path] = true
		}

		assert.True(t, registered["GET /health"])
		assert.True(t, registered["GET /version"])
		assert.True(t, registered["GET /swagger/*"])
		assert.Len(t, e.Routes(), 3)
	})

	t.Run("헬스체크", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var body systemmodel.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body.Dependencies, "local_storage")
		assert.Contains(t, body.Dependencies, "remote_catalog")
	})

	t.Run("버전", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var body systemmodel.VersionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "1.2.0", body.Version)
		assert.Equal(t, "abc1234", body.Commit)
	})
}

func TestRegisterSwaggerRoutes(t *testing.T) {
	t.Parallel()

	e := echo.New()
	registerSwaggerRoutes(e)

	t.Run("Swagger UI", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	})

	t.Run("API 문서", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, gjson.Valid(rec.Body.String()), "문서는 올바른 JSON이어야 합니다")

		assert.Equal(t, "Catalog Server API", gjson.Get(rec.Body.String(), "info.title").String())

		var doc struct {
			Paths map[string]map[string]json.RawMessage `json:"paths"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

		// 등록된 모든 엔드포인트가 문서화되어야 합니다.
		expected := map[string][]string{
			"/health":                     {"get"},
			"/version":                    {"get"},
			"/api/v1/catalog/products":    {"get", "post"},
			"/api/v1/catalog/categories":  {"get"},
			"/api/v1/catalog/sort":        {"post", "delete"},
			"/api/v1/catalog/sort/{field}": {"patch", "delete"},
			"/api/v1/catalog/filter":      {"put"},
			"/api/v1/catalog/load-more":   {"post"},
			"/api/v1/catalog/refresh":     {"post"},
		}
		for path, methods := range expected {
			for _, method := range methods {
				assert.Contains(t, doc.Paths[path], method, "%s %s", method, path)
			}
		}
	})
}
