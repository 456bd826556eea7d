package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront.GO/config"
	"storefront.GO/core/session"
	"storefront.GO/core/storage"
	catalogService "storefront.GO/service/catalog"
)

func testConfig(driver, source string) *config.Config {
	return &config.Config{
		AppName:       "storefront-test",
		PageSize:      6,
		StorageDriver: driver,
		CatalogSource: source,
	}
}

func memoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return db
}

func do(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(session.HeaderName, "alice")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestApp_MemoryFixture(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")
	dump := filepath.Join(t.TempDir(), "storage.json")
	cfg := testConfig(DriverMemory, "fixture")
	cfg.StorageDump = dump

	a, err := New(cfg, nil, Options{})
	require.NoError(t, err)
	assert.Nil(t, a.DB)
	assert.Nil(t, a.Relay)
	assert.Equal(t, 24, a.Catalog.Len())

	e := a.Echo()

	rec := do(t, e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Duration-ms"))

	rec = do(t, e, http.MethodPost, "/api/cart/items", `{"productId":"1","color":"black","size":"M","quantity":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodGet, "/api/products?brands=Vans", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listing struct {
		TotalCount int `json:"totalCount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Equal(t, 2, listing.TotalCount)

	require.NoError(t, a.Close())

	restored := storage.NewMemory()
	require.NoError(t, restored.RestoreFromFile(dump))
	assert.Equal(t, []string{"session:alice:cart"}, restored.Keys())
}

func TestApp_DBCatalogAndStorage(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")
	db := memoryDB(t)
	n, err := catalogService.SeedFixture(db)
	require.NoError(t, err)
	require.Equal(t, 24, n)

	cfg := testConfig(DriverDB, "db")
	cfg.SubmitDelay = time.Millisecond
	a, err := New(cfg, nil, Options{DB: db})
	require.NoError(t, err)
	assert.Equal(t, 24, a.Catalog.Len())
	e := a.Echo()

	rec := do(t, e, http.MethodPost, "/api/cart/items", `{"productId":"2","quantity":1}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	keys, err := a.Storage.(*storage.DB).Keys("session:alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"session:alice:cart"}, keys)

	rec = do(t, e, http.MethodPost, "/api/cart/checkout", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Order placed successfully!")

	require.NoError(t, a.Close())
}

func TestApp_RedisDriverWithoutRedis(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")
	_, err := New(testConfig(DriverRedis, "fixture"), nil, Options{})
	assert.ErrorContains(t, err, "storage redis")
}

func TestApp_ScheduleEvictsIdleCarts(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")
	cfg := testConfig(DriverMemory, "fixture")
	cfg.CartIdleTTL = time.Hour
	a, err := New(cfg, nil, Options{})
	require.NoError(t, err)
	defer a.Close()

	sched := cron.New()
	require.NoError(t, a.Schedule(sched))
	entries := sched.Entries()
	require.Len(t, entries, 1)

	e := a.Echo()
	rec := do(t, e, http.MethodGet, "/api/cart", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, 1, a.Carts.Len())

	// the sweep drops the empty, unsubscribed store
	entries[0].Job.Run()
	assert.Equal(t, 0, a.Carts.Len())
}
