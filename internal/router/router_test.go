package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Waer1/complex-product-CRUD/internal/config"
	"github.com/Waer1/complex-product-CRUD/internal/dto"
	"github.com/Waer1/complex-product-CRUD/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSQLiteEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, infra.Migrate(db))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := &config.Config{Env: "test", CacheTTL: time.Minute, RateLimitRPS: 1000, RateLimitBurst: 1000}
	return New(ctx, cfg, db, nil)
}

func call(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_HealthWithoutRedis(t *testing.T) {
	r := newSQLiteEngine(t)

	w := call(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "connected", body["db"])
	assert.Equal(t, "disabled", body["redis"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_ProductLifecycle(t *testing.T) {
	r := newSQLiteEngine(t)

	w := call(t, r, http.MethodPost, "/api/v1/product", map[string]any{
		"name": "P1",
		"uoms": []any{map[string]any{
			"name":       "box",
			"uomBarcode": map[string]string{"barcode": "111"},
			"uomImage":   map[string]string{"url": "http://img/1"},
			"addons":     []any{map[string]any{"name": "A1", "addonItems": []any{map[string]string{"name": "I1"}}}},
		}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created dto.ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Len(t, created.UOMs, 1)
	uomID := created.UOMs[0].ID

	w = call(t, r, http.MethodPatch, "/api/v1/product/"+itoa(created.ID), map[string]any{
		"uoms": []any{map[string]any{"uomId": uomID, "uomBarcode": map[string]string{"barcode": "222"}}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated dto.ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "222", updated.UOMs[0].UOMBarcode.Barcode)
	assert.Equal(t, created.UOMs[0].UOMBarcode.ID, updated.UOMs[0].UOMBarcode.ID)

	w = call(t, r, http.MethodPost, "/api/v1/product", map[string]any{"name": "P1", "uoms": []any{}})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = call(t, r, http.MethodPatch, "/api/v1/product/"+itoa(created.ID), map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(t, r, http.MethodDelete, "/api/v1/product/"+itoa(created.ID)+"/uoms/"+itoa(uomID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = call(t, r, http.MethodGet, "/api/v1/uom/"+itoa(uomID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = call(t, r, http.MethodDelete, "/api/v1/product/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = call(t, r, http.MethodGet, "/api/v1/product/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_SwaggerOutsideProduction(t *testing.T) {
	r := newSQLiteEngine(t)

	w := call(t, r, http.MethodGet, "/docs/doc.json", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/product/{id}")
}

func TestRouter_SwaggerCoversEveryAPIRoute(t *testing.T) {
	r := newSQLiteEngine(t)

	w := call(t, r, http.MethodGet, "/docs/doc.json", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	wildcard := regexp.MustCompile(`:(\w+)`)
	documented := 0
	for _, rt := range r.Routes() {
		if !strings.HasPrefix(rt.Path, "/api/v1/") {
			continue
		}
		path := wildcard.ReplaceAllString(strings.TrimPrefix(rt.Path, "/api/v1"), "{$1}")
		ops, ok := doc.Paths[path]
		if assert.True(t, ok, "undocumented path %s", path) {
			assert.Contains(t, ops, strings.ToLower(rt.Method), "undocumented %s %s", rt.Method, path)
		}
		documented++
	}
	assert.Equal(t, 19, documented)
}

func itoa(id uint) string { return strconv.FormatUint(uint64(id), 10) }
