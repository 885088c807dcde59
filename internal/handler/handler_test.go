package handler

import (
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"storefront-service/internal/model"
	"storefront-service/pkg/config"
	"storefront-service/pkg/database"
	"storefront-service/pkg/jwtutil"
	"storefront-service/prometheus"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	cfg, _ := config.Load()
	prometheus.InitMetrics(cfg)
	jwtutil.Initialize(&cfg.JWT)
	os.Exit(m.Run())
}

// setupHandlerDB swaps the package database singleton for an in-memory
// SQLite instance for the duration of the test
func setupHandlerDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	database.SetDB(db)
	t.Cleanup(func() { database.SetDB(nil) })
	return db
}

// newJSONContext builds an echo context carrying a JSON body and an
// authenticated session for userID (0 means unauthenticated)
func newJSONContext(t *testing.T, method, target, body string, userID uint) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != 0 {
		c.Set("user_id", userID)
	}
	return c, rec
}

type testRequest struct {
	ctx echo.Context
	rec *httptest.ResponseRecorder
}

// newEchoWithParam builds an authenticated context with the :id path param set
func newEchoWithParam(t *testing.T, method, target, id string) testRequest {
	t.Helper()
	c, rec := newJSONContext(t, method, target, "", 1)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return testRequest{ctx: c, rec: rec}
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price, stock int) model.Product {
	t.Helper()
	product := model.Product{Name: name, Price: price, Stock: stock}
	require.NoError(t, db.Create(&product).Error)
	return product
}
