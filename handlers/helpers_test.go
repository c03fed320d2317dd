package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/andrewpaige1/cosmic-travel-api/config"
	"github.com/andrewpaige1/cosmic-travel-api/models"
)

var dbCounter atomic.Int64

func getTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:handlers%d?mode=memory&cache=shared&_foreign_keys=0", dbCounter.Add(1))
	db, err := config.Open(sqlite.Open(dsn))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

type testAPI struct {
	db  *gorm.DB
	mux http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	db := getTestDatabase(t)
	h := &DBHandler{DB: db}
	return &testAPI{db: db, mux: h.Routes()}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.mux.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (a *testAPI) planet(t *testing.T, name string) models.Planet {
	t.Helper()

	p := models.Planet{Name: name, DistanceFromEarth: 42, NearestStar: name + " Prime"}
	require.NoError(t, a.db.Create(&p).Error)
	return p
}

func (a *testAPI) scientist(t *testing.T, name, field string) models.Scientist {
	t.Helper()

	s := models.Scientist{Name: name, FieldOfStudy: field}
	require.NoError(t, a.db.Create(&s).Error)
	return s
}

func (a *testAPI) count(t *testing.T, model any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, a.db.Model(model).Count(&n).Error)
	return n
}
