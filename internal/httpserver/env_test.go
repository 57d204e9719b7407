package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/courtneystore/catalog-api/internal/models"
	"github.com/courtneystore/catalog-api/internal/repo"
	"github.com/courtneystore/catalog-api/internal/service"
)

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	P      *CatalogHTTP
	A      *AuthHTTP
	DB     *gorm.DB
	Secret []byte
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.User{}))

	secret := []byte("test-jwt-secret")
	repository := &repo.GormRepo{DB: db}

	return &testEnv{
		T:      t,
		E:      echo.New(),
		P:      &CatalogHTTP{Svc: &service.CatalogService{Repo: repository}},
		A:      &AuthHTTP{Svc: &service.AuthService{Repo: repository, Secret: secret}},
		DB:     db,
		Secret: secret,
	}
}

func (env *testEnv) doJSONRequest(method, target string, body any) (*httptest.ResponseRecorder, echo.Context) {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}
