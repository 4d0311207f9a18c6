package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	authmw "github.com/Deondre2002/Market/internal/middleware/auth"
	"github.com/Deondre2002/Market/internal/models"
	"github.com/Deondre2002/Market/internal/repo"
	"github.com/Deondre2002/Market/internal/service"
	"github.com/Deondre2002/Market/internal/token"
)

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	DB     *gorm.DB
	Tokens *token.Issuer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderProduct{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	r := repo.New(db)
	issuer := token.NewIssuer([]byte("test-jwt-secret"), time.Hour)

	authSvc := &service.AuthService{Repo: r, Tokens: issuer}
	catalogSvc := &service.CatalogService{Repo: r}
	orderSvc := &service.OrderService{Repo: r}

	e := echo.New()
	Register(e, &Deps{
		UserHandler:    &UserHTTP{Svc: authSvc},
		ProductHandler: &ProductHTTP{Svc: catalogSvc},
		OrderHandler:   &OrderHTTP{Orders: orderSvc, Catalog: catalogSvc},
		Gate:           &authmw.Gate{Tokens: issuer},
	})

	return &testEnv{T: t, E: e, DB: db, Tokens: issuer}
}

func (env *testEnv) do(method, path string, body interface{}, bearer string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) register(username, password string) string {
	env.T.Helper()

	rec := env.do(http.MethodPost, "/users/register", map[string]string{
		"username": username,
		"password": password,
	}, "")
	require.Equal(env.T, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(env.T, resp.Token)
	return resp.Token
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func errBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	resp := decodeJSON[map[string]string](t, rec)
	return resp["error"]
}
