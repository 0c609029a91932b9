package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobmatch_backend/internal/app"
	"jobmatch_backend/internal/auth"
	"jobmatch_backend/internal/config"
	"jobmatch_backend/internal/email"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	TestJWTSecret = "test-secret-for-integration"
	TestIssuer    = "jobmatch-test"
)

type TestServer struct {
	Server   *httptest.Server
	DB       *gorm.DB
	Mailer   *email.MockProvider
	verifier *auth.TokenVerifier
}

// NewTestServer поднимает роутер поверх чистой sqlite БД
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := NewTestDB(t)

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Auth.JWTSecret = TestJWTSecret
	cfg.Auth.Issuer = TestIssuer

	mailer := email.NewMockProvider(email.NewTemplateManager())
	server := httptest.NewServer(app.SetupRouter(cfg, db, mailer))
	t.Cleanup(server.Close)

	return &TestServer{
		Server:   server,
		DB:       db,
		Mailer:   mailer,
		verifier: auth.NewTokenVerifier(TestJWTSecret, TestIssuer),
	}
}

// Token подписывает токен так же, как identity provider
func (ts *TestServer) Token(t *testing.T, userID, userType string) string {
	t.Helper()
	token, err := ts.verifier.GenerateToken(userID, userType, time.Hour)
	require.NoError(t, err, "Не удалось подписать токен")
	return token
}

// SendRequest отправляет JSON-запрос и возвращает ответ и тело
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Ошибка кодирования JSON для запроса")
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	require.NoError(t, err, "Ошибка создания HTTP-запроса")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err, "Ошибка отправки HTTP-запроса")
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	require.NoError(t, err, "Ошибка чтения тела ответа")

	return res, string(resBodyBytes)
}

// DecodeJSON разбирает тело ответа в v
func DecodeJSON(t *testing.T, body string, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), v), "Не удалось разобрать ответ: %s", body)
}
