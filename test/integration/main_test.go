package integration_test

import (
	"net/http"
	"testing"

	"jobmatch_backend/internal/auth"
	"jobmatch_backend/internal/services/dto"
	"jobmatch_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiPrefix = "/api/v1"

// errorBody - формат ошибок API
type errorBody struct {
	Error struct {
		Code    string      `json:"code"`
		Domain  string      `json:"domain"`
		Message string      `json:"message"`
		Details interface{} `json:"details"`
	} `json:"error"`
}

func requireError(t *testing.T, res *http.Response, body string, status int, code string) errorBody {
	t.Helper()
	require.Equal(t, status, res.StatusCode, body)
	var e errorBody
	helpers.DecodeJSON(t, body, &e)
	assert.Equal(t, code, e.Error.Code)
	return e
}

// registerWorker регистрирует анкету от имени пользователя-исполнителя
func registerWorker(t *testing.T, ts *helpers.TestServer, userID string, req dto.RegisterWorkerRequest) dto.WorkerResponse {
	t.Helper()
	token := ts.Token(t, userID, auth.UserTypeWorker)
	res, body := ts.SendRequest(t, http.MethodPost, apiPrefix+"/workers", token, req)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var w dto.WorkerResponse
	helpers.DecodeJSON(t, body, &w)
	return w
}

// postJob публикует работу от имени работодателя
func postJob(t *testing.T, ts *helpers.TestServer, employerToken string, req dto.CreateJobRequest) dto.JobResponse {
	t.Helper()
	res, body := ts.SendRequest(t, http.MethodPost, apiPrefix+"/jobs", employerToken, req)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var j dto.JobResponse
	helpers.DecodeJSON(t, body, &j)
	return j
}

func TestHealth(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, apiPrefix+"/health", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var h dto.HealthResponse
	helpers.DecodeJSON(t, body, &h)
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, "ok", h.Database)
	assert.NotEmpty(t, res.Header.Get("X-Request-ID"))
}

func TestSwaggerServed(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/swagger/doc.json", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "/ai-match")
}
