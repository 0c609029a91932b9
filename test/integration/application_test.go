package integration_test

import (
	"net/http"
	"testing"
	"time"

	"jobmatch_backend/internal/auth"
	"jobmatch_backend/internal/services/dto"
	"jobmatch_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignAcceptReviewFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)
	employer := ts.Token(t, "emp-1", auth.UserTypeEmployer)
	workerToken := ts.Token(t, "user-aida", auth.UserTypeWorker)

	worker := registerWorker(t, ts, "user-aida", dto.RegisterWorkerRequest{
		FullName: "Aida", Skills: []string{"go"}, Experience: 2, Location: "Almaty", Contact: "aida@example.com",
	})
	job := postJob(t, ts, employer, dto.CreateJobRequest{Title: "Backend", Skills: []string{"go"}, Location: "Almaty"})

	// --- предложение работы ---
	res, body := ts.SendRequest(t, http.MethodPost, apiPrefix+"/jobs/"+job.ID+"/assign", employer,
		dto.AssignWorkerRequest{WorkerID: worker.ID})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var offer dto.ApplicationResponse
	helpers.DecodeJSON(t, body, &offer)
	assert.Equal(t, "pending", offer.Status)

	assert.Eventually(t, func() bool { return len(ts.Mailer.Sent()) == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"aida@example.com"}, ts.Mailer.Sent()[0].To)

	res, body = ts.SendRequest(t, http.MethodPost, apiPrefix+"/jobs/"+job.ID+"/assign", employer,
		dto.AssignWorkerRequest{WorkerID: worker.ID})
	e := requireError(t, res, body, http.StatusConflict, "ALREADY_EXISTS")
	assert.Equal(t, "This worker has already been offered this job", e.Error.Message)

	res, body = ts.SendRequest(t, http.MethodGet, apiPrefix+"/jobs/"+job.ID, employer, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var assigned dto.JobResponse
	helpers.DecodeJSON(t, body, &assigned)
	assert.Equal(t, "assigned", assigned.Status)

	res, body = ts.SendRequest(t, http.MethodGet, apiPrefix+"/jobs/"+job.ID+"/applications", employer, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var jobApps dto.ApplicationListResponse
	helpers.DecodeJSON(t, body, &jobApps)
	require.Equal(t, 1, jobApps.Total)
	assert.Equal(t, "Aida", jobApps.Applications[0].WorkerName)

	// --- ответ исполнителя ---
	res, body = ts.SendRequest(t, http.MethodGet, apiPrefix+"/applications/my", workerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var mine dto.ApplicationListResponse
	helpers.DecodeJSON(t, body, &mine)
	require.Equal(t, 1, mine.Total)
	assert.Equal(t, offer.ID, mine.Applications[0].ID)

	res, body = ts.SendRequest(t, http.MethodPut, apiPrefix+"/applications/"+offer.ID+"/status", workerToken,
		dto.UpdateApplicationStatusRequest{Status: "pending"})
	requireError(t, res, body, http.StatusBadRequest, "VALIDATION_FAILED")

	res, body = ts.SendRequest(t, http.MethodPut, apiPrefix+"/applications/"+offer.ID+"/status", workerToken,
		dto.UpdateApplicationStatusRequest{Status: "accepted"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPut, apiPrefix+"/applications/"+offer.ID+"/status", workerToken,
		dto.UpdateApplicationStatusRequest{Status: "declined"})
	requireError(t, res, body, http.StatusConflict, "INVALID_STATUS")

	res, body = ts.SendRequest(t, http.MethodGet, apiPrefix+"/jobs/my?status=accepted", employer, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var accepted dto.JobListResponse
	helpers.DecodeJSON(t, body, &accepted)
	require.Equal(t, 1, accepted.Total)
	require.NotNil(t, accepted.Jobs[0].AcceptedWorkerID)
	assert.Equal(t, worker.ID, *accepted.Jobs[0].AcceptedWorkerID)

	res, body = ts.SendRequest(t, http.MethodGet, apiPrefix+"/jobs/my?status=archived", employer, nil)
	requireError(t, res, body, http.StatusBadRequest, "VALIDATION_FAILED")

	// --- отзыв ---
	res, body = ts.SendRequest(t, http.MethodPost, apiPrefix+"/reviews", employer, dto.CreateReviewRequest{
		WorkerID: worker.ID, JobID: job.ID, Rating: 5, Comment: "great",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	other := ts.Token(t, "emp-2", auth.UserTypeEmployer)
	res, body = ts.SendRequest(t, http.MethodPost, apiPrefix+"/reviews", other, dto.CreateReviewRequest{
		WorkerID: worker.ID, JobID: job.ID, Rating: 1,
	})
	requireError(t, res, body, http.StatusForbidden, "FORBIDDEN")

	res, body = ts.SendRequest(t, http.MethodGet, apiPrefix+"/workers/"+worker.ID+"/reviews", workerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var reviews dto.ReviewListResponse
	helpers.DecodeJSON(t, body, &reviews)
	assert.Equal(t, 1, reviews.Total)
	assert.Equal(t, 5.0, reviews.AverageRating)

	res, body = ts.SendRequest(t, http.MethodGet, apiPrefix+"/workers/"+worker.ID, employer, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var detail dto.WorkerResponse
	helpers.DecodeJSON(t, body, &detail)
	assert.Equal(t, "Aida", detail.Profiles.FullName)
	assert.Equal(t, []dto.ReviewRating{{Rating: 5}}, detail.Reviews)
}

func TestWorkerRegistration(t *testing.T) {
	ts := helpers.NewTestServer(t)

	registerWorker(t, ts, "user-1", dto.RegisterWorkerRequest{FullName: "Ann", Skills: []string{" go ", ""}})

	token := ts.Token(t, "user-1", auth.UserTypeWorker)
	res, body := ts.SendRequest(t, http.MethodPost, apiPrefix+"/workers", token, dto.RegisterWorkerRequest{FullName: "Ann"})
	requireError(t, res, body, http.StatusConflict, "ALREADY_EXISTS")

	res, body = ts.SendRequest(t, http.MethodPost, apiPrefix+"/workers", token, dto.RegisterWorkerRequest{})
	requireError(t, res, body, http.StatusBadRequest, "VALIDATION_FAILED")

	employer := ts.Token(t, "emp-1", auth.UserTypeEmployer)
	res, body = ts.SendRequest(t, http.MethodPost, apiPrefix+"/workers", employer, dto.RegisterWorkerRequest{FullName: "Boss"})
	requireError(t, res, body, http.StatusForbidden, "FORBIDDEN")

	res, body = ts.SendRequest(t, http.MethodGet, apiPrefix+"/workers", employer, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var list dto.WorkerListResponse
	helpers.DecodeJSON(t, body, &list)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, []string{"go"}, list.Workers[0].Skills)

	res, body = ts.SendRequest(t, http.MethodGet, apiPrefix+"/workers/missing", employer, nil)
	requireError(t, res, body, http.StatusNotFound, "NOT_FOUND")
}
