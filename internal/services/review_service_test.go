package services_test

import (
	"net/http"
	"testing"

	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/internal/services"
	"jobmatch_backend/internal/services/dto"
	"jobmatch_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewService() services.ReviewService {
	return services.NewReviewService(
		repositories.NewReviewRepository(),
		repositories.NewJobRepository(),
		repositories.NewWorkerRepository(),
		repositories.NewApplicationRepository(),
	)
}

func TestCreateReview(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newReviewService()

	job := helpers.CreateTestJob(t, db, "emp-1", "Paint", nil, "")
	offered := helpers.CreateTestWorker(t, db, helpers.WorkerFixture{UserID: "u1", FullName: "Ann"})
	stranger := helpers.CreateTestWorker(t, db, helpers.WorkerFixture{UserID: "u2", FullName: "Bob"})
	helpers.CreateTestApplication(t, db, job.ID, offered.ID, models.ApplicationStatusAccepted)

	req := &dto.CreateReviewRequest{WorkerID: offered.ID, JobID: job.ID, Rating: 5, Comment: "Great"}
	resp, err := svc.CreateReview(db, "emp-1", req)
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Rating)
	assert.Equal(t, "emp-1", resp.EmployerID)

	_, err = svc.CreateReview(db, "emp-1", req)
	requireAppError(t, err, http.StatusConflict)

	_, err = svc.CreateReview(db, "emp-2", req)
	requireAppError(t, err, http.StatusForbidden)

	_, err = svc.CreateReview(db, "emp-1", &dto.CreateReviewRequest{WorkerID: stranger.ID, JobID: job.ID, Rating: 4})
	requireAppError(t, err, http.StatusForbidden)

	_, err = svc.CreateReview(db, "emp-1", &dto.CreateReviewRequest{WorkerID: "missing", JobID: job.ID, Rating: 4})
	requireAppError(t, err, http.StatusNotFound)

	list, err := svc.GetWorkerReviews(db, offered.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	assert.InDelta(t, 5.0, list.AverageRating, 0.001)

	_, err = svc.GetWorkerReviews(db, "missing")
	requireAppError(t, err, http.StatusNotFound)
}
