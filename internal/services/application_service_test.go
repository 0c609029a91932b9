package services_test

import (
	"net/http"
	"testing"
	"time"

	"jobmatch_backend/internal/email"
	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/internal/services"
	"jobmatch_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApplicationService(mailer email.Provider) services.ApplicationService {
	return services.NewApplicationService(
		repositories.NewApplicationRepository(),
		repositories.NewJobRepository(),
		repositories.NewWorkerRepository(),
		services.NewNotificationService(mailer),
	)
}

func TestAssignWorker(t *testing.T) {
	db := helpers.NewTestDB(t)
	mailer := email.NewMockProvider(email.NewTemplateManager())
	svc := newApplicationService(mailer)

	job := helpers.CreateTestJob(t, db, "emp-1", "Fix sink", []string{"plumbing"}, "Boston")
	worker := helpers.CreateTestWorker(t, db, helpers.WorkerFixture{
		UserID: "u1", FullName: "Ann", Contact: "ann@example.com",
	})

	app, err := svc.AssignWorker(db, "emp-1", job.ID, worker.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.ApplicationStatusPending), app.Status)

	var stored models.Job
	require.NoError(t, db.First(&stored, "id = ?", job.ID).Error)
	assert.Equal(t, models.JobStatusAssigned, stored.Status)

	assert.Eventually(t, func() bool { return len(mailer.Sent()) == 1 }, time.Second, 10*time.Millisecond)
	sent := mailer.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"ann@example.com"}, sent[0].To)
	assert.Contains(t, sent[0].HTMLBody, "Fix sink")

	t.Run("same worker twice", func(t *testing.T) {
		_, err := svc.AssignWorker(db, "emp-1", job.ID, worker.ID)
		appErr := requireAppError(t, err, http.StatusConflict)
		assert.Equal(t, "This worker has already been offered this job", appErr.Message)
	})

	t.Run("not the owner", func(t *testing.T) {
		_, err := svc.AssignWorker(db, "emp-2", job.ID, worker.ID)
		requireAppError(t, err, http.StatusForbidden)
	})

	t.Run("unknown job", func(t *testing.T) {
		_, err := svc.AssignWorker(db, "emp-1", "missing", worker.ID)
		requireAppError(t, err, http.StatusNotFound)
	})

	t.Run("unknown worker", func(t *testing.T) {
		_, err := svc.AssignWorker(db, "emp-1", job.ID, "missing")
		requireAppError(t, err, http.StatusNotFound)
	})
}

func TestAssignWorker_ContactWithoutEmail(t *testing.T) {
	db := helpers.NewTestDB(t)
	mailer := email.NewMockProvider(email.NewTemplateManager())
	svc := newApplicationService(mailer)

	job := helpers.CreateTestJob(t, db, "emp-1", "Fix sink", nil, "")
	worker := helpers.CreateTestWorker(t, db, helpers.WorkerFixture{UserID: "u1", FullName: "Ann", Contact: "+1 555 0100"})

	_, err := svc.AssignWorker(db, "emp-1", job.ID, worker.ID)
	require.NoError(t, err)

	assert.Never(t, func() bool { return len(mailer.Sent()) > 0 }, 100*time.Millisecond, 10*time.Millisecond)
}

func TestAssignWorker_ClosedJob(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newApplicationService(email.NewMockProvider(nil))

	job := helpers.CreateTestJob(t, db, "emp-1", "Old", nil, "")
	require.NoError(t, repositories.NewJobRepository().UpdateJobStatus(db, job.ID, models.JobStatusClosed))
	worker := helpers.CreateTestWorker(t, db, helpers.WorkerFixture{UserID: "u1", FullName: "Ann"})

	_, err := svc.AssignWorker(db, "emp-1", job.ID, worker.ID)
	requireAppError(t, err, http.StatusConflict)
}

func TestRespondToApplication(t *testing.T) {
	tests := []struct {
		decision  string
		jobStatus models.JobStatus
	}{
		{"accepted", models.JobStatusAccepted},
		{"declined", models.JobStatusDeclined},
	}

	for _, tt := range tests {
		t.Run(tt.decision, func(t *testing.T) {
			db := helpers.NewTestDB(t)
			svc := newApplicationService(email.NewMockProvider(nil))

			job := helpers.CreateTestJob(t, db, "emp-1", "Paint", nil, "")
			worker := helpers.CreateTestWorker(t, db, helpers.WorkerFixture{UserID: "u1", FullName: "Ann"})
			app := helpers.CreateTestApplication(t, db, job.ID, worker.ID, models.ApplicationStatusPending)

			resp, err := svc.RespondToApplication(db, "u1", app.ID, tt.decision)
			require.NoError(t, err)
			assert.Equal(t, tt.decision, resp.Status)

			var stored models.Job
			require.NoError(t, db.First(&stored, "id = ?", job.ID).Error)
			assert.Equal(t, tt.jobStatus, stored.Status)
			if tt.jobStatus == models.JobStatusAccepted {
				require.NotNil(t, stored.AcceptedWorkerID)
				assert.Equal(t, worker.ID, *stored.AcceptedWorkerID)
			} else {
				assert.Nil(t, stored.AcceptedWorkerID)
			}

			// повторный ответ запрещен
			_, err = svc.RespondToApplication(db, "u1", app.ID, tt.decision)
			requireAppError(t, err, http.StatusConflict)
		})
	}
}

func TestRespondToApplication_Errors(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newApplicationService(email.NewMockProvider(nil))

	job := helpers.CreateTestJob(t, db, "emp-1", "Paint", nil, "")
	owner := helpers.CreateTestWorker(t, db, helpers.WorkerFixture{UserID: "u1", FullName: "Ann"})
	helpers.CreateTestWorker(t, db, helpers.WorkerFixture{UserID: "u2", FullName: "Bob"})
	app := helpers.CreateTestApplication(t, db, job.ID, owner.ID, models.ApplicationStatusPending)

	_, err := svc.RespondToApplication(db, "u1", app.ID, "maybe")
	requireAppError(t, err, http.StatusBadRequest)

	_, err = svc.RespondToApplication(db, "u2", app.ID, "accepted")
	requireAppError(t, err, http.StatusForbidden)

	_, err = svc.RespondToApplication(db, "no-worker", app.ID, "accepted")
	requireAppError(t, err, http.StatusNotFound)

	_, err = svc.RespondToApplication(db, "u1", "missing", "accepted")
	requireAppError(t, err, http.StatusNotFound)
}

func TestApplicationLists(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newApplicationService(email.NewMockProvider(nil))

	job := helpers.CreateTestJob(t, db, "emp-1", "Paint", nil, "")
	worker := helpers.CreateTestWorker(t, db, helpers.WorkerFixture{UserID: "u1", FullName: "Ann"})
	helpers.CreateTestApplication(t, db, job.ID, worker.ID, models.ApplicationStatusPending)

	mine, err := svc.GetWorkerApplications(db, "u1")
	require.NoError(t, err)
	require.Equal(t, 1, mine.Total)
	require.NotNil(t, mine.Applications[0].Job)
	assert.Equal(t, "Paint", mine.Applications[0].Job.Title)

	forJob, err := svc.GetJobApplications(db, "emp-1", job.ID)
	require.NoError(t, err)
	require.Equal(t, 1, forJob.Total)
	assert.Equal(t, "Ann", forJob.Applications[0].WorkerName)

	_, err = svc.GetJobApplications(db, "emp-2", job.ID)
	requireAppError(t, err, http.StatusForbidden)
}
