package services_test

import (
	"net/http"
	"testing"
	"time"

	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/internal/services"
	"jobmatch_backend/internal/services/dto"
	"jobmatch_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobService_CreateAndGet(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := services.NewJobService(repositories.NewJobRepository())

	created, err := svc.CreateJob(db, "emp-1", &dto.CreateJobRequest{
		Title:        "Landing page",
		Budget:       500,
		DeadlineDays: 7,
		Location:     "Remote",
		SkillsText:   "React, Tailwind ,",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, []string{"React", "Tailwind"}, created.SkillsRequired)
	assert.Equal(t, "emp-1", created.EmployerID)

	got, err := svc.GetJob(db, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetJob(db, "missing")
	requireAppError(t, err, http.StatusNotFound)

	list, err := svc.GetEmployerJobs(db, "emp-1", "")
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	list, err = svc.GetEmployerJobs(db, "emp-1", models.JobStatusClosed)
	require.NoError(t, err)
	assert.Zero(t, list.Total)

	list, err = svc.GetEmployerJobs(db, "emp-2", "")
	require.NoError(t, err)
	assert.Zero(t, list.Total)
	assert.NotNil(t, list.Jobs)
}

func TestJobService_CloseExpiredJobs(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := services.NewJobService(repositories.NewJobRepository())

	expired := helpers.CreateTestJob(t, db, "emp-1", "expired", nil, "")
	fresh := helpers.CreateTestJob(t, db, "emp-1", "fresh", nil, "")
	noDeadline := helpers.CreateTestJob(t, db, "emp-1", "no deadline", nil, "")

	require.NoError(t, db.Model(&models.Job{}).Where("id = ?", expired.ID).Update("deadline_days", 3).Error)
	require.NoError(t, db.Model(&models.Job{}).Where("id = ?", fresh.ID).Update("deadline_days", 30).Error)

	closed, err := svc.CloseExpiredJobs(db, time.Now().AddDate(0, 0, 5))
	require.NoError(t, err)
	assert.Equal(t, int64(1), closed)

	statuses := map[string]models.JobStatus{}
	for _, id := range []string{expired.ID, fresh.ID, noDeadline.ID} {
		var j models.Job
		require.NoError(t, db.First(&j, "id = ?", id).Error)
		statuses[id] = j.Status
	}
	assert.Equal(t, models.JobStatusClosed, statuses[expired.ID])
	assert.Equal(t, models.JobStatusPending, statuses[fresh.ID])
	assert.Equal(t, models.JobStatusPending, statuses[noDeadline.ID])
}
