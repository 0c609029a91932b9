package workers_test

import (
	"context"
	"testing"
	"time"

	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/internal/services"
	"jobmatch_backend/internal/workers"
	"jobmatch_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// backdate сдвигает created_at работы в прошлое и задает срок
func backdate(t *testing.T, db *gorm.DB, jobID string, age time.Duration, deadlineDays int) {
	t.Helper()
	require.NoError(t, db.Model(&models.Job{}).Where("id = ?", jobID).
		Updates(map[string]interface{}{
			"created_at":    time.Now().Add(-age),
			"deadline_days": deadlineDays,
		}).Error)
}

func TestJobExpiryWorker_RunOnce(t *testing.T) {
	db := helpers.NewTestDB(t)

	expired := helpers.CreateTestJob(t, db, "emp-1", "Old job", []string{"go"}, "Almaty")
	fresh := helpers.CreateTestJob(t, db, "emp-1", "Fresh job", []string{"go"}, "Almaty")
	noDeadline := helpers.CreateTestJob(t, db, "emp-1", "Open ended", []string{"go"}, "Almaty")
	accepted := helpers.CreateTestJob(t, db, "emp-1", "Taken", []string{"go"}, "Almaty")

	backdate(t, db, expired.ID, 48*time.Hour, 1)
	backdate(t, db, fresh.ID, 48*time.Hour, 30)
	backdate(t, db, noDeadline.ID, 48*time.Hour, 0)
	backdate(t, db, accepted.ID, 48*time.Hour, 1)
	require.NoError(t, db.Model(&models.Job{}).Where("id = ?", accepted.ID).
		Update("status", models.JobStatusAccepted).Error)

	w := workers.NewJobExpiryWorker(db, services.NewJobService(repositories.NewJobRepository()), time.Minute)

	closed, err := w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), closed)

	statuses := map[string]models.JobStatus{}
	var jobs []models.Job
	require.NoError(t, db.Find(&jobs).Error)
	for _, j := range jobs {
		statuses[j.ID] = j.Status
	}
	assert.Equal(t, models.JobStatusClosed, statuses[expired.ID])
	assert.Equal(t, models.JobStatusPending, statuses[fresh.ID])
	assert.Equal(t, models.JobStatusPending, statuses[noDeadline.ID])
	assert.Equal(t, models.JobStatusAccepted, statuses[accepted.ID])

	// повторный проход ничего не меняет
	closed, err = w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, closed)
}
