package workers

import (
	"context"
	"time"

	"jobmatch_backend/internal/logger"
	"jobmatch_backend/internal/services"

	"gorm.io/gorm"
)

const jobExpiryWorkerName = "job_expiry"

// JobExpiryWorker периодически закрывает работы с истекшим сроком
type JobExpiryWorker struct {
	db         *gorm.DB
	jobService services.JobService
	interval   time.Duration
}

func NewJobExpiryWorker(db *gorm.DB, jobService services.JobService, interval time.Duration) *JobExpiryWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &JobExpiryWorker{
		db:         db,
		jobService: jobService,
		interval:   interval,
	}
}

// Start запускает цикл в отдельной горутине, остановка через ctx
func (w *JobExpiryWorker) Start(ctx context.Context) {
	go w.loop(ctx)
}

func (w *JobExpiryWorker) loop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger.Info("Job expiry worker started", "interval", w.interval.String())
	for {
		select {
		case <-ctx.Done():
			logger.Info("Job expiry worker stopped")
			return
		case <-ticker.C:
			_, _ = w.RunOnce(ctx)
		}
	}
}

// RunOnce - один проход: закрывает просроченные pending/assigned работы
func (w *JobExpiryWorker) RunOnce(ctx context.Context) (int64, error) {
	closed, err := w.jobService.CloseExpiredJobs(w.db.WithContext(ctx), time.Now())
	logger.WorkerLog(jobExpiryWorkerName, "close_expired", err, "closed", closed)
	return closed, err
}
