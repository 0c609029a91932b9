package helpers

import (
	"testing"

	"jobmatch_backend/internal/config"
	"jobmatch_backend/internal/database"
	"jobmatch_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewTestDB открывает чистую in-memory sqlite БД со всеми таблицами
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Database.Driver = database.DriverSQLite
	cfg.Database.DSN = "file::memory:"

	db, err := database.Open(cfg)
	require.NoError(t, err, "Не удалось открыть тестовую БД")
	require.NoError(t, database.AutoMigrate(db), "Не удалось выполнить AutoMigrate")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// CreateTestProfile создает профиль пользователя
func CreateTestProfile(t *testing.T, db *gorm.DB, id, fullName string, userType models.UserType) models.Profile {
	t.Helper()
	profile := models.Profile{ID: id, FullName: fullName, UserType: userType}
	require.NoError(t, db.Create(&profile).Error, "Не удалось создать профиль")
	return profile
}

// WorkerFixture - поля анкеты исполнителя для тестов
type WorkerFixture struct {
	UserID     string
	FullName   string
	Skills     []string
	Location   string
	Experience int
	Contact    string
	Ratings    []int
}

// CreateTestWorker создает профиль, анкету и отзывы с заданными оценками
func CreateTestWorker(t *testing.T, db *gorm.DB, f WorkerFixture) models.Worker {
	t.Helper()
	CreateTestProfile(t, db, f.UserID, f.FullName, models.UserTypeWorker)

	worker := models.Worker{
		UserID:     f.UserID,
		Location:   f.Location,
		Experience: f.Experience,
		Contact:    f.Contact,
	}
	worker.SetSkills(f.Skills)
	require.NoError(t, db.Create(&worker).Error, "Не удалось создать исполнителя")

	for i, rating := range f.Ratings {
		CreateTestReview(t, db, "seed-employer", worker.ID, "seed-job-"+string(rune('a'+i)), rating)
	}
	return worker
}

// CreateTestJob создает работу в статусе pending
func CreateTestJob(t *testing.T, db *gorm.DB, employerID, title string, skills []string, location string) models.Job {
	t.Helper()
	job := models.Job{
		EmployerID: employerID,
		Title:      title,
		Location:   location,
		Status:     models.JobStatusPending,
	}
	job.SetSkills(skills)
	require.NoError(t, db.Create(&job).Error, "Не удалось создать работу")
	return job
}

// CreateTestReview создает отзыв
func CreateTestReview(t *testing.T, db *gorm.DB, employerID, workerID, jobID string, rating int) models.Review {
	t.Helper()
	review := models.Review{
		EmployerID: employerID,
		WorkerID:   workerID,
		JobID:      jobID,
		Rating:     rating,
	}
	require.NoError(t, db.Create(&review).Error, "Не удалось создать отзыв")
	return review
}

// CreateTestApplication создает заявку
func CreateTestApplication(t *testing.T, db *gorm.DB, jobID, workerID string, status models.ApplicationStatus) models.Application {
	t.Helper()
	app := models.Application{JobID: jobID, WorkerID: workerID, Status: status}
	require.NoError(t, db.Create(&app).Error, "Не удалось создать заявку")
	return app
}
