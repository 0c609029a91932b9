package repositories

import (
	"errors"

	"jobmatch_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
)

type ProfileRepository interface {
	UpsertProfile(db *gorm.DB, profile *models.Profile) error
	FindProfileByID(db *gorm.DB, id string) (*models.Profile, error)
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

// UpsertProfile создает профиль или обновляет имя, если он уже есть
func (r *ProfileRepositoryImpl) UpsertProfile(db *gorm.DB, profile *models.Profile) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"full_name"}),
	}).Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindProfileByID(db *gorm.DB, id string) (*models.Profile, error) {
	var profile models.Profile
	err := db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}
