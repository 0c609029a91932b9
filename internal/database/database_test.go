package database

import (
	"errors"
	"fmt"
	"testing"

	"jobmatch_backend/internal/config"
	"jobmatch_backend/internal/models"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Database.Driver = DriverSQLite
	cfg.Database.DSN = "file::memory:"

	db, err := Open(cfg)
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestDialector(t *testing.T) {
	for _, driver := range []string{DriverPostgres, DriverMySQL, DriverSQLite} {
		d, err := Dialector(driver, "dsn")
		require.NoError(t, err, driver)
		assert.NotNil(t, d)
	}

	_, err := Dialector("oracle", "dsn")
	assert.Error(t, err)
}

func TestAutoMigrate_CreatesTables(t *testing.T) {
	db := openTestDB(t)

	for _, m := range Models() {
		assert.True(t, db.Migrator().HasTable(m), fmt.Sprintf("%T", m))
	}
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, true},
		{"wrapped gorm duplicated key", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{"postgres 23505", &pgconn.PgError{Code: "23505"}, true},
		{"postgres other", &pgconn.PgError{Code: "23503"}, false},
		{"mysql 1062", &mysqldriver.MySQLError{Number: 1062}, true},
		{"mysql other", &mysqldriver.MySQLError{Number: 1045}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err))
		})
	}
}

func TestIsUniqueViolation_SQLite(t *testing.T) {
	db := openTestDB(t)

	profile := models.Profile{ID: "user-1", FullName: "Jane", UserType: models.UserTypeWorker}
	require.NoError(t, db.Create(&profile).Error)

	w1 := models.Worker{UserID: "user-1"}
	require.NoError(t, db.Create(&w1).Error)

	w2 := models.Worker{UserID: "user-1"}
	err := db.Create(&w2).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}
