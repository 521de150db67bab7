package services

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func selectFrom(table string) string {
	return regexp.QuoteMeta(`SELECT * FROM "` + table + `"`)
}

// expectUserLookup satisfies the profile check that guards most service
// operations.
func expectUserLookup(mock sqlmock.Sqlmock, userID uint) {
	mock.ExpectQuery(selectFrom("users")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "full_name"}).
			AddRow(userID, "ibu@example.com", "Ibu Sari"))
}
