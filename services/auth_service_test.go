package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carloangkisann/pantausikecil-sub000/utils"
)

func TestRegister(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery(selectFrom("users")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	user, err := svc.Register("ibu@example.com", "rahasia-kuat")
	require.NoError(t, err)
	assert.Equal(t, "ibu@example.com", user.Email)
	assert.NotEqual(t, "rahasia-kuat", user.Password, "password must be stored hashed")
	assert.True(t, utils.CheckPasswordHash("rahasia-kuat", user.Password))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery(selectFrom("users")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(1, "ibu@example.com"))

	_, err := svc.Register("ibu@example.com", "rahasia-kuat")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAuthenticate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	hashed, err := utils.HashPassword("rahasia-kuat")
	require.NoError(t, err)

	mock.ExpectQuery(selectFrom("users")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password"}).
			AddRow(1, "ibu@example.com", hashed))

	token, user, err := svc.Authenticate("ibu@example.com", "rahasia-kuat")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, uint(1), user.ID)
}

// Unknown email and wrong password must be indistinguishable.
func TestAuthenticate_InvalidCredentials(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery(selectFrom("users")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, _, unknownEmailErr := svc.Authenticate("tidakada@example.com", "rahasia-kuat")
	require.Error(t, unknownEmailErr)

	hashed, err := utils.HashPassword("rahasia-kuat")
	require.NoError(t, err)
	mock.ExpectQuery(selectFrom("users")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password"}).
			AddRow(1, "ibu@example.com", hashed))

	_, _, wrongPasswordErr := svc.Authenticate("ibu@example.com", "salah")
	require.Error(t, wrongPasswordErr)

	assert.Equal(t, unknownEmailErr.Error(), wrongPasswordErr.Error())
}
