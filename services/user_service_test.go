package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carloangkisann/pantausikecil-sub000/utils"
)

func newUserService(t *testing.T) (*UserService, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewUserService(db, nil), mock
}

func TestGetUserProfile_NotFound(t *testing.T) {
	svc, mock := newUserService(t)

	mock.ExpectQuery(selectFrom("users")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.GetUserProfile(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreatePregnancy(t *testing.T) {
	svc, mock := newUserService(t)

	expectUserLookup(mock, 1)
	// number uniqueness check, then active pregnancy check
	mock.ExpectQuery(selectFrom("pregnancies")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(selectFrom("pregnancies")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "pregnancies"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	pregnancy, err := svc.CreatePregnancy(1, CreatePregnancyInput{
		PregnancyNumber: 1,
		StartDate:       "2024-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, pregnancy.PregnancyNumber)
	assert.Equal(t, "Tidak Diketahui", pregnancy.BabyGender)
	assert.Nil(t, pregnancy.EndDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePregnancy_DuplicateNumber(t *testing.T) {
	svc, mock := newUserService(t)

	expectUserLookup(mock, 1)
	mock.ExpectQuery(selectFrom("pregnancies")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "pregnancy_number"}).AddRow(1, 1))

	_, err := svc.CreatePregnancy(1, CreatePregnancyInput{PregnancyNumber: 1, StartDate: "2024-01-01"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreatePregnancy_SecondActiveRejected(t *testing.T) {
	svc, mock := newUserService(t)

	expectUserLookup(mock, 1)
	mock.ExpectQuery(selectFrom("pregnancies")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(selectFrom("pregnancies")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "pregnancy_number"}).AddRow(1, 1))

	_, err := svc.CreatePregnancy(1, CreatePregnancyInput{PregnancyNumber: 2, StartDate: "2024-06-01"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreatePregnancy_InvalidInput(t *testing.T) {
	svc, mock := newUserService(t)

	expectUserLookup(mock, 1)
	_, err := svc.CreatePregnancy(1, CreatePregnancyInput{PregnancyNumber: 0, StartDate: "2024-01-01"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	expectUserLookup(mock, 1)
	_, err = svc.CreatePregnancy(1, CreatePregnancyInput{PregnancyNumber: 1, StartDate: "01/01/2024"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdatePregnancy_EndBeforeStart(t *testing.T) {
	svc, mock := newUserService(t)
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)

	expectUserLookup(mock, 1)
	mock.ExpectQuery(selectFrom("pregnancies")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "pregnancy_number", "start_date"}).
			AddRow(1, 1, 1, start))

	end := "2024-05-01"
	_, err := svc.UpdatePregnancy(1, 1, UpdatePregnancyInput{EndDate: &end})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserPregnancies_MarksActiveOne(t *testing.T) {
	svc, mock := newUserService(t)
	firstStart := time.Date(2022, 1, 1, 0, 0, 0, 0, time.Local)
	firstEnd := time.Date(2022, 10, 1, 0, 0, 0, 0, time.Local)
	secondStart := utils.DaysFromToday(-50)

	expectUserLookup(mock, 1)
	mock.ExpectQuery(selectFrom("pregnancies")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "pregnancy_number", "start_date", "end_date"}).
			AddRow(1, 1, 1, firstStart, firstEnd).
			AddRow(2, 1, 2, secondStart, nil))

	pregnancies, err := svc.GetUserPregnancies(1)
	require.NoError(t, err)
	require.Len(t, pregnancies, 2)
	assert.False(t, pregnancies[0].IsActive)
	assert.True(t, pregnancies[1].IsActive)
}

func TestGetActivePregnancy_NoneIsNotAnError(t *testing.T) {
	svc, mock := newUserService(t)

	mock.ExpectQuery(selectFrom("pregnancies")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	pregnancy, err := svc.GetActivePregnancy(1)
	require.NoError(t, err)
	assert.Nil(t, pregnancy)
}

func TestAddConnection_RequiresEmailAndName(t *testing.T) {
	svc, mock := newUserService(t)

	expectUserLookup(mock, 1)
	_, err := svc.AddConnection(1, CreateConnectionInput{ConnectionName: "Budi"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	expectUserLookup(mock, 1)
	_, err = svc.AddConnection(1, CreateConnectionInput{ConnectionEmail: "suami@example.com"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateReminder_ValidatesTimes(t *testing.T) {
	svc, mock := newUserService(t)

	expectUserLookup(mock, 1)
	_, err := svc.CreateReminder(1, CreateReminderInput{
		Title:        "Kontrol kandungan",
		ReminderDate: "2024-03-25",
		StartTime:    "9am",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	expectUserLookup(mock, 1)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "reminders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	reminder, err := svc.CreateReminder(1, CreateReminderInput{
		Title:        "Kontrol kandungan",
		ReminderDate: "2024-03-25",
		StartTime:    "09:00:00",
		EndTime:      "10:30:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "09:00:00", reminder.StartTime)
}

func TestCreateReminder_RequiresTitle(t *testing.T) {
	svc, mock := newUserService(t)

	expectUserLookup(mock, 1)
	_, err := svc.CreateReminder(1, CreateReminderInput{ReminderDate: "2024-03-25"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
