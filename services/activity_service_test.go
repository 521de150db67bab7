package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActivityService(t *testing.T) (*ActivityService, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	users := NewUserService(db, nil)
	return NewActivityService(db, users), mock
}

func TestCalculateCalories(t *testing.T) {
	tests := []struct {
		name            string
		caloriesPerHour int
		durationMinutes int
		expected        int
	}{
		{"full hour", 300, 60, 300},
		{"half hour", 300, 30, 150},
		{"rounds up", 100, 31, 52},   // 51.67
		{"rounds down", 100, 32, 53}, // 53.33
		{"half rounds away from zero", 10, 33, 6}, // 5.5
		{"zero duration", 300, 0, 0},
		{"zero rate", 0, 45, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateCalories(tt.caloriesPerHour, tt.durationMinutes))
		})
	}
}

func TestGetUserActivitySummary(t *testing.T) {
	svc, mock := newActivityService(t)
	day := time.Date(2024, 3, 25, 0, 0, 0, 0, time.Local)

	expectUserLookup(mock, 1)
	mock.ExpectQuery(selectFrom("user_activities")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "activity_id", "activity_date", "duration_minutes", "total_calories"}).
			AddRow(1, 1, 10, day, 30, 150).
			AddRow(2, 1, 20, day, 45, 90))
	mock.ExpectQuery(selectFrom("activities")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "activity_name"}).
			AddRow(10, "Jalan Santai").
			AddRow(20, "Yoga Hamil"))

	summary, err := svc.GetUserActivitySummary(1, "2024-03-25")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-25", summary.Date)
	assert.Equal(t, 75, summary.TotalDurationMinutes)
	assert.Equal(t, 240, summary.TotalCalories)
	require.Len(t, summary.Activities, 2)
	assert.Equal(t, "Jalan Santai", summary.Activities[0].ActivityName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserActivitySummary_EmptyDay(t *testing.T) {
	svc, mock := newActivityService(t)

	expectUserLookup(mock, 1)
	mock.ExpectQuery(selectFrom("user_activities")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	summary, err := svc.GetUserActivitySummary(1, "2024-03-25")
	require.NoError(t, err)
	assert.Zero(t, summary.TotalDurationMinutes)
	assert.Zero(t, summary.TotalCalories)
	require.NotNil(t, summary.Activities)
	assert.Empty(t, summary.Activities)
}

// Dates without entries must be absent from the history, not zero-filled.
func TestGetUserActivityHistory_GroupsByDate(t *testing.T) {
	svc, mock := newActivityService(t)
	mar25 := time.Date(2024, 3, 25, 0, 0, 0, 0, time.Local)
	mar27 := time.Date(2024, 3, 27, 0, 0, 0, 0, time.Local)

	expectUserLookup(mock, 1)
	mock.ExpectQuery(selectFrom("user_activities")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "activity_id", "activity_date", "duration_minutes", "total_calories"}).
			AddRow(3, 1, 10, mar27, 20, 100).
			AddRow(1, 1, 10, mar25, 30, 150).
			AddRow(2, 1, 10, mar25, 15, 75))
	mock.ExpectQuery(selectFrom("activities")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "activity_name"}).
			AddRow(10, "Jalan Santai"))

	history, err := svc.GetUserActivityHistory(1, "2024-03-22", "2024-03-28")
	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.Equal(t, "2024-03-25", history[0].Date)
	assert.Equal(t, 45, history[0].TotalDurationMinutes)
	assert.Equal(t, 225, history[0].TotalCalories)
	assert.Len(t, history[0].Activities, 2)

	assert.Equal(t, "2024-03-27", history[1].Date)
	assert.Equal(t, 20, history[1].TotalDurationMinutes)
	assert.Equal(t, 100, history[1].TotalCalories)
}

func TestGetUserActivityHistory_EndBeforeStart(t *testing.T) {
	svc, mock := newActivityService(t)

	expectUserLookup(mock, 1)

	_, err := svc.GetUserActivityHistory(1, "2024-03-28", "2024-03-22")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddUserActivity_ComputesCaloriesWhenOmitted(t *testing.T) {
	svc, mock := newActivityService(t)

	expectUserLookup(mock, 1)
	mock.ExpectQuery(selectFrom("activities")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "activity_name", "calories_per_hour"}).
			AddRow(10, "Jalan Santai", 240))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "user_activities"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()
	mock.ExpectQuery(selectFrom("user_activities")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "activity_id", "duration_minutes", "total_calories"}).
			AddRow(7, 1, 10, 30, 120))
	mock.ExpectQuery(selectFrom("activities")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "activity_name", "calories_per_hour"}).
			AddRow(10, "Jalan Santai", 240))

	entry, err := svc.AddUserActivity(1, AddUserActivityInput{
		ActivityID:      10,
		ActivityDate:    "2024-03-25",
		DurationMinutes: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, 120, entry.TotalCalories) // 240 cal/h for 30 min
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddUserActivity_RejectsNonPositiveDuration(t *testing.T) {
	svc, mock := newActivityService(t)

	expectUserLookup(mock, 1)
	mock.ExpectQuery(selectFrom("activities")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "activity_name"}).AddRow(10, "Jalan Santai"))

	_, err := svc.AddUserActivity(1, AddUserActivityInput{
		ActivityID:      10,
		ActivityDate:    "2024-03-25",
		DurationMinutes: 0,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddUserActivity_RejectsNegativeCalories(t *testing.T) {
	svc, mock := newActivityService(t)

	expectUserLookup(mock, 1)
	mock.ExpectQuery(selectFrom("activities")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "activity_name", "calories_per_hour"}).
			AddRow(10, "Jalan Santai", 240))

	_, err := svc.AddUserActivity(1, AddUserActivityInput{
		ActivityID:      10,
		ActivityDate:    "2024-03-25",
		DurationMinutes: 30,
		TotalCalories:   -50,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRemoveUserActivity_NotFound(t *testing.T) {
	svc, mock := newActivityService(t)

	expectUserLookup(mock, 1)
	mock.ExpectQuery(selectFrom("user_activities")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	assert.ErrorIs(t, svc.RemoveUserActivity(1, 42), ErrNotFound)
}
