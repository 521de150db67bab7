package services

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/carloangkisann/pantausikecil-sub000/models"
	"github.com/carloangkisann/pantausikecil-sub000/utils"

	"gorm.io/gorm"
)

type ActivityService struct {
	db    *gorm.DB
	users *UserService
}

func NewActivityService(db *gorm.DB, users *UserService) *ActivityService {
	return &ActivityService{db: db, users: users}
}

// CalculateCalories burned for a duration at an hourly rate, rounded half
// away from zero. The result is persisted verbatim when an activity is
// logged and never recomputed afterwards.
func CalculateCalories(caloriesPerHour, durationMinutes int) int {
	return int(math.Round(float64(caloriesPerHour) * float64(durationMinutes) / 60))
}

func (s *ActivityService) GetActivityDetails(activityID uint) (*models.Activity, error) {
	var activity models.Activity
	if err := s.db.First(&activity, activityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: activity %d", ErrNotFound, activityID)
		}
		return nil, err
	}
	return &activity, nil
}

func (s *ActivityService) GetAllActivities() ([]models.Activity, error) {
	var activities []models.Activity
	err := s.db.Find(&activities).Error
	return activities, err
}

// GetRecommendedActivities keeps to light exercise for pregnant users.
func (s *ActivityService) GetRecommendedActivities(userID uint) ([]models.Activity, error) {
	if _, err := s.users.GetUserProfile(userID); err != nil {
		return nil, err
	}
	var activities []models.Activity
	err := s.db.Where("level = ?", "Ringan").Find(&activities).Error
	return activities, err
}

type AddUserActivityInput struct {
	ActivityID      uint   `json:"activityId"`
	ActivityDate    string `json:"activityDate"` // YYYY-MM-DD
	DurationMinutes int    `json:"durationMinutes"`
	TotalCalories   int    `json:"totalCalories"`
}

func (s *ActivityService) AddUserActivity(userID uint, input AddUserActivityInput) (*models.UserActivity, error) {
	if _, err := s.users.GetUserProfile(userID); err != nil {
		return nil, err
	}
	activity, err := s.GetActivityDetails(input.ActivityID)
	if err != nil {
		return nil, err
	}
	day, err := utils.ParseDate(input.ActivityDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid activity date %q", ErrInvalidInput, input.ActivityDate)
	}
	if input.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	if input.TotalCalories < 0 {
		return nil, fmt.Errorf("%w: total calories cannot be negative", ErrInvalidInput)
	}

	totalCalories := input.TotalCalories
	if totalCalories == 0 {
		totalCalories = CalculateCalories(activity.CaloriesPerHour, input.DurationMinutes)
	}

	entry := &models.UserActivity{
		UserID:          userID,
		ActivityID:      input.ActivityID,
		ActivityDate:    day,
		DurationMinutes: input.DurationMinutes,
		TotalCalories:   totalCalories,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}

	var populated models.UserActivity
	if err := s.db.Preload("Activity").First(&populated, entry.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

func (s *ActivityService) RemoveUserActivity(userID, entryID uint) error {
	if _, err := s.users.GetUserProfile(userID); err != nil {
		return err
	}

	var entry models.UserActivity
	err := s.db.
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: activity entry %d", ErrNotFound, entryID)
		}
		return err
	}
	return s.db.Delete(&entry).Error
}

func (s *ActivityService) GetUserActivitySummary(userID uint, date string) (UserActivitySummary, error) {
	if _, err := s.users.GetUserProfile(userID); err != nil {
		return UserActivitySummary{}, err
	}
	day, err := utils.ParseDate(date)
	if err != nil {
		return UserActivitySummary{}, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, date)
	}

	var entries []models.UserActivity
	err = s.db.
		Preload("Activity").
		Where("user_id = ? AND activity_date = ?", userID, day).
		Find(&entries).Error
	if err != nil {
		return UserActivitySummary{}, err
	}

	return buildActivitySummary(date, entries), nil
}

func (s *ActivityService) GetTodayActivitySummary(userID uint) (UserActivitySummary, error) {
	return s.GetUserActivitySummary(userID, utils.FormatDate(utils.Today()))
}

// GetUserActivityHistory groups logged entries by date; dates with no
// entries are absent from the result rather than zero-filled.
func (s *ActivityService) GetUserActivityHistory(userID uint, startDate, endDate string) ([]UserActivitySummary, error) {
	if _, err := s.users.GetUserProfile(userID); err != nil {
		return nil, err
	}
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date %q", ErrInvalidInput, startDate)
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date %q", ErrInvalidInput, endDate)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date precedes start date", ErrInvalidInput)
	}

	var entries []models.UserActivity
	err = s.db.
		Preload("Activity").
		Where("user_id = ? AND activity_date BETWEEN ? AND ?", userID, start, end).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]models.UserActivity)
	for _, e := range entries {
		key := utils.FormatDate(e.ActivityDate)
		grouped[key] = append(grouped[key], e)
	}

	dates := make([]string, 0, len(grouped))
	for d := range grouped {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	summaries := make([]UserActivitySummary, 0, len(dates))
	for _, d := range dates {
		summaries = append(summaries, buildActivitySummary(d, grouped[d]))
	}
	return summaries, nil
}

func buildActivitySummary(date string, entries []models.UserActivity) UserActivitySummary {
	summary := UserActivitySummary{
		Date:       date,
		Activities: make([]ActivityEntry, 0, len(entries)),
	}
	for _, e := range entries {
		summary.TotalDurationMinutes += e.DurationMinutes
		summary.TotalCalories += e.TotalCalories
		summary.Activities = append(summary.Activities, ActivityEntry{
			ID:              e.ID,
			ActivityName:    e.Activity.ActivityName,
			DurationMinutes: e.DurationMinutes,
			TotalCalories:   e.TotalCalories,
		})
	}
	return summary
}
