package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/carloangkisann/pantausikecil-sub000/models"
	"github.com/carloangkisann/pantausikecil-sub000/utils"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Collaborator views of the other services, kept narrow so tests can
// substitute fakes.
type profileDirectory interface {
	GetUserProfile(userID uint) (*models.User, error)
	GetActivePregnancy(userID uint) (*models.Pregnancy, error)
}

type nutritionSource interface {
	GetNutritionalNeeds(trimester int) (*models.NutritionalNeed, error)
	GetDailyNutritionSummary(userID uint, date string) (DailyNutritionSummary, error)
	GetTodayNutritionSummary(userID uint) (DailyNutritionSummary, error)
}

type activitySource interface {
	GetUserActivitySummary(userID uint, date string) (UserActivitySummary, error)
	GetTodayActivitySummary(userID uint) (UserActivitySummary, error)
}

type DashboardService struct {
	db        *gorm.DB
	users     profileDirectory
	nutrition nutritionSource
	activity  activitySource
}

func NewDashboardService(db *gorm.DB, users profileDirectory, nutrition nutritionSource, activity activitySource) *DashboardService {
	return &DashboardService{db: db, users: users, nutrition: nutrition, activity: activity}
}

// GetDashboardData composes pregnancy info, needs, today's intake and
// activity, and upcoming reminders. A user without an active pregnancy still
// gets a valid dashboard; pregnancyInfo and nutritionalNeeds are simply
// omitted.
func (s *DashboardService) GetDashboardData(userID uint) (*DashboardData, error) {
	if _, err := s.users.GetUserProfile(userID); err != nil {
		return nil, err
	}

	pregnancy, err := s.users.GetActivePregnancy(userID)
	if err != nil {
		return nil, err
	}

	var pregnancyInfo *PregnancySummary
	var needs *models.NutritionalNeed
	if pregnancy != nil {
		info, err := utils.GetPregnancyInfo(pregnancy.StartDate, time.Now())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		pregnancyInfo = &PregnancySummary{
			PregnancyInfo: info,
			StartDate:     utils.FormatDate(pregnancy.StartDate),
		}

		needs, err = s.nutrition.GetNutritionalNeeds(info.Trimester)
		if err != nil {
			return nil, err
		}
	}

	// today's nutrition, today's activity, and upcoming reminders have no
	// data dependency on each other
	var (
		todayNutrition DailyNutritionSummary
		todayActivity  UserActivitySummary
		reminders      []models.Reminder
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		todayNutrition, err = s.nutrition.GetTodayNutritionSummary(userID)
		return err
	})
	g.Go(func() error {
		var err error
		todayActivity, err = s.activity.GetTodayActivitySummary(userID)
		return err
	})
	g.Go(func() error {
		var err error
		reminders, err = s.GetUpcomingReminders(userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &DashboardData{
		PregnancyInfo:     pregnancyInfo,
		NutritionalNeeds:  needs,
		TodayNutrition:    todayNutrition,
		TodayActivity:     todayActivity,
		UpcomingReminders: reminders,
	}, nil
}

// CalculateNutritionProgress divides actual intake by target per nutrient,
// capped at 100. A zero or absent target yields 0 for that nutrient.
func CalculateNutritionProgress(summary DailyNutritionSummary, needs *models.NutritionalNeed) NutritionProgress {
	if needs == nil {
		return NutritionProgress{}
	}

	pct := func(actual, target float64) float64 {
		if target <= 0 {
			return 0
		}
		p := actual / target * 100
		if p > 100 {
			return 100
		}
		return p
	}

	return NutritionProgress{
		Water:     pct(float64(summary.TotalWaterMl), needs.WaterNeedsMl),
		Protein:   pct(summary.TotalProtein, needs.ProteinNeeds),
		FolicAcid: pct(summary.TotalFolicAcid, needs.FolicAcidNeeds),
		Iron:      pct(summary.TotalIron, needs.IronNeeds),
		Calcium:   pct(summary.TotalCalcium, needs.CalciumNeeds),
		VitaminD:  pct(summary.TotalVitaminD, needs.VitaminDNeeds),
		Omega3:    pct(summary.TotalOmega3, needs.Omega3Needs),
		Fiber:     pct(summary.TotalFiber, needs.FiberNeeds),
		Iodine:    pct(summary.TotalIodine, needs.IodineNeeds),
		Fat:       pct(summary.TotalFat, needs.FatNeeds),
		VitaminB:  pct(summary.TotalVitaminB, needs.VitaminBNeeds),
	}
}

// GetWeeklySummary aggregates the last seven days (today inclusive), oldest
// first. The fourteen daily reads are independent, so they run concurrently;
// the result is assembled only after all complete.
func (s *DashboardService) GetWeeklySummary(userID uint) (*WeeklySummary, error) {
	if _, err := s.users.GetUserProfile(userID); err != nil {
		return nil, err
	}

	dates := make([]string, 7)
	for i := range dates {
		dates[i] = utils.FormatDate(utils.DaysFromToday(i - 6))
	}

	nutrition := make([]DailyNutritionSummary, 7)
	activities := make([]UserActivitySummary, 7)

	var g errgroup.Group
	for i, date := range dates {
		i, date := i, date
		g.Go(func() error {
			summary, err := s.nutrition.GetDailyNutritionSummary(userID, date)
			if err != nil {
				return err
			}
			nutrition[i] = summary
			return nil
		})
		g.Go(func() error {
			summary, err := s.activity.GetUserActivitySummary(userID, date)
			if err != nil {
				return err
			}
			activities[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &WeeklySummary{
		Nutrition:  nutrition,
		Activities: activities,
	}, nil
}

// ---------- Reminders ----------

func (s *DashboardService) GetRemindersByDate(userID uint, date string) ([]models.Reminder, error) {
	if _, err := s.users.GetUserProfile(userID); err != nil {
		return nil, err
	}
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, date)
	}

	var reminders []models.Reminder
	err = s.db.
		Where("user_id = ? AND reminder_date = ?", userID, day).
		Order("start_time ASC, id ASC").
		Find(&reminders).Error
	return reminders, err
}

// GetUpcomingReminders returns reminders from today through two days out,
// ordered by date then start time; id breaks ties stably.
func (s *DashboardService) GetUpcomingReminders(userID uint) ([]models.Reminder, error) {
	if _, err := s.users.GetUserProfile(userID); err != nil {
		return nil, err
	}

	today := utils.Today()
	twoDaysOut := utils.DaysFromToday(2)

	var reminders []models.Reminder
	err := s.db.
		Where("user_id = ? AND reminder_date >= ? AND reminder_date <= ?", userID, today, twoDaysOut).
		Order("reminder_date ASC, start_time ASC, id ASC").
		Find(&reminders).Error
	return reminders, err
}

func (s *DashboardService) DeleteReminder(userID, reminderID uint) error {
	if _, err := s.users.GetUserProfile(userID); err != nil {
		return err
	}

	var reminder models.Reminder
	err := s.db.
		Where("id = ? AND user_id = ?", reminderID, userID).
		First(&reminder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: reminder %d", ErrNotFound, reminderID)
		}
		return err
	}
	return s.db.Delete(&reminder).Error
}
