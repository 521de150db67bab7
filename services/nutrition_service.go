package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/carloangkisann/pantausikecil-sub000/models"
	"github.com/carloangkisann/pantausikecil-sub000/utils"

	"gorm.io/gorm"
)

type NutritionService struct {
	db    *gorm.DB
	users *UserService
}

func NewNutritionService(db *gorm.DB, users *UserService) *NutritionService {
	return &NutritionService{db: db, users: users}
}

// GetNutritionalNeeds returns nil without error when no row is seeded for
// the trimester; callers treat that as "no active nutrition plan".
func (s *NutritionService) GetNutritionalNeeds(trimester int) (*models.NutritionalNeed, error) {
	var need models.NutritionalNeed
	err := s.db.Where("trimester_number = ?", trimester).First(&need).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &need, nil
}

func (s *NutritionService) GetUserNutritionalNeeds(userID uint) (*models.NutritionalNeed, error) {
	pregnancy, err := s.users.GetActivePregnancy(userID)
	if err != nil {
		return nil, err
	}
	if pregnancy == nil {
		return nil, fmt.Errorf("%w: no active pregnancy", ErrNotFound)
	}

	trimester, err := utils.CalculateTrimester(pregnancy.StartDate, time.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.GetNutritionalNeeds(trimester)
}

// GetDailyNutritionSummary sums every nutrient over the day's meals plus the
// day's water row. Zero entries produce an all-zero summary, never an error.
func (s *NutritionService) GetDailyNutritionSummary(userID uint, date string) (DailyNutritionSummary, error) {
	if _, err := s.users.GetUserProfile(userID); err != nil {
		return DailyNutritionSummary{}, err
	}
	day, err := utils.ParseDate(date)
	if err != nil {
		return DailyNutritionSummary{}, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, date)
	}

	var meals []models.UserMeal
	err = s.db.
		Preload("Food").
		Where("user_id = ? AND consumption_date = ?", userID, day).
		Find(&meals).Error
	if err != nil {
		return DailyNutritionSummary{}, err
	}

	summary := DailyNutritionSummary{Date: date}
	for _, m := range meals {
		summary.TotalProtein += m.Food.Protein
		summary.TotalFolicAcid += m.Food.FolicAcid
		summary.TotalIron += m.Food.Iron
		summary.TotalCalcium += m.Food.Calcium
		summary.TotalVitaminD += m.Food.VitaminD
		summary.TotalOmega3 += m.Food.Omega3
		summary.TotalFiber += m.Food.Fiber
		summary.TotalIodine += m.Food.Iodine
		summary.TotalFat += m.Food.Fat
		summary.TotalVitaminB += m.Food.VitaminB
	}

	var water models.UserWaterLog
	err = s.db.
		Where("user_id = ? AND log_date = ?", userID, day).
		First(&water).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return DailyNutritionSummary{}, err
	}
	summary.TotalWaterMl = water.AmountMl

	return summary, nil
}

func (s *NutritionService) GetTodayNutritionSummary(userID uint) (DailyNutritionSummary, error) {
	return s.GetDailyNutritionSummary(userID, utils.FormatDate(utils.Today()))
}

// ---------- Food catalog ----------

func (s *NutritionService) GetFoodDetails(foodID uint) (*models.Food, error) {
	var food models.Food
	if err := s.db.First(&food, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: food %d", ErrNotFound, foodID)
		}
		return nil, err
	}
	return &food, nil
}

func (s *NutritionService) GetAllFood() ([]models.Food, error) {
	var foods []models.Food
	err := s.db.Find(&foods).Error
	return foods, err
}

func (s *NutritionService) GetFoodByCategory(category string) ([]models.Food, error) {
	switch category {
	case "Rendah", "Menengah", "Tinggi":
	default:
		return nil, fmt.Errorf("%w: unknown price category %q", ErrInvalidInput, category)
	}
	var foods []models.Food
	err := s.db.Where("price_category = ?", category).Find(&foods).Error
	return foods, err
}

// ---------- Meal log ----------

type AddMealInput struct {
	FoodID          uint   `json:"foodId"`
	ConsumptionDate string `json:"consumptionDate"` // YYYY-MM-DD
	MealCategory    string `json:"mealCategory"`
}

func (s *NutritionService) AddMeal(userID uint, input AddMealInput) (*models.UserMeal, error) {
	if _, err := s.users.GetUserProfile(userID); err != nil {
		return nil, err
	}
	if _, err := s.GetFoodDetails(input.FoodID); err != nil {
		return nil, err
	}
	day, err := utils.ParseDate(input.ConsumptionDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid consumption date %q", ErrInvalidInput, input.ConsumptionDate)
	}
	switch input.MealCategory {
	case "Sarapan", "Makan Siang", "Makan Malam", "Cemilan":
	default:
		return nil, fmt.Errorf("%w: unknown meal category %q", ErrInvalidInput, input.MealCategory)
	}

	meal := &models.UserMeal{
		UserID:          userID,
		FoodID:          input.FoodID,
		ConsumptionDate: day,
		MealCategory:    input.MealCategory,
	}
	if err := s.db.Create(meal).Error; err != nil {
		return nil, err
	}

	// reload with food detail
	var populated models.UserMeal
	if err := s.db.Preload("Food").First(&populated, meal.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

func (s *NutritionService) RemoveMeal(userID, mealID uint) error {
	if _, err := s.users.GetUserProfile(userID); err != nil {
		return err
	}

	var meal models.UserMeal
	err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: meal entry %d", ErrNotFound, mealID)
		}
		return err
	}
	return s.db.Delete(&meal).Error
}

func (s *NutritionService) GetUserMeals(userID uint, date string) ([]models.UserMeal, error) {
	if _, err := s.users.GetUserProfile(userID); err != nil {
		return nil, err
	}
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, date)
	}

	var meals []models.UserMeal
	err = s.db.
		Preload("Food").
		Where("user_id = ? AND consumption_date = ?", userID, day).
		Find(&meals).Error
	return meals, err
}

// ---------- Water log ----------

// AddWater accumulates into the single (user, day) row, creating it on the
// first addition of the day.
func (s *NutritionService) AddWater(userID uint, amountMl int) error {
	if _, err := s.users.GetUserProfile(userID); err != nil {
		return err
	}
	if amountMl <= 0 {
		return fmt.Errorf("%w: water amount must be positive", ErrInvalidInput)
	}

	today := utils.Today()

	var waterLog models.UserWaterLog
	err := s.db.
		Where("user_id = ? AND log_date = ?", userID, today).
		First(&waterLog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.db.Create(&models.UserWaterLog{
				UserID:   userID,
				LogDate:  today,
				AmountMl: amountMl,
			}).Error
		}
		return err
	}

	waterLog.AmountMl += amountMl
	return s.db.Save(&waterLog).Error
}
