package services

import (
	"github.com/carloangkisann/pantausikecil-sub000/models"
	"github.com/carloangkisann/pantausikecil-sub000/utils"
)

// DailyNutritionSummary is the derived per-day intake total. It is never
// persisted; fields default to zero when nothing was logged.
type DailyNutritionSummary struct {
	Date           string  `json:"date"`
	TotalProtein   float64 `json:"totalProtein"`
	TotalFolicAcid float64 `json:"totalFolicAcid"`
	TotalIron      float64 `json:"totalIron"`
	TotalCalcium   float64 `json:"totalCalcium"`
	TotalVitaminD  float64 `json:"totalVitaminD"`
	TotalOmega3    float64 `json:"totalOmega3"`
	TotalFiber     float64 `json:"totalFiber"`
	TotalIodine    float64 `json:"totalIodine"`
	TotalFat       float64 `json:"totalFat"`
	TotalVitaminB  float64 `json:"totalVitaminB"`
	TotalWaterMl   int     `json:"totalWaterMl"`
}

type ActivityEntry struct {
	ID              uint   `json:"id"`
	ActivityName    string `json:"activityName"`
	DurationMinutes int    `json:"durationMinutes"`
	TotalCalories   int    `json:"totalCalories"`
}

type UserActivitySummary struct {
	Date                 string          `json:"date"`
	TotalDurationMinutes int             `json:"totalDurationMinutes"`
	TotalCalories        int             `json:"totalCalories"`
	Activities           []ActivityEntry `json:"activities"`
}

// NutritionProgress holds percentage-of-need per nutrient, capped at 100.
type NutritionProgress struct {
	Water     float64 `json:"water"`
	Protein   float64 `json:"protein"`
	FolicAcid float64 `json:"folicAcid"`
	Iron      float64 `json:"iron"`
	Calcium   float64 `json:"calcium"`
	VitaminD  float64 `json:"vitaminD"`
	Omega3    float64 `json:"omega3"`
	Fiber     float64 `json:"fiber"`
	Iodine    float64 `json:"iodine"`
	Fat       float64 `json:"fat"`
	VitaminB  float64 `json:"vitaminB"`
}

type PregnancySummary struct {
	utils.PregnancyInfo
	StartDate string `json:"startDate"`
}

type DashboardData struct {
	PregnancyInfo     *PregnancySummary       `json:"pregnancyInfo,omitempty"`
	NutritionalNeeds  *models.NutritionalNeed `json:"nutritionalNeeds,omitempty"`
	TodayNutrition    DailyNutritionSummary   `json:"todayNutrition"`
	TodayActivity     UserActivitySummary     `json:"todayActivity"`
	UpcomingReminders []models.Reminder       `json:"upcomingReminders"`
}

type WeeklySummary struct {
	Nutrition  []DailyNutritionSummary `json:"nutrition"`
	Activities []UserActivitySummary   `json:"activities"`
}
