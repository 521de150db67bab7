package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carloangkisann/pantausikecil-sub000/models"
)

func TestCalculateNutritionProgress(t *testing.T) {
	needs := &models.NutritionalNeed{
		TrimesterNumber: 2,
		ProteinNeeds:    50,
		IronNeeds:       27,
		WaterNeedsMl:    1600,
	}
	summary := DailyNutritionSummary{
		TotalProtein: 25,
		TotalIron:    27,
		TotalWaterMl: 400,
	}

	progress := CalculateNutritionProgress(summary, needs)

	assert.Equal(t, 50.0, progress.Protein)
	assert.Equal(t, 100.0, progress.Iron)
	assert.Equal(t, 25.0, progress.Water)
}

func TestCalculateNutritionProgress_CapsAtHundred(t *testing.T) {
	needs := &models.NutritionalNeed{ProteinNeeds: 50}
	summary := DailyNutritionSummary{TotalProtein: 130}

	progress := CalculateNutritionProgress(summary, needs)
	assert.Equal(t, 100.0, progress.Protein)
}

// A zero target never divides; it reads as "no requirement", so progress
// stays at 0 even with intake logged.
func TestCalculateNutritionProgress_ZeroTarget(t *testing.T) {
	needs := &models.NutritionalNeed{ProteinNeeds: 0, IronNeeds: 27}
	summary := DailyNutritionSummary{TotalProtein: 40, TotalIron: 13.5}

	progress := CalculateNutritionProgress(summary, needs)
	assert.Equal(t, 0.0, progress.Protein)
	assert.Equal(t, 50.0, progress.Iron)
}

func TestCalculateNutritionProgress_NilNeeds(t *testing.T) {
	summary := DailyNutritionSummary{TotalProtein: 40}
	assert.Equal(t, NutritionProgress{}, CalculateNutritionProgress(summary, nil))
}

func TestCalculateNutritionProgress_ZeroIntake(t *testing.T) {
	needs := &models.NutritionalNeed{ProteinNeeds: 50, WaterNeedsMl: 1600}
	progress := CalculateNutritionProgress(DailyNutritionSummary{}, needs)
	assert.Equal(t, NutritionProgress{}, progress)
}
