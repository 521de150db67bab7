package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged meal entry; the nutrient values live on the referenced Food.
type UserMeal struct {
	gorm.Model
	UserID          uint      `gorm:"index;not null" json:"userId"`
	FoodID          uint      `gorm:"index;not null" json:"foodId"`
	Food            Food      `json:"food"`
	ConsumptionDate time.Time `gorm:"type:date;index;not null" json:"consumptionDate"`
	MealCategory    string    `gorm:"size:16" json:"mealCategory"` // "Sarapan"|"Makan Siang"|"Makan Malam"|"Cemilan"
}
