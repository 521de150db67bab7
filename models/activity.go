package models

import (
	"time"

	"gorm.io/gorm"
)

type Activity struct {
	gorm.Model
	ActivityName      string `gorm:"not null" json:"activityName"`
	Description       string `gorm:"type:text" json:"description"`
	EstimatedDuration int    `json:"estimatedDuration"` // minutes
	CaloriesPerHour   int    `json:"caloriesPerHour"`
	Level             string `gorm:"size:16" json:"level"` // "Ringan"|"Sedang"|"Berat"
	VideoUrl          string `json:"videoUrl"`
	ThumbnailUrl      string `json:"thumbnailUrl"`
	Tips              string `gorm:"type:text" json:"tips"`
}

// TotalCalories is fixed at log time and never recomputed from the catalog.
type UserActivity struct {
	gorm.Model
	UserID          uint      `gorm:"index;not null" json:"userId"`
	ActivityID      uint      `gorm:"index;not null" json:"activityId"`
	Activity        Activity  `json:"activity"`
	ActivityDate    time.Time `gorm:"type:date;index;not null" json:"activityDate"`
	DurationMinutes int       `json:"durationMinutes"`
	TotalCalories   int       `json:"totalCalories"`
}
