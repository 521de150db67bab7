package models

import (
	"time"

	"gorm.io/gorm"
)

// One row per (user, day); repeated additions accumulate into AmountMl.
type UserWaterLog struct {
	gorm.Model
	UserID   uint      `gorm:"not null;uniqueIndex:idx_user_water_day" json:"userId"`
	LogDate  time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_water_day" json:"logDate"`
	AmountMl int       `json:"amountMl"`
}
