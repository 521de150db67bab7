package models

import (
	"time"

	"gorm.io/gorm"
)

// StartTime/EndTime are stored as "HH:MM:SS" so lexicographic order
// matches chronological order.
type Reminder struct {
	gorm.Model
	UserID       uint      `gorm:"index;not null" json:"userId"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	ReminderDate time.Time `gorm:"type:date;index;not null" json:"reminderDate"`
	StartTime    string    `gorm:"size:8" json:"startTime"`
	EndTime      string    `gorm:"size:8" json:"endTime"`
}
