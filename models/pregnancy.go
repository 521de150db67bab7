package models

import (
	"time"

	"gorm.io/gorm"
)

// Pregnancy with a null EndDate is the user's active pregnancy;
// at most one per user at a time.
type Pregnancy struct {
	gorm.Model
	UserID          uint       `gorm:"index;not null;uniqueIndex:idx_user_pregnancy_number" json:"userId"`
	PregnancyNumber int        `gorm:"not null;uniqueIndex:idx_user_pregnancy_number" json:"pregnancyNumber"`
	StartDate       time.Time  `gorm:"type:date;not null" json:"startDate"`
	EndDate         *time.Time `gorm:"type:date" json:"endDate"`
	BabyGender      string     `gorm:"size:32" json:"babyGender"` // "Laki-laki"|"Perempuan"|"Tidak Diketahui"
	IsActive        bool       `gorm:"-" json:"isActive"`         // computed, never stored
}
