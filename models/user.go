package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email            string `gorm:"uniqueIndex;not null" json:"email"`
	Password         string `gorm:"not null" json:"-"`
	FullName         string `json:"fullName"`
	ProfileImage     string `json:"profileImage"`
	Age              int    `json:"age"`
	IsVegetarian     bool   `json:"isVegetarian"`
	FinancialStatus  string `gorm:"size:16" json:"financialStatus"` // "Rendah"|"Menengah"|"Tinggi"
	Allergy          string `gorm:"type:text" json:"allergy"`
	MedicalCondition string `gorm:"type:text" json:"medicalCondition"`
}
