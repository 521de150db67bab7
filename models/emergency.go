package models

import "time"

// EmergencyAlert records every emergency notification fan-out.
type EmergencyAlert struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index" json:"userId"`
	Message        string    `gorm:"type:text" json:"message"`
	RecipientCount int       `json:"recipientCount"`
	CreatedAt      time.Time `json:"createdAt"`
}
