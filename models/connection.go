package models

import "gorm.io/gorm"

// UserConnection is an emergency contact reachable by email.
type UserConnection struct {
	gorm.Model
	UserID           uint   `gorm:"index;not null" json:"userId"`
	ConnectionEmail  string `gorm:"not null" json:"connectionEmail"`
	ConnectionName   string `gorm:"not null" json:"connectionName"`
	RelationshipType string `gorm:"size:16" json:"relationshipType"` // "Suami"|"Lainnya"
}
