package models

import "gorm.io/gorm"

// NutritionalNeed holds the recommended daily intake per trimester.
// Static reference data, seeded once at startup; immutable at runtime.
type NutritionalNeed struct {
	gorm.Model
	TrimesterNumber int     `gorm:"uniqueIndex;not null" json:"trimesterNumber"`
	WaterNeedsMl    float64 `json:"waterNeedsMl"`
	ProteinNeeds    float64 `json:"proteinNeeds"`
	FolicAcidNeeds  float64 `json:"folicAcidNeeds"`
	IronNeeds       float64 `json:"ironNeeds"`
	CalciumNeeds    float64 `json:"calciumNeeds"`
	VitaminDNeeds   float64 `json:"vitaminDNeeds"`
	Omega3Needs     float64 `json:"omega3Needs"`
	FiberNeeds      float64 `json:"fiberNeeds"`
	IodineNeeds     float64 `json:"iodineNeeds"`
	FatNeeds        float64 `json:"fatNeeds"`
	VitaminBNeeds   float64 `json:"vitaminBNeeds"`
}
