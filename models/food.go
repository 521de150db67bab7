package models

import "gorm.io/gorm"

// A catalog entry with its nutrient values per serving.
// Missing nutrient values stay zero so aggregation can sum them directly.
type Food struct {
	gorm.Model
	FoodName      string  `gorm:"not null" json:"foodName"`
	Description   string  `gorm:"type:text" json:"description"`
	PriceCategory string  `gorm:"size:16" json:"priceCategory"` // "Rendah"|"Menengah"|"Tinggi"
	Tips          string  `gorm:"type:text" json:"tips"`
	Protein       float64 `json:"protein"`
	FolicAcid     float64 `json:"folicAcid"`
	Iron          float64 `json:"iron"`
	Calcium       float64 `json:"calcium"`
	VitaminD      float64 `json:"vitaminD"`
	Omega3        float64 `json:"omega3"`
	Fiber         float64 `json:"fiber"`
	Iodine        float64 `json:"iodine"`
	Fat           float64 `json:"fat"`
	VitaminB      float64 `json:"vitaminB"`
}
