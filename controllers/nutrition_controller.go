package controllers

import (
	"net/http"

	"github.com/carloangkisann/pantausikecil-sub000/services"

	"github.com/gin-gonic/gin"
)

type NutritionController struct {
	nutrition *services.NutritionService
}

func NewNutritionController(nutrition *services.NutritionService) *NutritionController {
	return &NutritionController{nutrition: nutrition}
}

func (nc *NutritionController) GetNeeds(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	needs, err := nc.nutrition.GetUserNutritionalNeeds(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"needs": needs})
}

func (nc *NutritionController) GetTodaySummary(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	summary, err := nc.nutrition.GetTodayNutritionSummary(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (nc *NutritionController) GetDailySummary(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'date' query param"})
		return
	}
	summary, err := nc.nutrition.GetDailyNutritionSummary(userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (nc *NutritionController) GetMeals(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'date' query param"})
		return
	}
	meals, err := nc.nutrition.GetUserMeals(userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (nc *NutritionController) AddMeal(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	var input services.AddMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	meal, err := nc.nutrition.AddMeal(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (nc *NutritionController) RemoveMeal(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	mealID, ok := pathID(c, "meal_id")
	if !ok {
		return
	}
	if err := nc.nutrition.RemoveMeal(userID, mealID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type addWaterInput struct {
	AmountMl int `json:"amountMl" binding:"required"`
}

func (nc *NutritionController) AddWater(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	var input addWaterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := nc.nutrition.AddWater(userID, input.AmountMl); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---------- Food catalog ----------

func (nc *NutritionController) GetAllFood(c *gin.Context) {
	category := c.Query("category")
	if category != "" {
		foods, err := nc.nutrition.GetFoodByCategory(category)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, foods)
		return
	}

	foods, err := nc.nutrition.GetAllFood()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (nc *NutritionController) GetFood(c *gin.Context) {
	foodID, ok := pathID(c, "food_id")
	if !ok {
		return
	}
	food, err := nc.nutrition.GetFoodDetails(foodID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}
