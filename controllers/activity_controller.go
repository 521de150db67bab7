package controllers

import (
	"net/http"

	"github.com/carloangkisann/pantausikecil-sub000/services"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	activity *services.ActivityService
}

func NewActivityController(activity *services.ActivityService) *ActivityController {
	return &ActivityController{activity: activity}
}

func (ac *ActivityController) GetTodaySummary(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	summary, err := ac.activity.GetTodayActivitySummary(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (ac *ActivityController) GetDailySummary(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'date' query param"})
		return
	}
	summary, err := ac.activity.GetUserActivitySummary(userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (ac *ActivityController) GetHistory(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'start_date' or 'end_date' query param"})
		return
	}
	history, err := ac.activity.GetUserActivityHistory(userID, startDate, endDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func (ac *ActivityController) GetRecommended(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	activities, err := ac.activity.GetRecommendedActivities(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (ac *ActivityController) AddUserActivity(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	var input services.AddUserActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := ac.activity.AddUserActivity(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (ac *ActivityController) RemoveUserActivity(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	entryID, ok := pathID(c, "activity_id")
	if !ok {
		return
	}
	if err := ac.activity.RemoveUserActivity(userID, entryID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---------- Activity catalog ----------

func (ac *ActivityController) GetAllActivities(c *gin.Context) {
	activities, err := ac.activity.GetAllActivities()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (ac *ActivityController) GetActivity(c *gin.Context) {
	activityID, ok := pathID(c, "activity_id")
	if !ok {
		return
	}
	activity, err := ac.activity.GetActivityDetails(activityID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

type calculateCaloriesInput struct {
	CaloriesPerHour int `json:"caloriesPerHour" binding:"required"`
	DurationMinutes int `json:"durationMinutes" binding:"required"`
}

func (ac *ActivityController) CalculateCalories(c *gin.Context) {
	var input calculateCaloriesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.CaloriesPerHour <= 0 || input.DurationMinutes <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "caloriesPerHour and durationMinutes must be positive"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"totalCalories": services.CalculateCalories(input.CaloriesPerHour, input.DurationMinutes),
	})
}
