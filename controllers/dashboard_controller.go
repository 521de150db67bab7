package controllers

import (
	"net/http"

	"github.com/carloangkisann/pantausikecil-sub000/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	dashboard *services.DashboardService
	nutrition *services.NutritionService
}

func NewDashboardController(dashboard *services.DashboardService, nutrition *services.NutritionService) *DashboardController {
	return &DashboardController{dashboard: dashboard, nutrition: nutrition}
}

func (dc *DashboardController) GetDashboard(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	data, err := dc.dashboard.GetDashboardData(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (dc *DashboardController) GetWeeklySummary(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	summary, err := dc.dashboard.GetWeeklySummary(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetNutritionProgress reports today's intake as a percentage of the current
// trimester's needs. Without an active nutrition plan every value is 0.
func (dc *DashboardController) GetNutritionProgress(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	needs, err := dc.nutrition.GetUserNutritionalNeeds(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	summary, err := dc.nutrition.GetTodayNutritionSummary(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.CalculateNutritionProgress(summary, needs))
}

// ---------- Reminders ----------

func (dc *DashboardController) GetUpcomingReminders(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	reminders, err := dc.dashboard.GetUpcomingReminders(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reminders)
}

func (dc *DashboardController) GetRemindersByDate(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'date' query param"})
		return
	}
	reminders, err := dc.dashboard.GetRemindersByDate(userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reminders)
}

func (dc *DashboardController) DeleteReminder(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	reminderID, ok := pathID(c, "reminder_id")
	if !ok {
		return
	}
	if err := dc.dashboard.DeleteReminder(userID, reminderID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
