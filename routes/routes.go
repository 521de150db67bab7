package routes

import (
	"github.com/carloangkisann/pantausikecil-sub000/controllers"
	"github.com/carloangkisann/pantausikecil-sub000/middlewares"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Controllers struct {
	Auth      *controllers.AuthController
	Profile   *controllers.ProfileController
	Nutrition *controllers.NutritionController
	Activity  *controllers.ActivityController
	Dashboard *controllers.DashboardController
	Emergency *controllers.EmergencyController
	Realtime  *controllers.RealtimeController
}

func SetupRouter(db *gorm.DB, c Controllers) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
	}

	authed := middlewares.AuthMiddleware(db)

	r.GET("/api/auth/me", authed, c.Auth.Me)
	r.GET("/api/ws", authed, c.Realtime.EventsWS)

	users := r.Group("/api/users")
	users.Use(authed)
	{
		users.GET("/:user_id/profile", c.Profile.GetProfile)
		users.PUT("/:user_id/profile", c.Profile.UpdateProfile)

		users.POST("/:user_id/pregnancies", c.Profile.CreatePregnancy)
		users.GET("/:user_id/pregnancies", c.Profile.GetPregnancies)
		users.PUT("/:user_id/pregnancies/:pregnancy_id", c.Profile.UpdatePregnancy)

		users.GET("/:user_id/connections", c.Profile.GetConnections)
		users.POST("/:user_id/connections", c.Profile.AddConnection)
		users.DELETE("/:user_id/connections/:connection_id", c.Profile.RemoveConnection)

		users.GET("/:user_id/nutrition/needs", c.Nutrition.GetNeeds)
		users.GET("/:user_id/nutrition/today", c.Nutrition.GetTodaySummary)
		users.GET("/:user_id/nutrition/summary", c.Nutrition.GetDailySummary)
		users.GET("/:user_id/nutrition/meals", c.Nutrition.GetMeals)
		users.POST("/:user_id/nutrition/meals", c.Nutrition.AddMeal)
		users.DELETE("/:user_id/nutrition/meals/:meal_id", c.Nutrition.RemoveMeal)
		users.POST("/:user_id/nutrition/water", c.Nutrition.AddWater)

		users.GET("/:user_id/activities/today", c.Activity.GetTodaySummary)
		users.GET("/:user_id/activities/summary", c.Activity.GetDailySummary)
		users.GET("/:user_id/activities/history", c.Activity.GetHistory)
		users.GET("/:user_id/activities/recommended", c.Activity.GetRecommended)
		users.POST("/:user_id/activities", c.Activity.AddUserActivity)
		users.DELETE("/:user_id/activities/:activity_id", c.Activity.RemoveUserActivity)

		users.GET("/:user_id/dashboard", c.Dashboard.GetDashboard)
		users.GET("/:user_id/dashboard/weekly", c.Dashboard.GetWeeklySummary)
		users.GET("/:user_id/dashboard/nutrition-progress", c.Dashboard.GetNutritionProgress)
		users.GET("/:user_id/reminders/upcoming", c.Dashboard.GetUpcomingReminders)
		users.GET("/:user_id/reminders", c.Dashboard.GetRemindersByDate)
		users.POST("/:user_id/reminders", c.Profile.CreateReminder)
		users.DELETE("/:user_id/reminders/:reminder_id", c.Dashboard.DeleteReminder)

		users.POST("/:user_id/emergency", c.Emergency.SendEmergency)
		users.POST("/:user_id/devices", c.Emergency.RegisterDevice)
	}

	catalog := r.Group("/api")
	catalog.Use(authed)
	{
		catalog.GET("/nutrition/food", c.Nutrition.GetAllFood)
		catalog.GET("/nutrition/food/:food_id", c.Nutrition.GetFood)

		catalog.GET("/activities", c.Activity.GetAllActivities)
		catalog.GET("/activities/:activity_id", c.Activity.GetActivity)
		catalog.POST("/activities/calculate-calories", c.Activity.CalculateCalories)
	}

	return r
}
