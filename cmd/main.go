package main

import (
	"context"
	"log"

	"github.com/carloangkisann/pantausikecil-sub000/config"
	"github.com/carloangkisann/pantausikecil-sub000/controllers"
	"github.com/carloangkisann/pantausikecil-sub000/routes"
	"github.com/carloangkisann/pantausikecil-sub000/services"
	"github.com/carloangkisann/pantausikecil-sub000/utils"
)

func main() {
	ctx := context.Background()

	db := config.InitDB()

	mailer, err := utils.NewMailer(ctx)
	if err != nil {
		log.Fatalf("mailer init failed: %v", err)
	}
	uploader, err := utils.NewS3Uploader(ctx)
	if err != nil {
		log.Fatalf("S3 uploader init failed: %v", err)
	}
	push, err := services.NewPushService(ctx, db)
	if err != nil {
		log.Fatalf("push service init failed: %v", err)
	}

	hub := services.NewRealtimeHub()

	userSvc := services.NewUserService(db, uploader)
	authSvc := services.NewAuthService(db)
	nutritionSvc := services.NewNutritionService(db, userSvc)
	activitySvc := services.NewActivityService(db, userSvc)
	dashboardSvc := services.NewDashboardService(db, userSvc, nutritionSvc, activitySvc)
	emergencySvc := services.NewEmergencyService(db, userSvc, mailer, hub, push)

	r := routes.SetupRouter(db, routes.Controllers{
		Auth:      controllers.NewAuthController(authSvc, userSvc),
		Profile:   controllers.NewProfileController(userSvc),
		Nutrition: controllers.NewNutritionController(nutritionSvc),
		Activity:  controllers.NewActivityController(activitySvc),
		Dashboard: controllers.NewDashboardController(dashboardSvc, nutritionSvc),
		Emergency: controllers.NewEmergencyController(emergencySvc, push),
		Realtime:  controllers.NewRealtimeController(hub),
	})

	if err := r.Run(":8080"); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
