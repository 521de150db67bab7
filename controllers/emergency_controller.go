package controllers

import (
	"net/http"

	"github.com/carloangkisann/pantausikecil-sub000/services"

	"github.com/gin-gonic/gin"
)

type EmergencyController struct {
	emergency *services.EmergencyService
	push      *services.PushService
}

func NewEmergencyController(emergency *services.EmergencyService, push *services.PushService) *EmergencyController {
	return &EmergencyController{emergency: emergency, push: push}
}

type emergencyInput struct {
	Message string `json:"message"`
}

func (ec *EmergencyController) SendEmergency(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	var input emergencyInput
	// body is optional
	_ = c.ShouldBindJSON(&input)

	if err := ec.emergency.SendEmergencyNotification(c.Request.Context(), userID, input.Message); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "emergency notifications sent"})
}

type registerDeviceInput struct {
	Platform string `json:"platform" binding:"required"`
	Token    string `json:"token" binding:"required"`
}

func (ec *EmergencyController) RegisterDevice(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	if ec.push == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "push notifications not configured"})
		return
	}
	var input registerDeviceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	device, err := ec.push.RegisterDevice(c.Request.Context(), userID, input.Platform, input.Token)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, device)
}
