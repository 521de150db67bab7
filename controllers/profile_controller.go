package controllers

import (
	"net/http"

	"github.com/carloangkisann/pantausikecil-sub000/services"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	users *services.UserService
}

func NewProfileController(users *services.UserService) *ProfileController {
	return &ProfileController{users: users}
}

func (pc *ProfileController) GetProfile(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	user, err := pc.users.GetUserProfile(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	var input services.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := pc.users.UpdateUserProfile(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ---------- Pregnancies ----------

func (pc *ProfileController) CreatePregnancy(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	var input services.CreatePregnancyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pregnancy, err := pc.users.CreatePregnancy(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pregnancy)
}

func (pc *ProfileController) GetPregnancies(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	pregnancies, err := pc.users.GetUserPregnancies(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pregnancies)
}

func (pc *ProfileController) UpdatePregnancy(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	pregnancyID, ok := pathID(c, "pregnancy_id")
	if !ok {
		return
	}
	var input services.UpdatePregnancyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pregnancy, err := pc.users.UpdatePregnancy(userID, pregnancyID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pregnancy)
}

// ---------- Emergency contacts ----------

func (pc *ProfileController) GetConnections(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	connections, err := pc.users.GetUserConnections(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, connections)
}

func (pc *ProfileController) AddConnection(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	var input services.CreateConnectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	connection, err := pc.users.AddConnection(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, connection)
}

func (pc *ProfileController) RemoveConnection(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	connectionID, ok := pathID(c, "connection_id")
	if !ok {
		return
	}
	if err := pc.users.RemoveConnection(userID, connectionID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---------- Reminders ----------

func (pc *ProfileController) CreateReminder(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	var input services.CreateReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reminder, err := pc.users.CreateReminder(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reminder)
}
