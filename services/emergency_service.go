package services

import (
	"context"
	"fmt"
	"log"

	"github.com/carloangkisann/pantausikecil-sub000/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type contactDirectory interface {
	GetUserProfile(userID uint) (*models.User, error)
	GetUserConnections(userID uint) ([]models.UserConnection, error)
}

type emergencyMailer interface {
	SendEmergencyEmail(ctx context.Context, to, recipientName, motherName, customMessage string) error
}

// EmergencyService notifies every emergency contact of a user at once.
// Email is the delivery that must succeed; websocket and push are best
// effort extras.
type EmergencyService struct {
	db     *gorm.DB
	users  contactDirectory
	mailer emergencyMailer
	hub    *RealtimeHub
	push   *PushService
}

func NewEmergencyService(db *gorm.DB, users contactDirectory, mailer emergencyMailer, hub *RealtimeHub, push *PushService) *EmergencyService {
	return &EmergencyService{db: db, users: users, mailer: mailer, hub: hub, push: push}
}

func (s *EmergencyService) SendEmergencyNotification(ctx context.Context, userID uint, customMessage string) error {
	user, err := s.users.GetUserProfile(userID)
	if err != nil {
		return err
	}
	connections, err := s.users.GetUserConnections(userID)
	if err != nil {
		return err
	}
	if len(connections) == 0 {
		return fmt.Errorf("%w: no emergency contacts found", ErrInvalidInput)
	}

	motherName := user.FullName
	if motherName == "" {
		motherName = user.Email
	}

	var g errgroup.Group
	for _, conn := range connections {
		conn := conn
		g.Go(func() error {
			return s.mailer.SendEmergencyEmail(ctx, conn.ConnectionEmail, conn.ConnectionName, motherName, customMessage)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to send emergency notifications: %w", err)
	}

	if s.db != nil {
		alert := &models.EmergencyAlert{
			UserID:         userID,
			Message:        customMessage,
			RecipientCount: len(connections),
		}
		if err := s.db.Create(alert).Error; err != nil {
			log.Printf("failed to record emergency alert: %v", err)
		}
	}

	if s.hub != nil {
		s.hub.Broadcast(userID, "emergency.sent", map[string]any{
			"recipients": len(connections),
			"message":    customMessage,
		})
	}
	if s.push != nil {
		s.push.PushToUser(ctx, userID, "Pemberitahuan Darurat", "Pesan darurat telah dikirim ke kontak daruratmu.", map[string]string{
			"type": "emergency",
		})
	}

	return nil
}
