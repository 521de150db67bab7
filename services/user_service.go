package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carloangkisann/pantausikecil-sub000/models"
	"github.com/carloangkisann/pantausikecil-sub000/utils"

	"gorm.io/gorm"
)

// ImageUploader stores a base64 image payload and returns its public URL.
type ImageUploader interface {
	UploadBase64Image(ctx context.Context, base64Data, filenamePrefix string) (string, error)
}

type UserService struct {
	db       *gorm.DB
	uploader ImageUploader
}

func NewUserService(db *gorm.DB, uploader ImageUploader) *UserService {
	return &UserService{db: db, uploader: uploader}
}

func (s *UserService) GetUserProfile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, err
	}
	return &user, nil
}

type UpdateProfileInput struct {
	FullName         *string `json:"fullName"`
	Age              *int    `json:"age"`
	IsVegetarian     *bool   `json:"isVegetarian"`
	FinancialStatus  *string `json:"financialStatus"`
	Allergy          *string `json:"allergy"`
	MedicalCondition *string `json:"medicalCondition"`
	ProfileImage     *string `json:"profileImage"` // base64 payload
}

func (s *UserService) UpdateUserProfile(ctx context.Context, userID uint, input UpdateProfileInput) (*models.User, error) {
	user, err := s.GetUserProfile(userID)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Age != nil {
		if *input.Age <= 0 {
			return nil, fmt.Errorf("%w: age must be positive", ErrInvalidInput)
		}
		user.Age = *input.Age
	}
	if input.IsVegetarian != nil {
		user.IsVegetarian = *input.IsVegetarian
	}
	if input.FinancialStatus != nil {
		user.FinancialStatus = *input.FinancialStatus
	}
	if input.Allergy != nil {
		user.Allergy = *input.Allergy
	}
	if input.MedicalCondition != nil {
		user.MedicalCondition = *input.MedicalCondition
	}
	if input.ProfileImage != nil && *input.ProfileImage != "" {
		if s.uploader == nil {
			return nil, fmt.Errorf("image upload not configured")
		}
		url, err := s.uploader.UploadBase64Image(ctx, *input.ProfileImage, user.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		user.ProfileImage = url
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// ---------- Pregnancies ----------

type CreatePregnancyInput struct {
	PregnancyNumber int    `json:"pregnancyNumber"`
	StartDate       string `json:"startDate"` // YYYY-MM-DD
	BabyGender      string `json:"babyGender"`
}

func (s *UserService) CreatePregnancy(userID uint, input CreatePregnancyInput) (*models.Pregnancy, error) {
	if _, err := s.GetUserProfile(userID); err != nil {
		return nil, err
	}
	if input.PregnancyNumber <= 0 {
		return nil, fmt.Errorf("%w: pregnancy number must be positive", ErrInvalidInput)
	}
	start, err := utils.ParseDate(input.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date %q", ErrInvalidInput, input.StartDate)
	}

	var existing models.Pregnancy
	err = s.db.
		Where("user_id = ? AND pregnancy_number = ?", userID, input.PregnancyNumber).
		First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: pregnancy number %d already exists", ErrConflict, input.PregnancyNumber)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// At most one active pregnancy per user.
	active, err := s.GetActivePregnancy(userID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, fmt.Errorf("%w: user already has an active pregnancy", ErrConflict)
	}

	gender := input.BabyGender
	if gender == "" {
		gender = "Tidak Diketahui"
	}

	pregnancy := &models.Pregnancy{
		UserID:          userID,
		PregnancyNumber: input.PregnancyNumber,
		StartDate:       start,
		BabyGender:      gender,
	}
	if err := s.db.Create(pregnancy).Error; err != nil {
		return nil, err
	}
	return pregnancy, nil
}

func (s *UserService) GetUserPregnancies(userID uint) ([]models.Pregnancy, error) {
	if _, err := s.GetUserProfile(userID); err != nil {
		return nil, err
	}
	var pregnancies []models.Pregnancy
	err := s.db.
		Where("user_id = ?", userID).
		Order("pregnancy_number ASC").
		Find(&pregnancies).Error
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range pregnancies {
		pregnancies[i].IsActive = utils.IsActivePregnancy(pregnancies[i].StartDate, pregnancies[i].EndDate, now)
	}
	return pregnancies, nil
}

type UpdatePregnancyInput struct {
	EndDate    *string `json:"endDate"` // YYYY-MM-DD
	BabyGender *string `json:"babyGender"`
}

func (s *UserService) UpdatePregnancy(userID, pregnancyID uint, input UpdatePregnancyInput) (*models.Pregnancy, error) {
	if _, err := s.GetUserProfile(userID); err != nil {
		return nil, err
	}

	var pregnancy models.Pregnancy
	err := s.db.
		Where("id = ? AND user_id = ?", pregnancyID, userID).
		First(&pregnancy).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: pregnancy %d", ErrNotFound, pregnancyID)
		}
		return nil, err
	}

	if input.EndDate != nil {
		end, err := utils.ParseDate(*input.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid end date %q", ErrInvalidInput, *input.EndDate)
		}
		if end.Before(pregnancy.StartDate) {
			return nil, fmt.Errorf("%w: end date precedes start date", ErrInvalidInput)
		}
		pregnancy.EndDate = &end
	}
	if input.BabyGender != nil {
		pregnancy.BabyGender = *input.BabyGender
	}

	if err := s.db.Save(&pregnancy).Error; err != nil {
		return nil, err
	}
	return &pregnancy, nil
}

// GetActivePregnancy returns nil without error when the user has none;
// callers treat that as "no pregnancy", not a failure.
func (s *UserService) GetActivePregnancy(userID uint) (*models.Pregnancy, error) {
	var pregnancy models.Pregnancy
	err := s.db.
		Where("user_id = ? AND end_date IS NULL", userID).
		First(&pregnancy).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pregnancy, nil
}

// ---------- Emergency contacts ----------

type CreateConnectionInput struct {
	ConnectionEmail  string `json:"connectionEmail"`
	ConnectionName   string `json:"connectionName"`
	RelationshipType string `json:"relationshipType"`
}

func (s *UserService) GetUserConnections(userID uint) ([]models.UserConnection, error) {
	if _, err := s.GetUserProfile(userID); err != nil {
		return nil, err
	}
	var connections []models.UserConnection
	err := s.db.Where("user_id = ?", userID).Find(&connections).Error
	return connections, err
}

func (s *UserService) AddConnection(userID uint, input CreateConnectionInput) (*models.UserConnection, error) {
	if _, err := s.GetUserProfile(userID); err != nil {
		return nil, err
	}
	if input.ConnectionEmail == "" || input.ConnectionName == "" {
		return nil, fmt.Errorf("%w: connection email and name are required", ErrInvalidInput)
	}

	connection := &models.UserConnection{
		UserID:           userID,
		ConnectionEmail:  input.ConnectionEmail,
		ConnectionName:   input.ConnectionName,
		RelationshipType: input.RelationshipType,
	}
	if err := s.db.Create(connection).Error; err != nil {
		return nil, err
	}
	return connection, nil
}

func (s *UserService) RemoveConnection(userID, connectionID uint) error {
	if _, err := s.GetUserProfile(userID); err != nil {
		return err
	}

	var connection models.UserConnection
	err := s.db.
		Where("id = ? AND user_id = ?", connectionID, userID).
		First(&connection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: connection %d", ErrNotFound, connectionID)
		}
		return err
	}
	return s.db.Delete(&connection).Error
}

// ---------- Reminders ----------

type CreateReminderInput struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ReminderDate string `json:"reminderDate"` // YYYY-MM-DD
	StartTime    string `json:"startTime"`    // HH:MM:SS
	EndTime      string `json:"endTime"`
}

func (s *UserService) CreateReminder(userID uint, input CreateReminderInput) (*models.Reminder, error) {
	if _, err := s.GetUserProfile(userID); err != nil {
		return nil, err
	}
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	date, err := utils.ParseDate(input.ReminderDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid reminder date %q", ErrInvalidInput, input.ReminderDate)
	}
	for _, t := range []string{input.StartTime, input.EndTime} {
		if t == "" {
			continue
		}
		if _, err := time.Parse("15:04:05", t); err != nil {
			return nil, fmt.Errorf("%w: invalid time %q, use HH:MM:SS", ErrInvalidInput, t)
		}
	}

	reminder := &models.Reminder{
		UserID:       userID,
		Title:        input.Title,
		Description:  input.Description,
		ReminderDate: date,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
	}
	if err := s.db.Create(reminder).Error; err != nil {
		return nil, err
	}
	return reminder, nil
}
