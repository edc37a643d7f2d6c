package storage

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"taalimflow/models"
)

// PostgresStorage backs the submission store with a relational table per
// type. Ids come from the serial primary key.
type PostgresStorage struct {
	db *gorm.DB
}

func NewPostgresStorage(databaseURL string) (*PostgresStorage, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.ContactSubmission{}, &models.DemoRequest{}); err != nil {
		return nil, fmt.Errorf("database migration failed: %w", err)
	}
	return &PostgresStorage{db: db}, nil
}

// Contact submissions

func (ps *PostgresStorage) CreateContactSubmission(in models.InsertContactSubmission) (*models.ContactSubmission, error) {
	submission := models.ContactSubmission{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		SchoolName:  in.SchoolName,
		Message:     in.Message,
		SubmittedAt: time.Now().UTC(),
		IsRead:      "false",
		Status:      models.StatusNew,
	}
	if err := ps.db.Create(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (ps *PostgresStorage) GetAllContactSubmissions() ([]models.ContactSubmission, error) {
	submissions := []models.ContactSubmission{}
	if err := ps.db.Order("submitted_at DESC").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (ps *PostgresStorage) MarkContactSubmissionAsRead(id int) error {
	tx := ps.db.Model(&models.ContactSubmission{}).Where("id = ?", id).Update("is_read", "true")
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (ps *PostgresStorage) UpdateContactSubmissionStatus(id int, status string) error {
	tx := ps.db.Model(&models.ContactSubmission{}).Where("id = ?", id).Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (ps *PostgresStorage) DeleteContactSubmission(id int) error {
	tx := ps.db.Delete(&models.ContactSubmission{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Demo requests

func (ps *PostgresStorage) CreateDemoRequest(in models.InsertDemoRequest) (*models.DemoRequest, error) {
	request := models.DemoRequest{
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		SchoolName:       in.SchoolName,
		SchoolType:       in.SchoolType,
		NumberOfStudents: in.NumberOfStudents,
		SubmittedAt:      time.Now().UTC(),
		IsRead:           "false",
		Status:           models.StatusNew,
	}
	if err := ps.db.Create(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (ps *PostgresStorage) GetAllDemoRequests() ([]models.DemoRequest, error) {
	requests := []models.DemoRequest{}
	if err := ps.db.Order("submitted_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (ps *PostgresStorage) MarkDemoRequestAsRead(id int) error {
	tx := ps.db.Model(&models.DemoRequest{}).Where("id = ?", id).Update("is_read", "true")
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (ps *PostgresStorage) UpdateDemoRequestStatus(id int, status string) error {
	tx := ps.db.Model(&models.DemoRequest{}).Where("id = ?", id).Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (ps *PostgresStorage) DeleteDemoRequest(id int) error {
	tx := ps.db.Delete(&models.DemoRequest{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
