package storage

import (
	"errors"

	"taalimflow/config"
	"taalimflow/models"
)

// ErrNotFound is returned by update and delete operations when the id
// does not exist in the store.
var ErrNotFound = errors.New("record not found")

// Storage is the submission store contract implemented by every backend.
type Storage interface {
	CreateContactSubmission(in models.InsertContactSubmission) (*models.ContactSubmission, error)
	GetAllContactSubmissions() ([]models.ContactSubmission, error)
	MarkContactSubmissionAsRead(id int) error
	UpdateContactSubmissionStatus(id int, status string) error
	DeleteContactSubmission(id int) error

	CreateDemoRequest(in models.InsertDemoRequest) (*models.DemoRequest, error)
	GetAllDemoRequests() ([]models.DemoRequest, error)
	MarkDemoRequestAsRead(id int) error
	UpdateDemoRequestStatus(id int, status string) error
	DeleteDemoRequest(id int) error
}

// New picks the backend from the loaded configuration: postgres when
// DATABASE_URL is set, redis when REDIS_ADDR is set, flat file otherwise.
func New() (Storage, error) {
	cfg := config.AppConfig

	if cfg.DatabaseURL != "" {
		return NewPostgresStorage(cfg.DatabaseURL)
	}
	if cfg.Redis.Enabled {
		return NewRedisStorage(cfg.Redis), nil
	}
	return NewFileStorage(cfg.DataFile), nil
}
