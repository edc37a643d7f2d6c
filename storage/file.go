package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"taalimflow/models"
)

// fileData is the on-disk document. The layout is shared with the admin
// tooling, so the field names are load-bearing.
type fileData struct {
	ContactSubmissions []models.ContactSubmission `json:"contactSubmissions"`
	DemoRequests       []models.DemoRequest       `json:"demoRequests"`
	NextContactID      int                        `json:"nextContactId"`
	NextDemoID         int                        `json:"nextDemoId"`
}

// FileStorage keeps everything in a single JSON document. Every
// operation reads the whole file, mutates in memory and writes it back;
// the mutex keeps concurrent writers from losing updates.
type FileStorage struct {
	mu   sync.Mutex
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// readData treats a missing or corrupt file as an empty store.
func (fs *FileStorage) readData() fileData {
	empty := fileData{
		ContactSubmissions: []models.ContactSubmission{},
		DemoRequests:       []models.DemoRequest{},
		NextContactID:      1,
		NextDemoID:         1,
	}

	raw, err := os.ReadFile(fs.path)
	if err != nil {
		return empty
	}

	var data fileData
	if err := json.Unmarshal(raw, &data); err != nil {
		return empty
	}
	if data.ContactSubmissions == nil {
		data.ContactSubmissions = []models.ContactSubmission{}
	}
	if data.DemoRequests == nil {
		data.DemoRequests = []models.DemoRequest{}
	}
	if data.NextContactID < 1 {
		data.NextContactID = 1
	}
	if data.NextDemoID < 1 {
		data.NextDemoID = 1
	}
	return data
}

func (fs *FileStorage) writeData(data fileData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store file: %w", err)
	}
	if err := os.WriteFile(fs.path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return nil
}

// Contact submissions

func (fs *FileStorage) CreateContactSubmission(in models.InsertContactSubmission) (*models.ContactSubmission, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data := fs.readData()
	submission := models.ContactSubmission{
		ID:          data.NextContactID,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		SchoolName:  in.SchoolName,
		Message:     in.Message,
		SubmittedAt: time.Now().UTC(),
		IsRead:      "false",
		Status:      models.StatusNew,
	}
	data.NextContactID++
	data.ContactSubmissions = append(data.ContactSubmissions, submission)

	if err := fs.writeData(data); err != nil {
		return nil, err
	}
	return &submission, nil
}

func (fs *FileStorage) GetAllContactSubmissions() ([]models.ContactSubmission, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data := fs.readData()
	submissions := data.ContactSubmissions
	sort.Slice(submissions, func(i, j int) bool {
		return submissions[i].SubmittedAt.After(submissions[j].SubmittedAt)
	})
	return submissions, nil
}

func (fs *FileStorage) MarkContactSubmissionAsRead(id int) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data := fs.readData()
	for i := range data.ContactSubmissions {
		if data.ContactSubmissions[i].ID == id {
			data.ContactSubmissions[i].IsRead = "true"
			return fs.writeData(data)
		}
	}
	return ErrNotFound
}

func (fs *FileStorage) UpdateContactSubmissionStatus(id int, status string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data := fs.readData()
	for i := range data.ContactSubmissions {
		if data.ContactSubmissions[i].ID == id {
			data.ContactSubmissions[i].Status = status
			return fs.writeData(data)
		}
	}
	return ErrNotFound
}

func (fs *FileStorage) DeleteContactSubmission(id int) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data := fs.readData()
	for i := range data.ContactSubmissions {
		if data.ContactSubmissions[i].ID == id {
			data.ContactSubmissions = append(data.ContactSubmissions[:i], data.ContactSubmissions[i+1:]...)
			return fs.writeData(data)
		}
	}
	return ErrNotFound
}

// Demo requests

func (fs *FileStorage) CreateDemoRequest(in models.InsertDemoRequest) (*models.DemoRequest, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data := fs.readData()
	request := models.DemoRequest{
		ID:               data.NextDemoID,
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
	data.NextDemoID++
	data.DemoRequests = append(data.DemoRequests, request)

	if err := fs.writeData(data); err != nil {
		return nil, err
	}
	return &request, nil
}

func (fs *FileStorage) GetAllDemoRequests() ([]models.DemoRequest, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data := fs.readData()
	requests := data.DemoRequests
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].SubmittedAt.After(requests[j].SubmittedAt)
	})
	return requests, nil
}

func (fs *FileStorage) MarkDemoRequestAsRead(id int) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data := fs.readData()
	for i := range data.DemoRequests {
		if data.DemoRequests[i].ID == id {
			data.DemoRequests[i].IsRead = "true"
			return fs.writeData(data)
		}
	}
	return ErrNotFound
}

func (fs *FileStorage) UpdateDemoRequestStatus(id int, status string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data := fs.readData()
	for i := range data.DemoRequests {
		if data.DemoRequests[i].ID == id {
			data.DemoRequests[i].Status = status
			return fs.writeData(data)
		}
	}
	return ErrNotFound
}

func (fs *FileStorage) DeleteDemoRequest(id int) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data := fs.readData()
	for i := range data.DemoRequests {
		if data.DemoRequests[i].ID == id {
			data.DemoRequests = append(data.DemoRequests[:i], data.DemoRequests[i+1:]...)
			return fs.writeData(data)
		}
	}
	return ErrNotFound
}
