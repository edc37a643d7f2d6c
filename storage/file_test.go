package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taalimflow/models"
)

func newTestStore(t *testing.T) *FileStorage {
	t.Helper()
	return NewFileStorage(filepath.Join(t.TempDir(), "data.json"))
}

func TestFileStorageAssignsIncreasingIDs(t *testing.T) {
	fs := newTestStore(t)

	var lastID int
	for i := 0; i < 5; i++ {
		submission, err := fs.CreateContactSubmission(models.InsertContactSubmission{
			Name:  "Sara",
			Email: "sara@example.com",
		})
		assert.NoError(t, err)
		assert.Greater(t, submission.ID, lastID)
		lastID = submission.ID
	}
}

func TestFileStorageCreateDefaults(t *testing.T) {
	fs := newTestStore(t)

	submission, err := fs.CreateContactSubmission(models.InsertContactSubmission{
		Name:       "Sara",
		Email:      "sara@example.com",
		SchoolName: "Lycée X",
		Message:    "Hello",
	})
	assert.NoError(t, err)
	assert.Equal(t, "false", submission.IsRead)
	assert.Equal(t, models.StatusNew, submission.Status)
	assert.False(t, submission.SubmittedAt.IsZero())
}

func TestFileStorageGetAllSortedDescending(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	now := time.Now().UTC()

	// Seed the file with submissions out of chronological order.
	seed := fileData{
		ContactSubmissions: []models.ContactSubmission{
			{ID: 1, Name: "a", Email: "a@example.com", SubmittedAt: now.Add(-2 * time.Hour)},
			{ID: 2, Name: "b", Email: "b@example.com", SubmittedAt: now},
			{ID: 3, Name: "c", Email: "c@example.com", SubmittedAt: now.Add(-1 * time.Hour)},
		},
		DemoRequests:  []models.DemoRequest{},
		NextContactID: 4,
		NextDemoID:    1,
	}
	raw, err := json.Marshal(seed)
	assert.NoError(t, err)
	assert.NoError(t, os.WriteFile(path, raw, 0644))

	fs := NewFileStorage(path)
	submissions, err := fs.GetAllContactSubmissions()
	assert.NoError(t, err)
	assert.Len(t, submissions, 3)
	assert.Equal(t, []int{2, 3, 1}, []int{submissions[0].ID, submissions[1].ID, submissions[2].ID})
}

func TestFileStorageMissingFileIsEmptyStore(t *testing.T) {
	fs := newTestStore(t)

	submissions, err := fs.GetAllContactSubmissions()
	assert.NoError(t, err)
	assert.Empty(t, submissions)

	requests, err := fs.GetAllDemoRequests()
	assert.NoError(t, err)
	assert.Empty(t, requests)
}

func TestFileStorageCorruptFileIsEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	fs := NewFileStorage(path)
	submissions, err := fs.GetAllContactSubmissions()
	assert.NoError(t, err)
	assert.Empty(t, submissions)

	// Id counters restart at 1.
	submission, err := fs.CreateContactSubmission(models.InsertContactSubmission{
		Name:  "Sara",
		Email: "sara@example.com",
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, submission.ID)
}

func TestFileStorageMarkAsReadUnknownID(t *testing.T) {
	fs := newTestStore(t)

	created, err := fs.CreateContactSubmission(models.InsertContactSubmission{
		Name:  "Sara",
		Email: "sara@example.com",
	})
	assert.NoError(t, err)

	err = fs.MarkContactSubmissionAsRead(created.ID + 100)
	assert.ErrorIs(t, err, ErrNotFound)

	// Store unchanged
	submissions, err := fs.GetAllContactSubmissions()
	assert.NoError(t, err)
	assert.Len(t, submissions, 1)
	assert.Equal(t, "false", submissions[0].IsRead)
}

func TestFileStorageMarkAsRead(t *testing.T) {
	fs := newTestStore(t)

	created, err := fs.CreateContactSubmission(models.InsertContactSubmission{
		Name:  "Sara",
		Email: "sara@example.com",
	})
	assert.NoError(t, err)

	assert.NoError(t, fs.MarkContactSubmissionAsRead(created.ID))

	submissions, err := fs.GetAllContactSubmissions()
	assert.NoError(t, err)
	assert.Equal(t, "true", submissions[0].IsRead)
}

func TestFileStorageUpdateStatus(t *testing.T) {
	fs := newTestStore(t)

	created, err := fs.CreateContactSubmission(models.InsertContactSubmission{
		Name:  "Sara",
		Email: "sara@example.com",
	})
	assert.NoError(t, err)

	assert.NoError(t, fs.UpdateContactSubmissionStatus(created.ID, models.StatusContacted))

	submissions, err := fs.GetAllContactSubmissions()
	assert.NoError(t, err)
	assert.Equal(t, models.StatusContacted, submissions[0].Status)

	assert.ErrorIs(t, fs.UpdateContactSubmissionStatus(created.ID+100, models.StatusClosed), ErrNotFound)
}

func TestFileStorageDelete(t *testing.T) {
	fs := newTestStore(t)

	created, err := fs.CreateContactSubmission(models.InsertContactSubmission{
		Name:  "Sara",
		Email: "sara@example.com",
	})
	assert.NoError(t, err)

	assert.NoError(t, fs.DeleteContactSubmission(created.ID))
	assert.ErrorIs(t, fs.DeleteContactSubmission(created.ID), ErrNotFound)

	submissions, err := fs.GetAllContactSubmissions()
	assert.NoError(t, err)
	assert.Empty(t, submissions)
}

func TestFileStorageDemoRequests(t *testing.T) {
	fs := newTestStore(t)

	created, err := fs.CreateDemoRequest(models.InsertDemoRequest{
		Name:             "Karim",
		Email:            "karim@example.com",
		SchoolType:       "private",
		NumberOfStudents: "250",
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, models.StatusNew, created.Status)

	assert.NoError(t, fs.MarkDemoRequestAsRead(created.ID))
	assert.NoError(t, fs.UpdateDemoRequestStatus(created.ID, models.StatusQualified))

	requests, err := fs.GetAllDemoRequests()
	assert.NoError(t, err)
	assert.Len(t, requests, 1)
	assert.Equal(t, "true", requests[0].IsRead)
	assert.Equal(t, models.StatusQualified, requests[0].Status)

	// Demo ids are independent from contact ids
	contact, err := fs.CreateContactSubmission(models.InsertContactSubmission{
		Name:  "Sara",
		Email: "sara@example.com",
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, contact.ID)
}
