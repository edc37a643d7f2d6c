package models

import "time"

// Status values accepted by the admin surface. Anything else is rejected
// before it reaches the store.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusQualified = "qualified"
	StatusClosed    = "closed"
)

func IsValidStatus(status string) bool {
	switch status {
	case StatusNew, StatusContacted, StatusQualified, StatusClosed:
		return true
	}
	return false
}

// ContactSubmission is a public contact-form record. IsRead is a
// string flag ("true"/"false") because that is what the admin dashboard
// has always consumed.
type ContactSubmission struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"not null;index" json:"email"`
	Phone       string    `json:"phone,omitempty"`
	SchoolName  string    `json:"schoolName,omitempty"`
	Message     string    `json:"message,omitempty"`
	SubmittedAt time.Time `gorm:"index" json:"submittedAt"`
	IsRead      string    `json:"isRead"`
	Status      string    `json:"status"`
}

// DemoRequest is a demo-booking record. Same lifecycle as a contact
// submission, with school sizing fields instead of a free-form message.
type DemoRequest struct {
	ID               int       `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Email            string    `gorm:"not null;index" json:"email"`
	Phone            string    `json:"phone,omitempty"`
	SchoolName       string    `json:"schoolName,omitempty"`
	SchoolType       string    `json:"schoolType,omitempty"`
	NumberOfStudents string    `json:"numberOfStudents,omitempty"`
	SubmittedAt      time.Time `gorm:"index" json:"submittedAt"`
	IsRead           string    `json:"isRead"`
	Status           string    `json:"status"`
}

// InsertContactSubmission is the validated contact form payload.
type InsertContactSubmission struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"omitempty,max=50"`
	SchoolName string `json:"schoolName" validate:"omitempty,max=200"`
	Message    string `json:"message" validate:"omitempty,max=5000"`
}

// InsertDemoRequest is the validated demo request payload.
type InsertDemoRequest struct {
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"omitempty,max=50"`
	SchoolName       string `json:"schoolName" validate:"omitempty,max=200"`
	SchoolType       string `json:"schoolType" validate:"omitempty,max=100"`
	NumberOfStudents string `json:"numberOfStudents" validate:"omitempty,max=50"`
}
