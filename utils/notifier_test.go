package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taalimflow/config"
	"taalimflow/models"
)

func TestFormatContactSubmissionFullFields(t *testing.T) {
	msg := FormatContactSubmission(&models.ContactSubmission{
		ID:          3,
		Name:        "Sara B.",
		Email:       "sara@example.com",
		Phone:       "+213555000111",
		SchoolName:  "Lycée El Amel",
		Message:     "Interested in the parent portal",
		SubmittedAt: time.Date(2026, 8, 30, 14, 5, 9, 0, time.UTC),
	})

	assert.Contains(t, msg, "Nouvelle soumission de contact / New Contact Submission")
	assert.Contains(t, msg, "Sara B.")
	assert.Contains(t, msg, "sara@example.com")
	assert.Contains(t, msg, "+213555000111")
	assert.Contains(t, msg, "Lycée El Amel")
	assert.Contains(t, msg, "Interested in the parent portal")
	assert.Contains(t, msg, "30/08/2026 14:05:09")
	assert.NotContains(t, msg, "Non fourni")
}

func TestFormatContactSubmissionPlaceholders(t *testing.T) {
	msg := FormatContactSubmission(&models.ContactSubmission{
		Name:        "Sara",
		Email:       "sara@example.com",
		SubmittedAt: time.Now(),
	})

	assert.Contains(t, msg, "Non fourni/Not provided")
	assert.Contains(t, msg, "Aucun message/No message")
}

func TestFormatContactSubmissionEscapesHTML(t *testing.T) {
	msg := FormatContactSubmission(&models.ContactSubmission{
		Name:        "<script>alert(1)</script>",
		Email:       "x@example.com",
		Message:     "a < b & c",
		SubmittedAt: time.Now(),
	})

	assert.NotContains(t, msg, "<script>")
	assert.Contains(t, msg, "&lt;script&gt;")
	assert.Contains(t, msg, "a &lt; b &amp; c")
}

func TestFormatDemoRequestFields(t *testing.T) {
	msg := FormatDemoRequest(&models.DemoRequest{
		Name:             "Karim",
		Email:            "karim@example.com",
		SchoolType:       "private",
		NumberOfStudents: "200-500",
		SubmittedAt:      time.Now(),
	})

	assert.Contains(t, msg, "Nouvelle demande de démonstration / New Demo Request")
	assert.Contains(t, msg, "private")
	assert.Contains(t, msg, "200-500")
	// Phone and school name were omitted.
	assert.Contains(t, msg, "Non fourni/Not provided")
}

func TestNewNotifierUnconfiguredChannels(t *testing.T) {
	n := NewNotifier(config.Config{})
	assert.Nil(t, n.telegram)
	assert.Nil(t, n.mailer)

	// With no channels configured both dispatches are no-ops.
	n.NotifyContactSubmission(&models.ContactSubmission{Name: "x", Email: "x@example.com"})
	n.NotifyDemoRequest(&models.DemoRequest{Name: "x", Email: "x@example.com"})
}
