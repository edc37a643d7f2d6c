package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taalimflow/models"
)

func TestValidateContactSubmission(t *testing.T) {
	err := ValidateStruct(models.InsertContactSubmission{
		Name:       "Sara",
		Email:      "sara@example.com",
		SchoolName: "Lycée X",
	})
	assert.NoError(t, err)
}

func TestValidateContactSubmissionMissingName(t *testing.T) {
	err := ValidateStruct(models.InsertContactSubmission{
		Email: "sara@example.com",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestValidateContactSubmissionBadEmail(t *testing.T) {
	err := ValidateStruct(models.InsertContactSubmission{
		Name:  "Sara",
		Email: "not-an-email",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email must be a valid email")
}

func TestValidateContactSubmissionMissingEmail(t *testing.T) {
	err := ValidateStruct(models.InsertContactSubmission{
		Name: "Sara",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email is required")
}

func TestValidateDemoRequestOptionalFields(t *testing.T) {
	err := ValidateStruct(models.InsertDemoRequest{
		Name:  "Karim",
		Email: "karim@example.com",
	})
	assert.NoError(t, err)
}
