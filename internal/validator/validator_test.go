package validator

import (
	"testing"

	"lintar_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type documentPayload struct {
	Type   models.DocumentType   `json:"type" validate:"required,is-document-type"`
	Status models.DocumentStatus `json:"status" validate:"is-document-status"`
}

type consultationPayload struct {
	Date string                  `json:"date" validate:"required,datetime=2006-01-02"`
	Time string                  `json:"time" validate:"required,datetime=15:04"`
	Type models.ConsultationType `json:"type" validate:"required,is-consultation-type"`
}

func TestValidate_DocumentPayload(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&documentPayload{
		Type:   models.DocumentTypePassport,
		Status: models.DocumentStatusPending,
	}))

	err := v.Validate(&documentPayload{Type: "driving_license"})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "type")

	err = v.Validate(&documentPayload{
		Type:   models.DocumentTypePassport,
		Status: "approved",
	})
	require.Error(t, err)
	vErr = err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "status")
}

func TestValidate_ConsultationPayload(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&consultationPayload{
		Date: "2026-09-15",
		Time: "14:30",
		Type: models.ConsultationTypeVideo,
	}))

	err := v.Validate(&consultationPayload{
		Date: "15.09.2026",
		Time: "14:30",
		Type: models.ConsultationTypeVideo,
	})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "date")

	err = v.Validate(&consultationPayload{
		Date: "2026-09-15",
		Time: "25:99",
		Type: "in_person",
	})
	require.Error(t, err)
	vErr = err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "time")
	assert.Contains(t, vErr.Errors, "type")
}
