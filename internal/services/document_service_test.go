package services

import (
	"testing"

	"lintar_backend/internal/models"
	"lintar_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentService_UploadAndList(t *testing.T) {
	sc, db := newTestServices(t)

	resp, err := sc.AuthService.Register(db, registerRequest())
	require.NoError(t, err)

	doc, err := sc.DocumentService.Upload(db, resp.User.ID, &dto.UploadDocumentRequest{
		Type: models.DocumentTypePassport, FilePath: "/files/passport.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, models.DocumentStatusPending, doc.Status)

	// Повторная загрузка того же типа заменяет строку
	replaced, err := sc.DocumentService.Upload(db, resp.User.ID, &dto.UploadDocumentRequest{
		Type: models.DocumentTypePassport, FilePath: "/files/passport_v2.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, doc.ID, replaced.ID)

	docs, err := sc.DocumentService.ListByUser(db, resp.User.ID)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "/files/passport_v2.pdf", docs[0].FilePath)
}

func TestDocumentService_UpdateStatus(t *testing.T) {
	sc, db := newTestServices(t)

	resp, err := sc.AuthService.Register(db, registerRequest())
	require.NoError(t, err)

	doc, err := sc.DocumentService.Upload(db, resp.User.ID, &dto.UploadDocumentRequest{
		Type: models.DocumentTypeResume, FilePath: "/files/resume.pdf",
	})
	require.NoError(t, err)

	updated, err := sc.DocumentService.UpdateStatus(db, doc.ID, &dto.UpdateDocumentStatusRequest{
		Status: models.DocumentStatusAccepted,
	})
	require.NoError(t, err)
	assert.Equal(t, models.DocumentStatusAccepted, updated.Status)

	_, err = sc.DocumentService.UpdateStatus(db, 999, &dto.UpdateDocumentStatusRequest{
		Status: models.DocumentStatusAccepted,
	})
	assert.Error(t, err)
}

func TestConsultationService_BookAndLatest(t *testing.T) {
	sc, db := newTestServices(t)

	resp, err := sc.AuthService.Register(db, registerRequest())
	require.NoError(t, err)

	first, err := sc.ConsultationService.Book(db, resp.User.ID, &dto.BookConsultationRequest{
		Date: "2026-09-10", Time: "10:00", Type: models.ConsultationTypeVideo,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ConsultationStatusScheduled, first.Status)

	second, err := sc.ConsultationService.Book(db, resp.User.ID, &dto.BookConsultationRequest{
		Date: "2026-09-20", Time: "16:00", Type: models.ConsultationTypePhone,
	})
	require.NoError(t, err)

	latest, err := sc.ConsultationService.Latest(db, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)

	items, err := sc.ConsultationService.ListByUser(db, resp.User.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestConsultationService_UpdateStatus(t *testing.T) {
	sc, db := newTestServices(t)

	resp, err := sc.AuthService.Register(db, registerRequest())
	require.NoError(t, err)

	booked, err := sc.ConsultationService.Book(db, resp.User.ID, &dto.BookConsultationRequest{
		Date: "2026-09-10", Time: "10:00", Type: models.ConsultationTypeVideo,
	})
	require.NoError(t, err)

	updated, err := sc.ConsultationService.UpdateStatus(db, booked.ID, &dto.UpdateConsultationStatusRequest{
		Status: models.ConsultationStatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ConsultationStatusCompleted, updated.Status)
}
