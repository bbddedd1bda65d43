package services

import (
	"testing"

	"lintar_backend/internal/models"
	"lintar_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientService_SaveQuizAnswers(t *testing.T) {
	sc, db := newTestServices(t)

	resp, err := sc.AuthService.Register(db, registerRequest())
	require.NoError(t, err)

	answers, err := sc.ClientService.SaveQuizAnswers(db, resp.User.ID, &dto.SaveQuizAnswersRequest{
		Answers: []dto.QuizAnswerItem{
			{QuestionID: "q1", Answer: "yes"},
			{QuestionID: "q2", Answer: "germany"},
		},
	})
	require.NoError(t, err)
	assert.Len(t, answers, 2)

	// Переотправка ответа на тот же вопрос не плодит строк
	answers, err = sc.ClientService.SaveQuizAnswers(db, resp.User.ID, &dto.SaveQuizAnswersRequest{
		Answers: []dto.QuizAnswerItem{{QuestionID: "q1", Answer: "no"}},
	})
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, "no", answers[0].Answer)
}

func TestClientService_SelectJob(t *testing.T) {
	sc, db := newTestServices(t)

	resp, err := sc.AuthService.Register(db, registerRequest())
	require.NoError(t, err)

	job, err := sc.ClientService.SelectJob(db, resp.User.ID, &dto.SelectJobRequest{
		JobID: "job-1", JobTitle: "Welder",
	})
	require.NoError(t, err)
	assert.Equal(t, "Welder", job.JobTitle)

	job, err = sc.ClientService.SelectJob(db, resp.User.ID, &dto.SelectJobRequest{
		JobID: "job-2", JobTitle: "Driver",
	})
	require.NoError(t, err)
	assert.Equal(t, "Driver", job.JobTitle)

	var count int64
	require.NoError(t, db.Model(&models.SelectedJob{}).
		Where("user_id = ?", resp.User.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestClientService_ListClients(t *testing.T) {
	sc, db := newTestServices(t)

	resp, err := sc.AuthService.Register(db, registerRequest())
	require.NoError(t, err)

	_, err = sc.DocumentService.Upload(db, resp.User.ID, &dto.UploadDocumentRequest{
		Type: models.DocumentTypePassport, FilePath: "/files/passport.pdf",
	})
	require.NoError(t, err)

	_, err = sc.ClientService.SelectJob(db, resp.User.ID, &dto.SelectJobRequest{
		JobID: "job-1", JobTitle: "Welder",
	})
	require.NoError(t, err)

	clients, err := sc.ClientService.ListClients(db)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "jane@x.com", clients[0].User.Email)
	assert.Equal(t, 1, clients[0].DocumentCount)
	assert.False(t, clients[0].HasConsultation)
	assert.Equal(t, "Welder", clients[0].SelectedJobTitle)
}

func TestClientService_GetClientDetail(t *testing.T) {
	sc, db := newTestServices(t)

	req := registerRequest()
	req.QuizAnswers = []dto.QuizAnswerItem{{QuestionID: "q1", Answer: "yes"}}
	resp, err := sc.AuthService.Register(db, req)
	require.NoError(t, err)

	_, err = sc.DocumentService.Upload(db, resp.User.ID, &dto.UploadDocumentRequest{
		Type: models.DocumentTypePassport, FilePath: "/files/passport.pdf",
	})
	require.NoError(t, err)

	_, err = sc.ConsultationService.Book(db, resp.User.ID, &dto.BookConsultationRequest{
		Date: "2026-09-15", Time: "14:30", Type: models.ConsultationTypeVideo,
	})
	require.NoError(t, err)

	detail, err := sc.ClientService.GetClientDetail(db, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", detail.User.Email)
	assert.Len(t, detail.Documents, 1)
	assert.Len(t, detail.Consultations, 1)
	assert.Len(t, detail.QuizAnswers, 1)
	assert.Nil(t, detail.SelectedJob)
}

func TestClientService_GetClientDetail_NotFound(t *testing.T) {
	sc, db := newTestServices(t)

	_, err := sc.ClientService.GetClientDetail(db, 999)
	assert.Error(t, err)
}
