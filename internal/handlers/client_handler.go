package handlers

import (
	"net/http"

	"lintar_backend/internal/services"
	"lintar_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ClientHandler обслуживает шаги анкеты: квиз и выбор вакансии
type ClientHandler struct {
	*BaseHandler
	clientService services.ClientService
}

func NewClientHandler(base *BaseHandler, clientService services.ClientService) *ClientHandler {
	return &ClientHandler{
		BaseHandler:   base,
		clientService: clientService,
	}
}

func (h *ClientHandler) SaveQuizAnswers(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SaveQuizAnswersRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	answers, err := h.clientService.SaveQuizAnswers(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"answers": answers})
}

func (h *ClientHandler) ListQuizAnswers(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	answers, err := h.clientService.ListQuizAnswers(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"answers": answers})
}

func (h *ClientHandler) SelectJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SelectJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.clientService.SelectJob(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *ClientHandler) GetSelectedJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	job, err := h.clientService.GetSelectedJob(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}
