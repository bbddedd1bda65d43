package handlers

import (
	"net/http"

	"lintar_backend/internal/services"
	"lintar_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ConsultationHandler struct {
	*BaseHandler
	consultationService services.ConsultationService
}

func NewConsultationHandler(base *BaseHandler, consultationService services.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{
		BaseHandler:         base,
		consultationService: consultationService,
	}
}

// Book - запись текущего клиента на консультацию
func (h *ConsultationHandler) Book(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.BookConsultationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	consultation, err := h.consultationService.Book(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, consultation)
}

// List - все консультации текущего клиента
func (h *ConsultationHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	items, err := h.consultationService.ListByUser(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"consultations": items})
}

// Latest - последняя запись текущего клиента
func (h *ConsultationHandler) Latest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	consultation, err := h.consultationService.Latest(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, consultation)
}
