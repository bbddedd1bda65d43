package handlers

import (
	"net/http"

	"lintar_backend/internal/services"
	"lintar_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ManagerHandler - разбор клиентской базы и решения по заявкам
type ManagerHandler struct {
	*BaseHandler
	clientService       services.ClientService
	documentService     services.DocumentService
	consultationService services.ConsultationService
}

func NewManagerHandler(
	base *BaseHandler,
	clientService services.ClientService,
	documentService services.DocumentService,
	consultationService services.ConsultationService,
) *ManagerHandler {
	return &ManagerHandler{
		BaseHandler:         base,
		clientService:       clientService,
		documentService:     documentService,
		consultationService: consultationService,
	}
}

func (h *ManagerHandler) ListClients(c *gin.Context) {
	db := h.GetDB(c)

	clients, err := h.clientService.ListClients(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

func (h *ManagerHandler) GetClientDetail(c *gin.Context) {
	clientID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db := h.GetDB(c)

	detail, err := h.clientService.GetClientDetail(db, clientID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *ManagerHandler) UpdateDocumentStatus(c *gin.Context) {
	documentID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateDocumentStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	doc, err := h.documentService.UpdateStatus(db, documentID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

func (h *ManagerHandler) UpdateConsultationStatus(c *gin.Context) {
	consultationID, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateConsultationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	consultation, err := h.consultationService.UpdateStatus(db, consultationID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, consultation)
}
