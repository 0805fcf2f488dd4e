package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yongxin12/Macrohard/internal/domain"
	"github.com/yongxin12/Macrohard/internal/middleware"
	"github.com/yongxin12/Macrohard/internal/service"
)

// maxUploadSize caps document uploads at 20MB.
const maxUploadSize = 20 << 20

// DocumentHandler handles document processing endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Process handles POST /api/v1/documents/process
// @Summary Process an uploaded document
// @Description Runs OCR and field extraction on the uploaded file and stores the result
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param client_id formData string true "Client ID"
// @Param document_type formData string true "Document type (i9, schedule_a, tax_1040, job_application, generic)"
// @Param file formData file true "Document file"
// @Success 200 {object} APIResponse{data=domain.Document}
// @Failure 400 {object} APIResponse
// @Router /documents/process [post]
func (h *DocumentHandler) Process(c *gin.Context) {
	clientID := c.PostForm("client_id")
	if clientID == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "client_id is required")
		return
	}
	docType := c.PostForm("document_type")

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > maxUploadSize {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "READ_ERROR", "could not read uploaded file")
		return
	}

	doc, err := h.documentService.Process(c.Request.Context(), service.ProcessInput{
		ClientID:     clientID,
		DocumentType: domain.DocumentType(docType),
		FileName:     header.Filename,
		Content:      content,
		ContentType:  header.Header.Get("Content-Type"),
		ProcessedBy:  middleware.GetUsername(c),
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

// ListForClient handles GET /api/v1/documents/:client_id
// @Summary List a client's processed documents
// @Tags documents
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {object} APIResponse
// @Router /documents/{client_id} [get]
func (h *DocumentHandler) ListForClient(c *gin.Context) {
	clientID := c.Param("client_id")

	docs, source, err := h.documentService.ListForClient(c.Request.Context(), clientID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"client_id": clientID,
		"documents": docs,
		"source":    source,
	})
}

// Get handles GET /api/v1/documents/:client_id/:document_id
// @Summary Get one processed document
// @Tags documents
// @Produce json
// @Param client_id path string true "Client ID"
// @Param document_id path string true "Document ID"
// @Success 200 {object} APIResponse{data=domain.Document}
// @Failure 404 {object} APIResponse
// @Router /documents/{client_id}/{document_id} [get]
func (h *DocumentHandler) Get(c *gin.Context) {
	doc, err := h.documentService.Get(c.Request.Context(), c.Param("document_id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}
