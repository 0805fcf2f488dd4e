package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yongxin12/Macrohard/internal/domain"
	"github.com/yongxin12/Macrohard/internal/service"
)

// FormHandler handles form vault endpoints.
type FormHandler struct {
	formService service.FormService
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(formService service.FormService) *FormHandler {
	return &FormHandler{formService: formService}
}

// FormFillInput is the request body for POST /forms/document-fill.
type FormFillInput struct {
	SSN      string          `json:"ssn" binding:"required"`
	FormType domain.FormType `json:"form_type" binding:"required"`
}

// InformationInsert handles POST /forms/information-insert
// @Summary Save form data under an SSN
// @Tags forms
// @Accept json
// @Produce json
// @Param input body service.FormInsertInput true "Form data"
// @Success 201 {object} APIResponse
// @Failure 400 {object} APIResponse
// @Security BearerAuth
// @Router /forms/information-insert [post]
func (h *FormHandler) InformationInsert(c *gin.Context) {
	var input service.FormInsertInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	created, err := h.formService.InformationInsert(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	data := gin.H{"message": fmt.Sprintf("%s Form Saved successfully.", input.FormType)}
	if created {
		RespondCreated(c, data)
		return
	}
	RespondOK(c, data)
}

// ContentConfirmation handles GET /forms/content-confirmation?ssn=...&form_type=...
// @Summary Fetch stored form data for an SSN
// @Tags forms
// @Produce json
// @Param ssn query string true "SSN"
// @Param form_type query string true "Form type"
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Security BearerAuth
// @Router /forms/content-confirmation [get]
func (h *FormHandler) ContentConfirmation(c *gin.Context) {
	ssn := c.Query("ssn")
	formType := domain.FormType(c.Query("form_type"))

	info, err := h.formService.ContentConfirmation(c.Request.Context(), ssn, formType)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"form_type": formType,
		"form_info": info,
	})
}

// DocumentFill handles POST /forms/document-fill
// @Summary Fill the PDF template for a stored form and download it
// @Tags forms
// @Accept json
// @Produce application/pdf
// @Param input body FormFillInput true "SSN and form type"
// @Success 200 {file} binary
// @Failure 404 {object} APIResponse
// @Security BearerAuth
// @Router /forms/document-fill [post]
func (h *FormHandler) DocumentFill(c *gin.Context) {
	var input FormFillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	pdf, filename, err := h.formService.DocumentFill(c.Request.Context(), input.SSN, input.FormType)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
