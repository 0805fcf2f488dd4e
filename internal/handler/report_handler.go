package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yongxin12/Macrohard/internal/domain"
	"github.com/yongxin12/Macrohard/internal/middleware"
	"github.com/yongxin12/Macrohard/internal/port"
	"github.com/yongxin12/Macrohard/internal/service"
	"github.com/yongxin12/Macrohard/internal/xlsxexport"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler handles report generation, export, and delivery endpoints.
type ReportHandler struct {
	reportService service.ReportService
	emailSender   port.EmailSender
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService, emailSender port.EmailSender) *ReportHandler {
	return &ReportHandler{reportService: reportService, emailSender: emailSender}
}

// GenerateInput is the request body for report endpoints.
type GenerateInput struct {
	ClientID   string            `json:"client_id" binding:"required"`
	ReportType domain.ReportType `json:"report_type" binding:"required"`
	DateRange  *domain.DateRange `json:"date_range"`
}

// SendInput is the request body for POST /reports/send.
type SendInput struct {
	GenerateInput
	To string `json:"to" binding:"required,email"`
}

// Generate handles POST /api/v1/reports/generate
// @Summary Generate a progress report
// @Tags reports
// @Accept json
// @Produce json
// @Param input body GenerateInput true "Report request"
// @Success 200 {object} APIResponse{data=domain.Report}
// @Failure 404 {object} APIResponse
// @Router /reports/generate [post]
func (h *ReportHandler) Generate(c *gin.Context) {
	var input GenerateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	report, err := h.reportService.Generate(c.Request.Context(), input.ClientID, input.ReportType, input.DateRange, middleware.GetUsername(c))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"report": report})
}

// Export handles POST /api/v1/reports/export
// @Summary Generate a report and download it as a spreadsheet
// @Tags reports
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param input body GenerateInput true "Report request"
// @Success 200 {file} binary
// @Failure 404 {object} APIResponse
// @Router /reports/export [post]
func (h *ReportHandler) Export(c *gin.Context) {
	var input GenerateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	report, err := h.reportService.Generate(c.Request.Context(), input.ClientID, input.ReportType, input.DateRange, middleware.GetUsername(c))
	if err != nil {
		HandleError(c, err)
		return
	}

	workbook, err := xlsxexport.Workbook(input.ClientID, []*domain.Report{report})
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("reports-%s.xlsx", input.ClientID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, workbook)
}

// Send handles POST /api/v1/reports/send
// @Summary Generate a report and email it as a spreadsheet attachment
// @Tags reports
// @Accept json
// @Produce json
// @Param input body SendInput true "Report request with recipient"
// @Success 200 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /reports/send [post]
func (h *ReportHandler) Send(c *gin.Context) {
	var input SendInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	report, err := h.reportService.Generate(c.Request.Context(), input.ClientID, input.ReportType, input.DateRange, middleware.GetUsername(c))
	if err != nil {
		HandleError(c, err)
		return
	}

	workbook, err := xlsxexport.Workbook(input.ClientID, []*domain.Report{report})
	if err != nil {
		HandleError(c, err)
		return
	}

	subject := fmt.Sprintf("Progress report %s", report.ReportID)
	body := fmt.Sprintf("Attached is the %s report for client %s covering %s to %s.",
		report.ReportType, report.ClientID, report.DateRange.Start, report.DateRange.End)
	filename := fmt.Sprintf("%s.xlsx", report.ReportID)

	if err := h.emailSender.Send(c.Request.Context(), input.To, subject, body, filename, workbook); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"report_id": report.ReportID,
		"sent_to":   input.To,
	})
}
