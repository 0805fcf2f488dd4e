package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yongxin12/Macrohard/internal/middleware"
	"github.com/yongxin12/Macrohard/internal/service"
)

// AssistantHandler handles assistant endpoints.
type AssistantHandler struct {
	assistantService service.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(assistantService service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// QueryInput is the request body for POST /assistant/query.
type QueryInput struct {
	Query    string `json:"query" binding:"required"`
	ClientID string `json:"client_id"`
}

// TaskBreakdownInput is the request body for POST /assistant/task-breakdown.
type TaskBreakdownInput struct {
	TaskDescription string `json:"task_description" binding:"required"`
	ClientID        string `json:"client_id"`
}

// Query handles POST /api/v1/assistant/query
// @Summary Ask the job coach assistant a question
// @Tags assistant
// @Accept json
// @Produce json
// @Param input body QueryInput true "Question"
// @Success 200 {object} APIResponse{data=domain.AssistantTurn}
// @Router /assistant/query [post]
func (h *AssistantHandler) Query(c *gin.Context) {
	var input QueryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	turn, err := h.assistantService.Query(c.Request.Context(), input.Query, input.ClientID, middleware.GetUsername(c))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, turn)
}

// TaskBreakdown handles POST /api/v1/assistant/task-breakdown
// @Summary Break a job task into visual steps
// @Tags assistant
// @Accept json
// @Produce json
// @Param input body TaskBreakdownInput true "Task description"
// @Success 200 {object} APIResponse
// @Router /assistant/task-breakdown [post]
func (h *AssistantHandler) TaskBreakdown(c *gin.Context) {
	var input TaskBreakdownInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	steps, err := h.assistantService.TaskBreakdown(c.Request.Context(), input.TaskDescription, input.ClientID, middleware.GetUsername(c))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"task_description": input.TaskDescription,
		"steps":            steps,
	})
}
