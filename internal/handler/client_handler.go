package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yongxin12/Macrohard/internal/service"
)

// ClientHandler handles client roster endpoints.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// List handles GET /api/v1/clients
// @Summary List clients
// @Tags clients
// @Produce json
// @Success 200 {object} APIResponse
// @Router /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	clients, source, err := h.clientService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"clients": clients,
		"source":  source,
	})
}

// Get handles GET /api/v1/clients/:client_id
// @Summary Get one client
// @Tags clients
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {object} APIResponse{data=domain.Client}
// @Failure 404 {object} APIResponse
// @Router /clients/{client_id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.clientService.Get(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, client)
}
