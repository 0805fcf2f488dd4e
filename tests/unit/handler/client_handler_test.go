package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yongxin12/Macrohard/internal/domain"
	"github.com/yongxin12/Macrohard/internal/handler"
	"github.com/yongxin12/Macrohard/mocks"
)

func TestClientHandler_List(t *testing.T) {
	mockClients := new(mocks.MockClientService)
	h := handler.NewClientHandler(mockClients)

	roster := []*domain.Client{
		{ID: "client1", Name: "John Doe"},
		{ID: "client2", Name: "Jane Smith"},
	}
	mockClients.On("List", mock.Anything).Return(roster, domain.SourceMock, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/clients", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "mock", data["source"])
	assert.Len(t, data["clients"], 2)
}

func TestClientHandler_Get_NotFound(t *testing.T) {
	mockClients := new(mocks.MockClientService)
	h := handler.NewClientHandler(mockClients)

	mockClients.On("Get", mock.Anything, "nope").Return(nil, domain.ErrClientNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/clients/nope", nil)
	c.Params = gin.Params{{Key: "client_id", Value: "nope"}}

	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "CLIENT_NOT_FOUND", resp.Error.Code)
}

func TestClientHandler_Get_Success(t *testing.T) {
	mockClients := new(mocks.MockClientService)
	h := handler.NewClientHandler(mockClients)

	client := &domain.Client{ID: "client1", Name: "John Doe", JobStatus: "employed"}
	mockClients.On("Get", mock.Anything, "client1").Return(client, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/clients/client1", nil)
	c.Params = gin.Params{{Key: "client_id", Value: "client1"}}

	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "John Doe", data["name"])
}
