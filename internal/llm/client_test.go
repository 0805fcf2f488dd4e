package llm_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yongxin12/Macrohard/internal/config"
	"github.com/yongxin12/Macrohard/internal/llm"
	"github.com/yongxin12/Macrohard/internal/port"
)

func newTestClient(serverURL string) *llm.Client {
	cfg := &config.OpenAIConfig{
		Key:         "test-api-key",
		Deployment:  "gpt-4",
		APIVersion:  "2023-07-01-preview",
		MaxTokens:   250,
		TimeoutSecs: 30,
	}
	return llm.NewClientWithEndpoint(cfg, serverURL)
}

func successResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": "stop",
			},
		},
	}
}

func TestClient_Complete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-api-key", r.Header.Get("api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "/openai/deployments/gpt-4/chat/completions", r.URL.Path)
		assert.Equal(t, "2023-07-01-preview", r.URL.Query().Get("api-version"))

		var reqBody map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&reqBody)
		assert.NoError(t, err)
		assert.Equal(t, 0.7, reqBody["temperature"])
		assert.Equal(t, float64(250), reqBody["max_tokens"])

		messages := reqBody["messages"].([]interface{})
		assert.Len(t, messages, 2)
		sys := messages[0].(map[string]interface{})
		assert.Equal(t, "system", sys["role"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse("  Here is some advice.  "))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	reply, err := client.Complete(context.Background(), []port.ChatMessage{
		{Role: "system", Content: "You are a helpful job coach assistant."},
		{Role: "user", Content: "How do I fill out an I-9?"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Here is some advice.", reply)
}

func TestClient_Complete_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":"429"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Complete(context.Background(), []port.ChatMessage{
		{Role: "user", Content: "hello"},
	})

	require.Error(t, err)
	var rle *llm.RateLimitError
	require.ErrorAs(t, err, &rle)
	assert.Equal(t, float64(30), rle.RetryAfter.Seconds())
}

func TestClient_Complete_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Complete(context.Background(), []port.ChatMessage{
		{Role: "user", Content: "hello"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	var rle *llm.RateLimitError
	assert.False(t, errors.As(err, &rle))
}
