package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yongxin12/Macrohard/internal/llm"
	"github.com/yongxin12/Macrohard/internal/service"
	"github.com/yongxin12/Macrohard/mocks"
)

func TestDemoAssistant_I9Keyword(t *testing.T) {
	svc := service.NewDemoAssistantService()

	turn, err := svc.Query(context.Background(), "How do I fill out an I9 form?", "client1", "")
	require.NoError(t, err)
	assert.Equal(t, "To help your client complete the I-9 form:\n\n1. Ensure they bring identification documents (List A or Lists B & C)\n2. Complete Section 1 together\n3. Explain that the employer will complete Section 2\n4. Make sure they understand the attestation they are signing", turn.ResponseText)
	assert.Equal(t, "client1", turn.ClientID)
	assert.Empty(t, turn.Error)
}

func TestDemoAssistant_KeywordMatchingIsCaseInsensitive(t *testing.T) {
	svc := service.NewDemoAssistantService()

	upper, err := svc.Query(context.Background(), "Tell me about the I9", "", "")
	require.NoError(t, err)
	lower, err := svc.Query(context.Background(), "tell me about the i9", "", "")
	require.NoError(t, err)
	assert.Equal(t, upper.ResponseText, lower.ResponseText)
}

func TestDemoAssistant_GenericFallback(t *testing.T) {
	svc := service.NewDemoAssistantService()

	turn, err := svc.Query(context.Background(), "what is the weather today", "", "")
	require.NoError(t, err)
	assert.Equal(t, "I can provide guidance on completing government forms, suggesting reasonable accommodations, job coaching strategies, and supporting clients with specific disabilities. How can I assist you with your client today?", turn.ResponseText)
}

func TestLiveAssistant_ReturnsModelReply(t *testing.T) {
	completer := new(mocks.MockChatCompleter)
	completer.On("Complete", mock.Anything, mock.Anything).Return("Practice the greeting script daily.", nil)

	svc := service.NewAssistantService(completer)
	turn, err := svc.Query(context.Background(), "How to train greeting customers?", "client2", "")
	require.NoError(t, err)
	assert.Equal(t, "Practice the greeting script daily.", turn.ResponseText)
	assert.Empty(t, turn.Error)
	completer.AssertExpectations(t)
}

func TestLiveAssistant_ApologyOnCompleterError(t *testing.T) {
	completer := new(mocks.MockChatCompleter)
	completer.On("Complete", mock.Anything, mock.Anything).Return("", errors.New("upstream unavailable"))

	svc := service.NewAssistantService(completer)
	turn, err := svc.Query(context.Background(), "anything", "", "")
	require.NoError(t, err)
	assert.Contains(t, turn.ResponseText, "I apologize, but there was an error processing your request.")
	assert.Contains(t, turn.ResponseText, "upstream unavailable")
	assert.Equal(t, "upstream unavailable", turn.Error)
}

func TestLiveAssistant_RetriesExhaustAfterFiveAttempts(t *testing.T) {
	inner := new(mocks.MockChatCompleter)
	inner.On("Complete", mock.Anything, mock.Anything).Return("", errors.New("persistent failure"))

	policy := llm.RetryPolicy{
		MaxAttempts:   5,
		RateLimitBase: time.Millisecond,
		BackoffBase:   time.Millisecond,
	}
	svc := service.NewAssistantService(llm.NewRetryingCompleter(inner, policy))

	turn, err := svc.Query(context.Background(), "anything", "", "")
	require.NoError(t, err)

	inner.AssertNumberOfCalls(t, "Complete", 5)
	assert.Contains(t, turn.ResponseText, "persistent failure")
	assert.Contains(t, turn.Error, "after 5 attempts")
}

func TestLiveAssistant_TaskBreakdownParsesJSON(t *testing.T) {
	completer := new(mocks.MockChatCompleter)
	completer.On("Complete", mock.Anything, mock.Anything).
		Return(`[{"step_number":1,"instruction":"Put on your apron.","visual_description":"A person tying an apron."}]`, nil)

	svc := service.NewAssistantService(completer)
	steps, err := svc.TaskBreakdown(context.Background(), "start a shift", "", "")
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, "Put on your apron.", steps[0].Instruction)
}

func TestLiveAssistant_TaskBreakdownFallsBackToMockOnUnparseableReply(t *testing.T) {
	completer := new(mocks.MockChatCompleter)
	completer.On("Complete", mock.Anything, mock.Anything).
		Return("Sure! Here is some prose without any structure.", nil)

	svc := service.NewAssistantService(completer)
	steps, err := svc.TaskBreakdown(context.Background(), "stock shelves", "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, steps)
	for _, s := range steps {
		assert.NotEmpty(t, s.Instruction)
	}
}

func TestLiveAssistant_TaskBreakdownApologyStepOnError(t *testing.T) {
	completer := new(mocks.MockChatCompleter)
	completer.On("Complete", mock.Anything, mock.Anything).Return("", errors.New("timeout"))

	svc := service.NewAssistantService(completer)
	steps, err := svc.TaskBreakdown(context.Background(), "anything", "", "")
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, 1, steps[0].StepNumber)
	assert.Contains(t, steps[0].Instruction, "I'm sorry")
	assert.Equal(t, "timeout", steps[0].Error)
}
