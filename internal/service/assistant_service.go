package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/yongxin12/Macrohard/internal/domain"
	"github.com/yongxin12/Macrohard/internal/port"
	"github.com/yongxin12/Macrohard/internal/steps"
)

// AssistantService defines the coaching assistant contract.
type AssistantService interface {
	Query(ctx context.Context, query, clientID, userID string) (*domain.AssistantTurn, error)
	TaskBreakdown(ctx context.Context, taskDescription, clientID, userID string) ([]domain.TaskStep, error)
}

// demoAssistant answers from a fixed keyword table. No model is ever called.
type demoAssistant struct{}

// NewDemoAssistantService creates the canned-response assistant used in demo
// mode.
func NewDemoAssistantService() AssistantService {
	return &demoAssistant{}
}

func (demoAssistant) Query(_ context.Context, query, clientID, _ string) (*domain.AssistantTurn, error) {
	lower := strings.ToLower(query)
	var response string
	switch {
	case strings.Contains(lower, "i9"):
		response = "To help your client complete the I-9 form:\n\n1. Ensure they bring identification documents (List A or Lists B & C)\n2. Complete Section 1 together\n3. Explain that the employer will complete Section 2\n4. Make sure they understand the attestation they are signing"
	case strings.Contains(lower, "schedule a"):
		response = "A Schedule A letter should include:\n\n1. Confirmation of the individual's disability\n2. Description of how the disability affects major life activities\n3. Statement that the person can perform the essential job functions\n4. Signature from a licensed professional"
	case strings.Contains(lower, "accommodation"):
		response = "Common reasonable accommodations include:\n\n1. Flexible work schedules\n2. Modified equipment or devices\n3. Accessible workspaces\n4. Job restructuring\n5. Communication aids\n\nAlways focus on the individual's specific needs."
	case strings.Contains(lower, "retail"):
		response = "Strategies for supporting a client in a retail position:\n\n1. Develop visual guides for tasks\n2. Practice customer service scripts\n3. Create a structured routine\n4. Identify a workplace mentor\n5. Schedule regular check-ins\n6. Use assistive technology if needed"
	default:
		response = "I can provide guidance on completing government forms, suggesting reasonable accommodations, job coaching strategies, and supporting clients with specific disabilities. How can I assist you with your client today?"
	}

	return &domain.AssistantTurn{
		Query:        query,
		ClientID:     clientID,
		ResponseText: response,
	}, nil
}

func (demoAssistant) TaskBreakdown(_ context.Context, taskDescription, _, _ string) ([]domain.TaskStep, error) {
	return mockTaskBreakdown(taskDescription), nil
}

// liveAssistant drives a chat completer. The completer is expected to carry
// its own retry behavior.
type liveAssistant struct {
	completer port.ChatCompleter
}

// NewAssistantService creates the model-backed assistant.
func NewAssistantService(completer port.ChatCompleter) AssistantService {
	return &liveAssistant{completer: completer}
}

func (s *liveAssistant) Query(ctx context.Context, query, clientID, _ string) (*domain.AssistantTurn, error) {
	systemPrompt := "You are a helpful job coach assistant. Keep answers brief and practical."
	if clientID != "" {
		systemPrompt += fmt.Sprintf(" Helping client ID: %s.", clientID)
	}

	reply, err := s.completer.Complete(ctx, []port.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: query},
	})
	if err != nil {
		log.Printf("assistantService.Query: completion failed: %v", err)
		return &domain.AssistantTurn{
			Query:        query,
			ClientID:     clientID,
			ResponseText: fmt.Sprintf("I apologize, but there was an error processing your request. Please try again later. Error: %v", err),
			Error:        err.Error(),
		}, nil
	}

	return &domain.AssistantTurn{
		Query:        query,
		ClientID:     clientID,
		ResponseText: reply,
	}, nil
}

func (s *liveAssistant) TaskBreakdown(ctx context.Context, taskDescription, _, _ string) ([]domain.TaskStep, error) {
	systemPrompt := "You are a helpful assistant that breaks down complex tasks into simple, " +
		"clear steps for individuals with intellectual disabilities. For each step, provide:\n" +
		"1. A short, simple instruction (1-2 sentences max)\n" +
		"2. A visual description that could be used to generate an image\n" +
		"Keep language simple and concrete. Avoid abstract concepts or complex terminology.\n" +
		"Format your response as a JSON array of steps."

	reply, err := s.completer.Complete(ctx, []port.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: "Break down this task into simple steps: " + taskDescription},
	})
	if err != nil {
		log.Printf("assistantService.TaskBreakdown: completion failed: %v", err)
		return []domain.TaskStep{{
			StepNumber:  1,
			Instruction: "I'm sorry, I encountered an error breaking down this task. Please try again later.",
			Error:       err.Error(),
		}}, nil
	}

	parsed, ok := steps.Parse(reply)
	if !ok {
		log.Printf("assistantService.TaskBreakdown: could not parse model reply, serving mock breakdown")
		return mockTaskBreakdown(taskDescription), nil
	}
	return parsed, nil
}

// mockTaskBreakdown returns canned breakdowns for familiar task categories.
func mockTaskBreakdown(taskDescription string) []domain.TaskStep {
	lower := strings.ToLower(taskDescription)
	switch {
	case strings.Contains(lower, "cashier"):
		return []domain.TaskStep{
			{StepNumber: 1, Instruction: "Greet the customer with a smile and say 'Hello'.", VisualDescription: "Person smiling and waving at a customer approaching the counter."},
			{StepNumber: 2, Instruction: "Scan each item by moving it over the scanner. Listen for the beep.", VisualDescription: "Hands holding an item and passing it over a barcode scanner with a visible red light."},
			{StepNumber: 3, Instruction: "Tell the customer the total amount to pay.", VisualDescription: "Person pointing to the display screen showing the total price."},
			{StepNumber: 4, Instruction: "Take the customer's money or card.", VisualDescription: "Hands receiving cash or a credit card from a customer."},
			{StepNumber: 5, Instruction: "If they pay with cash, count out their change carefully.", VisualDescription: "Hands counting dollar bills and coins from a cash register drawer."},
			{StepNumber: 6, Instruction: "Put the items in a bag.", VisualDescription: "Hands placing purchased items into a shopping bag."},
			{StepNumber: 7, Instruction: "Hand the bag and receipt to the customer. Say 'Thank you'.", VisualDescription: "Person smiling and handing a bag and receipt to the customer."},
		}
	case strings.Contains(lower, "cleaning"):
		return []domain.TaskStep{
			{StepNumber: 1, Instruction: "Get your cleaning supplies: spray bottle, cloth, and gloves.", VisualDescription: "Cleaning supplies neatly arranged - spray bottle, microfiber cloth, and rubber gloves."},
			{StepNumber: 2, Instruction: "Put on your gloves to protect your hands.", VisualDescription: "Hands putting on rubber gloves."},
			{StepNumber: 3, Instruction: "Spray the cleaner on the surface you want to clean.", VisualDescription: "Hand holding spray bottle and spraying cleaner on a counter surface."},
			{StepNumber: 4, Instruction: "Wipe the surface with your cloth in circles.", VisualDescription: "Hand wiping a surface with a cloth in a circular motion."},
			{StepNumber: 5, Instruction: "Check if the surface looks clean. If not, spray and wipe again.", VisualDescription: "Person looking closely at a surface to check if it's clean."},
			{StepNumber: 6, Instruction: "When finished, put away your supplies.", VisualDescription: "Hands placing cleaning supplies back in a storage container."},
		}
	default:
		return []domain.TaskStep{
			{StepNumber: 1, Instruction: "Get ready for the task by gathering what you need.", VisualDescription: "Person standing by a table with various tools or supplies needed for the task."},
			{StepNumber: 2, Instruction: "Start with the first part of the task. Take your time.", VisualDescription: "Person calmly beginning the first step of a process, focused on the task."},
			{StepNumber: 3, Instruction: "Move to the next part when you're ready.", VisualDescription: "Person moving from one completed task to the next step."},
			{StepNumber: 4, Instruction: "Ask for help if you need it.", VisualDescription: "Person raising hand or approaching another person to ask a question."},
			{StepNumber: 5, Instruction: "Check your work when you finish.", VisualDescription: "Person reviewing completed work with a satisfied expression."},
		}
	}
}
