package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yongxin12/Macrohard/internal/domain"
	"github.com/yongxin12/Macrohard/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, input service.LoginInput) (*service.Token, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Token), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

// MockClientService is a mock implementation of service.ClientService.
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) List(ctx context.Context) ([]*domain.Client, domain.DataSource, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Get(1).(domain.DataSource), args.Error(2)
	}
	return args.Get(0).([]*domain.Client), args.Get(1).(domain.DataSource), args.Error(2)
}

func (m *MockClientService) Get(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

// MockDocumentService is a mock implementation of service.DocumentService.
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Process(ctx context.Context, input service.ProcessInput) (*domain.Document, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) ListForClient(ctx context.Context, clientID string) ([]*domain.Document, domain.DataSource, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(domain.DataSource), args.Error(2)
	}
	return args.Get(0).([]*domain.Document), args.Get(1).(domain.DataSource), args.Error(2)
}

func (m *MockDocumentService) Get(ctx context.Context, documentID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

// MockAssistantService is a mock implementation of service.AssistantService.
type MockAssistantService struct {
	mock.Mock
}

func (m *MockAssistantService) Query(ctx context.Context, query, clientID, userID string) (*domain.AssistantTurn, error) {
	args := m.Called(ctx, query, clientID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssistantTurn), args.Error(1)
}

func (m *MockAssistantService) TaskBreakdown(ctx context.Context, taskDescription, clientID, userID string) ([]domain.TaskStep, error) {
	args := m.Called(ctx, taskDescription, clientID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaskStep), args.Error(1)
}

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Generate(ctx context.Context, clientID string, reportType domain.ReportType, dateRange *domain.DateRange, userID string) (*domain.Report, error) {
	args := m.Called(ctx, clientID, reportType, dateRange, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

// MockFormService is a mock implementation of service.FormService.
type MockFormService struct {
	mock.Mock
}

func (m *MockFormService) InformationInsert(ctx context.Context, in service.FormInsertInput) (bool, error) {
	args := m.Called(ctx, in)
	return args.Bool(0), args.Error(1)
}

func (m *MockFormService) ContentConfirmation(ctx context.Context, ssn string, formType domain.FormType) (map[string]string, error) {
	args := m.Called(ctx, ssn, formType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockFormService) DocumentFill(ctx context.Context, ssn string, formType domain.FormType) ([]byte, string, error) {
	args := m.Called(ctx, ssn, formType)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}
