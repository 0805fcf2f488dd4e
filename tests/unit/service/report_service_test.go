package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yongxin12/Macrohard/internal/domain"
	"github.com/yongxin12/Macrohard/internal/service"
	"github.com/yongxin12/Macrohard/internal/store/sample"
	"github.com/yongxin12/Macrohard/mocks"
)

func TestReportService_SummaryNeverCallsModel(t *testing.T) {
	completer := new(mocks.MockChatCompleter)
	svc := service.NewReportService(sample.NewDirectory(), completer)

	report, err := svc.Generate(context.Background(), "client1", domain.ReportSummary, nil, "")
	require.NoError(t, err)

	completer.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
	assert.Equal(t, domain.ReportSummary, report.ReportType)
	assert.Equal(t, domain.SourceLive, report.Source)
}

func TestReportService_SummaryMetrics(t *testing.T) {
	completer := new(mocks.MockChatCompleter)
	svc := service.NewReportService(sample.NewDirectory(), completer)

	report, err := svc.Generate(context.Background(), "client1", domain.ReportSummary, nil, "")
	require.NoError(t, err)

	// Sample profile: 20 weekly hours at $15.50.
	assert.Equal(t, 80.0, report.Metrics["hours_worked"])
	assert.Equal(t, 1240.0, report.Metrics["wage_earned"])
}

func TestReportService_ReportIDFormat(t *testing.T) {
	completer := new(mocks.MockChatCompleter)
	svc := service.NewReportService(sample.NewDirectory(), completer)

	report, err := svc.Generate(context.Background(), "client1", domain.ReportSummary, nil, "")
	require.NoError(t, err)

	expected := fmt.Sprintf("summary-client1-%s", time.Now().Format("20060102"))
	assert.Equal(t, expected, report.ReportID)
}

func TestReportService_UnknownTypeBecomesSummary(t *testing.T) {
	completer := new(mocks.MockChatCompleter)
	svc := service.NewReportService(sample.NewDirectory(), completer)

	report, err := svc.Generate(context.Background(), "client1", domain.ReportType("quarterly"), nil, "")
	require.NoError(t, err)

	completer.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
	assert.Equal(t, domain.ReportSummary, report.ReportType)
}

func TestReportService_UnknownClient(t *testing.T) {
	completer := new(mocks.MockChatCompleter)
	svc := service.NewReportService(sample.NewDirectory(), completer)

	_, err := svc.Generate(context.Background(), "client999", domain.ReportSummary, nil, "")
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestReportService_DirectoryErrorFallsBackToSampleProfile(t *testing.T) {
	directory := new(mocks.MockClientDirectory)
	directory.On("GetProfile", mock.Anything, "client1").Return(nil, errors.New("firestore unavailable"))

	completer := new(mocks.MockChatCompleter)
	svc := service.NewReportService(directory, completer)

	report, err := svc.Generate(context.Background(), "client1", domain.ReportSummary, nil, "")
	require.NoError(t, err)
	assert.Equal(t, 80.0, report.Metrics["hours_worked"])
}

func TestReportService_NarrativeUsesModelReply(t *testing.T) {
	completer := new(mocks.MockChatCompleter)
	completer.On("Complete", mock.Anything, mock.Anything).Return("# Government Report\n\nAll compliant.", nil)

	svc := service.NewReportService(sample.NewDirectory(), completer)
	report, err := svc.Generate(context.Background(), "client1", domain.ReportGovernment, nil, "user1")
	require.NoError(t, err)

	assert.Equal(t, "# Government Report\n\nAll compliant.", report.Content)
	assert.Equal(t, domain.SourceLive, report.Source)
	assert.Equal(t, "user1", report.GeneratedBy)
	completer.AssertExpectations(t)
}

func TestReportService_NarrativeFallsBackToMockOnModelError(t *testing.T) {
	completer := new(mocks.MockChatCompleter)
	completer.On("Complete", mock.Anything, mock.Anything).Return("", errors.New("model offline"))

	svc := service.NewReportService(sample.NewDirectory(), completer)
	report, err := svc.Generate(context.Background(), "client1", domain.ReportEmployer, nil, "user1")
	require.NoError(t, err)

	assert.Equal(t, domain.SourceFallback, report.Source)
	assert.Equal(t, "model offline", report.Error)
	assert.NotEmpty(t, report.Content)
}

func TestDemoReportService_ServesMockReports(t *testing.T) {
	svc := service.NewDemoReportService()

	for _, rt := range []domain.ReportType{domain.ReportGovernment, domain.ReportEmployer, domain.ReportClient, domain.ReportSummary} {
		report, err := svc.Generate(context.Background(), "client1", rt, nil, "")
		require.NoError(t, err)
		assert.Equal(t, domain.SourceMock, report.Source, "report type %s", rt)
		assert.Equal(t, rt, report.ReportType)
	}
}

func TestDemoReportService_DateRangeDefaultsToTrailing30Days(t *testing.T) {
	svc := service.NewDemoReportService()

	report, err := svc.Generate(context.Background(), "client1", domain.ReportGovernment, nil, "")
	require.NoError(t, err)

	start, err := time.Parse("2006-01-02", report.DateRange.Start)
	require.NoError(t, err)
	end, err := time.Parse("2006-01-02", report.DateRange.End)
	require.NoError(t, err)
	assert.InDelta(t, 30*24.0, end.Sub(start).Hours(), 25.0)
}
