package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/yongxin12/Macrohard/internal/domain"
	"github.com/yongxin12/Macrohard/internal/port"
	"github.com/yongxin12/Macrohard/internal/store/sample"
)

// reportIDPrefixes keeps report ids short and recognizable at a glance.
var reportIDPrefixes = map[domain.ReportType]string{
	domain.ReportGovernment: "gov",
	domain.ReportEmployer:   "emp",
	domain.ReportClient:     "client",
	domain.ReportSummary:    "summary",
}

// ReportService defines the report generation contract.
type ReportService interface {
	Generate(ctx context.Context, clientID string, reportType domain.ReportType, dateRange *domain.DateRange, userID string) (*domain.Report, error)
}

// demoReportService serves the canned per-kind reports.
type demoReportService struct{}

// NewDemoReportService creates the mock report generator used in demo mode.
func NewDemoReportService() ReportService {
	return &demoReportService{}
}

func (demoReportService) Generate(_ context.Context, clientID string, reportType domain.ReportType, dateRange *domain.DateRange, userID string) (*domain.Report, error) {
	rt := reportType
	if !domain.KnownReportTypes[rt] {
		rt = domain.ReportSummary
	}
	report := mockReport(clientID, rt, normalizeDateRange(dateRange))
	report.GeneratedBy = userID
	return report, nil
}

// reportService assembles live reports from the client profile, calling the
// model for the narrative kinds. Summary reports are pure computation.
type reportService struct {
	directory port.ClientDirectory
	completer port.ChatCompleter
}

// NewReportService creates the live report generator.
func NewReportService(directory port.ClientDirectory, completer port.ChatCompleter) ReportService {
	return &reportService{directory: directory, completer: completer}
}

func (s *reportService) Generate(ctx context.Context, clientID string, reportType domain.ReportType, dateRange *domain.DateRange, userID string) (*domain.Report, error) {
	rt := reportType
	if !domain.KnownReportTypes[rt] {
		rt = domain.ReportSummary
	}
	dr := normalizeDateRange(dateRange)

	profile, err := s.profile(ctx, clientID)
	if err != nil {
		return nil, err
	}

	switch rt {
	case domain.ReportSummary:
		return s.summaryReport(clientID, profile, dr, userID), nil
	default:
		return s.narrativeReport(ctx, clientID, profile, rt, dr, userID), nil
	}
}

// profile fetches the client data set, falling back to the sample profile
// when the directory is unreachable. Unknown clients stay unknown.
func (s *reportService) profile(ctx context.Context, clientID string) (*domain.ClientProfile, error) {
	profile, err := s.directory.GetProfile(ctx, clientID)
	if err == nil {
		return profile, nil
	}
	if errors.Is(err, domain.ErrClientNotFound) {
		if p, sampleErr := sample.NewDirectory().GetProfile(ctx, clientID); sampleErr == nil {
			return p, nil
		}
		return nil, domain.ErrClientNotFound
	}

	log.Printf("reportService: directory error for %s, trying sample profile: %v", clientID, err)
	p, sampleErr := sample.NewDirectory().GetProfile(ctx, clientID)
	if sampleErr != nil {
		return nil, domain.ErrClientNotFound
	}
	return p, nil
}

func (s *reportService) narrativeReport(ctx context.Context, clientID string, profile *domain.ClientProfile, rt domain.ReportType, dr domain.DateRange, userID string) *domain.Report {
	systemMsg := narrativeSystemMessages[rt]
	userMsg := fmt.Sprintf("Generate a %s report for the period %s to %s using this client data: %s",
		rt, dr.Start, dr.End, clientSummary(profile, rt))

	content, err := s.completer.Complete(ctx, []port.ChatMessage{
		{Role: "system", Content: systemMsg},
		{Role: "user", Content: userMsg},
	})
	if err != nil {
		log.Printf("reportService: %s report generation failed for %s, serving mock: %v", rt, clientID, err)
		report := mockReport(clientID, rt, dr)
		report.GeneratedBy = userID
		report.Source = domain.SourceFallback
		report.Error = err.Error()
		return report
	}

	report := &domain.Report{
		ReportID:    reportID(rt, clientID),
		ClientID:    clientID,
		ClientName:  profile.Name,
		ReportType:  rt,
		DateRange:   dr,
		GeneratedAt: time.Now().UTC(),
		GeneratedBy: userID,
		Content:     content,
		Metrics:     narrativeMetrics(rt, profile),
		Source:      domain.SourceLive,
	}
	return report
}

func (s *reportService) summaryReport(clientID string, profile *domain.ClientProfile, dr domain.DateRange, userID string) *domain.Report {
	hoursWorked := profile.WorkHours * 4 // approximation for a month
	wageEarned := hoursWorked * profile.Wage

	return &domain.Report{
		ReportID:    reportID(domain.ReportSummary, clientID),
		ClientID:    clientID,
		ClientName:  profile.Name,
		ReportType:  domain.ReportSummary,
		DateRange:   dr,
		GeneratedAt: time.Now().UTC(),
		GeneratedBy: userID,
		Content: map[string]interface{}{
			"employment_status": "Employed",
			"job_title":         profile.JobTitle,
			"employer":          profile.Employer,
			"start_date":        profile.StartDate,
			"work_hours":        profile.WorkHours,
			"wage":              profile.Wage,
			"hours_worked":      hoursWorked,
			"wage_earned":       wageEarned,
			"accommodations":    profile.Accommodations,
			"progress_notes":    profile.ProgressNotes,
			"goals":             profile.Goals,
			"documents":         profile.Documents,
		},
		Metrics: map[string]interface{}{
			"hours_worked":      hoursWorked,
			"wage_earned":       wageEarned,
			"goals_completed":   countGoals(profile.Goals, domain.GoalCompleted),
			"goals_in_progress": countGoals(profile.Goals, domain.GoalInProgress),
			"documents_pending": countPendingDocuments(profile.Documents),
		},
		Source: domain.SourceLive,
	}
}

// narrativeSystemMessages are the per-kind prompts for model-written reports.
var narrativeSystemMessages = map[domain.ReportType]string{
	domain.ReportGovernment: "You are an expert job coach assistant that generates formal reports for government agencies.\n" +
		"Focus on employment outcomes, hours worked, wages earned, and support provided.\n" +
		"Keep language professional and factual.\n" +
		"Focus on quantifiable achievements and compliance with regulations.\n" +
		"Format your response as a formal report with sections and bullet points as needed.",
	domain.ReportEmployer: "You are an expert job coach assistant that generates reports for employers.\n" +
		"Focus on employee performance, achievements, and areas for potential development.\n" +
		"Keep language positive and constructive, highlighting successes.\n" +
		"Suggest specific accommodations or strategies that are working well.\n" +
		"Format your response as a professional report suitable for a manager.",
	domain.ReportClient: "You are an expert job coach assistant that generates reports for clients with disabilities.\n" +
		"Use simple, clear language suitable for individuals with intellectual disabilities.\n" +
		"Focus on achievements, positive feedback, and clear next steps.\n" +
		"Use short sentences and avoid complex terminology.\n" +
		"Format your response in a very accessible way with bullet points and simple language.",
}

// clientSummary renders the profile into the prompt block the model sees.
// The client kind omits wage details the client doesn't need repeated back.
func clientSummary(p *domain.ClientProfile, rt domain.ReportType) string {
	notes, _ := json.MarshalIndent(p.ProgressNotes, "", "  ")
	goals, _ := json.MarshalIndent(p.Goals, "", "  ")

	var b strings.Builder
	switch rt {
	case domain.ReportEmployer:
		fmt.Fprintf(&b, "Employee: %s\n", p.Name)
		fmt.Fprintf(&b, "Position: %s\n", p.JobTitle)
		fmt.Fprintf(&b, "Start Date: %s\n", p.StartDate)
		fmt.Fprintf(&b, "Hours: %g hours per week\n", p.WorkHours)
		fmt.Fprintf(&b, "Accommodations: %s\n", strings.Join(p.Accommodations, ", "))
	case domain.ReportClient:
		fmt.Fprintf(&b, "Name: %s\n", p.Name)
		fmt.Fprintf(&b, "Job: %s at %s\n", p.JobTitle, p.Employer)
		fmt.Fprintf(&b, "Start Date: %s\n", p.StartDate)
		fmt.Fprintf(&b, "Hours: %g hours per week\n", p.WorkHours)
		fmt.Fprintf(&b, "Pay: $%g per hour\n", p.Wage)
	default:
		fmt.Fprintf(&b, "Client: %s\n", p.Name)
		fmt.Fprintf(&b, "Disability: %s\n", p.DisabilityType)
		fmt.Fprintf(&b, "Job: %s at %s\n", p.JobTitle, p.Employer)
		fmt.Fprintf(&b, "Start Date: %s\n", p.StartDate)
		fmt.Fprintf(&b, "Hours: %g hours per week\n", p.WorkHours)
		fmt.Fprintf(&b, "Wage: $%g per hour\n", p.Wage)
		fmt.Fprintf(&b, "Accommodations: %s\n", strings.Join(p.Accommodations, ", "))
	}
	fmt.Fprintf(&b, "\nProgress Notes:\n%s\n", notes)
	fmt.Fprintf(&b, "\nGoals:\n%s\n", goals)
	return b.String()
}

func narrativeMetrics(rt domain.ReportType, p *domain.ClientProfile) map[string]interface{} {
	completed := countGoals(p.Goals, domain.GoalCompleted)
	inProgress := countGoals(p.Goals, domain.GoalInProgress)

	switch rt {
	case domain.ReportEmployer:
		return map[string]interface{}{
			"attendance_rate":   95,
			"productivity_rate": 85,
			"goals_completed":   completed,
			"goals_in_progress": inProgress,
		}
	case domain.ReportClient:
		return map[string]interface{}{
			"achievements": []string{
				"Learned to use the cash register",
				"Completed a full shift independently",
			},
			"next_steps": []string{
				"Practice customer service skills",
				"Learn stock rotation procedures",
			},
		}
	default:
		hoursWorked := p.WorkHours * 4
		return map[string]interface{}{
			"hours_worked":      hoursWorked,
			"wage_earned":       hoursWorked * p.Wage,
			"goals_completed":   completed,
			"goals_in_progress": inProgress,
		}
	}
}

func countGoals(goals []domain.Goal, status domain.GoalStatus) int {
	n := 0
	for _, g := range goals {
		if g.Status == status {
			n++
		}
	}
	return n
}

func countPendingDocuments(docs []domain.PaperworkItem) int {
	n := 0
	for _, d := range docs {
		if d.Status == domain.PaperworkPending {
			n++
		}
	}
	return n
}

func reportID(rt domain.ReportType, clientID string) string {
	return fmt.Sprintf("%s-%s-%s", reportIDPrefixes[rt], clientID, time.Now().Format("20060102"))
}

// normalizeDateRange defaults an absent range to the last 30 days.
func normalizeDateRange(dr *domain.DateRange) domain.DateRange {
	if dr != nil && dr.Start != "" && dr.End != "" {
		return *dr
	}
	end := time.Now()
	start := end.AddDate(0, 0, -30)
	return domain.DateRange{
		Start: start.Format("2006-01-02"),
		End:   end.Format("2006-01-02"),
	}
}
