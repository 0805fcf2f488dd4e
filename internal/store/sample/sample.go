// Package sample provides the demo-mode data set: a fixed client roster,
// canned documents, and the profile reports are assembled from. It backs the
// same ports the live Firestore store does, so the rest of the system never
// branches on mode.
package sample

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yongxin12/Macrohard/internal/domain"
)

// Clients is the demo roster.
func Clients() []*domain.Client {
	return []*domain.Client{
		{ID: "client1", Name: "John Doe", Disability: "Autism", JobStatus: "Employed"},
		{ID: "client2", Name: "Jane Smith", Disability: "Hearing impairment", JobStatus: "Job seeking"},
		{ID: "client3", Name: "Bob Johnson", Disability: "Physical disability", JobStatus: "In training"},
	}
}

// Profile is the canned client data set used for report assembly.
func Profile(clientID string) *domain.ClientProfile {
	return &domain.ClientProfile{
		ClientID:       clientID,
		Name:           "John Doe",
		DisabilityType: "Intellectual disability",
		JobTitle:       "Retail Associate",
		Employer:       "ABC Retail Store",
		StartDate:      "2023-05-15",
		WorkHours:      20,
		Wage:           15.50,
		Accommodations: []string{
			"Visual task list",
			"Job coach presence for first month",
			"Extended training period",
		},
		ProgressNotes: []domain.ProgressNote{
			{Date: "2023-05-15", Note: "First day at work. John was nervous but followed instructions well."},
			{Date: "2023-05-18", Note: "John is learning the cash register system. Needs some additional practice."},
			{Date: "2023-05-25", Note: "Successfully completed a full shift independently."},
			{Date: "2023-06-01", Note: "Manager reported John is doing well with customer interactions."},
		},
		Goals: []domain.Goal{
			{Goal: "Learn to operate the cash register independently", Status: domain.GoalCompleted},
			{Goal: "Interact confidently with customers", Status: domain.GoalInProgress},
			{Goal: "Manage stock rotation", Status: domain.GoalNotStarted},
		},
		Documents: []domain.PaperworkItem{
			{Type: domain.DocTypeI9, Status: domain.PaperworkCompleted, Date: "2023-05-10"},
			{Type: domain.DocTypeJobApplication, Status: domain.PaperworkCompleted, Date: "2023-04-20"},
			{Type: domain.DocTypeScheduleA, Status: domain.PaperworkPending, Date: "2023-05-05"},
		},
	}
}

// Documents returns the canned processed documents for a client.
func Documents(clientID string) []*domain.Document {
	return []*domain.Document{
		{
			ID:               "doc1",
			ClientID:         clientID,
			DocumentType:     domain.DocTypeI9,
			OriginalFileName: "i9_form.pdf",
			ProcessedAt:      time.Date(2023, 8, 15, 14, 30, 0, 0, time.UTC),
			Data:             map[string]interface{}{"employee_name": "John Doe", "ssn": "XXX-XX-1234"},
			Source:           domain.SourceMock,
		},
		{
			ID:               "doc2",
			ClientID:         clientID,
			DocumentType:     domain.DocTypeScheduleA,
			OriginalFileName: "schedule_a.pdf",
			ProcessedAt:      time.Date(2023, 8, 10, 9, 15, 0, 0, time.UTC),
			Data:             map[string]interface{}{"applicant_name": "John Doe", "disability_type": "Autism"},
			Source:           domain.SourceMock,
		},
	}
}

// FallbackDocuments returns the canned documents handed out when the live
// store errors. Each record carries the error that caused the fallback.
func FallbackDocuments(clientID string, cause error) []*domain.Document {
	msg := ""
	if cause != nil {
		msg = "store error: " + cause.Error()
	}
	return []*domain.Document{
		{
			ID:               "doc1-fallback",
			ClientID:         clientID,
			DocumentType:     domain.DocTypeI9,
			OriginalFileName: "i9_form.pdf",
			ProcessedAt:      time.Date(2023, 8, 15, 14, 30, 0, 0, time.UTC),
			Data:             map[string]interface{}{"employee_name": "John Doe (Fallback)", "ssn": "XXX-XX-1234"},
			Source:           domain.SourceFallback,
			Error:            msg,
		},
		{
			ID:               "doc2-fallback",
			ClientID:         clientID,
			DocumentType:     domain.DocTypeScheduleA,
			OriginalFileName: "schedule_a.pdf",
			ProcessedAt:      time.Date(2023, 8, 10, 9, 15, 0, 0, time.UTC),
			Data:             map[string]interface{}{"applicant_name": "John Doe (Fallback)", "disability_type": "Autism"},
			Source:           domain.SourceFallback,
			Error:            msg,
		},
	}
}

// Directory implements port.ClientDirectory over the demo roster.
type Directory struct{}

// NewDirectory creates a demo client directory.
func NewDirectory() *Directory { return &Directory{} }

func (d *Directory) GetClient(_ context.Context, clientID string) (*domain.Client, error) {
	for _, c := range Clients() {
		if c.ID == clientID {
			return c, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (d *Directory) GetProfile(_ context.Context, clientID string) (*domain.ClientProfile, error) {
	for _, c := range Clients() {
		if c.ID == clientID {
			p := Profile(clientID)
			p.Name = c.Name
			return p, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (d *Directory) ListClients(_ context.Context) ([]*domain.Client, error) {
	return Clients(), nil
}

// Store implements port.RecordStore in memory, seeded with the demo
// documents on first read of a client.
type Store struct {
	mu   sync.RWMutex
	docs map[string]*domain.Document
}

// NewStore creates an empty in-memory record store.
func NewStore() *Store {
	return &Store{docs: map[string]*domain.Document{}}
}

func (s *Store) SaveDocument(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *doc
	s.docs[doc.ID] = &cp
	return nil
}

func (s *Store) GetDocument(_ context.Context, documentID string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if doc, ok := s.docs[documentID]; ok {
		cp := *doc
		return &cp, nil
	}
	for _, seeded := range Documents("") {
		if seeded.ID == documentID {
			return seeded, nil
		}
	}
	return nil, domain.ErrDocumentNotFound
}

func (s *Store) ListDocumentsByClient(_ context.Context, clientID string) ([]*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := Documents(clientID)
	for _, doc := range s.docs {
		if doc.ClientID == clientID {
			cp := *doc
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ProcessedAt.After(out[j].ProcessedAt)
	})
	return out, nil
}
