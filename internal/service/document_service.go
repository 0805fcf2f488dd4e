package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/yongxin12/Macrohard/internal/domain"
	"github.com/yongxin12/Macrohard/internal/extractor"
	"github.com/yongxin12/Macrohard/internal/port"
	"github.com/yongxin12/Macrohard/internal/store/sample"
)

// ProcessInput is the DTO for document processing requests.
type ProcessInput struct {
	ClientID     string
	DocumentType domain.DocumentType
	FileName     string
	Content      []byte
	ContentType  string
	ProcessedBy  string
}

// DocumentService defines the document intake contract.
type DocumentService interface {
	Process(ctx context.Context, input ProcessInput) (*domain.Document, error)
	ListForClient(ctx context.Context, clientID string) ([]*domain.Document, domain.DataSource, error)
	Get(ctx context.Context, documentID string) (*domain.Document, error)
}

// FieldExtraction produces the structured data for one processed document.
// The two implementations are selected at startup, so the service itself
// never branches on mode.
type FieldExtraction interface {
	Run(ctx context.Context, docType domain.DocumentType, content []byte, contentType string) (data map[string]interface{}, source domain.DataSource)
}

// MockExtraction serves canned payloads. Used in demo mode.
type MockExtraction struct{}

func (MockExtraction) Run(_ context.Context, docType domain.DocumentType, _ []byte, _ string) (map[string]interface{}, domain.DataSource) {
	return extractor.MockData(docType), domain.SourceMock
}

// AnalyzerExtraction runs live analysis, falling back to an annotated mock
// payload when the analyzer fails.
type AnalyzerExtraction struct {
	Analyzer port.DocumentAnalyzer
}

func (e AnalyzerExtraction) Run(ctx context.Context, docType domain.DocumentType, content []byte, contentType string) (map[string]interface{}, domain.DataSource) {
	result, err := e.Analyzer.Analyze(ctx, content, contentType)
	if err != nil {
		log.Printf("documentService: analysis failed, using mock data: %v", err)
		return map[string]interface{}{
			"error":          fmt.Sprintf("Failed to process document: %v", err),
			"fallback":       "Using mock data instead",
			"extracted_data": extractor.MockData(docType),
		}, domain.SourceFallback
	}
	return extractor.Extract(docType, result), domain.SourceLive
}

type documentService struct {
	extraction FieldExtraction
	store      port.RecordStore
	storage    port.ObjectStorage
}

// NewDocumentService creates a DocumentService. The extraction strategy,
// record store and object storage decide whether it operates in demo or
// live mode.
func NewDocumentService(extraction FieldExtraction, store port.RecordStore, storage port.ObjectStorage) DocumentService {
	return &documentService{
		extraction: extraction,
		store:      store,
		storage:    storage,
	}
}

func (s *documentService) Process(ctx context.Context, input ProcessInput) (*domain.Document, error) {
	if input.ClientID == "" {
		return nil, fmt.Errorf("%w: client id is required", domain.ErrInvalidInput)
	}
	docType := input.DocumentType
	if !domain.KnownDocumentTypes[docType] {
		docType = domain.DocTypeGeneric
	}

	data, source := s.extraction.Run(ctx, docType, input.Content, input.ContentType)

	doc := &domain.Document{
		ID:               "doc-" + uuid.NewString(),
		ClientID:         input.ClientID,
		DocumentType:     docType,
		OriginalFileName: input.FileName,
		ProcessedBy:      input.ProcessedBy,
		ProcessedAt:      time.Now().UTC(),
		Data:             data,
		Source:           source,
	}

	// Metadata first: a document record without a stored file is useful, a
	// stored file without a record is orphaned.
	if err := s.store.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("documentService.Process: saving record: %w", err)
	}

	if len(input.Content) > 0 {
		key := fmt.Sprintf("documents/%s/%s.pdf", input.ClientID, doc.ID)
		url, err := s.storage.Upload(ctx, key, bytes.NewReader(input.Content), input.ContentType)
		if err != nil {
			log.Printf("documentService.Process: storing file for %s: %v", doc.ID, err)
		} else {
			doc.FileURL = url
			if err := s.store.SaveDocument(ctx, doc); err != nil {
				log.Printf("documentService.Process: updating file url for %s: %v", doc.ID, err)
			}
		}
	}

	return doc, nil
}

func (s *documentService) ListForClient(ctx context.Context, clientID string) ([]*domain.Document, domain.DataSource, error) {
	docs, err := s.store.ListDocumentsByClient(ctx, clientID)
	if err != nil {
		log.Printf("documentService.ListForClient: store error for %s, serving fallback: %v", clientID, err)
		return sample.FallbackDocuments(clientID, err), domain.SourceFallback, nil
	}
	return docs, domain.SourceLive, nil
}

func (s *documentService) Get(ctx context.Context, documentID string) (*domain.Document, error) {
	doc, err := s.store.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return doc, nil
}
