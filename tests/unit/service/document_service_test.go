package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yongxin12/Macrohard/internal/domain"
	"github.com/yongxin12/Macrohard/internal/extractor"
	"github.com/yongxin12/Macrohard/internal/service"
	"github.com/yongxin12/Macrohard/internal/storage/memory"
	"github.com/yongxin12/Macrohard/internal/store/sample"
	"github.com/yongxin12/Macrohard/mocks"
)

func newDemoDocumentService() service.DocumentService {
	return service.NewDocumentService(service.MockExtraction{}, sample.NewStore(), memory.NewStorage())
}

func TestDocumentService_ProcessReturnsExactMockPayload(t *testing.T) {
	svc := newDemoDocumentService()

	for _, docType := range []domain.DocumentType{
		domain.DocTypeI9, domain.DocTypeScheduleA, domain.DocTypeTax1040,
		domain.DocTypeJobApplication, domain.DocTypeGeneric,
	} {
		doc, err := svc.Process(context.Background(), service.ProcessInput{
			ClientID:     "client1",
			DocumentType: docType,
			FileName:     "upload.pdf",
			Content:      []byte("%PDF-1.4"),
			ContentType:  "application/pdf",
		})
		require.NoError(t, err, "document type %s", docType)
		assert.Equal(t, extractor.MockData(docType), doc.Data, "document type %s", docType)
		assert.Equal(t, domain.SourceMock, doc.Source)
	}
}

func TestDocumentService_ProcessRequiresClientID(t *testing.T) {
	svc := newDemoDocumentService()

	_, err := svc.Process(context.Background(), service.ProcessInput{
		DocumentType: domain.DocTypeI9,
		FileName:     "upload.pdf",
		Content:      []byte("%PDF-1.4"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentService_ProcessUnknownTypeBecomesGeneric(t *testing.T) {
	svc := newDemoDocumentService()

	doc, err := svc.Process(context.Background(), service.ProcessInput{
		ClientID:     "client1",
		DocumentType: domain.DocumentType("w2"),
		FileName:     "upload.pdf",
		Content:      []byte("%PDF-1.4"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DocTypeGeneric, doc.DocumentType)
	assert.Equal(t, extractor.MockData(domain.DocTypeGeneric), doc.Data)
}

func TestDocumentService_ProcessedDocumentIsRetrievable(t *testing.T) {
	svc := newDemoDocumentService()

	doc, err := svc.Process(context.Background(), service.ProcessInput{
		ClientID:     "client1",
		DocumentType: domain.DocTypeI9,
		FileName:     "i9.pdf",
		Content:      []byte("%PDF-1.4"),
	})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
	assert.Equal(t, "i9.pdf", got.OriginalFileName)
}

func TestDocumentService_GetUnknownDocument(t *testing.T) {
	svc := newDemoDocumentService()

	_, err := svc.Get(context.Background(), "doc-nope")
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestDocumentService_ListFallsBackOnStoreError(t *testing.T) {
	store := new(mocks.MockRecordStore)
	store.On("ListDocumentsByClient", mock.Anything, "client1").Return(nil, errors.New("store down"))

	svc := service.NewDocumentService(service.MockExtraction{}, store, memory.NewStorage())

	docs, source, err := svc.ListForClient(context.Background(), "client1")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceFallback, source)
	require.Len(t, docs, 2)
	assert.Contains(t, docs[0].OriginalFileName, "(Fallback)")
	assert.Contains(t, docs[0].Error, "store down")
}

func TestDocumentService_AnalyzerFailureAnnotatesFallback(t *testing.T) {
	analyzer := new(mocks.MockDocumentAnalyzer)
	analyzer.On("Analyze", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("analyzer unreachable"))

	svc := service.NewDocumentService(
		service.AnalyzerExtraction{Analyzer: analyzer},
		sample.NewStore(),
		memory.NewStorage(),
	)

	doc, err := svc.Process(context.Background(), service.ProcessInput{
		ClientID:     "client1",
		DocumentType: domain.DocTypeI9,
		FileName:     "i9.pdf",
		Content:      []byte("%PDF-1.4"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SourceFallback, doc.Source)
	assert.Contains(t, doc.Data["error"], "analyzer unreachable")
	assert.Equal(t, "Using mock data instead", doc.Data["fallback"])
	assert.Equal(t, extractor.MockData(domain.DocTypeI9), doc.Data["extracted_data"])
}
