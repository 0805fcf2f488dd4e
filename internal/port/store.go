package port

import (
	"context"

	"github.com/yongxin12/Macrohard/internal/domain"
)

// RecordStore persists processed documents and their extracted data.
type RecordStore interface {
	// SaveDocument writes the document metadata record.
	SaveDocument(ctx context.Context, doc *domain.Document) error
	// GetDocument fetches one document by id. Returns
	// domain.ErrDocumentNotFound when it does not exist.
	GetDocument(ctx context.Context, documentID string) (*domain.Document, error)
	// ListDocumentsByClient returns every document stored for the client,
	// newest first.
	ListDocumentsByClient(ctx context.Context, clientID string) ([]*domain.Document, error)
}

// ClientDirectory looks up the clients a job coach works with.
type ClientDirectory interface {
	// GetClient fetches one client's roster entry. Returns
	// domain.ErrClientNotFound when the client is unknown.
	GetClient(ctx context.Context, clientID string) (*domain.Client, error)
	// GetProfile fetches the full data set reports are assembled from.
	// Returns domain.ErrClientNotFound when the client is unknown.
	GetProfile(ctx context.Context, clientID string) (*domain.ClientProfile, error)
	// ListClients returns every client, ordered by id.
	ListClients(ctx context.Context) ([]*domain.Client, error)
}
