// Package firestore implements the live record store and client directory
// over Cloud Firestore.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/yongxin12/Macrohard/internal/config"
	"github.com/yongxin12/Macrohard/internal/domain"
)

// NewClient creates a Firestore client for the configured project.
func NewClient(ctx context.Context, cfg *config.FirestoreConfig) (*firestore.Client, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("firestore project id must be set")
	}
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}
	return client, nil
}

// Store implements port.RecordStore over Firestore.
type Store struct {
	client     *firestore.Client
	collection string
}

// NewStore creates a record store over the configured documents collection.
func NewStore(client *firestore.Client, cfg *config.FirestoreConfig) *Store {
	return &Store{client: client, collection: cfg.DocumentsCollection}
}

func (s *Store) SaveDocument(ctx context.Context, doc *domain.Document) error {
	_, err := s.client.Collection(s.collection).Doc(doc.ID).Set(ctx, doc)
	if err != nil {
		return fmt.Errorf("saving document %s: %w", doc.ID, err)
	}
	return nil
}

func (s *Store) GetDocument(ctx context.Context, documentID string) (*domain.Document, error) {
	snap, err := s.client.Collection(s.collection).Doc(documentID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("fetching document %s: %w", documentID, err)
	}
	var doc domain.Document
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("decoding document %s: %w", documentID, err)
	}
	return &doc, nil
}

func (s *Store) ListDocumentsByClient(ctx context.Context, clientID string) ([]*domain.Document, error) {
	iter := s.client.Collection(s.collection).
		Where("client_id", "==", clientID).
		OrderBy("processed_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var out []*domain.Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("querying documents for client %s: %w", clientID, err)
		}
		var doc domain.Document
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decoding document %s: %w", snap.Ref.ID, err)
		}
		out = append(out, &doc)
	}
	return out, nil
}

// Directory implements port.ClientDirectory over Firestore.
type Directory struct {
	client     *firestore.Client
	collection string
}

// NewDirectory creates a client directory over the configured clients collection.
func NewDirectory(client *firestore.Client, cfg *config.FirestoreConfig) *Directory {
	return &Directory{client: client, collection: cfg.ClientsCollection}
}

func (d *Directory) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	snap, err := d.client.Collection(d.collection).Doc(clientID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("fetching client %s: %w", clientID, err)
	}
	var c domain.Client
	if err := snap.DataTo(&c); err != nil {
		return nil, fmt.Errorf("decoding client %s: %w", clientID, err)
	}
	if c.ID == "" {
		c.ID = snap.Ref.ID
	}
	return &c, nil
}

func (d *Directory) GetProfile(ctx context.Context, clientID string) (*domain.ClientProfile, error) {
	snap, err := d.client.Collection(d.collection).Doc(clientID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("fetching client %s: %w", clientID, err)
	}
	var profile domain.ClientProfile
	if err := snap.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("decoding client %s: %w", clientID, err)
	}
	if profile.ClientID == "" {
		profile.ClientID = clientID
	}
	return &profile, nil
}

func (d *Directory) ListClients(ctx context.Context) ([]*domain.Client, error) {
	iter := d.client.Collection(d.collection).OrderBy(firestore.DocumentID, firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var out []*domain.Client
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("querying clients: %w", err)
		}
		var c domain.Client
		if err := snap.DataTo(&c); err != nil {
			return nil, fmt.Errorf("decoding client %s: %w", snap.Ref.ID, err)
		}
		if c.ID == "" {
			c.ID = snap.Ref.ID
		}
		out = append(out, &c)
	}
	return out, nil
}
