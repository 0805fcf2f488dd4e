package service

import (
	"context"
	"errors"
	"log"

	"github.com/yongxin12/Macrohard/internal/domain"
	"github.com/yongxin12/Macrohard/internal/port"
	"github.com/yongxin12/Macrohard/internal/store/sample"
)

// ClientService defines the client roster contract.
type ClientService interface {
	List(ctx context.Context) ([]*domain.Client, domain.DataSource, error)
	Get(ctx context.Context, clientID string) (*domain.Client, error)
}

type clientService struct {
	directory port.ClientDirectory
	source    domain.DataSource
}

// NewClientService creates a ClientService over the given directory. source
// tags results served from it (mock for the sample directory, live for
// Firestore); degraded results are tagged fallback regardless.
func NewClientService(directory port.ClientDirectory, source domain.DataSource) ClientService {
	return &clientService{directory: directory, source: source}
}

func (s *clientService) List(ctx context.Context) ([]*domain.Client, domain.DataSource, error) {
	clients, err := s.directory.ListClients(ctx)
	if err != nil {
		log.Printf("clientService.List: directory error, serving sample roster: %v", err)
		return sample.Clients(), domain.SourceFallback, nil
	}
	return clients, s.source, nil
}

func (s *clientService) Get(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.directory.GetClient(ctx, clientID)
	if err == nil {
		client.Source = s.source
		return client, nil
	}
	if errors.Is(err, domain.ErrClientNotFound) {
		return nil, domain.ErrClientNotFound
	}

	// Directory unreachable: fall back to the sample roster before giving up.
	log.Printf("clientService.Get: directory error for %s, trying sample roster: %v", clientID, err)
	for _, c := range sample.Clients() {
		if c.ID == clientID {
			c.Source = domain.SourceFallback
			return c, nil
		}
	}
	return nil, domain.ErrClientNotFound
}
