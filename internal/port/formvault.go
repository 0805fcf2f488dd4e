package port

import (
	"context"

	"github.com/yongxin12/Macrohard/internal/domain"
)

// FormRepository persists encrypted form records for the form vault.
type FormRepository interface {
	// Insert stores a new record and returns it with id and timestamps set.
	Insert(ctx context.Context, rec *domain.FormRecord) (*domain.FormRecord, error)
	// Update replaces the form payloads of an existing record.
	Update(ctx context.Context, rec *domain.FormRecord) error
	// ListAll returns every stored record. The vault scans them to find a
	// record by SSN, since encrypted SSNs are not equality-searchable.
	ListAll(ctx context.Context) ([]*domain.FormRecord, error)
}
