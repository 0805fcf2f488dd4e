package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/yongxin12/Macrohard/internal/domain"
	"github.com/yongxin12/Macrohard/internal/port"
)

type formRepo struct {
	db *sqlx.DB
}

// NewFormRepo creates a new PostgreSQL-backed FormRepository.
func NewFormRepo(db *sqlx.DB) port.FormRepository {
	return &formRepo{db: db}
}

func (r *formRepo) Insert(ctx context.Context, rec *domain.FormRecord) (*domain.FormRecord, error) {
	rec.ID = uuid.New()
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	query := `INSERT INTO form_records (id, encrypted_ssn, i9_form, self_identification, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.EncryptedSSN, rec.I9Form, rec.SelfIdent, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("formRepo.Insert: %w", err)
	}
	return rec, nil
}

func (r *formRepo) Update(ctx context.Context, rec *domain.FormRecord) error {
	rec.UpdatedAt = time.Now().UTC()

	result, err := r.db.ExecContext(ctx,
		`UPDATE form_records SET i9_form = $2, self_identification = $3, updated_at = $4 WHERE id = $1`,
		rec.ID, rec.I9Form, rec.SelfIdent, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("formRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *formRepo) ListAll(ctx context.Context) ([]*domain.FormRecord, error) {
	var records []*domain.FormRecord
	err := r.db.SelectContext(ctx, &records,
		`SELECT * FROM form_records ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("formRepo.ListAll: %w", err)
	}
	return records, nil
}
