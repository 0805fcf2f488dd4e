package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/yongxin12/Macrohard/internal/domain"
	"github.com/yongxin12/Macrohard/internal/formvault"
	"github.com/yongxin12/Macrohard/internal/port"
)

// FormInsertInput is the payload for saving a form into the vault.
type FormInsertInput struct {
	SSN      string            `json:"ssn" binding:"required"`
	FormType domain.FormType   `json:"form_type" binding:"required"`
	FormInfo map[string]string `json:"form_info" binding:"required"`
}

// FormService stores SSN-keyed form data and renders filled PDF templates.
type FormService interface {
	// InformationInsert saves form data under the given SSN, creating a new
	// record or updating the matching slot of an existing one. It reports
	// whether a new record was created.
	InformationInsert(ctx context.Context, in FormInsertInput) (created bool, err error)
	// ContentConfirmation returns the stored form data for an SSN.
	ContentConfirmation(ctx context.Context, ssn string, formType domain.FormType) (map[string]string, error)
	// DocumentFill renders the stored data into the PDF template for the
	// form type and returns the document with its download filename.
	DocumentFill(ctx context.Context, ssn string, formType domain.FormType) (pdf []byte, filename string, err error)
}

type formService struct {
	repo   port.FormRepository
	cipher *formvault.Cipher
	filler *formvault.Filler
}

// NewFormService creates a new FormService.
func NewFormService(repo port.FormRepository, cipher *formvault.Cipher, filler *formvault.Filler) FormService {
	return &formService{repo: repo, cipher: cipher, filler: filler}
}

func (s *formService) InformationInsert(ctx context.Context, in FormInsertInput) (bool, error) {
	if in.SSN == "" {
		return false, fmt.Errorf("%w: ssn is required", domain.ErrInvalidInput)
	}
	if in.FormType == "" || len(in.FormInfo) == 0 {
		return false, fmt.Errorf("%w: form_type and form_info are required", domain.ErrInvalidInput)
	}
	if _, ok := domain.SupportedFormTypes[in.FormType]; !ok {
		return false, domain.ErrUnsupportedFormType
	}

	payload, err := json.Marshal(in.FormInfo)
	if err != nil {
		return false, fmt.Errorf("formService.InformationInsert: marshaling form info: %w", err)
	}

	existing, err := s.findBySSN(ctx, in.SSN)
	if err != nil {
		return false, err
	}
	if existing != nil {
		setFormSlot(existing, in.FormType, payload)
		if err := s.repo.Update(ctx, existing); err != nil {
			return false, fmt.Errorf("formService.InformationInsert: %w", err)
		}
		return false, nil
	}

	encrypted, err := s.cipher.Encrypt(in.SSN)
	if err != nil {
		return false, fmt.Errorf("formService.InformationInsert: %w", err)
	}
	rec := &domain.FormRecord{EncryptedSSN: encrypted}
	setFormSlot(rec, in.FormType, payload)
	if _, err := s.repo.Insert(ctx, rec); err != nil {
		return false, fmt.Errorf("formService.InformationInsert: %w", err)
	}
	return true, nil
}

func (s *formService) ContentConfirmation(ctx context.Context, ssn string, formType domain.FormType) (map[string]string, error) {
	raw, err := s.storedForm(ctx, ssn, formType)
	if err != nil {
		return nil, err
	}
	var info map[string]string
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("formService.ContentConfirmation: decoding stored form: %w", err)
	}
	return info, nil
}

func (s *formService) DocumentFill(ctx context.Context, ssn string, formType domain.FormType) ([]byte, string, error) {
	info, err := s.ContentConfirmation(ctx, ssn, formType)
	if err != nil {
		return nil, "", err
	}
	pdf, err := s.filler.Fill(formType, info)
	if err != nil {
		return nil, "", fmt.Errorf("formService.DocumentFill: %w", err)
	}
	return pdf, s.filler.OutputName(formType), nil
}

func (s *formService) storedForm(ctx context.Context, ssn string, formType domain.FormType) (json.RawMessage, error) {
	if ssn == "" {
		return nil, fmt.Errorf("%w: ssn is required", domain.ErrInvalidInput)
	}
	if _, ok := domain.SupportedFormTypes[formType]; !ok {
		return nil, domain.ErrUnsupportedFormType
	}
	rec, err := s.findBySSN(ctx, ssn)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrFormNotFound
	}
	raw := formSlot(rec, formType)
	if len(raw) == 0 {
		return nil, domain.ErrFormNotFound
	}
	return raw, nil
}

// findBySSN decrypts every stored SSN and compares. Encrypted SSNs are not
// equality-searchable, so lookup is a linear scan over the whole table.
func (s *formService) findBySSN(ctx context.Context, ssn string) (*domain.FormRecord, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("formService.findBySSN: %w", err)
	}
	for _, rec := range records {
		stored, err := s.cipher.Decrypt(rec.EncryptedSSN)
		if err != nil {
			// Sealed under a previous key; skip.
			log.Printf("formService.findBySSN: skipping undecryptable record %s: %v", rec.ID, err)
			continue
		}
		if stored == ssn {
			return rec, nil
		}
	}
	return nil, nil
}

func setFormSlot(rec *domain.FormRecord, formType domain.FormType, payload json.RawMessage) {
	switch formType {
	case domain.FormTypeI9:
		rec.I9Form = payload
	case domain.FormTypeSF256:
		rec.SelfIdent = payload
	}
}

func formSlot(rec *domain.FormRecord, formType domain.FormType) json.RawMessage {
	switch formType {
	case domain.FormTypeI9:
		return rec.I9Form
	case domain.FormTypeSF256:
		return rec.SelfIdent
	}
	return nil
}
