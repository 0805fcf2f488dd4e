package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrClientNotFound      = errors.New("client not found")
	ErrDocumentNotFound    = errors.New("document not found")
	ErrFormNotFound        = errors.New("form data not found for given SSN")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserDisabled        = errors.New("user account is disabled")
	ErrUnsupportedFormType = errors.New("form type currently not supported")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
)
