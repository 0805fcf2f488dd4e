package port

import (
	"context"

	"github.com/yongxin12/Macrohard/internal/domain"
)

// DocumentAnalyzer extracts text, key-value pairs and tables from a scanned
// document image or PDF.
type DocumentAnalyzer interface {
	// Analyze submits the file content for analysis and blocks until the
	// result is available or ctx is done.
	Analyze(ctx context.Context, content []byte, contentType string) (*domain.AnalyzeResult, error)
}
