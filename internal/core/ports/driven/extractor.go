package driven

import (
	"context"

	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
)

// Extractor sends PDF files to an extraction backend and returns one
// result per file, in upload order. A per-file failure is reported in
// the result's Error field rather than failing the whole call.
type Extractor interface {
	Extract(ctx context.Context, paths []string) ([]domain.ExtractionResult, error)
}
