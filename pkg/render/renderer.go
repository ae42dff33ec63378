package render

import (
	"context"

	"github.com/goliatone/go-formdoc/pkg/model"
)

// Renderer converts a document model into a byte representation (PDF bytes,
// HTML markup, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc model.Document, options Options) ([]byte, error)
}
