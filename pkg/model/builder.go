package model

import (
	"context"

	"github.com/goliatone/go-formdoc/pkg/formdoc"
)

// ImageSource resolves a media reference into a data URI ready for
// embedding. Implementations must degrade to the empty string instead of
// failing: an unresolvable image costs one empty cell, never the document.
type ImageSource interface {
	Resolve(ctx context.Context, source, category string) string
}

// BuildInput carries the per-build collaborators and configuration that
// accompany the form document itself.
type BuildInput struct {
	Order       formdoc.OrderMetadata
	Regulations formdoc.RegulationCatalog
	Language    formdoc.Language

	// HeaderLogo is the media reference for the page header logo. When set
	// and unresolvable, Build fails: a deployment without its fixed static
	// assets has no visual fallback left.
	HeaderLogo string

	// HeaderTitleLines renders under the logo on decorated pages.
	HeaderTitleLines []string

	// LinkImagesToSource attaches the original source reference to image
	// cells so renderers can link back to the fetched asset.
	LinkImagesToSource bool
}

// Builder converts a form document plus auxiliary metadata into the
// render-ready document model. The canonical implementation lives in
// internal/assemble and is wired up by the orchestrator; the interface is
// the seam tests and alternate callers plug into.
type Builder interface {
	Build(ctx context.Context, doc formdoc.FormDocument, in BuildInput) (Document, error)
}
