package formdoc

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formdoc/internal/assemble"
	pkgformdoc "github.com/goliatone/go-formdoc/pkg/formdoc"
	"github.com/goliatone/go-formdoc/pkg/imageres"
	"github.com/goliatone/go-formdoc/pkg/model"
	"github.com/goliatone/go-formdoc/pkg/orchestrator"
	"github.com/goliatone/go-formdoc/pkg/render"
)

// FormDocument is the decoded nested form payload; alias exported via the
// root package for convenience.
type FormDocument = pkgformdoc.FormDocument

// Section groups form columns under an ordered, toggleable heading.
type Section = pkgformdoc.Section

// Column holds the ordered items laid out side by side in section tables.
type Column = pkgformdoc.Column

// Item is a single captured form entry.
type Item = pkgformdoc.Item

// Bilingual pairs the English and Spanish renditions of a display string.
type Bilingual = pkgformdoc.Bilingual

// OrderMetadata feeds the synthetic work order header section.
type OrderMetadata = pkgformdoc.OrderMetadata

// RegulationRecord describes one catalog entry consulted for checked
// regulation items.
type RegulationRecord = pkgformdoc.RegulationRecord

// Request describes the inputs for a single document generation.
type Request = orchestrator.Request

// RenderOptions carries renderer-facing configuration such as page size and
// footer repetition.
type RenderOptions = render.Options

// Decode parses a raw JSON or YAML form payload into a FormDocument.
func Decode(raw []byte) (FormDocument, error) {
	return pkgformdoc.Decode(raw)
}

// NewOrchestrator exposes the pipeline constructor from the top-level module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// BuilderOptions configures the default document model builder.
type BuilderOptions struct {
	// Images resolves media references into embeddable data URIs. Nil means
	// every media item falls back to an empty cell.
	Images model.ImageSource

	// OldAssetBase/NewAssetBase override the asset URL rewrite pair applied
	// before image resolution. Empty values keep the defaults.
	OldAssetBase string
	NewAssetBase string
}

// NewBuilder constructs the default document model builder so callers can
// assemble render-ready models without going through the orchestrator.
func NewBuilder(options BuilderOptions) model.Builder {
	return assemble.New(assemble.Options{
		Images:       options.Images,
		OldAssetBase: options.OldAssetBase,
		NewAssetBase: options.NewAssetBase,
	})
}

// NewImageResolver constructs the caching image resolver with the supplied
// options, re-exported so callers can share one resolver across builders and
// orchestrators.
func NewImageResolver(options ...imageres.Option) *imageres.Resolver {
	return imageres.New(options...)
}

// WithBuilder injects a custom document model builder.
func WithBuilder(builder model.Builder) orchestrator.Option {
	return orchestrator.WithBuilder(builder)
}

// WithImageResolver injects the shared image resolver.
func WithImageResolver(resolver *imageres.Resolver) orchestrator.Option {
	return orchestrator.WithImageResolver(resolver)
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) orchestrator.Option {
	return orchestrator.WithRegistry(registry)
}

// WithDefaultRenderer overrides the renderer used when a request omits one.
func WithDefaultRenderer(name string) orchestrator.Option {
	return orchestrator.WithDefaultRenderer(name)
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// Generate runs the full pipeline for a single request using a throwaway
// orchestrator. Callers issuing repeated requests should construct one
// orchestrator and reuse it so the image cache survives across builds.
func Generate(ctx context.Context, req Request, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, req)
}

// GeneratePDF renders the payload with the PDF renderer. It is the simplest
// entry point for callers that just want document bytes.
func GeneratePDF(ctx context.Context, raw []byte, order OrderMetadata, regulations []RegulationRecord, language string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, Request{
		Raw:         raw,
		Order:       order,
		Regulations: regulations,
		Language:    language,
		Renderer:    "pdf",
	})
}

// GenerateHTML renders the payload with the HTML preview renderer.
func GenerateHTML(ctx context.Context, raw []byte, order OrderMetadata, regulations []RegulationRecord, language string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, Request{
		Raw:         raw,
		Order:       order,
		Regulations: regulations,
		Language:    language,
		Renderer:    "html",
	})
}
