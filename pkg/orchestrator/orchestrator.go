package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-formdoc/internal/assemble"
	"github.com/goliatone/go-formdoc/pkg/formdoc"
	"github.com/goliatone/go-formdoc/pkg/imageres"
	"github.com/goliatone/go-formdoc/pkg/model"
	"github.com/goliatone/go-formdoc/pkg/render"
	"github.com/goliatone/go-formdoc/pkg/renderers/html"
	"github.com/goliatone/go-formdoc/pkg/renderers/pdf"
)

const defaultRendererName = "pdf"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithBuilder injects a custom document model builder.
func WithBuilder(builder model.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithImageResolver injects the image resolver shared across builds. The
// resolver owns the only cross-build mutable state (its cache).
func WithImageResolver(resolver *imageres.Resolver) Option {
	return func(o *Orchestrator) {
		o.images = resolver
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithValidator injects the payload validator applied to raw documents.
// Pass nil to skip validation entirely.
func WithValidator(validator *formdoc.Validator) Option {
	return func(o *Orchestrator) {
		o.validator = validator
		o.validatorSpecified = true
	}
}

// WithAssetBases overrides the deprecated/current asset URL rewrite pair.
func WithAssetBases(oldBase, newBase string) Option {
	return func(o *Orchestrator) {
		o.oldAssetBase = oldBase
		o.newAssetBase = newBase
	}
}

// WithPrefetchConcurrency bounds the image prefetch fan-out per build.
func WithPrefetchConcurrency(limit int) Option {
	return func(o *Orchestrator) {
		o.prefetchLimit = limit
	}
}

// Orchestrator coordinates the full pipeline from raw form payload to
// rendered output. It applies sensible defaults (PDF renderer, shared image
// resolver, schema validation) while remaining open to dependency injection
// for advanced callers.
type Orchestrator struct {
	builder            model.Builder
	images             *imageres.Resolver
	registry           *render.Registry
	defaultRenderer    string
	validator          *formdoc.Validator
	validatorSpecified bool
	themes             ThemeSelector
	defaultTheme       string
	defaultVariant     string
	oldAssetBase       string
	newAssetBase       string
	prefetchLimit      int
	initialiseErr      error
	defaultsApplied    bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to build and render one document.
type Request struct {
	// Raw is the undecoded form payload (JSON or YAML). Optional when
	// Document is supplied; validated when a validator is configured.
	Raw []byte

	// Document allows callers to bypass decoding when they already hold a
	// parsed form document.
	Document *formdoc.FormDocument

	// Order feeds the synthetic work order header section.
	Order formdoc.OrderMetadata

	// Regulations is the catalog consulted for checked regulation items.
	Regulations []formdoc.RegulationRecord

	// Language selects the display language ("en"/"es"); unknown codes fall
	// back to English.
	Language string

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// ThemeName/ThemeVariant select a theme when a selector is configured.
	ThemeName    string
	ThemeVariant string

	// HeaderLogo is the media reference of the page header logo. When set
	// and unresolvable the build fails.
	HeaderLogo string

	// HeaderTitleLines renders under the logo on decorated pages.
	HeaderTitleLines []string

	// LinkImagesToSource makes image cells link back to the fetched asset.
	LinkImagesToSource bool

	// RenderOptions carries renderer-facing configuration (page size,
	// header/footer repetition, footer text lines).
	RenderOptions render.Options
}

// Generate executes the decode → build → render sequence and returns the
// rendered bytes from the selected renderer.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	doc, err := o.BuildModel(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	options := req.RenderOptions
	if theme, err := o.resolveTheme(req); err != nil {
		return nil, err
	} else if theme != nil {
		options.Theme = theme
	}

	output, err := renderer.Render(ctx, doc, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// BuildModel runs the pipeline up to the document model: validation,
// decoding, image prefetch, and assembly. Rendering is left to the caller,
// which makes this the entry point for alternate rendering engines.
func (o *Orchestrator) BuildModel(ctx context.Context, req Request) (model.Document, error) {
	if ctx == nil {
		return model.Document{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return model.Document{}, err
	}
	if err := o.initialiseErr; err != nil {
		return model.Document{}, err
	}

	doc, err := o.resolveDocument(req)
	if err != nil {
		return model.Document{}, err
	}

	if o.images != nil {
		normalized := formdoc.NormalizeAssetURLs(doc, o.oldAssetBase, o.newAssetBase)
		if err := o.images.Prefetch(ctx, normalized, o.prefetchLimit); err != nil {
			return model.Document{}, fmt.Errorf("orchestrator: prefetch images: %w", err)
		}
	}

	built, err := o.builder.Build(ctx, doc, model.BuildInput{
		Order:              req.Order,
		Regulations:        formdoc.RegulationCatalog(req.Regulations),
		Language:           formdoc.ParseLanguage(req.Language),
		HeaderLogo:         req.HeaderLogo,
		HeaderTitleLines:   req.HeaderTitleLines,
		LinkImagesToSource: req.LinkImagesToSource,
	})
	if err != nil {
		return model.Document{}, fmt.Errorf("orchestrator: build document model: %w", err)
	}
	return built, nil
}

func (o *Orchestrator) resolveDocument(req Request) (formdoc.FormDocument, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if len(req.Raw) == 0 {
		return formdoc.FormDocument{}, errors.New("orchestrator: raw payload or document is required")
	}

	if o.validator != nil {
		if err := o.validator.Validate(req.Raw); err != nil {
			return formdoc.FormDocument{}, fmt.Errorf("orchestrator: validate payload: %w", err)
		}
	}

	doc, err := formdoc.Decode(req.Raw)
	if err != nil {
		return formdoc.FormDocument{}, fmt.Errorf("orchestrator: decode payload: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.images == nil {
		o.images = imageres.New()
	}
	if o.oldAssetBase == "" {
		o.oldAssetBase = formdoc.DefaultOldAssetBase
	}
	if o.newAssetBase == "" {
		o.newAssetBase = formdoc.DefaultNewAssetBase
	}
	if o.builder == nil {
		o.builder = assemble.New(assemble.Options{
			Images:       o.images,
			OldAssetBase: o.oldAssetBase,
			NewAssetBase: o.newAssetBase,
		})
	}
	if !o.validatorSpecified && o.validator == nil {
		o.validator = formdoc.NewValidator()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		if renderer, err := pdf.New(); err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default pdf renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
		if renderer, err := html.New(); err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default html renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
