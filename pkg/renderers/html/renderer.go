package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-formdoc/pkg/model"
	"github.com/goliatone/go-formdoc/pkg/render"
	rendertemplate "github.com/goliatone/go-formdoc/pkg/render/template"
	gotemplate "github.com/goliatone/go-formdoc/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer produces a single-page HTML preview of the document model. It
// is the debugging surface for the pipeline: everything the PDF renderer
// paginates shows up here as one scrollable page with print-friendly break
// hints.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, doc model.Document, options render.Options) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := r.templates.RenderTemplate("templates/document", viewData(doc, options))
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// viewData projects the typed document model into the plain maps the
// template engine consumes.
func viewData(doc model.Document, options render.Options) map[string]any {
	blocks := make([]map[string]any, 0, len(doc.Blocks))
	for _, block := range doc.Blocks {
		switch b := block.(type) {
		case model.TitleBlock:
			blocks = append(blocks, map[string]any{
				"kind":      "title",
				"text":      b.Text,
				"pageBreak": b.PageBreakBefore,
			})
		case model.TableBlock:
			rows := make([][]map[string]any, 0, len(b.Rows))
			for _, row := range b.Rows {
				cells := make([]map[string]any, 0, len(row))
				for _, cell := range row {
					view := map[string]any{
						"kind":  string(cell.Kind),
						"text":  cell.Text,
						"style": string(cell.Style),
						"link":  cell.Link,
					}
					if cell.Image != nil {
						view["image"] = cell.Image.DataURI
					}
					cells = append(cells, view)
				}
				rows = append(rows, cells)
			}
			blocks = append(blocks, map[string]any{"kind": "table", "rows": rows})
		case model.ImageBlock:
			blocks = append(blocks, map[string]any{"kind": "image", "src": b.Image.DataURI})
		case model.PageBreak:
			blocks = append(blocks, map[string]any{"kind": "pagebreak"})
		case model.AppendixBlock:
			entries := make([]map[string]any, 0, len(b.Entries))
			for _, entry := range b.Entries {
				entries = append(entries, map[string]any{"label": entry.Label, "text": entry.Text})
			}
			blocks = append(blocks, map[string]any{"kind": "appendix", "title": b.Title, "entries": entries})
		}
	}

	data := map[string]any{
		"language":    string(doc.Language),
		"title":       "Document preview",
		"blocks":      blocks,
		"footerLines": options.FooterTextLines,
		"cssVars":     map[string]any{},
	}

	if doc.Header != nil {
		if content := doc.Header(1); content != nil {
			data["header"] = map[string]any{
				"logo":  content.LogoDataURI,
				"lines": content.TitleLines,
			}
		}
	}
	if doc.Footer != nil {
		data["footer"] = doc.Footer(1, 1)
	}

	if options.Theme != nil {
		vars := make(map[string]any, len(options.Theme.Tokens))
		for token, value := range options.Theme.Tokens {
			vars["--"+token] = value
		}
		data["cssVars"] = vars
	}

	return data
}
