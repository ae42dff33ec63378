package assemble

import (
	"context"
	"fmt"
	"sort"

	"github.com/goliatone/go-formdoc/pkg/formdoc"
	"github.com/goliatone/go-formdoc/pkg/model"
)

// sectionsOnFirstPage is how many rendered sections stay flowing on the same
// page before the break-before-title policy kicks in. The header section and
// the first user section share the first page.
const sectionsOnFirstPage = 2

// Options configures the assembler.
type Options struct {
	// Images resolves media references. May be nil; image cells then render
	// empty.
	Images model.ImageSource

	// OldAssetBase/NewAssetBase override the asset URL rewrite pair. Both
	// default to the storage-migration constants in pkg/formdoc.
	OldAssetBase string
	NewAssetBase string
}

// Assembler builds the render-ready document model from a form document.
// One Assembler may serve concurrent builds; all per-build state (the
// regulation aggregator, working section slices) is request scoped.
type Assembler struct {
	opts Options
}

// New creates an Assembler with the supplied options.
func New(options Options) *Assembler {
	if options.OldAssetBase == "" {
		options.OldAssetBase = formdoc.DefaultOldAssetBase
	}
	if options.NewAssetBase == "" {
		options.NewAssetBase = formdoc.DefaultNewAssetBase
	}
	return &Assembler{opts: options}
}

var _ model.Builder = (*Assembler)(nil)

// Build runs the full assembly: header injection, URL normalization,
// visibility filtering and ordering, per-section table emission, and the
// regulation appendix. Blocks come out in deterministic order: section
// order, then column-pair order, then row order.
func (a *Assembler) Build(ctx context.Context, doc formdoc.FormDocument, in model.BuildInput) (model.Document, error) {
	if err := ctx.Err(); err != nil {
		return model.Document{}, err
	}

	lang := in.Language
	if lang == "" {
		lang = formdoc.LanguageEnglish
	}

	working := formdoc.FormDocument{
		Sections: append([]formdoc.Section{workOrderSection(in.Order, lang)}, doc.Sections...),
	}
	working = formdoc.NormalizeAssetURLs(working, a.opts.OldAssetBase, a.opts.NewAssetBase)

	visible := make([]formdoc.Section, 0, len(working.Sections))
	for _, section := range working.Sections {
		if section.Show {
			visible = append(visible, section)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Order < visible[j].Order
	})

	regulations := newAggregator(in.Regulations)
	blocks := make([]model.Block, 0, len(visible)*2)

	for index, section := range visible {
		if err := ctx.Err(); err != nil {
			return model.Document{}, err
		}
		blocks = append(blocks, a.assembleSection(ctx, section, sectionInput{
			breakBefore: index >= sectionsOnFirstPage,
			language:    lang,
			regulations: regulations,
			linkImages:  in.LinkImagesToSource,
		})...)
	}

	if entries := regulations.drain(); len(entries) > 0 {
		blocks = append(blocks, model.PageBreak{})
		blocks = append(blocks, model.AppendixBlock{
			Title:   appendixTitle,
			Entries: entries,
		})
	}

	header, footer, err := a.decorations(ctx, in, lang)
	if err != nil {
		return model.Document{}, err
	}

	return model.Document{
		Blocks:   blocks,
		Header:   header,
		Footer:   footer,
		Language: lang,
	}, nil
}

func (a *Assembler) decorations(ctx context.Context, in model.BuildInput, lang formdoc.Language) (model.HeaderFunc, model.FooterFunc, error) {
	logoURI := ""
	if in.HeaderLogo != "" {
		logoURI = a.resolveImage(ctx, in.HeaderLogo, "logo")
		if logoURI == "" {
			return nil, nil, fmt.Errorf("assemble: header logo %q could not be resolved", in.HeaderLogo)
		}
	}

	titleLines := in.HeaderTitleLines

	header := func(int) *model.HeaderContent {
		if logoURI == "" && len(titleLines) == 0 {
			return nil
		}
		return &model.HeaderContent{LogoDataURI: logoURI, TitleLines: titleLines}
	}

	pageWord := "Page %d of %d"
	if lang == formdoc.LanguageSpanish {
		pageWord = "Página %d de %d"
	}
	footer := func(page, total int) string {
		return fmt.Sprintf(pageWord, page, total)
	}

	return header, footer, nil
}

func (a *Assembler) resolveImage(ctx context.Context, source, category string) string {
	if a.opts.Images == nil {
		return ""
	}
	return a.opts.Images.Resolve(ctx, source, category)
}
