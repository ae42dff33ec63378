package orchestrator

import (
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formdoc/pkg/render"
)

// ThemeSelector resolves a theme name and variant into a concrete selection.
// It aliases the go-theme contract so callers can plug in any provider-backed
// selector without importing this package's internals.
type ThemeSelector = theme.ThemeSelector

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themes = selector
	}
}

// WithThemeDefaults sets the theme and variant applied when a request does
// not choose one. Only consulted when a selector is configured.
func WithThemeDefaults(name, variant string) Option {
	return func(o *Orchestrator) {
		o.defaultTheme = name
		o.defaultVariant = variant
	}
}

// resolveTheme turns the request's theme choice into renderer configuration.
// Without a selector configured the request's theme fields are ignored and
// renderers fall back to their built-in styling.
func (o *Orchestrator) resolveTheme(req Request) (*render.ThemeConfig, error) {
	if o.themes == nil {
		return nil, nil
	}

	name, variant := req.ThemeName, req.ThemeVariant
	if name == "" && variant == "" {
		name, variant = o.defaultTheme, o.defaultVariant
	}
	if name == "" && variant == "" {
		return nil, nil
	}

	selection, err := o.themes.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q/%q: %w", name, variant, err)
	}
	if selection == nil {
		return nil, nil
	}

	cfg := &render.ThemeConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
	}
	if selection.Manifest != nil && len(selection.Manifest.Tokens) > 0 {
		cfg.Tokens = make(map[string]string, len(selection.Manifest.Tokens))
		for token, value := range selection.Manifest.Tokens {
			cfg.Tokens[token] = value
		}
	}
	return cfg, nil
}
