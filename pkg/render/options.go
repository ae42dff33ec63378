package render

// PageSize names the paper format for paginating renderers.
type PageSize string

const (
	PageSizeLetter PageSize = "LETTER"
	PageSizeA4     PageSize = "A4"
)

// Options describe per-request rendering configuration shared by all
// renderers. Renderers ignore what does not apply to their medium.
type Options struct {
	// PageSize selects the paper format; empty means LETTER.
	PageSize PageSize

	// ShowHeaderOnAllPages repeats the header stack beyond the first page.
	ShowHeaderOnAllPages bool

	// ShowFooterOnAllPages repeats the page footer beyond the first page.
	ShowFooterOnAllPages bool

	// FooterTextLines renders above the page counter in the footer.
	FooterTextLines []string

	// Theme carries resolved theme tokens for renderers that style their
	// output (the HTML preview maps tokens onto CSS custom properties).
	Theme *ThemeConfig
}

// ThemeConfig is the renderer-facing projection of a go-theme selection.
type ThemeConfig struct {
	Theme   string
	Variant string
	Tokens  map[string]string
}
