package imageres

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"io/fs"
	"sync"
)

// placeholderSet serves the per-category fallback assets. Deployments that
// ship branded placeholders mount them through WithPlaceholderFS as
// "<category>.jpg"; otherwise a neutral flat-tone image is generated once
// per category. Unknown categories have no placeholder.
type placeholderSet struct {
	fsys fs.FS

	mu        sync.Mutex
	generated map[string][]byte
}

// placeholderTones distinguishes the generated fallbacks so a degraded
// document still hints at what kind of media is missing.
var placeholderTones = map[string]color.Gray{
	CategoryPhoto:     {Y: 0xb8},
	CategorySignature: {Y: 0xe6},
	CategoryDrawing:   {Y: 0xd0},
	CategoryLocation:  {Y: 0xc4},
}

func (p *placeholderSet) payload(category string) []byte {
	if p.fsys != nil {
		if payload, err := fs.ReadFile(p.fsys, category+".jpg"); err == nil && len(payload) > 0 {
			return payload
		}
		// A mounted FS without this category falls through to the generated
		// default rather than dropping the image outright.
	}

	tone, ok := placeholderTones[category]
	if !ok {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if payload, ok := p.generated[category]; ok {
		return payload
	}

	payload := generatePlaceholder(tone)
	if p.generated == nil {
		p.generated = make(map[string][]byte, len(placeholderTones))
	}
	p.generated[category] = payload
	return payload
}

func generatePlaceholder(tone color.Gray) []byte {
	const width, height = 320, 240

	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = tone.Y
	}
	// Thin border so the placeholder reads as an intentional frame, not a
	// rendering artifact.
	border := color.Gray{Y: 0x66}
	for x := 0; x < width; x++ {
		img.SetGray(x, 0, border)
		img.SetGray(x, height-1, border)
	}
	for y := 0; y < height; y++ {
		img.SetGray(0, y, border)
		img.SetGray(width-1, y, border)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil
	}
	return buf.Bytes()
}
