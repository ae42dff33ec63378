package imageres

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/image/draw"

	// Decoders for the formats form uploads arrive in. JPEG output is
	// produced regardless of the input format.
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Media categories. Each category maps to one placeholder asset and one
// maximum bounding dimension; the logo category deliberately has no
// placeholder so a missing logo surfaces as a build failure upstream.
const (
	CategoryPhoto     = "photo"
	CategorySignature = "signature"
	CategoryLocation  = "location"
	CategoryDrawing   = "drawing"
	CategoryLogo      = "logo"
)

// noSourceKey stands in for empty source references in cache keys so each
// category caches its placeholder exactly once.
const noSourceKey = "no-source"

const (
	defaultTimeout      = 10 * time.Second
	defaultRetryBackoff = 500 * time.Millisecond
	jpegQuality         = 80
	defaultMaxDimension = 900
)

// maxDimensions bounds the longest image side per category, in pixels.
var defaultMaxDimensions = map[string]int{
	CategoryPhoto:     900,
	CategoryDrawing:   800,
	CategorySignature: 600,
	CategoryLocation:  700,
}

// Option configures the resolver.
type Option func(*Resolver)

// WithHTTPClient injects the client used for asset fetches.
func WithHTTPClient(client *http.Client) Option {
	return func(r *Resolver) {
		if client != nil {
			r.client = client
		}
	}
}

// WithTimeout bounds each individual fetch attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(r *Resolver) {
		if timeout > 0 {
			r.timeout = timeout
		}
	}
}

// WithRetryBackoff sets the pause before the single retry of a failed fetch.
func WithRetryBackoff(backoff time.Duration) Option {
	return func(r *Resolver) {
		if backoff > 0 {
			r.backoff = backoff
		}
	}
}

// WithCache injects a shared cache, letting several resolvers (or tests)
// control cache lifetime explicitly.
func WithCache(cache *Cache) Option {
	return func(r *Resolver) {
		if cache != nil {
			r.cache = cache
		}
	}
}

// WithCacheSize bounds the internally constructed cache. Ignored when
// WithCache supplies one.
func WithCacheSize(capacity int) Option {
	return func(r *Resolver) {
		r.cacheSize = capacity
	}
}

// WithPlaceholderFS loads placeholder assets ("<category>.jpg") from fsys
// instead of the generated defaults.
func WithPlaceholderFS(fsys fs.FS) Option {
	return func(r *Resolver) {
		r.placeholders.fsys = fsys
	}
}

// WithLogger routes degradation notices (failed fetches, decode errors)
// through the supplied logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMaxDimension overrides the resize bound for one category.
func WithMaxDimension(category string, pixels int) Option {
	return func(r *Resolver) {
		if pixels > 0 {
			r.maxDims[category] = pixels
		}
	}
}

// Resolver turns media references into bounded-size data URIs: cache, then
// remote fetch, then category placeholder, downscaling whatever it obtains.
// Every failure mode degrades — to the placeholder, to the unresized
// payload, or to the empty string — and is logged; resolution never aborts
// a document build.
type Resolver struct {
	client       *http.Client
	timeout      time.Duration
	backoff      time.Duration
	cache        *Cache
	cacheSize    int
	placeholders placeholderSet
	maxDims      map[string]int
	logger       *slog.Logger
}

// New constructs a Resolver with bounded defaults.
func New(options ...Option) *Resolver {
	r := &Resolver{
		client:  &http.Client{},
		timeout: defaultTimeout,
		backoff: defaultRetryBackoff,
		maxDims: make(map[string]int, len(defaultMaxDimensions)),
		logger:  slog.Default(),
	}
	for category, pixels := range defaultMaxDimensions {
		r.maxDims[category] = pixels
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.cache == nil {
		r.cache = NewCache(r.cacheSize)
	}
	return r
}

// Resolve returns a data URI for the given source and category, or the
// empty string when no image is available. Identical (category, source)
// pairs are served from cache after the first resolution.
func (r *Resolver) Resolve(ctx context.Context, source, category string) string {
	key := cacheKey(category, source)
	if cached, ok := r.cache.Get(key); ok {
		return cached
	}

	payload := r.fetch(ctx, strings.TrimSpace(source))
	if payload == nil {
		payload = r.placeholders.payload(category)
		if payload == nil {
			if category != CategoryLogo {
				r.logger.Warn("imageres: no placeholder for category", "category", category)
			}
			return ""
		}
	}

	encoded := r.encode(payload, category)
	r.cache.Put(key, encoded)
	return encoded
}

func cacheKey(category, source string) string {
	source = strings.TrimSpace(source)
	if source == "" {
		source = noSourceKey
	}
	return category + "|" + source
}

// fetch performs an HTTP GET with a per-attempt timeout and a single bounded
// retry. Any failure returns nil so resolution falls through to the
// placeholder path.
func (r *Resolver) fetch(ctx context.Context, url string) []byte {
	if url == "" {
		return nil
	}

	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(r.backoff):
			}
		}

		payload, err := r.fetchOnce(ctx, url)
		if err == nil {
			return payload
		}
		r.logger.Warn("imageres: fetch failed", "url", url, "attempt", attempt+1, "error", err)

		if ctx.Err() != nil {
			return nil
		}
	}
	return nil
}

func (r *Resolver) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	res, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("empty body")
	}
	return payload, nil
}

// encode downscales the payload to the category bound and wraps it in a
// data URI. When decoding or re-encoding fails the original payload is
// still returned rather than discarded.
func (r *Resolver) encode(payload []byte, category string) string {
	resized, mime, err := r.downscale(payload, r.maxDimension(category))
	if err != nil {
		r.logger.Warn("imageres: downscale failed, using original payload", "category", category, "error", err)
		return dataURI(http.DetectContentType(payload), payload)
	}
	return dataURI(mime, resized)
}

func (r *Resolver) maxDimension(category string) int {
	if bound, ok := r.maxDims[category]; ok {
		return bound
	}
	return defaultMaxDimension
}

// downscale decodes the payload and re-encodes it as JPEG, scaling so the
// longest side fits inside bound. Images already inside the bound are never
// upscaled, only re-encoded to keep memory predictable downstream.
func (r *Resolver) downscale(payload []byte, bound int) ([]byte, string, error) {
	img, _, err := image.Decode(bytes.NewReader(payload))
	if err != nil {
		return nil, "", fmt.Errorf("decode: %w", err)
	}

	size := img.Bounds().Size()
	if size.X > bound || size.Y > bound {
		scale := float64(bound) / float64(max(size.X, size.Y))
		width := max(int(float64(size.X)*scale), 1)
		height := max(int(float64(size.Y)*scale), 1)

		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, "", fmt.Errorf("encode: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}

func dataURI(mime string, payload []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(payload)
}
