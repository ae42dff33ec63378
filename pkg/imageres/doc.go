// Package imageres resolves media references into bounded-size, base64
// encoded images for embedding in the document model. Resolution runs
// cache-first, then remote fetch with timeout and one retry, then the
// category placeholder; whatever payload is obtained gets downscaled to the
// category bound and re-encoded. All failures degrade instead of
// propagating, so a broken asset costs one empty cell, never the build.
package imageres
