// Package model defines the render-ready document model produced by the
// build pipeline: an ordered block sequence (titles, two-column tables,
// embedded images, page breaks, a regulation appendix) plus the page
// decoration generators a renderer invokes per page. The model is the
// contract between the assembly pipeline and the pluggable renderers; it
// carries no styling beyond named cell roles.
package model
