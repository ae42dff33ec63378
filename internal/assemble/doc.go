// Package assemble implements the document build pipeline behind the
// model.Builder contract: work order header synthesis, asset URL
// normalization, section ordering and visibility, two-column pairing,
// per-item cell rendering, and regulation aggregation.
package assemble
