// Package formdoc defines the bilingual form document consumed by the
// rendering pipeline: sections that hold ordered columns of typed items,
// plus the auxiliary order metadata and regulation catalog supplied with
// each build. The package also owns the wire-level concerns — decoding
// (JSON or YAML), schema validation, and asset URL normalization — so that
// everything downstream works with a clean in-memory document.
package formdoc
