// Package srctext provides a line-tracking text buffer for source tooling.
// It defines:
// - Buffer: an append-only character buffer that records line boundaries
// - Line: metadata and content for a single physical line
// - Location / CharRef: value types stamping characters with source positions
//
// A Buffer ingests content incrementally, building its line index as
// characters arrive, and answers offset queries through a locality-biased
// resolver: lookups near the previously resolved line are O(1), anything
// else falls back to binary search over the line index.
//
// Buffers are not safe for concurrent use. The resolver caches the last
// resolved line on the Buffer itself, so even read-only queries mutate
// state; callers sharing a Buffer across goroutines must serialize access.
package srctext
