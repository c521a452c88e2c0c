package runner

import "github.com/yaklabco/srcbuf/pkg/srctext"

// Lookup is the outcome of resolving one requested offset in a file.
type Lookup struct {
	// Offset is the requested absolute character offset.
	Offset int `json:"offset"`

	// Char is the resolved character, empty when the lookup failed.
	Char string `json:"char,omitempty"`

	// Location is the resolved source location, zero when the lookup failed.
	Location srctext.Location `json:"location,omitzero"`

	// Error holds the lookup failure message, empty on success.
	Error string `json:"error,omitempty"`
}

// FileReport is the per-file outcome of a run.
type FileReport struct {
	// Path is the file that was processed.
	Path string `json:"path"`

	// Language is the detected language, empty when detection is disabled.
	Language string `json:"language,omitempty"`

	// Length is the file length in characters.
	Length int `json:"length"`

	// LineCount is the number of lines in the file's line index.
	LineCount int `json:"line_count"`

	// End is the one-past-the-end location of the file.
	End srctext.Location `json:"end"`

	// Lookups contains one entry per requested offset, in request order.
	Lookups []Lookup `json:"lookups,omitempty"`

	// Lines holds the per-line index detail when Options.IncludeLines is set.
	Lines []LineSummary `json:"lines,omitempty"`

	// Error is set when the file could not be read at all.
	Error string `json:"error,omitempty"`
}

// LineSummary is the reportable view of one line in a file's line index.
type LineSummary struct {
	// Index is the zero-based line ordinal.
	Index int `json:"index"`

	// Start is the absolute character offset of the line's first character.
	Start int `json:"start"`

	// End is the absolute offset one past the line's last character.
	End int `json:"end"`

	// Length is the line length in characters, terminators included.
	Length int `json:"length"`

	// Text is the raw line content, terminators included.
	Text string `json:"text"`
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int `json:"files_processed"`

	// FilesErrored is the number of files that could not be read.
	FilesErrored int `json:"files_errored"`

	// LookupsResolved is the number of offset lookups that succeeded.
	LookupsResolved int `json:"lookups_resolved"`

	// LookupsFailed is the number of offset lookups that failed.
	LookupsFailed int `json:"lookups_failed"`
}

// Result is the overall runner result.
type Result struct {
	// Files contains the report for each input file, in input order.
	Files []FileReport `json:"files"`

	// Stats contains aggregate statistics for the run.
	Stats Stats `json:"stats"`
}

// HasFailures reports whether any file or lookup failed.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0 || r.Stats.LookupsFailed > 0
}
