package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldPaths = "paths"
	FieldFiles = "files"

	// Buffer fields.
	FieldOffset    = "offset"
	FieldOffsets   = "offsets"
	FieldLength    = "length"
	FieldLines     = "lines"
	FieldLine      = "line"
	FieldColumn    = "column"
	FieldLanguage  = "language"
	FieldChunkSize = "chunk_size"

	// Configuration fields.
	FieldFormat = "format"
	FieldColor  = "color"
	FieldConfig = "config"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
