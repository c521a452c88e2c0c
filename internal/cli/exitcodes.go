package cli

import "errors"

// Sentinel errors signaling specific exit codes to main.
var (
	// ErrLookupsFailed is returned when a run completed but at least one
	// file or offset lookup failed.
	ErrLookupsFailed = errors.New("lookups failed")

	// ErrConfig wraps configuration loading and validation failures.
	ErrConfig = errors.New("configuration error")

	// ErrUsage wraps invalid command-line arguments.
	ErrUsage = errors.New("invalid usage")
)

// Exit codes for srcbuf.
const (
	// ExitSuccess indicates successful execution with no failed lookups.
	ExitSuccess = 0

	// ExitLookupErrors indicates the run completed but some lookups failed.
	ExitLookupErrors = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70
)

// ExitCodeFromError maps an Execute error to a process exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrLookupsFailed):
		return ExitLookupErrors
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	default:
		return ExitInternalError
	}
}
