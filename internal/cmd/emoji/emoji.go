// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all command-line commands.
package emoji

// Symbol constants for CLI output provide a consistent visual language across commands.
const (
	// Success represents successful completion of an operation.
	// Used for: completed merges, passing validation.
	Success = "✓"

	// Error represents failures or missing required configuration.
	// Used for: failed operations, missing API keys, validation errors.
	Error = "✗"

	// Warning represents warnings or non-critical issues.
	// Used for: referential warnings, missing benchmark references.
	Warning = "!"

	// Added marks a record created by a merge.
	Added = "+"

	// Updated marks a record changed by a merge.
	Updated = "~"

	// Skipped marks a record left untouched because it was identical.
	Skipped = "="

	// Info represents informational messages.
	Info = "i"
)
