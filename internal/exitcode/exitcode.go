// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates the run finished normally.
	Success = 0

	// ConfigError indicates invalid configuration or flag values.
	ConfigError = 1

	// Interrupted indicates the run was cancelled by the user (128 + SIGINT).
	Interrupted = 130
)
