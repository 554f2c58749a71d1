// Package errors defines command errors and their exit codes.
package errors

import sterrors "errors"

var (
	// ErrUsage indicates a command usage failure.
	ErrUsage = sterrors.New("usage error")
	// ErrSelfTest indicates at least one known-answer vector did not match.
	ErrSelfTest = sterrors.New("self-test failed")
)

// ExitCode maps an error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case sterrors.Is(err, ErrUsage):
		return 2
	case sterrors.Is(err, ErrSelfTest):
		return 3
	default:
		return 1
	}
}
