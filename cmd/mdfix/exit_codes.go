package main

import (
	"context"
	"errors"
	"os"

	"github.com/alnah/go-mdfix"
	"github.com/alnah/go-mdfix/internal/assets"
	"github.com/alnah/go-mdfix/internal/config"
)

// Exit codes for the mdfix CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Nothing to report
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitCheck   = 4 // check found files that need fixing
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrCheckFailed) {
		return ExitCheck
	}

	// Interrupted runs are reported as general failures.
	if errors.Is(err, context.Canceled) {
		return ExitGeneral
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrBatchFailed) {
		return ExitIO
	}

	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidWorkers) ||
		errors.Is(err, config.ErrInvalidExt) ||
		errors.Is(err, mdfix.ErrStyleNotFound) ||
		errors.Is(err, mdfix.ErrInvalidAssetPath) ||
		errors.Is(err, mdfix.ErrInvalidStyle) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrNeedsOutput) ||
		errors.Is(err, ErrConflictingFlags) ||
		errors.Is(err, ErrTooManyInputs) ||
		errors.Is(err, ErrUnsupportedShell) ||
		isFlagError(err) {
		return ExitUsage
	}

	return ExitGeneral
}

// isFlagError reports whether err came from flag parsing.
func isFlagError(err error) bool {
	var perr *flagParseError
	return errors.As(err, &perr)
}

// flagParseError marks errors returned by pflag so they map to ExitUsage.
type flagParseError struct {
	err error
}

func (e *flagParseError) Error() string { return e.err.Error() }
func (e *flagParseError) Unwrap() error { return e.err }

