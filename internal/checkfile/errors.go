package checkfile

import "errors"

var (
	// Validation errors
	ErrMissingName   = errors.New("check name is required")
	ErrMissingExpr   = errors.New("check expr is required")
	ErrMissingExpect = errors.New("check expect is required")

	// Loading errors
	ErrInvalidYAML = errors.New("invalid YAML syntax")
	ErrNoChecks    = errors.New("check file contains no checks")
)
