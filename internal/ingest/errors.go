package ingest

import (
	"fmt"
	"strings"

	"github.com/tfarhq/tfar_backend/internal/apperrors"
)

// The pipeline errors below all unwrap to apperrors.ErrValidation so handlers
// can map them uniformly, while carrying enough context (row number, field
// name, raw value, expected vs found headers) for the caller to fix the file.

// HeaderMismatchError reports a header row that does not match the TFAR schema.
type HeaderMismatchError struct {
	Expected []string
	Found    []string
}

func (e *HeaderMismatchError) Error() string {
	return fmt.Sprintf("column mismatch: expected (%d): %s; found (%d): %s",
		len(e.Expected), strings.Join(e.Expected, ", "),
		len(e.Found), strings.Join(e.Found, ", "))
}

func (e *HeaderMismatchError) Unwrap() error { return apperrors.ErrValidation }

// MissingFieldError reports a required cell that was empty or absent.
type MissingFieldError struct {
	Row   int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("row %d: %s is required", e.Row, e.Field)
}

func (e *MissingFieldError) Unwrap() error { return apperrors.ErrValidation }

// ConversionError reports a cell value that could not be converted to an integer.
type ConversionError struct {
	Row   int
	Field string
	Raw   string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("row %d: cannot convert %q to integer for %s", e.Row, e.Raw, e.Field)
}

func (e *ConversionError) Unwrap() error { return apperrors.ErrValidation }

// DateParseError reports a cell value that could not be parsed as a date.
type DateParseError struct {
	Row   int
	Field string
	Raw   string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("row %d: cannot parse date %q for %s", e.Row, e.Raw, e.Field)
}

func (e *DateParseError) Unwrap() error { return apperrors.ErrValidation }

// TenantMismatchError reports a client column value that names a tenant other
// than the one selected for the upload.
type TenantMismatchError struct {
	Row   int
	Found string
	Want  string
}

func (e *TenantMismatchError) Error() string {
	return fmt.Sprintf("row %d: client %q does not match selected tenant %q", e.Row, e.Found, e.Want)
}

func (e *TenantMismatchError) Unwrap() error { return apperrors.ErrValidation }

// MalformedFileError reports a workbook that could not be opened or read.
type MalformedFileError struct {
	Err error
}

func (e *MalformedFileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to read workbook: %v", e.Err)
	}
	return "failed to read workbook"
}

func (e *MalformedFileError) Unwrap() error { return apperrors.ErrValidation }
