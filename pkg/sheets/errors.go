package sheets

import "errors"

var (
	// ErrMissingCredentials is returned when no service-account JSON is configured
	ErrMissingCredentials = errors.New("missing service account credentials")

	// ErrMissingSpreadsheetID is returned when no target spreadsheet is configured
	ErrMissingSpreadsheetID = errors.New("missing spreadsheet ID")

	// ErrInvalidCredentials is returned when the credential blob cannot be decoded
	ErrInvalidCredentials = errors.New("invalid service account credentials")

	// ErrReadFailed is returned when reading from the spreadsheet fails
	ErrReadFailed = errors.New("failed to read from spreadsheet")

	// ErrAppendFailed is returned when appending rows to the spreadsheet fails
	ErrAppendFailed = errors.New("failed to append to spreadsheet")
)
