package services

import "errors"

var (
	// ErrInvalidRecord rejects a create or update that would leave a record
	// without a title or poster, or with a rating outside 0-20.
	ErrInvalidRecord = errors.New("invalid record")
	// ErrNotFound is returned by Get and Update for unknown ids.
	ErrNotFound = errors.New("movie not found")
	// ErrEmptyCollection refuses to export a collection with no records.
	ErrEmptyCollection = errors.New("collection is empty")
	// ErrMalformedImport rejects an import payload that is not a JSON array of records.
	ErrMalformedImport = errors.New("malformed import")
	// ErrPersistence reports a failed load or save. The in-memory collection
	// stays authoritative.
	ErrPersistence = errors.New("persistence failure")
	// ErrArchiveUnavailable is returned when no object storage is configured.
	ErrArchiveUnavailable = errors.New("export archive storage is not configured")
)
