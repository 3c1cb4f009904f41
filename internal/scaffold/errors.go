package scaffold

import "errors"

// Failure kinds returned by Materialize. Wrapped errors carry the cause.
var (
	ErrDestinationNotFound = errors.New("destination not found")
	ErrWriteFailed         = errors.New("writing archive failed")
	ErrExtractionFailed    = errors.New("extracting archive failed")
	ErrRenameFailed        = errors.New("renaming extracted folder failed")
	ErrCleanupFailed       = errors.New("removing archive failed")

	// ErrUnsafeArchive is returned by ZipExtractor for entries that would land
	// outside the target directory.
	ErrUnsafeArchive = errors.New("archive entry escapes target directory")
)
