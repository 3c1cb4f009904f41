package registry

import "errors"

// Template is a named, embedded archive of starter project files.
type Template struct {
	ID          uint   // sequential, equals registration order
	Name        string // e.g., "go-cli"; not required to be unique
	Archive     []byte // raw zip bytes, owned by the registry
	Path        string // display-only source path of the archive
	Description string // optional one-line summary
}

// Size returns the archive size in bytes.
func (t Template) Size() int { return len(t.Archive) }

var (
	// ErrInvalidTemplate is returned by Register when the name, path, or archive is empty.
	ErrInvalidTemplate = errors.New("invalid template")

	// ErrNotFound is returned by Resolve when no template matches the request.
	ErrNotFound = errors.New("template not found")
)
