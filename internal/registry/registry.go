package registry

import (
	"fmt"
	"io"
	"sort"
)

// Banner framing for the registry listing.
const (
	BannerRule  = "========================================"
	BannerTitle = "BUILD REGISTRY"
)

// Registry is an ordered catalog of templates keyed by sequential id.
// It is not safe for concurrent mutation; populate it before use.
type Registry struct {
	templates map[uint]Template
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{templates: make(map[uint]Template)}
}

// Register adds a template and returns its id. The id is the registry size at
// the time of the call. An empty name, path, or archive leaves the registry
// unchanged and returns ErrInvalidTemplate.
func (r *Registry) Register(name string, archive []byte, path string) (uint, error) {
	return r.RegisterWithDescription(name, archive, path, "")
}

// RegisterWithDescription is Register with an optional one-line description.
func (r *Registry) RegisterWithDescription(name string, archive []byte, path, description string) (uint, error) {
	if name == "" || path == "" {
		return 0, fmt.Errorf("%w: missing build name or build path", ErrInvalidTemplate)
	}
	if len(archive) == 0 {
		return 0, fmt.Errorf("%w: archive for %q is empty", ErrInvalidTemplate, name)
	}

	id := uint(len(r.templates))
	owned := make([]byte, len(archive))
	copy(owned, archive)

	r.templates[id] = Template{
		ID:          id,
		Name:        name,
		Archive:     owned,
		Path:        path,
		Description: description,
	}
	return id, nil
}

// Len returns the number of registered templates.
func (r *Registry) Len() int { return len(r.templates) }

// All returns a snapshot of the id → template mapping.
func (r *Registry) All() map[uint]Template {
	out := make(map[uint]Template, len(r.templates))
	for id, t := range r.templates {
		out[id] = t
	}
	return out
}

// Templates returns every template in ascending id order.
func (r *Registry) Templates() []Template {
	return sorted(r.templates)
}

// Resolve selects a template from this registry. See Resolve.
func (r *Registry) Resolve(id int, name string) (Template, error) {
	return Resolve(r.templates, id, name)
}

// List writes the banner followed by one line per template in ascending id order.
func (r *Registry) List(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n%s\n", BannerRule, BannerTitle, BannerRule); err != nil {
		return err
	}
	return r.ListEntries(w, nil)
}

// ListEntries writes the listing lines without the banner, restricted to
// templates for which keep returns true. A nil keep lists everything.
func (r *Registry) ListEntries(w io.Writer, keep func(Template) bool) error {
	for _, t := range r.Templates() {
		if keep != nil && !keep(t) {
			continue
		}
		if _, err := fmt.Fprintln(w, FormatLine(t)); err != nil {
			return err
		}
	}
	return nil
}

// FormatLine renders a single registry listing line.
func FormatLine(t Template) string {
	return fmt.Sprintf("ID: %d  NAME: %s  PATH: %s", t.ID, t.Name, t.Path)
}

func sorted(builds map[uint]Template) []Template {
	out := make([]Template, 0, len(builds))
	for _, t := range builds {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
