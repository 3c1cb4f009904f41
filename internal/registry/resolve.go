package registry

import "fmt"

// Resolve maps an id/name request onto one template.
//
// A negative id means "unset" and an empty name means "unset". With only a
// name, the lowest id whose name matches wins. With only an id, the id must be
// a key of builds. With both, a direct id hit is returned without looking at
// the name; otherwise the name lookup is used as a fallback.
//
// Callers must ensure at least one of id or name is set.
func Resolve(builds map[uint]Template, id int, name string) (Template, error) {
	switch {
	case id < 0:
		return byName(builds, name)
	case name == "":
		return byID(builds, id)
	default:
		if t, err := byID(builds, id); err == nil {
			return t, nil
		}
		return byName(builds, name)
	}
}

func byID(builds map[uint]Template, id int) (Template, error) {
	if t, ok := builds[uint(id)]; ok && id >= 0 {
		return t, nil
	}
	return Template{}, fmt.Errorf("%w: no build with id %d", ErrNotFound, id)
}

func byName(builds map[uint]Template, name string) (Template, error) {
	for _, t := range sorted(builds) {
		if t.Name == name {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("%w: no build named %q", ErrNotFound, name)
}
