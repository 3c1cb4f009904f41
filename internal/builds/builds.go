package builds

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/boilr-labs/boilr/internal/manifest"
	"github.com/boilr-labs/boilr/internal/output"
	"github.com/boilr-labs/boilr/internal/registry"
)

const (
	tableFile   = "builds.yaml"
	archivesDir = "archives"
)

//go:embed builds.yaml archives/*.zip
var embedded embed.FS

// Load returns a registry populated from the embedded build table.
func Load() (*registry.Registry, error) {
	reg := registry.New()
	if err := Populate(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// Populate registers every embedded build in table order.
func Populate(reg *registry.Registry) error {
	return PopulateFrom(embedded, reg)
}

// PopulateFrom registers the builds listed in fsys/builds.yaml, reading each
// archive from fsys/archives. A missing or empty archive is handed to the
// registry as-is, which rejects and logs it without aborting the rest.
func PopulateFrom(fsys fs.FS, reg *registry.Registry) error {
	data, err := fs.ReadFile(fsys, tableFile)
	if err != nil {
		return fmt.Errorf("reading %s: %w", tableFile, err)
	}

	table, err := manifest.Parse(data)
	if err != nil {
		return err
	}

	for _, entry := range table.Builds {
		archive, err := fs.ReadFile(fsys, path.Join(archivesDir, entry.Archive))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("reading archive %s: %w", entry.Archive, err)
		}

		id, err := reg.RegisterWithDescription(entry.Name, archive, entry.Path, entry.Description)
		if err != nil {
			output.Warn("Skipping build", "name", entry.Name, "path", entry.Path, "reason", err)
			continue
		}
		output.Debug("Registered build", "id", id, "name", entry.Name, "bytes", len(archive))
	}
	return nil
}
