package scaffold

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/boilr-labs/boilr/internal/output"
	"github.com/boilr-labs/boilr/internal/platform"
)

// Extractor unpacks the archive at archivePath into destDir, creating destDir
// if needed.
type Extractor interface {
	Extract(archivePath, destDir string) error
}

// ExtractorFunc adapts a function to Extractor.
type ExtractorFunc func(archivePath, destDir string) error

// Extract calls f.
func (f ExtractorFunc) Extract(archivePath, destDir string) error {
	return f(archivePath, destDir)
}

// ZipExtractor extracts zip archives. Existing files are overwritten.
// All writes go through an os.Root opened on destDir, so neither ".."
// entries nor symlinks already present under destDir can redirect an
// entry outside of it.
type ZipExtractor struct{}

// Extract implements Extractor.
func (ZipExtractor) Extract(archivePath, destDir string) error {
	if err := os.MkdirAll(destDir, platform.DirPermNormal); err != nil {
		return fmt.Errorf("creating %s: %w", destDir, err)
	}

	r, err := zip.OpenReader(archivePath)
	if errors.Is(err, zip.ErrInsecurePath) {
		r.Close()
		return fmt.Errorf("%w: %v", ErrUnsafeArchive, err)
	}
	if err != nil {
		return fmt.Errorf("opening zip archive: %w", err)
	}
	defer r.Close()

	root, err := os.OpenRoot(destDir)
	if err != nil {
		return fmt.Errorf("opening %s: %w", destDir, err)
	}
	defer root.Close()

	realRoot, err := filepath.EvalSymlinks(destDir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", destDir, err)
	}

	for _, f := range r.File {
		name, err := entryName(f.Name)
		if err != nil {
			return err
		}

		mode := f.Mode()
		switch {
		case mode.IsDir():
			if err := contained(realRoot, name); err != nil {
				return err
			}
			if err := root.MkdirAll(name, platform.DirPermNormal); err != nil {
				return fmt.Errorf("creating directory %s: %w", f.Name, err)
			}
		case mode&os.ModeSymlink != 0:
			output.Warn("Skipping symlink in archive", "entry", f.Name)
		default:
			if err := contained(realRoot, name); err != nil {
				return err
			}
			if err := writeEntry(root, f, name); err != nil {
				return err
			}
		}
	}
	return nil
}

// entryName converts an archive entry name to a cleaned, root-relative path,
// rejecting absolute names and names that climb out with "..".
func entryName(name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(clean) || filepath.VolumeName(clean) != "" || !filepath.IsLocal(clean) {
		return "", fmt.Errorf("%w: %s", ErrUnsafeArchive, name)
	}
	return clean, nil
}

// contained reports ErrUnsafeArchive when the nearest existing ancestor of
// name (or name itself) resolves through a symlink to a location outside
// realRoot. os.Root refuses such writes anyway; this gives them the
// archive error kind instead of a bare path error.
func contained(realRoot, name string) error {
	p := filepath.Join(realRoot, name)
	for {
		if _, err := os.Lstat(p); err == nil {
			break
		}
		parent := filepath.Dir(p)
		if parent == p || parent == realRoot {
			return nil
		}
		p = parent
	}

	resolved, err := filepath.EvalSymlinks(p)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", name, err)
	}
	rel, err := filepath.Rel(realRoot, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s leaves the destination", ErrUnsafeArchive, name)
	}
	return nil
}

func writeEntry(root *os.Root, f *zip.File, name string) error {
	if dir := filepath.Dir(name); dir != "." {
		if err := root.MkdirAll(dir, platform.DirPermNormal); err != nil {
			return fmt.Errorf("creating directory for %s: %w", f.Name, err)
		}
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("opening zip entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := root.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, platform.FilePermNormal)
	if err != nil {
		return fmt.Errorf("creating %s: %w", f.Name, err)
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return fmt.Errorf("extracting %s: %w", f.Name, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", f.Name, err)
	}

	return platform.Chmod(root, name, platform.FileMode(f.Mode()))
}
