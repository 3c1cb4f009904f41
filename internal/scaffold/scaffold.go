package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/boilr-labs/boilr/internal/output"
	"github.com/boilr-labs/boilr/internal/platform"
	"github.com/boilr-labs/boilr/internal/registry"
)

// archiveExt is appended to the project name for the transient archive file.
const archiveExt = ".zip"

// Reporter receives the outcome of each materialization step.
type Reporter interface {
	Step(name string, err error)
}

type nopReporter struct{}

func (nopReporter) Step(string, error) {}

// Materializer turns a template into a project folder. The zero value uses
// ZipExtractor and reports nothing.
type Materializer struct {
	Extractor Extractor
	Reporter  Reporter
}

// Result holds the outcome of a successful materialization.
type Result struct {
	ProjectDir    string // <destination>/<projectName>
	ExtractedRoot string // folder the archive created; empty if none
	Renamed       bool   // false when extraction produced no new folder
}

// ArchivePath returns the transient archive path for a project.
func ArchivePath(destination, projectName string) string {
	return filepath.Join(destination, projectName+archiveExt)
}

// Materialize writes tmpl's archive into destination, extracts it, renames the
// newly created top-level folder to projectName, and deletes the archive.
//
// The destination must already exist. An existing <destination>/<projectName>
// folder is replaced. If extraction fails the archive is left in place.
func (m *Materializer) Materialize(tmpl registry.Template, destination, projectName string) (*Result, error) {
	extractor := m.Extractor
	if extractor == nil {
		extractor = ZipExtractor{}
	}
	reporter := m.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}

	if err := verifyDestination(destination); err != nil {
		reporter.Step(output.StepVerifyDest, err)
		return nil, err
	}
	reporter.Step(output.StepVerifyDest, nil)

	archivePath := ArchivePath(destination, projectName)
	if err := writeArchive(archivePath, destination, tmpl.Archive); err != nil {
		reporter.Step(output.StepWriteZip, err)
		return nil, err
	}
	reporter.Step(output.StepWriteZip, nil)

	before, err := subdirs(destination)
	if err != nil {
		err = fmt.Errorf("%w: listing %s: %v", ErrExtractionFailed, destination, err)
		reporter.Step(output.StepExtract, err)
		return nil, err
	}

	if err := extractor.Extract(archivePath, destination); err != nil {
		err = fmt.Errorf("%w: %w", ErrExtractionFailed, err)
		reporter.Step(output.StepExtract, err)
		return nil, err
	}
	reporter.Step(output.StepExtract, nil)

	result := &Result{ProjectDir: filepath.Join(destination, projectName)}

	root, err := newFolder(destination, before)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrRenameFailed, err)
		reporter.Step(output.StepRename, err)
		return nil, err
	}
	if root == "" {
		output.Info("Archive created no new folder; leaving extracted files in place", "destination", destination)
	} else {
		result.ExtractedRoot = root
		if err := renameInto(root, result.ProjectDir); err != nil {
			reporter.Step(output.StepRename, err)
			return nil, err
		}
		result.Renamed = true
		reporter.Step(output.StepRename, nil)
	}

	if err := os.Remove(archivePath); err != nil {
		err = fmt.Errorf("%w: %v", ErrCleanupFailed, err)
		reporter.Step(output.StepRemoveZip, err)
		return nil, err
	}
	reporter.Step(output.StepRemoveZip, nil)

	return result, nil
}

func verifyDestination(destination string) error {
	info, err := os.Stat(destination)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrDestinationNotFound, destination)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrDestinationNotFound, destination)
	}
	return nil
}

func writeArchive(archivePath, destination string, data []byte) error {
	if err := os.MkdirAll(destination, platform.DirPermNormal); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := os.WriteFile(archivePath, data, platform.FilePermNormal); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

// subdirs returns the set of immediate subdirectory names of dir.
func subdirs(dir string) (map[string]bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			set[e.Name()] = true
		}
	}
	return set, nil
}

// newFolder returns the path of the first subdirectory of dir (by name) that
// is not in before, or "" if extraction created none.
func newFolder(dir string, before map[string]bool) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var found []string
	for _, e := range entries {
		if e.IsDir() && !before[e.Name()] {
			found = append(found, e.Name())
		}
	}
	if len(found) == 0 {
		return "", nil
	}
	if len(found) > 1 {
		output.Warn("Archive created several folders; using the first", "using", found[0], "folders", found)
	}
	return filepath.Join(dir, found[0]), nil
}

// renameDir is replaced in tests to simulate a failing rename.
var renameDir = os.Rename

// renameInto moves src to dst, deleting any existing dst first.
func renameInto(src, dst string) error {
	if src == dst {
		return nil
	}
	if _, err := os.Lstat(dst); err == nil {
		output.Debug("Replacing existing project folder", "path", dst)
		if err := os.RemoveAll(dst); err != nil {
			return fmt.Errorf("%w: removing existing %s: %v", ErrRenameFailed, dst, err)
		}
	}
	if err := renameDir(src, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrRenameFailed, err)
	}
	return nil
}
