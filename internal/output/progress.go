package output

import (
	"fmt"
	"io"
)

// Step labels printed by the create pipeline.
const (
	StepParseArgs    = "Parsing Arguments"
	StepBuildConfig  = "Building Configuration"
	StepVerifyConfig = "Verifying Configuration"
	StepInsert       = "Attempting Insertion"
	StepVerifyDest   = "Verifying Destination"
	StepWriteZip     = "Writing Zip Template"
	StepExtract      = "Extracting Template"
	StepRename       = "Renaming Project Folder"
	StepRemoveZip    = "Removing ZIP"
)

const (
	procPrefix = "[PROC]"
	procSuffix = "... "
)

// StepPrinter writes one "[PROC]<step>... OK|FAIL" line per reported step.
type StepPrinter struct {
	W io.Writer
}

// NewStepPrinter returns a StepPrinter writing to w.
func NewStepPrinter(w io.Writer) *StepPrinter {
	return &StepPrinter{W: w}
}

// Step prints the outcome of a named step. A nil err is OK.
func (p *StepPrinter) Step(name string, err error) {
	fmt.Fprintln(p.W, FormatStep(name, err == nil))
}

// FormatStep renders a step line.
func FormatStep(name string, ok bool) string {
	status := StyleOK.Render(StatusOK)
	if !ok {
		status = StyleFail.Render(StatusFail)
	}
	return procPrefix + name + procSuffix + status
}
