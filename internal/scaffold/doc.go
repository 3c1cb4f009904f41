// Package scaffold materializes a registered template into a destination
// directory: it writes the template archive next to the destination's
// existing folders, extracts it, renames the folder the archive created to the
// project name, and removes the archive. Each step is reported as it finishes
// and a failure stops the remaining steps.
package scaffold
