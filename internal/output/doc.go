// Package output provides terminal output for the CLI: the process logger,
// the [PROC] step lines printed while a template is materialized, and the
// styling shared by both.
package output
