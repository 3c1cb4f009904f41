// Package cli defines the Cobra command tree for the boilr CLI. The root
// command materializes a template; subcommands list the registry, print the
// version, and manage persisted defaults. Commands receive the template
// registry from NewRootCmd and delegate the work to internal packages.
package cli
