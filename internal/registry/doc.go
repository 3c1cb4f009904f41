// Package registry holds the catalog of built-in project templates and the
// selection rules that map a user's id/name request onto exactly one of them.
// A Registry is populated once at startup and treated as read-only afterwards.
package registry
