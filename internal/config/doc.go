// Package config holds the per-run UserConfig with its validation rule, and
// the persisted user defaults stored at ~/.boilr/config.yaml (project name and
// destination) that seed it.
package config
