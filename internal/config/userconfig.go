package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// UnsetID marks UserConfig.ID as not provided.
	UnsetID = -1

	DefaultProjectName = "boilr-template"
	DefaultDestination = "."
)

// ErrMissingSelector means neither a template id nor a template name was given.
var ErrMissingSelector = errors.New("no template id or template name provided, you must specify at least one")

// UserConfig is one run's request: which template, what to call it, where to put it.
type UserConfig struct {
	ID           int    // template id; negative means unset
	TemplateName string // empty means unset
	ProjectName  string
	Destination  string
}

// NewUserConfig returns a UserConfig with the built-in defaults.
func NewUserConfig() UserConfig {
	return UserConfig{
		ID:          UnsetID,
		ProjectName: DefaultProjectName,
		Destination: DefaultDestination,
	}
}

// HasID reports whether a template id was provided.
func (c UserConfig) HasID() bool { return c.ID >= 0 }

// HasName reports whether a template name was provided.
func (c UserConfig) HasName() bool { return c.TemplateName != "" }

// Validate requires at least one of ID or TemplateName.
func Validate(c UserConfig) error {
	if !c.HasID() && !c.HasName() {
		return ErrMissingSelector
	}
	return nil
}

// String renders the config for debug logging.
func (c UserConfig) String() string {
	return fmt.Sprintf("id=%d template=%q project=%q destination=%q",
		c.ID, c.TemplateName, c.ProjectName, c.Destination)
}

// ErrInvalidProjectName means the project name cannot be used as a folder name.
var ErrInvalidProjectName = errors.New("invalid project name")

// ValidateProjectName requires a single, non-empty path element.
func ValidateProjectName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q must be a single folder name", ErrInvalidProjectName, name)
	}
	return nil
}
