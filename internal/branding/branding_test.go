package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "boilr" {
		t.Errorf("CLIName() = %q, want %q", got, "boilr")
	}
	if got := HomeDir(); got != ".boilr" {
		t.Errorf("HomeDir() = %q, want %q", got, ".boilr")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("project_name"); got != "BOILR_PROJECT_NAME" {
		t.Errorf("EnvVar() = %q, want %q", got, "BOILR_PROJECT_NAME")
	}
}
