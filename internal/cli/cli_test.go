package cli

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/boilr-labs/boilr/internal/config"
	"github.com/boilr-labs/boilr/internal/registry"
	"github.com/boilr-labs/boilr/internal/scaffold"
	"github.com/spf13/viper"
)

func zipWith(t *testing.T, name, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	w.Write([]byte(body))
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// testRegistry has "foo" at id 0 and "bar" at id 1.
func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	if _, err := reg.RegisterWithDescription("foo", zipWith(t, "foo-root/foo.txt", "foo"), "archives/foo.zip", "Foo starter"); err != nil {
		t.Fatal(err)
	}
	if _, err := reg.Register("bar", zipWith(t, "bar-root/bar.txt", "bar"), "archives/bar.zip"); err != nil {
		t.Fatal(err)
	}
	return reg
}

// run executes the root command with an isolated HOME.
func run(t *testing.T, reg *registry.Registry, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)

	var out, errOut bytes.Buffer
	cmd := NewRootCmd(reg)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCreateByID(t *testing.T) {
	dest := t.TempDir()
	out, err := run(t, testRegistry(t), "--id", "1", "--name", "demo", "--dest", dest)
	if err != nil {
		t.Fatalf("Execute() error: %v\n%s", err, out)
	}

	data, err := os.ReadFile(filepath.Join(dest, "demo", "bar.txt"))
	if err != nil || string(data) != "bar" {
		t.Fatalf("bar.txt = %q, %v", data, err)
	}
	if _, err := os.Stat(filepath.Join(dest, "demo.zip")); !os.IsNotExist(err) {
		t.Error("demo.zip should be removed")
	}

	for _, want := range []string{
		"[PROC]Parsing Arguments... ",
		"[PROC]Building Configuration... ",
		"[PROC]Verifying Configuration... ",
		"[PROC]Attempting Insertion... ",
		"[PROC]Verifying Destination... ",
		"[PROC]Writing Zip Template... ",
		"[PROC]Extracting Template... ",
		"[PROC]Removing ZIP... ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCreateByNameUsesDefaultProjectName(t *testing.T) {
	dest := t.TempDir()
	if out, err := run(t, testRegistry(t), "--template", "foo", "--dest", dest); err != nil {
		t.Fatalf("Execute() error: %v\n%s", err, out)
	}
	if _, err := os.Stat(filepath.Join(dest, config.DefaultProjectName, "foo.txt")); err != nil {
		t.Errorf("expected project at default name: %v", err)
	}
}

func TestCreateIDWinsOverName(t *testing.T) {
	dest := t.TempDir()
	if _, err := run(t, testRegistry(t), "-i", "0", "-t", "bar", "-n", "demo", "-d", dest); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dest, "demo", "foo.txt")); err != nil {
		t.Errorf("id 0 (foo) should win: %v", err)
	}
}

func TestCreateMissingSelector(t *testing.T) {
	_, err := run(t, testRegistry(t), "--dest", t.TempDir())
	if !errors.Is(err, config.ErrMissingSelector) {
		t.Errorf("error = %v, want ErrMissingSelector", err)
	}
}

func TestCreateNotFound(t *testing.T) {
	out, err := run(t, testRegistry(t), "--id", "9", "--template", "nope", "--dest", t.TempDir())
	if !errors.Is(err, registry.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	if !strings.Contains(out, "[PROC]Verifying Configuration... ") || !strings.Contains(out, "FAIL") {
		t.Errorf("expected failed verification line:\n%s", out)
	}
}

func TestCreateMissingDestination(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "absent")
	_, err := run(t, testRegistry(t), "--id", "0", "--dest", dest)
	if !errors.Is(err, scaffold.ErrDestinationNotFound) {
		t.Errorf("error = %v, want ErrDestinationNotFound", err)
	}
}

func TestCreateRejectsNestedProjectName(t *testing.T) {
	_, err := run(t, testRegistry(t), "--id", "0", "--name", "../escape", "--dest", t.TempDir())
	if !errors.Is(err, config.ErrInvalidProjectName) {
		t.Errorf("error = %v, want ErrInvalidProjectName", err)
	}
}

func TestCreateDestinationFromEnv(t *testing.T) {
	dest := t.TempDir()
	t.Setenv("BOILR_DESTINATION", dest)
	if _, err := run(t, testRegistry(t), "--id", "0", "--name", "envy"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dest, "envy", "foo.txt")); err != nil {
		t.Errorf("expected project under env destination: %v", err)
	}
}

func TestPrintRegistryFlag(t *testing.T) {
	out, err := run(t, testRegistry(t), "--print-registry")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "BUILD REGISTRY") || !strings.Contains(out, "ID: 1  NAME: bar  PATH: archives/bar.zip") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRegistryListMatch(t *testing.T) {
	out, err := run(t, testRegistry(t), "registry", "list", "--match", "f*")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "NAME: foo") || strings.Contains(out, "NAME: bar") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRegistryInvalidMatch(t *testing.T) {
	if _, err := run(t, testRegistry(t), "registry", "--match", "[a-"); err == nil {
		t.Error("expected error for malformed glob")
	}
}

func TestRegistryJSON(t *testing.T) {
	out, err := run(t, testRegistry(t), "registry", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var entries []registryEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(entries) != 2 || entries[0].Name != "foo" || entries[0].Description != "Foo starter" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestRegistryShow(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"1", "BUILD NAME: bar"},
		{"foo", "BUILD NAME: foo"},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			out, err := run(t, testRegistry(t), "registry", "show", tt.arg)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(out, tt.want) || !strings.Contains(out, "BUILD SIZE: ") {
				t.Errorf("output:\n%s", out)
			}
		})
	}
}

func TestRegistryShowUnknown(t *testing.T) {
	_, err := run(t, testRegistry(t), "registry", "show", "missing")
	if !errors.Is(err, registry.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestSelectorFromArg(t *testing.T) {
	tests := []struct {
		arg      string
		wantID   int
		wantName string
	}{
		{"0", 0, ""},
		{"12", 12, ""},
		{"-1", -1, "-1"},
		{"go-cli", -1, "go-cli"},
	}
	for _, tt := range tests {
		id, name := selectorFromArg(tt.arg)
		if id != tt.wantID || name != tt.wantName {
			t.Errorf("selectorFromArg(%q) = (%d, %q), want (%d, %q)", tt.arg, id, name, tt.wantID, tt.wantName)
		}
	}
}

func TestConfigSetGet(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)

	exec := func(args ...string) string {
		var out bytes.Buffer
		cmd := NewRootCmd(registry.New())
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(args)
		if err := cmd.Execute(); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		return out.String()
	}

	exec("config", "set", "project_name", "starter")
	if got := strings.TrimSpace(exec("config", "get", "project_name")); got != "starter" {
		t.Errorf("config get = %q, want %q", got, "starter")
	}
	if out := exec("config", "list"); !strings.Contains(out, "destination = .") {
		t.Errorf("config list missing default destination:\n%s", out)
	}
}

func TestVersionCheck(t *testing.T) {
	tests := []struct {
		version    string
		constraint string
		wantErr    bool
	}{
		{"1.4.0", ">= 1.2", false},
		{"v1.4.0", "^1.0.0", false},
		{"0.9.0", ">= 1.0", true},
		{"dev", ">= 0.1", true},
		{"1.0.0", "not a constraint", true},
	}
	for _, tt := range tests {
		err := checkVersion(tt.version, tt.constraint)
		if (err != nil) != tt.wantErr {
			t.Errorf("checkVersion(%q, %q) error = %v, wantErr %v", tt.version, tt.constraint, err, tt.wantErr)
		}
	}
}

func TestVersionJSON(t *testing.T) {
	buildVersion, buildCommit, buildDate = "v1.2.3", "abc123", "2026-01-16"
	t.Cleanup(func() { buildVersion, buildCommit, buildDate = "", "", "" })

	out, err := run(t, registry.New(), "version", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var info map[string]string
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if info["semver"] != "1.2.3" || info["commit"] != "abc123" {
		t.Errorf("info = %v", info)
	}
}
