package manifest

// BuildTable is the root of builds.yaml.
type BuildTable struct {
	Builds []BuildEntry `yaml:"builds"`
}

// BuildEntry describes one embedded template archive.
type BuildEntry struct {
	Name        string `yaml:"name"`                  // registry name, e.g., "go-cli"
	Archive     string `yaml:"archive"`               // file name inside the embedded archives dir
	Path        string `yaml:"path"`                  // display path shown by the registry listing
	Description string `yaml:"description,omitempty"` // optional summary
}
