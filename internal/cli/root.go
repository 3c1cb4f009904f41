package cli

import (
	"github.com/boilr-labs/boilr/internal/branding"
	"github.com/boilr-labs/boilr/internal/builds"
	"github.com/boilr-labs/boilr/internal/config"
	"github.com/boilr-labs/boilr/internal/output"
	"github.com/boilr-labs/boilr/internal/registry"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Execute builds the registry, runs the root command, and logs any error.
// Build info is injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	reg, err := builds.Load()
	if err != nil {
		output.Error("Loading build registry failed", "err", err)
		return err
	}

	if err := NewRootCmd(reg).Execute(); err != nil {
		output.Error(err.Error())
		return err
	}
	return nil
}

// NewRootCmd returns the command tree bound to reg.
func NewRootCmd(reg *registry.Registry) *cobra.Command {
	var verbose bool
	opts := newCreateOptions()

	root := &cobra.Command{
		Use:   branding.CLIName() + " [flags]",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` scaffolds a new project from one of the templates built into the binary.
Pick a template by id or name, give the project a name, and choose where it goes.

Examples:
  ` + branding.CLIName() + ` --id 0 --name my-tool
  ` + branding.CLIName() + ` --template static-site --name site --dest ~/projects
  ` + branding.CLIName() + ` registry`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetupLogging(cmd.ErrOrStderr(), verbose)
			config.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, reg, opts)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	opts.bind(root)

	root.AddCommand(newRegistryCmd(reg))
	root.AddCommand(newVersionCmd())
	root.AddCommand(newConfigCmd())
	return root
}
