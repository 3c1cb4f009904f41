package cli

import (
	"fmt"

	"github.com/boilr-labs/boilr/internal/config"
	"github.com/boilr-labs/boilr/internal/output"
	"github.com/boilr-labs/boilr/internal/registry"
	"github.com/boilr-labs/boilr/internal/scaffold"
	"github.com/spf13/cobra"
)

type createOptions struct {
	id            int
	template      string
	projectName   string
	destination   string
	printRegistry bool
}

func newCreateOptions() *createOptions {
	return &createOptions{id: config.UnsetID}
}

func (o *createOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&o.id, "id", "i", config.UnsetID, "Template id (see 'registry')")
	f.StringVarP(&o.template, "template", "t", "", "Template name (used when --id is unset or unknown)")
	f.StringVarP(&o.projectName, "name", "n", "", "Project folder name (default from config, else \""+config.DefaultProjectName+"\")")
	f.StringVarP(&o.destination, "dest", "d", "", "Existing directory to create the project in (default from config, else \".\")")
	f.BoolVar(&o.printRegistry, "print-registry", false, "Print the build registry and exit")
}

// userConfig layers explicit flags over the persisted defaults.
func (o *createOptions) userConfig(cmd *cobra.Command) config.UserConfig {
	cfg := config.Defaults()
	cfg.ID = o.id
	cfg.TemplateName = o.template
	if cmd.Flags().Changed("name") {
		cfg.ProjectName = o.projectName
	}
	if cmd.Flags().Changed("dest") {
		cfg.Destination = o.destination
	}
	return cfg
}

func runCreate(cmd *cobra.Command, reg *registry.Registry, opts *createOptions) error {
	out := cmd.OutOrStdout()
	if opts.printRegistry {
		return listRegistry(out, reg, nil)
	}

	steps := output.NewStepPrinter(out)
	steps.Step(output.StepParseArgs, nil)

	cfg := opts.userConfig(cmd)
	steps.Step(output.StepBuildConfig, nil)
	output.Debug("User configuration", "config", cfg.String())

	if err := config.Validate(cfg); err != nil {
		return err
	}
	if err := config.ValidateProjectName(cfg.ProjectName); err != nil {
		steps.Step(output.StepVerifyConfig, err)
		return err
	}

	tmpl, err := reg.Resolve(cfg.ID, cfg.TemplateName)
	steps.Step(output.StepVerifyConfig, err)
	if err != nil {
		return err
	}
	if cfg.HasID() && cfg.HasName() && tmpl.Name != cfg.TemplateName {
		output.Warn("Template id and name disagree; using the id",
			"id", tmpl.ID, "selected", tmpl.Name, "requested", cfg.TemplateName)
	}
	steps.Step(output.StepInsert, nil)

	m := &scaffold.Materializer{Reporter: steps}
	result, err := m.Materialize(tmpl, cfg.Destination, cfg.ProjectName)
	if err != nil {
		return err
	}

	if result.Renamed {
		fmt.Fprintf(out, "Created %s from %s\n", result.ProjectDir, output.StyleNoun.Render(tmpl.Name))
	} else {
		fmt.Fprintf(out, "Extracted %s into %s\n", output.StyleNoun.Render(tmpl.Name), cfg.Destination)
	}
	return nil
}
