package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/boilr-labs/boilr/internal/output"
	"github.com/boilr-labs/boilr/internal/registry"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// registryEntry is the JSON form of a registered template.
type registryEntry struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Path        string `json:"path"`
	Size        int    `json:"size"`
	Description string `json:"description,omitempty"`
}

func newRegistryCmd(reg *registry.Registry) *cobra.Command {
	var (
		asJSON bool
		match  string
	)

	list := func(cmd *cobra.Command, args []string) error {
		keep, err := nameFilter(match)
		if err != nil {
			return err
		}
		if asJSON {
			return printRegistryJSON(cmd.OutOrStdout(), reg, keep)
		}
		return listRegistry(cmd.OutOrStdout(), reg, keep)
	}

	cmd := &cobra.Command{
		Use:     "registry",
		Aliases: []string{"pr"},
		Short:   "Print the build registry",
		Long:    `Print the id, name, and source path of every built-in template in id order.`,
		Args:    cobra.NoArgs,
		RunE:    list,
	}
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the build registry",
		Args:  cobra.NoArgs,
		RunE:  list,
	}

	for _, c := range []*cobra.Command{cmd, listCmd} {
		c.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
		c.Flags().StringVar(&match, "match", "", "Only list templates whose name matches this glob (e.g. 'go-*')")
	}

	cmd.AddCommand(listCmd)
	cmd.AddCommand(newRegistryShowCmd(reg))
	return cmd
}

func newRegistryShowCmd(reg *registry.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id-or-name>",
		Short: "Show details of one template",
		Long: `Show the name, source path, and archive size of one template.
A numeric argument is treated as an id, anything else as a name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, name := selectorFromArg(args[0])
			tmpl, err := reg.Resolve(id, name)
			if err != nil {
				return err
			}
			printBuild(cmd.OutOrStdout(), tmpl)
			return nil
		},
	}
}

// selectorFromArg maps a positional argument onto an id or a name.
func selectorFromArg(arg string) (int, string) {
	if id, err := strconv.Atoi(arg); err == nil && id >= 0 {
		return id, ""
	}
	return -1, arg
}

func nameFilter(pattern string) (func(registry.Template) bool, error) {
	if pattern == "" {
		return nil, nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid --match pattern %q", pattern)
	}
	return func(t registry.Template) bool {
		ok, _ := doublestar.Match(pattern, t.Name)
		return ok
	}, nil
}

// listRegistry prints the styled registry banner and the listing lines.
func listRegistry(w io.Writer, reg *registry.Registry, keep func(registry.Template) bool) error {
	if err := output.Banner(w, registry.BannerRule, registry.BannerTitle); err != nil {
		return err
	}
	return reg.ListEntries(w, keep)
}

func printBuild(w io.Writer, t registry.Template) {
	fmt.Fprintf(w, "BUILD ID:   %d\n", t.ID)
	fmt.Fprintf(w, "BUILD NAME: %s\n", t.Name)
	fmt.Fprintf(w, "BUILD PATH: %s\n", t.Path)
	fmt.Fprintf(w, "BUILD SIZE: %s (%d bytes)\n", humanize.Bytes(uint64(t.Size())), t.Size())
	if t.Description != "" {
		fmt.Fprintf(w, "DESCRIPTION: %s\n", t.Description)
	}
}

func printRegistryJSON(w io.Writer, reg *registry.Registry, keep func(registry.Template) bool) error {
	entries := []registryEntry{}
	for _, t := range reg.Templates() {
		if keep != nil && !keep(t) {
			continue
		}
		entries = append(entries, registryEntry{
			ID:          t.ID,
			Name:        t.Name,
			Path:        t.Path,
			Size:        t.Size(),
			Description: t.Description,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
