package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/syntaxforge/internal/scheme"
	"github.com/unkn0wn-root/syntaxforge/internal/syntax"
)

func newListCmd(a *app) *cobra.Command {
	var ramps bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the schemes in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			write := writeSchemeTable
			if ramps {
				write = writeRampTable
			}
			if err := write(tw, a.catalog.All()); err != nil {
				return err
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&ramps, "ramps", false, "List every scheme's ramps and their stops instead")
	return cmd
}

func writeSchemeTable(tw *tabwriter.Writer, defs []scheme.Definition) error {
	if _, err := fmt.Fprintln(tw, "KEY\tNAME\tSOURCE\tAPPEARANCE"); err != nil {
		return err
	}
	for _, def := range defs {
		source := string(def.Source)
		if def.Path != "" {
			source = def.Path
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", def.Key, def.DisplayName, source, def.Metadata.Appearance); err != nil {
			return err
		}
	}
	return nil
}

func writeRampTable(tw *tabwriter.Writer, defs []scheme.Definition) error {
	if _, err := fmt.Fprintln(tw, "KEY\tRAMP\tSTOPS"); err != nil {
		return err
	}
	for _, def := range defs {
		for _, name := range def.Scheme.Ramps.Names() {
			stops, _ := def.Scheme.RampStops(name)
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", def.Key, name, strings.Join(stops, " ")); err != nil {
				return err
			}
		}
	}
	return nil
}

func newCategoriesCmd() *cobra.Command {
	var requiredOnly bool
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the syntax categories a profile can carry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			categories := syntax.Categories()
			if requiredOnly {
				categories = syntax.RequiredCategories()
			}
			out := cmd.OutOrStdout()
			for _, c := range categories {
				kind := lo.Ternary(c.Required(), "required", "optional")
				if _, err := fmt.Fprintf(out, "%-28s %s\n", c, kind); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&requiredOnly, "required", false, "Only list categories every profile carries")
	return cmd
}
