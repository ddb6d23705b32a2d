package main

import (
	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/syntaxforge/internal/preview"
	"github.com/unkn0wn-root/syntaxforge/internal/syntax"
)

func newPreviewCmd(a *app) *cobra.Command {
	var (
		colorFlag string
		sample    string
		only      []string
	)
	cmd := &cobra.Command{
		Use:   "preview [scheme]",
		Short: "Print a swatch for every category of a scheme's profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := a.resolve(args)
			if err != nil {
				return err
			}
			profile, err := preview.ParseColorProfile(colorFlag)
			if err != nil {
				return err
			}
			opts := preview.Options{Profile: profile, Sample: sample}
			for _, name := range only {
				c, err := syntax.ParseCategory(name)
				if err != nil {
					return err
				}
				opts.Only = append(opts.Only, c)
			}
			return preview.Render(cmd.OutOrStdout(), def.Profile, opts)
		},
	}
	cmd.Flags().StringVar(&colorFlag, "color", "auto", "Colour profile: auto, truecolor, 256, 16 or none")
	cmd.Flags().StringVar(&sample, "sample", "", "Sample text to render")
	cmd.Flags().StringSliceVar(&only, "only", nil, "Only show these categories")
	return cmd
}
