package main

import (
	"bytes"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/syntaxforge/internal/scheme"
	"github.com/unkn0wn-root/syntaxforge/internal/themefile"
)

func newBuildCmd(a *app) *cobra.Command {
	var (
		formatFlag string
		outPath    string
		filePath   string
		copyOut    bool
	)
	cmd := &cobra.Command{
		Use:   "build [scheme]",
		Short: "Build the syntax profile for a scheme and write it as a theme document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				def scheme.Definition
				err error
			)
			if filePath != "" {
				def, err = scheme.LoadFile(filePath)
			} else {
				def, err = a.resolve(args)
			}
			if err != nil {
				return err
			}

			format, err := a.outputFormat(formatFlag, outPath)
			if err != nil {
				return err
			}
			doc := themefile.NewDocument(def.Metadata, def.Profile)
			if copyOut {
				var buf bytes.Buffer
				if err := themefile.Encode(&buf, doc, format); err != nil {
					return err
				}
				if err := clipboard.WriteAll(buf.String()); err != nil {
					return fmt.Errorf("copy theme to clipboard: %w", err)
				}
				a.logger.Info("theme copied to clipboard", "scheme", def.Key, "format", format)
				if outPath == "" {
					return nil
				}
			}
			if outPath == "" {
				return themefile.Encode(cmd.OutOrStdout(), doc, format)
			}
			if err := themefile.WriteFile(outPath, doc, format); err != nil {
				return err
			}
			a.logger.Info("theme written", "scheme", def.Key, "path", outPath, "format", format)
			return nil
		},
	}
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format: json, toml or yaml")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the theme to this path instead of stdout")
	cmd.Flags().StringVar(&filePath, "file", "", "Build from a scheme file instead of the catalog")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy the theme to the system clipboard")
	return cmd
}

// outputFormat prefers the flag, then the output file extension, then the
// configured default.
func (a *app) outputFormat(flag, outPath string) (themefile.Format, error) {
	if flag != "" {
		return themefile.ParseFormat(flag)
	}
	if outPath != "" {
		if format, err := themefile.FormatFromPath(outPath); err == nil {
			return format, nil
		}
	}
	if a.settings.OutputFormat != "" {
		return a.settings.OutputFormat, nil
	}
	return themefile.FormatJSON, nil
}
