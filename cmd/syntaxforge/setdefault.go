package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/syntaxforge/internal/config"
	"github.com/unkn0wn-root/syntaxforge/internal/scheme"
)

func newSetDefaultCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-default <scheme>",
		Short: "Store the scheme used when build, preview or chroma get no argument",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(args[0]) == "" {
				return fmt.Errorf("scheme name may not be empty")
			}
			def, err := a.resolve(args)
			if err != nil {
				return err
			}

			// A settings file that fails to parse is left alone.
			settings, handle, err := config.LoadSettings()
			if err != nil {
				return err
			}
			settings.DefaultScheme = def.Key
			if err := config.SaveSettings(settings, handle); err != nil {
				return err
			}

			if def.Source == scheme.SourceUser && !lo.Contains(settings.SearchDirs(), filepath.Dir(def.Path)) {
				a.logger.Warn(
					"scheme directory is not listed in settings; pass --scheme-dir when building with this default",
					"dir", filepath.Dir(def.Path),
				)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "default scheme set to %s in %s\n", def.Key, handle.Path)
			return err
		},
	}
}
