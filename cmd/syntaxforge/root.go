package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/unkn0wn-root/syntaxforge/internal/config"
	"github.com/unkn0wn-root/syntaxforge/internal/scheme"
	"github.com/unkn0wn-root/syntaxforge/internal/util"
)

type app struct {
	logger *log.Logger

	schemeDirs []string
	logLevel   string

	settings config.Settings
	catalog  scheme.Catalog
}

func newRootCmd(stdout io.Writer, logger *log.Logger) *cobra.Command {
	a := &app{logger: logger}

	root := &cobra.Command{
		Use:           "syntaxforge",
		Short:         "Build syntax highlighting themes from colour scheme ramps",
		Long: heredoc.Doc(`
			syntaxforge derives a complete syntax highlighting profile from the
			colour ramps of a scheme, applies the scheme's syntax overrides and
			writes the result as a theme document.

			Schemes are read from the built-in catalog, from every --scheme-dir
			and from the schemes directory under the configuration directory.
		`),
		Example: heredoc.Doc(`
			syntaxforge build oceanic --format toml --out oceanic-theme.toml
			syntaxforge preview --only keyword,string
			syntaxforge diff oceanic default
			syntaxforge set-default oceanic
		`),
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.setup()
		},
	}
	root.SetOut(stdout)

	a.bindFlags(root.PersistentFlags())

	root.AddCommand(
		newBuildCmd(a),
		newListCmd(a),
		newPreviewCmd(a),
		newDiffCmd(a),
		newChromaCmd(a),
		newCategoriesCmd(),
		newSetDefaultCmd(a),
	)
	return root
}

func (a *app) bindFlags(flags *pflag.FlagSet) {
	flags.StringArrayVar(&a.schemeDirs, "scheme-dir", nil, "Additional directory to load schemes from (repeatable)")
	flags.StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}

func (a *app) setup() error {
	level, err := log.ParseLevel(strings.TrimSpace(a.logLevel))
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	a.logger.SetLevel(level)

	settings, handle, err := config.LoadSettings()
	if err != nil {
		a.logger.Warn("settings could not be loaded, using defaults", "err", err)
		settings = config.DefaultSettings()
	} else {
		a.logger.Debug("settings loaded", "path", handle.Path, "format", handle.Format)
	}
	a.settings = settings

	dirs := util.DedupeNonEmptyStrings(append(append([]string(nil), a.schemeDirs...), settings.SearchDirs()...))
	catalog, err := scheme.LoadCatalog(dirs)
	if err != nil {
		a.logger.Warn("some schemes failed to load", "err", err)
	}
	a.catalog = catalog
	a.logger.Debug("scheme catalog ready", "schemes", len(catalog.All()), "dirs", dirs)
	return nil
}

// resolve picks the scheme named by args, then the settings default, then the
// built-in default.
func (a *app) resolve(args []string) (scheme.Definition, error) {
	key := ""
	if len(args) > 0 {
		key = args[0]
	}
	if strings.TrimSpace(key) == "" {
		key = a.settings.DefaultScheme
	}
	if strings.TrimSpace(key) == "" {
		key = scheme.DefaultKey
	}
	def, ok := a.catalog.Get(key)
	if !ok {
		return scheme.Definition{}, fmt.Errorf("scheme %q not found (available: %s)", key, strings.Join(a.catalog.Keys(), ", "))
	}
	return def, nil
}
