package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/unkn0wn-root/syntaxforge/internal/themefile"
	"github.com/unkn0wn-root/syntaxforge/internal/util"
)

const (
	SettingsFormatTOML SettingsFormat = "toml"
	SettingsFormatJSON SettingsFormat = "json"
)

type Settings struct {
	DefaultScheme string           `json:"default_scheme"        toml:"default_scheme"`
	OutputFormat  themefile.Format `json:"output_format"         toml:"output_format"`
	SchemeDirs    []string         `json:"scheme_dirs,omitempty" toml:"scheme_dirs,omitempty"`
}

type SettingsFormat string
type SettingsHandle struct {
	Path   string
	Format SettingsFormat
}

func DefaultSettings() Settings {
	return Settings{
		DefaultScheme: "default",
		OutputFormat:  themefile.FormatJSON,
	}
}

// SearchDirs lists the configured scheme directories followed by SchemeDir,
// without blanks or duplicates.
func (s Settings) SearchDirs() []string {
	dirs := append([]string(nil), s.SchemeDirs...)
	dirs = append(dirs, SchemeDir())
	return util.DedupeNonEmptyStrings(dirs)
}

// tries loading TOML first, then JSON, then returns default settings if neither exists.
// parse errors fail immediately but missing files just skip to the next format.
func LoadSettings() (Settings, SettingsHandle, error) {
	dir := Dir()
	candidates := []SettingsHandle{
		{Path: filepath.Join(dir, "settings.toml"), Format: SettingsFormatTOML},
		{Path: filepath.Join(dir, "settings.json"), Format: SettingsFormatJSON},
	}

	var accumulated error
	for _, candidate := range candidates {
		data, err := os.ReadFile(candidate.Path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			accumulated = errors.Join(
				accumulated,
				fmt.Errorf("read settings %q: %w", candidate.Path, err),
			)
			continue
		}

		settings, err := decodeSettings(data, candidate.Format)
		if err != nil {
			return Settings{}, SettingsHandle{}, fmt.Errorf(
				"parse settings %q: %w",
				candidate.Path,
				err,
			)
		}
		settings, err = normaliseSettings(settings)
		if err != nil {
			return Settings{}, SettingsHandle{}, fmt.Errorf(
				"settings %q: %w",
				candidate.Path,
				err,
			)
		}
		return settings, candidate, nil
	}

	if accumulated != nil {
		return Settings{}, SettingsHandle{}, accumulated
	}

	return DefaultSettings(), SettingsHandle{
		Path:   candidates[0].Path,
		Format: SettingsFormatTOML,
	}, nil
}

func normaliseSettings(settings Settings) (Settings, error) {
	settings.DefaultScheme = strings.ToLower(strings.TrimSpace(settings.DefaultScheme))
	if strings.TrimSpace(string(settings.OutputFormat)) != "" {
		format, err := themefile.ParseFormat(string(settings.OutputFormat))
		if err != nil {
			return Settings{}, fmt.Errorf("output_format: %w", err)
		}
		settings.OutputFormat = format
	}
	if len(settings.SchemeDirs) > 0 {
		settings.SchemeDirs = util.DedupeNonEmptyStrings(settings.SchemeDirs)
	}
	if err := mergo.Merge(&settings, DefaultSettings()); err != nil {
		return Settings{}, fmt.Errorf("apply defaults: %w", err)
	}
	return settings, nil
}

func decodeSettings(data []byte, format SettingsFormat) (Settings, error) {
	var settings Settings
	switch format {
	case SettingsFormatTOML:
		if err := toml.Unmarshal(data, &settings); err != nil {
			return Settings{}, err
		}
	case SettingsFormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&settings); err != nil {
			return Settings{}, err
		}
	default:
		return Settings{}, fmt.Errorf("unsupported settings format %q", format)
	}
	return settings, nil
}

func SaveSettings(settings Settings, handle SettingsHandle) error {
	settings, err := normaliseSettings(settings)
	if err != nil {
		return err
	}
	path := handle.Path
	format := handle.Format
	if path == "" {
		path = filepath.Join(Dir(), "settings.toml")
	}
	if format == "" {
		format = SettingsFormatTOML
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure settings directory: %w", err)
	}

	var data []byte
	switch format {
	case SettingsFormatTOML:
		data, err = toml.Marshal(settings)
	case SettingsFormatJSON:
		buffer := &bytes.Buffer{}
		encoder := json.NewEncoder(buffer)
		encoder.SetIndent("", "  ")
		if err = encoder.Encode(settings); err == nil {
			data = buffer.Bytes()
		}
	default:
		return fmt.Errorf("unsupported settings format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err := util.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings %q: %w", path, err)
	}
	return nil
}
