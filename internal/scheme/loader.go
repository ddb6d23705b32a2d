package scheme

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/unkn0wn-root/syntaxforge/internal/syntax"
)

var ErrExtendsCycle = errors.New("extends cycle")

type Source string

const (
	SourceBuiltin Source = "builtin"
	SourceUser    Source = "user"
)

type Format string

const (
	FormatBuiltin Format = "builtin"
	FormatJSON    Format = "json"
	FormatTOML    Format = "toml"
	FormatYAML    Format = "yaml"
)

const DefaultKey = "default"

type Definition struct {
	Key         string
	DisplayName string
	Metadata    Metadata
	Scheme      Scheme
	Profile     syntax.Profile
	Source      Source
	Format      Format
	Path        string
}

type Catalog struct {
	order []Definition
	index map[string]int
}

func (c Catalog) All() []Definition {
	out := make([]Definition, len(c.order))
	copy(out, c.order)
	return out
}

func (c Catalog) Keys() []string {
	keys := make([]string, len(c.order))
	for i, def := range c.order {
		keys[i] = def.Key
	}
	return keys
}

func (c Catalog) Get(key string) (Definition, bool) {
	if c.index == nil {
		return Definition{}, false
	}
	idx, ok := c.index[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return Definition{}, false
	}
	return c.order[idx], true
}

func (c *Catalog) add(def Definition) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	c.index[def.Key] = len(c.order)
	c.order = append(c.order, def)
}

type pendingScheme struct {
	key    string
	slug   string
	path   string
	format Format
	spec   SchemeSpec
}

// LoadCatalog returns the built-in default scheme plus every scheme file found
// in dirs. Missing directories are skipped. A broken file is reported in the
// returned error while the rest of the catalog still loads.
func LoadCatalog(dirs []string) (Catalog, error) {
	builtin, err := builtinDefinition()
	if err != nil {
		return Catalog{}, err
	}
	usedKeys := map[string]int{DefaultKey: 1}

	var (
		pending     []pendingScheme
		combinedErr error
	)

	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			combinedErr = errors.Join(
				combinedErr,
				fmt.Errorf("schemes: read directory %q: %w", dir, err),
			)
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			format, ok := formatFromExt(entry.Name())
			if !ok {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			spec, err := readSchemeSpec(path, format)
			if err != nil {
				combinedErr = errors.Join(combinedErr, fmt.Errorf("schemes: load %q: %w", path, err))
				continue
			}
			slug := ""
			if spec.Metadata != nil {
				slug = slugify(spec.Metadata.Name)
			}
			if slug == "" {
				baseName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
				slug = slugify(baseName)
			}
			pending = append(pending, pendingScheme{
				key:    ensureUniqueKey(slug, usedKeys),
				slug:   slug,
				path:   path,
				format: format,
				spec:   spec,
			})
		}
	}

	r := resolver{
		resolved: map[string]Definition{DefaultKey: builtin},
		pending:  make(map[string]pendingScheme, len(pending)),
		visiting: make(map[string]bool),
		failed:   make(map[string]error),
		bySlug:   make(map[string][]string),
	}
	for _, p := range pending {
		r.pending[p.key] = p
		r.bySlug[p.slug] = append(r.bySlug[p.slug], p.key)
	}

	defs := []Definition{builtin}
	for _, p := range pending {
		def, err := r.resolve(p.key)
		if err != nil {
			if !r.reported(p.key) {
				combinedErr = errors.Join(combinedErr, fmt.Errorf("schemes: load %q: %w", p.path, err))
			}
			continue
		}
		defs = append(defs, def)
	}

	catalog := assembleCatalog(defs)
	if combinedErr != nil {
		return catalog, combinedErr
	}
	return catalog, nil
}

func builtinDefinition() (Definition, error) {
	s := Default()
	profile, err := syntax.Build(s)
	if err != nil {
		return Definition{}, fmt.Errorf("schemes: built-in default: %w", err)
	}
	return Definition{
		Key:         DefaultKey,
		DisplayName: s.Metadata.Name,
		Metadata:    s.Metadata,
		Scheme:      s,
		Profile:     profile,
		Source:      SourceBuiltin,
		Format:      FormatBuiltin,
	}, nil
}

type resolver struct {
	resolved map[string]Definition
	pending  map[string]pendingScheme
	visiting map[string]bool
	failed   map[string]error
	reports  map[string]bool
	// user scheme keys grouped by the slug of their name; more than one
	// entry means an extends reference to that name is ambiguous.
	bySlug map[string][]string
}

func (r *resolver) reported(key string) bool {
	if r.reports == nil {
		r.reports = make(map[string]bool)
	}
	if r.reports[key] {
		return true
	}
	r.reports[key] = true
	return false
}

func (r *resolver) resolve(key string) (Definition, error) {
	if def, ok := r.resolved[key]; ok {
		return def, nil
	}
	if err, ok := r.failed[key]; ok {
		return Definition{}, err
	}
	p, ok := r.pending[key]
	if !ok {
		return Definition{}, fmt.Errorf("extends: unknown scheme %q", key)
	}
	if r.visiting[key] {
		return Definition{}, fmt.Errorf("%w through %q", ErrExtendsCycle, key)
	}
	r.visiting[key] = true
	defer delete(r.visiting, key)

	def, err := r.compile(p)
	if err != nil {
		r.failed[key] = err
		return Definition{}, err
	}
	r.resolved[key] = def
	return def, nil
}

func (r *resolver) compile(p pendingScheme) (Definition, error) {
	var parent *Scheme
	if p.spec.Metadata != nil && strings.TrimSpace(p.spec.Metadata.Extends) != "" {
		parentKey := slugify(p.spec.Metadata.Extends)
		if parentKey == p.key {
			return Definition{}, fmt.Errorf("%w: %q extends itself", ErrExtendsCycle, p.key)
		}
		if matches := r.bySlug[parentKey]; len(matches) > 1 {
			return Definition{}, fmt.Errorf(
				"extends %q: ambiguous, matches schemes %s",
				p.spec.Metadata.Extends,
				strings.Join(matches, ", "),
			)
		}
		parentDef, err := r.resolve(parentKey)
		if err != nil {
			return Definition{}, fmt.Errorf("extends %q: %w", p.spec.Metadata.Extends, err)
		}
		parent = &parentDef.Scheme
	}

	s, err := Compile(p.spec, parent)
	if err != nil {
		return Definition{}, err
	}
	profile, err := syntax.Build(s)
	if err != nil {
		return Definition{}, err
	}
	displayName := strings.TrimSpace(s.Metadata.Name)
	if displayName == "" {
		displayName = humaniseSlug(p.key)
	}
	return Definition{
		Key:         p.key,
		DisplayName: displayName,
		Metadata:    s.Metadata,
		Scheme:      s,
		Profile:     profile,
		Source:      SourceUser,
		Format:      p.format,
		Path:        p.path,
	}, nil
}

// LoadFile compiles a single scheme file. Files that extend another scheme
// can only extend the built-in default here; use LoadCatalog for the rest.
func LoadFile(path string) (Definition, error) {
	format, ok := formatFromExt(path)
	if !ok {
		return Definition{}, fmt.Errorf("schemes: unsupported file extension %q", filepath.Ext(path))
	}
	spec, err := readSchemeSpec(path, format)
	if err != nil {
		return Definition{}, fmt.Errorf("schemes: load %q: %w", path, err)
	}
	builtin, err := builtinDefinition()
	if err != nil {
		return Definition{}, err
	}
	key := ""
	if spec.Metadata != nil {
		key = slugify(spec.Metadata.Name)
	}
	if key == "" {
		key = slugify(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	}
	r := resolver{
		resolved: map[string]Definition{DefaultKey: builtin},
		pending:  map[string]pendingScheme{},
		visiting: make(map[string]bool),
		failed:   make(map[string]error),
	}
	def, err := r.compile(pendingScheme{key: key, path: path, format: format, spec: spec})
	if err != nil {
		return Definition{}, fmt.Errorf("schemes: load %q: %w", path, err)
	}
	return def, nil
}

func formatFromExt(name string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return FormatTOML, true
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

func readSchemeSpec(path string, format Format) (SchemeSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SchemeSpec{}, err
	}
	return decodeSchemeSpec(data, format)
}

func decodeSchemeSpec(data []byte, format Format) (SchemeSpec, error) {
	var spec SchemeSpec
	switch format {
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&spec); err != nil {
			return SchemeSpec{}, err
		}
	case FormatTOML:
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&spec); err != nil {
			return SchemeSpec{}, err
		}
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
			return SchemeSpec{}, err
		}
	default:
		return SchemeSpec{}, fmt.Errorf("decode: unsupported format %q", format)
	}
	return spec, nil
}

func assembleCatalog(defs []Definition) Catalog {
	var catalog Catalog
	if len(defs) == 0 {
		return catalog
	}
	catalog.add(defs[0])
	if len(defs) == 1 {
		return catalog
	}
	custom := make([]Definition, len(defs)-1)
	copy(custom, defs[1:])
	sort.SliceStable(custom, func(i, j int) bool {
		left := strings.ToLower(custom[i].DisplayName)
		right := strings.ToLower(custom[j].DisplayName)
		if left == right {
			return custom[i].Key < custom[j].Key
		}
		return left < right
	})
	for _, def := range custom {
		catalog.add(def)
	}
	return catalog
}

func ensureUniqueKey(candidate string, used map[string]int) string {
	key := candidate
	if strings.TrimSpace(key) == "" {
		key = "scheme"
	}
	base := key
	counter := used[base]
	if counter == 0 {
		used[base] = 1
		used[key] = 1
		return key
	}
	for {
		suffix := fmt.Sprintf("%s-%d", base, counter)
		if _, exists := used[suffix]; !exists {
			used[base] = counter + 1
			used[suffix] = 1
			return suffix
		}
		counter++
	}
}

func slugify(name string) string {
	var builder strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			builder.WriteRune(r)
			lastDash = false
		case r == '-' || r == '_' || unicode.IsSpace(r):
			if !lastDash {
				builder.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(builder.String(), "-")
}

func humaniseSlug(slug string) string {
	if slug == "" {
		return "Scheme"
	}
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(part)
		parts[i] = string(unicode.ToUpper(first)) + part[size:]
	}
	return strings.Join(parts, " ")
}
