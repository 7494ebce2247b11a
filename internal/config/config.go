// Package config loads wgslspec.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the manifest name searched for by Find.
const FileName = "wgslspec.toml"

// Output formats.
const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
	FormatYAML    = "yaml"
)

// Config is the effective configuration of a run.
type Config struct {
	// Path is the manifest the values came from; empty for defaults.
	Path   string `toml:"-"`
	Input  Input  `toml:"input"`
	Output Output `toml:"output"`
	Cache  Cache  `toml:"cache"`
	// Extract holds extraction knobs.
	Extract Extract `toml:"extract"`
	// Anchors overrides individual document anchors; empty fields keep defaults.
	Anchors Anchors `toml:"anchors"`
}

type Input struct {
	Document string `toml:"document"`
}

type Output struct {
	Dir    string `toml:"dir"`
	Format string `toml:"format"`
}

type Cache struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type Extract struct {
	Placeholders []string `toml:"placeholders"`
}

// Anchors mirrors extract.Anchors with TOML names.
type Anchors struct {
	KeywordSummary             string   `toml:"keyword_summary"`
	AttributeNames             string   `toml:"attribute_names"`
	BuiltinValueNames          string   `toml:"builtin_value_names"`
	InterpolationTypeNames     string   `toml:"interpolation_type_names"`
	InterpolationSamplingNames string   `toml:"interpolation_sampling_names"`
	PredeclaredTypes           string   `toml:"predeclared_types"`
	BuiltinTableClasses        []string `toml:"builtin_table_classes"`
	TextureFunctions           string   `toml:"texture_functions"`
	AtomicFunctions            string   `toml:"atomic_functions"`
	BuiltinInputsOutputs       string   `toml:"builtin_inputs_outputs"`
	AttributeSuffix            string   `toml:"attribute_suffix"`
}

var (
	// ErrUnknownFormat indicates an [output].format outside json|msgpack|yaml.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrEmptyPlaceholder indicates a blank entry in [extract].placeholders.
	ErrEmptyPlaceholder = errors.New("empty placeholder name")
)

// Default returns the configuration used when no manifest exists.
func Default() Config {
	return Config{
		Output:  Output{Dir: "spec", Format: FormatJSON},
		Cache:   Cache{Enabled: true},
		Extract: Extract{Placeholders: []string{"S", "T"}},
	}
}

// Find walks up from startDir to locate wgslspec.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads the manifest at path over the defaults. Relative paths in
// the manifest are resolved against its directory.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	base := filepath.Dir(path)
	if meta.IsDefined("input", "document") {
		cfg.Input.Document = resolve(base, cfg.Input.Document)
	}
	if meta.IsDefined("output", "dir") {
		cfg.Output.Dir = resolve(base, cfg.Output.Dir)
	}
	if meta.IsDefined("cache", "dir") {
		cfg.Cache.Dir = resolve(base, cfg.Cache.Dir)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover loads the manifest named by explicit, or the nearest one above
// startDir, or the defaults when there is none.
func Discover(explicit, startDir string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if _, err := ParseFormat(c.Output.Format); err != nil {
		return err
	}
	for _, p := range c.Extract.Placeholders {
		if strings.TrimSpace(p) == "" {
			return ErrEmptyPlaceholder
		}
	}
	return nil
}

// ParseFormat normalizes an output format name.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case FormatJSON, FormatMsgpack, FormatYAML:
		return f, nil
	case "":
		return FormatJSON, nil
	case "yml":
		return FormatYAML, nil
	case "mp", "msgp":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("%w %q (expected: json|msgpack|yaml)", ErrUnknownFormat, s)
	}
}

// CacheDir returns the cache directory, defaulting to the user cache dir.
func (c Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user cache dir: %w", err)
	}
	return filepath.Join(base, "wgslspec"), nil
}

func resolve(base, p string) string {
	p = strings.TrimSpace(p)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, filepath.FromSlash(p))
}
