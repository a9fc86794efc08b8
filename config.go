package osm2lanes

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the set of options a transform call is run with, built with
// NewConfig and a set of With... options, the same functional-options shape
// the teacher repo's Parser uses (parser.go's NewParser/With...).
type Config struct {
	IncludeSeparators  bool
	IncludeShoulders   bool
	InferDefaults      bool
	ErrorOnWarnings    bool
	Verbose            bool
}

// String renders the configuration for diagnostics, mirroring Parser.String
// in the teacher repo.
func (cfg *Config) String() string {
	return fmt.Sprintf(`
Transform config:
	include_separators: %t
	include_shoulders: %t
	infer_defaults: %t
	error_on_warnings: %t
	verbose: %t
	`,
		cfg.IncludeSeparators,
		cfg.IncludeShoulders,
		cfg.InferDefaults,
		cfg.ErrorOnWarnings,
		cfg.Verbose,
	)
}

// NewConfig builds a Config with spec.md §6's stated defaults
// (include_separators, include_shoulders and infer_defaults default true;
// error_on_warnings defaults false), then applies any options.
func NewConfig(options ...func(*Config)) *Config {
	cfg := &Config{
		IncludeSeparators: true,
		IncludeShoulders:  true,
		InferDefaults:     true,
		ErrorOnWarnings:   false,
	}
	for _, option := range options {
		option(cfg)
	}
	return cfg
}

// WithSeparators toggles Config.IncludeSeparators.
func WithSeparators(include bool) func(*Config) {
	return func(cfg *Config) { cfg.IncludeSeparators = include }
}

// WithShoulders toggles Config.IncludeShoulders.
func WithShoulders(include bool) func(*Config) {
	return func(cfg *Config) { cfg.IncludeShoulders = include }
}

// WithInferredDefaults toggles Config.InferDefaults.
func WithInferredDefaults(infer bool) func(*Config) {
	return func(cfg *Config) { cfg.InferDefaults = infer }
}

// WithWarningsAsErrors toggles Config.ErrorOnWarnings.
func WithWarningsAsErrors(promote bool) func(*Config) {
	return func(cfg *Config) { cfg.ErrorOnWarnings = promote }
}

// WithVerbose toggles fmt.Printf-style tracing during assembly, the same
// verbose-flag idiom the teacher repo uses throughout (way_raw.go's
// "[WARNING]" prints) rather than a structured logging dependency.
func WithVerbose(verbose bool) func(*Config) {
	return func(cfg *Config) { cfg.Verbose = verbose }
}

// configFile is the YAML document shape LoadConfigFile parses, field names
// matching the Config option names.
type configFile struct {
	IncludeSeparators *bool `yaml:"include_separators"`
	IncludeShoulders  *bool `yaml:"include_shoulders"`
	InferDefaults     *bool `yaml:"infer_defaults"`
	ErrorOnWarnings   *bool `yaml:"error_on_warnings"`
	Verbose           *bool `yaml:"verbose"`
}

// LoadConfigFile reads a YAML document at path and builds a Config from it,
// starting from NewConfig's defaults for any field the document omits. This
// is ambient configuration plumbing (how a caller selects transform
// behaviour), not the "JSON/YAML I/O glue" spec.md §1 excludes (which
// refers to marshaling OSM way data itself).
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config file")
	}
	var doc configFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parse config yaml")
	}
	cfg := NewConfig()
	if doc.IncludeSeparators != nil {
		cfg.IncludeSeparators = *doc.IncludeSeparators
	}
	if doc.IncludeShoulders != nil {
		cfg.IncludeShoulders = *doc.IncludeShoulders
	}
	if doc.InferDefaults != nil {
		cfg.InferDefaults = *doc.InferDefaults
	}
	if doc.ErrorOnWarnings != nil {
		cfg.ErrorOnWarnings = *doc.ErrorOnWarnings
	}
	if doc.Verbose != nil {
		cfg.Verbose = *doc.Verbose
	}
	return cfg, nil
}
