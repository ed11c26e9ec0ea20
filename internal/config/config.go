package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	werrors "github.com/katalvlaran/weaver/internal/errors"
)

// EnvPrefix prefixes environment overrides: WEAVER_SEARCH_TIMEOUT=2s sets
// search.timeout.
const EnvPrefix = "WEAVER_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config is the fully merged weaver configuration.
type Config struct {
	Dictionary DictionaryConfig `koanf:"dictionary"`
	Build      BuildConfig      `koanf:"build"`
	Search     SearchConfig     `koanf:"search"`
	Output     OutputConfig     `koanf:"output"`
	Metrics    MetricsConfig    `koanf:"metrics"`
}

type DictionaryConfig struct {
	Path string `koanf:"path" validate:"omitempty,file"`
}

type BuildConfig struct {
	Workers int `koanf:"workers" validate:"gte=0,lte=1024"`
}

type SearchConfig struct {
	Timeout  time.Duration `koanf:"timeout" validate:"gte=0"`
	MaxDepth int           `koanf:"max_depth" validate:"gte=0"`
}

type OutputConfig struct {
	Color     string `koanf:"color" validate:"oneof=auto always never"`
	Separator string `koanf:"separator" validate:"required"`
	Spinner   bool   `koanf:"spinner"`
}

type MetricsConfig struct {
	Textfile string `koanf:"textfile"`
}

// LoadOptions selects the optional layers of Load.
type LoadOptions struct {
	// File is an explicit config path; it must exist. Empty falls back to
	// DefaultFile, which is skipped when absent.
	File string

	// Overrides are flat dotted keys applied last, normally the flags the
	// user actually set.
	Overrides map[string]interface{}
}

var validate = validator.New()

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// DefaultFile returns $XDG_CONFIG_HOME/weaver/config.toml.
func DefaultFile() string {
	return filepath.Join(xdg.ConfigHome, "weaver", "config.toml")
}

// Load merges, in increasing precedence, the embedded defaults, the config
// file, WEAVER_ environment variables and opts.Overrides, then validates.
// Failures are *errors.WeaverError with code CONFIG_LOAD or CONFIG_INVALID.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, werrors.Wrap(err, werrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Config file
	path, required := opts.File, true
	if path == "" {
		path, required = DefaultFile(), false
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, werrors.Wrapf(err, werrors.ErrConfigLoad, "failed to load config from %s", path)
		}
	} else if required {
		return nil, werrors.Wrapf(err, werrors.ErrConfigLoad, "config file %s not readable", path)
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, werrors.Wrap(err, werrors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, werrors.Wrap(err, werrors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, werrors.Wrap(err, werrors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field constraint and reports all violations at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return werrors.Wrap(err, werrors.ErrConfigValid, "invalid configuration")
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (got %v)", fieldKey(fe), fe.Tag(), fe.Value()))
	}
	return werrors.New(werrors.ErrConfigValid, "invalid configuration: "+strings.Join(msgs, "; ")).
		WithDetail("violations", len(verrs))
}

// envKey maps WEAVER_SEARCH_MAX_DEPTH to search.max_depth: the first
// underscore separates section from key.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

// fieldKey turns Config.Search.MaxDepth into search.maxdepth for messages.
func fieldKey(fe validator.FieldError) string {
	ns := strings.TrimPrefix(fe.StructNamespace(), "Config.")
	return strings.ToLower(ns)
}
