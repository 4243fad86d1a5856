// Package config loads toolkit settings from defaults, a config file and
// command line flags, in that order of precedence (later wins).
package config

import (
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/goliatone/go-errors"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/pthm/pagekit"
)

const delimiter = "."

type Loader struct {
	Selector string `koanf:"selector"`
	Message  string `koanf:"message"`
}

type Config struct {
	SiteURL        string         `koanf:"site_url"`
	AdminURL       string         `koanf:"admin_url"`
	OnUnresolvable pagekit.Policy `koanf:"on_unresolvable"`
	Debug          bool           `koanf:"debug"`
	PaddedZero     bool           `koanf:"padded_zero"`
	SigningKey     string         `koanf:"signing_key"`
	Loader         Loader         `koanf:"loader"`
}

// Defaults mirrors Default as a flat koanf map.
func Defaults() map[string]any {
	return map[string]any{
		"site_url":        "",
		"admin_url":       "",
		"on_unresolvable": pagekit.PolicySkip.String(),
		"debug":           false,
		"padded_zero":     false,
		"signing_key":     "",
		"loader.selector": pagekit.DefaultLoaderSelector,
		"loader.message":  pagekit.DefaultErrorMessage,
	}
}

// Default returns the configuration used when nothing else is supplied.
func Default() Config {
	return Config{
		OnUnresolvable: pagekit.PolicySkip,
		Loader: Loader{
			Selector: pagekit.DefaultLoaderSelector,
			Message:  pagekit.DefaultErrorMessage,
		},
	}
}

// RegisterFlags adds the configuration flags to fs. Flag names use dashes;
// they map onto the underscored keys ("site-url" sets site_url).
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("site-url", "", "base URL prepended to site paths")
	fs.String("admin-url", "", "base URL prepended to admin paths")
	fs.String("on-unresolvable", "skip", "what to do with unresolvable targets: skip or error")
	fs.Bool("debug", false, "log skipped targets and other debug output")
	fs.Bool("padded-zero", false, "format a zero decimal as 0.00 instead of 0")
	fs.String("signing-key", "", "key used to sign freeze tokens")
	fs.String("loader.selector", pagekit.DefaultLoaderSelector, "loading indicator selector")
	fs.String("loader.message", pagekit.DefaultErrorMessage, "alert raised when the loader reports an error")
}

// Load builds a Config from defaults, the file at path (skipped when path
// is empty) and the changed flags of fs (skipped when fs is nil).
func Load(path string, fs *pflag.FlagSet) (Config, error) {
	k := koanf.New(delimiter)

	if err := k.Load(confmap.Provider(Defaults(), delimiter), nil); err != nil {
		return Config{}, errors.Wrap(err, errors.CategoryOperation, "failed to load default values").
			WithTextCode("DEFAULT_VALUES_LOAD_FAILED")
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return Config{}, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return Config{}, errors.Wrap(err, errors.CategoryOperation, "failed to load configuration from file").
				WithTextCode("FILE_LOAD_FAILED").
				WithMetadata(map[string]any{
					"filepath": path,
				})
		}
	}

	if fs != nil {
		provider := posflag.ProviderWithValue(fs, delimiter, k, func(key, value string) (string, any) {
			return strings.ReplaceAll(key, "-", "_"), value
		})
		if err := k.Load(provider, nil); err != nil {
			return Config{}, errors.Wrap(err, errors.CategoryOperation, "failed to load configuration from flags").
				WithTextCode("FLAGS_LOAD_FAILED")
		}
	}

	var cfg Config
	err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
		},
	})
	if err != nil {
		return Config{}, errors.Wrap(err, errors.CategoryValidation, "failed to decode configuration").
			WithTextCode("CONFIG_DECODE_FAILED")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	}
	return nil, errors.New("invalid config file type", errors.CategoryValidation).
		WithTextCode("INVALID_CONFIG_FILE_TYPE").
		WithMetadata(map[string]any{
			"filepath":  path,
			"extension": filepath.Ext(path),
		})
}

// Validate checks values that decoding alone cannot catch.
func (c Config) Validate() error {
	if c.Loader.Selector != "" && !pagekit.IsElementName(c.Loader.Selector) {
		return errors.New("loader selector must be a class or id selector", errors.CategoryValidation).
			WithTextCode("INVALID_LOADER_SELECTOR").
			WithMetadata(map[string]any{
				"selector": c.Loader.Selector,
			})
	}
	return nil
}

// Options converts c into toolkit options.
func (c Config) Options() []pagekit.Option {
	opts := []pagekit.Option{
		pagekit.WithPolicy(c.OnUnresolvable),
		pagekit.WithDebug(c.Debug),
		pagekit.WithLoader(c.Loader.Selector, c.Loader.Message),
	}
	if c.PaddedZero {
		opts = append(opts, pagekit.WithPaddedZero())
	}
	if c.SigningKey != "" {
		opts = append(opts, pagekit.WithSigningKey([]byte(c.SigningKey)))
	}
	return opts
}

// URLs returns the URL builder for the configured roots.
func (c Config) URLs() pagekit.URLs {
	return pagekit.URLs{SiteRoot: c.SiteURL, AdminRoot: c.AdminURL}
}
