package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"

	"github.com/calebcase/fixedpoint"
)

// Error is the class of configuration errors.
var Error = errs.Class("config")

// EnvPrefix prefixes every environment variable read by Load, for example
// FIXEDPOINT_FORMAT or FIXEDPOINT_ZERO_PAD.
const EnvPrefix = "FIXEDPOINT"

// Config controls how the tool reads and writes values.
type Config struct {
	Format    string `mapstructure:"format"`
	Precision int    `mapstructure:"precision"`
	ZeroPad   bool   `mapstructure:"zero_pad"`
	Verbose   bool   `mapstructure:"verbose"`

	file string
}

// flagKeys maps flag names onto configuration keys.
var flagKeys = map[string]string{
	"format":   "format",
	"prec":     "precision",
	"zero-pad": "zero_pad",
	"verbose":  "verbose",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("format", "16.16")
	v.SetDefault("precision", -1)
	v.SetDefault("zero_pad", false)
	v.SetDefault("verbose", false)
}

// Load resolves the configuration from, in increasing priority: defaults,
// the file at path (if not empty), FIXEDPOINT_ environment variables and the
// flags in fs that were set on the command line. fs may be nil.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)

		err := v.ReadInConfig()
		if err != nil {
			return nil, Error.Wrap(err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			flag := fs.Lookup(name)
			if flag == nil {
				continue
			}

			err := v.BindPFlag(key, flag)
			if err != nil {
				return nil, Error.Wrap(err)
			}
		}
	}

	cfg := &Config{}

	err := v.Unmarshal(cfg)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	cfg.file = v.ConfigFileUsed()

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the format parses.
func (c *Config) Validate() error {
	_, err := c.ParseFormat()

	return err
}

// ParseFormat returns the configured number format.
func (c *Config) ParseFormat() (fixedpoint.Format, error) {
	f, err := fixedpoint.ParseFormat(c.Format)
	if err != nil {
		return fixedpoint.Format{}, Error.Wrap(err)
	}

	return f, nil
}

// File returns the path of the configuration file that was read, if any.
func (c *Config) File() string {
	return c.file
}
