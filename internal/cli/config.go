package cli

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFlag   = "config"
	logLevelFlag = "log-level"
	animateFlag  = "animate"
	delayFlag    = "delay"
	colorFlag    = "color"
	envPrefix    = "GRIDPATH"
)

// Config is the merged view of flags, GRIDPATH_* environment variables and
// the optional config file, in that order of precedence.
type Config struct {
	LogLevel string        `mapstructure:"log-level"`
	Animate  bool          `mapstructure:"animate"`
	Delay    time.Duration `mapstructure:"delay"`
	Color    bool          `mapstructure:"color"`
}

func loadConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, errors.Wrap(err, "binding flags")
	}
	if path := v.GetString(configFlag); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	return &cfg, nil
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}
	return log.NewWithOptions(w, log.Options{Level: lvl, Prefix: "gridpath"}), nil
}
