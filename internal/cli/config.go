package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/payloads/internal/paths"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "PAYLOADS"

	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"
	cfgKeyOutput    = "output"

	defaultLogLevel  = "warn"
	defaultLogFormat = "text"

	outputText = "text"
	outputJSON = "json"
)

// Configuration errors.
var (
	errInvalidOutput    = errors.New("output must be text or json")
	errInvalidLogFormat = errors.New("log_format must be text or json")
	errInvalidLogLevel  = errors.New("invalid log level")
)

// settings is the validated configuration used by commands.
type settings struct {
	LogLevel  string
	LogFormat string
	Output    string
}

// loadConfig reads config.yaml from configDir. A missing directory or file is
// not an error; defaults and PAYLOADS_* environment variables still apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, defaultLogFormat)
	v.SetDefault(cfgKeyOutput, outputText)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetConfigFile(paths.ConfigFile(configDir))
	v.SetConfigType(configFileType)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || isNotExist(err) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// settingsFrom validates the values held by v.
func settingsFrom(v *viper.Viper) (settings, error) {
	s := settings{
		LogLevel:  strings.ToLower(v.GetString(cfgKeyLogLevel)),
		LogFormat: strings.ToLower(v.GetString(cfgKeyLogFormat)),
		Output:    strings.ToLower(v.GetString(cfgKeyOutput)),
	}
	switch s.Output {
	case outputText, outputJSON:
	default:
		return settings{}, fmt.Errorf("%w: %q", errInvalidOutput, s.Output)
	}
	switch s.LogFormat {
	case "text", "json":
	default:
		return settings{}, fmt.Errorf("%w: %q", errInvalidLogFormat, s.LogFormat)
	}
	if _, err := parseLevel(s.LogLevel); err != nil {
		return settings{}, err
	}
	return s, nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
