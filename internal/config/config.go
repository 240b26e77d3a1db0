// Package config resolves runtime settings from SCROLL_* environment
// variables. Nothing is read from or written to disk.
package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "SCROLL"

// MaxInterval is the longest auto-scroll interval a session accepts.
const MaxInterval = time.Duration(math.MaxInt32) * time.Microsecond

// Config holds the settings for one pager session.
type Config struct {
	Interval    time.Duration
	TTYPath     string
	LogFile     string
	DecodeUTF16 bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Interval:    2 * time.Second,
		TTYPath:     "/dev/tty",
		DecodeUTF16: true,
	}
}

// SettingError reports an environment variable with an unusable value.
type SettingError struct {
	Key   string
	Value string
	Err   error
}

func (e *SettingError) Error() string {
	return fmt.Sprintf("invalid %s=%q: %v", e.Key, e.Value, e.Err)
}

func (e *SettingError) Unwrap() error {
	return e.Err
}

// EnvName returns the environment variable that sets key.
func EnvName(key string) string {
	return envPrefix + "_" + strings.ToUpper(key)
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return load(viper.New())
}

// LoadFrom reads the configuration using lookup instead of the process
// environment.
func LoadFrom(lookup map[string]string) (Config, error) {
	v := viper.New()
	for key, value := range lookup {
		if !strings.HasPrefix(key, envPrefix+"_") {
			continue
		}
		v.Set(strings.ToLower(strings.TrimPrefix(key, envPrefix+"_")), value)
	}
	return load(v)
}

func load(v *viper.Viper) (Config, error) {
	cfg := Default()

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault("interval", cfg.Interval.String())
	v.SetDefault("tty", cfg.TTYPath)
	v.SetDefault("log_file", cfg.LogFile)
	v.SetDefault("decode_utf16", cfg.DecodeUTF16)

	raw := strings.TrimSpace(v.GetString("interval"))
	interval, err := time.ParseDuration(raw)
	if err != nil {
		return Config{}, &SettingError{Key: EnvName("interval"), Value: raw, Err: err}
	}
	if interval < 0 {
		return Config{}, &SettingError{Key: EnvName("interval"), Value: raw, Err: fmt.Errorf("must not be negative")}
	}
	if interval > MaxInterval {
		interval = MaxInterval
	}
	cfg.Interval = interval

	if tty := strings.TrimSpace(v.GetString("tty")); tty != "" {
		cfg.TTYPath = tty
	}
	cfg.LogFile = strings.TrimSpace(v.GetString("log_file"))

	rawDecode := v.GetString("decode_utf16")
	decode, err := parseBool(rawDecode)
	if err != nil {
		return Config{}, &SettingError{Key: EnvName("decode_utf16"), Value: rawDecode, Err: err}
	}
	cfg.DecodeUTF16 = decode

	return cfg, nil
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "t", "true", "yes", "on":
		return true, nil
	case "0", "f", "false", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean")
	}
}
