// Package config loads the hebkbd TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pelletier/go-toml"

	"hebkbd/layout"
)

// DefaultPath is read when neither the CONFIG environment variable nor a
// flag names another file.
const DefaultPath = "/etc/hebkbd/hebkbd.conf"

// ErrConfig wraps every validation failure.
var ErrConfig = errors.New("config error")

type Layout struct {
	Variant string `default:"pc"`
}

type Serial struct {
	Port       string
	Match      string `default:"(?i)arduino|usb-serial"`
	Baud       int    `default:"9600"`
	DelayMs    int    `default:"20"`
	SettleMs   int    `default:"2000"`
	DisableDTR bool
}

type Verify struct {
	Device    string
	Match     string `default:"(?i)arduino|leonardo|pro micro|keyboard"`
	TimeoutMs int    `default:"10000"`
	Probe     string `default:"Hello, World! 1234567890 -=[];',./ שלום עולם"`
}

type Hooks struct {
	Done          string
	DoneShell     bool
	DoneTimeoutMs int `default:"5000"`
}

type Config struct {
	Layout Layout
	Serial Serial
	Verify Verify
	Hooks  Hooks
}

var sections = map[string]bool{
	"Layout": true,
	"Serial": true,
	"Verify": true,
	"Hooks":  true,
}

// Path resolves the config file location: the explicit path if set, then
// $CONFIG, then DefaultPath.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env, ok := os.LookupEnv("CONFIG"); ok && env != "" {
		return env
	}
	return DefaultPath
}

// Load reads the config file at path. A file that cannot be read is not an
// error: the embedded defaults are used instead and a warning is logged.
func Load(path string, log hclog.Logger) (*Config, error) {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("unable to read config file, using defaults", "path", path, "error", err)
		data = []byte(Toml)
	} else {
		log.Debug("config loaded", "path", path)
	}
	return Parse(data)
}

// Parse decodes and validates a TOML document.
func Parse(data []byte) (*Config, error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to parse config: %v", ErrConfig, err)
	}
	for _, key := range tree.Keys() {
		if !sections[key] {
			return nil, fmt.Errorf("%w: unknown section name [%s]", ErrConfig, key)
		}
	}
	// Missing values take the default tags of the section structs.
	cfg := &Config{}
	if err := tree.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the embedded configuration.
func Default() *Config {
	cfg, err := Parse([]byte(Toml))
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks the values Parse cannot check by type alone.
func (c *Config) Validate() error {
	if _, err := layout.ParseVariant(c.Layout.Variant); err != nil {
		return fmt.Errorf("%w: [Layout] Variant: %v", ErrConfig, err)
	}
	if c.Serial.Baud < 0 || c.Serial.DelayMs < 0 || c.Serial.SettleMs < 0 {
		return fmt.Errorf("%w: [Serial] Baud, DelayMs and SettleMs must not be negative", ErrConfig)
	}
	if c.Verify.TimeoutMs < 0 || c.Hooks.DoneTimeoutMs < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrConfig)
	}
	for name, re := range map[string]string{
		"[Serial] Match": c.Serial.Match,
		"[Verify] Match": c.Verify.Match,
	} {
		if _, err := regexp.Compile(re); err != nil {
			return fmt.Errorf("%w: invalid regexp for %s: %v", ErrConfig, name, err)
		}
	}
	return nil
}

// Variant returns the configured layout variant.
func (c *Config) Variant() layout.Variant {
	v, _ := layout.ParseVariant(c.Layout.Variant)
	return v
}

// Delay is the pause between characters.
func (s Serial) Delay() time.Duration { return time.Duration(s.DelayMs) * time.Millisecond }

// Settle is the time to wait for the board after opening the port.
func (s Serial) Settle() time.Duration { return time.Duration(s.SettleMs) * time.Millisecond }

// Timeout bounds a verify run.
func (v Verify) Timeout() time.Duration { return time.Duration(v.TimeoutMs) * time.Millisecond }

// DoneTimeout bounds the completion hook.
func (h Hooks) DoneTimeout() time.Duration { return time.Duration(h.DoneTimeoutMs) * time.Millisecond }
