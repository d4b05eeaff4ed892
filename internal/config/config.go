package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"bfctl/internal/bf"
)

// Server holds the HTTP API settings.
type Server struct {
	Addr     string `yaml:"addr" json:"addr" jsonschema:"description=listen address"`
	MaxSteps int    `yaml:"max_steps" json:"max_steps" jsonschema:"minimum=1,description=step budget per request"`
}

// Config is the on-disk bfctl configuration (config.yaml).
type Config struct {
	Delay      time.Duration `yaml:"delay" json:"delay" jsonschema:"type=string,description=watch pacing (Go duration)"`
	DebugDelay time.Duration `yaml:"debug_delay" json:"debug_delay" jsonschema:"type=string,description=debugger watch pacing (Go duration)"`
	TapeLimit  int           `yaml:"tape_limit" json:"tape_limit" jsonschema:"minimum=0,description=largest |pointer|; 0 disables the bound"`
	EOF        string        `yaml:"eof" json:"eof" jsonschema:"enum=fail,enum=zero,enum=prompt"`
	LogLevel   string        `yaml:"log_level" json:"log_level" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
	Server     Server        `yaml:"server" json:"server"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Delay:      300 * time.Millisecond,
		DebugDelay: 100 * time.Millisecond,
		TapeLimit:  bf.DefaultTapeLimit,
		EOF:        "fail",
		LogLevel:   "info",
		Server: Server{
			Addr:     "127.0.0.1:8787",
			MaxSteps: 10_000_000,
		},
	}
}

// fill replaces empty fields with defaults. TapeLimit is left alone: zero
// is meaningful there.
func (c *Config) fill() {
	d := Default()
	if c.Delay <= 0 {
		c.Delay = d.Delay
	}
	if c.DebugDelay <= 0 {
		c.DebugDelay = d.DebugDelay
	}
	c.EOF = strings.ToLower(strings.TrimSpace(c.EOF))
	if c.EOF == "" {
		c.EOF = d.EOF
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = d.LogLevel
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		c.Server.Addr = d.Server.Addr
	}
	if c.Server.MaxSteps <= 0 {
		c.Server.MaxSteps = d.Server.MaxSteps
	}
}

// Validate reports settings that cannot be applied.
func (c Config) Validate() error {
	if c.TapeLimit < 0 {
		return fmt.Errorf("tape_limit: %d is negative (0 disables the bound)", c.TapeLimit)
	}
	switch c.EOF {
	case "fail", "zero", "prompt":
	default:
		return fmt.Errorf("eof: unknown policy %q (want fail, zero or prompt)", c.EOF)
	}
	return nil
}

// Load reads config.yaml. A missing file yields Default() and no error.
func Load() (Config, error) {
	p, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFile(p)
}

// LoadFile reads a config from an explicit path.
func LoadFile(p string) (Config, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), err
	}
	// keys missing from the file keep their default
	c := Default()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", p, err)
	}
	c.fill()
	if err := c.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", p, err)
	}
	return c, nil
}

// Save writes c to config.yaml, creating the directory.
func Save(c Config) (string, error) {
	p, err := Path()
	if err != nil {
		return "", err
	}
	return p, SaveFile(p, c)
}

// SaveFile writes c to p, creating parent dirs.
func SaveFile(p string, c Config) error {
	if strings.TrimSpace(p) == "" {
		return errors.New("empty path")
	}
	c.fill()
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}
