// Package config holds runtime configuration for the ocho binaries,
// backed by viper so every knob can come from a flag or an OCHO_
// environment variable.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flag / env key names.
const (
	KeyListenAddr = "listen-addr"
	KeyStaticDir  = "static-dir"
	KeyDepthLimit = "depth-limit"
	KeyMaxNodes   = "max-nodes"
	KeyDebug      = "debug"
	KeyCPUProfile = "cpu-profile"
)

type Config struct {
	v *viper.Viper
}

func defaultViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("ocho")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyListenAddr, ":8770")
	v.SetDefault(KeyStaticDir, "")
	v.SetDefault(KeyDepthLimit, 50)
	v.SetDefault(KeyMaxNodes, 0)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyCPUProfile, "")
	return v
}

// DefaultConfig returns a config with defaults and environment overrides
// applied, without parsing any flags.
func DefaultConfig() *Config {
	return &Config{v: defaultViper()}
}

// Load parses command-line flags on top of defaults and environment
// variables. Flag values win.
func (c *Config) Load(args []string) error {
	if c.v == nil {
		c.v = defaultViper()
	}
	fs := pflag.NewFlagSet("ocho", pflag.ContinueOnError)
	fs.String(KeyListenAddr, c.v.GetString(KeyListenAddr), "address for the web server to listen on")
	fs.String(KeyStaticDir, c.v.GetString(KeyStaticDir), "directory of static UI files to serve; empty disables")
	fs.Int(KeyDepthLimit, c.v.GetInt(KeyDepthLimit), "move limit for the depth-first engine")
	fs.Int(KeyMaxNodes, c.v.GetInt(KeyMaxNodes), "search node budget per solve; 0 sizes it from physical memory")
	fs.Bool(KeyDebug, c.v.GetBool(KeyDebug), "debug logging")
	fs.String(KeyCPUProfile, c.v.GetString(KeyCPUProfile), "write a CPU profile to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return c.v.BindPFlags(fs)
}

func (c *Config) GetString(key string) string { return c.v.GetString(key) }
func (c *Config) GetInt(key string) int       { return c.v.GetInt(key) }
func (c *Config) GetBool(key string) bool     { return c.v.GetBool(key) }

// Set overrides a single key, mainly for tests and the shell's set
// command.
func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

// AllSettings returns the effective settings for logging at startup.
func (c *Config) AllSettings() map[string]any {
	return c.v.AllSettings()
}
