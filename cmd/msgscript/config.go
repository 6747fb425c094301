package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// defaultConfigFile is read from the working directory when no config file
// is named.
const defaultConfigFile = "msgscript.toml"

// Config holds the application configuration.
type Config struct {
	Debug    bool   `toml:"debug"`
	Trace    bool   `toml:"trace"`
	LogLevel string `toml:"log_level"`
	NoColor  bool   `toml:"no_color"`
}

// load reads the config file, then reapplies any flags set on the command
// line so that they take precedence. A missing default file is not an error.
func (c *Config) load(cmd *cobra.Command, path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	var file Config
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return errors.Wrapf(err, "reading config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.Errorf("config %s: unknown keys %v", path, undecoded)
	}
	flags := cmd.Flags()
	if !flags.Changed("debug") && md.IsDefined("debug") {
		c.Debug = file.Debug
	}
	if !flags.Changed("trace") && md.IsDefined("trace") {
		c.Trace = file.Trace
	}
	if !flags.Changed("log-level") && md.IsDefined("log_level") {
		c.LogLevel = file.LogLevel
	}
	if !flags.Changed("no-color") && md.IsDefined("no_color") {
		c.NoColor = file.NoColor
	}
	return nil
}

// Level returns the configured minimum log level. Debug and Trace both imply
// the debug level, since dispatch traces are logged there.
func (c *Config) Level() (slog.Level, error) {
	if c.Debug || c.Trace {
		return slog.LevelDebug, nil
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.Errorf("unknown log level %q", c.LogLevel)
}
