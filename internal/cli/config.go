package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// maxWorkers caps the number of images processed concurrently.
const maxWorkers = 20

// Config holds the defaults read from a TOML file. Command line flags
// take precedence over the values found in the file.
//
//	width = 640
//	height = 480
//	percentage = false
//	scale = true
//	workers = 4
//	seam_color = "#ff0000"
type Config struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Percentage bool   `toml:"percentage"`
	Scale      bool   `toml:"scale"`
	Workers    int    `toml:"workers"`
	SeamColor  string `toml:"seam_color"`
}

func defaultConfig() Config {
	return Config{
		Workers:   runtime.NumCPU(),
		SeamColor: "#ff0000",
	}
}

// loadConfig returns the default configuration overridden by the file at path.
// Unknown keys are reported as errors.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("could not read config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("unknown keys in config file %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("width and height must not be negative")
	}
	if c.Workers <= 0 || c.Workers > maxWorkers {
		c.Workers = runtime.NumCPU()
	}
	return nil
}

// configFromFlags loads the file named by the --config flag and applies
// every flag explicitly set on the command line.
func configFromFlags(cmd *cobra.Command) (Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("height") {
		cfg.Height, _ = flags.GetInt("height")
	}
	if flags.Changed("perc") {
		cfg.Percentage, _ = flags.GetBool("perc")
	}
	if flags.Changed("scale") {
		cfg.Scale, _ = flags.GetBool("scale")
	}
	if flags.Changed("conc") {
		cfg.Workers, _ = flags.GetInt("conc")
	}
	if flags.Changed("color") {
		cfg.SeamColor, _ = flags.GetString("color")
	}
	return cfg, cfg.validate()
}
