// Package config loads proxy settings from an optional YAML file via
// go-ucfg, layered under built-in defaults. Command-line flags (wired in
// cmd/shadowproxy) layer on top of whatever this package returns.
package config

import (
	"github.com/elastic/go-ucfg"
	"github.com/elastic/go-ucfg/yaml"
)

// Settings holds every surface-configurable knob the core names but does
// not itself interpret: endpoints, pool sizes, the hand-off channel
// capacity, and the per-connection buffer size.
type Settings struct {
	Primary string `config:"primary"`
	Shadow  string `config:"shadow"`
	Listen  string `config:"listen"`

	ServingWorkers  int `config:"serving_workers"`
	AnalyzerWorkers int `config:"analyzer_workers"`
	ChannelCapacity int `config:"channel_capacity"`
	BufferSize      int `config:"buffer_size"`

	MetricsAddr string `config:"metrics_addr"`

	LogStdout   bool   `config:"log_stdout"`
	LogFilename string `config:"log_filename"`
	LogMaxSize  int    `config:"log_max_size"`
	LogMaxAge   int    `config:"log_max_age"`
}

// Defaults returns the core's built-in settings, per the process
// configuration surface.
func Defaults() Settings {
	return Settings{
		Primary:         "127.0.0.1:4001",
		Shadow:          "127.0.0.1:4002",
		Listen:          "127.0.0.1:1234",
		ServingWorkers:  10,
		AnalyzerWorkers: 2,
		ChannelCapacity: 1000,
		BufferSize:      1500,
		LogStdout:       true,
	}
}

// Load reads path as YAML and unpacks it over the built-in defaults.
// Fields absent from the file keep their default value — go-ucfg merges
// sparse documents onto the struct it's unpacking into.
func Load(path string) (Settings, error) {
	settings := Defaults()
	if path == "" {
		return settings, nil
	}

	cfg, err := yaml.NewConfigWithFile(path, ucfg.PathSep("."))
	if err != nil {
		return Settings{}, err
	}
	if err := cfg.Unpack(&settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}
