package main

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ENV_PREFIX = "SPANTREE"

	CONFIG_FILE       = "config"
	GRAPH             = "graph"
	ALGORITHM         = "algorithm"
	START             = "start"
	OUTPUT            = "output"
	LOG_LEVEL         = "log-level"
	LOG_FORMAT        = "log-format"
	MAX_DISTANCE      = "max-distance"
	INF_THRESHOLD     = "inf-threshold"
	REQUIRE_CONNECTED = "require-connected"
)

// Supported values.
const (
	AlgorithmPrim     = "prim"
	AlgorithmDijkstra = "dijkstra"

	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config validation errors
var (
	ErrMissingGraph     = errors.New("graph cannot be empty")
	ErrInvalidAlgorithm = errors.New("algorithm must be 'prim' or 'dijkstra'")
	ErrInvalidStart     = errors.New("start must be non-negative")
	ErrInvalidOutput    = errors.New("output must be 'text', 'json' or 'yaml'")
	ErrInvalidLogFormat = errors.New("log-format must be 'json' or 'text'")
	ErrInvalidLogLevel  = errors.New("log-level must be debug, info, warn, or error")
	ErrInvalidMaxDist   = errors.New("max-distance must be non-negative")
	ErrInvalidThreshold = errors.New("inf-threshold must be positive")
)

// Config is the resolved command configuration.
type Config struct {
	Graph            string
	Algorithm        string
	Start            int
	Output           string
	LogLevel         string
	LogFormat        string
	MaxDistance      int64
	InfThreshold     int64
	RequireConnected bool
}

func (c Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", GRAPH, c.Graph)
	fmt.Fprintf(&b, "%s: %s\n", ALGORITHM, c.Algorithm)
	fmt.Fprintf(&b, "%s: %d\n", START, c.Start)
	fmt.Fprintf(&b, "%s: %s\n", OUTPUT, c.Output)
	fmt.Fprintf(&b, "%s: %s\n", LOG_LEVEL, c.LogLevel)
	fmt.Fprintf(&b, "%s: %s\n", LOG_FORMAT, c.LogFormat)
	fmt.Fprintf(&b, "%s: %d\n", MAX_DISTANCE, c.MaxDistance)
	fmt.Fprintf(&b, "%s: %d\n", INF_THRESHOLD, c.InfThreshold)
	fmt.Fprintf(&b, "%s: %t", REQUIRE_CONNECTED, c.RequireConnected)
	return b.String()
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Algorithm:    AlgorithmDijkstra,
		Output:       OutputText,
		LogLevel:     "info",
		LogFormat:    "text",
		MaxDistance:  math.MaxInt64,
		InfThreshold: math.MaxInt64,
	}
}

// newFlagSet declares every command-line flag.
func newFlagSet() *pflag.FlagSet {
	def := DefaultConfig()
	fs := pflag.NewFlagSet("spantree", pflag.ContinueOnError)
	fs.String(CONFIG_FILE, "", "optional configuration file (yaml, toml or json)")
	fs.StringP(GRAPH, "g", def.Graph, "graph description file (.yaml, .toml or .json)")
	fs.StringP(ALGORITHM, "a", def.Algorithm, "algorithm to run: prim or dijkstra")
	fs.IntP(START, "s", def.Start, "start vertex")
	fs.StringP(OUTPUT, "o", def.Output, "output format: text, json or yaml")
	fs.String(LOG_LEVEL, def.LogLevel, "log level: debug, info, warn or error")
	fs.String(LOG_FORMAT, def.LogFormat, "log format: json or text")
	fs.Int64(MAX_DISTANCE, def.MaxDistance, "dijkstra: leave vertices farther than this unreached")
	fs.Int64(INF_THRESHOLD, def.InfThreshold, "dijkstra: edges at or above this weight are impassable")
	fs.Bool(REQUIRE_CONNECTED, def.RequireConnected, "prim: fail if the graph is not connected")
	return fs
}

// LoadConfig resolves the configuration from args, SPANTREE_* environment variables and
// an optional config file. Flags win over the environment, which wins over the file.
func LoadConfig(args []string) (*Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	options := viper.New()
	def := DefaultConfig()
	options.SetDefault(ALGORITHM, def.Algorithm)
	options.SetDefault(OUTPUT, def.Output)
	options.SetDefault(LOG_LEVEL, def.LogLevel)
	options.SetDefault(LOG_FORMAT, def.LogFormat)
	options.SetDefault(MAX_DISTANCE, def.MaxDistance)
	options.SetDefault(INF_THRESHOLD, def.InfThreshold)
	if err := options.BindPFlags(fs); err != nil {
		return nil, err
	}
	options.SetEnvPrefix(ENV_PREFIX)
	options.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	options.AutomaticEnv()

	if file := options.GetString(CONFIG_FILE); file != "" {
		options.SetConfigFile(file)
		if err := options.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", file, err)
		}
	}

	return &Config{
		Graph:            options.GetString(GRAPH),
		Algorithm:        strings.ToLower(options.GetString(ALGORITHM)),
		Start:            options.GetInt(START),
		Output:           strings.ToLower(options.GetString(OUTPUT)),
		LogLevel:         strings.ToLower(options.GetString(LOG_LEVEL)),
		LogFormat:        strings.ToLower(options.GetString(LOG_FORMAT)),
		MaxDistance:      options.GetInt64(MAX_DISTANCE),
		InfThreshold:     options.GetInt64(INF_THRESHOLD),
		RequireConnected: options.GetBool(REQUIRE_CONNECTED),
	}, nil
}

// ValidateConfig validates the configuration and returns an error if invalid
func ValidateConfig(cfg *Config) error {
	if cfg.Graph == "" {
		return ErrMissingGraph
	}
	if cfg.Algorithm != AlgorithmPrim && cfg.Algorithm != AlgorithmDijkstra {
		return ErrInvalidAlgorithm
	}
	if cfg.Start < 0 {
		return ErrInvalidStart
	}
	if cfg.Output != OutputText && cfg.Output != OutputJSON && cfg.Output != OutputYAML {
		return ErrInvalidOutput
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return ErrInvalidLogFormat
	}
	if cfg.LogLevel != "debug" && cfg.LogLevel != "info" && cfg.LogLevel != "warn" && cfg.LogLevel != "error" {
		return ErrInvalidLogLevel
	}
	if cfg.MaxDistance < 0 {
		return ErrInvalidMaxDist
	}
	if cfg.InfThreshold <= 0 {
		return ErrInvalidThreshold
	}
	return nil
}
