// Command spantree loads a weighted graph file and prints either its minimum spanning
// tree (Prim) or its shortest-path tree with every reconstructed path (Dijkstra).
//
// Usage:
//
//	spantree --graph network.yaml --algorithm prim --start 0
//	SPANTREE_OUTPUT=json spantree -g network.toml -a dijkstra
package main

import (
	"errors"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/spantree/internal/logging"
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain returns the process exit code.
func realMain(args []string) int {
	cfg, err := LoadConfig(args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		os.Stderr.WriteString("spantree: " + err.Error() + "\n")
		return 1
	}

	logger, err := logging.NewLogger(logging.Config{Format: cfg.LogFormat, Level: cfg.LogLevel, Output: os.Stderr})
	if err != nil {
		os.Stderr.WriteString("spantree: " + err.Error() + "\n")
		return 1
	}
	defer logger.Sync() //nolint:errcheck

	if err = ValidateConfig(cfg); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return 1
	}
	logger.Debug("configuration resolved", zap.String("config", cfg.String()))

	if err = run(cfg, os.Stdout, logger); err != nil {
		logger.Error("run failed", zap.Error(err), zap.String("graph", cfg.Graph))
		return 1
	}
	return 0
}
