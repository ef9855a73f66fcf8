package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Mema5/DistributedMSTComputation/topology"
)

// runConfig is the resolved operator configuration for one run.
type runConfig struct {
	Topology string
	Nodes    int
	Seed     int64
	Prob     float64
	Verbose  bool
	DOT      bool
	Check    bool
}

func defaultRunConfig() runConfig {
	return runConfig{
		Topology: "linear",
		Nodes:    8,
		Seed:     1,
		Prob:     0.3,
	}
}

// fileConfig mirrors runConfig for the optional TOML run-config file.
type fileConfig struct {
	Topology string  `toml:"topology"`
	Nodes    int     `toml:"nodes"`
	Seed     int64   `toml:"seed"`
	Prob     float64 `toml:"probability"`
	Verbose  bool    `toml:"verbose"`
	DOT      bool    `toml:"dot"`
	Check    bool    `toml:"check"`
}

// loadRunConfig overlays the TOML file at path onto the defaults. Only keys
// actually present in the file override; flags are applied on top by main.
func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return runConfig{}, fmt.Errorf("load run config: %w", err)
	}

	if meta.IsDefined("topology") {
		cfg.Topology = strings.ToLower(strings.TrimSpace(raw.Topology))
	}
	if meta.IsDefined("nodes") {
		cfg.Nodes = raw.Nodes
	}
	if meta.IsDefined("seed") {
		cfg.Seed = raw.Seed
	}
	if meta.IsDefined("probability") {
		cfg.Prob = raw.Prob
	}
	if meta.IsDefined("verbose") {
		cfg.Verbose = raw.Verbose
	}
	if meta.IsDefined("dot") {
		cfg.DOT = raw.DOT
	}
	if meta.IsDefined("check") {
		cfg.Check = raw.Check
	}

	return cfg, nil
}

// buildTopology constructs the named topology from cfg.
func buildTopology(cfg runConfig) (*topology.Topology, error) {
	switch cfg.Topology {
	case "linear":
		return topology.Linear(cfg.Nodes)
	case "complete":
		return topology.Complete(cfg.Nodes)
	case "grid":
		return topology.Grid(cfg.Nodes, topology.WithSeed(cfg.Seed))
	case "star":
		return topology.Star(cfg.Nodes)
	case "random":
		return topology.Random(cfg.Nodes, cfg.Prob, topology.WithSeed(cfg.Seed))
	default:
		return nil, fmt.Errorf("unknown topology %q (want linear|complete|grid|star|random)", cfg.Topology)
	}
}
