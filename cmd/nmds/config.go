package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/katalvlaran/nmds/mds"
)

// envConfig holds environment defaults; flags override them.
type envConfig struct {
	Dimension  int     `env:"NMDS_DIMENSION" envDefault:"2"`
	Tolerance  float64 `env:"NMDS_TOLERANCE" envDefault:"1e-4"`
	Iterations int     `env:"NMDS_ITERATIONS" envDefault:"200"`
	LogLevel   string  `env:"NMDS_LOG_LEVEL" envDefault:"info"`
}

// config is the resolved command line.
type config struct {
	Input    string
	Output   string
	Format   string
	Props    string
	LogLevel string
	Options  mds.Options
}

// loadConfig resolves env, then flags, then the -props file, later sources
// overriding earlier ones.
func loadConfig(args []string, stderr io.Writer) (*config, error) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	cfg := &config{}
	fs := flag.NewFlagSet("nmds", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Input, "in", "", "proximity matrix, CSV without header (required)")
	fs.StringVar(&cfg.Output, "out", "", "output file (default stdout)")
	fs.StringVar(&cfg.Format, "format", "yaml", "output format: yaml or json")
	fs.StringVar(&cfg.Props, "props", "", "YAML properties file (nmds.isotonic_mds.*)")
	fs.StringVar(&cfg.LogLevel, "log-level", ec.LogLevel, "zerolog level")
	d := fs.Int("d", ec.Dimension, "target dimension (>= 2)")
	tol := fs.Float64("tol", ec.Tolerance, "convergence tolerance")
	iter := fs.Int("iter", ec.Iterations, "maximum iterations")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.Input == "" {
		return nil, fmt.Errorf("%w: -in is required", mds.ErrConfiguration)
	}
	if cfg.Format != "yaml" && cfg.Format != "json" {
		return nil, fmt.Errorf("%w: unknown format %q", mds.ErrConfiguration, cfg.Format)
	}

	o := mds.DefaultOptions()
	o.Dimension, o.Tolerance, o.MaxIterations = *d, *tol, *iter
	props := o.Properties()
	if cfg.Props != "" {
		f, err := os.Open(cfg.Props)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		fileProps, err := mds.ReadProperties(f)
		if err != nil {
			return nil, err
		}
		for k, v := range fileProps {
			props[k] = v
		}
	}
	opts, err := mds.OptionsFromProperties(props)
	if err != nil {
		return nil, err
	}
	cfg.Options = opts

	return cfg, nil
}
