// Command nmds fits an ordinal MDS configuration to a CSV proximity matrix.
//
// Usage:
//
//	nmds -in proximity.csv [-d 2] [-tol 1e-4] [-iter 200] [-props nmds.yaml] [-format yaml|json] [-out file]
//
// Defaults come from NMDS_DIMENSION, NMDS_TOLERANCE, NMDS_ITERATIONS and
// NMDS_LOG_LEVEL (a .env file in the working directory is loaded first).
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/joho/godotenv"
	"github.com/katalvlaran/nmds/mds"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/yaml.v3"
)

// report is the serialized fit.
type report struct {
	Stress      float64     `json:"stress" yaml:"stress"`
	Quality     string      `json:"quality" yaml:"quality"`
	Coordinates [][]float64 `json:"coordinates" yaml:"coordinates"`
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "nmds: .env:", err)
		os.Exit(2)
	}
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Error().Err(err).Msg("nmds failed")
		os.Exit(1)
	}
}

// run is main without process exit, for tests.
func run(args []string, stdout, stderr io.Writer) (err error) {
	cfg, err := loadConfig(args, stderr)
	if err != nil {
		return err
	}
	if err = initLogger(cfg.LogLevel, stderr); err != nil {
		return err
	}
	cfg.Options.Logger = log.Logger

	proximity, err := readProximity(cfg.Input)
	if err != nil {
		return err
	}
	log.Debug().Str("input", cfg.Input).Int("objects", len(proximity)).Msg("proximity loaded")

	res, err := mds.FitOptions(proximity, nil, cfg.Options)
	if err != nil {
		return err
	}

	out := stdout
	if cfg.Output != "" {
		f, createErr := os.Create(cfg.Output)
		if createErr != nil {
			return createErr
		}
		defer closeInto(&err, f, cfg.Output)
		out = f
	}

	return writeReport(out, cfg.Format, report{
		Stress:      res.Stress,
		Quality:     res.Quality.String(),
		Coordinates: res.Coordinates,
	})
}

// closeInto closes c and stores its error in *err unless an earlier error
// is already set.
func closeInto(err *error, c io.Closer, name string) {
	if closeErr := c.Close(); closeErr != nil && *err == nil {
		*err = fmt.Errorf("%s: %w", name, closeErr)
	}
}

// initLogger configures the global zerolog logger for console output.
func initLogger(level string, w io.Writer) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("%w: log level %q", mds.ErrConfiguration, level)
	}
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()

	return nil
}

// readProximity parses a header-less numeric CSV.
func readProximity(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	rows := make([][]float64, len(records))
	for i, rec := range records {
		rows[i] = make([]float64, len(rec))
		for j, field := range rec {
			if rows[i][j], err = strconv.ParseFloat(strings.TrimSpace(field), 64); err != nil {
				return nil, fmt.Errorf("%s: row %d column %d: %w", path, i+1, j+1, err)
			}
		}
	}

	return rows, nil
}

func writeReport(w io.Writer, format string, r report) error {
	switch format {
	case "json":
		b, err := sonic.Marshal(r)
		if err != nil {
			return err
		}
		_, err = w.Write(append(b, '\n'))
		return err
	default:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
}
