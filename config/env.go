// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys recognised by ApplyEnv.
const (
	EnvLogLevel          = "TOLLNET_LOG_LEVEL"
	EnvLogPretty         = "TOLLNET_LOG_PRETTY"
	EnvTollWorkers       = "TOLLNET_TOLL_WORKERS"
	EnvTollPrecision     = "TOLLNET_TOLL_PRECISION"
	EnvDistanceTolerance = "TOLLNET_DISTANCE_TOLERANCE"
)

var envKeys = []string{EnvLogLevel, EnvLogPretty, EnvTollWorkers, EnvTollPrecision, EnvDistanceTolerance}

// ReadEnv collects tollnet keys from .env files (default ".env") and the
// process environment. Process values win, as with godotenv.Load.
// A missing default file is not an error; a malformed one is.
func ReadEnv(paths ...string) (map[string]string, error) {
	env, err := godotenv.Read(paths...)
	switch {
	case err == nil:
	case len(paths) == 0 && errors.Is(err, fs.ErrNotExist):
		env = map[string]string{}
	case len(paths) == 0:
		return nil, fmt.Errorf("failed to read .env: %w", err)
	default:
		return nil, fmt.Errorf("failed to read env files %v: %w", paths, err)
	}
	for _, k := range envKeys {
		if v, ok := os.LookupEnv(k); ok {
			env[k] = v
		}
	}

	return env, nil
}

// ApplyEnv overrides config values from env and re-validates. On error c is
// left unchanged.
func (c *Config) ApplyEnv(env map[string]string) error {
	next := *c
	if v, ok := env[EnvLogLevel]; ok {
		next.Logging.Level = v
	}
	if v, ok := env[EnvLogPretty]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvLogPretty, v, ErrInvalidConfig)
		}
		next.Logging.Pretty = b
	}
	if v, ok := env[EnvTollWorkers]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvTollWorkers, v, ErrInvalidConfig)
		}
		next.Toll.Workers = n
	}
	if v, ok := env[EnvTollPrecision]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvTollPrecision, v, ErrInvalidConfig)
		}
		next.Toll.Precision = n
	}
	if v, ok := env[EnvDistanceTolerance]; ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvDistanceTolerance, v, ErrInvalidConfig)
		}
		next.Distance.Tolerance = f
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next

	return nil
}
