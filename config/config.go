// SPDX-License-Identifier: MIT

// Package config loads tollnet settings from TOML or YAML files and optional
// .env overrides.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tollnet/distance"
	"github.com/katalvlaran/tollnet/toll"
)

// ErrInvalidConfig indicates a value outside its documented range.
var ErrInvalidConfig = errors.New("config: invalid value")

// RatesConfig holds the base toll per vehicle class.
type RatesConfig struct {
	Moto  float64 `toml:"moto" yaml:"moto"`
	Car   float64 `toml:"car" yaml:"car"`
	RV    float64 `toml:"rv" yaml:"rv"`
	Bus   float64 `toml:"bus" yaml:"bus"`
	Truck float64 `toml:"truck" yaml:"truck"`
}

// ScheduleConfig holds the time-of-day multipliers and the HH:MM band boundaries.
type ScheduleConfig struct {
	WeekdayMorning float64 `toml:"weekday_morning" yaml:"weekday_morning"`
	WeekdayDay     float64 `toml:"weekday_day" yaml:"weekday_day"`
	WeekdayEvening float64 `toml:"weekday_evening" yaml:"weekday_evening"`
	Weekend        float64 `toml:"weekend" yaml:"weekend"`
	DayStart       string  `toml:"day_start" yaml:"day_start"`
	EveningStart   string  `toml:"evening_start" yaml:"evening_start"`
}

// TollConfig configures the toll calculator.
type TollConfig struct {
	// Precision is the number of decimals tolls are rounded to; -1 disables rounding.
	Precision int `toml:"precision" yaml:"precision"`
	// Workers bounds expansion goroutines; 0 means GOMAXPROCS.
	Workers  int            `toml:"workers" yaml:"workers"`
	Rates    RatesConfig    `toml:"rates" yaml:"rates"`
	Schedule ScheduleConfig `toml:"schedule" yaml:"schedule"`
}

// DistanceConfig configures the threshold neighbor search.
type DistanceConfig struct {
	Tolerance    float64 `toml:"tolerance" yaml:"tolerance"`
	PositiveOnly bool    `toml:"positive_only" yaml:"positive_only"`
}

// LoggingConfig selects the zerolog level and output format.
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Pretty bool   `toml:"pretty" yaml:"pretty"`
}

// Config is the root of a tollnet configuration file.
type Config struct {
	Toll     TollConfig     `toml:"toll" yaml:"toll"`
	Distance DistanceConfig `toml:"distance" yaml:"distance"`
	Logging  LoggingConfig  `toml:"logging" yaml:"logging"`
}

// Default returns the configuration matching the package defaults.
func Default() *Config {
	r, s := toll.DefaultRates, toll.DefaultSchedule

	return &Config{
		Toll: TollConfig{
			Precision: toll.DefaultPrecision,
			Rates: RatesConfig{
				Moto:  r[toll.Moto],
				Car:   r[toll.Car],
				RV:    r[toll.RV],
				Bus:   r[toll.Bus],
				Truck: r[toll.Truck],
			},
			Schedule: ScheduleConfig{
				WeekdayMorning: s.WeekdayMorning,
				WeekdayDay:     s.WeekdayDay,
				WeekdayEvening: s.WeekdayEvening,
				Weekend:        s.Weekend,
				DayStart:       s.DayStart.String(),
				EveningStart:   s.EveningStart.String(),
			},
		},
		Distance: DistanceConfig{
			Tolerance:    distance.DefaultTolerance,
			PositiveOnly: distance.DefaultPositiveOnly,
		},
		Logging: LoggingConfig{Level: zerolog.InfoLevel.String()},
	}
}

// Parse decodes a TOML document over Default and validates the result.
// Keys absent from data keep their default values.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseYAML is Parse for YAML documents; keys are the same as in TOML.
func ParseYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads and parses the config file at path. Files ending in .yaml or
// .yml are decoded as YAML, everything else as TOML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(data)
	}
}

// Validate checks every value against its documented range.
func (c *Config) Validate() error {
	if c.Toll.Precision < toll.DefaultPrecision {
		return fmt.Errorf("toll.precision %d: %w", c.Toll.Precision, ErrInvalidConfig)
	}
	if c.Toll.Workers < 0 {
		return fmt.Errorf("toll.workers %d: %w", c.Toll.Workers, ErrInvalidConfig)
	}
	for _, v := range c.rates() {
		if !finiteNonNegative(v) {
			return fmt.Errorf("toll.rates %v: %w", v, ErrInvalidConfig)
		}
	}
	s, err := c.schedule()
	if err != nil {
		return err
	}
	if err = s.Validate(); err != nil {
		return fmt.Errorf("toll.schedule: %v: %w", err, ErrInvalidConfig)
	}
	if !finiteNonNegative(c.Distance.Tolerance) {
		return fmt.Errorf("distance.tolerance %v: %w", c.Distance.Tolerance, ErrInvalidConfig)
	}
	if _, err = zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level %q: %w", c.Logging.Level, ErrInvalidConfig)
	}

	return nil
}

// TollOptions translates the toll section into calculator options.
// The config is validated first, so the option constructors cannot panic.
func (c *Config) TollOptions() ([]toll.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s, _ := c.schedule() // validated above

	opts := []toll.Option{toll.WithRates(c.rates()), toll.WithSchedule(s)}
	if c.Toll.Precision >= 0 {
		opts = append(opts, toll.WithPrecision(c.Toll.Precision))
	}
	if c.Toll.Workers > 0 {
		opts = append(opts, toll.WithWorkers(c.Toll.Workers))
	}

	return opts, nil
}

// DistanceOptions translates the distance section into distance options.
func (c *Config) DistanceOptions() ([]distance.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	opts := []distance.Option{distance.WithTolerance(c.Distance.Tolerance)}
	if c.Distance.PositiveOnly {
		opts = append(opts, distance.WithPositiveOnly())
	}

	return opts, nil
}

func (c *Config) rates() toll.Rates {
	return toll.Rates{
		toll.Moto:  c.Toll.Rates.Moto,
		toll.Car:   c.Toll.Rates.Car,
		toll.RV:    c.Toll.Rates.RV,
		toll.Bus:   c.Toll.Rates.Bus,
		toll.Truck: c.Toll.Rates.Truck,
	}
}

func (c *Config) schedule() (toll.Schedule, error) {
	sc := c.Toll.Schedule
	day, err := toll.ParseClock(sc.DayStart)
	if err != nil {
		return toll.Schedule{}, fmt.Errorf("toll.schedule.day_start: %v: %w", err, ErrInvalidConfig)
	}
	evening, err := toll.ParseClock(sc.EveningStart)
	if err != nil {
		return toll.Schedule{}, fmt.Errorf("toll.schedule.evening_start: %v: %w", err, ErrInvalidConfig)
	}

	return toll.Schedule{
		WeekdayMorning: sc.WeekdayMorning,
		WeekdayDay:     sc.WeekdayDay,
		WeekdayEvening: sc.WeekdayEvening,
		Weekend:        sc.Weekend,
		DayStart:       day,
		EveningStart:   evening,
	}, nil
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
