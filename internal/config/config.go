// Package config defines the data structures related to configuration and
// includes functions for loading, parsing and validating the config.
package config

import (
	"fmt"
	"io"
	"time"

	"github.com/iwvelando/college-roi/internal/analysis"
	"github.com/iwvelando/college-roi/internal/lookup"
	"github.com/iwvelando/college-roi/pkg/constants"
	"github.com/iwvelando/college-roi/pkg/validation"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for college-roi.
type Configuration struct {
	Assumptions  analysis.Assumptions `yaml:"assumptions"`
	Selections   []analysis.Selection `yaml:"selections"`
	Institutions []lookup.Institution `yaml:"institutions,omitempty"`
	Programs     []lookup.Program     `yaml:"programs,omitempty"`
	Regions      []lookup.Region      `yaml:"regions,omitempty"`
	Cache        CacheConfig          `yaml:"cache,omitempty"`
	Logging      LoggingConfig        `yaml:"logging,omitempty"`
	Output       OutputConfig         `yaml:"output,omitempty"`
}

// CacheConfig selects where directory lookups are cached.
type CacheConfig struct {
	Backend  string `yaml:"backend,omitempty"` // memory, redis; empty disables caching
	Address  string `yaml:"address,omitempty"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db,omitempty"`
	Prefix   string `yaml:"prefix,omitempty"`
	TTL      int    `yaml:"ttl,omitempty"` // seconds
}

// TTLDuration returns the cache TTL, falling back to the default when unset.
func (c CacheConfig) TTLDuration() time.Duration {
	if c.TTL <= 0 {
		return constants.DefaultCacheTTLSeconds * time.Second
	}
	return time.Duration(c.TTL) * time.Second
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

// decode unmarshals over the default assumptions so omitted keys keep them.
func decode(v *viper.Viper) (*Configuration, error) {
	configuration := Configuration{Assumptions: analysis.DefaultAssumptions()}
	err := v.Unmarshal(&configuration, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Nothing here prevents an analysis from running.
func (c *Configuration) ValidateConfiguration() []string {
	warnings := c.Assumptions.Validate()

	switch {
	case len(c.Selections) == 0:
		warnings = append(warnings, "No selections configured")
	case len(c.Selections) > 2:
		warnings = append(warnings, fmt.Sprintf("%d selections configured; only the first two are compared", len(c.Selections)))
	}

	known := make(map[int]struct{}, len(c.Institutions))
	for _, inst := range c.Institutions {
		known[inst.ID] = struct{}{}
		if inst.GraduationRate != nil {
			if w := validation.ValidateGraduationRate(inst.Name, *inst.GraduationRate); w != "" {
				warnings = append(warnings, w)
			}
		}
		for _, tuition := range []*float64{inst.TuitionInState, inst.TuitionOutOfState} {
			if tuition != nil && *tuition < 0 {
				warnings = append(warnings, fmt.Sprintf("Institution '%s' has negative tuition %.2f", inst.Name, *tuition))
			}
		}
	}
	for _, sel := range c.Selections {
		if _, ok := known[sel.InstitutionID]; !ok {
			warnings = append(warnings, fmt.Sprintf("Selection references unknown institution %d", sel.InstitutionID))
		}
	}

	for _, region := range c.Regions {
		if region.Housing1BR < 0 || region.MedianEarnings < 0 {
			warnings = append(warnings, fmt.Sprintf("Region '%s' has negative values and will use fallbacks", region.State))
		}
	}

	switch c.Cache.Backend {
	case "", constants.CacheBackendMemory:
	case constants.CacheBackendRedis:
		if c.Cache.Address == "" {
			warnings = append(warnings, "Redis cache configured without an address; caching is disabled")
		}
	default:
		warnings = append(warnings, fmt.Sprintf("Unknown cache backend '%s'; caching is disabled", c.Cache.Backend))
	}

	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			warnings = append(warnings, err.Error())
		}
	}

	return warnings
}
