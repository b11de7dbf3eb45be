package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sentinel errors returned by scenario configuration handling.
var (
	// ErrUnknownStrategy indicates a strategy name outside the built-in
	// set (fixed, primegap, compositemass).
	ErrUnknownStrategy = errors.New("scenario: unknown strategy name")

	// ErrUnknownAnalysis indicates an analysis name outside the
	// supported set (drift, gapfield, massfield, resonance, goldbach).
	ErrUnknownAnalysis = errors.New("scenario: unknown analysis name")

	// ErrNoAnalyses indicates a configuration requesting nothing to run.
	ErrNoAnalyses = errors.New("scenario: at least one analysis is required")

	// ErrBadRange indicates a range whose lower bound exceeds its upper
	// bound.
	ErrBadRange = errors.New("scenario: range lower bound exceeds upper bound")

	// ErrZeroModulus indicates a modulus of 0, which defines no ring.
	ErrZeroModulus = errors.New("scenario: modulus must be >= 1")
)

// Strategy names accepted in Config.Strategy.
const (
	StrategyFixed         = "fixed"
	StrategyPrimeGap      = "primegap"
	StrategyCompositeMass = "compositemass"
)

// Analysis names accepted in Config.Analyses.
const (
	AnalysisDrift     = "drift"
	AnalysisGapField  = "gapfield"
	AnalysisMassField = "massfield"
	AnalysisResonance = "resonance"
	AnalysisGoldbach  = "goldbach"
)

// Range bounds one scenario's numeric scan, inclusive on both sides.
type Range struct {
	Low  uint64 `yaml:"low"`
	High uint64 `yaml:"high"`
}

// Config describes one analysis run.
type Config struct {
	// Name labels the run in reports. Optional.
	Name string `yaml:"name"`

	// Modulus parameterizes the signature ring and the gap residue
	// classes.
	Modulus uint64 `yaml:"modulus"`

	// Strategy selects the origin rule: fixed, primegap or
	// compositemass.
	Strategy string `yaml:"strategy"`

	// FixedOrigin is the constant offset used when Strategy is fixed.
	FixedOrigin int64 `yaml:"fixed_origin,omitempty"`

	// Range bounds the scan.
	Range Range `yaml:"range"`

	// Analyses lists what to run.
	Analyses []string `yaml:"analyses"`

	// GoldbachTargets are the even numbers projected when the goldbach
	// analysis is requested.
	GoldbachTargets []uint64 `yaml:"goldbach_targets,omitempty"`

	// BaryThreshold filters outlier gaps in the gapfield analysis.
	// Zero means "report no outliers".
	BaryThreshold float64 `yaml:"bary_threshold,omitempty"`
}

// Validate checks the configuration without running anything.
func (c *Config) Validate() error {
	if c.Modulus == 0 {
		return ErrZeroModulus
	}
	switch c.Strategy {
	case StrategyFixed, StrategyPrimeGap, StrategyCompositeMass:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, c.Strategy)
	}
	if c.Range.Low > c.Range.High {
		return fmt.Errorf("%w: [%d, %d]", ErrBadRange, c.Range.Low, c.Range.High)
	}
	if len(c.Analyses) == 0 {
		return ErrNoAnalyses
	}
	for _, a := range c.Analyses {
		switch a {
		case AnalysisDrift, AnalysisGapField, AnalysisMassField,
			AnalysisResonance, AnalysisGoldbach:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownAnalysis, a)
		}
	}

	return nil
}

// Load parses and validates a YAML scenario document.
func Load(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("scenario: parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFile reads, parses and validates a YAML scenario file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: reading %s: %w", path, err)
	}

	return Load(data)
}
