package scenario

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/katalvlaran/moma/drift"
	"github.com/katalvlaran/moma/gapfield"
	"github.com/katalvlaran/moma/goldbach"
	"github.com/katalvlaran/moma/massfield"
	"github.com/katalvlaran/moma/primes"
	"github.com/katalvlaran/moma/resonance"
	"github.com/katalvlaran/moma/strategy"
)

// Report collects the results of one executed scenario. Fields are
// populated only for the analyses the configuration requested.
type Report struct {
	// RunID uniquely identifies this execution.
	RunID string

	// Name echoes Config.Name.
	Name string

	// Ran lists the analyses that executed, in request order.
	Ran []string

	// DriftMagnitude is the final volatility score (drift analysis).
	DriftMagnitude float64

	// EntropyByClass maps gap residue classes to size-distribution
	// entropy (gapfield analysis).
	EntropyByClass map[uint64]float64

	// Outliers are the gaps beyond the configured barycentric
	// threshold (gapfield analysis).
	Outliers []gapfield.Gap

	// MassMap is the per-prime composite mass (massfield analysis).
	MassMap []massfield.Entry

	// Resonances are the detected resonance events (resonance
	// analysis, property = prime-factor mass).
	Resonances []resonance.Event

	// GoldbachPairs maps each requested even target to its prime pairs
	// (goldbach analysis).
	GoldbachPairs map[uint64][]goldbach.Pair
}

// Run executes the configured analyses and returns a UUID-stamped
// report. The configuration is re-validated first, so a hand-built
// Config behaves the same as a loaded one.
func (c *Config) Run() (*Report, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	origin, err := c.buildStrategy()
	if err != nil {
		return nil, err
	}

	report := &Report{RunID: uuid.NewString(), Name: c.Name}
	for _, analysis := range c.Analyses {
		switch analysis {
		case AnalysisDrift:
			err = c.runDrift(origin, report)
		case AnalysisGapField:
			err = c.runGapField(report)
		case AnalysisMassField:
			err = c.runMassField(report)
		case AnalysisResonance:
			err = c.runResonance(origin, report)
		case AnalysisGoldbach:
			err = c.runGoldbach(report)
		}
		if err != nil {
			return nil, fmt.Errorf("scenario %q, analysis %q: %w", c.Name, analysis, err)
		}
		report.Ran = append(report.Ran, analysis)
	}

	return report, nil
}

func (c *Config) buildStrategy() (strategy.OriginStrategy, error) {
	switch c.Strategy {
	case StrategyFixed:
		return strategy.Fixed(c.FixedOrigin), nil
	case StrategyPrimeGap:
		return strategy.PrimeGap{}, nil
	case StrategyCompositeMass:
		return strategy.CompositeMass{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, c.Strategy)
	}
}

// rangePrimes returns the primes of the configured range, starting no
// lower than floor.
func (c *Config) rangePrimes(floor uint64) []uint64 {
	low := c.Range.Low
	if low < floor {
		low = floor
	}
	all := primes.PrimesUpTo(c.Range.High)
	out := make([]uint64, 0, len(all))
	for _, p := range all {
		if p >= low {
			out = append(out, p)
		}
	}

	return out
}

func (c *Config) runDrift(origin strategy.OriginStrategy, report *Report) error {
	d, err := drift.New(c.Modulus, origin)
	if err != nil {
		return err
	}
	// Start at 3: the first prime has no predecessor (see package docs).
	for _, p := range c.rangePrimes(3) {
		if err = d.Next(p); err != nil {
			return err
		}
	}
	report.DriftMagnitude = d.DriftMagnitude()

	return nil
}

func (c *Config) runGapField(report *Report) error {
	field, err := gapfield.New(c.rangePrimes(2), c.Modulus)
	if err != nil {
		return err
	}
	report.EntropyByClass = field.EntropyByClass()
	if c.BaryThreshold > 0 {
		report.Outliers = field.FilterByBaryOffset(c.BaryThreshold)
	}

	return nil
}

func (c *Config) runMassField(report *Report) error {
	field, err := massfield.New(c.Range.Low, c.Range.High)
	if err != nil {
		return err
	}
	report.MassMap, err = field.GenerateMassMap()

	return err
}

func (c *Config) runResonance(origin strategy.OriginStrategy, report *Report) error {
	finder, err := resonance.NewFinder(c.Modulus, origin, primes.PrimeFactorMass)
	if err != nil {
		return err
	}
	low := c.Range.Low
	if low < 3 {
		low = 3 // see the drift note in the package docs
	}
	report.Resonances, err = finder.FindInRange(low, c.Range.High)

	return err
}

func (c *Config) runGoldbach(report *Report) error {
	projector := goldbach.NewProjector(c.Range.High)
	report.GoldbachPairs = make(map[uint64][]goldbach.Pair, len(c.GoldbachTargets))
	for _, target := range c.GoldbachTargets {
		pairs, err := projector.Project(target)
		if err != nil {
			return err
		}
		report.GoldbachPairs[target] = pairs
	}

	return nil
}

// WriteCSV streams the report's scalar results as section,key,value
// rows, one row per datum, suitable for plotting pipelines.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	write := func(section, key, value string) {
		_ = cw.Write([]string{section, key, value})
	}

	write("run", "id", r.RunID)
	write("run", "name", r.Name)
	for _, analysis := range r.Ran {
		write("run", "analysis", analysis)
	}
	if r.DriftMagnitude != 0 || contains(r.Ran, AnalysisDrift) {
		write("drift", "magnitude", strconv.FormatFloat(r.DriftMagnitude, 'g', -1, 64))
	}

	classes := make([]uint64, 0, len(r.EntropyByClass))
	for class := range r.EntropyByClass {
		classes = append(classes, class)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })
	for _, class := range classes {
		write("entropy", strconv.FormatUint(class, 10),
			strconv.FormatFloat(r.EntropyByClass[class], 'g', -1, 64))
	}

	for _, g := range r.Outliers {
		write("outlier",
			fmt.Sprintf("%d-%d", g.StartPrime, g.EndPrime),
			strconv.FormatFloat(g.BaryOffset, 'g', -1, 64))
	}
	for _, e := range r.MassMap {
		write("mass", strconv.FormatUint(e.Prime, 10), strconv.FormatUint(e.Mass, 10))
	}
	for _, e := range r.Resonances {
		write("resonance", strconv.FormatUint(e.Prime, 10), strconv.FormatUint(e.Signature, 10))
	}

	targets := make([]uint64, 0, len(r.GoldbachPairs))
	for target := range r.GoldbachPairs {
		targets = append(targets, target)
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })
	for _, target := range targets {
		for _, pair := range r.GoldbachPairs[target] {
			write("goldbach", strconv.FormatUint(target, 10),
				fmt.Sprintf("%d+%d", pair.A, pair.B))
		}
	}

	cw.Flush()

	return cw.Error()
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}

	return false
}
