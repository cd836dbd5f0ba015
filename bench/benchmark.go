// Benchmark orchestration: the cartesian sweep over payload size, target
// entropy and symbol kind, driving generation, compression and round-trip
// validation for every registered codec.

package bench

import (
	"bytes"
	"fmt"
	"math/rand"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/entropy-bench/entropy-bench/bench/codec"
)

// SizeRange is an inclusive arithmetic sequence of payload sizes in bytes.
type SizeRange struct {
	Min, Max, Step int
}

// Values expands the range. Min == Max yields a single size.
func (r SizeRange) Values() []int {
	var out []int
	for s := r.Min; s <= r.Max; s += r.Step {
		out = append(out, s)
	}
	return out
}

// EntropyRange is an inclusive arithmetic sequence of entropy targets.
type EntropyRange struct {
	Min, Max, Step float64
}

// Values expands the range. The upper bound is included despite float
// accumulation error.
func (r EntropyRange) Values() []float64 {
	var out []float64
	for e := r.Min; e <= r.Max+1e-9; e += r.Step {
		out = append(out, e)
	}
	return out
}

// SweepConfig describes a full benchmark sweep.
type SweepConfig struct {
	Sizes     SizeRange
	Entropies EntropyRange
	Kinds     []SymbolKind
	Seed      int64
	Workers   int    // cells evaluated concurrently; <=1 means sequential
	OutputDir string // non-empty: persist payloads and compressed artifacts
}

// Validate checks the sweep ranges and aggregates all violations.
func (c SweepConfig) Validate() error {
	var result *multierror.Error

	if c.Sizes.Min <= 0 || c.Sizes.Max < c.Sizes.Min || c.Sizes.Step <= 0 {
		result = multierror.Append(result, &ConfigError{
			Field:  "sizes",
			Reason: fmt.Sprintf("want 0 < min <= max and step > 0, got [%d, %d] step %d", c.Sizes.Min, c.Sizes.Max, c.Sizes.Step),
		})
	}
	if c.Entropies.Min < 0 || c.Entropies.Max > 1 || c.Entropies.Max < c.Entropies.Min || c.Entropies.Step <= 0 {
		result = multierror.Append(result, &ConfigError{
			Field:  "entropies",
			Reason: fmt.Sprintf("want 0 <= min <= max <= 1 and step > 0, got [%g, %g] step %g", c.Entropies.Min, c.Entropies.Max, c.Entropies.Step),
		})
	}
	if len(c.Kinds) == 0 {
		result = multierror.Append(result, &ConfigError{Field: "kinds", Reason: "at least one symbol kind required"})
	}
	for _, k := range c.Kinds {
		if !k.Valid() {
			result = multierror.Append(result, &ConfigError{Field: "kinds", Reason: k.String()})
		}
	}

	return result.ErrorOrNil()
}

// cell is one point of the sweep grid.
type cell struct {
	kind    SymbolKind
	size    int
	entropy float64
}

// Orchestrator runs the sweep. The registry must be fully populated before
// Run is called; it is treated as read-only for the duration of the sweep.
type Orchestrator struct {
	cfg      SweepConfig
	registry *codec.Registry
	rng      *PartitionedRNG
	records  []Record
	finished bool
}

// NewOrchestrator validates the config and prepares a sweep over the given
// registry.
func NewOrchestrator(cfg SweepConfig, registry *codec.Registry) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if registry.Len() == 0 {
		return nil, &ConfigError{Field: "registry", Reason: "no compressors registered"}
	}
	return &Orchestrator{
		cfg:      cfg,
		registry: registry,
		rng:      NewPartitionedRNG(NewSweepKey(cfg.Seed)),
	}, nil
}

// Run evaluates every sweep cell against every registered compressor. Any
// round-trip mismatch aborts the entire sweep with an IntegrityError: a
// mismatch is a correctness bug in a codec or the generator, never a
// condition to retry or skip.
func (o *Orchestrator) Run() error {
	cells := o.cells()
	logrus.Infof("sweep: %d cells x %d compressors (seed=%d, workers=%d)",
		len(cells), o.registry.Len(), o.cfg.Seed, max(o.cfg.Workers, 1))

	// Cell RNGs are derived up front from a single goroutine; each worker
	// then owns its RNG outright, keeping every cell's payload reproducible
	// regardless of worker count.
	rngs := make([]*rand.Rand, len(cells))
	for i, c := range cells {
		rngs[i] = o.rng.ForCell(CellName(c.kind, c.size, c.entropy))
	}

	perCell := make([][]Record, len(cells))
	if o.cfg.Workers > 1 {
		var g errgroup.Group
		g.SetLimit(o.cfg.Workers)
		for i := range cells {
			g.Go(func() error {
				recs, err := o.runCell(cells[i], rngs[i])
				perCell[i] = recs
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	} else {
		for i := range cells {
			recs, err := o.runCell(cells[i], rngs[i])
			if err != nil {
				return err
			}
			perCell[i] = recs
		}
	}

	for _, recs := range perCell {
		o.records = append(o.records, recs...)
	}
	o.finished = true
	return nil
}

// Records returns the finished result collection in sweep order. It returns
// nil until Run has completed successfully; the returned slice is a copy, so
// callers cannot disturb the orchestrator's results.
func (o *Orchestrator) Records() []Record {
	if !o.finished {
		return nil
	}
	return append([]Record(nil), o.records...)
}

// cells expands the cartesian grid in deterministic (kind, size, entropy)
// order.
func (o *Orchestrator) cells() []cell {
	var out []cell
	for _, kind := range o.cfg.Kinds {
		for _, size := range o.cfg.Sizes.Values() {
			for _, entropy := range o.cfg.Entropies.Values() {
				out = append(out, cell{kind: kind, size: size, entropy: entropy})
			}
		}
	}
	return out
}

// runCell generates one payload and pushes it through every compressor.
func (o *Orchestrator) runCell(c cell, rng *rand.Rand) ([]Record, error) {
	minValue, maxValue := DefaultBounds(c.kind)
	genCfg, err := NewGeneratorConfig(c.size, c.kind, c.entropy, minValue, maxValue)
	if err != nil {
		return nil, err
	}
	gen, err := NewGenerator(genCfg, rng)
	if err != nil {
		return nil, err
	}

	var payload []byte
	var payloadPath string
	if o.cfg.OutputDir != "" {
		payloadPath = filepath.Join(o.cfg.OutputDir, CellName(c.kind, c.size, c.entropy))
		payload, err = gen.GenerateFile(payloadPath)
	} else {
		payload, err = gen.Generate()
	}
	if err != nil {
		return nil, fmt.Errorf("cell %s: %w", CellName(c.kind, c.size, c.entropy), err)
	}

	measured0, measured1 := MeasureEntropy(c.kind, payload)
	logrus.Debugf("cell %s: %d bytes, measured entropy %.4f (order-1 %.4f)",
		CellName(c.kind, c.size, c.entropy), len(payload), measured0, measured1)

	records := make([]Record, 0, o.registry.Len())
	for _, comp := range o.registry.All() {
		var compressed, roundTrip codec.Result
		if payloadPath != "" {
			compressed, err = comp.CompressFile(payloadPath)
			if err == nil {
				roundTrip, err = comp.DecompressFile(payloadPath + "." + comp.Name())
			}
		} else {
			compressed, err = comp.Compress(payload)
			if err == nil {
				roundTrip, err = comp.Decompress(compressed.Payload)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("cell %s: %w", CellName(c.kind, c.size, c.entropy), err)
		}

		if !bytes.Equal(roundTrip.Payload, payload) {
			return nil, &IntegrityError{
				Compressor: comp.Name(),
				Kind:       c.kind,
				Size:       c.size,
				Entropy:    c.entropy,
			}
		}

		records = append(records, Record{
			Kind:              c.kind,
			Compressor:        comp.Name(),
			OriginalSize:      compressed.OriginalSize,
			CompressedSize:    compressed.CompressedSize,
			Ratio:             compressed.Ratio,
			ElapsedMs:         compressed.ElapsedMs(),
			TargetEntropy:     c.entropy,
			MeasuredEntropy:   measured0,
			MeasuredEntropyO1: measured1,
		})
	}

	return records, nil
}
