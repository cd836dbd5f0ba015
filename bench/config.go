package bench

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
)

// GeneratorConfig describes one synthetic payload: how many bytes to
// produce, what element type to build it from, which normalized entropy to
// aim for, and the closed value range to draw elements from.
//
// A config is built per sweep cell and discarded after the payload is
// generated.
type GeneratorConfig struct {
	PayloadSizeBytes int        // requested payload size; actual output is ElementCount()*width
	Kind             SymbolKind // element type
	TargetEntropy    float64    // normalized entropy target in [0, 1]
	MinValue         float64    // inclusive lower bound for drawn values
	MaxValue         float64    // inclusive upper bound for drawn values
}

// NewGeneratorConfig builds and validates a GeneratorConfig. Validation is
// fail-fast and exhaustive: every violation is reported, none is coerced.
func NewGeneratorConfig(sizeBytes int, kind SymbolKind, targetEntropy, minValue, maxValue float64) (GeneratorConfig, error) {
	cfg := GeneratorConfig{
		PayloadSizeBytes: sizeBytes,
		Kind:             kind,
		TargetEntropy:    targetEntropy,
		MinValue:         minValue,
		MaxValue:         maxValue,
	}
	if err := cfg.Validate(); err != nil {
		return GeneratorConfig{}, err
	}
	return cfg, nil
}

// Validate checks every constraint and aggregates all violations.
func (c GeneratorConfig) Validate() error {
	var result *multierror.Error

	if c.PayloadSizeBytes <= 0 {
		result = multierror.Append(result, &ConfigError{
			Field:  "payloadSizeBytes",
			Reason: fmt.Sprintf("must be positive, got %d", c.PayloadSizeBytes),
		})
	}
	if !c.Kind.Valid() {
		result = multierror.Append(result, &ConfigError{
			Field:  "kind",
			Reason: c.Kind.String(),
		})
	}
	if c.TargetEntropy < 0 || c.TargetEntropy > 1 {
		result = multierror.Append(result, &ConfigError{
			Field:  "targetEntropy",
			Reason: fmt.Sprintf("must be in [0, 1], got %g", c.TargetEntropy),
		})
	}
	if c.MinValue > c.MaxValue {
		result = multierror.Append(result, &ConfigError{
			Field:  "minValue",
			Reason: fmt.Sprintf("min %g exceeds max %g", c.MinValue, c.MaxValue),
		})
	} else if c.Kind.Valid() {
		if err := c.validateBoundsForKind(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}

// validateBoundsForKind rejects bounds that do not fit the symbol kind:
// integer kinds require integral bounds inside the kind's value range, and
// float32 bounds must be representable as float32.
func (c GeneratorConfig) validateBoundsForKind() error {
	switch c.Kind {
	case KindInt32:
		if c.MinValue != math.Trunc(c.MinValue) || c.MaxValue != math.Trunc(c.MaxValue) {
			return &ConfigError{Field: "bounds", Reason: "int32 kind requires integral min/max"}
		}
		if c.MinValue < math.MinInt32 || c.MaxValue > math.MaxInt32 {
			return &ConfigError{
				Field:  "bounds",
				Reason: fmt.Sprintf("[%g, %g] outside int32 range", c.MinValue, c.MaxValue),
			}
		}
	case KindByte:
		if c.MinValue != math.Trunc(c.MinValue) || c.MaxValue != math.Trunc(c.MaxValue) {
			return &ConfigError{Field: "bounds", Reason: "byte kind requires integral min/max"}
		}
		if c.MinValue < 0 || c.MaxValue > 255 {
			return &ConfigError{
				Field:  "bounds",
				Reason: fmt.Sprintf("[%g, %g] outside byte range", c.MinValue, c.MaxValue),
			}
		}
	case KindFloat32:
		if math.Abs(c.MinValue) > math.MaxFloat32 || math.Abs(c.MaxValue) > math.MaxFloat32 {
			return &ConfigError{
				Field:  "bounds",
				Reason: fmt.Sprintf("[%g, %g] not representable as float32", c.MinValue, c.MaxValue),
			}
		}
	case KindFloat64:
		// any finite float64 pair is acceptable
		if math.IsInf(c.MinValue, 0) || math.IsInf(c.MaxValue, 0) ||
			math.IsNaN(c.MinValue) || math.IsNaN(c.MaxValue) {
			return &ConfigError{Field: "bounds", Reason: "bounds must be finite"}
		}
	}
	return nil
}

// ElementCount derives how many whole elements fit in the requested payload
// size. The division truncates: remainder bytes are simply not produced, so
// the generated payload may be shorter than PayloadSizeBytes. This is
// longstanding, intentional behavior that callers and tests rely on.
func (c GeneratorConfig) ElementCount() int {
	return c.PayloadSizeBytes / c.Kind.Width()
}

// DefaultBounds returns the canonical value range the sweep uses for a kind.
func DefaultBounds(kind SymbolKind) (minValue, maxValue float64) {
	switch kind {
	case KindInt32:
		return 0, math.MaxInt32
	case KindByte:
		return 0, 255
	default:
		return 0, 1
	}
}
