package bench

import (
	"errors"
	"fmt"
)

// ConfigError reports an invalid generator or sweep configuration.
// Construction-time validation fails fast; values are never silently coerced.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

// IntegrityError reports that a decompressed payload differs from the
// original bytes. It is fatal to a sweep: a mismatch means a codec or the
// generator is broken, not that the cell should be retried or skipped.
type IntegrityError struct {
	Compressor string
	Kind       SymbolKind
	Size       int
	Entropy    float64
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("round-trip mismatch: compressor=%s kind=%s size=%d entropy=%.3f",
		e.Compressor, e.Kind, e.Size, e.Entropy)
}

// IsIntegrityError reports whether err is (or wraps) an IntegrityError.
func IsIntegrityError(err error) bool {
	var ie *IntegrityError
	return errors.As(err, &ie)
}
