package bench

import "fmt"

// SymbolKind identifies the element type a synthetic payload is built from.
// It is a closed enumeration: generation dispatches exhaustively on it and
// never inspects runtime types.
type SymbolKind int

const (
	// KindInt32 generates 4-byte signed integers.
	KindInt32 SymbolKind = iota
	// KindFloat32 generates 4-byte floats.
	KindFloat32
	// KindFloat64 generates 8-byte floats.
	KindFloat64
	// KindByte generates raw bytes; payloads skip buffer serialization.
	KindByte
)

// symbolKindNames maps kinds to their canonical names, used in persisted
// artifact filenames and CLI flags.
var symbolKindNames = map[SymbolKind]string{
	KindInt32:   "int32",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindByte:    "byte",
}

// Width returns the serialized size of one element in bytes.
func (k SymbolKind) Width() int {
	switch k {
	case KindInt32, KindFloat32:
		return 4
	case KindFloat64:
		return 8
	case KindByte:
		return 1
	default:
		return 0
	}
}

// Valid reports whether k is one of the defined kinds.
func (k SymbolKind) Valid() bool {
	_, ok := symbolKindNames[k]
	return ok
}

func (k SymbolKind) String() string {
	if name, ok := symbolKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("SymbolKind(%d)", int(k))
}

// ParseSymbolKind resolves a kind from its canonical name.
func ParseSymbolKind(name string) (SymbolKind, error) {
	for k, n := range symbolKindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown symbol kind %q (want int32, float32, float64 or byte)", name)
}

// AllSymbolKinds returns every defined kind in declaration order.
func AllSymbolKinds() []SymbolKind {
	return []SymbolKind{KindInt32, KindFloat32, KindFloat64, KindByte}
}
