package bench

import "encoding/binary"

// MeasureEntropy computes the order-0 and order-1 normalized entropy of a
// serialized payload, decoding it back into the symbol stream it was built
// from. Float payloads are measured over their bit patterns, so NaN payloads
// cannot distort equality.
func MeasureEntropy(kind SymbolKind, payload []byte) (order0, order1 float64) {
	switch kind {
	case KindByte:
		return NormalizedEntropyOrder0(payload), NormalizedEntropyOrder1(payload)

	case KindInt32, KindFloat32:
		syms := make([]uint32, len(payload)/4)
		for i := range syms {
			syms[i] = binary.LittleEndian.Uint32(payload[i*4:])
		}
		return NormalizedEntropyOrder0(syms), NormalizedEntropyOrder1(syms)

	case KindFloat64:
		syms := make([]uint64, len(payload)/8)
		for i := range syms {
			syms[i] = binary.LittleEndian.Uint64(payload[i*8:])
		}
		return NormalizedEntropyOrder0(syms), NormalizedEntropyOrder1(syms)

	default:
		return 0, 0
	}
}
