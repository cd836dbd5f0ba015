package bench

// Record is one benchmark observation: a single (sweep cell, compressor)
// pair. Both the requested entropy target and the entropy actually measured
// on the generated bytes are retained; analyses that bin by target and plot
// by measurement need the pair.
type Record struct {
	Kind              SymbolKind
	Compressor        string
	OriginalSize      int
	CompressedSize    int
	Ratio             float64
	ElapsedMs         float64
	TargetEntropy     float64
	MeasuredEntropy   float64 // order-0, over decoded symbols
	MeasuredEntropyO1 float64 // order-1 (context) entropy of the same symbols
}
