// Package report is the reporting boundary of the benchmark: it consumes
// the orchestrator's finished record collection and turns it into plottable
// series and exportable tables. The dependency is one-directional — nothing
// in bench/ reads back from this package.
package report

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/entropy-bench/entropy-bench/bench"
)

// Point is one observation in a series.
type Point struct {
	X float64
	Y float64
}

// Series groups points under one compressor name for plotting.
type Series struct {
	Group  string
	Points []Point
}

// EntropyRatioSeries builds one series per compressor with measured entropy
// on X and compression ratio on Y.
func EntropyRatioSeries(records []bench.Record) []Series {
	return buildSeries(records, func(r bench.Record) float64 { return r.MeasuredEntropy })
}

// SizeRatioSeries builds one series per compressor with original payload
// size on X and compression ratio on Y.
func SizeRatioSeries(records []bench.Record) []Series {
	return buildSeries(records, func(r bench.Record) float64 { return float64(r.OriginalSize) })
}

// KindRatioSummary aggregates the mean compression ratio per
// (compressor, symbol kind) pair, the categorical third view of the sweep.
type KindRatioSummary struct {
	Group     string
	Kind      bench.SymbolKind
	MeanRatio float64
	Samples   int
}

// KindRatioSeries computes the kind-vs-ratio view. Rows are ordered by
// compressor name, then kind.
func KindRatioSeries(records []bench.Record) []KindRatioSummary {
	type key struct {
		group string
		kind  bench.SymbolKind
	}
	ratios := make(map[key][]float64)
	for _, r := range records {
		k := key{group: r.Compressor, kind: r.Kind}
		ratios[k] = append(ratios[k], r.Ratio)
	}

	keys := make([]key, 0, len(ratios))
	for k := range ratios {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].group != keys[j].group {
			return keys[i].group < keys[j].group
		}
		return keys[i].kind < keys[j].kind
	})

	out := make([]KindRatioSummary, 0, len(keys))
	for _, k := range keys {
		out = append(out, KindRatioSummary{
			Group:     k.group,
			Kind:      k.kind,
			MeanRatio: stat.Mean(ratios[k], nil),
			Samples:   len(ratios[k]),
		})
	}
	return out
}

// buildSeries groups records by compressor, preserving sweep order within
// each group and ordering groups by name.
func buildSeries(records []bench.Record, x func(bench.Record) float64) []Series {
	byGroup := make(map[string][]Point)
	for _, r := range records {
		byGroup[r.Compressor] = append(byGroup[r.Compressor], Point{X: x(r), Y: r.Ratio})
	}

	names := make([]string, 0, len(byGroup))
	for name := range byGroup {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Series, 0, len(names))
	for _, name := range names {
		out = append(out, Series{Group: name, Points: byGroup[name]})
	}
	return out
}
