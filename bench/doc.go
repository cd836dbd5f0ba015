// Package bench provides the core of the entropy-compression benchmark.
//
// # Reading Guide
//
// Start with these three files to understand the pipeline:
//   - entropy.go: normalized order-0/order-1 Shannon entropy estimators
//   - generator.go: entropy-targeted synthetic payload generation
//   - benchmark.go: the cartesian sweep orchestrator and round-trip validation
//
// # Architecture
//
// The bench package owns the statistical and orchestration logic;
// collaborators live in sub-packages:
//   - bench/codec/: the Compressor capability, registry, and codec backends
//   - bench/report/: series building and CSV/JSON export of sweep results
//
// A sweep is a pure nested iteration over (size x entropy x kind) cells.
// Cells are independent: each draws from its own deterministically derived
// RNG (rng.go), so results are reproducible for any worker count, and the
// codec registry is sealed before the sweep starts. There is no retry or
// cancellation machinery anywhere — every failure in the pipeline indicates
// a logic defect and halts the sweep.
package bench
