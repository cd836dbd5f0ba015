package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/entropy-bench/entropy-bench/bench"
	"github.com/entropy-bench/entropy-bench/bench/codec"
	"github.com/entropy-bench/entropy-bench/bench/report"
)

var (
	// CLI flags shared across subcommands
	seed     int64  // Seed for payload generation
	logLevel string // Log verbosity level

	// Sweep grid flags
	sizeMin     int     // Smallest payload size in bytes
	sizeMax     int     // Largest payload size in bytes
	sizeStep    int     // Payload size increment
	entropyMin  float64 // Lowest target entropy
	entropyMax  float64 // Highest target entropy
	entropyStep float64 // Target entropy increment
	kinds       []string
	codecNames  []string
	workers     int
	outputDir   string // Directory for persisted payloads and artifacts
	csvPath     string
	jsonPath    string
	presetFile  string // YAML file with named sweep presets
	presetName  string

	// generate subcommand flags
	genSize    int
	genKind    string
	genEntropy float64
	genOut     string
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "entropy-bench",
	Short: "Entropy-targeted compression benchmark",
}

// sweepCmd runs the full cartesian benchmark sweep using parameters from CLI
// flags or a YAML preset.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run the compression benchmark sweep",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg, err := resolveSweepConfig()
		if err != nil {
			logrus.Fatalf("Invalid sweep configuration: %v", err)
		}

		registry, err := buildRegistry(codecNames)
		if err != nil {
			logrus.Fatalf("Could not build codec registry: %v", err)
		}

		if outputDir != "" {
			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				logrus.Fatalf("Could not create output directory: %v", err)
			}
		}

		logrus.Infof("Starting sweep: sizes [%d..%d/%d], entropies [%g..%g/%g], kinds=%v, codecs=%v",
			cfg.Sizes.Min, cfg.Sizes.Max, cfg.Sizes.Step,
			cfg.Entropies.Min, cfg.Entropies.Max, cfg.Entropies.Step,
			kinds, registry.Names())

		startTime := time.Now()

		orch, err := bench.NewOrchestrator(cfg, registry)
		if err != nil {
			logrus.Fatalf("Could not build orchestrator: %v", err)
		}
		if err := orch.Run(); err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}
		records := orch.Records()

		printSummary(records, time.Since(startTime))

		if csvPath != "" {
			if err := report.WriteCSVFile(csvPath, records); err != nil {
				logrus.Fatalf("CSV export failed: %v", err)
			}
			logrus.Infof("Wrote %d records to %s", len(records), csvPath)
		}
		if jsonPath != "" {
			if err := report.WriteJSONFile(jsonPath, records); err != nil {
				logrus.Fatalf("JSON export failed: %v", err)
			}
			logrus.Infof("Wrote %d records to %s", len(records), jsonPath)
		}

		logrus.Info("Sweep complete.")
	},
}

// generateCmd produces a single payload file for ad-hoc inspection.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one entropy-targeted payload file",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		kind, err := bench.ParseSymbolKind(genKind)
		if err != nil {
			logrus.Fatalf("Invalid kind: %v", err)
		}
		minValue, maxValue := bench.DefaultBounds(kind)
		cfg, err := bench.NewGeneratorConfig(genSize, kind, genEntropy, minValue, maxValue)
		if err != nil {
			logrus.Fatalf("Invalid generator configuration: %v", err)
		}

		rng := bench.NewPartitionedRNG(bench.NewSweepKey(seed))
		name := bench.CellName(kind, genSize, genEntropy)
		gen, err := bench.NewGenerator(cfg, rng.ForCell(name))
		if err != nil {
			logrus.Fatalf("Could not build generator: %v", err)
		}

		out := genOut
		if out == "" {
			out = name
		}
		payload, err := gen.GenerateFile(out)
		if err != nil {
			logrus.Fatalf("Generation failed: %v", err)
		}

		measured, measured1 := bench.MeasureEntropy(kind, payload)
		fmt.Printf("Wrote %d bytes to %s (measured entropy %.4f, order-1 %.4f)\n",
			len(payload), out, measured, measured1)
	},
}

// setupLogging parses the --log flag and configures logrus.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// resolveSweepConfig builds the SweepConfig from a preset when one is named,
// falling back to the grid flags otherwise.
func resolveSweepConfig() (bench.SweepConfig, error) {
	if presetName != "" {
		return GetSweepPreset(presetFile, presetName, seed, workers, outputDir)
	}

	parsedKinds, err := parseKinds(kinds)
	if err != nil {
		return bench.SweepConfig{}, err
	}
	return bench.SweepConfig{
		Sizes:     bench.SizeRange{Min: sizeMin, Max: sizeMax, Step: sizeStep},
		Entropies: bench.EntropyRange{Min: entropyMin, Max: entropyMax, Step: entropyStep},
		Kinds:     parsedKinds,
		Seed:      seed,
		Workers:   workers,
		OutputDir: outputDir,
	}, nil
}

// parseKinds resolves kind names from the CLI into SymbolKinds.
func parseKinds(names []string) ([]bench.SymbolKind, error) {
	out := make([]bench.SymbolKind, 0, len(names))
	for _, n := range names {
		k, err := bench.ParseSymbolKind(n)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

// buildRegistry assembles the codec registry. An empty selection registers
// every built-in codec; the registry is sealed before the sweep starts.
func buildRegistry(selection []string) (*codec.Registry, error) {
	full, err := codec.NewDefaultRegistry()
	if err != nil {
		return nil, err
	}
	if len(selection) == 0 {
		return full, nil
	}

	reg := codec.NewRegistry()
	for _, name := range selection {
		c, ok := full.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown codec %q (have %v)", name, full.Names())
		}
		reg.Register(c)
	}
	return reg, nil
}

// printSummary displays aggregated sweep results, one line per
// (codec, symbol kind) pair.
func printSummary(records []bench.Record, elapsed time.Duration) {
	fmt.Println("=== Benchmark Summary ===")
	fmt.Printf("Records              : %d\n", len(records))
	fmt.Printf("Wall time            : %s\n", elapsed.Round(time.Millisecond))
	for _, row := range report.KindRatioSeries(records) {
		fmt.Printf("%-8s %-8s mean ratio %.3f (%d samples)\n",
			row.Group, row.Kind, row.MeanRatio, row.Samples)
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 42, "Seed for payload generation")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Sweep grid
	sweepCmd.Flags().IntVar(&sizeMin, "size-min", 1024, "Smallest payload size in bytes")
	sweepCmd.Flags().IntVar(&sizeMax, "size-max", 65536, "Largest payload size in bytes")
	sweepCmd.Flags().IntVar(&sizeStep, "size-step", 16128, "Payload size increment in bytes")
	sweepCmd.Flags().Float64Var(&entropyMin, "entropy-min", 0.0, "Lowest target entropy")
	sweepCmd.Flags().Float64Var(&entropyMax, "entropy-max", 1.0, "Highest target entropy")
	sweepCmd.Flags().Float64Var(&entropyStep, "entropy-step", 0.25, "Target entropy increment")
	sweepCmd.Flags().StringSliceVar(&kinds, "kinds", []string{"int32", "float32", "float64", "byte"}, "Symbol kinds to sweep")
	sweepCmd.Flags().StringSliceVar(&codecNames, "codecs", nil, "Codecs to benchmark (default: all built-ins)")
	sweepCmd.Flags().IntVar(&workers, "workers", 1, "Sweep cells evaluated concurrently")
	sweepCmd.Flags().StringVar(&outputDir, "out-dir", "", "Persist payloads and compressed artifacts to this directory")
	sweepCmd.Flags().StringVar(&csvPath, "csv", "", "Write benchmark records to this CSV file")
	sweepCmd.Flags().StringVar(&jsonPath, "json", "", "Write benchmark records to this JSON file")
	sweepCmd.Flags().StringVar(&presetFile, "preset-file", "sweeps.yaml", "YAML file with named sweep presets")
	sweepCmd.Flags().StringVar(&presetName, "preset", "", "Named sweep preset to run")

	// Single payload generation
	generateCmd.Flags().IntVar(&genSize, "size", 1024, "Payload size in bytes")
	generateCmd.Flags().StringVar(&genKind, "kind", "byte", "Symbol kind (int32, float32, float64, byte)")
	generateCmd.Flags().Float64Var(&genEntropy, "entropy", 1.0, "Target normalized entropy")
	generateCmd.Flags().StringVar(&genOut, "out", "", "Output path (default: <kind>_<size>_<entropy>)")

	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(generateCmd)
}
