package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/entropy-bench/entropy-bench/bench"
)

// row is the flat export shape of one Record. Symbol kinds are exported by
// name so the files stay readable without this codebase.
type row struct {
	Kind              string  `csv:"kind" json:"kind"`
	Compressor        string  `csv:"compressor" json:"compressor"`
	OriginalSize      int     `csv:"original_size" json:"original_size"`
	CompressedSize    int     `csv:"compressed_size" json:"compressed_size"`
	Ratio             float64 `csv:"ratio" json:"ratio"`
	ElapsedMs         float64 `csv:"elapsed_ms" json:"elapsed_ms"`
	TargetEntropy     float64 `csv:"target_entropy" json:"target_entropy"`
	MeasuredEntropy   float64 `csv:"measured_entropy" json:"measured_entropy"`
	MeasuredEntropyO1 float64 `csv:"measured_entropy_o1" json:"measured_entropy_o1"`
}

func toRows(records []bench.Record) []*row {
	rows := make([]*row, len(records))
	for i, r := range records {
		rows[i] = &row{
			Kind:              r.Kind.String(),
			Compressor:        r.Compressor,
			OriginalSize:      r.OriginalSize,
			CompressedSize:    r.CompressedSize,
			Ratio:             r.Ratio,
			ElapsedMs:         r.ElapsedMs,
			TargetEntropy:     r.TargetEntropy,
			MeasuredEntropy:   r.MeasuredEntropy,
			MeasuredEntropyO1: r.MeasuredEntropyO1,
		}
	}
	return rows
}

// WriteCSV writes the records as CSV with a header row.
func WriteCSV(w io.Writer, records []bench.Record) error {
	return gocsv.Marshal(toRows(records), w)
}

// WriteCSVFile writes the records to a CSV file at path.
func WriteCSVFile(path string, records []bench.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// WriteJSON writes the records as an indented JSON array.
func WriteJSON(w io.Writer, records []bench.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toRows(records))
}

// WriteJSONFile writes the records to a JSON file at path.
func WriteJSONFile(path string, records []bench.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(f, records); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
