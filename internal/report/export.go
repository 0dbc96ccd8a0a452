package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/san-kum/tumorsim/internal/experiment"
)

type ExportRun struct {
	Rate    float64             `json:"rate"`
	Final   float64             `json:"final"`
	Values  []float64           `json:"values"`
	Metrics map[string]*float64 `json:"metrics"`
}

// ExportData is the JSON document written by [ExportJSON]. Metrics that are
// not finite (e.g. a saturation time that was never reached) encode as null.
type ExportData struct {
	Capacity float64     `json:"capacity"`
	Initial  float64     `json:"initial"`
	Grid     []float64   `json:"grid"`
	Baseline ExportRun   `json:"baseline"`
	Sweep    []ExportRun `json:"sweep"`
	Answer   float64     `json:"answer"`
}

func NewExportData(out *experiment.Outcome) ExportData {
	data := ExportData{
		Capacity: out.Params.K,
		Initial:  out.Params.V0,
		Grid:     out.Grid.Points(),
		Baseline: exportRun(out.Baseline),
		Sweep:    make([]ExportRun, 0, out.Sweep.Len()),
		Answer:   out.Answer(),
	}
	for _, run := range out.Sweep.Runs {
		data.Sweep = append(data.Sweep, exportRun(run))
	}
	return data
}

func exportRun(run experiment.Run) ExportRun {
	metrics := make(map[string]*float64, len(run.Metrics))
	for name, v := range run.Metrics {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			metrics[name] = nil
			continue
		}
		v := v
		metrics[name] = &v
	}
	return ExportRun{
		Rate:    run.Rate,
		Final:   run.Final(),
		Values:  run.Trajectory.Values(),
		Metrics: metrics,
	}
}

func ExportJSON(w io.Writer, out *experiment.Outcome) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewExportData(out))
}

// ExportCSV writes one row per grid point: the time followed by one column
// per swept rate.
func ExportCSV(w io.Writer, out *experiment.Outcome) error {
	cw := csv.NewWriter(w)

	header := []string{"time"}
	for _, run := range out.Sweep.Runs {
		header = append(header, rateLabel(run.Rate))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i := 0; i < out.Grid.Len(); i++ {
		row[0] = formatCell(out.Grid.At(i))
		for j, run := range out.Sweep.Runs {
			row[j+1] = formatCell(run.Trajectory.At(i))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportFile creates path (and its parent directory) and writes the export
// selected by fn into it.
func ExportFile(path string, out *experiment.Outcome, fn func(io.Writer, *experiment.Outcome) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return writeFile(path, func(w io.Writer) error { return fn(w, out) })
}

func formatCell(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
