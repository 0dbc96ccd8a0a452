package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/tumorsim/internal/dynamo"
	"github.com/san-kum/tumorsim/internal/experiment"
)

// Format selects the image encoding of the plots.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case PNG, SVG:
		return f, nil
	default:
		return "", fmt.Errorf("report: unknown plot format %q (png, svg)", s)
	}
}

func (f Format) provider() chart.RendererProvider {
	if f == SVG {
		return chart.SVG
	}
	return chart.PNG
}

// Plot file names without extension.
const (
	BaselineFile = "tumor_volume_vs_time"
	SweepFile    = "volume_vs_time_various_r"
	FinalsFile   = "final_volume_vs_r"

	plotWidth  = 800
	plotHeight = 600
)

var gridStyle = chart.Style{
	StrokeColor: drawing.ColorFromHex("dddddd"),
	StrokeWidth: 1.0,
}

// WritePlots renders the three plots into dir and returns the written paths.
// Outcomes holding NaN or Inf values are rejected with an error wrapping
// dynamo.ErrUnstable.
func WritePlots(dir string, format Format, out *experiment.Outcome) ([]string, error) {
	if err := checkFinite(out); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	plots := []struct {
		file   string
		render func(io.Writer, Format, *experiment.Outcome) error
	}{
		{BaselineFile, RenderBaseline},
		{SweepFile, RenderSweep},
		{FinalsFile, RenderFinals},
	}

	paths := make([]string, 0, len(plots))
	for _, p := range plots {
		path := filepath.Join(dir, p.file+"."+string(format))
		if err := writeFile(path, func(w io.Writer) error { return p.render(w, format, out) }); err != nil {
			return paths, fmt.Errorf("render %s: %w", filepath.Base(path), err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// RenderBaseline plots the baseline trajectory against time.
func RenderBaseline(w io.Writer, format Format, out *experiment.Outcome) error {
	t := out.Grid.Points()
	v := out.Baseline.Trajectory.Values()

	graph := newChart("Baseline logistic growth", "Time", "Tumor volume", t, v)
	graph.Series = []chart.Series{
		chart.ContinuousSeries{
			Name:    rateLabel(out.Baseline.Rate),
			XValues: t,
			YValues: v,
			Style:   chart.Style{StrokeColor: chart.GetDefaultColor(0), StrokeWidth: 2},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(format.provider(), w)
}

// RenderSweep overlays one trajectory per swept growth rate.
func RenderSweep(w io.Writer, format Format, out *experiment.Outcome) error {
	t := out.Grid.Points()

	var all []float64
	series := make([]chart.Series, 0, out.Sweep.Len())
	for i, run := range out.Sweep.Runs {
		v := run.Trajectory.Values()
		all = append(all, v...)
		series = append(series, chart.ContinuousSeries{
			Name:    rateLabel(run.Rate),
			XValues: t,
			YValues: v,
			Style:   chart.Style{StrokeColor: chart.GetDefaultColor(i), StrokeWidth: 2},
		})
	}

	graph := newChart("Logistic growth for various r", "Time", "Tumor volume", t, all)
	graph.Series = series
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(format.provider(), w)
}

// RenderFinals scatters each swept rate against its final volume.
func RenderFinals(w io.Writer, format Format, out *experiment.Outcome) error {
	rates := out.Sweep.Rates()
	finals := out.Sweep.Finals()

	graph := newChart("Final tumor volume vs growth rate", "Growth rate r", "Final tumor volume", rates, finals)
	graph.Series = []chart.Series{
		chart.ContinuousSeries{
			XValues: rates,
			YValues: finals,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    5,
				DotColor:    chart.GetDefaultColor(0),
			},
		},
	}
	return graph.Render(format.provider(), w)
}

func newChart(title, xName, yName string, xs, ys []float64) chart.Chart {
	return chart.Chart{
		Title:  title,
		Width:  plotWidth,
		Height: plotHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           xName,
			Range:          paddedRange(xs),
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:           yName,
			Range:          paddedRange(ys),
			GridMajorStyle: gridStyle,
		},
	}
}

// paddedRange widens [min, max] by 5% so flat series still get a non-zero
// axis range.
func paddedRange(values []float64) *chart.ContinuousRange {
	lo, hi := floats.Min(values), floats.Max(values)
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 1
	}
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

func checkFinite(out *experiment.Outcome) error {
	series := append([]experiment.Run{out.Baseline}, out.Sweep.Runs...)
	for _, run := range series {
		for i, v := range run.Trajectory.Values() {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %s is %v at t=%g", dynamo.ErrUnstable, rateLabel(run.Rate), v, out.Grid.At(i))
			}
		}
	}
	return nil
}

func rateLabel(r float64) string {
	return fmt.Sprintf("r=%g", r)
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
