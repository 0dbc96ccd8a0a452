package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/tumorsim/internal/experiment"
)

const (
	asciiHeight = 12
	asciiWidth  = 80
)

var sweepColors = []asciigraph.AnsiColor{
	asciigraph.Red,
	asciigraph.Yellow,
	asciigraph.Green,
	asciigraph.Blue,
	asciigraph.Magenta,
	asciigraph.Cyan,
}

// WriteASCII draws the three plots as terminal graphs.
func WriteASCII(w io.Writer, out *experiment.Outcome) error {
	graphs := []string{
		asciigraph.Plot(out.Baseline.Trajectory.Values(),
			asciigraph.Height(asciiHeight),
			asciigraph.Width(asciiWidth),
			asciigraph.Caption(fmt.Sprintf("tumor volume vs time (%s)", out.Params.WithRate(out.Baseline.Rate))),
		),
		sweepGraph(out.Sweep),
		asciigraph.Plot(out.Sweep.Finals(),
			asciigraph.Height(asciiHeight/2),
			asciigraph.Caption("final volume at "+rateList(out.Sweep.Rates())),
		),
	}

	for _, g := range graphs {
		if _, err := fmt.Fprintf(w, "%s\n\n", g); err != nil {
			return err
		}
	}
	return nil
}

func sweepGraph(s *experiment.SweepResult) string {
	series := make([][]float64, 0, s.Len())
	legends := make([]string, 0, s.Len())
	colors := make([]asciigraph.AnsiColor, 0, s.Len())
	for i, run := range s.Runs {
		series = append(series, run.Trajectory.Values())
		legends = append(legends, rateLabel(run.Rate))
		colors = append(colors, sweepColors[i%len(sweepColors)])
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(asciiHeight),
		asciigraph.Width(asciiWidth),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption("tumor volume vs time for various r"),
	)
}

func rateList(rates []float64) string {
	parts := make([]string, len(rates))
	for i, r := range rates {
		parts[i] = fmt.Sprintf("%g", r)
	}
	return "r = " + strings.Join(parts, ", ")
}
