package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/tumorsim/internal/experiment"
)

// WriteSummary prints a boxed overview of the baseline and the sweep. It is
// meant for stderr; stdout is reserved for the answer line.
func WriteSummary(w io.Writer, out *experiment.Outcome) error {
	p := out.Params
	header := titleStyle.Render("logistic tumor growth")

	params := lipgloss.JoinVertical(lipgloss.Left,
		field("capacity", formatValue(p.K)),
		field("initial", formatValue(p.V0)),
		field("baseline r", formatValue(out.Baseline.Rate)),
		field("grid", fmt.Sprintf("[%g, %g] %d points", out.Grid.Start(), out.Grid.End(), out.Grid.Len())),
	)

	var rows strings.Builder
	rows.WriteString(mutedStyle.Render(fmt.Sprintf("%-8s %-20s %s", "r", "final", "t(95%)")))
	for _, run := range out.Sweep.Runs {
		rows.WriteString("\n")
		rows.WriteString(fmt.Sprintf("%s %s %s",
			labelStyle.Render(fmt.Sprintf("%-8g", run.Rate)),
			valueStyle.Render(fmt.Sprintf("%-20s", formatValue(run.Final()))),
			valueStyle.Render(formatValue(run.Metrics["saturation_time"])),
		))
	}

	answer := answerStyle.Render("final " + FormatAnswer(out.Answer()))

	body := lipgloss.JoinVertical(lipgloss.Left, header, "", params, "", rows.String(), "", answer)
	_, err := fmt.Fprintln(w, panelStyle.Render(body))
	return err
}

func field(label, value string) string {
	return labelStyle.Render(fmt.Sprintf("%-12s", label)) + valueStyle.Render(value)
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.6g", v)
}
