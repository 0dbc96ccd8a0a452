package report

import (
	"fmt"
	"io"
	"strconv"
)

// FormatAnswer renders v with the shortest decimal representation that
// round-trips to the same float64.
func FormatAnswer(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteAnswer prints the "Answer: <value>" line.
func WriteAnswer(w io.Writer, v float64) error {
	_, err := fmt.Fprintf(w, "Answer: %s\n", FormatAnswer(v))
	return err
}
