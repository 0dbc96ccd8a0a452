// Package report renders the output of an experiment.
//
// It consumes exactly three data products from an [experiment.Outcome]:
//
//   - the baseline trajectory on its time grid (time-series plot)
//   - the growth-rate sweep (overlaid time-series plot)
//   - the (growth rate, final value) pairs (scatter plot)
//
// and produces PNG or SVG images ([WritePlots]), terminal plots ([WriteASCII]), a
// styled summary ([WriteSummary]), CSV/JSON exports of the arrays, and the
// single answer line ([WriteAnswer]).
package report
