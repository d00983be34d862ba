package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// result is one (implementation, mix) measurement: n operations run in
// elapsed wall-clock time.
type result struct {
	impl    string
	mixName string
	n       int
	elapsed time.Duration
}

func (r result) mopsPerSec() float64 {
	return float64(r.n) / r.elapsed.Seconds() / 1e6
}

func (r result) seconds() float64 {
	return r.elapsed.Seconds()
}

// writeReport renders a fixed-width tabular report to w: one row per
// (implementation, mix), plus an aggregate row per implementation summing
// operations and elapsed time across all mixes.
func writeReport(w io.Writer, results []result) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "IMPL\tMIX\tOPS\tMOPS/S\tSECONDS")

	totals := map[string]result{}
	order := []string{}

	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.3f\t%.3f\n", r.impl, r.mixName, r.n, r.mopsPerSec(), r.seconds())

		t, ok := totals[r.impl]
		if !ok {
			order = append(order, r.impl)
		}
		t.impl = r.impl
		t.n += r.n
		t.elapsed += r.elapsed
		totals[r.impl] = t
	}

	for _, impl := range order {
		t := totals[impl]
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.3f\t%.3f\n", t.impl, "ALL", t.n, t.mopsPerSec(), t.seconds())
	}
}
