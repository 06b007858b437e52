package wc

import (
	"fmt"
	"io"
	"strings"
)

const totalName = "total"

// ResultsSet is everything that gets printed: the per source rows, followed
// by a total row when more than one source was requested.
type ResultsSet struct {
	Total Counts

	Results []Result
}

// NewResultsSet sums the successful results and appends the total row when
// there is more than one result.
func NewResultsSet(results []Result) ResultsSet {
	var total Counts
	for _, r := range results {
		if !r.Failed() {
			total = total.Add(r.Counts)
		}
	}
	rows := results[:len(results):len(results)]
	if len(results) > 1 {
		rows = append(rows, Result{Counts: total, Filename: totalName})
	}
	return ResultsSet{Total: total, Results: rows}
}

func approxLog10(u uint) int {
	i := 1
	for u >= 10 {
		u /= 10
		i++
	}
	return i
}

// Width is the column width shared by every row: the number of digits of the
// largest total, whether or not that metric is displayed.
func (rs ResultsSet) Width() int {
	var max uint
	for _, m := range order {
		if v := rs.Total.Get(m); v > max {
			max = v
		}
	}
	return approxLog10(max)
}

// String renders the rows with the default metrics.
func (rs ResultsSet) String() string {
	return rs.format(DefaultMetrics)
}

// Fprint writes all rows to w, showing only the metrics in metrics.
func (rs ResultsSet) Fprint(w io.Writer, metrics MetricSet) error {
	_, err := io.WriteString(w, rs.format(metrics))
	return err
}

func (rs ResultsSet) format(metrics MetricSet) string {
	builder := strings.Builder{}
	width := rs.Width()
	for _, result := range rs.Results {
		if result.Failed() {
			builder.WriteString(result.Err.Error())
			builder.WriteByte('\n')
			continue
		}
		for _, m := range order {
			if !metrics.Has(m) {
				continue
			}
			fmt.Fprintf(&builder, "%*d ", width, result.Get(m))
		}
		builder.WriteString(result.Filename)
		builder.WriteByte('\n')
	}
	return builder.String()
}
