package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/rpgo/usdfmt/internal/domain"
)

// TextFormatter prints only the formatted strings, one per line.
type TextFormatter struct{}

func (t TextFormatter) Name() string { return "text" }

func (t TextFormatter) Format(results []domain.FormattedValue) ([]byte, error) {
	var buf bytes.Buffer
	for _, r := range results {
		fmt.Fprintln(&buf, r.Formatted)
	}
	return buf.Bytes(), nil
}

// TableFormatter prints aligned input, band and output columns.
type TableFormatter struct{}

func (t TableFormatter) Name() string { return "table" }

func (t TableFormatter) Format(results []domain.FormattedValue) ([]byte, error) {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INPUT\tBAND\tFORMATTED")
	for _, r := range results {
		band := r.Band
		if r.Failed() {
			band = "error: " + r.Error
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Input, band, r.Formatted)
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
