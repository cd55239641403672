package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/usdfmt/internal/domain"
)

// CSVFormatter writes one row per input value, in input order.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(results []domain.FormattedValue) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Input", "Band", "Formatted", "Error"}); err != nil {
		return nil, err
	}
	for _, r := range results {
		if err := w.Write([]string{r.Input, r.Band, r.Formatted, r.Error}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
