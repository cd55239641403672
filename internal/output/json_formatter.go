package output

import (
	"encoding/json"

	"github.com/rpgo/usdfmt/internal/domain"
)

// JSONFormatter serializes the results as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results []domain.FormattedValue) ([]byte, error) {
	if results == nil {
		results = []domain.FormattedValue{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
