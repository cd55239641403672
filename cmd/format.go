package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/usdfmt/internal/currency"
	"github.com/rpgo/usdfmt/internal/domain"
	"github.com/rpgo/usdfmt/internal/output"
)

var (
	outputFormat string
	strict       bool
)

func newFormatCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "format [value...]",
		Short: "Format USD values",
		Long: `Formats each value given as an argument. With no arguments, values are
read from standard input, one per line. Blank lines are skipped.`,
		Example: `  usdfmt format 0.1234 1.2 123456.789
  echo 0.0000001 | usdfmt format -o json`,
		RunE: runFormat,
	}
	c.Flags().StringVarP(&outputFormat, "output", "o", "text", "output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+")")
	c.Flags().BoolVar(&strict, "strict", false, "fail on the first value that cannot be formatted")
	return c
}

func runFormat(cmd *cobra.Command, args []string) error {
	f, err := buildFormatter(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	// reject an unknown format before reading stdin
	if output.GetFormatterByName(outputFormat) == nil {
		return output.Write(cmd.OutOrStdout(), outputFormat, nil)
	}

	inputs := args
	if len(inputs) == 0 {
		inputs, err = readLines(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	}

	results := make([]domain.FormattedValue, 0, len(inputs))
	for _, in := range inputs {
		r := formatOne(f, in)
		if strict && r.Failed() {
			return fmt.Errorf("value %q: %s", in, r.Error)
		}
		results = append(results, r)
	}
	return output.Write(cmd.OutOrStdout(), outputFormat, results)
}

func formatOne(f *currency.Formatter, in string) domain.FormattedValue {
	r := domain.FormattedValue{Input: in, Formatted: f.Placeholder()}
	v, err := strconv.ParseFloat(strings.TrimSpace(in), 64)
	if err != nil {
		r.Error = fmt.Sprintf("%v: %q is not a number", currency.ErrInvalidArgument, in)
		return r
	}
	r.Value = v
	b, err := f.BandOf(v)
	if err != nil {
		r.Error = err.Error()
		r.Formatted = f.Display(v)
		return r
	}
	r.Band = b.Name
	r.Formatted = f.Display(v)
	return r
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}
