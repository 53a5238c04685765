// Package output renders solve reports for the hungarian command.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
)

// Format is an output format.
type Format string

const (
	// FormatTable renders one table per problem.
	FormatTable Format = "table"
	// FormatJSON renders JSON.
	FormatJSON Format = "json"
	// FormatYAML renders YAML.
	FormatYAML Format = "yaml"
)

// Formatter writes reports to w.
type Formatter interface {
	Format(w io.Writer, reports []Report) error
}

// NewFormatter returns the formatter for format. Unknown formats render tables.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TableFormatter{}
	}
}

// ParseFormat converts s to a Format. The empty string is accepted and
// means auto-detect.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	switch format {
	case FormatTable, FormatJSON, FormatYAML, "":
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of: table, json, yaml", s)
	}
}

// DetectFormat returns explicit if set, otherwise table for a terminal and
// JSON for pipes, files and buffers.
func DetectFormat(explicit Format, w io.Writer) Format {
	if explicit != "" {
		return explicit
	}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return FormatTable
	}

	return FormatJSON
}

// JSONFormatter writes a single report as an object and a batch as an array.
type JSONFormatter struct {
	Indent string
}

// Format implements Formatter.
func (f *JSONFormatter) Format(w io.Writer, reports []Report) error {
	encoder := json.NewEncoder(w)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}

	return encoder.Encode(single(reports))
}

// YAMLFormatter writes YAML with the same shape as JSONFormatter.
type YAMLFormatter struct{}

// Format implements Formatter.
func (f *YAMLFormatter) Format(w io.Writer, reports []Report) error {
	data, err := yaml.MarshalWithOptions(single(reports),
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(data)

	return err
}

func single(reports []Report) any {
	if len(reports) == 1 {
		return reports[0]
	}

	return reports
}

// TableFormatter writes one row per matrix row with its column and cost.
type TableFormatter struct{}

// Format implements Formatter.
func (f *TableFormatter) Format(w io.Writer, reports []Report) error {
	for k, r := range reports {
		if len(reports) > 1 {
			if k > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "problem %d (%dx%d)\n", k, r.Rows, r.Cols)
		}
		if err := formatTable(w, r); err != nil {
			return err
		}
	}

	return nil
}

func formatTable(w io.Writer, r Report) error {
	costs := make(map[int]int, len(r.Pairs))
	for _, p := range r.Pairs {
		costs[p.Row] = p.Cost
	}

	table := tablewriter.NewTable(w)
	table.Header("Row", "Column", "Cost")
	for i, col := range r.RowAssignment {
		if col == nil {
			if err := table.Append(strconv.Itoa(i), "-", "-"); err != nil {
				return err
			}
			continue
		}
		if err := table.Append(strconv.Itoa(i), strconv.Itoa(*col), strconv.Itoa(costs[i])); err != nil {
			return err
		}
	}
	table.Footer("", "Total", strconv.Itoa(r.Cost))

	return table.Render()
}
