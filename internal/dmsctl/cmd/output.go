package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/nandemo-ya/dms-go/internal/common"
	"github.com/nandemo-ya/dms-go/internal/config"
)

// table is the tabular form of a result: a header row and data rows
type table [][]string

// printResult writes v in the configured output format. rows renders the
// table form; when it is nil the table format falls back to YAML.
func (o *options) printResult(w io.Writer, v any, rows func() table) error {
	switch strings.ToLower(o.cfg.Output) {
	case config.OutputJSON:
		return outputJSON(w, v)
	case config.OutputYAML:
		return outputYAML(w, v)
	case config.OutputTable:
		if rows == nil {
			return outputYAML(w, v)
		}
		return outputTable(w, rows())
	default:
		return fmt.Errorf("unsupported format: %s (supported: table, json, yaml)", o.cfg.Output)
	}
}

func outputJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// outputYAML goes through JSON so that member names and timestamps match
// the wire format.
func outputYAML(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}

func outputTable(w io.Writer, rows table) error {
	if len(rows) <= 1 {
		fmt.Fprintln(w, "No resources found")
		return nil
	}
	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	fmt.Fprintln(w, rendered)
	return nil
}

func str(p *string) string {
	if p == nil {
		return "-"
	}
	return *p
}

func num[T int32 | int64](p *T) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprint(*p)
}

func date(t *common.UnixTime) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}
