// Package output renders records for the CLI and the batch file writer.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Format defines the output format for CLI commands.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// globalFormat is set by the root command's --output flag.
var globalFormat Format = FormatJSON

// SetFormat sets the global output format.
func SetFormat(format string) {
	switch format {
	case "yaml":
		globalFormat = FormatYAML
	default:
		globalFormat = FormatJSON
	}
}

// Output writes data to stdout in the configured format.
func Output(data any) error {
	return OutputTo(os.Stdout, globalFormat, data)
}

// OutputTo writes data to the given writer in the specified format.
func OutputTo(w io.Writer, format Format, data any) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	}
}

// WriteJSONFile writes data to path as two-space-indented JSON, the
// shape batch outputs use regardless of the CLI format flag.
func WriteJSONFile(path string, data any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := OutputTo(f, FormatJSON, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
