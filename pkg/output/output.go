// Package output renders result models in text, JSON or YAML form.
// Rendering is a pure projection: it never mutates the model, and a
// well-formed model always renders without error.
package output

import (
	"encoding/json"
	"io"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/pipewatch/cli/internal/errors"
)

// Format represents the output format type
type Format string

const (
	// FormatText outputs deterministic key=value text
	FormatText Format = "text"
	// FormatJSON outputs a single JSON document with a fixed schema
	FormatJSON Format = "json"
	// FormatYAML outputs in YAML format
	FormatYAML Format = "yaml"
)

// Formatter is an interface that types must implement to support text output
type Formatter interface {
	// TextOutput returns the plain text representation
	TextOutput() string
}

// Write outputs the given value in the specified format to the writer
func Write(w io.Writer, v Formatter, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, v)
	case FormatYAML:
		return writeYAML(w, v)
	case FormatText:
		return writeText(w, v)
	default:
		return errors.NewUsageError(nil, "unsupported output format: "+string(format))
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(v)
}

func writeText(w io.Writer, f Formatter) error {
	_, err := io.WriteString(w, f.TextOutput()+"\n")
	return err
}

// AddFlags adds the format flag to the command flags
func AddFlags(flags *pflag.FlagSet) {
	flags.String("format", string(FormatText), "Output format. One of: text, json, yaml")
}

// GetFormat gets the format from command flags
func GetFormat(flags *pflag.FlagSet) (Format, error) {
	format, err := flags.GetString("format")
	if err != nil {
		return "", err
	}

	switch Format(format) {
	case FormatText, FormatJSON, FormatYAML:
		return Format(format), nil
	default:
		return "", errors.NewUsageError(nil, "unsupported output format: "+format,
			"choose one of: text, json, yaml")
	}
}
