package deadpages

import (
	"encoding/json"
	"fmt"
	"io"
)

// Formatter renders a check result for output.
type Formatter interface {
	Format(w io.Writer, result *Result) error
}

// NewFormatter creates a formatter for the given output format.
func NewFormatter(format string, quiet bool) Formatter {
	if format == "json" {
		return &JSONFormatter{}
	}
	return &TextFormatter{Quiet: quiet}
}

// TextFormatter formats results as human-readable text.
type TextFormatter struct {
	// Quiet suppresses the status lines and prints only dead page paths.
	Quiet bool
}

// Format outputs results in human-readable text format.
func (f *TextFormatter) Format(w io.Writer, result *Result) error {
	if f.Quiet {
		for _, page := range result.Dead {
			if _, err := fmt.Fprintln(w, page); err != nil {
				return err
			}
		}
		return nil
	}

	if _, err := fmt.Fprintf(w, "Checking for dead pages in: %s\n", result.Root); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Found %d files in SUMMARY.md\n", result.Referenced); err != nil {
		return err
	}

	if !result.HasDead() {
		_, err := fmt.Fprintf(w, "\nNo dead pages found!\n")
		return err
	}

	if _, err := fmt.Fprintf(w, "\nFound %d dead page(s) (not in SUMMARY.md):\n\n", len(result.Dead)); err != nil {
		return err
	}
	for _, page := range result.Dead {
		if _, err := fmt.Fprintf(w, "  %s\n", page); err != nil {
			return err
		}
	}
	return nil
}

// JSONFormatter formats results as JSON.
type JSONFormatter struct{}

// JSONOutput represents the JSON output structure.
type JSONOutput struct {
	Root       string   `json:"root"`
	Referenced int      `json:"referenced"`
	DeadCount  int      `json:"dead_count"`
	DeadPages  []string `json:"dead_pages"`
}

// Format outputs results in JSON format.
func (f *JSONFormatter) Format(w io.Writer, result *Result) error {
	output := JSONOutput{
		Root:       result.Root,
		Referenced: result.Referenced,
		DeadCount:  len(result.Dead),
		DeadPages:  result.Dead,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
