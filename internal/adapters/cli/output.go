package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/andrescamacho/spacetraders-sdk/pkg/client"
)

// FailedError is returned when the API answered with an error status. Its
// message is the outcome message, e.g. "Agent not found.".
type FailedError struct {
	Kind       client.Kind
	StatusCode int
	Code       int
	Message    string
}

func (e *FailedError) Error() string {
	return e.Message
}

func validOutput(format string) bool {
	switch format {
	case "text", "json", "yaml":
		return true
	}
	return false
}

// render prints a successful outcome in the selected format, using text for
// the human-readable form. Failed outcomes become a *FailedError.
func render[T any](cmd *cobra.Command, outcome *client.Outcome[T], err error, text func(io.Writer, *T)) error {
	if err := check(outcome, err); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(outcome.Value, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := toYAML(outcome.Value)
		if err != nil {
			return err
		}
		fmt.Fprint(out, string(data))
	default:
		fmt.Fprintf(out, "✓ %s\n", outcome.Message)
		if text != nil {
			text(out, outcome.Value)
		}
	}
	return nil
}

// check turns a failed outcome into a *FailedError without printing anything
func check[T any](outcome *client.Outcome[T], err error) error {
	if err != nil {
		return err
	}
	if !outcome.OK() {
		return &FailedError{
			Kind:       outcome.Kind,
			StatusCode: outcome.StatusCode,
			Code:       outcome.Code,
			Message:    outcome.Message,
		}
	}
	return nil
}

// toYAML goes through JSON so keys keep their wire names
func toYAML(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode output: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to encode output: %w", err)
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode output: %w", err)
	}
	return out, nil
}

func newTable(w io.Writer, headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	dashes := make([]string, len(headers))
	for i, h := range headers {
		dashes[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(dashes, "\t"))
	return tw
}

// field prints an aligned "  Label:  value" line
func field(w io.Writer, label string, value interface{}) {
	fmt.Fprintf(w, "  %-16s %v\n", label+":", value)
}

func credits(n int64) string {
	return humanize.Comma(n) + " credits"
}

// when formats t relative to now, e.g. "49 seconds from now"
func when(t time.Time) string {
	return fmt.Sprintf("%s (%s)", t.Format(time.RFC3339), humanize.Time(t))
}

func pageFooter(w io.Writer, total, page, limit int) {
	pages := (total + limit - 1) / limit
	if pages == 0 {
		pages = 1
	}
	fmt.Fprintf(w, "\nPage %d of %d (%s total)\n", page, pages, humanize.Comma(int64(total)))
}
