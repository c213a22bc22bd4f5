package service

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/slang-lang/slangflow/domain"
)

// OutputFormatterImpl renders domain results as text or JSON: one WriteJSON
// helper plus a pair of Format* functions covering this module's two result
// shapes, batch analyze results and check results. DOT rendering of a CFG
// is a distinct concern with its own writer, see dot_formatter.go.
type OutputFormatterImpl struct{}

// NewOutputFormatter returns an OutputFormatterImpl.
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// WriteJSON writes data as indented JSON to w, shared by every JSON
// response shape this formatter produces.
func WriteJSON(w io.Writer, data interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// FormatAnalyzeResult writes a batch analyze result to w in the requested
// format ("text" or "json"; constants.OutputFormatText/JSON).
func (f *OutputFormatterImpl) FormatAnalyzeResult(w io.Writer, result *domain.BatchAnalyzeResult, format string) error {
	switch format {
	case "json":
		return WriteJSON(w, result)
	default:
		return f.writeAnalyzeText(w, result)
	}
}

func (f *OutputFormatterImpl) writeAnalyzeText(w io.Writer, result *domain.BatchAnalyzeResult) error {
	for _, r := range result.Results {
		fmt.Fprintf(w, "=== %s ===\n", r.File)
		fmt.Fprintf(w, "blocks: %d\n", r.BlockCount)
		if r.ReachingDefs != nil {
			fmt.Fprintln(w, "-- reaching definitions --")
			fmt.Fprint(w, r.ReachingDefs.Text)
		}
		if r.LiveVariables != nil {
			fmt.Fprintln(w, "-- live variables --")
			fmt.Fprint(w, r.LiveVariables.Text)
		}
		if r.CFGText != "" {
			fmt.Fprintln(w, "-- cfg --")
			fmt.Fprint(w, r.CFGText)
		}
		if r.CFGDot != "" {
			fmt.Fprintln(w, "-- cfg (dot) --")
			fmt.Fprint(w, r.CFGDot)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%d file(s) analyzed\n", len(result.Results))
	return nil
}

// FormatCheckResult writes a check result to w in the requested format.
func (f *OutputFormatterImpl) FormatCheckResult(w io.Writer, result *domain.CheckResult, format string) error {
	switch format {
	case "json":
		return WriteJSON(w, result)
	default:
		return f.writeCheckText(w, result)
	}
}

func (f *OutputFormatterImpl) writeCheckText(w io.Writer, result *domain.CheckResult) error {
	var sb strings.Builder
	for _, v := range result.Violations {
		fmt.Fprintf(&sb, "FAIL %s: [%s] %s\n", v.File, v.Category, v.Message)
	}
	fmt.Fprintf(&sb, "\nfixtures checked: %d\n", result.Summary.FixturesChecked)
	fmt.Fprintf(&sb, "violations: %d\n", result.Summary.TotalViolations)
	if result.Passed {
		fmt.Fprintln(&sb, "PASS")
	} else {
		fmt.Fprintln(&sb, "FAIL")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
