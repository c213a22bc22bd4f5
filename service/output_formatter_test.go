package service

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/slang-lang/slangflow/domain"
)

func TestWriteJSON(t *testing.T) {
	data := map[string]interface{}{
		"name":  "test",
		"value": 42,
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, data); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse output as JSON: %v", err)
	}
	if result["name"] != "test" {
		t.Errorf("expected name=test, got %v", result["name"])
	}
}

func TestFormatAnalyzeResult_Text(t *testing.T) {
	result := &domain.BatchAnalyzeResult{
		Results: []domain.AnalyzeResult{
			{File: "a.json", BlockCount: 3, CFGText: "entry: B0, exit: B1\n"},
		},
	}

	var buf bytes.Buffer
	if err := NewOutputFormatter().FormatAnalyzeResult(&buf, result, "text"); err != nil {
		t.Fatalf("FormatAnalyzeResult: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "a.json") || !strings.Contains(out, "blocks: 3") {
		t.Errorf("unexpected text output: %q", out)
	}
}

func TestFormatAnalyzeResult_JSON(t *testing.T) {
	result := &domain.BatchAnalyzeResult{
		Results: []domain.AnalyzeResult{{File: "a.json", BlockCount: 1}},
	}

	var buf bytes.Buffer
	if err := NewOutputFormatter().FormatAnalyzeResult(&buf, result, "json"); err != nil {
		t.Fatalf("FormatAnalyzeResult: %v", err)
	}

	var decoded domain.BatchAnalyzeResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded.Results) != 1 || decoded.Results[0].File != "a.json" {
		t.Fatalf("unexpected round-trip: %+v", decoded)
	}
}

func TestFormatCheckResult_Text(t *testing.T) {
	result := &domain.CheckResult{
		Passed: false,
		Violations: []domain.CheckViolation{
			{File: "bad.json", Category: "malformed control flow", Message: "break outside any loop"},
		},
		Summary: domain.CheckSummary{FixturesChecked: 1, TotalViolations: 1},
	}

	var buf bytes.Buffer
	if err := NewOutputFormatter().FormatCheckResult(&buf, result, "text"); err != nil {
		t.Fatalf("FormatCheckResult: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "FAIL bad.json") || !strings.Contains(out, "FAIL\n") {
		t.Errorf("unexpected text output: %q", out)
	}
}

func TestFormatCheckResult_PassingText(t *testing.T) {
	result := &domain.CheckResult{Passed: true, Summary: domain.CheckSummary{FixturesChecked: 2}}

	var buf bytes.Buffer
	if err := NewOutputFormatter().FormatCheckResult(&buf, result, "text"); err != nil {
		t.Fatalf("FormatCheckResult: %v", err)
	}
	if !strings.Contains(buf.String(), "PASS") {
		t.Errorf("expected PASS in output, got %q", buf.String())
	}
}
