package main

import "testing"

func TestBuildCmd_Flags(t *testing.T) {
	cmd := buildCmd()
	if cmd.Flags().Lookup("dot") == nil {
		t.Error("expected --dot flag on build command")
	}
}

func TestBuildCmd_RequiresExactlyOneArg(t *testing.T) {
	cmd := buildCmd()
	if err := cmd.Args(cmd, nil); err == nil {
		t.Error("expected error for zero args")
	}
	if err := cmd.Args(cmd, []string{"a", "b"}); err == nil {
		t.Error("expected error for two args")
	}
	if err := cmd.Args(cmd, []string{"a"}); err != nil {
		t.Errorf("expected one arg to be valid, got %v", err)
	}
}

func TestAnalyzeCmd_FlagsExist(t *testing.T) {
	cmd := analyzeCmd()
	for _, name := range []string{"select", "format", "config", "cfg", "dot", "no-progress"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("missing expected flag: --%s", name)
		}
	}
}

func TestAnalyzeCmd_ShortFlags(t *testing.T) {
	cmd := analyzeCmd()
	shorts := map[string]string{"s": "select", "f": "format", "c": "config"}
	for short, long := range shorts {
		if cmd.Flags().ShorthandLookup(short) == nil {
			t.Errorf("missing short flag -%s for --%s", short, long)
		}
	}
}

func TestAnalyzeCmd_RequiresAtLeastOneArg(t *testing.T) {
	cmd := analyzeCmd()
	if err := cmd.Args(cmd, nil); err == nil {
		t.Error("expected error for zero args")
	}
}

func TestCheckCmd_FlagsExist(t *testing.T) {
	cmd := checkCmd()
	for _, name := range []string{"format", "config"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("missing expected flag: --%s", name)
		}
	}
}

func TestCheckExitError_Error(t *testing.T) {
	err := &CheckExitError{Code: 1, Message: "violations found"}
	if err.Error() != "violations found" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestInitCmd_Flags(t *testing.T) {
	cmd := initCmd()
	for _, name := range []string{"config", "force", "no-fixture", "interactive"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("missing expected flag: --%s", name)
		}
	}
}
