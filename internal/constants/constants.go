package constants

// Tool name and related constants.
const (
	// ToolName is the name of this tool.
	ToolName = "slangflow"

	// ConfigFileName is the default config file name.
	ConfigFileName = ".slangflow.yaml"

	// EnvVarPrefix is the prefix for environment variables.
	EnvVarPrefix = "SLANGFLOW"

	// IgnoreFileName filters fixture directories the same way a
	// .gitignore does (service/fixture_loader.go).
	IgnoreFileName = ".slangflowignore"
)

// Analysis name constants, used by config.AnalysisConfig.Enabled and the
// analyze command's --select flag.
const (
	AnalysisReachingDefs = "reachingdefs"
	AnalysisLiveVars     = "livevars"
)

// Output format constants.
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
	OutputFormatDOT  = "dot"
)

// DefaultIterationCapMultiplier is the solver's safety-net multiplier
// ("10 × |blocks| × |statements|") absent any config override.
const DefaultIterationCapMultiplier = 10
