package config

// DefaultConfigYAML is the starter config file content written by
// `slangflow init` (cmd/slangflow/init.go).
const DefaultConfigYAML = `# slangflow configuration
output:
  format: text # text | json | dot

solver:
  iteration_cap_multiplier: 10

analysis:
  enabled:
    - reachingdefs
    - livevars
`

// SampleFixtureJSON is a minimal HLIR compilation-unit fixture written by
// `slangflow init`, round-trippable through hlir.CompilationUnit's
// MarshalJSON/UnmarshalJSON (hlir/json.go).
const SampleFixtureJSON = `{
  "stmts": [
    {"kind": "let", "fields": {"name": "x", "value": {"kind": "literal", "fields": {"lkind": 0, "num": 10}}}},
    {"kind": "print", "fields": {"args": [{"kind": "var", "fields": {"name": "x"}}]}}
  ]
}
`
