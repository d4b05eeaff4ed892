package server

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/invopop/jsonschema"

	"bfctl/internal/config"
)

// schemaTargets are the documents `bfctl schema` can describe.
var schemaTargets = map[string]func() any{
	"run-request":  func() any { return &RunRequest{} },
	"run-response": func() any { return &RunResponse{} },
	"check":        func() any { return &CheckResponse{} },
	"error":        func() any { return &ErrorResponse{} },
	"config":       func() any { return &config.Config{} },
}

// SchemaNames lists the known schema targets, sorted.
func SchemaNames() []string {
	out := make([]string, 0, len(schemaTargets))
	for k := range schemaTargets {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Schema reflects a JSON Schema for one of SchemaNames.
func Schema(name string) (*jsonschema.Schema, error) {
	mk, ok := schemaTargets[name]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q (want one of %v)", name, SchemaNames())
	}
	r := jsonschema.Reflector{ExpandedStruct: true, DoNotReference: true}
	sch := r.Reflect(mk())
	sch.Title = "bfctl " + name
	return sch, nil
}

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(sch *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(sch, "", "  ")
}
