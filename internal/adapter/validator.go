package adapter

import (
	"embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaFS embed.FS

// Validator checks raw design bytes against the CUE schema contract before
// they are decoded. A design that does not match the schema fails loudly with
// the offending field named, instead of surfacing later as a half-empty
// circuit inside the transform.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator loads and compiles the embedded design schema.
func NewValidator() (*Validator, error) {
	schemaBytes, err := schemaFS.ReadFile("schema.cue")
	if err != nil {
		return nil, fmt.Errorf("loading embedded schema: %w", err)
	}

	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaBytes, cue.Filename("schema.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	return &Validator{ctx: ctx, schema: schema.LookupPath(cue.ParsePath("#Design"))}, nil
}

// Validate unifies the JSON-encoded design with the schema and reports every
// violation found.
func (v *Validator) Validate(data []byte) error {
	value := v.ctx.CompileBytes(data, cue.Filename("design.json"))
	if value.Err() != nil {
		return fmt.Errorf("compiling design as CUE: %w", value.Err())
	}

	unified := v.schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		var msgs []string
		for _, e := range errors.Errors(err) {
			msgs = append(msgs, e.Error())
		}

		return fmt.Errorf("design does not match schema: %v", msgs)
	}

	return nil
}
