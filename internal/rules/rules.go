// Package rules holds the include/status/type companion tables consulted
// when a lookup, browse or search request is finalized.
//
// Tables are plain CUE data checked against an embedded schema. The
// defaults ship in rules.cue; a replacement file may be loaded with
// LoadFile. A loaded *Tables is immutable and safe for concurrent use.
package rules

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/brainz/internal/brainz"
)

//go:embed schema.cue
var schemaSource []byte

//go:embed rules.cue
var defaultSource []byte

// Op is the kind of request a table applies to.
type Op string

const (
	OpSearch Op = "search"
	OpLookup Op = "lookup"
	OpBrowse Op = "browse"
)

// Companion requires one of Requires whenever Include is requested.
type Companion struct {
	Include  string   `json:"include"`
	Requires []string `json:"requires"`
}

// Table is the rule set for one operation and entity.
type Table struct {
	Companions []Companion `json:"companions"`
	Status     []string    `json:"status"`
	Type       []string    `json:"type"`
	Allowed    []string    `json:"allowed"`
}

// Tables is a compiled rule set keyed by operation and entity.
type Tables struct {
	byOp map[Op]map[brainz.Entity]Table
}

// LoadError reports a rule source that does not compile or does not
// satisfy the schema.
type LoadError struct {
	Message string
	Pos     token.Pos
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: rules: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return "rules: " + e.Message
}

// Load compiles src against the schema.
func Load(src []byte) (*Tables, error) {
	return load(src, "rules.cue")
}

// LoadFile reads and compiles a rule file.
func LoadFile(path string) (*Tables, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	return load(src, path)
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
	defaultErr    error
)

// Default returns the embedded tables. They are compiled once.
func Default() (*Tables, error) {
	defaultOnce.Do(func() {
		defaultTables, defaultErr = Load(defaultSource)
	})
	return defaultTables, defaultErr
}

func load(src []byte, filename string) (*Tables, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	data := ctx.CompileBytes(src, cue.Filename(filename))
	if err := data.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	v := schema.Unify(data)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	var doc map[string]map[string]Table
	tablesVal := v.LookupPath(cue.ParsePath("tables"))
	if tablesVal.Exists() {
		if err := tablesVal.Decode(&doc); err != nil {
			return nil, formatCUEError(err)
		}
	}

	t := &Tables{byOp: make(map[Op]map[brainz.Entity]Table, len(doc))}
	for op, byEntity := range doc {
		tables := make(map[brainz.Entity]Table, len(byEntity))
		for name, table := range byEntity {
			entity, err := brainz.ParseEntity(name)
			if err != nil {
				return nil, &LoadError{Message: fmt.Sprintf("tables.%s: %v", op, err)}
			}
			tables[entity] = table
		}
		t.byOp[Op(op)] = tables
	}
	return t, nil
}

// formatCUEError keeps the first error and its position.
func formatCUEError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &LoadError{Message: err.Error()}
	}
	first := errs[0]
	le := &LoadError{Message: first.Error()}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		le.Pos = positions[0]
	}
	return le
}

// Lookup returns the table for op and entity.
func (t *Tables) Lookup(op Op, entity brainz.Entity) (Table, bool) {
	if t == nil {
		return Table{}, false
	}
	table, ok := t.byOp[op][entity]
	return table, ok
}

// Validate checks modifiers against the table for op and entity. An
// entity without a table accepts any includes. Status and type values
// must always be known.
func (t *Tables) Validate(op Op, entity brainz.Entity, m brainz.Modifiers) error {
	for _, s := range m.Statuses {
		if !brainz.ValidStatus(s) {
			return NewValidationError(ErrCodeInvalidStatus, entity, string(s))
		}
	}
	for _, ty := range m.Types {
		if !brainz.ValidType(ty) {
			return NewValidationError(ErrCodeInvalidType, entity, string(ty))
		}
	}

	table, ok := t.Lookup(op, entity)
	if !ok {
		return nil
	}

	if table.Allowed != nil {
		for _, inc := range m.Includes {
			if !slices.Contains(table.Allowed, string(inc)) {
				return NewValidationError(ErrCodeUnsupportedInclude, entity, string(inc), table.Allowed...)
			}
		}
	}

	for _, c := range table.Companions {
		if m.HasInclude(brainz.Include(c.Include)) && !hasAny(m, c.Requires) {
			return NewValidationError(ErrCodeMissingCompanion, entity, c.Include, c.Requires...)
		}
	}

	if len(m.Statuses) > 0 && len(table.Status) > 0 && !hasAny(m, table.Status) {
		return NewValidationError(ErrCodeStatusRequiresInclude, entity, "status", table.Status...)
	}
	if len(m.Types) > 0 && len(table.Type) > 0 && !hasAny(m, table.Type) {
		return NewValidationError(ErrCodeTypeRequiresInclude, entity, "type", table.Type...)
	}
	return nil
}

func hasAny(m brainz.Modifiers, names []string) bool {
	for _, n := range names {
		if m.HasInclude(brainz.Include(n)) {
			return true
		}
	}
	return false
}
