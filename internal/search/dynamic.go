package search

import (
	"github.com/roach88/brainz/internal/brainz"
	"github.com/roach88/brainz/internal/rules"
)

// Dynamic is a builder whose field names are checked at runtime against
// brainz.FieldSet. It serves callers holding field names as strings.
type Dynamic struct {
	core[string]
}

// NewDynamic returns a builder for entity, or an error if the entity is not
// searchable.
func NewDynamic(entity brainz.Entity, tables *rules.Tables) (*Dynamic, error) {
	if !brainz.Searchable(entity) {
		return nil, rules.Invalid(rules.ErrCodeUnknownField, entity, "entity %q is not searchable", entity)
	}
	check := func(name string) error {
		if !brainz.HasField(entity, name) {
			return rules.NewValidationError(rules.ErrCodeUnknownField, entity, name)
		}
		return nil
	}
	return &Dynamic{core: newCore[string](entity, tables, check)}, nil
}
