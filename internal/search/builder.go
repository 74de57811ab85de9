// Package search builds full-text search requests for one entity at a time.
//
// A Builder is parameterized by the entity's field type from package
// brainz, so only that entity's fields can be named. Expressions added at
// the top level are joined with an implicit AND when the builder is
// finalized:
//
//	b := search.NewReleaseSearch(tables)
//	b.Artist("David Bowie").Release("The Man Who Sold the World")
//	m, err := b.Finalize(querymap.Limit(20))
//	// query = artist:"David Bowie" AND release:"The Man Who Sold the World"
//
// Explicit grouping comes from And, Or, Require and Prohibit, each of which
// renders as one node in the position it was called.
//
// A builder moves from Empty to Accumulating to Finalized. Only a
// successful Finalize moves it to Finalized; after a rejected Finalize the
// builder keeps accumulating and may be corrected and finalized again.
// Once finalized, Finalize returns the same result and a mutation is
// rejected and reported by the next Finalize.
package search

import (
	"strings"

	"github.com/roach88/brainz/internal/brainz"
	"github.com/roach88/brainz/internal/lucene"
	"github.com/roach88/brainz/internal/querymap"
	"github.com/roach88/brainz/internal/rules"
)

// State is the builder lifecycle state.
type State int

const (
	StateEmpty State = iota
	StateAccumulating
	StateFinalized
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateAccumulating:
		return "accumulating"
	case StateFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// core is shared by Builder and Dynamic.
type core[F ~string] struct {
	Group[F]
	tables *rules.Tables
	mods   brainz.Modifiers

	result querymap.Map
}

func newCore[F ~string](entity brainz.Entity, tables *rules.Tables, check func(string) error) core[F] {
	return core[F]{
		Group:  Group[F]{entity: entity, check: check},
		tables: tables,
	}
}

// Entity returns the entity being searched.
func (c *core[F]) Entity() brainz.Entity { return c.entity }

// State reports the lifecycle state.
func (c *core[F]) State() State {
	switch {
	case c.finalized:
		return StateFinalized
	case len(c.children) == 0 && c.mods.Empty():
		return StateEmpty
	default:
		return StateAccumulating
	}
}

// Include adds include modifiers.
func (c *core[F]) Include(incs ...brainz.Include) {
	if c.usable() {
		c.mods.AddIncludes(incs...)
	}
}

// Status adds release status filters.
func (c *core[F]) Status(statuses ...brainz.ReleaseStatus) {
	if c.usable() {
		c.mods.AddStatuses(statuses...)
	}
}

// Type adds release type filters.
func (c *core[F]) Type(types ...brainz.ReleaseType) {
	if c.usable() {
		c.mods.AddTypes(types...)
	}
}

// Query renders the accumulated expressions without finalizing.
func (c *core[F]) Query() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	if len(c.children) == 0 {
		return "", rules.Invalid(rules.ErrCodeInvalidExpression, c.entity, "no search terms")
	}
	parts := make([]string, len(c.children))
	for i, e := range c.children {
		parts[i] = lucene.Render(e)
	}
	return strings.Join(parts, " AND "), nil
}

// Finalize validates the request and returns its parameters. The paging
// options of the first successful call are kept by later calls.
func (c *core[F]) Finalize(opts ...querymap.Option) (querymap.Map, error) {
	if c.finalized {
		if c.late != nil {
			return querymap.Map{}, c.late
		}
		return c.result, nil
	}
	m, err := c.finalize(opts)
	if err != nil {
		return querymap.Map{}, err
	}
	c.result = m
	c.finalized = true
	return m, nil
}

func (c *core[F]) finalize(opts []querymap.Option) (querymap.Map, error) {
	query, err := c.Query()
	if err != nil {
		return querymap.Map{}, err
	}
	if err := c.tables.Validate(rules.OpSearch, c.entity, c.mods); err != nil {
		return querymap.Map{}, err
	}
	return querymap.NewBuilder().
		Set(querymap.KeyQuery, query).
		Modifiers(c.mods).
		Build(opts...)
}

// Builder is the typed search builder for the entity owning F.
type Builder[F brainz.SearchField] struct {
	core[F]
}

// New returns a builder for the entity owning F.
func New[F brainz.SearchField](tables *rules.Tables) *Builder[F] {
	var f F
	return &Builder[F]{core: newCore[F](f.Entity(), tables, nil)}
}
