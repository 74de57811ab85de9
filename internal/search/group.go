package search

import (
	"github.com/roach88/brainz/internal/brainz"
	"github.com/roach88/brainz/internal/lucene"
	"github.com/roach88/brainz/internal/rules"
)

// Group collects expressions over one field type. The top level of a
// Builder is a Group; And, Or, Require and Prohibit open nested groups.
//
// The first construction error is kept and every later call is a no-op.
type Group[F ~string] struct {
	entity    brainz.Entity
	check     func(name string) error
	children  []lucene.Expr
	err       error
	late      error
	finalized bool
}

func (g *Group[F]) child() *Group[F] {
	return &Group[F]{entity: g.entity, check: g.check}
}

func (g *Group[F]) fail(err error) {
	if g.err == nil {
		g.err = err
	}
}

// usable reports whether the group accepts further mutation.
func (g *Group[F]) usable() bool {
	if g.finalized {
		if g.late == nil {
			g.late = rules.Invalid(rules.ErrCodeBuilderFinalized, g.entity, "builder already finalized")
		}
		return false
	}
	return g.err == nil
}

// Err returns the first error recorded.
func (g *Group[F]) Err() error { return g.err }

// Len returns the number of expressions collected at this level.
func (g *Group[F]) Len() int { return len(g.children) }

// Field adds a field with the given terms. Zero terms match documents where
// the field is absent.
func (g *Group[F]) Field(f F, terms ...lucene.Term) *Group[F] {
	if !g.usable() {
		return g
	}
	if g.check != nil {
		if err := g.check(string(f)); err != nil {
			g.fail(err)
			return g
		}
	}
	g.children = append(g.children, lucene.NewField(string(f), terms...))
	return g
}

// Default adds terms against the entity's implicit field.
func (g *Group[F]) Default(terms ...lucene.Term) *Group[F] {
	var def F
	return g.Field(def, terms...)
}

// Missing adds a field that must be absent.
func (g *Group[F]) Missing(f F) *Group[F] {
	return g.Field(f)
}

// Term adds a single escaped literal.
func (g *Group[F]) Term(f F, text string, opts ...lucene.TermOption) *Group[F] {
	return g.term(f, text, lucene.Literal, opts)
}

// Phrase adds a single quoted phrase.
func (g *Group[F]) Phrase(f F, text string, opts ...lucene.TermOption) *Group[F] {
	return g.term(f, text, lucene.Phrase, opts)
}

// Prefix adds text followed by a trailing wildcard.
func (g *Group[F]) Prefix(f F, text string, opts ...lucene.TermOption) *Group[F] {
	return g.term(f, text, lucene.PrefixWildcard, opts)
}

// Suffix adds text preceded by a leading wildcard.
func (g *Group[F]) Suffix(f F, text string, opts ...lucene.TermOption) *Group[F] {
	return g.term(f, text, lucene.SuffixWildcard, opts)
}

// Fuzzy adds a literal with fuzzy matching.
func (g *Group[F]) Fuzzy(f F, text string) *Group[F] {
	return g.term(f, text, lucene.Literal, []lucene.TermOption{lucene.WithFuzzy()})
}

func (g *Group[F]) term(f F, text string, kind lucene.TermKind, opts []lucene.TermOption) *Group[F] {
	if !g.usable() {
		return g
	}
	t, err := lucene.NewTerm(text, kind, opts...)
	if err != nil {
		g.fail(invalidExpr(g.entity, err))
		return g
	}
	return g.Field(f, t)
}

// And adds the conjunction of everything fn adds to its group. At least
// two expressions are required.
func (g *Group[F]) And(fn func(*Group[F])) *Group[F] {
	return g.nest(fn, func(children []lucene.Expr) (lucene.Expr, error) {
		return lucene.NewAnd(children...)
	})
}

// Or adds the disjunction of everything fn adds to its group. At least two
// expressions are required.
func (g *Group[F]) Or(fn func(*Group[F])) *Group[F] {
	return g.nest(fn, func(children []lucene.Expr) (lucene.Expr, error) {
		return lucene.NewOr(children...)
	})
}

// Require marks what fn adds as mandatory. Several expressions are
// combined with And first.
func (g *Group[F]) Require(fn func(*Group[F])) *Group[F] {
	return g.nest(fn, func(children []lucene.Expr) (lucene.Expr, error) {
		inner, err := single(children)
		if err != nil {
			return nil, err
		}
		return lucene.NewRequire(inner)
	})
}

// Prohibit excludes documents matching what fn adds. Several expressions
// are combined with And first.
func (g *Group[F]) Prohibit(fn func(*Group[F])) *Group[F] {
	return g.nest(fn, func(children []lucene.Expr) (lucene.Expr, error) {
		inner, err := single(children)
		if err != nil {
			return nil, err
		}
		return lucene.NewProhibit(inner)
	})
}

func (g *Group[F]) nest(fn func(*Group[F]), combine func([]lucene.Expr) (lucene.Expr, error)) *Group[F] {
	if !g.usable() {
		return g
	}
	sub := g.child()
	fn(sub)
	if sub.err != nil {
		g.fail(sub.err)
		return g
	}
	e, err := combine(sub.children)
	if err != nil {
		g.fail(invalidExpr(g.entity, err))
		return g
	}
	g.children = append(g.children, e)
	return g
}

func single(children []lucene.Expr) (lucene.Expr, error) {
	switch len(children) {
	case 0:
		return nil, nil
	case 1:
		return children[0], nil
	default:
		return lucene.NewAnd(children...)
	}
}

func invalidExpr(entity brainz.Entity, cause error) error {
	ve := rules.Invalid(rules.ErrCodeInvalidExpression, entity, "%v", cause)
	ve.Cause = cause
	return ve
}
