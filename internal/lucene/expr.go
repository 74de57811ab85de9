package lucene

// Expr is a node in a search expression tree.
//
// This is a sealed interface - only types in this package implement it.
// The marker method prevents external implementations and enables
// exhaustive type switches in renderers.
//
// Expr types:
//   - Field: name plus zero or more terms
//   - And: two or more children, all must match
//   - Or: two or more children, any may match
//   - Require: inner expression must match (+)
//   - Prohibit: inner expression must not match (-)
type Expr interface {
	exprNode() // Marker method - seals interface to this package
	String() string
}

// Field is a named field with its ordered terms.
//
// An empty name denotes the entity's default field and omits the "name:"
// prefix. A Field with no terms renders as "-name:*".
type Field struct {
	name  string
	terms []Term
}

func (Field) exprNode() {}

// NewField builds a Field. Terms are copied; insertion order is preserved.
func NewField(name string, terms ...Term) Field {
	return Field{name: name, terms: append([]Term(nil), terms...)}
}

// Name returns the field name ("" for the default field).
func (f Field) Name() string { return f.name }

// Terms returns a copy of the field's terms.
func (f Field) Terms() []Term { return append([]Term(nil), f.terms...) }

// String renders the field.
func (f Field) String() string { return Render(f) }

// And is a conjunction of two or more expressions.
type And struct {
	children []Expr
}

func (And) exprNode() {}

// NewAnd combines children with AND. Requires at least two non-nil children.
func NewAnd(children ...Expr) (And, error) {
	if err := checkChildren("AND", children); err != nil {
		return And{}, err
	}
	return And{children: append([]Expr(nil), children...)}, nil
}

// Children returns a copy of the child expressions.
func (a And) Children() []Expr { return append([]Expr(nil), a.children...) }

// String renders the conjunction.
func (a And) String() string { return Render(a) }

// Or is a disjunction of two or more expressions.
type Or struct {
	children []Expr
}

func (Or) exprNode() {}

// NewOr combines children with OR. Requires at least two non-nil children.
func NewOr(children ...Expr) (Or, error) {
	if err := checkChildren("OR", children); err != nil {
		return Or{}, err
	}
	return Or{children: append([]Expr(nil), children...)}, nil
}

// Children returns a copy of the child expressions.
func (o Or) Children() []Expr { return append([]Expr(nil), o.children...) }

// String renders the disjunction.
func (o Or) String() string { return Render(o) }

// Require marks its inner expression as mandatory.
type Require struct {
	inner Expr
}

func (Require) exprNode() {}

// NewRequire wraps inner with '+'. Inner must be non-nil and must not
// already be a Require, a Prohibit or a zero-term Field.
func NewRequire(inner Expr) (Require, error) {
	if err := checkModifierTarget("require", inner); err != nil {
		return Require{}, err
	}
	return Require{inner: inner}, nil
}

// Inner returns the wrapped expression.
func (r Require) Inner() Expr { return r.inner }

// String renders the required expression.
func (r Require) String() string { return Render(r) }

// Prohibit excludes results matching its inner expression.
type Prohibit struct {
	inner Expr
}

func (Prohibit) exprNode() {}

// NewProhibit wraps inner with '-'. Inner must be non-nil and must not
// already be a Require, a Prohibit or a zero-term Field.
func NewProhibit(inner Expr) (Prohibit, error) {
	if err := checkModifierTarget("prohibit", inner); err != nil {
		return Prohibit{}, err
	}
	return Prohibit{inner: inner}, nil
}

// Inner returns the wrapped expression.
func (p Prohibit) Inner() Expr { return p.inner }

// String renders the prohibited expression.
func (p Prohibit) String() string { return Render(p) }

func checkChildren(op string, children []Expr) error {
	if len(children) < 2 {
		return newError(ErrCodeTooFewChildren, "%s requires at least 2 children, got %d", op, len(children))
	}
	for i, c := range children {
		if isNil(c) {
			return newError(ErrCodeNilExpression, "%s child %d is nil", op, i)
		}
	}
	return nil
}

func checkModifierTarget(op string, inner Expr) error {
	if isNil(inner) {
		return newError(ErrCodeNilExpression, "cannot %s a nil expression", op)
	}
	switch n := inner.(type) {
	case Require, *Require, Prohibit, *Prohibit:
		return newError(ErrCodeDoubleModifier, "cannot %s %s: expression already carries a modifier", op, inner)
	case Field:
		return checkMissingField(op, n)
	case *Field:
		return checkMissingField(op, *n)
	}
	return nil
}

// A zero-term field renders as -name:* and so already carries a modifier.
func checkMissingField(op string, f Field) error {
	if len(f.terms) == 0 {
		return newError(ErrCodeDoubleModifier, "cannot %s %s: missing-field clause already carries a modifier", op, Render(f))
	}
	return nil
}

// isNil catches both untyped nil and typed nil pointers to node types.
func isNil(e Expr) bool {
	switch n := e.(type) {
	case nil:
		return true
	case *Field:
		return n == nil
	case *And:
		return n == nil
	case *Or:
		return n == nil
	case *Require:
		return n == nil
	case *Prohibit:
		return n == nil
	}
	return false
}
