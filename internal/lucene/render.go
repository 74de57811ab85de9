package lucene

import "strings"

// Render converts an expression tree to query text.
//
// Render is a pure function: the same tree always produces the same string.
// All validation happens at construction, so Render never fails. A nil
// expression renders as the empty string.
func Render(e Expr) string {
	var b strings.Builder
	appendExpr(&b, e)
	return b.String()
}

func appendExpr(b *strings.Builder, e Expr) {
	if isNil(e) {
		return
	}
	switch n := e.(type) {
	case Field:
		appendField(b, n)
	case *Field:
		appendField(b, *n)
	case And:
		appendCompound(b, " AND ", n.children)
	case *And:
		appendCompound(b, " AND ", n.children)
	case Or:
		appendCompound(b, " OR ", n.children)
	case *Or:
		appendCompound(b, " OR ", n.children)
	case Require:
		b.WriteByte('+')
		appendExpr(b, n.inner)
	case *Require:
		b.WriteByte('+')
		appendExpr(b, n.inner)
	case Prohibit:
		b.WriteByte('-')
		appendExpr(b, n.inner)
	case *Prohibit:
		b.WriteByte('-')
		appendExpr(b, n.inner)
	}
}

// appendField writes name:term, name:(t1 t2), or -name:* for no terms.
func appendField(b *strings.Builder, f Field) {
	if len(f.terms) == 0 {
		b.WriteByte('-')
		b.WriteString(f.name)
		b.WriteString(":*")
		return
	}
	if f.name != "" {
		b.WriteString(f.name)
		b.WriteByte(':')
	}
	if len(f.terms) == 1 {
		f.terms[0].appendTo(b)
		return
	}
	b.WriteByte('(')
	for i, t := range f.terms {
		if i > 0 {
			b.WriteByte(' ')
		}
		t.appendTo(b)
	}
	b.WriteByte(')')
}

func appendCompound(b *strings.Builder, op string, children []Expr) {
	b.WriteByte('(')
	for i, c := range children {
		if i > 0 {
			b.WriteString(op)
		}
		appendExpr(b, c)
	}
	b.WriteByte(')')
}
