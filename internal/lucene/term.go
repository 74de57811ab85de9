package lucene

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// TermKind selects how a Term's text is written.
type TermKind int

const (
	// Literal is a single escaped term.
	Literal TermKind = iota
	// Phrase is a quoted sequence of words matched together.
	Phrase
	// PrefixWildcard matches terms starting with the text: text*
	PrefixWildcard
	// SuffixWildcard matches terms ending with the text: *text
	SuffixWildcard
)

// String returns the kind name.
func (k TermKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Phrase:
		return "phrase"
	case PrefixWildcard:
		return "prefix"
	case SuffixWildcard:
		return "suffix"
	default:
		return "TermKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// reserved lists characters escaped anywhere in literal and wildcard text.
// '+' and '-' are only special in leading position and handled separately.
const reserved = `\:()"[]{}^~*?!/|&`

// Term is an atomic search value.
//
// Terms are immutable. Build them with NewTerm or one of the kind shorthands;
// the zero Term is not valid and renders as an empty literal.
type Term struct {
	text     string
	kind     TermKind
	boost    float64
	hasBoost bool
	fuzzy    bool
}

// TermOption customizes a Term during construction.
type TermOption func(*Term)

// WithBoost sets the relevance boost, rendered as ^value. Must be > 0.
func WithBoost(boost float64) TermOption {
	return func(t *Term) {
		t.boost = boost
		t.hasBoost = true
	}
}

// WithFuzzy requests fuzzy matching, rendered as a trailing ~.
func WithFuzzy() TermOption {
	return func(t *Term) {
		t.fuzzy = true
	}
}

// NewTerm validates and builds a Term. Text is NFC normalized before
// validation.
func NewTerm(text string, kind TermKind, opts ...TermOption) (Term, error) {
	t := Term{text: norm.NFC.String(text), kind: kind}
	for _, opt := range opts {
		opt(&t)
	}
	if err := t.validate(); err != nil {
		return Term{}, err
	}
	return t, nil
}

// NewLiteral builds a Literal term.
func NewLiteral(text string, opts ...TermOption) (Term, error) {
	return NewTerm(text, Literal, opts...)
}

// NewPhrase builds a Phrase term.
func NewPhrase(text string, opts ...TermOption) (Term, error) {
	return NewTerm(text, Phrase, opts...)
}

// NewPrefix builds a PrefixWildcard term.
func NewPrefix(text string, opts ...TermOption) (Term, error) {
	return NewTerm(text, PrefixWildcard, opts...)
}

// NewSuffix builds a SuffixWildcard term.
func NewSuffix(text string, opts ...TermOption) (Term, error) {
	return NewTerm(text, SuffixWildcard, opts...)
}

// MustTerm panics if err is non-nil. Intended for constant terms known
// to be valid at compile time.
func MustTerm(t Term, err error) Term {
	if err != nil {
		panic(err)
	}
	return t
}

func (t Term) validate() error {
	switch t.kind {
	case Literal, Phrase, PrefixWildcard, SuffixWildcard:
	default:
		return newError(ErrCodeUnknownKind, "unknown term kind %d", int(t.kind))
	}
	if strings.TrimSpace(t.text) == "" {
		return newError(ErrCodeEmptyText, "%s term text is empty", t.kind)
	}
	if t.hasBoost && (t.boost <= 0 || math.IsNaN(t.boost) || math.IsInf(t.boost, 0)) {
		return newError(ErrCodeInvalidBoost, "boost must be a positive finite number, got %v", t.boost)
	}
	if t.fuzzy && (t.kind == PrefixWildcard || t.kind == SuffixWildcard) {
		return newError(ErrCodeFuzzyWildcard, "fuzzy matching is not allowed on %s terms", t.kind)
	}
	return nil
}

// Text returns the normalized, unescaped text.
func (t Term) Text() string { return t.text }

// Kind returns the term kind.
func (t Term) Kind() TermKind { return t.kind }

// Boost returns the boost and whether one was set.
func (t Term) Boost() (float64, bool) { return t.boost, t.hasBoost }

// Fuzzy reports whether fuzzy matching was requested.
func (t Term) Fuzzy() bool { return t.fuzzy }

// String renders the term as it appears in a query.
func (t Term) String() string {
	var b strings.Builder
	t.appendTo(&b)
	return b.String()
}

func (t Term) appendTo(b *strings.Builder) {
	switch t.kind {
	case Phrase:
		b.WriteByte('"')
		writePhrase(b, t.text)
		b.WriteByte('"')
	case PrefixWildcard:
		writeLiteral(b, t.text)
		b.WriteByte('*')
	case SuffixWildcard:
		b.WriteByte('*')
		writeLiteral(b, t.text)
	default:
		writeLiteral(b, t.text)
	}
	if t.fuzzy {
		b.WriteByte('~')
	}
	if t.hasBoost {
		b.WriteByte('^')
		b.WriteString(strconv.FormatFloat(t.boost, 'f', -1, 64))
	}
}

// writeLiteral escapes reserved characters and whitespace so the text is
// parsed as exactly one term.
func writeLiteral(b *strings.Builder, s string) {
	for i, r := range s {
		if strings.ContainsRune(reserved, r) || unicode.IsSpace(r) || (i == 0 && (r == '+' || r == '-')) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
}

func writePhrase(b *strings.Builder, s string) {
	for _, r := range s {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
}
