package rdf

import (
	"fmt"
	"strings"
)

// TermKind identifies RDF term types.
type TermKind uint8

const (
	// TermIRI represents an IRI term.
	TermIRI TermKind = iota
	// TermBlankNode represents a blank node term.
	TermBlankNode
	// TermLiteral represents a literal term.
	TermLiteral
	// TermTriple represents an RDF-star triple term.
	TermTriple
	// TermDefaultGraph represents the default graph marker.
	TermDefaultGraph
)

// String returns the kind name.
func (k TermKind) String() string {
	switch k {
	case TermIRI:
		return "NamedNode"
	case TermBlankNode:
		return "BlankNode"
	case TermLiteral:
		return "Literal"
	case TermTriple:
		return "Triple"
	case TermDefaultGraph:
		return "DefaultGraph"
	default:
		return fmt.Sprintf("TermKind(%d)", uint8(k))
	}
}

// Term is a value that can appear in RDF statements.
type Term interface {
	Kind() TermKind
	String() string
}

// IRI represents an RDF IRI.
type IRI struct {
	// Value is the IRI string value.
	Value string
}

// Kind returns TermIRI.
func (i IRI) Kind() TermKind { return TermIRI }

// String returns the IRI value.
func (i IRI) String() string { return i.Value }

// BlankNode represents an RDF blank node.
type BlankNode struct {
	// ID is the blank node identifier.
	ID string
}

// Kind returns TermBlankNode.
func (b BlankNode) Kind() TermKind { return TermBlankNode }

// String returns the blank node identifier prefixed with "_:".
func (b BlankNode) String() string { return "_:" + b.ID }

// Literal represents an RDF literal.
type Literal struct {
	// Lexical is the lexical form of the literal.
	Lexical string
	// Datatype is the datatype IRI, if any.
	// An empty datatype is treated as xsd:string (or rdf:langString with Lang set).
	Datatype IRI
	// Lang is the language tag, if any.
	Lang string
}

// Kind returns TermLiteral.
func (l Literal) Kind() TermKind { return TermLiteral }

// String returns a string representation of the literal.
func (l Literal) String() string {
	if l.Lang != "" {
		return fmt.Sprintf("%q@%s", l.Lexical, l.Lang)
	}
	if l.Datatype.Value != "" && l.Datatype.Value != XSDString.Value {
		return fmt.Sprintf("%q^^<%s>", l.Lexical, l.Datatype.Value)
	}
	return fmt.Sprintf("%q", l.Lexical)
}

// TripleTerm is an RDF-star quoted triple term.
type TripleTerm struct {
	// S is the subject of the quoted triple.
	S Term
	// P is the predicate of the quoted triple.
	P IRI
	// O is the object of the quoted triple.
	O Term
}

// Kind returns TermTriple.
func (t TripleTerm) Kind() TermKind { return TermTriple }

// String returns a string representation of the triple term.
func (t TripleTerm) String() string {
	return fmt.Sprintf("<<%s %s %s>>", t.S.String(), t.P.String(), t.O.String())
}

// DefaultGraph marks the default graph. It is only meaningful in graph position.
type DefaultGraph struct{}

// Kind returns TermDefaultGraph.
func (DefaultGraph) Kind() TermKind { return TermDefaultGraph }

// String returns an empty string.
func (DefaultGraph) String() string { return "" }

// Quad is an RDF quad (triple + optional graph name).
type Quad struct {
	// S is the subject.
	S Term
	// P is the predicate.
	P IRI
	// O is the object.
	O Term
	// G is the graph name, or nil for the default graph.
	G Term
}

// NewQuad builds a quad. A DefaultGraph graph name is normalized to nil.
func NewQuad(s Term, p IRI, o Term, g Term) Quad {
	if isDefaultGraph(g) {
		g = nil
	}
	return Quad{S: s, P: p, O: o, G: g}
}

// IsZero reports whether the quad has no subject/predicate/object.
func (q Quad) IsZero() bool {
	return q.S == nil && q.P.Value == "" && q.O == nil && q.G == nil
}

// InDefaultGraph reports whether the quad is in the default graph (no named graph).
func (q Quad) InDefaultGraph() bool {
	return isDefaultGraph(q.G)
}

// Equal reports whether both quads hold the same terms.
func (q Quad) Equal(other Quad) bool {
	return Equal(q.S, other.S) && q.P == other.P && Equal(q.O, other.O) && Equal(q.G, other.G)
}

// String renders the quad in N-Quads syntax without the trailing newline.
func (q Quad) String() string {
	var b strings.Builder
	b.WriteString(renderTerm(q.S))
	b.WriteByte(' ')
	b.WriteString(renderIRI(q.P))
	b.WriteByte(' ')
	b.WriteString(renderTerm(q.O))
	if !q.InDefaultGraph() {
		b.WriteByte(' ')
		b.WriteString(renderTerm(q.G))
	}
	b.WriteString(" .")
	return b.String()
}

func isDefaultGraph(t Term) bool {
	if t == nil {
		return true
	}
	_, ok := t.(DefaultGraph)
	return ok
}

// Equal reports structural equality of two terms.
// A nil term and DefaultGraph are considered equal so graph names compare naturally.
func Equal(a, b Term) bool {
	if isDefaultGraph(a) || isDefaultGraph(b) {
		return isDefaultGraph(a) && isDefaultGraph(b)
	}
	switch x := a.(type) {
	case IRI:
		y, ok := b.(IRI)
		return ok && x == y
	case BlankNode:
		y, ok := b.(BlankNode)
		return ok && x == y
	case Literal:
		y, ok := b.(Literal)
		return ok && x.Lexical == y.Lexical && x.Lang == y.Lang && literalDatatype(x) == literalDatatype(y)
	case TripleTerm:
		y, ok := b.(TripleTerm)
		return ok && Equal(x.S, y.S) && x.P == y.P && Equal(x.O, y.O)
	default:
		return false
	}
}

// Key returns a canonical string for a term, distinct for every non-equal term.
// Nil and DefaultGraph share the same key.
func Key(t Term) string {
	switch v := t.(type) {
	case nil, DefaultGraph:
		return "G"
	case IRI:
		return "I" + v.Value
	case BlankNode:
		return "B" + v.ID
	case Literal:
		return "L" + literalDatatype(v) + "\x00" + v.Lang + "\x00" + v.Lexical
	case TripleTerm:
		return "T" + fmt.Sprintf("%d:%s%d:%s%s", len(Key(v.S)), Key(v.S), len(v.P.Value), v.P.Value, Key(v.O))
	default:
		return "?" + t.String()
	}
}

// Value returns the textual value of a term: the IRI, the blank node id,
// the literal's lexical form, or "" for the default graph.
func Value(t Term) string {
	switch v := t.(type) {
	case IRI:
		return v.Value
	case BlankNode:
		return v.ID
	case Literal:
		return v.Lexical
	case nil, DefaultGraph:
		return ""
	default:
		return t.String()
	}
}

func literalDatatype(l Literal) string {
	if l.Lang != "" {
		return RDFLangString.Value
	}
	if l.Datatype.Value == "" {
		return XSDString.Value
	}
	return l.Datatype.Value
}
