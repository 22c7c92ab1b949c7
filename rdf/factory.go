package rdf

import (
	"strings"

	"github.com/google/uuid"
)

// NewIRI returns an IRI term.
func NewIRI(value string) IRI {
	return IRI{Value: value}
}

// NewBlankNode returns a blank node with a freshly minted identifier.
func NewBlankNode() BlankNode {
	return BlankNode{ID: "b" + strings.ReplaceAll(uuid.NewString(), "-", "")}
}

// NewBlankNodeWithID returns a blank node with the given identifier.
// A leading "_:" is stripped.
func NewBlankNodeWithID(id string) BlankNode {
	return BlankNode{ID: strings.TrimPrefix(id, "_:")}
}

// NewLiteral returns a plain xsd:string literal.
func NewLiteral(lexical string) Literal {
	return Literal{Lexical: lexical}
}

// NewTypedLiteral returns a literal with an explicit datatype.
func NewTypedLiteral(lexical string, datatype IRI) Literal {
	if datatype == XSDString {
		datatype = IRI{}
	}
	return Literal{Lexical: lexical, Datatype: datatype}
}

// NewLangLiteral returns a language-tagged literal.
func NewLangLiteral(lexical, lang string) Literal {
	return Literal{Lexical: lexical, Lang: lang}
}
