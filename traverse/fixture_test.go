package traverse

import (
	"github.com/geoknoesis/rdfpath/rdf"
	"github.com/geoknoesis/rdfpath/store"
)

const ex = "http://example.org/"

var (
	alice = rdf.NewIRI(ex + "alice")
	bob   = rdf.NewIRI(ex + "bob")
	carol = rdf.NewIRI(ex + "carol")
	graph = rdf.NewIRI(ex + "graph")

	knows     = rdf.NewIRI(ex + "knows")
	givenName = rdf.NewIRI(ex + "givenName")
	favourite = rdf.NewIRI(ex + "favourite")
	age       = rdf.NewIRI(ex + "age")

	l1 = rdf.NewBlankNodeWithID("l1")
	l2 = rdf.NewBlankNodeWithID("l2")
)

// newFixture builds a small social graph:
//
//	alice knows bob, carol; bob knows carol; carol knows alice (in ex:graph)
//	alice givenName "Leonard", "Sheldon"; bob givenName "Penny"
//	alice favourite ("a" "b"); bob age "42"
func newFixture() *store.Memory {
	st := store.New()
	for _, q := range []rdf.Quad{
		rdf.NewQuad(alice, knows, bob, nil),
		rdf.NewQuad(alice, knows, carol, nil),
		rdf.NewQuad(bob, knows, carol, nil),
		rdf.NewQuad(carol, knows, alice, graph),
		rdf.NewQuad(alice, givenName, rdf.NewLiteral("Leonard"), nil),
		rdf.NewQuad(alice, givenName, rdf.NewLiteral("Sheldon"), nil),
		rdf.NewQuad(bob, givenName, rdf.NewLiteral("Penny"), nil),
		rdf.NewQuad(alice, favourite, l1, nil),
		rdf.NewQuad(l1, rdf.RDFFirst, rdf.NewLiteral("a"), nil),
		rdf.NewQuad(l1, rdf.RDFRest, l2, nil),
		rdf.NewQuad(l2, rdf.RDFFirst, rdf.NewLiteral("b"), nil),
		rdf.NewQuad(l2, rdf.RDFRest, rdf.RDFNil, nil),
		rdf.NewQuad(bob, age, rdf.NewLiteral("42"), nil),
	} {
		st.Add(q)
	}
	return st
}
