// Package traverse navigates RDF quads starting from a set of nodes.
//
// A Selection holds an ordered Context of entries. Each entry is a term, the
// store it lives in and an optional graph scope. Every step works on all
// entries at once, so traversals fan out and back in naturally:
//
//	people := traverse.New(st, traverse.Term(alice))
//	names := people.Out(foafKnows).Has(foafGivenName, traverse.Text("Leonard")).Values()
//
// Navigation (Out, In, Has, HasAny, Filter, Distinct, InGraph) never mutates a
// store and always returns a new Selection. Mutation (DeleteIn, DeleteOut,
// AddIn, AddOut, AddList, DeleteList) writes through to the shared store and
// returns the receiver, so the change is visible to every selection holding
// that store.
//
// Values supplied by callers are Nodes: Term, Text, Int, Float or a List of
// those. NodeOf converts dynamically typed values and reports
// rdf.ErrUnsupportedNodeType for anything else.
package traverse
