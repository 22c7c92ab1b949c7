package traverse

import (
	"iter"

	"github.com/geoknoesis/rdfpath/rdf"
)

// Store is the quad store a selection reads from and writes to.
// Stores are shared: every entry and selection holding the same store sees
// mutations made through any of them.
type Store interface {
	// Match returns quads matching the pattern. A nil term is a wildcard and
	// rdf.DefaultGraph{} in graph position matches only the default graph.
	Match(s, p, o, g rdf.Term) []rdf.Quad
	Add(q rdf.Quad) bool
	Delete(q rdf.Quad) bool
	Size() int
}

// Entry is one position of a selection.
type Entry struct {
	// Store is the store the entry is anchored to.
	Store Store
	// Term is the selected node, or nil for a root entry.
	Term rdf.Term
	// Graph scopes matching to one graph; nil matches any graph.
	Graph rdf.Term
}

// Context is an immutable ordered list of entries.
type Context struct {
	entries []Entry
}

// NewContext copies the entries into a new context.
func NewContext(entries ...Entry) Context {
	return Context{entries: append([]Entry(nil), entries...)}
}

// Len returns the number of entries.
func (c Context) Len() int { return len(c.entries) }

// At returns the i-th entry.
func (c Context) At(i int) Entry { return c.entries[i] }

// Entries returns a copy of the entries.
func (c Context) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// All iterates over the entries in order.
func (c Context) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range c.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}
