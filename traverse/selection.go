package traverse

import (
	"iter"

	"github.com/geoknoesis/rdfpath/rdf"
)

// Selection is a set of current nodes in one or more stores.
// Navigation methods return a new Selection; mutation methods return the receiver.
type Selection struct {
	ctx Context
}

// New selects the given nodes in store. Without nodes the selection holds a
// single root entry with no term.
func New(store Store, nodes ...Node) *Selection {
	return NewInGraph(store, nil, nodes...)
}

// NewInGraph is like New but scopes every entry to graph.
func NewInGraph(store Store, graph rdf.Term, nodes ...Node) *Selection {
	if len(nodes) == 0 {
		return &Selection{ctx: Context{entries: []Entry{{Store: store, Graph: graph}}}}
	}
	return &Selection{ctx: Context{entries: entriesFor(store, graph, flatten(nodes))}}
}

// FromValues is New for dynamically typed values, see NodeOf.
func FromValues(store Store, values ...any) (*Selection, error) {
	if len(values) == 0 {
		return New(store), nil
	}
	n, err := NodesOf(values...)
	if err != nil {
		return nil, err
	}
	return New(store, n), nil
}

// FromContext wraps an existing context.
func FromContext(ctx Context) *Selection {
	return &Selection{ctx: ctx}
}

func entriesFor(store Store, graph rdf.Term, terms []rdf.Term) []Entry {
	entries := make([]Entry, len(terms))
	for i, t := range terms {
		entries[i] = Entry{Store: store, Term: t, Graph: graph}
	}
	return entries
}

// Context returns the selection's entries.
func (s *Selection) Context() Context { return s.ctx }

// Len returns the number of entries.
func (s *Selection) Len() int { return s.ctx.Len() }

// Term returns the selected term when there is exactly one entry, otherwise nil.
func (s *Selection) Term() rdf.Term {
	if len(s.ctx.entries) != 1 {
		return nil
	}
	return s.ctx.entries[0].Term
}

// Value returns the textual value of Term.
func (s *Selection) Value() (string, bool) {
	t := s.Term()
	if t == nil {
		return "", false
	}
	return rdf.Value(t), true
}

// Terms returns the terms of all entries in order, skipping root entries.
func (s *Selection) Terms() []rdf.Term {
	terms := make([]rdf.Term, 0, len(s.ctx.entries))
	for _, e := range s.ctx.entries {
		if e.Term != nil {
			terms = append(terms, e.Term)
		}
	}
	return terms
}

// Values returns the textual values of Terms.
func (s *Selection) Values() []string {
	values := make([]string, 0, len(s.ctx.entries))
	for _, e := range s.ctx.entries {
		if e.Term != nil {
			values = append(values, rdf.Value(e.Term))
		}
	}
	return values
}

func (s *Selection) at(i int) *Selection {
	return &Selection{ctx: Context{entries: []Entry{s.ctx.entries[i]}}}
}

// Slice returns one single-entry selection per entry.
func (s *Selection) Slice() []*Selection {
	out := make([]*Selection, len(s.ctx.entries))
	for i := range s.ctx.entries {
		out[i] = s.at(i)
	}
	return out
}

// All iterates over single-entry selections.
func (s *Selection) All() iter.Seq2[int, *Selection] {
	return func(yield func(int, *Selection) bool) {
		for i := range s.ctx.entries {
			if !yield(i, s.at(i)) {
				return
			}
		}
	}
}

// Filter keeps the entries for which fn returns true.
func (s *Selection) Filter(fn func(*Selection, int) bool) *Selection {
	var kept []Entry
	for i, e := range s.ctx.entries {
		if fn(s.at(i), i) {
			kept = append(kept, e)
		}
	}
	return &Selection{ctx: Context{entries: kept}}
}

// Each calls fn for every entry and returns the receiver.
func (s *Selection) Each(fn func(*Selection, int)) *Selection {
	for i := range s.ctx.entries {
		fn(s.at(i), i)
	}
	return s
}

// Map calls fn for every entry of s and collects the results.
func Map[T any](s *Selection, fn func(*Selection, int) T) []T {
	out := make([]T, len(s.ctx.entries))
	for i := range s.ctx.entries {
		out[i] = fn(s.at(i), i)
	}
	return out
}
