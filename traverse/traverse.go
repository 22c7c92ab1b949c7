package traverse

import (
	"github.com/geoknoesis/rdfpath/rdf"
)

// Out follows the predicates from subject to object. Results are ordered by
// entry, then predicate, then store match order; duplicates are kept.
// A nil predicate matches any predicate. Without predicates the result is empty.
func (s *Selection) Out(preds ...rdf.Term) *Selection {
	return s.walk(preds, true)
}

// In follows the predicates from object back to subject.
func (s *Selection) In(preds ...rdf.Term) *Selection {
	return s.walk(preds, false)
}

func (s *Selection) walk(preds []rdf.Term, forward bool) *Selection {
	var out []Entry
	for _, e := range s.ctx.entries {
		if e.Store == nil {
			continue
		}
		for _, p := range preds {
			var quads []rdf.Quad
			if forward {
				quads = e.Store.Match(e.Term, p, nil, e.Graph)
			} else {
				quads = e.Store.Match(nil, p, e.Term, e.Graph)
			}
			for _, q := range quads {
				next := q.O
				if !forward {
					next = q.S
				}
				out = append(out, Entry{Store: e.Store, Term: next, Graph: e.Graph})
			}
		}
	}
	return &Selection{ctx: Context{entries: out}}
}

// Has keeps the entries having pred pointing at any of objects.
func (s *Selection) Has(pred rdf.Term, objects ...Node) *Selection {
	return s.HasAny([]rdf.Term{pred}, objects)
}

// HasAny keeps the entries for which some predicate in preds links to some
// object in objects. An empty objects list accepts any object; an empty
// predicate list keeps nothing. Entries keep their order.
func (s *Selection) HasAny(preds []rdf.Term, objects []Node) *Selection {
	objTerms := []rdf.Term{nil}
	if len(objects) > 0 {
		objTerms = flatten(objects)
	}
	var kept []Entry
	for _, e := range s.ctx.entries {
		if e.Store != nil && hasAny(e, preds, objTerms) {
			kept = append(kept, e)
		}
	}
	return &Selection{ctx: Context{entries: kept}}
}

func hasAny(e Entry, preds, objects []rdf.Term) bool {
	for _, p := range preds {
		for _, o := range objects {
			if len(e.Store.Match(e.Term, p, o, e.Graph)) > 0 {
				return true
			}
		}
	}
	return false
}

// InGraph scopes every entry to graph. rdf.DefaultGraph{} selects the default graph.
func (s *Selection) InGraph(graph rdf.Term) *Selection {
	out := s.ctx.Entries()
	for i := range out {
		out[i].Graph = graph
	}
	return &Selection{ctx: Context{entries: out}}
}

// AnyGraph removes the graph scope of every entry.
func (s *Selection) AnyGraph() *Selection {
	return s.InGraph(nil)
}

// Distinct keeps the first entry for each term.
func (s *Selection) Distinct() *Selection {
	seen := make(map[string]struct{}, len(s.ctx.entries))
	var out []Entry
	for _, e := range s.ctx.entries {
		key := "root"
		if e.Term != nil {
			key = rdf.Key(e.Term)
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	return &Selection{ctx: Context{entries: out}}
}

// Node selects new terms in the store and graph of the first entry.
func (s *Selection) Node(nodes ...Node) *Selection {
	var store Store
	var graph rdf.Term
	if len(s.ctx.entries) > 0 {
		store, graph = s.ctx.entries[0].Store, s.ctx.entries[0].Graph
	}
	return &Selection{ctx: Context{entries: entriesFor(store, graph, flatten(nodes))}}
}

// Union concatenates the entries of s and others.
func (s *Selection) Union(others ...*Selection) *Selection {
	out := s.ctx.Entries()
	for _, other := range others {
		out = append(out, other.ctx.entries...)
	}
	return &Selection{ctx: Context{entries: out}}
}
