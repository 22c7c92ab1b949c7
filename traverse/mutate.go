package traverse

import (
	"github.com/geoknoesis/rdfpath/rdf"
)

// DeleteIn removes every quad pointing at an entry's term through one of preds
// (any predicate when none are given) and returns the receiver.
// A root entry has no term and therefore matches every object.
func (s *Selection) DeleteIn(preds ...rdf.Term) *Selection {
	return s.deleteEdges(preds, false)
}

// DeleteOut removes every quad leaving an entry's term through one of preds
// (any predicate when none are given) and returns the receiver.
func (s *Selection) DeleteOut(preds ...rdf.Term) *Selection {
	return s.deleteEdges(preds, true)
}

type pendingDelete struct {
	store Store
	quad  rdf.Quad
}

func (s *Selection) deleteEdges(preds []rdf.Term, out bool) *Selection {
	if len(preds) == 0 {
		preds = []rdf.Term{nil}
	}
	// Collect first so deleting never disturbs matching.
	var pending []pendingDelete
	for _, e := range s.ctx.entries {
		if e.Store == nil {
			continue
		}
		for _, p := range preds {
			var quads []rdf.Quad
			if out {
				quads = e.Store.Match(e.Term, p, nil, e.Graph)
			} else {
				quads = e.Store.Match(nil, p, e.Term, e.Graph)
			}
			for _, q := range quads {
				pending = append(pending, pendingDelete{store: e.Store, quad: q})
			}
		}
	}
	for _, d := range pending {
		d.store.Delete(d.quad)
	}
	return s
}

// AddOut adds a quad from every entry's term through each predicate to each
// object and returns the receiver. Quads go to the entry's graph, or the
// default graph when the entry is not scoped. Root entries and predicates
// that are not IRIs are skipped.
func (s *Selection) AddOut(preds []rdf.Term, objects []Node) *Selection {
	return s.addEdges(preds, flatten(objects), true)
}

// AddIn adds a quad from each object through each predicate to every entry's term.
func (s *Selection) AddIn(preds []rdf.Term, subjects []Node) *Selection {
	return s.addEdges(preds, flatten(subjects), false)
}

func (s *Selection) addEdges(preds, others []rdf.Term, out bool) *Selection {
	for _, e := range s.ctx.entries {
		if e.Store == nil || e.Term == nil {
			continue
		}
		for _, p := range preds {
			iri, ok := p.(rdf.IRI)
			if !ok {
				continue
			}
			for _, other := range others {
				if out {
					e.Store.Add(rdf.NewQuad(e.Term, iri, other, e.Graph))
				} else {
					e.Store.Add(rdf.NewQuad(other, iri, e.Term, e.Graph))
				}
			}
		}
	}
	return s
}
