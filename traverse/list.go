package traverse

import (
	"iter"

	"github.com/pkg/errors"

	"github.com/geoknoesis/rdfpath/rdf"
)

// List decodes the RDF collection starting at the selected term.
// The selection must hold exactly one entry with a term.
//
// The returned sequence reads the store each time it is ranged over, so a
// second range reflects mutations made in between. Iteration stops at rdf:nil,
// at a node missing rdf:first or rdf:rest, or when a node repeats.
func (s *Selection) List() (iter.Seq[rdf.Term], error) {
	e, err := s.single("list")
	if err != nil {
		return nil, err
	}
	return func(yield func(rdf.Term) bool) {
		walkList(e, e.Term, func(_, item rdf.Term) bool {
			return yield(item)
		})
	}, nil
}

// IsList reports whether the selection is a single term that is rdf:nil or
// has an rdf:first value.
func (s *Selection) IsList() bool {
	e, err := s.single("isList")
	if err != nil {
		return false
	}
	if rdf.Equal(e.Term, rdf.RDFNil) {
		return true
	}
	return len(e.Store.Match(e.Term, rdf.RDFFirst, nil, e.Graph)) > 0
}

func (s *Selection) single(op string) (Entry, error) {
	if len(s.ctx.entries) != 1 || s.ctx.entries[0].Term == nil || s.ctx.entries[0].Store == nil {
		return Entry{}, errors.Wrapf(rdf.ErrInvalidContextArity, "%s over %d entries", op, len(s.ctx.entries))
	}
	return s.ctx.entries[0], nil
}

// walkList calls visit with each collection node and its item.
func walkList(e Entry, head rdf.Term, visit func(node, item rdf.Term) bool) {
	seen := make(map[string]struct{})
	node := head
	for node != nil && !rdf.Equal(node, rdf.RDFNil) {
		key := rdf.Key(node)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}

		first := e.Store.Match(node, rdf.RDFFirst, nil, e.Graph)
		if len(first) == 0 {
			return
		}
		if !visit(node, first[0].O) {
			return
		}
		rest := e.Store.Match(node, rdf.RDFRest, nil, e.Graph)
		if len(rest) == 0 {
			return
		}
		node = rest[0].O
	}
}

// AddList writes a new collection of items for every entry, linked from the
// entry's term through pred, and returns the receiver. An empty list links to rdf:nil.
func (s *Selection) AddList(pred rdf.IRI, items []Node) *Selection {
	terms := flatten(items)
	for _, e := range s.ctx.entries {
		if e.Store == nil || e.Term == nil {
			continue
		}
		var head rdf.Term = rdf.RDFNil
		if len(terms) > 0 {
			nodes := make([]rdf.Term, len(terms))
			for i := range terms {
				nodes[i] = rdf.NewBlankNode()
			}
			for i, item := range terms {
				var rest rdf.Term = rdf.RDFNil
				if i+1 < len(nodes) {
					rest = nodes[i+1]
				}
				e.Store.Add(rdf.NewQuad(nodes[i], rdf.RDFFirst, item, e.Graph))
				e.Store.Add(rdf.NewQuad(nodes[i], rdf.RDFRest, rest, e.Graph))
			}
			head = nodes[0]
		}
		e.Store.Add(rdf.NewQuad(e.Term, pred, head, e.Graph))
	}
	return s
}

// DeleteList removes every collection linked from an entry's term through
// pred, including the linking quad, and returns the receiver.
func (s *Selection) DeleteList(pred rdf.IRI) *Selection {
	var pending []pendingDelete
	for _, e := range s.ctx.entries {
		if e.Store == nil || e.Term == nil {
			continue
		}
		for _, link := range e.Store.Match(e.Term, pred, nil, e.Graph) {
			pending = append(pending, pendingDelete{store: e.Store, quad: link})
			walkList(e, link.O, func(node, _ rdf.Term) bool {
				for _, q := range e.Store.Match(node, rdf.RDFFirst, nil, e.Graph) {
					pending = append(pending, pendingDelete{store: e.Store, quad: q})
				}
				for _, q := range e.Store.Match(node, rdf.RDFRest, nil, e.Graph) {
					pending = append(pending, pendingDelete{store: e.Store, quad: q})
				}
				return true
			})
		}
	}
	for _, d := range pending {
		d.store.Delete(d.quad)
	}
	return s
}
