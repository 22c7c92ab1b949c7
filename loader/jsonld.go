package loader

import (
	"context"
	"io"
	"slices"

	"github.com/pkg/errors"
	ld "github.com/piprate/json-gold/ld"

	"github.com/geoknoesis/rdfpath/rdf"
)

const defaultGraphName = "@default"

// ErrRemoteDocument is returned when a document references a remote context
// and no document loader was configured.
var ErrRemoteDocument = errors.New("loader: remote documents are disabled")

// LoadJSONLD expands a JSON-LD document into RDF and adds the quads to dst.
// Blank nodes are relabelled with fresh identifiers so that separate documents
// never share them.
//
// Remote contexts are refused unless OptDocumentLoader or OptRemoteDocuments
// is given.
func LoadJSONLD(ctx context.Context, dst Destination, r io.Reader, base string, opts ...Option) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	o := buildOptions(opts)
	doc, err := ld.DocumentFromReader(r)
	if err != nil {
		return 0, &rdf.ParseError{Format: "jsonld", Err: err}
	}

	docs := &contextLoader{ctx: ctx, inner: o.documents}
	goldOpts := ld.NewJsonLdOptions(base)
	goldOpts.DocumentLoader = docs
	goldOpts.SafeMode = o.safeMode
	if o.processingMode != "" {
		goldOpts.ProcessingMode = o.processingMode
	}

	proc := ld.NewJsonLdProcessor()
	result, err := proc.ToRDF(doc, goldOpts)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return 0, ctxErr
	}
	if err != nil {
		if docs.err != nil {
			err = docs.err
		}
		return 0, &rdf.ParseError{Format: "jsonld", Err: err}
	}
	dataset, ok := result.(*ld.RDFDataset)
	if !ok {
		return 0, errors.Errorf("jsonld: unexpected ToRDF result %T", result)
	}

	conv := &goldConverter{blanks: make(map[string]rdf.BlankNode)}
	added := 0
	for _, name := range graphNames(dataset) {
		var graph rdf.Term
		if name != defaultGraphName {
			graph = conv.term(name)
		}
		for _, gq := range dataset.Graphs[name] {
			if err := ctx.Err(); err != nil {
				return added, err
			}
			q, err := conv.quad(gq, graph)
			if err != nil {
				return added, &rdf.ParseError{Format: "jsonld", Err: err}
			}
			if dst.Add(q) {
				added++
			}
		}
	}
	return added, nil
}

// graphNames orders the dataset graphs: default graph first, then by name.
func graphNames(dataset *ld.RDFDataset) []string {
	names := make([]string, 0, len(dataset.Graphs))
	for name := range dataset.Graphs {
		if name != defaultGraphName {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	if _, ok := dataset.Graphs[defaultGraphName]; ok {
		names = append([]string{defaultGraphName}, names...)
	}
	return names
}

type goldConverter struct {
	blanks map[string]rdf.BlankNode
}

func (c *goldConverter) quad(gq *ld.Quad, graph rdf.Term) (rdf.Quad, error) {
	if gq == nil {
		return rdf.Quad{}, errors.New("nil quad")
	}
	s, err := c.node(gq.Subject)
	if err != nil {
		return rdf.Quad{}, errors.Wrap(err, "subject")
	}
	pred, err := c.node(gq.Predicate)
	if err != nil {
		return rdf.Quad{}, errors.Wrap(err, "predicate")
	}
	p, ok := pred.(rdf.IRI)
	if !ok {
		return rdf.Quad{}, errors.Errorf("predicate %s is not an IRI", pred)
	}
	o, err := c.node(gq.Object)
	if err != nil {
		return rdf.Quad{}, errors.Wrap(err, "object")
	}
	return rdf.NewQuad(s, p, o, graph), nil
}

// node converts a json-gold node. The processor emits value types; pointers
// are accepted as well.
func (c *goldConverter) node(n ld.Node) (rdf.Term, error) {
	switch v := n.(type) {
	case ld.IRI:
		return rdf.NewIRI(v.Value), nil
	case *ld.IRI:
		return rdf.NewIRI(v.Value), nil
	case ld.BlankNode:
		return c.blank(v.Attribute), nil
	case *ld.BlankNode:
		return c.blank(v.Attribute), nil
	case ld.Literal:
		return literal(v), nil
	case *ld.Literal:
		return literal(*v), nil
	}
	return nil, errors.Errorf("unsupported node %T", n)
}

func literal(l ld.Literal) rdf.Term {
	switch {
	case l.Language != "":
		return rdf.NewLangLiteral(l.Value, l.Language)
	case l.Datatype == "" || l.Datatype == ld.XSDString:
		return rdf.NewLiteral(l.Value)
	}
	return rdf.NewTypedLiteral(l.Value, rdf.NewIRI(l.Datatype))
}

// term converts a graph name, which is either an IRI or a blank node label.
func (c *goldConverter) term(name string) rdf.Term {
	if len(name) > 2 && name[:2] == "_:" {
		return c.blank(name)
	}
	return rdf.NewIRI(name)
}

func (c *goldConverter) blank(label string) rdf.BlankNode {
	if b, ok := c.blanks[label]; ok {
		return b
	}
	b := rdf.NewBlankNode()
	c.blanks[label] = b
	return b
}

// contextLoader guards remote fetches with the load context and remembers the
// first failure, which json-gold would otherwise flatten into a string.
type contextLoader struct {
	ctx   context.Context
	inner ld.DocumentLoader
	err   error
}

func (l *contextLoader) LoadDocument(u string) (*ld.RemoteDocument, error) {
	if err := l.ctx.Err(); err != nil {
		return nil, l.fail(err)
	}
	if l.inner == nil {
		return nil, l.fail(errors.Wrapf(ErrRemoteDocument, "%s", u))
	}
	doc, err := l.inner.LoadDocument(u)
	if err != nil {
		return nil, l.fail(errors.Wrapf(err, "failed to load %s", u))
	}
	return doc, nil
}

func (l *contextLoader) fail(err error) error {
	if l.err == nil {
		l.err = err
	}
	return ld.NewJsonLdError(ld.LoadingDocumentFailed, err)
}
