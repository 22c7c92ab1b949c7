// Package plan runs traversals described in YAML files.
//
// A plan names its start terms and a sequence of steps:
//
//	prefixes: {foaf: "http://xmlns.com/foaf/0.1/"}
//	graph: "<http://example.org/g>"
//	start: ["<http://example.org/alice>"]
//	steps:
//	  - out: [foaf:knows]
//	  - has: {predicates: [foaf:givenName], objects: ['"Leonard"', 42]}
//	  - distinct: true
//	  - list: foaf:favourites
//
// Terms are written as N-Triples terms, as CURIEs expanded with prefixes, or as
// bare absolute IRIs. The predicate "*" matches any predicate.
package plan

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/geoknoesis/rdfpath/rdf"
	"github.com/geoknoesis/rdfpath/traverse"
)

// Wildcard matches any predicate in out, in and has steps.
const Wildcard = "*"

// Plan is a parsed traversal plan.
type Plan struct {
	Prefixes map[string]string `yaml:"prefixes,omitempty"`
	Graph    string            `yaml:"graph,omitempty"`
	Start    []string          `yaml:"start,omitempty"`
	Steps    []Step            `yaml:"steps"`

	graph rdf.Term
	start []traverse.Node
	ops   []op
}

// Step holds exactly one operation.
type Step struct {
	Out      []string `yaml:"out,omitempty"`
	In       []string `yaml:"in,omitempty"`
	Has      *Has     `yaml:"has,omitempty"`
	Distinct bool     `yaml:"distinct,omitempty"`
	List     string   `yaml:"list,omitempty"`
}

// Has keeps the entries linked by one of Predicates to one of Objects.
// Without objects any object matches.
type Has struct {
	Predicates []string `yaml:"predicates"`
	Objects    []any    `yaml:"objects,omitempty"`
}

type opKind int

const (
	opOut opKind = iota
	opIn
	opHas
	opDistinct
	opList
)

func (k opKind) String() string {
	return [...]string{"out", "in", "has", "distinct", "list"}[k]
}

type op struct {
	kind    opKind
	preds   []rdf.Term
	objects []traverse.Node
}

// Parse decodes and validates a plan. Unknown keys are rejected.
func Parse(r io.Reader) (*Plan, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var p Plan
	if err := decoder.Decode(&p); err != nil {
		if err == io.EOF {
			return nil, errors.Wrap(rdf.ErrInvalidPlan, "empty plan")
		}
		return nil, errors.Wrapf(rdf.ErrInvalidPlan, "decode: %v", err)
	}
	if err := p.compile(); err != nil {
		return nil, err
	}
	return &p, nil
}

// New validates a plan built in code.
func New(p Plan) (*Plan, error) {
	if err := p.compile(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads and parses a plan file.
func Load(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open plan %s", path)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "plan %s", path)
	}
	return p, nil
}

func (p *Plan) compile() error {
	prefixes := rdf.Prefixes(p.Prefixes)

	if p.Graph != "" {
		g, err := resolveTerm(prefixes, p.Graph)
		if err != nil {
			return errors.Wrap(err, "graph")
		}
		p.graph = g
	}

	p.start = make([]traverse.Node, 0, len(p.Start))
	for i, s := range p.Start {
		t, err := resolveTerm(prefixes, s)
		if err != nil {
			return errors.Wrapf(err, "start %d", i)
		}
		p.start = append(p.start, traverse.Term(t))
	}

	if len(p.Steps) == 0 {
		return errors.Wrap(rdf.ErrInvalidPlan, "no steps")
	}
	p.ops = make([]op, 0, len(p.Steps))
	for i, step := range p.Steps {
		o, err := compileStep(prefixes, step)
		if err != nil {
			return errors.Wrapf(err, "step %d", i+1)
		}
		if o.kind == opList && i != len(p.Steps)-1 {
			return errors.Wrapf(rdf.ErrInvalidPlan, "step %d: list must be the last step", i+1)
		}
		p.ops = append(p.ops, o)
	}
	return nil
}

func compileStep(prefixes rdf.Prefixes, step Step) (op, error) {
	var found []op
	if step.Out != nil {
		found = append(found, op{kind: opOut})
	}
	if step.In != nil {
		found = append(found, op{kind: opIn})
	}
	if step.Has != nil {
		found = append(found, op{kind: opHas})
	}
	if step.Distinct {
		found = append(found, op{kind: opDistinct})
	}
	if step.List != "" {
		found = append(found, op{kind: opList})
	}
	if len(found) != 1 {
		return op{}, errors.Wrapf(rdf.ErrInvalidPlan, "expected exactly one operation, found %d", len(found))
	}

	o := found[0]
	var err error
	switch o.kind {
	case opOut:
		o.preds, err = resolvePredicates(prefixes, step.Out)
	case opIn:
		o.preds, err = resolvePredicates(prefixes, step.In)
	case opHas:
		o.preds, err = resolvePredicates(prefixes, step.Has.Predicates)
		if err == nil {
			o.objects, err = resolveObjects(prefixes, step.Has.Objects)
		}
	case opList:
		o.preds, err = resolvePredicates(prefixes, []string{step.List})
	}
	if err != nil {
		return op{}, errors.Wrap(err, o.kind.String())
	}
	return o, nil
}

// Run executes the plan against st and returns the terms of the final selection,
// or the items of the list when the plan ends with a list step.
func (p *Plan) Run(st traverse.Store, opts ...Option) ([]rdf.Term, error) {
	log := buildOptions(opts).logger
	sel := traverse.NewInGraph(st, p.graph, p.start...)
	for i, o := range p.ops {
		switch o.kind {
		case opOut:
			sel = sel.Out(o.preds...)
		case opIn:
			sel = sel.In(o.preds...)
		case opHas:
			sel = sel.HasAny(o.preds, o.objects)
		case opDistinct:
			sel = sel.Distinct()
		case opList:
			items, err := sel.Out(o.preds...).List()
			if err != nil {
				return nil, errors.Wrapf(err, "step %d", i+1)
			}
			var out []rdf.Term
			for item := range items {
				out = append(out, item)
			}
			return out, nil
		}
		log.WithField("step", i+1).Debugf("%s: %d entries", o.kind, sel.Len())
	}
	return sel.Terms(), nil
}

func resolvePredicates(prefixes rdf.Prefixes, specs []string) ([]rdf.Term, error) {
	if len(specs) == 0 {
		return nil, errors.Wrap(rdf.ErrInvalidPlan, "no predicates")
	}
	preds := make([]rdf.Term, 0, len(specs))
	for _, spec := range specs {
		if strings.TrimSpace(spec) == Wildcard {
			preds = append(preds, nil)
			continue
		}
		t, err := resolveTerm(prefixes, spec)
		if err != nil {
			return nil, err
		}
		iri, ok := t.(rdf.IRI)
		if !ok {
			return nil, errors.Wrapf(rdf.ErrInvalidPlan, "predicate %q is not an IRI", spec)
		}
		preds = append(preds, iri)
	}
	return preds, nil
}

// resolveObjects turns YAML scalars into nodes. Strings that look like terms
// are resolved as terms; other strings are plain text.
func resolveObjects(prefixes rdf.Prefixes, specs []any) ([]traverse.Node, error) {
	nodes := make([]traverse.Node, 0, len(specs))
	for i, spec := range specs {
		if s, ok := spec.(string); ok {
			if t, err := resolveTerm(prefixes, s); err == nil {
				nodes = append(nodes, traverse.Term(t))
				continue
			} else if looksLikeTerm(s) {
				return nil, errors.Wrapf(err, "object %d", i)
			}
		}
		n, err := traverse.NodeOf(spec)
		if err != nil {
			return nil, errors.Wrapf(err, "object %d", i)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func resolveTerm(prefixes rdf.Prefixes, spec string) (rdf.Term, error) {
	spec = strings.TrimSpace(spec)
	if looksLikeTerm(spec) {
		return rdf.ParseTerm(spec)
	}
	if iri, ok := prefixes.Expand(spec); ok {
		return iri, nil
	}
	if err := rdf.ValidateIRI(spec); err == nil {
		return rdf.NewIRI(spec), nil
	}
	return nil, errors.Wrapf(rdf.ErrInvalidPlan, "cannot resolve term %q", spec)
}

func looksLikeTerm(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "<") || strings.HasPrefix(s, "_:") || strings.HasPrefix(s, `"`)
}
