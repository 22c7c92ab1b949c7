package traverse

import (
	"math"
	"strconv"

	"github.com/pkg/errors"

	"github.com/geoknoesis/rdfpath/rdf"
)

// NodeKind tags the variants of Node.
type NodeKind uint8

const (
	// NodeTerm holds an existing RDF term.
	NodeTerm NodeKind = iota
	// NodeText holds a string that becomes a literal.
	NodeText
	// NodeNumber holds a number already rendered in canonical decimal form.
	NodeNumber
	// NodeList holds an ordered list of nodes.
	NodeList
)

// Node is a value that can be coerced into zero or more RDF terms.
// The zero Node holds no term and coerces to nothing.
type Node struct {
	kind  NodeKind
	term  rdf.Term
	text  string
	items []Node
}

// Term wraps an existing term.
func Term(t rdf.Term) Node {
	return Node{kind: NodeTerm, term: t}
}

// Text wraps a string; it coerces to a plain literal.
func Text(s string) Node {
	return Node{kind: NodeText, text: s}
}

// Int wraps an integer; it coerces to a literal holding its decimal form.
func Int(n int64) Node {
	return Node{kind: NodeNumber, text: strconv.FormatInt(n, 10)}
}

// Uint wraps an unsigned integer.
func Uint(n uint64) Node {
	return Node{kind: NodeNumber, text: strconv.FormatUint(n, 10)}
}

// Float wraps a float; integral values render without a fractional part and
// negative zero renders as "0". NaN and the infinities have no decimal form;
// NodeOf rejects them and callers of Float must not pass them.
func Float(f float64) Node {
	if f == 0 {
		f = 0
	}
	return Node{kind: NodeNumber, text: strconv.FormatFloat(f, 'f', -1, 64)}
}

func finiteFloat(f float64) (Node, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Node{}, errors.Wrapf(rdf.ErrUnsupportedNodeType, "non-finite number %v", f)
	}
	return Float(f), nil
}

// List groups nodes; it coerces to the concatenation of their terms.
func List(nodes ...Node) Node {
	return Node{kind: NodeList, items: append([]Node(nil), nodes...)}
}

// Terms wraps several terms in a list node.
func Terms(terms ...rdf.Term) Node {
	nodes := make([]Node, len(terms))
	for i, t := range terms {
		nodes[i] = Term(t)
	}
	return Node{kind: NodeList, items: nodes}
}

// Kind returns the node variant.
func (n Node) Kind() NodeKind { return n.kind }

// Terms coerces the node into terms.
func (n Node) Terms() []rdf.Term {
	return n.appendTerms(nil)
}

func (n Node) appendTerms(dst []rdf.Term) []rdf.Term {
	switch n.kind {
	case NodeTerm:
		if n.term != nil {
			dst = append(dst, n.term)
		}
	case NodeText, NodeNumber:
		dst = append(dst, rdf.NewLiteral(n.text))
	case NodeList:
		for _, item := range n.items {
			dst = item.appendTerms(dst)
		}
	}
	return dst
}

func flatten(nodes []Node) []rdf.Term {
	var terms []rdf.Term
	for _, n := range nodes {
		terms = n.appendTerms(terms)
	}
	return terms
}

// NodeOf converts a dynamic value into a Node. It accepts terms, nodes, strings,
// every integer and finite float type, and slices of those. Anything else fails
// with rdf.ErrUnsupportedNodeType.
func NodeOf(v any) (Node, error) {
	switch v := v.(type) {
	case Node:
		return v, nil
	case rdf.Term:
		return Term(v), nil
	case string:
		return Text(v), nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint:
		return Uint(uint64(v)), nil
	case uint8:
		return Uint(uint64(v)), nil
	case uint16:
		return Uint(uint64(v)), nil
	case uint32:
		return Uint(uint64(v)), nil
	case uint64:
		return Uint(v), nil
	case float32:
		return finiteFloat(float64(v))
	case float64:
		return finiteFloat(v)
	case []rdf.Term:
		return Terms(v...), nil
	case []Node:
		return List(v...), nil
	case []string:
		nodes := make([]Node, len(v))
		for i, s := range v {
			nodes[i] = Text(s)
		}
		return List(nodes...), nil
	case []any:
		return NodesOf(v...)
	case nil:
		return Node{}, errors.Wrap(rdf.ErrUnsupportedNodeType, "nil value")
	default:
		return Node{}, errors.Wrapf(rdf.ErrUnsupportedNodeType, "value of type %T", v)
	}
}

// NodesOf converts several dynamic values into a single list node.
func NodesOf(values ...any) (Node, error) {
	nodes := make([]Node, 0, len(values))
	for i, value := range values {
		n, err := NodeOf(value)
		if err != nil {
			return Node{}, errors.Wrapf(err, "item %d", i)
		}
		nodes = append(nodes, n)
	}
	return List(nodes...), nil
}
