package traverse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/rdfpath/rdf"
	"github.com/geoknoesis/rdfpath/store"
)

func TestOutOrdering(t *testing.T) {
	st := newFixture()

	tests := []struct {
		name  string
		sel   *Selection
		preds []rdf.Term
		want  []rdf.Term
	}{
		{
			name:  "entry then match order",
			sel:   New(st, Term(alice), Term(bob)),
			preds: []rdf.Term{knows},
			want:  []rdf.Term{bob, carol, carol},
		},
		{
			name:  "entry then predicate order",
			sel:   New(st, Term(alice)),
			preds: []rdf.Term{givenName, knows},
			want:  []rdf.Term{rdf.NewLiteral("Leonard"), rdf.NewLiteral("Sheldon"), bob, carol},
		},
		{
			name:  "no predicates",
			sel:   New(st, Term(alice)),
			preds: nil,
			want:  []rdf.Term{},
		},
		{
			name:  "no match",
			sel:   New(st, Term(carol)),
			preds: []rdf.Term{givenName},
			want:  []rdf.Term{},
		},
		{
			name:  "empty context",
			sel:   New(st, Term(alice)).Out(),
			preds: []rdf.Term{knows},
			want:  []rdf.Term{},
		},
		{
			name:  "any graph by default",
			sel:   New(st, Term(carol)),
			preds: []rdf.Term{knows},
			want:  []rdf.Term{alice},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.sel.Out(tt.preds...)
			assert.Equal(t, tt.want, got.Terms())
		})
	}
}

func TestIn(t *testing.T) {
	st := newFixture()

	assert.Equal(t, []rdf.Term{alice, bob}, New(st, Term(carol)).In(knows).Terms())
	assert.Equal(t, []rdf.Term{alice, bob, alice, bob}, New(st, Term(carol), Term(carol)).In(knows).Terms())
	assert.Equal(t, []rdf.Term{bob}, New(st, Text("Penny")).In(givenName).Terms())
	assert.Equal(t, 0, New(st, Term(carol)).In().Len())

	// out then in does not return to the start
	back := New(st, Term(alice)).Out(knows).In(knows)
	assert.Equal(t, []rdf.Term{alice, alice, bob}, back.Terms())
}

func TestOutKeepsStoreAndGraph(t *testing.T) {
	st := newFixture()
	other := store.New()
	other.Add(rdf.NewQuad(alice, knows, rdf.NewIRI(ex+"dave"), nil))

	sel := New(st, Term(alice)).Union(New(other, Term(alice)))
	next := sel.Out(knows)
	require.Equal(t, 3, next.Len())
	assert.Same(t, st, next.Context().At(0).Store)
	assert.Same(t, st, next.Context().At(1).Store)
	assert.Same(t, other, next.Context().At(2).Store)
	assert.Equal(t, rdf.NewIRI(ex+"dave"), next.Context().At(2).Term)
}

func TestGraphScope(t *testing.T) {
	st := newFixture()

	scoped := New(st, Term(carol)).InGraph(graph).Out(knows)
	require.Equal(t, []rdf.Term{alice}, scoped.Terms())
	assert.Equal(t, graph, scoped.Context().At(0).Graph)

	// alice's own edges live in the default graph
	assert.Equal(t, 0, scoped.Out(knows).Len())
	assert.Equal(t, []rdf.Term{bob, carol}, scoped.AnyGraph().Out(knows).Terms())

	assert.Equal(t, 0, New(st, Term(carol)).InGraph(rdf.DefaultGraph{}).Out(knows).Len())
	assert.Equal(t, []rdf.Term{bob, carol}, New(st, Term(alice)).InGraph(rdf.DefaultGraph{}).Out(knows).Terms())
}

func TestHas(t *testing.T) {
	st := newFixture()
	start := New(st, Term(alice))

	kept := start.Has(givenName, Text("Leonard"), Text("Sheldon"))
	assert.Equal(t, []rdf.Term{alice}, kept.Terms())

	assert.Equal(t, 0, start.Has(givenName, Text("Penny")).Len())
	assert.Equal(t, []rdf.Term{alice}, start.Has(givenName, Text("Penny"), Text("Sheldon")).Terms())
	assert.Equal(t, []rdf.Term{alice}, start.Has(givenName).Terms(), "no objects accepts any object")
	assert.Equal(t, 0, start.Has(givenName, List()).Len(), "objects coercing to nothing keep nothing")
}

func TestHasAny(t *testing.T) {
	st := newFixture()
	people := New(st, Term(alice), Term(bob), Term(carol))

	tests := []struct {
		name    string
		preds   []rdf.Term
		objects []Node
		want    []rdf.Term
	}{
		{
			name:    "overlapping objects",
			preds:   []rdf.Term{givenName},
			objects: []Node{Text("Penny"), Text("Leonard")},
			want:    []rdf.Term{alice, bob},
		},
		{
			name:    "disjoint objects",
			preds:   []rdf.Term{givenName},
			objects: []Node{Text("Howard")},
			want:    []rdf.Term{},
		},
		{
			name:    "any predicate of several",
			preds:   []rdf.Term{age, knows},
			objects: []Node{Term(carol), Int(42)},
			want:    []rdf.Term{alice, bob},
		},
		{
			name:    "predicate without object",
			preds:   []rdf.Term{knows},
			objects: []Node{Term(rdf.NewIRI(ex + "nobody"))},
			want:    []rdf.Term{},
		},
		{
			name:    "no predicates",
			preds:   nil,
			objects: []Node{Term(carol)},
			want:    []rdf.Term{},
		},
		{
			name:    "number coercion",
			preds:   []rdf.Term{age},
			objects: []Node{Float(42)},
			want:    []rdf.Term{bob},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, people.HasAny(tt.preds, tt.objects).Terms())
		})
	}
}

func TestHasRespectsGraph(t *testing.T) {
	st := newFixture()
	sel := New(st, Term(carol))

	assert.Equal(t, 1, sel.Has(knows, Term(alice)).Len())
	assert.Equal(t, 1, sel.InGraph(graph).Has(knows, Term(alice)).Len())
	assert.Equal(t, 0, sel.InGraph(rdf.DefaultGraph{}).Has(knows, Term(alice)).Len())
}

func TestRootEntryMatchesAnySubject(t *testing.T) {
	st := newFixture()
	assert.Equal(t, []rdf.Term{bob, carol, carol, alice}, New(st).Out(knows).Terms())
	assert.Equal(t, []rdf.Term{alice}, New(st).Out(givenName).Distinct().In(givenName).Has(givenName, Text("Leonard")).Distinct().Terms())
}
