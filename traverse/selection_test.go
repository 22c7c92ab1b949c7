package traverse

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/rdfpath/rdf"
)

func TestSingularAccessors(t *testing.T) {
	st := newFixture()

	tests := []struct {
		name      string
		sel       *Selection
		wantTerm  rdf.Term
		wantValue string
		wantOK    bool
	}{
		{name: "root", sel: New(st)},
		{name: "empty", sel: New(st).Out()},
		{name: "one", sel: New(st, Term(alice)), wantTerm: alice, wantValue: ex + "alice", wantOK: true},
		{name: "literal", sel: New(st, Text("Leonard")), wantTerm: rdf.NewLiteral("Leonard"), wantValue: "Leonard", wantOK: true},
		{name: "blank", sel: New(st, Term(l1)), wantTerm: l1, wantValue: "l1", wantOK: true},
		{name: "many", sel: New(st, Term(alice), Term(bob))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantTerm, tt.sel.Term())
			value, ok := tt.sel.Value()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestPluralAccessors(t *testing.T) {
	st := newFixture()

	root := New(st)
	assert.Equal(t, 1, root.Len())
	assert.NotNil(t, root.Terms())
	assert.Empty(t, root.Terms())
	assert.NotNil(t, root.Values())
	assert.Empty(t, root.Values())

	empty := root.Out()
	assert.Equal(t, 0, empty.Len())
	assert.NotNil(t, empty.Terms())
	assert.NotNil(t, empty.Values())

	sel := New(st, Term(bob), Term(alice), Int(7))
	assert.Equal(t, []rdf.Term{bob, alice, rdf.NewLiteral("7")}, sel.Terms())
	assert.Equal(t, []string{ex + "bob", ex + "alice", "7"}, sel.Values())
}

func TestNewFlattensLists(t *testing.T) {
	st := newFixture()
	sel := New(st, List(Term(alice), List(Term(bob), Text("x"))), Term(carol))
	assert.Equal(t, []rdf.Term{alice, bob, rdf.NewLiteral("x"), carol}, sel.Terms())
	for _, e := range sel.Context().Entries() {
		assert.Same(t, st, e.Store)
		assert.Nil(t, e.Graph)
	}

	scoped := NewInGraph(st, graph, Term(carol))
	assert.Equal(t, graph, scoped.Context().At(0).Graph)

	assert.Equal(t, 0, New(st, List()).Len(), "nodes without terms select nothing")
}

func TestFromValues(t *testing.T) {
	st := newFixture()

	sel, err := FromValues(st, alice, "text", 3, 2.5, []any{bob, int64(-1)})
	require.NoError(t, err)
	assert.Equal(t, []rdf.Term{
		alice,
		rdf.NewLiteral("text"),
		rdf.NewLiteral("3"),
		rdf.NewLiteral("2.5"),
		bob,
		rdf.NewLiteral("-1"),
	}, sel.Terms())

	root, err := FromValues(st)
	require.NoError(t, err)
	assert.Equal(t, 1, root.Len())
	assert.Nil(t, root.Term())

	_, err = FromValues(st, alice, regexp.MustCompile("a+"))
	require.ErrorIs(t, err, rdf.ErrUnsupportedNodeType)
	assert.Equal(t, rdf.ErrCodeUnsupportedNodeType, rdf.Code(err))
}

func TestContextIsImmutable(t *testing.T) {
	st := newFixture()
	sel := New(st, Term(alice), Term(bob))

	entries := sel.Context().Entries()
	entries[0].Term = carol
	assert.Equal(t, alice, sel.Context().At(0).Term)

	src := []Entry{{Store: st, Term: alice}}
	ctx := NewContext(src...)
	src[0].Term = bob
	assert.Equal(t, alice, ctx.At(0).Term)

	derived := sel.Out(knows)
	assert.Equal(t, []rdf.Term{alice, bob}, sel.Terms())
	assert.Equal(t, []rdf.Term{bob, carol, carol}, derived.Terms())

	var seen []rdf.Term
	for _, e := range FromContext(ctx).Context().All() {
		seen = append(seen, e.Term)
	}
	assert.Equal(t, []rdf.Term{alice}, seen)
}

func TestIterationHelpers(t *testing.T) {
	st := newFixture()
	sel := New(st, Term(alice), Term(bob), Term(carol)).InGraph(graph)

	var indexes []int
	var terms []rdf.Term
	got := sel.Each(func(item *Selection, i int) {
		require.Equal(t, 1, item.Len())
		entry := item.Context().At(0)
		assert.Same(t, st, entry.Store)
		assert.Equal(t, graph, entry.Graph)
		indexes = append(indexes, i)
		terms = append(terms, item.Term())
	})
	assert.Same(t, sel, got)
	assert.Equal(t, []int{0, 1, 2}, indexes)
	assert.Equal(t, []rdf.Term{alice, bob, carol}, terms)

	calls := 0
	filtered := sel.Filter(func(item *Selection, i int) bool {
		calls++
		return i != 1
	})
	assert.Equal(t, 3, calls)
	assert.Equal(t, []rdf.Term{alice, carol}, filtered.Terms())
	assert.Equal(t, graph, filtered.Context().At(1).Graph)

	values := Map(sel, func(item *Selection, i int) string {
		v, _ := item.Value()
		return v
	})
	assert.Equal(t, []string{ex + "alice", ex + "bob", ex + "carol"}, values)

	parts := sel.Slice()
	require.Len(t, parts, 3)
	for i, part := range parts {
		assert.Equal(t, sel.Terms()[i], part.Term())
	}

	var firstTwo []rdf.Term
	for i, item := range sel.All() {
		if i == 2 {
			break
		}
		firstTwo = append(firstTwo, item.Term())
	}
	assert.Equal(t, []rdf.Term{alice, bob}, firstTwo)
}

func TestDistinctUnionNode(t *testing.T) {
	st := newFixture()
	all := New(st, Term(alice), Term(bob)).Out(knows)
	assert.Equal(t, []rdf.Term{bob, carol, carol}, all.Terms())
	assert.Equal(t, []rdf.Term{bob, carol}, all.Distinct().Terms())

	union := New(st, Term(alice)).Union(New(st, Term(bob)), New(st, Term(alice)))
	assert.Equal(t, []rdf.Term{alice, bob, alice}, union.Terms())

	moved := New(st, Term(alice)).InGraph(graph).Node(Term(carol), Term(bob))
	assert.Equal(t, []rdf.Term{carol, bob}, moved.Terms())
	assert.Equal(t, graph, moved.Context().At(0).Graph)
	assert.Same(t, st, moved.Context().At(1).Store)
}
