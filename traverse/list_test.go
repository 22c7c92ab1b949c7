package traverse

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/rdfpath/rdf"
	"github.com/geoknoesis/rdfpath/store"
)

func TestList(t *testing.T) {
	st := newFixture()
	favs := New(st, Term(alice)).Out(favourite)
	require.True(t, favs.IsList())

	items, err := favs.List()
	require.NoError(t, err)
	want := []rdf.Term{rdf.NewLiteral("a"), rdf.NewLiteral("b")}
	assert.Equal(t, want, slices.Collect(items))
	assert.Equal(t, want, slices.Collect(items), "a sequence can be ranged over again")

	again, err := favs.List()
	require.NoError(t, err)
	assert.Equal(t, want, slices.Collect(again))
}

func TestListReflectsStoreChanges(t *testing.T) {
	st := newFixture()
	items, err := New(st, Term(l1)).List()
	require.NoError(t, err)
	require.Len(t, slices.Collect(items), 2)

	l3 := rdf.NewBlankNodeWithID("l3")
	st.Delete(rdf.NewQuad(l2, rdf.RDFRest, rdf.RDFNil, nil))
	st.Add(rdf.NewQuad(l2, rdf.RDFRest, l3, nil))
	st.Add(rdf.NewQuad(l3, rdf.RDFFirst, rdf.NewLiteral("c"), nil))
	st.Add(rdf.NewQuad(l3, rdf.RDFRest, rdf.RDFNil, nil))

	assert.Equal(t, []string{"a", "b", "c"}, values(items))
}

func TestListEdgeCases(t *testing.T) {
	st := store.New()
	head := rdf.NewBlankNodeWithID("h")
	loop := rdf.NewBlankNodeWithID("loop")
	st.Add(rdf.NewQuad(head, rdf.RDFFirst, rdf.NewLiteral("x"), nil))
	st.Add(rdf.NewQuad(head, rdf.RDFRest, loop, nil))
	st.Add(rdf.NewQuad(loop, rdf.RDFFirst, rdf.NewLiteral("y"), nil))
	st.Add(rdf.NewQuad(loop, rdf.RDFRest, head, nil))

	items, err := New(st, Term(head)).List()
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, values(items), "cycles end the walk")

	empty, err := New(st, Term(rdf.RDFNil)).List()
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(empty))
	assert.True(t, New(st, Term(rdf.RDFNil)).IsList())

	broken := rdf.NewBlankNodeWithID("broken")
	st.Add(rdf.NewQuad(broken, rdf.RDFFirst, rdf.NewLiteral("only"), nil))
	items, err = New(st, Term(broken)).List()
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, values(items), "a missing rest ends the walk")

	assert.False(t, New(st, Term(rdf.NewIRI(ex+"plain"))).IsList())
}

func TestListStopsEarly(t *testing.T) {
	items, err := New(newFixture(), Term(l1)).List()
	require.NoError(t, err)
	var got []rdf.Term
	for item := range items {
		got = append(got, item)
		break
	}
	assert.Equal(t, []rdf.Term{rdf.NewLiteral("a")}, got)
}

func TestListArity(t *testing.T) {
	st := newFixture()
	tests := []struct {
		name string
		sel  *Selection
	}{
		{name: "empty", sel: New(st, Term(alice)).Out()},
		{name: "many", sel: New(st, Term(alice), Term(bob))},
		{name: "root", sel: New(st)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := tt.sel.List()
			require.ErrorIs(t, err, rdf.ErrInvalidContextArity)
			assert.Equal(t, rdf.ErrCodeInvalidContextArity, rdf.Code(err))
			assert.Nil(t, items)
			assert.False(t, tt.sel.IsList())
		})
	}
}

func TestAddListAndDeleteList(t *testing.T) {
	st := newFixture()
	before := st.Size()
	tags := rdf.NewIRI(ex + "tags")

	sel := New(st, Term(alice), Term(bob))
	got := sel.AddList(tags, []Node{Text("x"), Int(2), Term(carol)})
	assert.Same(t, sel, got)
	// per entry: one link plus first/rest for three nodes
	assert.Equal(t, before+2*7, st.Size())

	for _, person := range []rdf.IRI{alice, bob} {
		items, err := New(st, Term(person)).Out(tags).List()
		require.NoError(t, err)
		assert.Equal(t, []rdf.Term{rdf.NewLiteral("x"), rdf.NewLiteral("2"), carol}, slices.Collect(items))
	}

	New(st, Term(carol)).AddList(tags, nil)
	assert.Equal(t, []rdf.Term{rdf.RDFNil}, New(st, Term(carol)).Out(tags).Terms())

	sel.DeleteList(tags)
	New(st, Term(carol)).DeleteList(tags)
	assert.Equal(t, before, st.Size())
	assert.Empty(t, st.Match(nil, tags, nil, nil))

	// the fixture's own list is untouched
	items, err := New(st, Term(alice)).Out(favourite).List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, values(items))
}

func values(items iter.Seq[rdf.Term]) []string {
	var out []string
	for item := range items {
		out = append(out, rdf.Value(item))
	}
	return out
}
