// Package store provides an in-memory RDF quad store.
//
// Match results are returned in insertion order. Re-adding a quad that is
// already present keeps its original position; deleting and adding it again
// moves it to the end.
package store

import (
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/btree"

	"github.com/geoknoesis/rdfpath/rdf"
)

const (
	posSubject = iota
	posPredicate
	posObject
	posGraph
)

// Source is anything that can list its quads.
type Source interface {
	Quads() []rdf.Quad
}

type record struct {
	seq  uint64
	quad rdf.Quad
	keys [4]string
}

func recordLess(a, b record) bool { return a.seq < b.seq }

func seqLess(a, b uint64) bool { return a < b }

// Memory is an in-memory quad store. It is safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	seq     uint64
	records *btree.BTreeG[record]
	keys    map[string]uint64
	index   [4]map[string]*btree.BTreeG[uint64]

	opts    options
	log     logrus.FieldLogger
	metrics *metrics
}

// New creates an empty store.
func New(opts ...Option) *Memory {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	m := &Memory{
		records: btree.NewBTreeGOptions(recordLess, btree.Options{NoLocks: true}),
		keys:    make(map[string]uint64),
		opts:    o,
		log:     o.logger.WithField("store", o.name),
		metrics: newMetrics(o.registry, o.name),
	}
	for i := range m.index {
		m.index[i] = make(map[string]*btree.BTreeG[uint64])
	}
	return m
}

// Add inserts a quad and reports whether it was not already present.
// Quads missing a subject, predicate or object are rejected.
func (m *Memory) Add(q rdf.Quad) bool {
	q = rdf.NewQuad(q.S, q.P, q.O, q.G)
	if q.S == nil || q.P.Value == "" || q.O == nil {
		return false
	}
	keys := quadKeys(q)
	id := joinKeys(keys)

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.keys[id]; ok {
		return false
	}
	m.seq++
	m.keys[id] = m.seq
	m.records.Set(record{seq: m.seq, quad: q, keys: keys})
	for pos, key := range keys {
		set, ok := m.index[pos][key]
		if !ok {
			set = btree.NewBTreeGOptions(seqLess, btree.Options{NoLocks: true})
			m.index[pos][key] = set
		}
		set.Set(m.seq)
	}
	m.metrics.onAdd(len(m.keys))
	return true
}

// Delete removes a quad and reports whether it was present.
func (m *Memory) Delete(q rdf.Quad) bool {
	q = rdf.NewQuad(q.S, q.P, q.O, q.G)
	if q.S == nil || q.O == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deleteLocked(joinKeys(quadKeys(q)))
}

func (m *Memory) deleteLocked(id string) bool {
	seq, ok := m.keys[id]
	if !ok {
		return false
	}
	rec, _ := m.records.Delete(record{seq: seq})
	delete(m.keys, id)
	for pos, key := range rec.keys {
		set := m.index[pos][key]
		set.Delete(seq)
		if set.Len() == 0 {
			delete(m.index[pos], key)
		}
	}
	m.metrics.onDelete(len(m.keys))
	return true
}

// Match returns the quads matching the pattern in insertion order.
// A nil term is a wildcard. A graph of rdf.DefaultGraph{} matches only the default graph.
// The returned slice is a snapshot owned by the caller.
func (m *Memory) Match(s, p, o, g rdf.Term) []rdf.Quad {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.metrics.onMatch()

	var out []rdf.Quad
	m.scan(s, p, o, g, func(rec record) {
		out = append(out, rec.quad)
	})
	return out
}

// Count returns the number of quads matching the pattern.
func (m *Memory) Count(s, p, o, g rdf.Term) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	m.scan(s, p, o, g, func(record) { n++ })
	return n
}

// DeleteMatches removes every quad matching the pattern and returns how many were removed.
func (m *Memory) DeleteMatches(s, p, o, g rdf.Term) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []string
	m.scan(s, p, o, g, func(rec record) {
		ids = append(ids, joinKeys(rec.keys))
	})
	removed := 0
	for _, id := range ids {
		if m.deleteLocked(id) {
			removed++
		}
	}
	m.log.WithField("removed", removed).Debug("deleted matching quads")
	return removed
}

// scan visits matching records in insertion order. Callers hold the lock.
func (m *Memory) scan(s, p, o, g rdf.Term, visit func(record)) {
	var pattern [4]string
	var bound [4]bool
	for pos, term := range [4]rdf.Term{s, p, o, g} {
		if term == nil {
			continue
		}
		if pos == posPredicate {
			if _, ok := term.(rdf.IRI); !ok {
				return
			}
		}
		pattern[pos] = rdf.Key(term)
		bound[pos] = true
	}

	// Drive the scan from the smallest bound index.
	var driver *btree.BTreeG[uint64]
	for pos := range pattern {
		if !bound[pos] {
			continue
		}
		set, ok := m.index[pos][pattern[pos]]
		if !ok {
			return
		}
		if driver == nil || set.Len() < driver.Len() {
			driver = set
		}
	}

	matches := func(rec record) bool {
		for pos := range pattern {
			if bound[pos] && rec.keys[pos] != pattern[pos] {
				return false
			}
		}
		return true
	}

	if driver == nil {
		m.records.Scan(func(rec record) bool {
			visit(rec)
			return true
		})
		return
	}
	driver.Scan(func(seq uint64) bool {
		rec, ok := m.records.Get(record{seq: seq})
		if ok && matches(rec) {
			visit(rec)
		}
		return true
	})
}

// Has reports whether the quad is present.
func (m *Memory) Has(q rdf.Quad) bool {
	q = rdf.NewQuad(q.S, q.P, q.O, q.G)
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.keys[joinKeys(quadKeys(q))]
	return ok
}

// Size returns the number of quads.
func (m *Memory) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.keys)
}

// Quads returns every quad in insertion order.
func (m *Memory) Quads() []rdf.Quad {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]rdf.Quad, 0, m.records.Len())
	m.records.Scan(func(rec record) bool {
		out = append(out, rec.quad)
		return true
	})
	return out
}

// AddAll adds every quad of src and returns how many were new.
func (m *Memory) AddAll(src Source) int {
	added := 0
	for _, q := range src.Quads() {
		if m.Add(q) {
			added++
		}
	}
	m.log.WithField("added", added).Debug("merged quads")
	return added
}

func quadKeys(q rdf.Quad) [4]string {
	return [4]string{rdf.Key(q.S), rdf.Key(q.P), rdf.Key(q.O), rdf.Key(q.G)}
}

// joinKeys length-prefixes each key so the result is unambiguous.
func joinKeys(keys [4]string) string {
	var b strings.Builder
	for _, key := range keys {
		b.WriteString(strconv.Itoa(len(key)))
		b.WriteByte(':')
		b.WriteString(key)
	}
	return b.String()
}
