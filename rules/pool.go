package rules

import "sync"

// ID is a handle into a Pool. Two IDs compare equal iff the strings they
// were interned from compare equal, so snake identifiers and labels can be
// compared by value instead of by string content.
//
// The zero ID always refers to the empty string: NewPool pre-interns "" as
// the first entry, so a zero-value ID (e.g. an unset Squad field) reads back
// as "".
type ID int32

// Pool is an append-only string interning table. It is safe for concurrent
// use by multiple games; Intern acquires a write lock only on first sight of a
// given string, and String reads never block other readers.
type Pool struct {
	mu     sync.RWMutex
	lookup map[string]ID
	values []string
}

// NewPool returns an empty pool with the empty string pre-interned as ID 0.
func NewPool() *Pool {
	p := &Pool{lookup: map[string]ID{}}
	p.values = append(p.values, "")
	p.lookup[""] = 0
	return p
}

// Intern returns the handle for s, interning it if this is the first time
// the pool has seen it. Intern is idempotent: interning the same string
// twice, from any number of goroutines, returns the same ID.
func (p *Pool) Intern(s string) ID {
	p.mu.RLock()
	if id, ok := p.lookup[s]; ok {
		p.mu.RUnlock()
		return id
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if id, ok := p.lookup[s]; ok {
		return id
	}
	id := ID(len(p.values))
	p.values = append(p.values, s)
	p.lookup[s] = id
	return id
}

// String returns the string an ID was interned from, or "" for an ID this
// pool never produced.
func (p *Pool) String(id ID) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if int(id) < 0 || int(id) >= len(p.values) {
		return ""
	}
	return p.values[id]
}

// Size returns the number of distinct strings interned so far, including
// the pre-interned empty string.
func (p *Pool) Size() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.values)
}

func poolOrDefault(p *Pool) *Pool {
	if p == nil {
		return NewPool()
	}
	return p
}
