// Package memory provides in-process repositories guarded by read-write
// mutexes. Stored values are copied on the way in and out so callers never
// share state with the store.
package memory

import (
	"slices"
	"sync"

	"churchadmin/internal/domain/repository"
	"churchadmin/internal/errors"
)

type row[T any] struct {
	seq uint64
	val *T
}

// table is a keyed collection that lists rows in insertion order.
type table[T any] struct {
	mu    sync.RWMutex
	seq   uint64
	rows  map[string]row[T]
	key   func(*T) string
	clone func(*T) *T
}

func newTable[T any](key func(*T) string, clone func(*T) *T) *table[T] {
	return &table[T]{
		rows:  make(map[string]row[T]),
		key:   key,
		clone: clone,
	}
}

func (t *table[T]) list(match func(*T) bool) []*T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	matched := make([]row[T], 0, len(t.rows))
	for _, r := range t.rows {
		if match == nil || match(r.val) {
			matched = append(matched, r)
		}
	}
	slices.SortFunc(matched, func(a, b row[T]) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		default:
			return 0
		}
	})

	out := make([]*T, len(matched))
	for i, r := range matched {
		out[i] = t.clone(r.val)
	}

	return out
}

// first returns the earliest inserted row satisfying match.
func (t *table[T]) first(match func(*T) bool) (*T, error) {
	rows := t.list(match)
	if len(rows) == 0 {
		return nil, repository.ErrNotFound
	}

	return rows[0], nil
}

func (t *table[T]) find(id string) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	r, ok := t.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	return t.clone(r.val), nil
}

func (t *table[T]) create(v *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.key(v)
	if id == "" {
		return errors.New("memory: empty key")
	}
	if _, exists := t.rows[id]; exists {
		return repository.ErrDuplicate
	}
	t.seq++
	t.rows[id] = row[T]{seq: t.seq, val: t.clone(v)}

	return nil
}

// createUnique inserts v unless conflict reports a clash with an existing row.
func (t *table[T]) createUnique(v *T, conflict func(existing, candidate *T) bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, r := range t.rows {
		if conflict(r.val, v) {
			return repository.ErrDuplicate
		}
	}
	id := t.key(v)
	if _, exists := t.rows[id]; exists {
		return repository.ErrDuplicate
	}
	t.seq++
	t.rows[id] = row[T]{seq: t.seq, val: t.clone(v)}

	return nil
}

func (t *table[T]) update(v *T) error {
	return t.updateUnique(v, nil)
}

// updateUnique replaces the row keyed by v unless conflict reports a clash
// with another row.
func (t *table[T]) updateUnique(v *T, conflict func(existing, candidate *T) bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.key(v)
	r, ok := t.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	if conflict != nil {
		for otherID, other := range t.rows {
			if otherID != id && conflict(other.val, v) {
				return repository.ErrDuplicate
			}
		}
	}
	t.rows[id] = row[T]{seq: r.seq, val: t.clone(v)}

	return nil
}

func (t *table[T]) delete(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(t.rows, id)

	return nil
}
