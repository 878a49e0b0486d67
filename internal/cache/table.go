// Package cache holds full in-memory snapshots of database tables.
// A snapshot is rebuilt wholesale on every refresh; there is no
// incremental update. Intended scale is tens to low hundreds of rows,
// so lookups are linear scans.
package cache

import (
	"context"
	"fmt"
	"sort"

	"store-service/internal/notify"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Column binds a display column to its comparator. The column order
// here defines the column indices Sort accepts.
type Column[T any] struct {
	Name string
	Less func(a, b T) bool
}

// Table mirrors one database table as an ordered row slice.
type Table[T any] struct {
	name    string
	columns []Column[T]
	load    func(ctx context.Context) ([]T, error)
	rows    []T

	// Changed fires after a successful write against the underlying
	// table (not after a plain refresh); dependents refresh on it.
	Changed notify.Signal
}

func New[T any](name string, columns []Column[T], load func(ctx context.Context) ([]T, error)) *Table[T] {
	return &Table[T]{
		name:    name,
		columns: columns,
		load:    load,
	}
}

func (t *Table[T]) Name() string { return t.name }

// Refresh replaces the whole snapshot. On load failure the previous
// snapshot stays untouched and the error is returned; no retry.
func (t *Table[T]) Refresh(ctx context.Context) error {
	rows, err := t.load(ctx)
	if err != nil {
		return fmt.Errorf("refresh %s: %w", t.name, err)
	}
	t.rows = rows
	return nil
}

// Rows returns a copy of the current snapshot. A later Sort re-orders
// the backing array in place, so the live slice never leaves the cache.
func (t *Table[T]) Rows() []T { return append([]T(nil), t.rows...) }

func (t *Table[T]) Len() int { return len(t.rows) }

// Select returns the rows matching pred, in snapshot order.
func (t *Table[T]) Select(pred func(T) bool) []T {
	var out []T
	for _, r := range t.rows {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// Find returns the first row matching pred.
func (t *Table[T]) Find(pred func(T) bool) (T, bool) {
	for _, r := range t.rows {
		if pred(r) {
			return r, true
		}
	}
	var zero T
	return zero, false
}

func (t *Table[T]) Columns() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Sort reorders the snapshot in place by the given column. The sort
// is stable, so ties keep their input order. Display concern only;
// persisted order is never affected.
func (t *Table[T]) Sort(columnIndex int, dir Direction) error {
	if columnIndex < 0 || columnIndex >= len(t.columns) {
		return fmt.Errorf("sort %s: column index %d out of range", t.name, columnIndex)
	}
	less := t.columns[columnIndex].Less
	sort.SliceStable(t.rows, func(i, j int) bool {
		if dir == Descending {
			return less(t.rows[j], t.rows[i])
		}
		return less(t.rows[i], t.rows[j])
	})
	return nil
}

// FollowOn refreshes this table and re-emits its own Changed signal
// whenever any parent signal fires, producing the transitive refresh
// chains dependents rely on (country → warehouse → inventory).
// Subscriptions land in conns for scoped teardown.
func (t *Table[T]) FollowOn(conns *notify.Connections, parents ...*notify.Signal) {
	for _, p := range parents {
		conns.Add(p, func() {
			// Errors keep the old snapshot; the next explicit refresh
			// or broadcast retries naturally.
			_ = t.Refresh(context.Background())
			t.Changed.Emit()
		})
	}
}
