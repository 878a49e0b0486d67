package service

import (
	"context"

	"store-service/internal/cache"
)

// Every entity screen is the same template: insert (or delete), then
// refresh the screen's own snapshot and broadcast so dependents
// refresh theirs. On failure nothing is refreshed or broadcast and
// the database error is returned verbatim; prior state stands.

func createRow[T any](ctx context.Context, t *cache.Table[T], insert func(context.Context, *T) error, row *T) error {
	if err := insert(ctx, row); err != nil {
		return err
	}
	if err := t.Refresh(ctx); err != nil {
		return err
	}
	t.Changed.Emit()
	return nil
}

func deleteRow[T, K any](ctx context.Context, t *cache.Table[T], remove func(context.Context, K) (bool, error), key K) (bool, error) {
	ok, err := remove(ctx, key)
	if err != nil {
		return false, err
	}
	if err := t.Refresh(ctx); err != nil {
		return ok, err
	}
	t.Changed.Emit()
	return ok, nil
}
