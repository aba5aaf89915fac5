// Package repository provides CRUD access to each entity collection.
//
// Every operation is a read-modify-write of one whole collection. Update and
// Remove on an unknown id change nothing and report false; callers that need
// the mutation to have happened must check the result.
package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"electroledger/internal/logger"
	"electroledger/internal/store"
	"electroledger/pkg/models"
)

// Clock returns the current time.
type Clock func() time.Time

type collection[T store.Identified] struct {
	store *store.Store
	key   store.Key
	log   zerolog.Logger
}

func newCollection[T store.Identified](s *store.Store, key store.Key) collection[T] {
	return collection[T]{
		store: s,
		key:   key,
		log:   logger.WithCollection("repository", string(key)),
	}
}

func (c collection[T]) list(ctx context.Context) ([]T, error) {
	return store.Load[T](ctx, c.store, c.key)
}

func (c collection[T]) save(ctx context.Context, items []T) error {
	return store.Save(ctx, c.store, c.key, items)
}

func (c collection[T]) get(ctx context.Context, id models.ID) (T, bool, error) {
	var zero T
	items, err := c.list(ctx)
	if err != nil {
		return zero, false, err
	}
	if i := indexOf(items, id); i >= 0 {
		return items[i], true, nil
	}
	return zero, false, nil
}

// add assigns the next id, appends the record built for it and saves.
func (c collection[T]) add(ctx context.Context, build func(id models.ID) T) (T, error) {
	var zero T
	items, err := c.list(ctx)
	if err != nil {
		return zero, err
	}
	item := build(store.AllocateID(c.store, c.key, items))
	items = append(items, item)
	if err := c.save(ctx, items); err != nil {
		return zero, err
	}
	c.log.Info().Str("id", item.Identity().String()).Int("records", len(items)).Msg("Record added")
	return item, nil
}

// update replaces the record with the given id by change(record). It
// reports false, without saving, if no record has that id.
func (c collection[T]) update(ctx context.Context, id models.ID, change func(T) T) (bool, error) {
	items, err := c.list(ctx)
	if err != nil {
		return false, err
	}
	i := indexOf(items, id)
	if i < 0 {
		c.log.Debug().Str("id", id.String()).Msg("Update skipped, record not found")
		return false, nil
	}
	items[i] = change(items[i])
	if err := c.save(ctx, items); err != nil {
		return false, err
	}
	c.log.Info().Str("id", id.String()).Msg("Record updated")
	return true, nil
}

// removeWhere drops every record for which drop returns true and saves if any
// were dropped. It returns the number of records removed.
func (c collection[T]) removeWhere(ctx context.Context, drop func(T) bool) (int, error) {
	items, err := c.list(ctx)
	if err != nil {
		return 0, err
	}
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if !drop(item) {
			kept = append(kept, item)
		}
	}
	removed := len(items) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := c.save(ctx, kept); err != nil {
		return 0, err
	}
	c.log.Info().Int("removed", removed).Int("records", len(kept)).Msg("Records removed")
	return removed, nil
}

func (c collection[T]) remove(ctx context.Context, id models.ID) (bool, error) {
	n, err := c.removeWhere(ctx, func(item T) bool { return item.Identity() == id })
	return n > 0, err
}

func indexOf[T store.Identified](items []T, id models.ID) int {
	for i, item := range items {
		if item.Identity() == id {
			return i
		}
	}
	return -1
}
