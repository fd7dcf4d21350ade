// Package storage persists the order collection as a single JSON document and
// provides the linear-scan helpers used to mutate it.
package storage

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"pizzeria/internal/model"
)

var ErrOrderNotFound = errors.New("order not found")

// MutateFunc receives the current collection and returns the one to persist.
// Returning an error aborts the write.
type MutateFunc func(orders []model.Order) ([]model.Order, error)

// Store is the single source of truth for the order collection. Every call
// reads or rewrites the whole document; nothing is cached.
type Store interface {
	LoadAll(ctx context.Context) ([]model.Order, error)
	SaveAll(ctx context.Context, orders []model.Order) error
	// Update performs a locked read-modify-write so concurrent writers cannot
	// lose each other's changes.
	Update(ctx context.Context, fn MutateFunc) error
}

// Error reports a failure to read, parse or write the backing document.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NextID returns one more than the highest id, or 0 for an empty collection.
func NextID(orders []model.Order) int {
	highest := -1
	for _, o := range orders {
		if o.ID > highest {
			highest = o.ID
		}
	}
	return highest + 1
}

func FindByID(orders []model.Order, id int) (model.Order, bool) {
	i := indexOf(orders, id)
	if i < 0 {
		return model.Order{}, false
	}
	return orders[i], true
}

// ReplaceByID overwrites the first order with the given id in place.
func ReplaceByID(orders []model.Order, id int, o model.Order) ([]model.Order, error) {
	i := indexOf(orders, id)
	if i < 0 {
		return orders, ErrOrderNotFound
	}
	orders[i] = o
	return orders, nil
}

// RemoveByID drops the first order with the given id.
func RemoveByID(orders []model.Order, id int) ([]model.Order, error) {
	i := indexOf(orders, id)
	if i < 0 {
		return orders, ErrOrderNotFound
	}
	return slices.Delete(orders, i, i+1), nil
}

func indexOf(orders []model.Order, id int) int {
	return slices.IndexFunc(orders, func(o model.Order) bool { return o.ID == id })
}
