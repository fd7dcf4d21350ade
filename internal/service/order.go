package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"pizzeria/internal/model"
	"pizzeria/internal/storage"
)

var ErrOrderNotFound = storage.ErrOrderNotFound

// Layouts tried, in order, when sorting by orderDate.
var dateLayouts = []string{
	"2006/01/02",
	"2006-01-02",
	"01/02/2006",
	time.RFC3339,
}

type OrderService struct {
	store storage.Store
}

func NewOrderService(store storage.Store) *OrderService {
	return &OrderService{store: store}
}

// List returns every order sorted ascending by order date.
func (s *OrderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	SortByDate(orders)
	return orders, nil
}

// Get looks up an order by its path id. A missing order is not an error:
// the returned pointer is nil.
func (s *OrderService) Get(ctx context.Context, rawID string) (*model.Order, error) {
	orders, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	id, ok := ParseID(rawID)
	if !ok {
		return nil, nil
	}
	o, found := storage.FindByID(orders, id)
	if !found {
		return nil, nil
	}
	return &o, nil
}

func (s *OrderService) Create(ctx context.Context, form OrderForm) (model.Order, error) {
	var created model.Order
	err := s.store.Update(ctx, func(orders []model.Order) ([]model.Order, error) {
		created = NormalizeOrder(storage.NextID(orders), form)
		return append(orders, created), nil
	})
	if err != nil {
		return model.Order{}, fmt.Errorf("create order: %w", err)
	}
	return created, nil
}

// Update fully replaces the order at rawID. The id always comes from the
// path, never from the form.
func (s *OrderService) Update(ctx context.Context, rawID string, form OrderForm) (model.Order, error) {
	id, ok := ParseID(rawID)
	if !ok {
		return model.Order{}, ErrOrderNotFound
	}

	updated := NormalizeOrder(id, form)
	err := s.store.Update(ctx, func(orders []model.Order) ([]model.Order, error) {
		return storage.ReplaceByID(orders, id, updated)
	})
	if err != nil {
		return model.Order{}, fmt.Errorf("update order %d: %w", id, err)
	}
	return updated, nil
}

func (s *OrderService) Delete(ctx context.Context, rawID string) error {
	id, ok := ParseID(rawID)
	if !ok {
		return ErrOrderNotFound
	}

	err := s.store.Update(ctx, func(orders []model.Order) ([]model.Order, error) {
		return storage.RemoveByID(orders, id)
	})
	if err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}
	return nil
}

// SortByDate orders ascending by parsed orderDate. Dates that match no known
// layout go last; ties keep their stored order.
func SortByDate(orders []model.Order) {
	keys := make([]time.Time, len(orders))
	valid := make([]bool, len(orders))
	for i, o := range orders {
		keys[i], valid[i] = parseOrderDate(o.OrderDate)
	}

	idx := make([]int, len(orders))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ia, ib := idx[a], idx[b]
		if valid[ia] != valid[ib] {
			return valid[ia]
		}
		return valid[ia] && keys[ia].Before(keys[ib])
	})

	sorted := make([]model.Order, len(orders))
	for i, j := range idx {
		sorted[i] = orders[j]
	}
	copy(orders, sorted)
}

func parseOrderDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
