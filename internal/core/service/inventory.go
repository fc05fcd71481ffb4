package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/dinehall/backend/internal/core/domain"
	"github.com/dinehall/backend/internal/core/port"
)

// inventoryLedger mediates menu item stock changes inside a transition scope.
// Stock rows stay locked until the surrounding transaction finishes, so a
// check-then-write here cannot race another order.
type inventoryLedger struct{}

// requirements sums quantities per menu item and returns item ids in
// ascending order. Locking items in a fixed order keeps two concurrent
// confirmations from deadlocking on each other.
func (inventoryLedger) requirements(items []domain.LineItem) (map[uint64]int32, []uint64) {
	need := make(map[uint64]int32, len(items))
	for _, item := range items {
		need[item.ItemID] += item.Quantity
	}
	ids := make([]uint64, 0, len(need))
	for id := range need {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return need, ids
}

// Reserve decrements stock for every line item of the order. The whole set is
// validated against the locked rows before the first write, so a shortage on
// any item leaves no partial decrement behind.
func (l inventoryLedger) Reserve(ctx context.Context, scope port.TransitionScope, items []domain.LineItem) error {
	need, ids := l.requirements(items)

	newStock := make(map[uint64]int32, len(ids))
	for _, id := range ids {
		item, err := scope.MenuItemForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock menu item %d: %w", id, err)
		}
		if item.Stock < need[id] {
			return domain.ErrInsufficientStock
		}
		newStock[id] = item.Stock - need[id]
	}

	for _, id := range ids {
		if err := scope.SetMenuItemStock(ctx, id, newStock[id]); err != nil {
			return fmt.Errorf("update stock for item %d: %w", id, err)
		}
	}
	return nil
}

// Release returns previously reserved stock. Restores unconditionally.
func (l inventoryLedger) Release(ctx context.Context, scope port.TransitionScope, items []domain.LineItem) error {
	need, ids := l.requirements(items)

	for _, id := range ids {
		item, err := scope.MenuItemForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock menu item %d: %w", id, err)
		}
		if err := scope.SetMenuItemStock(ctx, id, item.Stock+need[id]); err != nil {
			return fmt.Errorf("restore stock for item %d: %w", id, err)
		}
	}
	return nil
}
