package service

import (
	"context"
	"sort"

	"store-service/internal/repository"

	"go.uber.org/zap"
)

// stockLine is one warehouse's stock of the product being drained.
type stockLine struct {
	WarehouseID int
	Quantity    int
}

// planDecrease decides the new quantity of every warehouse holding
// the product. Preference order for draining: warehouses in the
// customer's country first, then higher current quantity, ties by
// ascending warehouse id. Each visited warehouse gives up at most its
// whole stock (clamped at zero); once the requested amount is covered
// the remaining warehouses keep their quantities.
//
// If total stock is short of the request the plan still drains
// everything to zero — the caller decides whether that is acceptable
// (see Options.StrictStock).
func planDecrease(lines []stockLine, inCountry map[int]bool, requested int) []stockLine {
	planned := make([]stockLine, len(lines))
	copy(planned, lines)

	sort.Slice(planned, func(i, j int) bool {
		l, r := planned[i], planned[j]
		if inCountry[l.WarehouseID] != inCountry[r.WarehouseID] {
			return inCountry[l.WarehouseID]
		}
		if l.Quantity != r.Quantity {
			return l.Quantity > r.Quantity
		}
		return l.WarehouseID < r.WarehouseID
	})

	left := requested
	for i := range planned {
		if left <= 0 {
			break
		}
		available := planned[i].Quantity
		planned[i].Quantity = max(0, available-left)
		left = max(0, left-available)
	}

	return planned
}

// AllocateStock deducts quantity units of the product from warehouse
// stocks, preferring warehouses in countryID. All planned rows are
// written in one transaction; on any failure the whole deduction
// rolls back. On success the inventory snapshot is refreshed and its
// change is broadcast.
func (s *Store) AllocateStock(ctx context.Context, productID int, countryID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allocateStock(ctx, productID, countryID, quantity)
}

func (s *Store) allocateStock(ctx context.Context, productID int, countryID string, quantity int) error {
	inCountry := map[int]bool{}
	for _, w := range s.warehouses.Rows() {
		if w.CountryID == countryID {
			inCountry[w.ID] = true
		}
	}

	var lines []stockLine
	total := 0
	for _, inv := range s.inventories.Rows() {
		if inv.ProductID != productID {
			continue
		}
		lines = append(lines, stockLine{WarehouseID: inv.WarehouseID, Quantity: inv.Quantity})
		total += inv.Quantity
	}

	if s.strictStock && quantity > total {
		return ErrInsufficientStock
	}

	planned := planDecrease(lines, inCountry, quantity)

	err := s.repo.WithTx(func(tx *repository.Repository) error {
		for _, line := range planned {
			if err := tx.Inventories.SetQuantity(ctx, productID, line.WarehouseID, line.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.inventories.Refresh(ctx); err != nil {
		s.log.Warn("inventory refresh after allocation failed", zap.Error(err))
	}
	s.inventories.Changed.Emit()
	return nil
}
