package service

import (
	"context"
	"sort"
	"time"

	"store-service/internal/models"

	"go.uber.org/zap"
)

type OrderCustomer struct {
	ID        int    `json:"customer_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
}

type OrderProduct struct {
	ID    int     `json:"product_id"`
	Name  string  `json:"product_name"`
	Cost  float64 `json:"cost"`
	Price float64 `json:"price"`
}

// OrderEntry is one admin panel card: the order joined with its
// customer and product rows from the snapshots.
type OrderEntry struct {
	OrderID  int                `json:"order_id"`
	Quantity float64            `json:"quantity"`
	Status   models.OrderStatus `json:"status"`
	Date     time.Time          `json:"order_date"`
	Customer OrderCustomer      `json:"customer"`
	Product  OrderProduct       `json:"product"`
}

// OrderEntries joins the order snapshot with customers and products.
// With no statuses given every order is included, otherwise only
// orders whose status is listed.
func (s *Store) OrderEntries(statuses ...models.OrderStatus) []OrderEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := map[models.OrderStatus]bool{}
	for _, st := range statuses {
		wanted[st] = true
	}

	customers := map[int]OrderCustomer{}
	for _, c := range s.customers.Rows() {
		customers[c.ID] = OrderCustomer{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName, Address: c.Address}
	}
	products := map[int]OrderProduct{}
	for _, p := range s.products.Rows() {
		products[p.ID] = OrderProduct{ID: p.ID, Name: p.Name, Cost: p.Cost, Price: p.Price}
	}

	entries := make([]OrderEntry, 0, s.orders.Len())
	for _, o := range s.orders.Rows() {
		if len(wanted) > 0 && !wanted[o.Status] {
			continue
		}
		c, okC := customers[o.CustomerID]
		p, okP := products[o.ProductID]
		if !okC || !okP {
			// FK гарантирует ссылки; рассинхрон снимков не валит панель.
			s.log.Warn("order references missing row",
				zap.Int("order_id", o.ID),
				zap.Bool("customer_found", okC),
				zap.Bool("product_found", okP))
			continue
		}
		entries = append(entries, OrderEntry{
			OrderID:  o.ID,
			Quantity: o.Quantity,
			Status:   o.Status,
			Date:     o.OrderDate,
			Customer: c,
			Product:  p,
		})
	}
	return entries
}

// UpdateOrderStatus is the admin panel's only mutation: it persists
// the new status, refreshes the order snapshot and broadcasts.
func (s *Store) UpdateOrderStatus(ctx context.Context, orderID int, status models.OrderStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.repo.Orders.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOrderNotFound
	}
	if err := s.orders.Refresh(ctx); err != nil {
		return err
	}
	s.orders.Changed.Emit()
	return nil
}

// ProfitPoint is one day of the income/outlay/profit series derived
// from the orders × products join.
type ProfitPoint struct {
	Date   time.Time `json:"date"`
	Income float64   `json:"income"`
	Outlay float64   `json:"outlay"`
	Profit float64   `json:"profit"`
}

// ProfitSeries aggregates orders per day. Cumulative mode carries the
// running totals forward instead of per-period values.
func (s *Store) ProfitSeries(cumulative bool) []ProfitPoint {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := map[int]models.Product{}
	for _, p := range s.products.Rows() {
		products[p.ID] = p
	}

	byDay := map[time.Time]*ProfitPoint{}
	for _, o := range s.orders.Rows() {
		p, ok := products[o.ProductID]
		if !ok {
			continue
		}
		day := o.OrderDate.Truncate(24 * time.Hour)
		pt := byDay[day]
		if pt == nil {
			pt = &ProfitPoint{Date: day}
			byDay[day] = pt
		}
		pt.Income += p.Price * o.Quantity
		pt.Outlay += p.Cost * o.Quantity
	}

	series := make([]ProfitPoint, 0, len(byDay))
	for _, pt := range byDay {
		pt.Profit = pt.Income - pt.Outlay
		series = append(series, *pt)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })

	if cumulative {
		for i := 1; i < len(series); i++ {
			series[i].Income += series[i-1].Income
			series[i].Outlay += series[i-1].Outlay
			series[i].Profit += series[i-1].Profit
		}
	}
	return series
}
