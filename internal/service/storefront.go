package service

import (
	"context"

	"store-service/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogEntry is one storefront product card: availability summed
// over all warehouses, fast delivery summed over warehouses in the
// customer's country.
type CatalogEntry struct {
	Product      models.Product `json:"product"`
	CategoryName string         `json:"category_name"`
	Available    int            `json:"available"`
	FastDelivery int            `json:"fast_delivery"`
	Selected     int            `json:"selected"`
}

// Login matches first name, last name and email against the customer
// snapshot — exact, case-sensitive, full-string. No match keeps the
// session unauthenticated.
func (s *Store) Login(firstName, lastName, email string) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customers.Find(func(c models.Customer) bool {
		return c.FirstName == firstName && c.LastName == lastName && c.Email == email
	})
	if !ok {
		return models.Customer{}, ErrInvalidLogin
	}

	s.customer = &c
	s.selections = map[int]int{}
	return c, nil
}

// Logout returns to the unauthenticated state and discards the
// transient quantity selections.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customer = nil
	s.selections = map[int]int{}
}

func (s *Store) CurrentCustomer() (models.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.customer == nil {
		return models.Customer{}, false
	}
	return *s.customer, true
}

// Catalog renders the storefront for the logged-in customer.
func (s *Store) Catalog() ([]CatalogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.customer == nil {
		return nil, ErrNotAuthenticated
	}

	categoryNames := map[int]string{}
	for _, c := range s.categories.Rows() {
		categoryNames[c.ID] = c.Name
	}

	entries := make([]CatalogEntry, 0, s.products.Len())
	for _, p := range s.products.Rows() {
		available, fast := s.productAvailability(p.ID, s.customer.CountryID)
		entries = append(entries, CatalogEntry{
			Product:      p,
			CategoryName: categoryNames[p.CategoryID],
			Available:    available,
			FastDelivery: fast,
			Selected:     s.selections[p.ID],
		})
	}
	return entries, nil
}

func (s *Store) productAvailability(productID int, countryID string) (available, fastDelivery int) {
	local := map[int]bool{}
	for _, w := range s.warehouses.Rows() {
		if w.CountryID == countryID {
			local[w.ID] = true
		}
	}
	for _, inv := range s.inventories.Rows() {
		if inv.ProductID != productID {
			continue
		}
		available += inv.Quantity
		if local[inv.WarehouseID] {
			fastDelivery += inv.Quantity
		}
	}
	return available, fastDelivery
}

// SelectQuantity stores the in-session quantity for a product,
// clamped to [0, available]. Returns the effective value. The whole
// selection map resets whenever catalog data changes.
func (s *Store) SelectQuantity(productID, quantity int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.customer == nil {
		return 0, ErrNotAuthenticated
	}
	if _, ok := s.products.Find(func(p models.Product) bool { return p.ID == productID }); !ok {
		return 0, ErrProductNotFound
	}

	available, _ := s.productAvailability(productID, s.customer.CountryID)
	quantity = min(max(quantity, 0), available)
	s.selections[productID] = quantity
	return quantity, nil
}

// Purchase creates a CREATED order dated now and deducts the stock
// via AllocateStock with the customer's country preference. The
// order insert and the stock deduction are two separate operations,
// each atomic on its own; a failed deduction leaves the order in
// place for the admin panel to act on.
func (s *Store) Purchase(ctx context.Context, productID, quantity int) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.customer == nil {
		return models.Order{}, ErrNotAuthenticated
	}
	if quantity <= 0 {
		return models.Order{}, ErrInvalidQuantity
	}
	if _, ok := s.products.Find(func(p models.Product) bool { return p.ID == productID }); !ok {
		return models.Order{}, ErrProductNotFound
	}

	if s.strictStock {
		available, _ := s.productAvailability(productID, s.customer.CountryID)
		if quantity > available {
			return models.Order{}, ErrInsufficientStock
		}
	}

	order := models.Order{
		CustomerID: s.customer.ID,
		Status:     models.OrderStatusCreated,
		OrderDate:  s.now(),
		ProductID:  productID,
		Quantity:   float64(quantity),
	}
	if err := createRow(ctx, s.orders, s.repo.Orders.Create, &order); err != nil {
		return models.Order{}, err
	}

	if err := s.allocateStock(ctx, productID, s.customer.CountryID, quantity); err != nil {
		return order, err
	}

	if s.events != nil {
		e := OrderCreatedEvent{
			EventID:    uuid.New(),
			OrderID:    order.ID,
			CustomerID: order.CustomerID,
			ProductID:  order.ProductID,
			Quantity:   order.Quantity,
			Status:     order.Status,
			OrderDate:  order.OrderDate,
		}
		if err := s.events.PublishOrderCreated(ctx, e); err != nil {
			s.log.Warn("order event publish failed", zap.Int("order_id", order.ID), zap.Error(err))
		}
	}

	return order, nil
}
