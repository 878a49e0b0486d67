package service

import (
	"context"
	"sync"
	"time"

	"store-service/internal/cache"
	"store-service/internal/models"
	"store-service/internal/notify"
	"store-service/internal/repository"

	"go.uber.org/zap"
)

type Options struct {
	Events EventBus
	// StrictStock rejects purchases exceeding total availability
	// instead of silently truncating the deducted amount.
	StrictStock bool
	// Now overrides the clock used for order dates.
	Now func() time.Time
}

// Store owns one snapshot cache per entity table plus the storefront
// session and the admin panel state. Every operation runs under one
// mutex: cache mutation, signal cascades and transactions stay
// strictly sequential, matching the single-connection model the
// snapshots assume.
type Store struct {
	mu     sync.Mutex
	log    *zap.Logger
	repo   *repository.Repository
	events EventBus
	now    func() time.Time

	strictStock bool

	countries   *cache.Table[models.Country]
	customers   *cache.Table[models.Customer]
	categories  *cache.Table[models.ProductCategory]
	products    *cache.Table[models.Product]
	warehouses  *cache.Table[models.Warehouse]
	inventories *cache.Table[models.Inventory]
	orders      *cache.Table[models.Order]

	conns notify.Connections

	// storefront session (single user)
	customer   *models.Customer
	selections map[int]int
}

var countryColumns = []cache.Column[models.Country]{
	{Name: "Country ID", Less: func(a, b models.Country) bool { return a.ID < b.ID }},
	{Name: "Country Name", Less: func(a, b models.Country) bool { return a.Name < b.Name }},
}

var customerColumns = []cache.Column[models.Customer]{
	{Name: "Customer ID", Less: func(a, b models.Customer) bool { return a.ID < b.ID }},
	{Name: "First Name", Less: func(a, b models.Customer) bool { return a.FirstName < b.FirstName }},
	{Name: "Last Name", Less: func(a, b models.Customer) bool { return a.LastName < b.LastName }},
	{Name: "Address", Less: func(a, b models.Customer) bool { return a.Address < b.Address }},
	{Name: "Email", Less: func(a, b models.Customer) bool { return a.Email < b.Email }},
	{Name: "Country ID", Less: func(a, b models.Customer) bool { return a.CountryID < b.CountryID }},
}

var categoryColumns = []cache.Column[models.ProductCategory]{
	{Name: "Category ID", Less: func(a, b models.ProductCategory) bool { return a.ID < b.ID }},
	{Name: "Category Name", Less: func(a, b models.ProductCategory) bool { return a.Name < b.Name }},
}

var productColumns = []cache.Column[models.Product]{
	{Name: "Product ID", Less: func(a, b models.Product) bool { return a.ID < b.ID }},
	{Name: "Product Name", Less: func(a, b models.Product) bool { return a.Name < b.Name }},
	{Name: "Description", Less: func(a, b models.Product) bool { return a.Description < b.Description }},
	{Name: "Cost", Less: func(a, b models.Product) bool { return a.Cost < b.Cost }},
	{Name: "Price", Less: func(a, b models.Product) bool { return a.Price < b.Price }},
	{Name: "Category ID", Less: func(a, b models.Product) bool { return a.CategoryID < b.CategoryID }},
}

var warehouseColumns = []cache.Column[models.Warehouse]{
	{Name: "Warehouse ID", Less: func(a, b models.Warehouse) bool { return a.ID < b.ID }},
	{Name: "Warehouse Name", Less: func(a, b models.Warehouse) bool { return a.Name < b.Name }},
	{Name: "Country ID", Less: func(a, b models.Warehouse) bool { return a.CountryID < b.CountryID }},
}

var inventoryColumns = []cache.Column[models.Inventory]{
	{Name: "Product ID", Less: func(a, b models.Inventory) bool { return a.ProductID < b.ProductID }},
	{Name: "Warehouse ID", Less: func(a, b models.Inventory) bool { return a.WarehouseID < b.WarehouseID }},
	{Name: "Quantity", Less: func(a, b models.Inventory) bool { return a.Quantity < b.Quantity }},
}

var orderColumns = []cache.Column[models.Order]{
	{Name: "Order ID", Less: func(a, b models.Order) bool { return a.ID < b.ID }},
	{Name: "Customer ID", Less: func(a, b models.Order) bool { return a.CustomerID < b.CustomerID }},
	{Name: "Status", Less: func(a, b models.Order) bool { return a.Status < b.Status }},
	{Name: "Order Date", Less: func(a, b models.Order) bool { return a.OrderDate.Before(b.OrderDate) }},
	{Name: "Product ID", Less: func(a, b models.Order) bool { return a.ProductID < b.ProductID }},
	{Name: "Quantity", Less: func(a, b models.Order) bool { return a.Quantity < b.Quantity }},
}

func NewStore(repo *repository.Repository, log *zap.Logger, opts Options) *Store {
	s := &Store{
		log:         log,
		repo:        repo,
		events:      opts.Events,
		now:         opts.Now,
		strictStock: opts.StrictStock,
		selections:  map[int]int{},
	}
	if s.now == nil {
		s.now = time.Now
	}

	s.countries = cache.New("countries", countryColumns, repo.Countries.ListAll)
	s.customers = cache.New("customers", customerColumns, repo.Customers.ListAll)
	s.categories = cache.New("product_categories", categoryColumns, repo.Categories.ListAll)
	s.products = cache.New("products", productColumns, repo.Products.ListAll)
	s.warehouses = cache.New("warehouses", warehouseColumns, repo.Warehouses.ListAll)
	s.inventories = cache.New("inventories", inventoryColumns, repo.Inventories.ListAll)
	s.orders = cache.New("orders", orderColumns, repo.Orders.ListAll)

	// Зависимости кэшей, DAG по внешним ключам:
	// country → {warehouse, customer} → {inventory, order},
	// category → product.
	s.warehouses.FollowOn(&s.conns, &s.countries.Changed)
	s.customers.FollowOn(&s.conns, &s.countries.Changed)
	s.products.FollowOn(&s.conns, &s.categories.Changed)
	s.inventories.FollowOn(&s.conns, &s.warehouses.Changed, &s.products.Changed)
	s.orders.FollowOn(&s.conns, &s.customers.Changed, &s.products.Changed)

	// Витрина сбрасывает выбранные количества при любом изменении
	// данных каталога.
	for _, sig := range []*notify.Signal{
		&s.countries.Changed,
		&s.customers.Changed,
		&s.categories.Changed,
		&s.products.Changed,
		&s.warehouses.Changed,
		&s.inventories.Changed,
		&s.orders.Changed,
	} {
		s.conns.Add(sig, s.resetSelections)
	}

	return s
}

// RefreshAll rebuilds every snapshot, parents before dependents.
func (s *Store) RefreshAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshAll(ctx)
}

func (s *Store) refreshAll(ctx context.Context) error {
	if err := s.countries.Refresh(ctx); err != nil {
		return err
	}
	if err := s.customers.Refresh(ctx); err != nil {
		return err
	}
	if err := s.categories.Refresh(ctx); err != nil {
		return err
	}
	if err := s.products.Refresh(ctx); err != nil {
		return err
	}
	if err := s.warehouses.Refresh(ctx); err != nil {
		return err
	}
	if err := s.inventories.Refresh(ctx); err != nil {
		return err
	}
	return s.orders.Refresh(ctx)
}

// Close releases every signal subscription the store registered.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conns.Disconnect()
}

func (s *Store) resetSelections() {
	s.selections = map[int]int{}
}

// ---- list accessors (snapshot order) ----

func (s *Store) Countries() []models.Country {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countries.Rows()
}

func (s *Store) Customers() []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customers.Rows()
}

func (s *Store) Categories() []models.ProductCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categories.Rows()
}

func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products.Rows()
}

func (s *Store) Warehouses() []models.Warehouse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.warehouses.Rows()
}

func (s *Store) Inventories() []models.Inventory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventories.Rows()
}

func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.Rows()
}

// ---- sorting (display concern, stable) ----

func (s *Store) SortCountries(col int, dir cache.Direction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countries.Sort(col, dir)
}

func (s *Store) SortCustomers(col int, dir cache.Direction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customers.Sort(col, dir)
}

func (s *Store) SortCategories(col int, dir cache.Direction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categories.Sort(col, dir)
}

func (s *Store) SortProducts(col int, dir cache.Direction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products.Sort(col, dir)
}

func (s *Store) SortWarehouses(col int, dir cache.Direction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.warehouses.Sort(col, dir)
}

func (s *Store) SortInventories(col int, dir cache.Direction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventories.Sort(col, dir)
}

func (s *Store) SortOrders(col int, dir cache.Direction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.Sort(col, dir)
}

// ---- CRUD screens ----

func (s *Store) CreateCountry(ctx context.Context, c models.Country) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return createRow(ctx, s.countries, s.repo.Countries.Create, &c)
}

func (s *Store) DeleteCountry(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deleteRow(ctx, s.countries, s.repo.Countries.Delete, id)
}

func (s *Store) CreateCustomer(ctx context.Context, c models.Customer) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := createRow(ctx, s.customers, s.repo.Customers.Create, &c)
	return c, err
}

func (s *Store) DeleteCustomer(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deleteRow(ctx, s.customers, s.repo.Customers.Delete, id)
}

func (s *Store) CreateCategory(ctx context.Context, c models.ProductCategory) (models.ProductCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := createRow(ctx, s.categories, s.repo.Categories.Create, &c)
	return c, err
}

func (s *Store) DeleteCategory(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deleteRow(ctx, s.categories, s.repo.Categories.Delete, id)
}

func (s *Store) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := createRow(ctx, s.products, s.repo.Products.Create, &p)
	return p, err
}

func (s *Store) DeleteProduct(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deleteRow(ctx, s.products, s.repo.Products.Delete, id)
}

func (s *Store) CreateWarehouse(ctx context.Context, w models.Warehouse) (models.Warehouse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := createRow(ctx, s.warehouses, s.repo.Warehouses.Create, &w)
	return w, err
}

func (s *Store) DeleteWarehouse(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deleteRow(ctx, s.warehouses, s.repo.Warehouses.Delete, id)
}

func (s *Store) CreateInventory(ctx context.Context, inv models.Inventory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return createRow(ctx, s.inventories, s.repo.Inventories.Create, &inv)
}

// InventoryKey is the composite primary key of one stock row.
type InventoryKey struct {
	ProductID   int
	WarehouseID int
}

func (s *Store) DeleteInventory(ctx context.Context, key InventoryKey) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	remove := func(ctx context.Context, k InventoryKey) (bool, error) {
		return s.repo.Inventories.Delete(ctx, k.ProductID, k.WarehouseID)
	}
	return deleteRow(ctx, s.inventories, remove, key)
}

func (s *Store) CreateOrder(ctx context.Context, o models.Order) (models.Order, error) {
	if !o.Status.Valid() {
		return o, ErrInvalidStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	err := createRow(ctx, s.orders, s.repo.Orders.Create, &o)
	return o, err
}

func (s *Store) DeleteOrder(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deleteRow(ctx, s.orders, s.repo.Orders.Delete, id)
}
