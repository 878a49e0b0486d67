package service_test

import (
	"context"
	"testing"
	"time"

	"store-service/internal/models"
	"store-service/internal/repository"
	"store-service/internal/service"

	"go.uber.org/zap"
)

// Моки репозиториев с функциональными полями: незаданная функция
// означает пустой результат без ошибки.

type MockCountryRepo struct {
	ListAllFunc func(ctx context.Context) ([]models.Country, error)
	CreateFunc  func(ctx context.Context, c *models.Country) error
	DeleteFunc  func(ctx context.Context, id string) (bool, error)
}

func (m *MockCountryRepo) ListAll(ctx context.Context) ([]models.Country, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockCountryRepo) Create(ctx context.Context, c *models.Country) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *MockCountryRepo) Delete(ctx context.Context, id string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

type MockCustomerRepo struct {
	ListAllFunc func(ctx context.Context) ([]models.Customer, error)
	CreateFunc  func(ctx context.Context, c *models.Customer) error
	DeleteFunc  func(ctx context.Context, id int) (bool, error)
}

func (m *MockCustomerRepo) ListAll(ctx context.Context) ([]models.Customer, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *models.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *MockCustomerRepo) Delete(ctx context.Context, id int) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

type MockCategoryRepo struct {
	ListAllFunc func(ctx context.Context) ([]models.ProductCategory, error)
	CreateFunc  func(ctx context.Context, c *models.ProductCategory) error
	DeleteFunc  func(ctx context.Context, id int) (bool, error)
}

func (m *MockCategoryRepo) ListAll(ctx context.Context) ([]models.ProductCategory, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockCategoryRepo) Create(ctx context.Context, c *models.ProductCategory) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *MockCategoryRepo) Delete(ctx context.Context, id int) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

type MockProductRepo struct {
	ListAllFunc func(ctx context.Context) ([]models.Product, error)
	CreateFunc  func(ctx context.Context, p *models.Product) error
	DeleteFunc  func(ctx context.Context, id int) (bool, error)
}

func (m *MockProductRepo) ListAll(ctx context.Context) ([]models.Product, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockProductRepo) Create(ctx context.Context, p *models.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *MockProductRepo) Delete(ctx context.Context, id int) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

type MockWarehouseRepo struct {
	ListAllFunc func(ctx context.Context) ([]models.Warehouse, error)
	CreateFunc  func(ctx context.Context, w *models.Warehouse) error
	DeleteFunc  func(ctx context.Context, id int) (bool, error)
}

func (m *MockWarehouseRepo) ListAll(ctx context.Context) ([]models.Warehouse, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockWarehouseRepo) Create(ctx context.Context, w *models.Warehouse) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, w)
	}
	return nil
}

func (m *MockWarehouseRepo) Delete(ctx context.Context, id int) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

type MockInventoryRepo struct {
	ListAllFunc     func(ctx context.Context) ([]models.Inventory, error)
	CreateFunc      func(ctx context.Context, inv *models.Inventory) error
	DeleteFunc      func(ctx context.Context, productID, warehouseID int) (bool, error)
	SetQuantityFunc func(ctx context.Context, productID, warehouseID, quantity int) error
}

func (m *MockInventoryRepo) ListAll(ctx context.Context) ([]models.Inventory, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockInventoryRepo) Create(ctx context.Context, inv *models.Inventory) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, inv)
	}
	return nil
}

func (m *MockInventoryRepo) Delete(ctx context.Context, productID, warehouseID int) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, productID, warehouseID)
	}
	return false, nil
}

func (m *MockInventoryRepo) SetQuantity(ctx context.Context, productID, warehouseID, quantity int) error {
	if m.SetQuantityFunc != nil {
		return m.SetQuantityFunc(ctx, productID, warehouseID, quantity)
	}
	return nil
}

type MockOrderRepo struct {
	ListAllFunc      func(ctx context.Context) ([]models.Order, error)
	CreateFunc       func(ctx context.Context, o *models.Order) error
	DeleteFunc       func(ctx context.Context, id int) (bool, error)
	UpdateStatusFunc func(ctx context.Context, id int, status models.OrderStatus) (bool, error)
}

func (m *MockOrderRepo) ListAll(ctx context.Context) ([]models.Order, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockOrderRepo) Create(ctx context.Context, o *models.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *MockOrderRepo) Delete(ctx context.Context, id int) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

func (m *MockOrderRepo) UpdateStatus(ctx context.Context, id int, status models.OrderStatus) (bool, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return false, nil
}

// fixture — изменяемые "таблицы" в памяти, на которые замыкаются моки.
type fixture struct {
	countries   []models.Country
	customers   []models.Customer
	categories  []models.ProductCategory
	products    []models.Product
	warehouses  []models.Warehouse
	inventories []models.Inventory
	orders      []models.Order

	nextOrderID int
}

// newFixture: US и FR, клиент Bob во Франции, товар 1 лежит на обоих
// складах (5 в US, 10 во FR).
func newFixture() *fixture {
	return &fixture{
		countries: []models.Country{
			{ID: "FR", Name: "France"},
			{ID: "US", Name: "United States"},
		},
		customers: []models.Customer{
			{ID: 1, FirstName: "Alice", LastName: "Smith", Address: "12 Oak St", Email: "alice@example.com", CountryID: "US"},
			{ID: 2, FirstName: "Bob", LastName: "Martin", Address: "3 Rue Neuve", Email: "bob@example.com", CountryID: "FR"},
		},
		categories: []models.ProductCategory{
			{ID: 1, Name: "Tools"},
		},
		products: []models.Product{
			{ID: 1, Name: "Hammer", Description: "claw hammer", Cost: 5, Price: 8, CategoryID: 1},
			{ID: 2, Name: "Wrench", Description: "adjustable", Cost: 2, Price: 3, CategoryID: 1},
		},
		warehouses: []models.Warehouse{
			{ID: 1, Name: "US Main", CountryID: "US"},
			{ID: 2, Name: "FR Main", CountryID: "FR"},
		},
		inventories: []models.Inventory{
			{ProductID: 1, WarehouseID: 1, Quantity: 5},
			{ProductID: 1, WarehouseID: 2, Quantity: 10},
			{ProductID: 2, WarehouseID: 1, Quantity: 7},
		},
		nextOrderID: 1,
	}
}

func (f *fixture) repo() *repository.Repository {
	return &repository.Repository{
		Countries: &MockCountryRepo{
			ListAllFunc: func(ctx context.Context) ([]models.Country, error) {
				return append([]models.Country(nil), f.countries...), nil
			},
			CreateFunc: func(ctx context.Context, c *models.Country) error {
				f.countries = append(f.countries, *c)
				return nil
			},
			DeleteFunc: func(ctx context.Context, id string) (bool, error) {
				for i, c := range f.countries {
					if c.ID == id {
						f.countries = append(f.countries[:i], f.countries[i+1:]...)
						return true, nil
					}
				}
				return false, nil
			},
		},
		Customers: &MockCustomerRepo{
			ListAllFunc: func(ctx context.Context) ([]models.Customer, error) {
				return append([]models.Customer(nil), f.customers...), nil
			},
			CreateFunc: func(ctx context.Context, c *models.Customer) error {
				c.ID = len(f.customers) + 1
				f.customers = append(f.customers, *c)
				return nil
			},
			DeleteFunc: func(ctx context.Context, id int) (bool, error) {
				for i, c := range f.customers {
					if c.ID == id {
						f.customers = append(f.customers[:i], f.customers[i+1:]...)
						return true, nil
					}
				}
				return false, nil
			},
		},
		Categories: &MockCategoryRepo{
			ListAllFunc: func(ctx context.Context) ([]models.ProductCategory, error) {
				return append([]models.ProductCategory(nil), f.categories...), nil
			},
			CreateFunc: func(ctx context.Context, c *models.ProductCategory) error {
				c.ID = len(f.categories) + 1
				f.categories = append(f.categories, *c)
				return nil
			},
			DeleteFunc: func(ctx context.Context, id int) (bool, error) {
				for i, c := range f.categories {
					if c.ID == id {
						f.categories = append(f.categories[:i], f.categories[i+1:]...)
						return true, nil
					}
				}
				return false, nil
			},
		},
		Products: &MockProductRepo{
			ListAllFunc: func(ctx context.Context) ([]models.Product, error) {
				return append([]models.Product(nil), f.products...), nil
			},
			CreateFunc: func(ctx context.Context, p *models.Product) error {
				p.ID = len(f.products) + 1
				f.products = append(f.products, *p)
				return nil
			},
			DeleteFunc: func(ctx context.Context, id int) (bool, error) {
				for i, p := range f.products {
					if p.ID == id {
						f.products = append(f.products[:i], f.products[i+1:]...)
						return true, nil
					}
				}
				return false, nil
			},
		},
		Warehouses: &MockWarehouseRepo{
			ListAllFunc: func(ctx context.Context) ([]models.Warehouse, error) {
				return append([]models.Warehouse(nil), f.warehouses...), nil
			},
			CreateFunc: func(ctx context.Context, w *models.Warehouse) error {
				w.ID = len(f.warehouses) + 1
				f.warehouses = append(f.warehouses, *w)
				return nil
			},
		},
		Inventories: &MockInventoryRepo{
			ListAllFunc: func(ctx context.Context) ([]models.Inventory, error) {
				return append([]models.Inventory(nil), f.inventories...), nil
			},
			SetQuantityFunc: func(ctx context.Context, productID, warehouseID, quantity int) error {
				for i, inv := range f.inventories {
					if inv.ProductID == productID && inv.WarehouseID == warehouseID {
						f.inventories[i].Quantity = quantity
					}
				}
				return nil
			},
		},
		Orders: &MockOrderRepo{
			ListAllFunc: func(ctx context.Context) ([]models.Order, error) {
				return append([]models.Order(nil), f.orders...), nil
			},
			CreateFunc: func(ctx context.Context, o *models.Order) error {
				o.ID = f.nextOrderID
				f.nextOrderID++
				f.orders = append(f.orders, *o)
				return nil
			},
			UpdateStatusFunc: func(ctx context.Context, id int, status models.OrderStatus) (bool, error) {
				for i, o := range f.orders {
					if o.ID == id {
						f.orders[i].Status = status
						return true, nil
					}
				}
				return false, nil
			},
		},
	}
}

func newTestStore(t *testing.T, f *fixture, opts service.Options) *service.Store {
	t.Helper()
	s := service.NewStore(f.repo(), zap.NewNop(), opts)
	t.Cleanup(s.Close)
	if err := s.RefreshAll(context.Background()); err != nil {
		t.Fatalf("RefreshAll: %v", err)
	}
	return s
}

func mustLogin(t *testing.T, s *service.Store, first, last, email string) models.Customer {
	t.Helper()
	c, err := s.Login(first, last, email)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	return c
}

var fixedDate = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
