package service_test

import (
	"context"
	"errors"
	"testing"

	"store-service/internal/cache"
	"store-service/internal/models"
	"store-service/internal/service"

	"go.uber.org/zap"
)

func TestStore_RefreshAll(t *testing.T) {
	f := newFixture()
	s := newTestStore(t, f, service.Options{})

	if got := len(s.Countries()); got != 2 {
		t.Fatalf("expected 2 countries, got %d", got)
	}
	if got := len(s.Customers()); got != 2 {
		t.Fatalf("expected 2 customers, got %d", got)
	}
	if got := len(s.Products()); got != 2 {
		t.Fatalf("expected 2 products, got %d", got)
	}
	if got := len(s.Inventories()); got != 3 {
		t.Fatalf("expected 3 inventory rows, got %d", got)
	}
	if got := len(s.Orders()); got != 0 {
		t.Fatalf("expected no orders, got %d", got)
	}
}

func TestStore_RefreshIdempotent(t *testing.T) {
	f := newFixture()
	s := newTestStore(t, f, service.Options{})

	first := s.Inventories()
	if err := s.RefreshAll(context.Background()); err != nil {
		t.Fatalf("RefreshAll: %v", err)
	}
	second := s.Inventories()

	if len(first) != len(second) {
		t.Fatalf("snapshot size changed: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("snapshot changed without writes: %v vs %v", first[i], second[i])
		}
	}
}

func TestStore_CreateCountry_CascadeRefresh(t *testing.T) {
	f := newFixture()
	s := newTestStore(t, f, service.Options{})

	// Строки появляются в "базе" мимо кэшей; увидеть их можно только
	// через каскад обновлений country → warehouse → inventory.
	f.warehouses = append(f.warehouses, models.Warehouse{ID: 3, Name: "DE Main", CountryID: "DE"})
	f.inventories = append(f.inventories, models.Inventory{ProductID: 1, WarehouseID: 3, Quantity: 4})

	if got := len(s.Warehouses()); got != 2 {
		t.Fatalf("expected stale warehouse snapshot before create, got %d", got)
	}

	if err := s.CreateCountry(context.Background(), models.Country{ID: "DE", Name: "Germany"}); err != nil {
		t.Fatalf("CreateCountry: %v", err)
	}

	if got := len(s.Countries()); got != 3 {
		t.Fatalf("expected 3 countries, got %d", got)
	}
	if got := len(s.Warehouses()); got != 3 {
		t.Fatalf("expected warehouse cache refreshed to 3, got %d", got)
	}
	if got := len(s.Inventories()); got != 4 {
		t.Fatalf("expected inventory cache refreshed transitively to 4, got %d", got)
	}
}

func TestStore_DeleteCategory_RefreshesProducts(t *testing.T) {
	f := newFixture()
	f.categories = append(f.categories, models.ProductCategory{ID: 2, Name: "Empty"})
	s := newTestStore(t, f, service.Options{})

	// Товар исчезает из "базы"; кэш товаров узнаёт об этом через
	// оповещение от категорий.
	f.products = f.products[:1]

	ok, err := s.DeleteCategory(context.Background(), 2)
	if err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	if !ok {
		t.Fatal("expected deleted=true")
	}
	if got := len(s.Categories()); got != 1 {
		t.Fatalf("expected 1 category, got %d", got)
	}
	if got := len(s.Products()); got != 1 {
		t.Fatalf("expected product cache refreshed to 1, got %d", got)
	}
}

func TestStore_DeleteMissingRow(t *testing.T) {
	f := newFixture()
	s := newTestStore(t, f, service.Options{})

	ok, err := s.DeleteCustomer(context.Background(), 99)
	if err != nil {
		t.Fatalf("DeleteCustomer: %v", err)
	}
	if ok {
		t.Fatal("expected deleted=false for missing row")
	}
}

func TestStore_CreateFailureKeepsState(t *testing.T) {
	f := newFixture()
	repo := f.repo()
	createErr := errors.New("duplicate key value violates unique constraint")
	repo.Countries.(*MockCountryRepo).CreateFunc = func(ctx context.Context, c *models.Country) error {
		return createErr
	}

	s := service.NewStore(repo, zap.NewNop(), service.Options{})
	t.Cleanup(s.Close)
	if err := s.RefreshAll(context.Background()); err != nil {
		t.Fatalf("RefreshAll: %v", err)
	}

	err := s.CreateCountry(context.Background(), models.Country{ID: "FR", Name: "France"})
	if !errors.Is(err, createErr) {
		t.Fatalf("expected driver error surfaced, got %v", err)
	}
	if got := len(s.Countries()); got != 2 {
		t.Fatalf("expected snapshot unchanged after failed insert, got %d", got)
	}
}

func TestStore_CreateOrder_InvalidStatus(t *testing.T) {
	f := newFixture()
	s := newTestStore(t, f, service.Options{})

	_, err := s.CreateOrder(context.Background(), models.Order{
		CustomerID: 1,
		Status:     "SHIPPED",
		OrderDate:  fixedDate,
		ProductID:  1,
		Quantity:   1,
	})
	if !errors.Is(err, service.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestStore_SortCustomers(t *testing.T) {
	f := newFixture()
	s := newTestStore(t, f, service.Options{})

	// Колонка 5 — Country ID.
	if err := s.SortCustomers(5, cache.Descending); err != nil {
		t.Fatalf("SortCustomers: %v", err)
	}
	got := s.Customers()
	if got[0].CountryID != "US" || got[1].CountryID != "FR" {
		t.Fatalf("expected US before FR descending, got %v", got)
	}

	if err := s.SortCustomers(99, cache.Ascending); err == nil {
		t.Fatal("expected error for bad column index")
	}
}

func TestStore_SnapshotDetachedFromSort(t *testing.T) {
	f := newFixture()
	s := newTestStore(t, f, service.Options{})

	// Выданный список живёт своей жизнью: пересортировка кэша после
	// выдачи его не переупорядочивает.
	before := s.Customers()
	if before[0].ID != 1 || before[1].ID != 2 {
		t.Fatalf("unexpected initial order: %v", before)
	}

	if err := s.SortCustomers(0, cache.Descending); err != nil {
		t.Fatalf("SortCustomers: %v", err)
	}
	if before[0].ID != 1 || before[1].ID != 2 {
		t.Fatalf("expected earlier snapshot untouched by sort, got %v", before)
	}
	after := s.Customers()
	if after[0].ID != 2 || after[1].ID != 1 {
		t.Fatalf("expected descending order in fresh snapshot, got %v", after)
	}
}

func TestStore_SelectionsResetOnDataChange(t *testing.T) {
	f := newFixture()
	s := newTestStore(t, f, service.Options{})

	mustLogin(t, s, "Bob", "Martin", "bob@example.com")
	if _, err := s.SelectQuantity(1, 2); err != nil {
		t.Fatalf("SelectQuantity: %v", err)
	}

	// Любое изменение данных сбрасывает выбор на витрине.
	if err := s.CreateCountry(context.Background(), models.Country{ID: "DE", Name: "Germany"}); err != nil {
		t.Fatalf("CreateCountry: %v", err)
	}

	entries, err := s.Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	for _, e := range entries {
		if e.Selected != 0 {
			t.Fatalf("expected selections cleared, product %d has %d", e.Product.ID, e.Selected)
		}
	}
}
