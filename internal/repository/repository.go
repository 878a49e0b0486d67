package repository

import "gorm.io/gorm"

type Repository struct {
	DB          *gorm.DB
	Countries   CountryRepo
	Customers   CustomerRepo
	Categories  CategoryRepo
	Products    ProductRepo
	Warehouses  WarehouseRepo
	Inventories InventoryRepo
	Orders      OrderRepo
}

func buildRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:          db,
		Countries:   NewCountryRepo(db),
		Customers:   NewCustomerRepo(db),
		Categories:  NewCategoryRepo(db),
		Products:    NewProductRepo(db),
		Warehouses:  NewWarehouseRepo(db),
		Inventories: NewInventoryRepo(db),
		Orders:      NewOrderRepo(db),
	}
}

func New(db *gorm.DB) *Repository { return buildRepository(db) }

// Глобальная транзакция на весь набор репо
func (r *Repository) WithTx(fn func(tx *Repository) error) error {
	if r.DB == nil {
		// Набор собран вручную, без подключения: выполняем как есть.
		return fn(r)
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return fn(buildRepository(tx))
	})
}
