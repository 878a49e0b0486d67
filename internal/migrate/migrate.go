package migrate

import (
	"context"

	"store-service/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MigrateOptions struct {
	CreateChecks    bool // CHECK-constraint'ы
	CreateFKsViaSQL bool // FK через Exec после AutoMigrate
}

func DefaultMigrateOptions() MigrateOptions {
	return MigrateOptions{
		CreateChecks:    true,
		CreateFKsViaSQL: true,
	}
}

func MigrateStoreDB(ctx context.Context, db *gorm.DB, log *zap.Logger, opt MigrateOptions) error {
	log.Info("Начало миграции базы магазина")

	log.Info("Создание таблиц")
	if err := db.AutoMigrate(
		&models.Country{},
		&models.Customer{},
		&models.ProductCategory{},
		&models.Product{},
		&models.Warehouse{},
		&models.Inventory{},
		&models.Order{},
	); err != nil {
		log.Error("AutoMigrate error", zap.Error(err))
		return err
	}
	log.Info("Таблицы созданы")

	if opt.CreateChecks {
		log.Info("Создание CHECK-ограничений")

		// Остатки не бывают отрицательными.
		if err := db.Exec(`
ALTER TABLE inventories
	DROP CONSTRAINT IF EXISTS chk_inventories_quantity_non_negative,
	ADD CONSTRAINT chk_inventories_quantity_non_negative
	CHECK (quantity >= 0);
`).Error; err != nil {
			log.Error("chk inventories.quantity", zap.Error(err))
			return err
		}

		if err := db.Exec(`
ALTER TABLE orders
	DROP CONSTRAINT IF EXISTS chk_orders_quantity_gt_zero,
	ADD CONSTRAINT chk_orders_quantity_gt_zero
	CHECK (quantity > 0);
`).Error; err != nil {
			log.Error("chk orders.quantity", zap.Error(err))
			return err
		}

		// Допустимые статусы
		if err := db.Exec(`
ALTER TABLE orders
	DROP CONSTRAINT IF EXISTS chk_orders_status_allowed,
	ADD CONSTRAINT chk_orders_status_allowed
	CHECK (status IN ('CREATED','RECEIVED','IN_TRANSIT','DELIVERED','DISCARDED'));
`).Error; err != nil {
			log.Error("chk orders.status", zap.Error(err))
			return err
		}

		log.Info("CHECK-и созданы")
	}

	if opt.CreateFKsViaSQL {
		log.Info("Создание внешних ключей")

		// Ссылочную целостность обеспечивает база; удаление страны,
		// на которую ссылается склад или клиент, падает с её ошибкой.
		stmts := []struct {
			name string
			sql  string
		}{
			{"fk customers.country_id", `
ALTER TABLE customers
  DROP CONSTRAINT IF EXISTS fk_customers_country,
  ADD CONSTRAINT fk_customers_country
    FOREIGN KEY (country_id) REFERENCES countries(country_id) ON DELETE RESTRICT;
`},
			{"fk warehouses.country_id", `
ALTER TABLE warehouses
  DROP CONSTRAINT IF EXISTS fk_warehouses_country,
  ADD CONSTRAINT fk_warehouses_country
    FOREIGN KEY (country_id) REFERENCES countries(country_id) ON DELETE RESTRICT;
`},
			{"fk products.category_id", `
ALTER TABLE products
  DROP CONSTRAINT IF EXISTS fk_products_category,
  ADD CONSTRAINT fk_products_category
    FOREIGN KEY (category_id) REFERENCES product_categories(category_id) ON DELETE RESTRICT;
`},
			{"fk inventories.product_id", `
ALTER TABLE inventories
  DROP CONSTRAINT IF EXISTS fk_inventories_product,
  ADD CONSTRAINT fk_inventories_product
    FOREIGN KEY (product_id) REFERENCES products(product_id) ON DELETE RESTRICT;
`},
			{"fk inventories.warehouse_id", `
ALTER TABLE inventories
  DROP CONSTRAINT IF EXISTS fk_inventories_warehouse,
  ADD CONSTRAINT fk_inventories_warehouse
    FOREIGN KEY (warehouse_id) REFERENCES warehouses(warehouse_id) ON DELETE RESTRICT;
`},
			{"fk orders.customer_id", `
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS fk_orders_customer,
  ADD CONSTRAINT fk_orders_customer
    FOREIGN KEY (customer_id) REFERENCES customers(customer_id) ON DELETE RESTRICT;
`},
			{"fk orders.product_id", `
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS fk_orders_product,
  ADD CONSTRAINT fk_orders_product
    FOREIGN KEY (product_id) REFERENCES products(product_id) ON DELETE RESTRICT;
`},
		}
		for _, s := range stmts {
			if err := db.Exec(s.sql).Error; err != nil {
				log.Error(s.name, zap.Error(err))
				return err
			}
		}

		log.Info("Внешние ключи созданы")
	}

	log.Info("Миграция базы магазина успешно завершена")
	return nil
}
