package repository

import (
	"context"

	"store-service/internal/models"

	"gorm.io/gorm"
)

type InventoryRepo interface {
	ListAll(ctx context.Context) ([]models.Inventory, error)
	Create(ctx context.Context, inv *models.Inventory) error
	Delete(ctx context.Context, productID, warehouseID int) (bool, error)
	// SetQuantity writes an absolute quantity for one stock row.
	// Allocation runs it for every planned row inside one WithTx.
	SetQuantity(ctx context.Context, productID, warehouseID, quantity int) error
}

type inventoryRepo struct{ db *gorm.DB }

func NewInventoryRepo(db *gorm.DB) InventoryRepo { return &inventoryRepo{db: db} }

func (r *inventoryRepo) ListAll(ctx context.Context) ([]models.Inventory, error) {
	var list []models.Inventory
	err := r.db.WithContext(ctx).Order("product_id, warehouse_id").Find(&list).Error
	return list, err
}

func (r *inventoryRepo) Create(ctx context.Context, inv *models.Inventory) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *inventoryRepo) Delete(ctx context.Context, productID, warehouseID int) (bool, error) {
	tx := r.db.WithContext(ctx).
		Delete(&models.Inventory{}, "product_id = ? AND warehouse_id = ?", productID, warehouseID)
	return tx.RowsAffected > 0, tx.Error
}

func (r *inventoryRepo) SetQuantity(ctx context.Context, productID, warehouseID, quantity int) error {
	return r.db.WithContext(ctx).Model(&models.Inventory{}).
		Where("product_id = ? AND warehouse_id = ?", productID, warehouseID).
		Update("quantity", quantity).Error
}
