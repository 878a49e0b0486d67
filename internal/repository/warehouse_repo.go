package repository

import (
	"context"

	"store-service/internal/models"

	"gorm.io/gorm"
)

type WarehouseRepo interface {
	ListAll(ctx context.Context) ([]models.Warehouse, error)
	Create(ctx context.Context, w *models.Warehouse) error
	Delete(ctx context.Context, id int) (bool, error)
}

type warehouseRepo struct{ db *gorm.DB }

func NewWarehouseRepo(db *gorm.DB) WarehouseRepo { return &warehouseRepo{db: db} }

func (r *warehouseRepo) ListAll(ctx context.Context) ([]models.Warehouse, error) {
	var list []models.Warehouse
	err := r.db.WithContext(ctx).Order("warehouse_id").Find(&list).Error
	return list, err
}

func (r *warehouseRepo) Create(ctx context.Context, w *models.Warehouse) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *warehouseRepo) Delete(ctx context.Context, id int) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Warehouse{}, "warehouse_id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}
