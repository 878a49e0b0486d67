package repository

import (
	"context"

	"store-service/internal/models"

	"gorm.io/gorm"
)

type OrderRepo interface {
	ListAll(ctx context.Context) ([]models.Order, error)
	Create(ctx context.Context, o *models.Order) error
	Delete(ctx context.Context, id int) (bool, error)
	UpdateStatus(ctx context.Context, id int, status models.OrderStatus) (bool, error)
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) OrderRepo { return &orderRepo{db: db} }

func (r *orderRepo) ListAll(ctx context.Context) ([]models.Order, error) {
	var list []models.Order
	err := r.db.WithContext(ctx).Order("order_id").Find(&list).Error
	return list, err
}

func (r *orderRepo) Create(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) Delete(ctx context.Context, id int) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Order{}, "order_id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id int, status models.OrderStatus) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("order_id = ?", id).Update("status", status)
	return tx.RowsAffected > 0, tx.Error
}
