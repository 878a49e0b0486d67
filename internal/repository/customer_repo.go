package repository

import (
	"context"

	"store-service/internal/models"

	"gorm.io/gorm"
)

type CustomerRepo interface {
	ListAll(ctx context.Context) ([]models.Customer, error)
	Create(ctx context.Context, c *models.Customer) error
	Delete(ctx context.Context, id int) (bool, error)
}

type customerRepo struct{ db *gorm.DB }

func NewCustomerRepo(db *gorm.DB) CustomerRepo { return &customerRepo{db: db} }

func (r *customerRepo) ListAll(ctx context.Context) ([]models.Customer, error) {
	var list []models.Customer
	err := r.db.WithContext(ctx).Order("customer_id").Find(&list).Error
	return list, err
}

func (r *customerRepo) Create(ctx context.Context, c *models.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *customerRepo) Delete(ctx context.Context, id int) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Customer{}, "customer_id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}
