package repository

import (
	"context"

	"store-service/internal/models"

	"gorm.io/gorm"
)

type ProductRepo interface {
	ListAll(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id int) (bool, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) ProductRepo { return &productRepo{db: db} }

func (r *productRepo) ListAll(ctx context.Context) ([]models.Product, error) {
	var list []models.Product
	err := r.db.WithContext(ctx).Order("product_id").Find(&list).Error
	return list, err
}

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) Delete(ctx context.Context, id int) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Product{}, "product_id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}
