package repository

import (
	"context"

	"store-service/internal/models"

	"gorm.io/gorm"
)

type CategoryRepo interface {
	ListAll(ctx context.Context) ([]models.ProductCategory, error)
	Create(ctx context.Context, c *models.ProductCategory) error
	Delete(ctx context.Context, id int) (bool, error)
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepo(db *gorm.DB) CategoryRepo { return &categoryRepo{db: db} }

func (r *categoryRepo) ListAll(ctx context.Context) ([]models.ProductCategory, error) {
	var list []models.ProductCategory
	err := r.db.WithContext(ctx).Order("category_id").Find(&list).Error
	return list, err
}

func (r *categoryRepo) Create(ctx context.Context, c *models.ProductCategory) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) Delete(ctx context.Context, id int) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.ProductCategory{}, "category_id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}
