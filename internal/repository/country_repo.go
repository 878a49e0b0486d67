package repository

import (
	"context"

	"store-service/internal/models"

	"gorm.io/gorm"
)

type CountryRepo interface {
	ListAll(ctx context.Context) ([]models.Country, error)
	Create(ctx context.Context, c *models.Country) error
	Delete(ctx context.Context, id string) (bool, error)
}

type countryRepo struct{ db *gorm.DB }

func NewCountryRepo(db *gorm.DB) CountryRepo { return &countryRepo{db: db} }

func (r *countryRepo) ListAll(ctx context.Context) ([]models.Country, error) {
	var list []models.Country
	err := r.db.WithContext(ctx).Order("country_id").Find(&list).Error
	return list, err
}

func (r *countryRepo) Create(ctx context.Context, c *models.Country) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *countryRepo) Delete(ctx context.Context, id string) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Country{}, "country_id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}
