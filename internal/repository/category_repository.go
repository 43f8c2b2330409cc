package repository

import (
	"github.com/lshigami/trivia-api/internal/model"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	FindByID(id uint) (*model.Category, error)
	FindAll() ([]model.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// FindAll returns categories sorted alphabetically by type, the order the
// category listing exposes.
func (r *categoryRepository) FindAll() ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.Order("type ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
