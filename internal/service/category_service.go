package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/trivia-api/internal/apierror"
	"github.com/lshigami/trivia-api/internal/dto"
	"github.com/lshigami/trivia-api/internal/model"
	"github.com/lshigami/trivia-api/internal/repository"
	"github.com/rs/zerolog/log"
)

type CategoryService interface {
	ListCategories() (*dto.CategoryListResponse, error)
	CreateCategory(req dto.CreateCategoryRequest) (*dto.CreateCategoryResponse, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) ListCategories() (*dto.CategoryListResponse, error) {
	categories, err := typeMap(s.categoryRepo)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list categories from repository")
		return nil, fmt.Errorf("error fetching categories: %w", err)
	}
	return &dto.CategoryListResponse{Success: true, Categories: categories}, nil
}

func (s *categoryService) CreateCategory(req dto.CreateCategoryRequest) (*dto.CreateCategoryResponse, error) {
	if req.Type == nil || *req.Type == "" {
		return nil, fmt.Errorf("category type is required: %w", apierror.ErrUnprocessable)
	}

	category := model.Category{Type: *req.Type}
	if err := s.categoryRepo.Create(&category); err != nil {
		log.Error().Err(err).Msg("Failed to create category in database")
		return nil, fmt.Errorf("database error creating category: %w", apierror.ErrUnprocessable)
	}

	categories, err := typeMap(s.categoryRepo)
	if err != nil {
		log.Error().Err(err).Msg("Failed to reload category map after create")
		return nil, fmt.Errorf("error fetching categories: %w", err)
	}

	var resp dto.CategoryResponse
	if err := copier.Copy(&resp, &category); err != nil {
		return nil, fmt.Errorf("error preparing category response: %w", err)
	}

	return &dto.CreateCategoryResponse{
		Success:    true,
		Created:    category.ID,
		Category:   resp,
		Categories: categories,
	}, nil
}

// typeMap loads every category as an id to type mapping, the shape the listing
// endpoints embed alongside question pages.
func typeMap(repo repository.CategoryRepository) (map[uint]string, error) {
	categories, err := repo.FindAll()
	if err != nil {
		return nil, err
	}
	m := make(map[uint]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m, nil
}
