package repository

import (
	"github.com/lshigami/trivia-api/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindAll() ([]model.Question, error)
	FindByCategory(categoryID uint) ([]model.Question, error)
	// FindCandidates returns questions eligible for a quiz round: filtered to a
	// single category when categoryID is non-nil, always excluding excludedIDs.
	FindCandidates(categoryID *uint, excludedIDs []uint) ([]model.Question, error)
	Search(term string) ([]model.Question, error)
	Count() (int64, error)
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindAll() ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByCategory(categoryID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("category = ?", categoryID).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindCandidates(categoryID *uint, excludedIDs []uint) ([]model.Question, error) {
	query := r.db.Order("id ASC")
	if categoryID != nil {
		query = query.Where("category = ?", *categoryID)
	}
	if len(excludedIDs) > 0 {
		query = query.Where("id NOT IN ?", excludedIDs)
	}

	var questions []model.Question
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// Search matches case-insensitively on the prompt text. LOWER/LIKE instead of
// ILIKE so the query also runs against the sqlite test database.
func (r *questionRepository) Search(term string) ([]model.Question, error) {
	var questions []model.Question
	pattern := "%" + term + "%"
	if err := r.db.Where("LOWER(question) LIKE LOWER(?)", pattern).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Question{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *questionRepository) Delete(id uint) error {
	return r.db.Delete(&model.Question{}, id).Error
}
