package service

import (
	"slices"
	"strings"

	"github.com/lshigami/trivia-api/internal/model"
	"gorm.io/gorm"
)

// In-memory repository stand-ins. Errors can be forced per operation to drive
// the failure paths.

type stubQuestionRepo struct {
	questions []model.Question
	nextID    uint
	createErr error
	findErr   error
	deleteErr error
	countErr  error
}

func (s *stubQuestionRepo) Create(question *model.Question) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.nextID++
	question.ID = s.nextID
	s.questions = append(s.questions, *question)
	return nil
}

func (s *stubQuestionRepo) FindByID(id uint) (*model.Question, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	for _, q := range s.questions {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubQuestionRepo) FindAll() ([]model.Question, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return slices.Clone(s.questions), nil
}

func (s *stubQuestionRepo) FindByCategory(categoryID uint) ([]model.Question, error) {
	var out []model.Question
	for _, q := range s.questions {
		if q.Category == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *stubQuestionRepo) FindCandidates(categoryID *uint, excludedIDs []uint) ([]model.Question, error) {
	var out []model.Question
	for _, q := range s.questions {
		if categoryID != nil && q.Category != *categoryID {
			continue
		}
		if slices.Contains(excludedIDs, q.ID) {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (s *stubQuestionRepo) Search(term string) ([]model.Question, error) {
	var out []model.Question
	for _, q := range s.questions {
		if strings.Contains(strings.ToLower(q.Question), strings.ToLower(term)) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *stubQuestionRepo) Count() (int64, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	return int64(len(s.questions)), nil
}

func (s *stubQuestionRepo) Delete(id uint) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.questions = slices.DeleteFunc(s.questions, func(q model.Question) bool { return q.ID == id })
	return nil
}

type stubCategoryRepo struct {
	categories []model.Category
	nextID     uint
	createErr  error
	findErr    error
}

func (s *stubCategoryRepo) Create(category *model.Category) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.nextID++
	category.ID = s.nextID
	s.categories = append(s.categories, *category)
	return nil
}

func (s *stubCategoryRepo) FindByID(id uint) (*model.Category, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	for _, c := range s.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCategoryRepo) FindAll() ([]model.Category, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return slices.Clone(s.categories), nil
}
