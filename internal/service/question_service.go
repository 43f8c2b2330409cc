package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/trivia-api/config"
	"github.com/lshigami/trivia-api/internal/apierror"
	"github.com/lshigami/trivia-api/internal/dto"
	"github.com/lshigami/trivia-api/internal/model"
	"github.com/lshigami/trivia-api/internal/pagination"
	"github.com/lshigami/trivia-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionService interface {
	ListQuestions(page int) (*dto.QuestionListResponse, error)
	CreateQuestion(req dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error)
	DeleteQuestion(id uint) (*dto.DeleteQuestionResponse, error)
	SearchQuestions(req dto.SearchQuestionsRequest, page int) (*dto.SearchQuestionsResponse, error)
	ListQuestionsByCategory(categoryID uint, page int) (*dto.CategoryQuestionsResponse, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
	pageSize     int
}

func NewQuestionService(questionRepo repository.QuestionRepository, categoryRepo repository.CategoryRepository, cfg *config.Config) QuestionService {
	return &questionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		pageSize:     cfg.Questions.PageSize,
	}
}

// ListQuestions returns one page of all questions ordered by id, the
// unpaginated total, and the full category map. An empty page is reported as
// not found on this endpoint.
func (s *questionService) ListQuestions(page int) (*dto.QuestionListResponse, error) {
	questions, err := s.questionRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch questions from repository")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}

	pageItems := pagination.Page(questions, page, s.pageSize)
	if len(pageItems) == 0 {
		return nil, fmt.Errorf("no questions on page %d: %w", page, apierror.ErrNotFound)
	}

	categories, err := typeMap(s.categoryRepo)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch category map")
		return nil, fmt.Errorf("error fetching categories: %w", err)
	}

	return &dto.QuestionListResponse{
		Success:         true,
		Questions:       toQuestionResponses(pageItems),
		TotalQuestions:  len(questions),
		CurrentCategory: nil,
		Categories:      categories,
	}, nil
}

func (s *questionService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error) {
	if req.Question == nil || req.Answer == nil || req.Category == nil || req.Difficulty == nil {
		return nil, fmt.Errorf("question, answer, category and difficulty are required: %w", apierror.ErrUnprocessable)
	}

	// Category is stored as given. The category id is not checked against the
	// categories table; a question may reference an id that does not exist.
	question := model.Question{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Category:   *req.Category,
		Difficulty: *req.Difficulty,
	}
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question in database")
		return nil, fmt.Errorf("database error creating question: %w", apierror.ErrUnprocessable)
	}

	categories, err := typeMap(s.categoryRepo)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch category map after create")
		return nil, fmt.Errorf("error fetching categories: %w", err)
	}

	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, &question); err != nil {
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}

	return &dto.CreateQuestionResponse{
		Success:    true,
		Created:    question.ID,
		Question:   resp,
		Categories: categories,
	}, nil
}

// DeleteQuestion removes a question permanently. Absence is detected before
// the delete is attempted, so a missing id is always not-found and never a
// store error.
func (s *questionService) DeleteQuestion(id uint) (*dto.DeleteQuestionResponse, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question %d not found: %w", id, apierror.ErrNotFound)
		}
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to look up question before delete")
		return nil, fmt.Errorf("error looking up question %d: %w", id, apierror.ErrUnprocessable)
	}

	if err := s.questionRepo.Delete(question.ID); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to delete question")
		return nil, fmt.Errorf("database error deleting question %d: %w", id, apierror.ErrUnprocessable)
	}

	total, err := s.questionRepo.Count()
	if err != nil {
		log.Error().Err(err).Msg("Failed to count questions after delete")
		return nil, fmt.Errorf("error counting questions: %w", apierror.ErrUnprocessable)
	}

	return &dto.DeleteQuestionResponse{
		Success:        true,
		Deleted:        question.ID,
		TotalQuestions: total,
	}, nil
}

// SearchQuestions returns the page of questions whose prompt contains the term
// as a case-insensitive substring, plus the unpaginated match count. An empty
// or absent term matches every question. Unlike ListQuestions, an empty page
// here is a valid result.
func (s *questionService) SearchQuestions(req dto.SearchQuestionsRequest, page int) (*dto.SearchQuestionsResponse, error) {
	var (
		matches []model.Question
		err     error
	)
	if req.SearchTerm == nil || *req.SearchTerm == "" {
		matches, err = s.questionRepo.FindAll()
	} else {
		matches, err = s.questionRepo.Search(*req.SearchTerm)
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to search questions")
		return nil, fmt.Errorf("error searching questions: %w", err)
	}

	return &dto.SearchQuestionsResponse{
		Success:         true,
		Questions:       toQuestionResponses(pagination.Page(matches, page, s.pageSize)),
		TotalQuestions:  len(matches),
		CurrentCategory: nil,
	}, nil
}

func (s *questionService) ListQuestionsByCategory(categoryID uint, page int) (*dto.CategoryQuestionsResponse, error) {
	category, err := s.categoryRepo.FindByID(categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %d not found: %w", categoryID, apierror.ErrNotFound)
		}
		log.Error().Err(err).Uint("categoryID", categoryID).Msg("Failed to look up category")
		return nil, fmt.Errorf("error looking up category %d: %w", categoryID, err)
	}

	questions, err := s.questionRepo.FindByCategory(category.ID)
	if err != nil {
		log.Error().Err(err).Uint("categoryID", categoryID).Msg("Failed to fetch questions for category")
		return nil, fmt.Errorf("error fetching questions for category %d: %w", categoryID, err)
	}

	return &dto.CategoryQuestionsResponse{
		Success:         true,
		Questions:       toQuestionResponses(pagination.Page(questions, page, s.pageSize)),
		TotalQuestions:  len(questions),
		CurrentCategory: &category.Type,
	}, nil
}

func toQuestionResponses(questions []model.Question) []dto.QuestionResponse {
	responses := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		var resp dto.QuestionResponse
		copier.Copy(&resp, &q)
		responses = append(responses, resp)
	}
	return responses
}
