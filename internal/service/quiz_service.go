package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/trivia-api/internal/apierror"
	"github.com/lshigami/trivia-api/internal/dto"
	"github.com/lshigami/trivia-api/internal/repository"
	"github.com/rs/zerolog/log"
)

// AllCategoriesType is the sentinel quiz_category type meaning "all
// categories"; the frontend sends it instead of a real category id.
const AllCategoriesType = "click"

type QuizService interface {
	NextQuestion(req dto.QuizRequest) (*dto.QuizResponse, error)
}

type quizService struct {
	questionRepo repository.QuestionRepository
	rng          *rand.Rand
}

func NewQuizService(questionRepo repository.QuestionRepository) QuizService {
	return &quizService{
		questionRepo: questionRepo,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NextQuestion picks one question uniformly at random from the candidate set:
// questions in the requested category (or all of them for the sentinel type)
// whose ids are not in previous_questions. An exhausted candidate set yields a
// null question, not an error.
func (s *quizService) NextQuestion(req dto.QuizRequest) (*dto.QuizResponse, error) {
	if req.QuizCategory == nil || req.QuizCategory.Type == nil || req.PreviousQuestions == nil {
		return nil, fmt.Errorf("quiz_category and previous_questions are required: %w", apierror.ErrBadRequest)
	}

	var categoryID *uint
	if *req.QuizCategory.Type != AllCategoriesType {
		if req.QuizCategory.ID == nil {
			return nil, fmt.Errorf("quiz_category id is required: %w", apierror.ErrBadRequest)
		}
		categoryID = req.QuizCategory.ID
	}

	candidates, err := s.questionRepo.FindCandidates(categoryID, req.PreviousQuestions)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch quiz candidates")
		return nil, fmt.Errorf("error fetching quiz candidates: %w", apierror.ErrUnprocessable)
	}

	if len(candidates) == 0 {
		return &dto.QuizResponse{Success: true, Question: nil}, nil
	}

	chosen := candidates[s.rng.Intn(len(candidates))]
	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, &chosen); err != nil {
		return nil, fmt.Errorf("error preparing quiz response: %w", err)
	}

	return &dto.QuizResponse{Success: true, Question: &resp}, nil
}
