package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lshigami/trivia-api/config"
	"github.com/lshigami/trivia-api/internal/apierror"
	"github.com/lshigami/trivia-api/internal/dto"
	"github.com/lshigami/trivia-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuestionService(qRepo *stubQuestionRepo, cRepo *stubCategoryRepo, pageSize int) QuestionService {
	cfg := &config.Config{}
	cfg.Questions.PageSize = pageSize
	return NewQuestionService(qRepo, cRepo, cfg)
}

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint    { return &u }
func intPtr(i int) *int       { return &i }

func seedQuestions(repo *stubQuestionRepo, n int, category uint) {
	for i := 0; i < n; i++ {
		repo.Create(&model.Question{
			Question:   fmt.Sprintf("Question number %d", i+1),
			Answer:     "42",
			Category:   category,
			Difficulty: 1,
		})
	}
}

func TestListQuestionsPaginates(t *testing.T) {
	qRepo := &stubQuestionRepo{}
	cRepo := &stubCategoryRepo{}
	cRepo.Create(&model.Category{Type: "Science"})
	seedQuestions(qRepo, 12, 1)
	svc := newQuestionService(qRepo, cRepo, 10)

	resp, err := svc.ListQuestions(1)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Len(t, resp.Questions, 10)
	assert.Equal(t, 12, resp.TotalQuestions)
	assert.Nil(t, resp.CurrentCategory)
	assert.Equal(t, map[uint]string{1: "Science"}, resp.Categories)
	assert.Equal(t, uint(1), resp.Questions[0].ID)

	resp, err = svc.ListQuestions(2)
	require.NoError(t, err)
	assert.Len(t, resp.Questions, 2)
	assert.Equal(t, uint(11), resp.Questions[0].ID)
}

func TestListQuestionsEmptyPageIsNotFound(t *testing.T) {
	qRepo := &stubQuestionRepo{}
	cRepo := &stubCategoryRepo{}
	seedQuestions(qRepo, 3, 1)
	svc := newQuestionService(qRepo, cRepo, 10)

	_, err := svc.ListQuestions(2)
	assert.ErrorIs(t, err, apierror.ErrNotFound)

	// Empty store: even page 1 has no content.
	_, err = newQuestionService(&stubQuestionRepo{}, cRepo, 10).ListQuestions(1)
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestCreateQuestion(t *testing.T) {
	qRepo := &stubQuestionRepo{}
	cRepo := &stubCategoryRepo{}
	svc := newQuestionService(qRepo, cRepo, 10)

	resp, err := svc.CreateQuestion(dto.CreateQuestionRequest{
		Question:   strPtr("What's the capital of France?"),
		Answer:     strPtr("Paris"),
		Category:   uintPtr(1),
		Difficulty: intPtr(1),
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, uint(1), resp.Created)
	assert.Equal(t, "What's the capital of France?", resp.Question.Question)
	// No referential check: category 1 does not exist and the create still lands.
	assert.Equal(t, uint(1), resp.Question.Category)
}

func TestCreateQuestionMissingFieldIsUnprocessable(t *testing.T) {
	svc := newQuestionService(&stubQuestionRepo{}, &stubCategoryRepo{}, 10)

	_, err := svc.CreateQuestion(dto.CreateQuestionRequest{
		Question: strPtr("orphan"),
		Answer:   strPtr("yes"),
	})
	assert.ErrorIs(t, err, apierror.ErrUnprocessable)
}

func TestCreateQuestionStoreErrorIsUnprocessable(t *testing.T) {
	qRepo := &stubQuestionRepo{createErr: errors.New("constraint violation")}
	svc := newQuestionService(qRepo, &stubCategoryRepo{}, 10)

	_, err := svc.CreateQuestion(dto.CreateQuestionRequest{
		Question:   strPtr("q"),
		Answer:     strPtr("a"),
		Category:   uintPtr(1),
		Difficulty: intPtr(1),
	})
	assert.ErrorIs(t, err, apierror.ErrUnprocessable)
}

func TestDeleteQuestion(t *testing.T) {
	qRepo := &stubQuestionRepo{}
	seedQuestions(qRepo, 2, 1)
	svc := newQuestionService(qRepo, &stubCategoryRepo{}, 10)

	resp, err := svc.DeleteQuestion(1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), resp.Deleted)
	assert.Equal(t, int64(1), resp.TotalQuestions)

	// Deleting the same id again observes absence, never a store error.
	_, err = svc.DeleteQuestion(1)
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestDeleteQuestionAbsentIsNotFound(t *testing.T) {
	// deleteErr would fire if the mutation were attempted; absence must be
	// detected before that.
	qRepo := &stubQuestionRepo{deleteErr: errors.New("must not be reached")}
	svc := newQuestionService(qRepo, &stubCategoryRepo{}, 10)

	_, err := svc.DeleteQuestion(99)
	assert.ErrorIs(t, err, apierror.ErrNotFound)
	assert.NotErrorIs(t, err, apierror.ErrUnprocessable)
}

func TestDeleteQuestionStoreErrorIsUnprocessable(t *testing.T) {
	qRepo := &stubQuestionRepo{deleteErr: errors.New("disk on fire")}
	seedQuestions(qRepo, 1, 1)
	svc := newQuestionService(qRepo, &stubCategoryRepo{}, 10)

	_, err := svc.DeleteQuestion(1)
	assert.ErrorIs(t, err, apierror.ErrUnprocessable)
}

func TestSearchQuestions(t *testing.T) {
	qRepo := &stubQuestionRepo{}
	qRepo.Create(&model.Question{Question: "What's the capital of France?", Answer: "Paris", Category: 1, Difficulty: 1})
	qRepo.Create(&model.Question{Question: "Who painted the Mona Lisa?", Answer: "Da Vinci", Category: 2, Difficulty: 2})
	svc := newQuestionService(qRepo, &stubCategoryRepo{}, 10)

	resp, err := svc.SearchQuestions(dto.SearchQuestionsRequest{SearchTerm: strPtr("france")}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalQuestions)
	require.Len(t, resp.Questions, 1)
	assert.Equal(t, uint(1), resp.Questions[0].ID)
	assert.Nil(t, resp.CurrentCategory)
}

func TestSearchQuestionsNoMatches(t *testing.T) {
	qRepo := &stubQuestionRepo{}
	seedQuestions(qRepo, 2, 1)
	svc := newQuestionService(qRepo, &stubCategoryRepo{}, 10)

	resp, err := svc.SearchQuestions(dto.SearchQuestionsRequest{SearchTerm: strPtr("unobtainium")}, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalQuestions)
	assert.Empty(t, resp.Questions)
}

func TestSearchQuestionsEmptyTermMatchesAll(t *testing.T) {
	qRepo := &stubQuestionRepo{}
	seedQuestions(qRepo, 3, 1)
	svc := newQuestionService(qRepo, &stubCategoryRepo{}, 10)

	resp, err := svc.SearchQuestions(dto.SearchQuestionsRequest{}, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalQuestions)
	assert.Len(t, resp.Questions, 3)
}

func TestListQuestionsByCategory(t *testing.T) {
	qRepo := &stubQuestionRepo{}
	cRepo := &stubCategoryRepo{}
	cRepo.Create(&model.Category{Type: "Science"})
	seedQuestions(qRepo, 2, 1)
	qRepo.Create(&model.Question{Question: "off-topic", Answer: "x", Category: 2, Difficulty: 1})
	svc := newQuestionService(qRepo, cRepo, 10)

	resp, err := svc.ListQuestionsByCategory(1, 1)
	require.NoError(t, err)
	assert.Len(t, resp.Questions, 2)
	assert.Equal(t, 2, resp.TotalQuestions)
	require.NotNil(t, resp.CurrentCategory)
	assert.Equal(t, "Science", *resp.CurrentCategory)
}

func TestListQuestionsByCategoryUnknownIsNotFound(t *testing.T) {
	cRepo := &stubCategoryRepo{}
	cRepo.Create(&model.Category{Type: "Science"})
	svc := newQuestionService(&stubQuestionRepo{}, cRepo, 10)

	_, err := svc.ListQuestionsByCategory(99, 1)
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}
