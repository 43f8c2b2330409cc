package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia-api/internal/dto"
	"github.com/lshigami/trivia-api/internal/service"
)

type Controller struct {
	questionSvc service.QuestionService
	categorySvc service.CategoryService
	quizSvc     service.QuizService
}

func NewController(questionSvc service.QuestionService, categorySvc service.CategoryService, quizSvc service.QuizService) *Controller {
	return &Controller{
		questionSvc: questionSvc,
		categorySvc: categorySvc,
		quizSvc:     quizSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", ctrl.Health)

	router.GET("/categories", ctrl.GetCategories)
	router.POST("/categories", ctrl.CreateCategory)
	router.GET("/categories/:id/questions", ctrl.GetQuestionsByCategory)

	router.GET("/questions", ctrl.GetQuestions)
	router.POST("/questions", ctrl.CreateQuestion)
	router.POST("/questions/search", ctrl.SearchQuestions)
	router.DELETE("/questions/:id", ctrl.DeleteQuestion)

	router.POST("/quizzes", ctrl.PlayQuiz)
}

// Health godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (ctrl *Controller) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{Success: true, Status: "ok"})
}

// pageParam reads the ?page query parameter, defaulting to 1 when it is
// absent or not a positive integer.
func pageParam(ctx *gin.Context) int {
	page, err := strconv.Atoi(ctx.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
