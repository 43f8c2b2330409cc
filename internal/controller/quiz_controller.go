package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia-api/internal/apierror"
	"github.com/lshigami/trivia-api/internal/dto"
	"github.com/rs/zerolog/log"
)

// PlayQuiz godoc
// @Summary Pick the next quiz question
// @Description Select a random question from the requested category (type "click" means all categories) that has not been played yet. Question is null once the category is exhausted.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param round body dto.QuizRequest true "Category descriptor and previously played question ids"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} apierror.Envelope "Malformed or missing fields"
// @Router /quizzes [post]
func (ctrl *Controller) PlayQuiz(ctx *gin.Context) {
	var req dto.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("PlayQuiz: failed to bind JSON")
		apierror.Respond(ctx, http.StatusBadRequest)
		return
	}

	resp, err := ctrl.quizSvc.NextQuestion(req)
	if err != nil {
		log.Warn().Err(err).Msg("PlayQuiz: service error")
		apierror.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
