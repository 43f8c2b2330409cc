package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia-api/internal/apierror"
	"github.com/lshigami/trivia-api/internal/dto"
	"github.com/rs/zerolog/log"
)

// GetQuestions godoc
// @Summary List questions
// @Description Get one page of questions (ordered by id) with the unpaginated total and the category map.
// @Tags Questions
// @Produce json
// @Param page query int false "Page number, 1-indexed" default(1)
// @Success 200 {object} dto.QuestionListResponse
// @Failure 404 {object} apierror.Envelope "Page is empty"
// @Router /questions [get]
func (ctrl *Controller) GetQuestions(ctx *gin.Context) {
	resp, err := ctrl.questionSvc.ListQuestions(pageParam(ctx))
	if err != nil {
		log.Warn().Err(err).Msg("GetQuestions: service error")
		apierror.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateQuestion godoc
// @Summary Create a question
// @Tags Questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question to create"
// @Success 200 {object} dto.CreateQuestionResponse
// @Failure 422 {object} apierror.Envelope "Missing fields or store error"
// @Router /questions [post]
func (ctrl *Controller) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateQuestion: failed to bind JSON")
		apierror.Respond(ctx, http.StatusUnprocessableEntity)
		return
	}

	resp, err := ctrl.questionSvc.CreateQuestion(req)
	if err != nil {
		log.Warn().Err(err).Msg("CreateQuestion: service error")
		apierror.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SearchQuestions godoc
// @Summary Search questions
// @Description Case-insensitive substring search over question prompts. An empty term matches every question.
// @Tags Questions
// @Accept json
// @Produce json
// @Param search body dto.SearchQuestionsRequest true "Search term"
// @Param page query int false "Page number, 1-indexed" default(1)
// @Success 200 {object} dto.SearchQuestionsResponse
// @Router /questions/search [post]
func (ctrl *Controller) SearchQuestions(ctx *gin.Context) {
	var req dto.SearchQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SearchQuestions: failed to bind JSON")
		apierror.Respond(ctx, http.StatusUnprocessableEntity)
		return
	}

	resp, err := ctrl.questionSvc.SearchQuestions(req, pageParam(ctx))
	if err != nil {
		log.Error().Err(err).Msg("SearchQuestions: service error")
		apierror.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Description Permanently remove a question. Absence is a 404; a store failure during delete is a 422.
// @Tags Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.DeleteQuestionResponse
// @Failure 404 {object} apierror.Envelope
// @Failure 422 {object} apierror.Envelope
// @Router /questions/{id} [delete]
func (ctrl *Controller) DeleteQuestion(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		apierror.Respond(ctx, http.StatusNotFound)
		return
	}

	resp, err := ctrl.questionSvc.DeleteQuestion(uint(id))
	if err != nil {
		log.Warn().Err(err).Uint64("questionID", id).Msg("DeleteQuestion: service error")
		apierror.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
