package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia-api/internal/apierror"
	"github.com/lshigami/trivia-api/internal/dto"
	"github.com/rs/zerolog/log"
)

// GetCategories godoc
// @Summary List categories
// @Description Get all categories as an id to type mapping, ordered by type.
// @Tags Categories
// @Produce json
// @Success 200 {object} dto.CategoryListResponse
// @Router /categories [get]
func (ctrl *Controller) GetCategories(ctx *gin.Context) {
	resp, err := ctrl.categorySvc.ListCategories()
	if err != nil {
		log.Error().Err(err).Msg("GetCategories: service error")
		apierror.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateCategory godoc
// @Summary Create a category
// @Tags Categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category to create"
// @Success 200 {object} dto.CreateCategoryResponse
// @Failure 422 {object} apierror.Envelope "Missing type or store error"
// @Router /categories [post]
func (ctrl *Controller) CreateCategory(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateCategory: failed to bind JSON")
		apierror.Respond(ctx, http.StatusUnprocessableEntity)
		return
	}

	resp, err := ctrl.categorySvc.CreateCategory(req)
	if err != nil {
		log.Warn().Err(err).Msg("CreateCategory: service error")
		apierror.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetQuestionsByCategory godoc
// @Summary List questions in a category
// @Description Get one page of the questions belonging to a category, with the unpaginated total and the category's type.
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Param page query int false "Page number, 1-indexed" default(1)
// @Success 200 {object} dto.CategoryQuestionsResponse
// @Failure 404 {object} apierror.Envelope "Category does not exist"
// @Router /categories/{id}/questions [get]
func (ctrl *Controller) GetQuestionsByCategory(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		apierror.Respond(ctx, http.StatusNotFound)
		return
	}

	resp, err := ctrl.questionSvc.ListQuestionsByCategory(uint(id), pageParam(ctx))
	if err != nil {
		log.Warn().Err(err).Uint64("categoryID", id).Msg("GetQuestionsByCategory: service error")
		apierror.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
