package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentms/internal/app/models/dto"
	"github.com/yigit/studentms/internal/app/services"
	"github.com/yigit/studentms/internal/middleware"
)

// OptionController manages configurable options
type OptionController struct {
	optionService services.OptionService
}

// NewOptionController creates a new OptionController
func NewOptionController(optionService services.OptionService) *OptionController {
	return &OptionController{optionService: optionService}
}

// addStatus is 201 when a row was created and 200 when an active duplicate was returned
func addStatus(outcome services.AddOutcome) int {
	if outcome == services.OutcomeAdded {
		return http.StatusCreated
	}
	return http.StatusOK
}

// ListOptions lists the active options of a category
// @Summary List active options
// @Tags configurable-options
// @Produce json
// @Security BearerAuth
// @Param category path string true "BATCH, CLASS_TEACHER, HOSTEL, PROGRAM or STREAM"
// @Success 200 {array} models.ConfigurableOption
// @Failure 400 {object} dto.ErrorResponse "Unknown category"
// @Failure 403 {object} dto.ErrorResponse "Access Denied: Admin Only"
// @Router /configurable-options/{category} [get]
func (c *OptionController) ListOptions(ctx *gin.Context) {
	options, err := c.optionService.List(ctx.Request.Context(), ctx.Param("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, options)
}

// AddOption adds an option unless an identical active one exists
// @Summary Add option
// @Description Returns 201 with outcome ADDED, or 200 with outcome ALREADY_EXISTS and the existing option
// @Tags configurable-options
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddOptionRequest true "Option"
// @Success 201 {object} dto.AddOptionResponse
// @Success 200 {object} dto.AddOptionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Access Denied: Admin Only"
// @Router /configurable-options [post]
func (c *OptionController) AddOption(ctx *gin.Context) {
	var req dto.AddOptionRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.optionService.Add(ctx.Request.Context(), services.AddOptionInput{
		Category:     req.Category,
		Value:        req.Value,
		AcademicYear: req.AcademicYear,
		ActorID:      actorID(ctx),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(addStatus(result.Outcome), dto.AddOptionResponse{
		Outcome: string(result.Outcome),
		Option:  result.Option,
	})
}

// UpdateOption changes an option's value or academic year
// @Summary Update option
// @Tags configurable-options
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Option ID"
// @Param request body dto.UpdateOptionRequest true "Option"
// @Success 200 {object} models.ConfigurableOption
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Configurable option not found"
// @Router /configurable-options/{id} [put]
func (c *OptionController) UpdateOption(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "option")
	if !ok {
		return
	}

	var req dto.UpdateOptionRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	option, err := c.optionService.Update(ctx.Request.Context(), id, services.UpdateOptionInput{
		Value:        req.Value,
		AcademicYear: req.AcademicYear,
		ActorID:      actorID(ctx),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, option)
}

// DeactivateOption soft-deletes an option
// @Summary Deactivate option
// @Tags configurable-options
// @Produce json
// @Security BearerAuth
// @Param id path int true "Option ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Configurable option not found"
// @Router /configurable-options/{id} [delete]
func (c *OptionController) DeactivateOption(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "option")
	if !ok {
		return
	}

	if err := c.optionService.Deactivate(ctx.Request.Context(), id, actorID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Option deactivated successfully"})
}
