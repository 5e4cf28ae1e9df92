package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentms/internal/app/models/dto"
	"github.com/yigit/studentms/internal/app/services"
	"github.com/yigit/studentms/internal/middleware"
)

// CatalogController serves one option category as a plain resource.
// The same controller backs /batches, /hostels and /programs.
type CatalogController struct {
	catalog services.CatalogService
	label   string
}

// NewCatalogController creates a new CatalogController. label is used in messages.
func NewCatalogController(catalog services.CatalogService, label string) *CatalogController {
	return &CatalogController{catalog: catalog, label: label}
}

// List returns the active entries
// @Summary List batches, hostels or programs
// @Tags catalogs
// @Produce json
// @Security BearerAuth
// @Param catalog path string true "batches, hostels or programs"
// @Success 200 {array} models.ConfigurableOption
// @Failure 403 {object} dto.ErrorResponse "Access Denied: Admin Only"
// @Router /{catalog} [get]
func (c *CatalogController) List(ctx *gin.Context) {
	entries, err := c.catalog.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

// Get returns one active entry
// @Summary Get a batch, hostel or program
// @Tags catalogs
// @Produce json
// @Security BearerAuth
// @Param catalog path string true "batches, hostels or programs"
// @Param id path int true "Entry ID"
// @Success 200 {object} models.ConfigurableOption
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /{catalog}/{id} [get]
func (c *CatalogController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", c.label)
	if !ok {
		return
	}

	entry, err := c.catalog.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entry)
}

// Create adds an entry. An omitted academic year means the current one.
// @Summary Create a batch, hostel or program
// @Tags catalogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param catalog path string true "batches, hostels or programs"
// @Param request body dto.CatalogRequest true "Entry"
// @Success 201 {object} dto.AddOptionResponse
// @Success 200 {object} dto.AddOptionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /{catalog} [post]
func (c *CatalogController) Create(ctx *gin.Context) {
	var req dto.CatalogRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.catalog.Create(ctx.Request.Context(), req.Value, req.AcademicYear, actorID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(addStatus(result.Outcome), dto.AddOptionResponse{
		Outcome: string(result.Outcome),
		Option:  result.Option,
	})
}

// Update renames an entry
// @Summary Update a batch, hostel or program
// @Tags catalogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param catalog path string true "batches, hostels or programs"
// @Param id path int true "Entry ID"
// @Param request body dto.CatalogRequest true "Entry"
// @Success 200 {object} models.ConfigurableOption
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /{catalog}/{id} [put]
func (c *CatalogController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", c.label)
	if !ok {
		return
	}

	var req dto.CatalogRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	entry, err := c.catalog.Update(ctx.Request.Context(), id, req.Value, req.AcademicYear, actorID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entry)
}

// Delete deactivates an entry
// @Summary Delete a batch, hostel or program
// @Tags catalogs
// @Produce json
// @Security BearerAuth
// @Param catalog path string true "batches, hostels or programs"
// @Param id path int true "Entry ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /{catalog}/{id} [delete]
func (c *CatalogController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", c.label)
	if !ok {
		return
	}

	if err := c.catalog.Delete(ctx.Request.Context(), id, actorID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: c.label + " deleted successfully"})
}
