// Package controllers handles HTTP request handling
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentms/internal/middleware"
	"github.com/yigit/studentms/internal/pkg/apperrors"
)

// parseIDParam reads a positive integer path parameter
func parseIDParam(ctx *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid "+label+" ID"))
		return 0, false
	}
	return id, true
}

// actorID returns the authenticated user id, 0 when none
func actorID(ctx *gin.Context) int64 {
	id, _ := middleware.CurrentUserID(ctx)
	return id
}
