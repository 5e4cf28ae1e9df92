package controllers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentms/internal/app/models/dto"
	"github.com/yigit/studentms/internal/app/services"
	"github.com/yigit/studentms/internal/middleware"
	"github.com/yigit/studentms/internal/pkg/apperrors"
	"github.com/yigit/studentms/internal/pkg/logger"
	"github.com/yigit/studentms/internal/pkg/spreadsheet"
)

// ExportFilename is the attachment name of an export
const ExportFilename = "students.xlsx"

// ExcelController imports and exports the student roster
type ExcelController struct {
	excelService   services.ExcelService
	maxUploadBytes int64
}

// NewExcelController creates a new ExcelController
func NewExcelController(excelService services.ExcelService, maxUploadBytes int64) *ExcelController {
	return &ExcelController{
		excelService:   excelService,
		maxUploadBytes: maxUploadBytes,
	}
}

// UploadExcel imports students from an .xlsx file
// @Summary Import students
// @Description Reads the first sheet. Rows whose STUDENT ID already exists are skipped.
// @Tags excel
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Spreadsheet (.xlsx)"
// @Success 200 {object} dto.ImportReport
// @Failure 400 {object} dto.ErrorResponse "No file uploaded"
// @Failure 403 {object} dto.ErrorResponse "Access Denied: Admin Only"
// @Failure 413 {object} dto.ErrorResponse "File too large"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /upload-excel [post]
func (c *ExcelController) UploadExcel(ctx *gin.Context) {
	if c.maxUploadBytes > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.maxUploadBytes)
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ctx.JSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse("File too large"))
			return
		}
		middleware.HandleAPIError(ctx, apperrors.ErrNoFileUploaded)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer file.Close()

	report, err := c.excelService.Import(ctx.Request.Context(), file, actorID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Str("filename", fileHeader.Filename).Int64("size", fileHeader.Size).Msg("Processed student upload")
	ctx.JSON(http.StatusOK, report)
}

// DownloadExcel exports every student as an .xlsx attachment
// @Summary Export students
// @Tags excel
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "students.xlsx"
// @Failure 403 {object} dto.ErrorResponse "Access Denied: Admin Only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /download-excel [get]
func (c *ExcelController) DownloadExcel(ctx *gin.Context) {
	var buf bytes.Buffer
	if err := c.excelService.Export(ctx.Request.Context(), &buf); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename="+ExportFilename)
	ctx.Data(http.StatusOK, spreadsheet.ContentType, buf.Bytes())
}
