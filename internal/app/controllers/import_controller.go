package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/selim/placemate/internal/app/models/dto"
	"github.com/selim/placemate/internal/app/services"
	"github.com/selim/placemate/internal/middleware"
)

// ImportController handles bulk import batches
type ImportController struct {
	importService *services.ImportService
}

// NewImportController creates a new ImportController
func NewImportController(importService *services.ImportService) *ImportController {
	return &ImportController{importService: importService}
}

// ImportCompanies replaces the company roster
// @Summary Import companies
// @Description Replaces the company roster with the batch; existing slots, preferences and offers are dropped
// @Tags import
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ImportCompaniesRequest true "Company records"
// @Success 200 {object} dto.APIResponse{data=dto.ImportReport} "Import completed"
// @Failure 400 {object} dto.ErrorResponse "Empty or invalid batch"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /imports/companies [post]
func (c *ImportController) ImportCompanies(ctx *gin.Context) {
	var req dto.ImportCompaniesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid import payload")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	report, err := c.importService.ImportCompanies(ctx, req.Records)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}

// ImportStudents replaces the student roster
// @Summary Import students
// @Description Replaces the student roster with the batch; bookings held by replaced students are released
// @Tags import
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ImportStudentsRequest true "Student records"
// @Success 200 {object} dto.APIResponse{data=dto.ImportReport} "Import completed"
// @Failure 400 {object} dto.ErrorResponse "Empty or invalid batch"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /imports/students [post]
func (c *ImportController) ImportStudents(ctx *gin.Context) {
	var req dto.ImportStudentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid import payload")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	report, err := c.importService.ImportStudents(ctx, req.Records)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}

// ImportPreferences merges preference records
// @Summary Import preferences
// @Description Merges preference records into the current roster; unresolved records are skipped and counted
// @Tags import
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ImportPreferencesRequest true "Preference records"
// @Success 200 {object} dto.APIResponse{data=dto.ImportReport} "Import completed"
// @Failure 400 {object} dto.ErrorResponse "Empty or invalid batch"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /imports/preferences [post]
func (c *ImportController) ImportPreferences(ctx *gin.Context) {
	var req dto.ImportPreferencesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid import payload")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	report, err := c.importService.ImportPreferences(ctx, req.Records)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}
