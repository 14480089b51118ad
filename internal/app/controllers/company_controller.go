package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/selim/placemate/internal/app/models/dto"
	"github.com/selim/placemate/internal/app/services"
	"github.com/selim/placemate/internal/middleware"
)

// CompanyController handles company registry operations
type CompanyController struct {
	companyService *services.CompanyService
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(companyService *services.CompanyService) *CompanyController {
	return &CompanyController{companyService: companyService}
}

// CreateCompany handles company registration
// @Summary Create a new company
// @Description Registers a new placement company
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCompanyRequest true "Company information"
// @Success 201 {object} dto.APIResponse{data=models.Company} "Company created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies [post]
func (c *CompanyController) CreateCompany(ctx *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid company data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	company, err := c.companyService.AddCompany(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      company,
		Timestamp: time.Now(),
	})
}

// GetCompanyByID retrieves a company by ID
// @Summary Get company by ID
// @Description Retrieves one company with its interview slots
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Success 200 {object} dto.APIResponse{data=models.Company} "Company retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/{id} [get]
func (c *CompanyController) GetCompanyByID(ctx *gin.Context) {
	company, err := c.companyService.GetCompanyByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      company,
		Timestamp: time.Now(),
	})
}

// GetAllCompanies retrieves all companies
// @Summary Get all companies
// @Description Retrieves all companies with their interview slots
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Company} "Companies retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies [get]
func (c *CompanyController) GetAllCompanies(ctx *gin.Context) {
	companies, err := c.companyService.ListCompanies(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      companies,
		Timestamp: time.Now(),
	})
}

// UpdateCompany updates an existing company
// @Summary Update a company
// @Description Updates a company's own fields; interview slots are unaffected
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Param request body dto.UpdateCompanyRequest true "Updated company information"
// @Success 200 {object} dto.APIResponse{data=models.Company} "Company updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/{id} [put]
func (c *CompanyController) UpdateCompany(ctx *gin.Context) {
	var req dto.UpdateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid company data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	company, err := c.companyService.UpdateCompany(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      company,
		Timestamp: time.Now(),
	})
}

// DeleteCompany deletes a company
// @Summary Delete a company
// @Description Deletes a company along with its slots, preferences and offers
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Success 204 "Company deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/{id} [delete]
func (c *CompanyController) DeleteCompany(ctx *gin.Context) {
	err := c.companyService.DeleteCompany(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
