package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/selim/placemate/internal/app/models/dto"
	"github.com/selim/placemate/internal/app/services"
	"github.com/selim/placemate/internal/middleware"
)

// OfferController handles offer status tracking
type OfferController struct {
	offerService *services.OfferService
}

// NewOfferController creates a new OfferController
func NewOfferController(offerService *services.OfferService) *OfferController {
	return &OfferController{offerService: offerService}
}

// SetOfferStatus upserts the offer status for a student/company pair
// @Summary Set an offer status
// @Description Records the offer outcome between a student and a company
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SetOfferStatusRequest true "Offer status"
// @Success 200 {object} dto.APIResponse{data=models.OfferStatus} "Offer status saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid status value"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student or company not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /offers [put]
func (c *OfferController) SetOfferStatus(ctx *gin.Context) {
	var req dto.SetOfferStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid offer data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	offer, err := c.offerService.SetOfferStatus(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      offer,
		Timestamp: time.Now(),
	})
}

// GetOffers lists offer rows
// @Summary List offer statuses
// @Description Retrieves all offer rows, optionally filtered to one student
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId query string false "Filter by student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.OfferStatus} "Offers retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /offers [get]
func (c *OfferController) GetOffers(ctx *gin.Context) {
	offers, err := c.offerService.ListOffers(ctx, ctx.Query("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      offers,
		Timestamp: time.Now(),
	})
}
