package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/selim/placemate/internal/app/models/dto"
	"github.com/selim/placemate/internal/app/services"
	"github.com/selim/placemate/internal/middleware"
)

// SlotController handles interview slot lifecycle and booking
type SlotController struct {
	slotService *services.SlotService
}

// NewSlotController creates a new SlotController
func NewSlotController(slotService *services.SlotService) *SlotController {
	return &SlotController{slotService: slotService}
}

// CreateSlot adds an interview timeslot to a company
// @Summary Add a timeslot
// @Description Adds an available interview timeslot to the company
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Param request body dto.CreateSlotRequest true "Slot details"
// @Success 201 {object} dto.APIResponse{data=models.InterviewSlot} "Slot created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid date or time"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/{id}/slots [post]
func (c *SlotController) CreateSlot(ctx *gin.Context) {
	var req dto.CreateSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid slot data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	slot, err := c.slotService.AddTimeslot(ctx, ctx.Param("id"), req.Date, req.StartTime, req.EndTime)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      slot,
		Timestamp: time.Now(),
	})
}

// DeleteSlot removes an unbooked timeslot
// @Summary Remove a timeslot
// @Description Removes an interview timeslot; booked slots must be unbooked first
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 204 "Slot removed successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Slot not found"
// @Failure 409 {object} dto.ErrorResponse "Slot is booked"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /slots/{id} [delete]
func (c *SlotController) DeleteSlot(ctx *gin.Context) {
	err := c.slotService.RemoveTimeslot(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ToggleAvailability flips a slot's availability
// @Summary Toggle slot availability
// @Description Flips an unbooked slot between available and unavailable
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 200 {object} dto.APIResponse{data=dto.ToggleAvailabilityResponse} "Availability toggled"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Slot not found"
// @Failure 409 {object} dto.ErrorResponse "Slot is booked"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /slots/{id}/availability [patch]
func (c *SlotController) ToggleAvailability(ctx *gin.Context) {
	slotID := ctx.Param("id")
	available, err := c.slotService.ToggleSlotAvailability(ctx, slotID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.ToggleAvailabilityResponse{SlotID: slotID, IsAvailable: available},
		Timestamp: time.Now(),
	})
}

// BookSlot books a slot for a student
// @Summary Book an interview slot
// @Description Books the slot for the student; rebooking moves the slot to the new student
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Param request body dto.BookSlotRequest true "Booking student"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Slot booked successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Slot or student not found"
// @Failure 409 {object} dto.ErrorResponse "Slot is not available"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /slots/{id}/booking [post]
func (c *SlotController) BookSlot(ctx *gin.Context) {
	var req dto.BookSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid booking data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	err := c.slotService.BookInterviewSlot(ctx, ctx.Param("id"), req.StudentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Slot booked"},
		Timestamp: time.Now(),
	})
}

// UnbookSlot releases a booking
// @Summary Unbook an interview slot
// @Description Releases the booking; the slot becomes bookable again
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Slot unbooked successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Slot not found"
// @Failure 409 {object} dto.ErrorResponse "Slot is not booked"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /slots/{id}/booking [delete]
func (c *SlotController) UnbookSlot(ctx *gin.Context) {
	err := c.slotService.UnbookInterviewSlot(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Slot unbooked"},
		Timestamp: time.Now(),
	})
}

// GetAvailableSlots lists a company's open slots
// @Summary List available slots for a company
// @Description Retrieves the company's unbooked, available interview slots
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Success 200 {object} dto.APIResponse{data=[]models.InterviewSlot} "Slots retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/{id}/available-slots [get]
func (c *SlotController) GetAvailableSlots(ctx *gin.Context) {
	slots, err := c.slotService.GetAvailableSlotsForCompany(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      slots,
		Timestamp: time.Now(),
	})
}

// GetSchedule lists all booked interviews
// @Summary Get the interview schedule
// @Description Retrieves every booked interview, sorted by date or by company
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sort query string false "Sort order: date or company" default(date)
// @Success 200 {object} dto.APIResponse{data=[]models.InterviewSlot} "Schedule retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedule [get]
func (c *SlotController) GetSchedule(ctx *gin.Context) {
	slots, err := c.slotService.ListBookedSlots(ctx, ctx.DefaultQuery("sort", services.ScheduleSortDate))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      slots,
		Timestamp: time.Now(),
	})
}
