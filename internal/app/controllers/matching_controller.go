package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/selim/placemate/internal/app/models/dto"
	"github.com/selim/placemate/internal/app/services"
	"github.com/selim/placemate/internal/middleware"
)

// MatchingController handles the auto-assignment pass
type MatchingController struct {
	matchingService *services.MatchingService
}

// NewMatchingController creates a new MatchingController
func NewMatchingController(matchingService *services.MatchingService) *MatchingController {
	return &MatchingController{matchingService: matchingService}
}

// AutoAssign runs the greedy auto-assignment pass
// @Summary Auto-assign interviews
// @Description Books one slot per unbooked student following preference order; reports assignments and students left without a slot
// @Tags matching
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AssignmentReport} "Assignment pass completed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments/auto [post]
func (c *MatchingController) AutoAssign(ctx *gin.Context) {
	report, err := c.matchingService.AutoAssignInterviews(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}
