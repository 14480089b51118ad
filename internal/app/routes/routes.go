package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/selim/placemate/internal/app/controllers"
	"github.com/selim/placemate/internal/app/models/dto"
	"github.com/selim/placemate/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	companyController *controllers.CompanyController,
	studentController *controllers.StudentController,
	slotController *controllers.SlotController,
	matchingController *controllers.MatchingController,
	importController *controllers.ImportController,
	offerController *controllers.OfferController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		companies := authenticated.Group("/companies")
		{
			companies.GET("", companyController.GetAllCompanies)
			companies.GET("/:id", companyController.GetCompanyByID)
			companies.POST("", companyController.CreateCompany)
			companies.PUT("/:id", companyController.UpdateCompany)
			companies.DELETE("/:id", companyController.DeleteCompany)
		}

		// Company-scoped slot routes share the :id param with the company
		// group; slot-scoped routes live under /slots.
		companies.POST("/:id/slots", slotController.CreateSlot)
		companies.GET("/:id/available-slots", slotController.GetAvailableSlots)

		slots := authenticated.Group("/slots")
		{
			slots.DELETE("/:id", slotController.DeleteSlot)
			slots.PATCH("/:id/availability", slotController.ToggleAvailability)
			slots.POST("/:id/booking", slotController.BookSlot)
			slots.DELETE("/:id/booking", slotController.UnbookSlot)
		}

		students := authenticated.Group("/students")
		{
			students.GET("", studentController.GetAllStudents)
			students.GET("/:id", studentController.GetStudentByID)
			students.POST("", studentController.CreateStudent)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
			students.PUT("/:id/preferences", studentController.SetPreference)
		}

		authenticated.GET("/schedule", slotController.GetSchedule)
		authenticated.POST("/assignments/auto", matchingController.AutoAssign)

		importGroup := authenticated.Group("/imports")
		{
			importGroup.POST("/companies", importController.ImportCompanies)
			importGroup.POST("/students", importController.ImportStudents)
			importGroup.POST("/preferences", importController.ImportPreferences)
		}

		offers := authenticated.Group("/offers")
		{
			offers.GET("", offerController.GetOffers)
			offers.PUT("", offerController.SetOfferStatus)
		}
	}

	// Swagger routes are set up in bootstrap.go already
}
