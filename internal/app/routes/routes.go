package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/uniboard/markbook/internal/app/controllers"
	"github.com/uniboard/markbook/internal/app/models"
	"github.com/uniboard/markbook/internal/app/models/dto"
	"github.com/uniboard/markbook/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	recordController *controllers.RecordController,
	studentController *controllers.StudentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Student self-service record routes
		records := authenticated.Group("/records")
		records.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
		{
			records.GET("/me", recordController.GetMyRecord)
			records.POST("/me/semesters", recordController.AddMySemester)
		}

		// Staff-only student management routes
		students := authenticated.Group("/students")
		students.Use(authMiddleware.RoleRequired(string(models.RoleStaff)))
		{
			students.POST("", studentController.CreateStudent)
			students.GET("", studentController.ListStudents)
			students.GET("/:email/record", studentController.GetStudentRecord)
			students.POST("/:email/record/semesters", studentController.AddStudentSemester)
			students.DELETE("/:email", studentController.DeleteStudent)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
