package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/uniboard/markbook/internal/app/models/dto"
	"github.com/uniboard/markbook/internal/app/services"
	"github.com/uniboard/markbook/internal/middleware"
)

// StudentController handles staff-side student account management
type StudentController struct {
	studentService services.StudentService
	recordService  services.RecordService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, recordService services.RecordService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		recordService:  recordService,
		logger:         logger,
	}
}

// CreateStudent creates a student account
// @Summary Create a student account
// @Description Creates a student account with the given name, email and password. An existing account for the email has its name and password replaced; recorded semesters are left untouched.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student account information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse} "Student account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Caller is not staff"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create student payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Error().Err(err).Str("email", req.Email).Msg("Failed to create student")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("email", student.Email).Int64("userID", student.ID).Msg("Student created")

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: student,
	})
}

// ListStudents lists all students with their records
// @Summary List students
// @Description Returns every student account together with its full academic record. Full scan, no pagination.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse} "Student listing"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Caller is not staff"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	listing, err := c.studentService.ListStudents(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list students")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: listing,
	})
}

// GetStudentRecord returns one student's record
// @Summary View a student's record
// @Description Returns the academic record of the student with the given email.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param email path string true "Student email"
// @Success 200 {object} dto.APIResponse{data=dto.RecordResponse} "Academic record"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Caller is not staff"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{email}/record [get]
func (c *StudentController) GetStudentRecord(ctx *gin.Context) {
	email := ctx.Param("email")

	record, err := c.recordService.GetRecord(ctx.Request.Context(), email)
	if err != nil {
		c.logger.Error().Err(err).Str("email", email).Msg("Failed to load student record")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: record,
	})
}

// AddStudentSemester records a semester on behalf of a student
// @Summary Add a semester for a student
// @Description Records a new semester for the student with the given email; used by staff entering marks.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email path string true "Student email"
// @Param request body dto.AddSemesterRequest true "Subjects of the new semester"
// @Success 201 {object} dto.APIResponse{data=dto.SemesterResponse} "Semester recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid subjects or marks"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Caller is not staff"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{email}/record/semesters [post]
func (c *StudentController) AddStudentSemester(ctx *gin.Context) {
	email := ctx.Param("email")

	var req dto.AddSemesterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid add semester payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	semester, err := c.recordService.AddSemester(ctx.Request.Context(), email, &req)
	if err != nil {
		c.logger.Error().Err(err).Str("email", email).Msg("Failed to add semester")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: semester,
	})
}

// DeleteStudent deletes a student account and its record
// @Summary Delete a student
// @Description Removes the student account and every recorded semester in one atomic operation. A later login for the email fails.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param email path string true "Student email"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Student deleted"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Caller is not staff"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{email} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	email := ctx.Param("email")

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), email); err != nil {
		c.logger.Error().Err(err).Str("email", email).Msg("Failed to delete student")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("email", email).Msg("Student deleted")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Student deleted"},
	})
}
