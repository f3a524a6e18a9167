package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/uniboard/markbook/internal/app/models/dto"
	"github.com/uniboard/markbook/internal/app/services"
	"github.com/uniboard/markbook/internal/middleware"
)

// RecordController handles the authenticated student's own academic record
type RecordController struct {
	recordService services.RecordService
	logger        zerolog.Logger
}

// NewRecordController creates a new RecordController
func NewRecordController(recordService services.RecordService, logger zerolog.Logger) *RecordController {
	return &RecordController{
		recordService: recordService,
		logger:        logger,
	}
}

// callerEmail returns the email placed in the context by the JWT middleware.
func callerEmail(ctx *gin.Context) (string, bool) {
	value, exists := ctx.Get(middleware.ContextEmail)
	if !exists {
		return "", false
	}
	email, ok := value.(string)
	return email, ok && email != ""
}

// GetMyRecord returns the caller's academic record
// @Summary View own academic record
// @Description Returns the authenticated student's semesters, per-semester GPA and cumulative GPA. A student with no semesters gets an empty record.
// @Tags records
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.RecordResponse} "Academic record"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a student"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /records/me [get]
func (c *RecordController) GetMyRecord(ctx *gin.Context) {
	email, ok := callerEmail(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	record, err := c.recordService.GetRecord(ctx.Request.Context(), email)
	if err != nil {
		c.logger.Error().Err(err).Str("email", email).Msg("Failed to load record")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: record,
	})
}

// AddMySemester appends a semester to the caller's record
// @Summary Add a semester
// @Description Records a new semester for the authenticated student. The semester number is assigned automatically; GPA and CGPA are derived from the submitted marks.
// @Tags records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddSemesterRequest true "Subjects of the new semester"
// @Success 201 {object} dto.APIResponse{data=dto.SemesterResponse} "Semester recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid subjects or marks"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a student"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /records/me/semesters [post]
func (c *RecordController) AddMySemester(ctx *gin.Context) {
	email, ok := callerEmail(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

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
