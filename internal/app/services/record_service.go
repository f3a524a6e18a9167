package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/uniboard/markbook/internal/app/models"
	"github.com/uniboard/markbook/internal/app/models/dto"
	"github.com/uniboard/markbook/internal/app/repositories"
	"github.com/uniboard/markbook/internal/pkg/apperrors"
	"github.com/uniboard/markbook/internal/pkg/grading"
)

// RecordService handles academic record operations
type RecordService interface {
	GetRecord(ctx context.Context, email string) (*dto.RecordResponse, error)
	AddSemester(ctx context.Context, email string, req *dto.AddSemesterRequest) (*dto.SemesterResponse, error)
}

type recordService struct {
	userRepo   repositories.IUserRepository
	recordRepo repositories.IRecordRepository
	logger     zerolog.Logger
}

// NewRecordService creates a new RecordService
func NewRecordService(
	userRepo repositories.IUserRepository,
	recordRepo repositories.IRecordRepository,
	logger zerolog.Logger,
) RecordService {
	return &recordService{
		userRepo:   userRepo,
		recordRepo: recordRepo,
		logger:     logger,
	}
}

// GetRecord returns the full academic record of the student with the given
// email. A student with no semesters yet gets an empty record, not an error.
func (s *recordService) GetRecord(ctx context.Context, email string) (*dto.RecordResponse, error) {
	user, err := s.getStudent(ctx, email)
	if err != nil {
		return nil, err
	}

	semesters, err := s.recordRepo.GetSemesters(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading semesters: %w", err)
	}

	return buildRecordResponse(user, semesters), nil
}

// AddSemester appends a new semester to the student's record. The semester
// number is the current count plus one; the semester GPA and the cumulative
// GPA are recomputed from the marks and persisted in the same transaction.
func (s *recordService) AddSemester(ctx context.Context, email string, req *dto.AddSemesterRequest) (*dto.SemesterResponse, error) {
	if err := validateSubjects(req.Subjects); err != nil {
		return nil, err
	}

	user, err := s.getStudent(ctx, email)
	if err != nil {
		return nil, err
	}

	existing, err := s.recordRepo.GetSemesters(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading semesters: %w", err)
	}

	marks := make([]float64, len(req.Subjects))
	subjects := make([]models.Subject, len(req.Subjects))
	for i, sub := range req.Subjects {
		marks[i] = *sub.Marks
		subjects[i] = models.Subject{
			Name:  strings.TrimSpace(sub.Name),
			Marks: *sub.Marks,
		}
	}

	gpas := make([]float64, 0, len(existing)+1)
	for _, sem := range existing {
		gpas = append(gpas, sem.GPA)
	}
	semesterGPA := grading.SemesterGPA(marks)
	gpas = append(gpas, semesterGPA)
	cgpa := grading.CumulativeGPA(gpas)

	semester := &models.Semester{
		UserID:         user.ID,
		SemesterNumber: len(existing) + 1,
		GPA:            semesterGPA,
		Subjects:       subjects,
	}

	if err := s.recordRepo.AppendSemester(ctx, user.ID, semester, cgpa); err != nil {
		return nil, fmt.Errorf("error appending semester: %w", err)
	}

	s.logger.Info().
		Str("email", email).
		Int("semesterNumber", semester.SemesterNumber).
		Float64("gpa", semesterGPA).
		Float64("cgpa", cgpa).
		Msg("Semester recorded")

	resp := toSemesterResponse(*semester)
	return &resp, nil
}

// getStudent resolves an email to a user with role STUDENT.
func (s *recordService) getStudent(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	if user.RoleType != models.RoleStudent {
		return nil, apperrors.ErrNotAStudent
	}
	return user, nil
}

// validateSubjects re-checks the marks server-side; the original relied on
// input widgets alone, which a crafted client can bypass.
func validateSubjects(subjects []dto.SubjectInput) error {
	if len(subjects) == 0 {
		return apperrors.ErrNoSubjects
	}
	for _, sub := range subjects {
		if strings.TrimSpace(sub.Name) == "" {
			return fmt.Errorf("%w: subject name cannot be empty", apperrors.ErrValidationFailed)
		}
		if sub.Marks == nil || !grading.ValidMarks(*sub.Marks) {
			return apperrors.ErrInvalidMarks
		}
	}
	return nil
}

func toSemesterResponse(sem models.Semester) dto.SemesterResponse {
	subjects := make([]dto.SubjectResponse, len(sem.Subjects))
	for i, sub := range sem.Subjects {
		subjects[i] = dto.SubjectResponse{
			Name:  sub.Name,
			Marks: sub.Marks,
		}
	}
	return dto.SemesterResponse{
		SemesterNumber: sem.SemesterNumber,
		GPA:            sem.GPA,
		Subjects:       subjects,
	}
}

func buildRecordResponse(user *models.User, semesters []models.Semester) *dto.RecordResponse {
	semesterResponses := make([]dto.SemesterResponse, len(semesters))
	for i, sem := range semesters {
		semesterResponses[i] = toSemesterResponse(sem)
	}
	return &dto.RecordResponse{
		Email:     user.Email,
		Name:      user.Name,
		Semesters: semesterResponses,
		CGPA:      user.CGPA,
	}
}
