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
	"github.com/uniboard/markbook/internal/pkg/auth"
	"github.com/uniboard/markbook/internal/pkg/validation"
)

// StudentService handles staff-side student account management
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	ListStudents(ctx context.Context) (*dto.StudentListResponse, error)
	DeleteStudent(ctx context.Context, email string) error
}

type studentService struct {
	userRepo   repositories.IUserRepository
	recordRepo repositories.IRecordRepository
	logger     zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	userRepo repositories.IUserRepository,
	recordRepo repositories.IRecordRepository,
	logger zerolog.Logger,
) StudentService {
	return &studentService{
		userRepo:   userRepo,
		recordRepo: recordRepo,
		logger:     logger,
	}
}

// CreateStudent creates a student account. Creating an email that already
// exists replaces that account's name and password but leaves any recorded
// semesters untouched.
func (s *studentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validation.CompiledPatterns.Email.MatchString(email) {
		return nil, apperrors.ErrInvalidEmail
	}

	name := strings.TrimSpace(req.Name)
	ok := validation.NewStringValidation(name).
		WithMinLength(validation.NameMinLength).
		WithMaxLength(validation.NameMaxLength).
		Validate()
	if !ok {
		return nil, fmt.Errorf("%w: name must be between %d and %d characters",
			apperrors.ErrValidationFailed, validation.NameMinLength, validation.NameMaxLength)
	}

	if len(req.Password) < validation.PasswordMinLength {
		return nil, apperrors.ErrInvalidPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Password: hash,
		Name:     name,
		RoleType: models.RoleStudent,
	}
	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Int64("userID", user.ID).Msg("Student account created")

	return &dto.StudentResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		CGPA:  user.CGPA,
	}, nil
}

// ListStudents returns every student with their full record. The listing is a
// full scan ordered by email; there is no pagination.
func (s *studentService) ListStudents(ctx context.Context) (*dto.StudentListResponse, error) {
	users, err := s.userRepo.ListByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	students := make([]dto.RecordResponse, 0, len(users))
	for _, user := range users {
		semesters, err := s.recordRepo.GetSemesters(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("error loading semesters for %s: %w", user.Email, err)
		}
		students = append(students, *buildRecordResponse(user, semesters))
	}

	return &dto.StudentListResponse{
		Students: students,
		Count:    len(students),
	}, nil
}

// DeleteStudent removes the student account together with all semesters and
// subjects. The removal is a single statement with cascading foreign keys,
// so no orphaned record can survive a crash.
func (s *studentService) DeleteStudent(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error looking up user: %w", err)
	}

	// Staff accounts are not deletable through this endpoint
	if user.RoleType != models.RoleStudent {
		return apperrors.ErrNotAStudent
	}

	if err := s.userRepo.DeleteByEmail(ctx, email); err != nil {
		return err
	}

	s.logger.Info().Str("email", email).Msg("Student account deleted")
	return nil
}
