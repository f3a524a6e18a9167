package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uniboard/markbook/internal/app/models"
	"github.com/uniboard/markbook/internal/app/models/dto"
	"github.com/uniboard/markbook/internal/pkg/apperrors"
)

func newRecordTestService(t *testing.T) (RecordService, *fakeUserRepo, *fakeRecordRepo) {
	t.Helper()

	userRepo := newFakeUserRepo()
	recordRepo := newFakeRecordRepo(userRepo)
	svc := NewRecordService(userRepo, recordRepo, zerolog.Nop())
	return svc, userRepo, recordRepo
}

func marks(v float64) *float64 { return &v }

func TestGetRecord(t *testing.T) {
	svc, userRepo, recordRepo := newRecordTestService(t)
	student := seedUser(t, userRepo, "jane@example.com", "password123", models.RoleStudent)
	seedUser(t, userRepo, "staff@example.com", "staff123", models.RoleStaff)

	t.Run("EmptyRecord", func(t *testing.T) {
		record, err := svc.GetRecord(context.Background(), "jane@example.com")
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", record.Email)
		assert.Empty(t, record.Semesters)
		assert.Nil(t, record.CGPA)
	})

	t.Run("WithSemesters", func(t *testing.T) {
		cgpa := 8.5
		require.NoError(t, recordRepo.AppendSemester(context.Background(), student.ID, &models.Semester{
			UserID:         student.ID,
			SemesterNumber: 1,
			GPA:            8.5,
			Subjects:       []models.Subject{{Name: "Algorithms", Marks: 80}, {Name: "Databases", Marks: 90}},
		}, cgpa))

		record, err := svc.GetRecord(context.Background(), "jane@example.com")
		require.NoError(t, err)
		require.Len(t, record.Semesters, 1)
		assert.Equal(t, 1, record.Semesters[0].SemesterNumber)
		assert.InDelta(t, 8.5, record.Semesters[0].GPA, 0.0001)
		require.NotNil(t, record.CGPA)
		assert.InDelta(t, 8.5, *record.CGPA, 0.0001)
	})

	t.Run("UnknownStudent", func(t *testing.T) {
		_, err := svc.GetRecord(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})

	t.Run("StaffIsNotAStudent", func(t *testing.T) {
		_, err := svc.GetRecord(context.Background(), "staff@example.com")
		assert.ErrorIs(t, err, apperrors.ErrNotAStudent)
	})
}

func TestAddSemester(t *testing.T) {
	svc, userRepo, _ := newRecordTestService(t)
	seedUser(t, userRepo, "jane@example.com", "password123", models.RoleStudent)

	first, err := svc.AddSemester(context.Background(), "jane@example.com", &dto.AddSemesterRequest{
		Subjects: []dto.SubjectInput{
			{Name: "Algorithms", Marks: marks(80)},
			{Name: "Databases", Marks: marks(90)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.SemesterNumber)
	assert.InDelta(t, 8.5, first.GPA, 0.0001)
	require.Len(t, first.Subjects, 2)
	assert.Equal(t, "Algorithms", first.Subjects[0].Name)

	second, err := svc.AddSemester(context.Background(), "jane@example.com", &dto.AddSemesterRequest{
		Subjects: []dto.SubjectInput{
			{Name: "Operating Systems", Marks: marks(100)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.SemesterNumber)
	assert.InDelta(t, 10.0, second.GPA, 0.0001)

	// CGPA is the mean of all semester GPAs
	record, err := svc.GetRecord(context.Background(), "jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, record.CGPA)
	assert.InDelta(t, 9.25, *record.CGPA, 0.0001)
	require.Len(t, record.Semesters, 2)
}

func TestAddSemesterValidation(t *testing.T) {
	svc, userRepo, _ := newRecordTestService(t)
	seedUser(t, userRepo, "jane@example.com", "password123", models.RoleStudent)

	t.Run("NoSubjects", func(t *testing.T) {
		_, err := svc.AddSemester(context.Background(), "jane@example.com", &dto.AddSemesterRequest{})
		assert.ErrorIs(t, err, apperrors.ErrNoSubjects)
	})

	t.Run("MarksOutOfRange", func(t *testing.T) {
		_, err := svc.AddSemester(context.Background(), "jane@example.com", &dto.AddSemesterRequest{
			Subjects: []dto.SubjectInput{{Name: "Algorithms", Marks: marks(101)}},
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidMarks)

		_, err = svc.AddSemester(context.Background(), "jane@example.com", &dto.AddSemesterRequest{
			Subjects: []dto.SubjectInput{{Name: "Algorithms", Marks: marks(-1)}},
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidMarks)
	})

	t.Run("MissingMarks", func(t *testing.T) {
		_, err := svc.AddSemester(context.Background(), "jane@example.com", &dto.AddSemesterRequest{
			Subjects: []dto.SubjectInput{{Name: "Algorithms"}},
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidMarks)
	})

	t.Run("BlankSubjectName", func(t *testing.T) {
		_, err := svc.AddSemester(context.Background(), "jane@example.com", &dto.AddSemesterRequest{
			Subjects: []dto.SubjectInput{{Name: "   ", Marks: marks(75)}},
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("UnknownStudent", func(t *testing.T) {
		_, err := svc.AddSemester(context.Background(), "nobody@example.com", &dto.AddSemesterRequest{
			Subjects: []dto.SubjectInput{{Name: "Algorithms", Marks: marks(75)}},
		})
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})
}
