package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uniboard/markbook/internal/app/models"
	"github.com/uniboard/markbook/internal/db"
	"github.com/uniboard/markbook/internal/pkg/dberrors"
)

// IRecordRepository defines the interface for academic record operations
type IRecordRepository interface {
	GetSemesters(ctx context.Context, userID int64) ([]models.Semester, error)
	AppendSemester(ctx context.Context, userID int64, semester *models.Semester, cgpa float64) error
}

// RecordRepository handles semester and subject database operations
type RecordRepository struct {
	db *pgxpool.Pool
}

// NewRecordRepository creates a new RecordRepository
func NewRecordRepository(db *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{
		db: db,
	}
}

// GetSemesters retrieves all semesters of a student in semester order,
// subjects included. A student with no semesters yields an empty slice, not
// an error.
func (r *RecordRepository) GetSemesters(ctx context.Context, userID int64) ([]models.Semester, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, semester_number, gpa, created_at
		FROM semesters
		WHERE user_id = $1
		ORDER BY semester_number`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("error listing semesters: %w", err)
	}
	defer rows.Close()

	var semesters []models.Semester
	semesterIndex := map[int64]int{}
	for rows.Next() {
		var sem models.Semester
		if err := rows.Scan(&sem.ID, &sem.UserID, &sem.SemesterNumber, &sem.GPA, &sem.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning semester row: %w", err)
		}
		sem.Subjects = []models.Subject{}
		semesterIndex[sem.ID] = len(semesters)
		semesters = append(semesters, sem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating semester rows: %w", err)
	}

	if len(semesters) == 0 {
		return []models.Semester{}, nil
	}

	subjectRows, err := r.db.Query(ctx, `
		SELECT s.id, s.semester_id, s.position, s.name, s.marks
		FROM subjects s
		JOIN semesters sem ON sem.id = s.semester_id
		WHERE sem.user_id = $1
		ORDER BY s.semester_id, s.position`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("error listing subjects: %w", err)
	}
	defer subjectRows.Close()

	for subjectRows.Next() {
		var sub models.Subject
		if err := subjectRows.Scan(&sub.ID, &sub.SemesterID, &sub.Position, &sub.Name, &sub.Marks); err != nil {
			return nil, fmt.Errorf("error scanning subject row: %w", err)
		}
		if idx, ok := semesterIndex[sub.SemesterID]; ok {
			semesters[idx].Subjects = append(semesters[idx].Subjects, sub)
		}
	}
	if err := subjectRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subject rows: %w", err)
	}

	return semesters, nil
}

// AppendSemester inserts a semester with its subjects and persists the
// recomputed cumulative GPA on the user row, all inside one transaction.
func (r *RecordRepository) AppendSemester(ctx context.Context, userID int64, semester *models.Semester, cgpa float64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO semesters (user_id, semester_number, gpa)
			VALUES ($1, $2, $3)
			RETURNING id, created_at`,
			userID, semester.SemesterNumber, semester.GPA).
			Scan(&semester.ID, &semester.CreatedAt)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "semesters_user_id_semester_number_key") {
				// Two concurrent appends picked the same number; the caller
				// re-reads and retries at the API level.
				return fmt.Errorf("semester number %d already recorded: %w", semester.SemesterNumber, err)
			}
			return fmt.Errorf("error inserting semester: %w", err)
		}

		for i := range semester.Subjects {
			sub := &semester.Subjects[i]
			sub.SemesterID = semester.ID
			sub.Position = i + 1
			err := tx.QueryRow(ctx, `
				INSERT INTO subjects (semester_id, position, name, marks)
				VALUES ($1, $2, $3, $4)
				RETURNING id`,
				sub.SemesterID, sub.Position, sub.Name, sub.Marks).Scan(&sub.ID)
			if err != nil {
				return fmt.Errorf("error inserting subject: %w", err)
			}
		}

		_, err = tx.Exec(ctx,
			`UPDATE users SET cgpa = $1, updated_at = NOW() WHERE id = $2`, cgpa, userID)
		if err != nil {
			return fmt.Errorf("error updating cgpa: %w", err)
		}

		return nil
	})
}
