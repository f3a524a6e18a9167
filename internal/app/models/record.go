package models

import "time"

// Subject is one graded subject inside a semester.
type Subject struct {
	ID         int64   `json:"id" db:"id"`
	SemesterID int64   `json:"semesterId" db:"semester_id"`
	Position   int     `json:"position" db:"position"` // Preserves the order subjects were entered in
	Name       string  `json:"name" db:"name" example:"Mathematics"`
	Marks      float64 `json:"marks" db:"marks" example:"80"` // In [0,100]
}

// Semester is one recorded semester for a student. Semester numbers are
// assigned sequentially per student starting at 1.
type Semester struct {
	ID             int64     `json:"id" db:"id"`
	UserID         int64     `json:"userId" db:"user_id"`
	SemesterNumber int       `json:"semesterNumber" db:"semester_number" example:"1"`
	GPA            float64   `json:"gpa" db:"gpa" example:"8.5"` // Derived from this semester's marks, never edited directly
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	Subjects       []Subject `json:"subjects"` // Relation, no db tag
}
