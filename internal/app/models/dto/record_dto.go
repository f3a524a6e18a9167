package dto

// SubjectInput is one graded subject submitted for a new semester
type SubjectInput struct {
	Name  string   `json:"name" binding:"required" example:"Mathematics"`
	Marks *float64 `json:"marks" binding:"required,gte=0,lte=100" example:"80"` // Pointer so 0 still satisfies "required"
}

// AddSemesterRequest represents the subjects of one new semester, in the
// order they should be recorded
type AddSemesterRequest struct {
	Subjects []SubjectInput `json:"subjects" binding:"required,min=1,dive"`
}

// SubjectResponse is one graded subject in a record view
type SubjectResponse struct {
	Name  string  `json:"name" example:"Mathematics"`
	Marks float64 `json:"marks" example:"80"`
}

// SemesterResponse is one semester in a record view
type SemesterResponse struct {
	SemesterNumber int               `json:"semesterNumber" example:"1"`
	GPA            float64           `json:"gpa" example:"8.5"`
	Subjects       []SubjectResponse `json:"subjects"`
}

// RecordResponse is the full academic record of one student
type RecordResponse struct {
	Email     string             `json:"email" example:"student@example.com"`
	Name      string             `json:"name" example:"Jane Doe"`
	Semesters []SemesterResponse `json:"semesters"`
	CGPA      *float64           `json:"cgpa,omitempty" example:"9.25"`
}
