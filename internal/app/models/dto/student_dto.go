package dto

// CreateStudentRequest represents a staff request to create a student account
type CreateStudentRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100" example:"Jane Doe"`
	Email    string `json:"email" binding:"required,email" example:"student@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"changeme1"`
}

// StudentResponse is one student account in a staff listing
type StudentResponse struct {
	ID    int64    `json:"id" example:"1"`
	Email string   `json:"email" example:"student@example.com"`
	Name  string   `json:"name" example:"Jane Doe"`
	CGPA  *float64 `json:"cgpa,omitempty" example:"8.5"`
}

// StudentListResponse is the full student listing with records
type StudentListResponse struct {
	Students []RecordResponse `json:"students"`
	Count    int              `json:"count" example:"2"`
}
