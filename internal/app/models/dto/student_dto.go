package dto

// CreateStudentRequest is the payload for registering a new student
type CreateStudentRequest struct {
	Name          string `json:"name" binding:"required" example:"Alice Chan"`
	Email         string `json:"email" binding:"required,email" example:"alice@student.edu"`
	StudentNumber string `json:"studentId" binding:"required" example:"S12345"`
	Tel           string `json:"tel" example:"555-0101"`
	GPA           string `json:"gpa" example:"3.6"`
}

// UpdateStudentRequest is the payload for editing a student's own fields.
// Preferences and bookings are managed through their own endpoints.
type UpdateStudentRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	StudentNumber string `json:"studentId" binding:"required"`
	Tel           string `json:"tel"`
	GPA           string `json:"gpa"`
}

// SetPreferenceRequest upserts a student's ranked interest in a company.
// Rank 0 removes the preference for that company.
type SetPreferenceRequest struct {
	CompanyID string `json:"companyId" binding:"required"`
	Rank      int    `json:"rank" binding:"gte=0" example:"1"`
}
