package models

// StudentPreference is a ranked interest relation between a student and a
// company. Rank 1 is the most preferred; rank 0 is never stored (it is the
// removal sentinel at the registry boundary).
type StudentPreference struct {
	StudentID string `json:"studentId"`
	CompanyID string `json:"companyId"`
	Rank      int    `json:"rank" example:"1"`
}
