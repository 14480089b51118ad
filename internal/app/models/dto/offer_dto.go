package dto

// SetOfferStatusRequest upserts the offer status for a student/company pair
type SetOfferStatusRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	CompanyID string `json:"companyId" binding:"required"`
	Status    string `json:"status" binding:"required" example:"offered"`
}
