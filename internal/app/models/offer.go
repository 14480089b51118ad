package models

// OfferStatusValue defines the state of an internship offer
type OfferStatusValue string

const (
	OfferPending   OfferStatusValue = "pending"
	OfferOffered   OfferStatusValue = "offered"
	OfferAccepted  OfferStatusValue = "accepted"
	OfferRejected  OfferStatusValue = "rejected"
	OfferWithdrawn OfferStatusValue = "withdrawn"
)

// Valid reports whether the value is a known offer status
func (v OfferStatusValue) Valid() bool {
	switch v {
	case OfferPending, OfferOffered, OfferAccepted, OfferRejected, OfferWithdrawn:
		return true
	}
	return false
}

// OfferStatus tracks the offer state between one student and one company.
// Unique per (StudentID, CompanyID) pair.
type OfferStatus struct {
	StudentID string           `json:"studentId"`
	CompanyID string           `json:"companyId"`
	Status    OfferStatusValue `json:"status" example:"offered"`
}
