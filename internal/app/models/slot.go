package models

import "time"

// InterviewSlot defines a bookable time window for one company.
// Booked implies StudentID is set and IsAvailable is true; a booked slot
// cannot be toggled unavailable.
type InterviewSlot struct {
	ID          string    `json:"id" example:"7f9c24e5-2f8a-4b1d-9c3e-5a6b7c8d9e0f"`
	Date        time.Time `json:"date"`                     // Calendar date of the interview
	StartTime   string    `json:"startTime" example:"0930"` // Time of day, 24-hour clock, no separator
	EndTime     string    `json:"endTime" example:"1000"`
	CompanyID   string    `json:"companyId"` // Owning company, required
	Booked      bool      `json:"booked"`
	IsAvailable bool      `json:"isAvailable"`
	StudentID   string    `json:"studentId,omitempty"` // Set iff Booked
}

// Clone returns a copy of the slot
func (s *InterviewSlot) Clone() *InterviewSlot {
	if s == nil {
		return nil
	}
	out := *s
	return &out
}
