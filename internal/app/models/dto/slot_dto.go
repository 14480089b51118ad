package dto

// CreateSlotRequest is the payload for adding an interview timeslot.
// Times accept "0930" or "09:30"; the separator is stripped on intake.
type CreateSlotRequest struct {
	Date      string `json:"date" binding:"required" example:"2025-06-02"` // YYYY-MM-DD
	StartTime string `json:"startTime" binding:"required" example:"0930"`
	EndTime   string `json:"endTime" binding:"required" example:"1000"`
}

// BookSlotRequest books a slot for a student
type BookSlotRequest struct {
	StudentID string `json:"studentId" binding:"required"`
}

// ToggleAvailabilityResponse reports the availability state after a toggle
type ToggleAvailabilityResponse struct {
	SlotID      string `json:"slotId"`
	IsAvailable bool   `json:"isAvailable"`
}
