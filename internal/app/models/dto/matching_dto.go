package dto

// Assignment records one booking made by the auto-assignment pass
type Assignment struct {
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`
	CompanyID   string `json:"companyId"`
	CompanyName string `json:"companyName"`
	SlotID      string `json:"slotId"`
	Rank        int    `json:"rank"` // Preference rank that was satisfied
}

// AssignmentReport is the outcome of one auto-assignment pass. A student
// with no available slot across all preferences is listed as unassigned;
// that is expected steady-state data, not an error.
type AssignmentReport struct {
	Assignments []Assignment `json:"assignments"`
	Unassigned  []string     `json:"unassigned"` // Student ids left without a booking
}
