package dto

// CreateCompanyRequest is the payload for registering a new company
type CreateCompanyRequest struct {
	Name           string `json:"name" binding:"required" example:"Tech Innovations Inc."`
	Description    string `json:"description" example:"AI and machine learning solutions"`
	IntakeNumber   int    `json:"intakeNumber" binding:"required,gt=0" example:"5"`
	InterviewPlace string `json:"interviewPlace" example:"Room 101"`
	ContactPerson  string `json:"contactPerson" example:"John Smith"`
	Allowance      string `json:"allowance" example:"$500"`
	Remarks        string `json:"remarks"`
}

// UpdateCompanyRequest is the payload for editing a company. The canonical
// slot collection is never affected by updates; slots change only through
// the slot endpoints.
type UpdateCompanyRequest struct {
	Name           string `json:"name" binding:"required" example:"Tech Innovations Inc."`
	Description    string `json:"description"`
	IntakeNumber   int    `json:"intakeNumber" binding:"required,gt=0"`
	InterviewPlace string `json:"interviewPlace"`
	ContactPerson  string `json:"contactPerson"`
	Allowance      string `json:"allowance"`
	Remarks        string `json:"remarks"`
}
