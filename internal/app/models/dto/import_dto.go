package dto

// Import records arrive pre-parsed and field-mapped; spreadsheet parsing is
// the caller's concern. Records failing validation are skipped and counted,
// never fatal for the batch.

// CompanyImportData is one externally supplied company record
type CompanyImportData struct {
	Name           string `json:"name" validate:"required"`
	Description    string `json:"description"`
	IntakeNumber   int    `json:"intakeNumber" validate:"gt=0"`
	InterviewPlace string `json:"interviewPlace"`
	ContactPerson  string `json:"contactPerson"`
	Allowance      string `json:"allowance"`
	Remarks        string `json:"remarks"`
}

// StudentImportData is one externally supplied student record
type StudentImportData struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	StudentNumber string `json:"studentId" validate:"required"`
	Tel           string `json:"tel"`
	GPA           string `json:"gpa"`
}

// PreferenceImportData is one externally supplied preference record. The
// student is resolved by external student number and the company by exact
// name match. Rank 0 removes the student's preference for that company,
// matching the single-preference endpoint.
type PreferenceImportData struct {
	StudentNumber string `json:"studentId" validate:"required"`
	CompanyName   string `json:"companyName" validate:"required"`
	Rank          int    `json:"rank" validate:"gte=0"`
}

// ImportCompaniesRequest wraps a batch of company records
type ImportCompaniesRequest struct {
	Records []CompanyImportData `json:"records"`
}

// ImportStudentsRequest wraps a batch of student records
type ImportStudentsRequest struct {
	Records []StudentImportData `json:"records"`
}

// ImportPreferencesRequest wraps a batch of preference records
type ImportPreferencesRequest struct {
	Records []PreferenceImportData `json:"records"`
}

// ImportReport summarizes the outcome of one import batch
type ImportReport struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
