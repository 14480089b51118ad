package models

// Student defines a placement candidate
type Student struct {
	ID            string `json:"id" example:"c53c7f72-9b7e-4f3a-8a2d-1e2f3a4b5c6d"` // Internal identifier
	Name          string `json:"name" example:"Alice Chan"`
	Email         string `json:"email" example:"alice@student.edu"`
	StudentNumber string `json:"studentId" example:"S12345"` // External identifier, natural key for imports
	Tel           string `json:"tel" example:"555-0101"`
	GPA           string `json:"gpa" example:"3.6"`

	// Preferences is the student's ranked company interest list, at most one
	// entry per company.
	Preferences []*StudentPreference `json:"preferences"`

	// BookedInterviews is a derived view over the canonical slot collection
	// (slots currently booked by this student). Populated on read, never
	// stored.
	BookedInterviews []*InterviewSlot `json:"bookedInterviews"`
}

// Clone returns a deep copy of the student
func (s *Student) Clone() *Student {
	if s == nil {
		return nil
	}
	out := *s
	out.Preferences = make([]*StudentPreference, 0, len(s.Preferences))
	for _, pref := range s.Preferences {
		p := *pref
		out.Preferences = append(out.Preferences, &p)
	}
	out.BookedInterviews = make([]*InterviewSlot, 0, len(s.BookedInterviews))
	for _, slot := range s.BookedInterviews {
		out.BookedInterviews = append(out.BookedInterviews, slot.Clone())
	}
	return &out
}
