package models

// Company defines a placement provider advertising internship intake slots
type Company struct {
	ID             string `json:"id" example:"a81bc81b-dead-4e5d-abff-90865d1e13b1"` // Unique identifier for the company
	Name           string `json:"name" example:"Tech Innovations Inc."`
	Description    string `json:"description" example:"AI and machine learning solutions"`
	IntakeNumber   int    `json:"intakeNumber" example:"5"` // Advisory intake capacity, not enforced as a cap
	InterviewPlace string `json:"interviewPlace" example:"Room 101"`
	ContactPerson  string `json:"contactPerson" example:"John Smith"`
	Allowance      string `json:"allowance" example:"$500"`
	Remarks        string `json:"remarks,omitempty"`

	// AvailableSlots is a derived view over the canonical slot collection.
	// It is populated on read and never stored; slot data lives once, in the
	// aggregate's flat slot collection.
	AvailableSlots []*InterviewSlot `json:"availableSlots"`
}

// Clone returns a deep copy of the company
func (c *Company) Clone() *Company {
	if c == nil {
		return nil
	}
	out := *c
	out.AvailableSlots = make([]*InterviewSlot, 0, len(c.AvailableSlots))
	for _, slot := range c.AvailableSlots {
		out.AvailableSlots = append(out.AvailableSlots, slot.Clone())
	}
	return &out
}
