package store

import (
	"github.com/selim/placemate/internal/app/models"
)

// State is the aggregate the registries operate on. Slots are stored once,
// in one flat ordered collection; the per-company availableSlots and
// per-student bookedInterviews views are derived from it on read. Companies,
// students and slots all keep insertion order.
type State struct {
	Companies []*models.Company       `json:"companies"`
	Students  []*models.Student       `json:"students"`
	Slots     []*models.InterviewSlot `json:"slots"`
	Offers    []*models.OfferStatus   `json:"offers"`
}

// NewState returns an empty aggregate
func NewState() *State {
	return &State{
		Companies: []*models.Company{},
		Students:  []*models.Student{},
		Slots:     []*models.InterviewSlot{},
		Offers:    []*models.OfferStatus{},
	}
}

// Clone returns a deep copy of the state
func (s *State) Clone() *State {
	out := &State{
		Companies: make([]*models.Company, 0, len(s.Companies)),
		Students:  make([]*models.Student, 0, len(s.Students)),
		Slots:     make([]*models.InterviewSlot, 0, len(s.Slots)),
		Offers:    make([]*models.OfferStatus, 0, len(s.Offers)),
	}
	for _, company := range s.Companies {
		out.Companies = append(out.Companies, company.Clone())
	}
	for _, student := range s.Students {
		out.Students = append(out.Students, student.Clone())
	}
	for _, slot := range s.Slots {
		out.Slots = append(out.Slots, slot.Clone())
	}
	for _, offer := range s.Offers {
		o := *offer
		out.Offers = append(out.Offers, &o)
	}
	return out
}

// CompanyByID returns the company with the given id, or nil
func (s *State) CompanyByID(id string) *models.Company {
	for _, company := range s.Companies {
		if company.ID == id {
			return company
		}
	}
	return nil
}

// StudentByID returns the student with the given internal id, or nil
func (s *State) StudentByID(id string) *models.Student {
	for _, student := range s.Students {
		if student.ID == id {
			return student
		}
	}
	return nil
}

// StudentByNumber returns the student with the given external student
// number, or nil
func (s *State) StudentByNumber(number string) *models.Student {
	for _, student := range s.Students {
		if student.StudentNumber == number {
			return student
		}
	}
	return nil
}

// CompanyByName returns the company with the given exact name, or nil
func (s *State) CompanyByName(name string) *models.Company {
	for _, company := range s.Companies {
		if company.Name == name {
			return company
		}
	}
	return nil
}

// SlotByID returns the slot with the given id, or nil
func (s *State) SlotByID(id string) *models.InterviewSlot {
	for _, slot := range s.Slots {
		if slot.ID == id {
			return slot
		}
	}
	return nil
}

// SlotsForCompany returns the company's slots in insertion order
func (s *State) SlotsForCompany(companyID string) []*models.InterviewSlot {
	var slots []*models.InterviewSlot
	for _, slot := range s.Slots {
		if slot.CompanyID == companyID {
			slots = append(slots, slot)
		}
	}
	return slots
}

// SlotsBookedBy returns the slots currently booked by the student, in
// insertion order
func (s *State) SlotsBookedBy(studentID string) []*models.InterviewSlot {
	var slots []*models.InterviewSlot
	for _, slot := range s.Slots {
		if slot.Booked && slot.StudentID == studentID {
			slots = append(slots, slot)
		}
	}
	return slots
}
