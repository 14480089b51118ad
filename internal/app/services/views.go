package services

import (
	"github.com/selim/placemate/internal/app/models"
	"github.com/selim/placemate/internal/app/store"
)

// companyView returns a copy of the company with its derived slot view
// attached. Slot data is stored once in the aggregate's flat collection;
// the view is recomputed on every read, so it can never drift.
func companyView(st *store.State, company *models.Company) *models.Company {
	out := company.Clone()
	out.AvailableSlots = make([]*models.InterviewSlot, 0)
	for _, slot := range st.SlotsForCompany(company.ID) {
		out.AvailableSlots = append(out.AvailableSlots, slot.Clone())
	}
	return out
}

// studentView returns a copy of the student with the derived booked
// interview view attached
func studentView(st *store.State, student *models.Student) *models.Student {
	out := student.Clone()
	out.BookedInterviews = make([]*models.InterviewSlot, 0)
	for _, slot := range st.SlotsBookedBy(student.ID) {
		out.BookedInterviews = append(out.BookedInterviews, slot.Clone())
	}
	return out
}

// bookSlot marks the slot booked for the student. A previous booking by
// another student is implicitly released: the derived booked-interview views
// follow the canonical slot.
func bookSlot(slot *models.InterviewSlot, studentID string) {
	slot.Booked = true
	slot.StudentID = studentID
}

// releaseSlot clears a booking. The slot survives and is offerable again.
func releaseSlot(slot *models.InterviewSlot) {
	slot.Booked = false
	slot.StudentID = ""
}

// dropOffers removes every offer row matching the predicate
func dropOffers(st *store.State, match func(*models.OfferStatus) bool) {
	kept := make([]*models.OfferStatus, 0, len(st.Offers))
	for _, offer := range st.Offers {
		if !match(offer) {
			kept = append(kept, offer)
		}
	}
	st.Offers = kept
}
