package services

import (
	"context"
	"sort"

	"github.com/selim/placemate/internal/app/models"
	"github.com/selim/placemate/internal/app/models/dto"
	"github.com/selim/placemate/internal/app/store"
)

// MatchingService runs the greedy preference-ordered auto-assignment pass
type MatchingService struct {
	store *store.Store
}

// NewMatchingService creates a new matching service instance
func NewMatchingService(st *store.Store) *MatchingService {
	return &MatchingService{store: st}
}

// AutoAssignInterviews books one slot per student per pass. Students are
// processed in a deterministic order (internal id), each walking their
// preference list best rank first; the first open slot of the first company
// that has one wins. Every student takes part, bookings they already hold
// included, so repeated passes stack one new booking each time. The whole
// pass is a single atomic mutation and never fails on ordinary exhaustion;
// a student no slot could be found for is reported as unassigned.
func (s *MatchingService) AutoAssignInterviews(ctx context.Context) (*dto.AssignmentReport, error) {
	report := &dto.AssignmentReport{
		Assignments: []dto.Assignment{},
		Unassigned:  []string{},
	}

	err := s.store.Update(ctx, "matching.autoassign", func(st *store.State) error {
		students := make([]*models.Student, len(st.Students))
		copy(students, st.Students)
		sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })

		for _, student := range students {
			if len(student.Preferences) == 0 {
				report.Unassigned = append(report.Unassigned, student.ID)
				continue
			}

			prefs := make([]*models.StudentPreference, len(student.Preferences))
			copy(prefs, student.Preferences)
			sort.SliceStable(prefs, func(i, j int) bool { return prefs[i].Rank < prefs[j].Rank })

			slot, rank := firstOpenSlot(st, prefs)
			if slot == nil {
				report.Unassigned = append(report.Unassigned, student.ID)
				continue
			}

			bookSlot(slot, student.ID)
			company := st.CompanyByID(slot.CompanyID)
			report.Assignments = append(report.Assignments, dto.Assignment{
				StudentID:   student.ID,
				StudentName: student.Name,
				CompanyID:   slot.CompanyID,
				CompanyName: company.Name,
				SlotID:      slot.ID,
				Rank:        rank,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// firstOpenSlot walks the rank-ordered preferences and returns the first
// unbooked available slot, in the slot collection's insertion order per
// company. Preferences pointing at deleted companies are skipped.
func firstOpenSlot(st *store.State, prefs []*models.StudentPreference) (*models.InterviewSlot, int) {
	for _, pref := range prefs {
		if st.CompanyByID(pref.CompanyID) == nil {
			continue
		}
		for _, slot := range st.SlotsForCompany(pref.CompanyID) {
			if !slot.Booked && slot.IsAvailable {
				return slot, pref.Rank
			}
		}
	}
	return nil, 0
}
