package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/selim/placemate/internal/app/models"
	"github.com/selim/placemate/internal/app/store"
	"github.com/selim/placemate/internal/pkg/apperrors"
)

// SlotService is the sole authority for interview-slot lifecycle and
// booking invariants
type SlotService struct {
	store *store.Store
}

// NewSlotService creates a new slot service instance
func NewSlotService(st *store.Store) *SlotService {
	return &SlotService{store: st}
}

const dateLayout = "2006-01-02"

// normalizeTime strips the optional colon separator and validates the
// result as a 3-4 digit 24-hour time of day, e.g. "930" or "0930" for 9:30.
func normalizeTime(raw string) (string, error) {
	t := strings.ReplaceAll(strings.TrimSpace(raw), ":", "")
	if len(t) < 3 || len(t) > 4 {
		return "", fmt.Errorf("%w: %q must be 3-4 digits", apperrors.ErrInvalidTime, raw)
	}
	for _, ch := range t {
		if ch < '0' || ch > '9' {
			return "", fmt.Errorf("%w: %q contains non-digit characters", apperrors.ErrInvalidTime, raw)
		}
	}

	minute := (int(t[len(t)-2]-'0') * 10) + int(t[len(t)-1]-'0')
	hour := 0
	for _, ch := range t[:len(t)-2] {
		hour = hour*10 + int(ch-'0')
	}
	if hour > 23 || minute > 59 {
		return "", fmt.Errorf("%w: %q is out of range", apperrors.ErrInvalidTime, raw)
	}

	return t, nil
}

// AddTimeslot creates a slot for the company, available and unbooked
func (s *SlotService) AddTimeslot(ctx context.Context, companyID, date, startTime, endTime string) (*models.InterviewSlot, error) {
	slotDate, err := time.Parse(dateLayout, strings.TrimSpace(date))
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid YYYY-MM-DD date", apperrors.ErrInvalidDate, date)
	}

	start, err := normalizeTime(startTime)
	if err != nil {
		return nil, err
	}
	end, err := normalizeTime(endTime)
	if err != nil {
		return nil, err
	}

	var created *models.InterviewSlot
	err = s.store.Update(ctx, "slot.add", func(st *store.State) error {
		if st.CompanyByID(companyID) == nil {
			return apperrors.ErrCompanyNotFound
		}

		slot := &models.InterviewSlot{
			ID:          uuid.New().String(),
			Date:        slotDate,
			StartTime:   start,
			EndTime:     end,
			CompanyID:   companyID,
			Booked:      false,
			IsAvailable: true,
		}
		st.Slots = append(st.Slots, slot)
		created = slot.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RemoveTimeslot deletes an unbooked slot. Removing a booked slot is
// forbidden; it has to be unbooked first so the cancellation is an explicit
// step the coordinator takes.
func (s *SlotService) RemoveTimeslot(ctx context.Context, slotID string) error {
	return s.store.Update(ctx, "slot.remove", func(st *store.State) error {
		slot := st.SlotByID(slotID)
		if slot == nil {
			return apperrors.ErrSlotNotFound
		}
		if slot.Booked {
			return fmt.Errorf("%w: unbook the slot before removing it", apperrors.ErrSlotBooked)
		}

		kept := make([]*models.InterviewSlot, 0, len(st.Slots)-1)
		for _, sl := range st.Slots {
			if sl.ID != slotID {
				kept = append(kept, sl)
			}
		}
		st.Slots = kept
		return nil
	})
}

// ToggleSlotAvailability flips the slot's availability and returns the new
// value. Fails on booked slots.
func (s *SlotService) ToggleSlotAvailability(ctx context.Context, slotID string) (bool, error) {
	var available bool
	err := s.store.Update(ctx, "slot.toggle", func(st *store.State) error {
		slot := st.SlotByID(slotID)
		if slot == nil {
			return apperrors.ErrSlotNotFound
		}
		if slot.Booked {
			return fmt.Errorf("%w: cannot change availability of a booked slot", apperrors.ErrSlotBooked)
		}

		slot.IsAvailable = !slot.IsAvailable
		available = slot.IsAvailable
		return nil
	})
	return available, err
}

// BookInterviewSlot books the slot for the student. Booking a slot already
// held by another student rebooks it: the previous booking is released as
// part of the same mutation. Booking an already-self-booked slot is a no-op.
func (s *SlotService) BookInterviewSlot(ctx context.Context, slotID, studentID string) error {
	return s.store.Update(ctx, "slot.book", func(st *store.State) error {
		slot := st.SlotByID(slotID)
		if slot == nil {
			return apperrors.ErrSlotNotFound
		}
		if st.StudentByID(studentID) == nil {
			return apperrors.ErrStudentNotFound
		}
		if !slot.IsAvailable {
			return apperrors.ErrSlotNotAvailable
		}

		bookSlot(slot, studentID)
		return nil
	})
}

// UnbookInterviewSlot releases a booking. The slot survives and becomes
// bookable again.
func (s *SlotService) UnbookInterviewSlot(ctx context.Context, slotID string) error {
	return s.store.Update(ctx, "slot.unbook", func(st *store.State) error {
		slot := st.SlotByID(slotID)
		if slot == nil {
			return apperrors.ErrSlotNotFound
		}
		if !slot.Booked {
			return apperrors.ErrSlotNotBooked
		}

		releaseSlot(slot)
		return nil
	})
}

// GetAvailableSlotsForCompany returns the company's unbooked, available
// slots in insertion order
func (s *SlotService) GetAvailableSlotsForCompany(ctx context.Context, companyID string) ([]*models.InterviewSlot, error) {
	var slots []*models.InterviewSlot
	err := s.store.View(ctx, func(st *store.State) error {
		if st.CompanyByID(companyID) == nil {
			return apperrors.ErrCompanyNotFound
		}

		slots = make([]*models.InterviewSlot, 0)
		for _, slot := range st.SlotsForCompany(companyID) {
			if !slot.Booked && slot.IsAvailable {
				slots = append(slots, slot.Clone())
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// Schedule sort orders
const (
	ScheduleSortDate    = "date"
	ScheduleSortCompany = "company"
)

// ListBookedSlots returns every booked slot, sorted by date and start time,
// or by company name first when sortBy is "company"
func (s *SlotService) ListBookedSlots(ctx context.Context, sortBy string) ([]*models.InterviewSlot, error) {
	var slots []*models.InterviewSlot
	err := s.store.View(ctx, func(st *store.State) error {
		slots = make([]*models.InterviewSlot, 0)
		companyNames := make(map[string]string, len(st.Companies))
		for _, company := range st.Companies {
			companyNames[company.ID] = company.Name
		}

		for _, slot := range st.Slots {
			if slot.Booked {
				slots = append(slots, slot.Clone())
			}
		}

		sort.SliceStable(slots, func(i, j int) bool {
			a, b := slots[i], slots[j]
			if sortBy == ScheduleSortCompany && companyNames[a.CompanyID] != companyNames[b.CompanyID] {
				return companyNames[a.CompanyID] < companyNames[b.CompanyID]
			}
			if !a.Date.Equal(b.Date) {
				return a.Date.Before(b.Date)
			}
			return a.StartTime < b.StartTime
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return slots, nil
}
