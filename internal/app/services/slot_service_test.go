package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selim/placemate/internal/pkg/apperrors"
)

func TestNormalizeTime(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "0930", want: "0930"},
		{in: "09:30", want: "0930"},
		{in: "930", want: "930"},
		{in: "9:30", want: "930"},
		{in: "2359", want: "2359"},
		{in: "000", want: "000"},
		{in: "2400", wantErr: true},
		{in: "0960", wantErr: true},
		{in: "12", wantErr: true},
		{in: "12345", wantErr: true},
		{in: "ab30", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		got, err := normalizeTime(tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, apperrors.ErrInvalidTime, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestAddTimeslot(t *testing.T) {
	f := newFixture()
	company := f.addCompany(t, "Acme")

	slot, err := f.slots.AddTimeslot(f.ctx, company.ID, "2026-06-01", "09:30", "10:00")
	require.NoError(t, err)
	assert.Equal(t, "0930", slot.StartTime)
	assert.Equal(t, "1000", slot.EndTime)
	assert.False(t, slot.Booked)
	assert.True(t, slot.IsAvailable)

	got, err := f.companies.GetCompanyByID(f.ctx, company.ID)
	require.NoError(t, err)
	require.Len(t, got.AvailableSlots, 1)
	assert.Equal(t, slot.ID, got.AvailableSlots[0].ID)
}

func TestAddTimeslotValidation(t *testing.T) {
	f := newFixture()
	company := f.addCompany(t, "Acme")

	_, err := f.slots.AddTimeslot(f.ctx, company.ID, "01-06-2026", "0930", "1000")
	assert.ErrorIs(t, err, apperrors.ErrInvalidDate)

	_, err = f.slots.AddTimeslot(f.ctx, company.ID, "2026-06-01", "2500", "1000")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTime)

	_, err = f.slots.AddTimeslot(f.ctx, "missing", "2026-06-01", "0930", "1000")
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)
}

func TestBookInterviewSlot(t *testing.T) {
	f := newFixture()
	company := f.addCompany(t, "Acme")
	student := f.addStudent(t, "Alice Chan", "S100")
	slot := f.addSlot(t, company.ID, "2026-06-01", "0930", "1000")

	require.NoError(t, f.slots.BookInterviewSlot(f.ctx, slot.ID, student.ID))

	got, err := f.students.GetStudentByID(f.ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, got.BookedInterviews, 1)
	assert.Equal(t, slot.ID, got.BookedInterviews[0].ID)

	// Booked slots drop out of the open-slot listing
	open, err := f.slots.GetAvailableSlotsForCompany(f.ctx, company.ID)
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestBookInterviewSlotErrors(t *testing.T) {
	f := newFixture()
	company := f.addCompany(t, "Acme")
	student := f.addStudent(t, "Alice Chan", "S100")
	slot := f.addSlot(t, company.ID, "2026-06-01", "0930", "1000")

	err := f.slots.BookInterviewSlot(f.ctx, "missing", student.ID)
	assert.ErrorIs(t, err, apperrors.ErrSlotNotFound)

	err = f.slots.BookInterviewSlot(f.ctx, slot.ID, "missing")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	_, err = f.slots.ToggleSlotAvailability(f.ctx, slot.ID)
	require.NoError(t, err)
	err = f.slots.BookInterviewSlot(f.ctx, slot.ID, student.ID)
	assert.ErrorIs(t, err, apperrors.ErrSlotNotAvailable)
}

func TestRebookingMovesTheSlot(t *testing.T) {
	f := newFixture()
	company := f.addCompany(t, "Acme")
	alice := f.addStudent(t, "Alice Chan", "S100")
	brian := f.addStudent(t, "Brian Ho", "S101")
	slot := f.addSlot(t, company.ID, "2026-06-01", "0930", "1000")

	require.NoError(t, f.slots.BookInterviewSlot(f.ctx, slot.ID, alice.ID))
	require.NoError(t, f.slots.BookInterviewSlot(f.ctx, slot.ID, brian.ID))

	gotAlice, err := f.students.GetStudentByID(f.ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, gotAlice.BookedInterviews, "previous booking must be released")

	gotBrian, err := f.students.GetStudentByID(f.ctx, brian.ID)
	require.NoError(t, err)
	require.Len(t, gotBrian.BookedInterviews, 1)
	assert.Equal(t, slot.ID, gotBrian.BookedInterviews[0].ID)
}

func TestBookingOwnSlotIsIdempotent(t *testing.T) {
	f := newFixture()
	company := f.addCompany(t, "Acme")
	student := f.addStudent(t, "Alice Chan", "S100")
	slot := f.addSlot(t, company.ID, "2026-06-01", "0930", "1000")

	require.NoError(t, f.slots.BookInterviewSlot(f.ctx, slot.ID, student.ID))
	require.NoError(t, f.slots.BookInterviewSlot(f.ctx, slot.ID, student.ID))

	got, err := f.students.GetStudentByID(f.ctx, student.ID)
	require.NoError(t, err)
	assert.Len(t, got.BookedInterviews, 1)
}

func TestUnbookInterviewSlot(t *testing.T) {
	f := newFixture()
	company := f.addCompany(t, "Acme")
	student := f.addStudent(t, "Alice Chan", "S100")
	slot := f.addSlot(t, company.ID, "2026-06-01", "0930", "1000")

	err := f.slots.UnbookInterviewSlot(f.ctx, slot.ID)
	assert.ErrorIs(t, err, apperrors.ErrSlotNotBooked)

	require.NoError(t, f.slots.BookInterviewSlot(f.ctx, slot.ID, student.ID))
	require.NoError(t, f.slots.UnbookInterviewSlot(f.ctx, slot.ID))

	open, err := f.slots.GetAvailableSlotsForCompany(f.ctx, company.ID)
	require.NoError(t, err)
	assert.Len(t, open, 1)
}

func TestRemoveTimeslot(t *testing.T) {
	f := newFixture()
	company := f.addCompany(t, "Acme")
	student := f.addStudent(t, "Alice Chan", "S100")
	slot := f.addSlot(t, company.ID, "2026-06-01", "0930", "1000")

	require.NoError(t, f.slots.BookInterviewSlot(f.ctx, slot.ID, student.ID))
	err := f.slots.RemoveTimeslot(f.ctx, slot.ID)
	assert.ErrorIs(t, err, apperrors.ErrSlotBooked)

	require.NoError(t, f.slots.UnbookInterviewSlot(f.ctx, slot.ID))
	require.NoError(t, f.slots.RemoveTimeslot(f.ctx, slot.ID))

	err = f.slots.RemoveTimeslot(f.ctx, slot.ID)
	assert.ErrorIs(t, err, apperrors.ErrSlotNotFound)
}

func TestToggleSlotAvailability(t *testing.T) {
	f := newFixture()
	company := f.addCompany(t, "Acme")
	slot := f.addSlot(t, company.ID, "2026-06-01", "0930", "1000")

	available, err := f.slots.ToggleSlotAvailability(f.ctx, slot.ID)
	require.NoError(t, err)
	assert.False(t, available)

	available, err = f.slots.ToggleSlotAvailability(f.ctx, slot.ID)
	require.NoError(t, err)
	assert.True(t, available)

	student := f.addStudent(t, "Alice Chan", "S100")
	require.NoError(t, f.slots.BookInterviewSlot(f.ctx, slot.ID, student.ID))
	_, err = f.slots.ToggleSlotAvailability(f.ctx, slot.ID)
	assert.ErrorIs(t, err, apperrors.ErrSlotBooked)
}

func TestListBookedSlotsSorting(t *testing.T) {
	f := newFixture()
	zenith := f.addCompany(t, "Zenith")
	acme := f.addCompany(t, "Acme")
	student := f.addStudent(t, "Alice Chan", "S100")

	late := f.addSlot(t, zenith.ID, "2026-06-02", "0900", "0930")
	early := f.addSlot(t, acme.ID, "2026-06-01", "1400", "1430")
	mid := f.addSlot(t, zenith.ID, "2026-06-01", "1500", "1530")

	for _, id := range []string{late.ID, early.ID, mid.ID} {
		require.NoError(t, f.slots.BookInterviewSlot(f.ctx, id, student.ID))
	}

	byDate, err := f.slots.ListBookedSlots(f.ctx, ScheduleSortDate)
	require.NoError(t, err)
	require.Len(t, byDate, 3)
	assert.Equal(t, early.ID, byDate[0].ID)
	assert.Equal(t, mid.ID, byDate[1].ID)
	assert.Equal(t, late.ID, byDate[2].ID)

	byCompany, err := f.slots.ListBookedSlots(f.ctx, ScheduleSortCompany)
	require.NoError(t, err)
	require.Len(t, byCompany, 3)
	assert.Equal(t, early.ID, byCompany[0].ID) // Acme first
	assert.Equal(t, mid.ID, byCompany[1].ID)   // Zenith by date
	assert.Equal(t, late.ID, byCompany[2].ID)
}
