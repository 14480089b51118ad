package services

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoAssignFollowsPreferenceOrder(t *testing.T) {
	f := newFixture()
	acme := f.addCompany(t, "Acme")
	globex := f.addCompany(t, "Globex")
	student := f.addStudent(t, "Alice Chan", "S100")

	f.addSlot(t, acme.ID, "2026-06-01", "0900", "0930")
	f.addSlot(t, globex.ID, "2026-06-01", "1000", "1030")

	f.setPreference(t, student.ID, globex.ID, 1)
	f.setPreference(t, student.ID, acme.ID, 2)

	report, err := f.matching.AutoAssignInterviews(f.ctx)
	require.NoError(t, err)
	require.Len(t, report.Assignments, 1)
	assert.Empty(t, report.Unassigned)

	a := report.Assignments[0]
	assert.Equal(t, student.ID, a.StudentID)
	assert.Equal(t, globex.ID, a.CompanyID, "rank 1 company wins")
	assert.Equal(t, 1, a.Rank)
}

func TestAutoAssignTakesFirstSlotInInsertionOrder(t *testing.T) {
	f := newFixture()
	acme := f.addCompany(t, "Acme")
	student := f.addStudent(t, "Ann Lau", "S100")
	first := f.addSlot(t, acme.ID, "2026-06-01", "0900", "0930")
	second := f.addSlot(t, acme.ID, "2026-06-01", "1000", "1030")
	f.setPreference(t, student.ID, acme.ID, 1)

	report, err := f.matching.AutoAssignInterviews(f.ctx)
	require.NoError(t, err)
	require.Len(t, report.Assignments, 1)
	assert.Equal(t, first.ID, report.Assignments[0].SlotID)

	open, err := f.slots.GetAvailableSlotsForCompany(f.ctx, acme.ID)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, second.ID, open[0].ID)
}

func TestAutoAssignFallsBackToLowerPreference(t *testing.T) {
	f := newFixture()
	acme := f.addCompany(t, "Acme")
	globex := f.addCompany(t, "Globex")
	alice := f.addStudent(t, "Alice Chan", "S100")
	slot := f.addSlot(t, globex.ID, "2026-06-01", "1000", "1030")
	f.addSlot(t, acme.ID, "2026-06-01", "0900", "0930")

	// First choice already booked by someone else
	brian := f.addStudent(t, "Brian Ho", "S101")
	require.NoError(t, f.slots.BookInterviewSlot(f.ctx, slot.ID, brian.ID))

	f.setPreference(t, alice.ID, globex.ID, 1)
	f.setPreference(t, alice.ID, acme.ID, 2)

	report, err := f.matching.AutoAssignInterviews(f.ctx)
	require.NoError(t, err)
	require.Len(t, report.Assignments, 1)
	assert.Equal(t, acme.ID, report.Assignments[0].CompanyID)
	assert.Equal(t, 2, report.Assignments[0].Rank)
}

func TestAutoAssignIncludesAlreadyBookedStudents(t *testing.T) {
	// A student holding a booking still takes part in the pass; bookings
	// accumulate across passes.
	f := newFixture()
	acme := f.addCompany(t, "Acme")
	globex := f.addCompany(t, "Globex")
	student := f.addStudent(t, "Alice Chan", "S100")
	held := f.addSlot(t, globex.ID, "2026-06-01", "1000", "1030")
	open := f.addSlot(t, acme.ID, "2026-06-01", "0900", "0930")

	require.NoError(t, f.slots.BookInterviewSlot(f.ctx, held.ID, student.ID))
	f.setPreference(t, student.ID, acme.ID, 1)

	report, err := f.matching.AutoAssignInterviews(f.ctx)
	require.NoError(t, err)
	require.Len(t, report.Assignments, 1)
	assert.Equal(t, acme.ID, report.Assignments[0].CompanyID)
	assert.Equal(t, open.ID, report.Assignments[0].SlotID)
	assert.Empty(t, report.Unassigned)

	got, err := f.students.GetStudentByID(f.ctx, student.ID)
	require.NoError(t, err)
	assert.Len(t, got.BookedInterviews, 2, "existing booking kept alongside the new one")
}

func TestAutoAssignReportsUnassigned(t *testing.T) {
	f := newFixture()
	acme := f.addCompany(t, "Acme")
	alice := f.addStudent(t, "Alice Chan", "S100")
	noPrefs := f.addStudent(t, "Brian Ho", "S101")

	// One slot, unavailable
	slot := f.addSlot(t, acme.ID, "2026-06-01", "0900", "0930")
	_, err := f.slots.ToggleSlotAvailability(f.ctx, slot.ID)
	require.NoError(t, err)

	f.setPreference(t, alice.ID, acme.ID, 1)

	report, err := f.matching.AutoAssignInterviews(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, report.Assignments)
	assert.ElementsMatch(t, []string{alice.ID, noPrefs.ID}, report.Unassigned)
}

func TestAutoAssignIsDeterministic(t *testing.T) {
	// Two students contending for one slot: the lexicographically smaller
	// internal id wins, every time.
	f := newFixture()
	acme := f.addCompany(t, "Acme")
	a := f.addStudent(t, "Alice Chan", "S100")
	b := f.addStudent(t, "Brian Ho", "S101")
	f.addSlot(t, acme.ID, "2026-06-01", "0900", "0930")

	f.setPreference(t, a.ID, acme.ID, 1)
	f.setPreference(t, b.ID, acme.ID, 1)

	ids := []string{a.ID, b.ID}
	sort.Strings(ids)

	report, err := f.matching.AutoAssignInterviews(f.ctx)
	require.NoError(t, err)
	require.Len(t, report.Assignments, 1)
	assert.Equal(t, ids[0], report.Assignments[0].StudentID)
	require.Len(t, report.Unassigned, 1)
	assert.Equal(t, ids[1], report.Unassigned[0])
}

func TestAutoAssignIsAtomic(t *testing.T) {
	f := newFixture()
	acme := f.addCompany(t, "Acme")
	alice := f.addStudent(t, "Alice Chan", "S100")
	brian := f.addStudent(t, "Brian Ho", "S101")
	f.addSlot(t, acme.ID, "2026-06-01", "0900", "0930")
	f.addSlot(t, acme.ID, "2026-06-01", "0930", "1000")

	f.setPreference(t, alice.ID, acme.ID, 1)
	f.setPreference(t, brian.ID, acme.ID, 1)

	report, err := f.matching.AutoAssignInterviews(f.ctx)
	require.NoError(t, err)
	assert.Len(t, report.Assignments, 2)

	// Both bookings landed in one mutation
	booked, err := f.slots.ListBookedSlots(f.ctx, ScheduleSortDate)
	require.NoError(t, err)
	assert.Len(t, booked, 2)
}
