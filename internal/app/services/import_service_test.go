package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selim/placemate/internal/app/models/dto"
	"github.com/selim/placemate/internal/pkg/apperrors"
)

func TestImportCompaniesReplacesRoster(t *testing.T) {
	f := newFixture()
	old := f.addCompany(t, "Old Corp")
	student := f.addStudent(t, "Alice Chan", "S100")
	slot := f.addSlot(t, old.ID, "2026-06-01", "0900", "0930")
	require.NoError(t, f.slots.BookInterviewSlot(f.ctx, slot.ID, student.ID))
	f.setPreference(t, student.ID, old.ID, 1)

	report, err := f.imports.ImportCompanies(f.ctx, []dto.CompanyImportData{
		{Name: "New Corp A", IntakeNumber: 2},
		{Name: "New Corp B", IntakeNumber: 4},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Imported)
	assert.Zero(t, report.Skipped)

	companies, err := f.companies.ListCompanies(f.ctx)
	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, "New Corp A", companies[0].Name)

	// Everything hanging off the old roster is gone
	got, err := f.students.GetStudentByID(f.ctx, student.ID)
	require.NoError(t, err)
	assert.Empty(t, got.BookedInterviews)
	assert.Empty(t, got.Preferences)
}

func TestImportCompaniesSkipsInvalidRecords(t *testing.T) {
	f := newFixture()

	report, err := f.imports.ImportCompanies(f.ctx, []dto.CompanyImportData{
		{Name: "Valid Corp", IntakeNumber: 2},
		{Name: "", IntakeNumber: 2},         // missing name
		{Name: "No Intake", IntakeNumber: 0}, // intake must be positive
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 2, report.Skipped)

	companies, err := f.companies.ListCompanies(f.ctx)
	require.NoError(t, err)
	assert.Len(t, companies, 1)
}

func TestImportStudentsReplacesRosterAndReleasesSlots(t *testing.T) {
	f := newFixture()
	company := f.addCompany(t, "Acme")
	old := f.addStudent(t, "Alice Chan", "S100")
	slot := f.addSlot(t, company.ID, "2026-06-01", "0900", "0930")
	require.NoError(t, f.slots.BookInterviewSlot(f.ctx, slot.ID, old.ID))

	report, err := f.imports.ImportStudents(f.ctx, []dto.StudentImportData{
		{Name: "Brian Ho", Email: "brian@student.edu", StudentNumber: "S200"},
		{Name: "Carmen Ng", Email: "not-an-email", StudentNumber: "S201"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 1, report.Skipped)

	students, err := f.students.ListStudents(f.ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "S200", students[0].StudentNumber)

	// The slot held by the replaced roster is bookable again
	open, err := f.slots.GetAvailableSlotsForCompany(f.ctx, company.ID)
	require.NoError(t, err)
	assert.Len(t, open, 1)
}

func TestImportPreferencesMerges(t *testing.T) {
	f := newFixture()
	acme := f.addCompany(t, "Acme")
	f.addCompany(t, "Globex")
	student := f.addStudent(t, "Alice Chan", "S100")
	f.setPreference(t, student.ID, acme.ID, 3)

	report, err := f.imports.ImportPreferences(f.ctx, []dto.PreferenceImportData{
		{StudentNumber: "S100", CompanyName: "Acme", Rank: 1},    // re-rank existing
		{StudentNumber: "S100", CompanyName: "Globex", Rank: 2},  // new
		{StudentNumber: "S999", CompanyName: "Acme", Rank: 1},    // unknown student
		{StudentNumber: "S100", CompanyName: "Nowhere", Rank: 1}, // unknown company
		{StudentNumber: "S100", CompanyName: "Acme", Rank: -1},   // negative rank
	})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, 3, report.Skipped)

	got, err := f.students.GetStudentByID(f.ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, got.Preferences, 2)
	for _, pref := range got.Preferences {
		if pref.CompanyID == acme.ID {
			assert.Equal(t, 1, pref.Rank)
		}
	}
}

func TestImportPreferencesRankZeroRemoves(t *testing.T) {
	f := newFixture()
	acme := f.addCompany(t, "Acme")
	student := f.addStudent(t, "Alice Chan", "S100")
	f.setPreference(t, student.ID, acme.ID, 1)

	report, err := f.imports.ImportPreferences(f.ctx, []dto.PreferenceImportData{
		{StudentNumber: "S100", CompanyName: "Acme", Rank: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	assert.Zero(t, report.Skipped)

	got, err := f.students.GetStudentByID(f.ctx, student.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Preferences)
}

func TestImportRejectsEmptyBatch(t *testing.T) {
	f := newFixture()

	_, err := f.imports.ImportCompanies(f.ctx, nil)
	assert.ErrorIs(t, err, apperrors.ErrEmptyImport)

	_, err = f.imports.ImportStudents(f.ctx, []dto.StudentImportData{})
	assert.ErrorIs(t, err, apperrors.ErrEmptyImport)

	_, err = f.imports.ImportPreferences(f.ctx, nil)
	assert.ErrorIs(t, err, apperrors.ErrEmptyImport)
}
