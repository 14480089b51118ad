package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/selim/placemate/internal/app/models"
	"github.com/selim/placemate/internal/app/models/dto"
	"github.com/selim/placemate/internal/app/store"
)

// fixture wires every service around one shared in-memory store
type fixture struct {
	ctx       context.Context
	store     *store.Store
	companies *CompanyService
	students  *StudentService
	slots     *SlotService
	matching  *MatchingService
	imports   *ImportService
	offers    *OfferService
}

func newFixture() *fixture {
	st := store.New(store.NewMemorySnapshotter())
	return &fixture{
		ctx:       context.Background(),
		store:     st,
		companies: NewCompanyService(st),
		students:  NewStudentService(st),
		slots:     NewSlotService(st),
		matching:  NewMatchingService(st),
		imports:   NewImportService(st),
		offers:    NewOfferService(st),
	}
}

func (f *fixture) addCompany(t *testing.T, name string) *models.Company {
	t.Helper()
	company, err := f.companies.AddCompany(f.ctx, &dto.CreateCompanyRequest{
		Name:         name,
		IntakeNumber: 3,
	})
	require.NoError(t, err)
	return company
}

func (f *fixture) addStudent(t *testing.T, name, number string) *models.Student {
	t.Helper()
	student, err := f.students.AddStudent(f.ctx, &dto.CreateStudentRequest{
		Name:          name,
		Email:         strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@student.edu",
		StudentNumber: number,
	})
	require.NoError(t, err)
	return student
}

func (f *fixture) addSlot(t *testing.T, companyID, date, start, end string) *models.InterviewSlot {
	t.Helper()
	slot, err := f.slots.AddTimeslot(f.ctx, companyID, date, start, end)
	require.NoError(t, err)
	return slot
}

func (f *fixture) setPreference(t *testing.T, studentID, companyID string, rank int) {
	t.Helper()
	_, err := f.students.SetPreference(f.ctx, studentID, &dto.SetPreferenceRequest{
		CompanyID: companyID,
		Rank:      rank,
	})
	require.NoError(t, err)
}
