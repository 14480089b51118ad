package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/selim/placemate/internal/app/models/dto"
	"github.com/selim/placemate/internal/app/services"
)

// CreateDemoData populates an empty store with a small demo cohort of
// companies, slots, students and preferences. A non-empty store is left
// alone so a restart never duplicates data.
func CreateDemoData(
	ctx context.Context,
	companyService *services.CompanyService,
	studentService *services.StudentService,
	slotService *services.SlotService,
	lgr zerolog.Logger,
) error {
	existing, err := companyService.ListCompanies(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing data: %w", err)
	}
	if len(existing) > 0 {
		lgr.Info().Int("companies", len(existing)).Msg("Store not empty, skipping demo seed")
		return nil
	}

	lgr.Info().Msg("Seeding demo data...")

	companies := []dto.CreateCompanyRequest{
		{
			Name:           "Tech Innovations Inc.",
			Description:    "AI and machine learning solutions",
			IntakeNumber:   5,
			InterviewPlace: "Room 101",
			ContactPerson:  "John Smith",
			Allowance:      "$500",
		},
		{
			Name:           "Green Energy Labs",
			Description:    "Renewable energy research",
			IntakeNumber:   3,
			InterviewPlace: "Room 205",
			ContactPerson:  "Mary Wong",
			Allowance:      "$450",
			Remarks:        "Prefers students with lab experience",
		},
		{
			Name:           "Harbour Financial Group",
			Description:    "Fintech and payments",
			IntakeNumber:   4,
			InterviewPlace: "Meeting Room B",
			ContactPerson:  "David Lee",
			Allowance:      "$600",
		},
	}

	slots := map[string][][3]string{
		"Tech Innovations Inc.": {
			{"2026-06-01", "0900", "0930"},
			{"2026-06-01", "0930", "1000"},
			{"2026-06-01", "1000", "1030"},
		},
		"Green Energy Labs": {
			{"2026-06-02", "1400", "1430"},
			{"2026-06-02", "1430", "1500"},
		},
		"Harbour Financial Group": {
			{"2026-06-03", "1000", "1030"},
			{"2026-06-03", "1030", "1100"},
		},
	}

	companyIDs := make(map[string]string, len(companies))
	for _, req := range companies {
		company, err := companyService.AddCompany(ctx, &req)
		if err != nil {
			return fmt.Errorf("failed to seed company %q: %w", req.Name, err)
		}
		companyIDs[company.Name] = company.ID

		for _, s := range slots[company.Name] {
			if _, err := slotService.AddTimeslot(ctx, company.ID, s[0], s[1], s[2]); err != nil {
				return fmt.Errorf("failed to seed slot for %q: %w", company.Name, err)
			}
		}
	}

	students := []dto.CreateStudentRequest{
		{Name: "Alice Chan", Email: "alice@student.edu", StudentNumber: "S12345", Tel: "555-0101", GPA: "3.6"},
		{Name: "Brian Ho", Email: "brian@student.edu", StudentNumber: "S12346", Tel: "555-0102", GPA: "3.2"},
		{Name: "Carmen Ng", Email: "carmen@student.edu", StudentNumber: "S12347", Tel: "555-0103", GPA: "3.8"},
	}

	preferences := map[string][]dto.SetPreferenceRequest{
		"S12345": {
			{CompanyID: companyIDs["Tech Innovations Inc."], Rank: 1},
			{CompanyID: companyIDs["Harbour Financial Group"], Rank: 2},
		},
		"S12346": {
			{CompanyID: companyIDs["Green Energy Labs"], Rank: 1},
		},
		"S12347": {
			{CompanyID: companyIDs["Tech Innovations Inc."], Rank: 1},
			{CompanyID: companyIDs["Green Energy Labs"], Rank: 2},
			{CompanyID: companyIDs["Harbour Financial Group"], Rank: 3},
		},
	}

	for _, req := range students {
		student, err := studentService.AddStudent(ctx, &req)
		if err != nil {
			return fmt.Errorf("failed to seed student %q: %w", req.Name, err)
		}

		for _, pref := range preferences[req.StudentNumber] {
			if _, err := studentService.SetPreference(ctx, student.ID, &pref); err != nil {
				return fmt.Errorf("failed to seed preference for %q: %w", req.Name, err)
			}
		}
	}

	lgr.Info().
		Int("companies", len(companies)).
		Int("students", len(students)).
		Msg("Demo data seeded")
	return nil
}
