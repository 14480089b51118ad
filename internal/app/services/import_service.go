package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/selim/placemate/internal/app/models"
	"github.com/selim/placemate/internal/app/models/dto"
	"github.com/selim/placemate/internal/app/store"
	"github.com/selim/placemate/internal/pkg/apperrors"
	"github.com/selim/placemate/internal/pkg/logger"
)

// ImportService reconciles bulk import batches against the aggregate.
// Company and student imports use replace semantics: the batch becomes the
// new authoritative dataset and everything hanging off the replaced records
// is cascaded away with them. Preference imports merge into the current
// student roster.
type ImportService struct {
	store    *store.Store
	validate *validator.Validate
}

// NewImportService creates a new import service instance
func NewImportService(st *store.Store) *ImportService {
	return &ImportService{
		store:    st,
		validate: validator.New(),
	}
}

// ImportCompanies replaces the company roster with the batch. All slots,
// preferences and offers referenced the old roster, so they are dropped
// wholesale. Records failing validation are skipped and counted.
func (s *ImportService) ImportCompanies(ctx context.Context, records []dto.CompanyImportData) (*dto.ImportReport, error) {
	if len(records) == 0 {
		return nil, apperrors.ErrEmptyImport
	}

	report := &dto.ImportReport{}
	err := s.store.Update(ctx, "import.companies", func(st *store.State) error {
		companies := make([]*models.Company, 0, len(records))
		for i, rec := range records {
			if err := s.validate.Struct(rec); err != nil {
				logger.Warn().Int("row", i).Err(err).Msg("Skipping invalid company import record")
				report.Skipped++
				continue
			}
			companies = append(companies, &models.Company{
				ID:             uuid.New().String(),
				Name:           rec.Name,
				Description:    rec.Description,
				IntakeNumber:   rec.IntakeNumber,
				InterviewPlace: rec.InterviewPlace,
				ContactPerson:  rec.ContactPerson,
				Allowance:      rec.Allowance,
				Remarks:        rec.Remarks,
			})
			report.Imported++
		}

		st.Companies = companies
		st.Slots = []*models.InterviewSlot{}
		st.Offers = []*models.OfferStatus{}
		for _, student := range st.Students {
			student.Preferences = []*models.StudentPreference{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// ImportStudents replaces the student roster with the batch. Bookings held
// by replaced students are released back to the pool and their offer rows
// are dropped.
func (s *ImportService) ImportStudents(ctx context.Context, records []dto.StudentImportData) (*dto.ImportReport, error) {
	if len(records) == 0 {
		return nil, apperrors.ErrEmptyImport
	}

	report := &dto.ImportReport{}
	err := s.store.Update(ctx, "import.students", func(st *store.State) error {
		students := make([]*models.Student, 0, len(records))
		for i, rec := range records {
			if err := s.validate.Struct(rec); err != nil {
				logger.Warn().Int("row", i).Err(err).Msg("Skipping invalid student import record")
				report.Skipped++
				continue
			}
			students = append(students, &models.Student{
				ID:            uuid.New().String(),
				Name:          rec.Name,
				Email:         rec.Email,
				StudentNumber: rec.StudentNumber,
				Tel:           rec.Tel,
				GPA:           rec.GPA,
				Preferences:   []*models.StudentPreference{},
			})
			report.Imported++
		}

		st.Students = students
		for _, slot := range st.Slots {
			if slot.Booked {
				releaseSlot(slot)
			}
		}
		st.Offers = []*models.OfferStatus{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// ImportPreferences merges preference records into the current roster.
// Students are resolved by external student number, companies by exact name;
// records that resolve to nothing are skipped and counted, as are invalid
// ones. Resolved records upsert like the single-preference endpoint, rank 0
// removal included.
func (s *ImportService) ImportPreferences(ctx context.Context, records []dto.PreferenceImportData) (*dto.ImportReport, error) {
	if len(records) == 0 {
		return nil, apperrors.ErrEmptyImport
	}

	report := &dto.ImportReport{}
	err := s.store.Update(ctx, "import.preferences", func(st *store.State) error {
		for i, rec := range records {
			if err := s.validate.Struct(rec); err != nil {
				logger.Warn().Int("row", i).Err(err).Msg("Skipping invalid preference import record")
				report.Skipped++
				continue
			}

			student := st.StudentByNumber(rec.StudentNumber)
			company := st.CompanyByName(rec.CompanyName)
			if student == nil || company == nil {
				logger.Warn().
					Int("row", i).
					Str("studentNumber", rec.StudentNumber).
					Str("companyName", rec.CompanyName).
					Msg("Skipping unresolved preference import record")
				report.Skipped++
				continue
			}

			setPreference(student, company.ID, rec.Rank)
			report.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}
