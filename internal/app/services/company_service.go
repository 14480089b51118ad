package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/selim/placemate/internal/app/models"
	"github.com/selim/placemate/internal/app/models/dto"
	"github.com/selim/placemate/internal/app/store"
	"github.com/selim/placemate/internal/pkg/apperrors"
)

// CompanyService manages the company registry
type CompanyService struct {
	store *store.Store
}

// NewCompanyService creates a new company service instance
func NewCompanyService(st *store.Store) *CompanyService {
	return &CompanyService{store: st}
}

// AddCompany registers a new company
func (s *CompanyService) AddCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	var created *models.Company
	err := s.store.Update(ctx, "company.add", func(st *store.State) error {
		company := &models.Company{
			ID:             uuid.New().String(),
			Name:           req.Name,
			Description:    req.Description,
			IntakeNumber:   req.IntakeNumber,
			InterviewPlace: req.InterviewPlace,
			ContactPerson:  req.ContactPerson,
			Allowance:      req.Allowance,
			Remarks:        req.Remarks,
		}
		st.Companies = append(st.Companies, company)
		created = companyView(st, company)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateCompany edits a company's own fields. The canonical slot collection
// is untouched; existing bookings survive every update.
func (s *CompanyService) UpdateCompany(ctx context.Context, id string, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	var updated *models.Company
	err := s.store.Update(ctx, "company.update", func(st *store.State) error {
		company := st.CompanyByID(id)
		if company == nil {
			return apperrors.ErrCompanyNotFound
		}

		company.Name = req.Name
		company.Description = req.Description
		company.IntakeNumber = req.IntakeNumber
		company.InterviewPlace = req.InterviewPlace
		company.ContactPerson = req.ContactPerson
		company.Allowance = req.Allowance
		company.Remarks = req.Remarks

		updated = companyView(st, company)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteCompany removes a company and cascades: its slots vanish (bookings
// released with them), preferences referencing it are dropped from every
// student, and its offer rows are removed.
func (s *CompanyService) DeleteCompany(ctx context.Context, id string) error {
	return s.store.Update(ctx, "company.delete", func(st *store.State) error {
		if st.CompanyByID(id) == nil {
			return apperrors.ErrCompanyNotFound
		}

		companies := make([]*models.Company, 0, len(st.Companies)-1)
		for _, company := range st.Companies {
			if company.ID != id {
				companies = append(companies, company)
			}
		}
		st.Companies = companies

		slots := make([]*models.InterviewSlot, 0, len(st.Slots))
		for _, slot := range st.Slots {
			if slot.CompanyID != id {
				slots = append(slots, slot)
			}
		}
		st.Slots = slots

		for _, student := range st.Students {
			prefs := make([]*models.StudentPreference, 0, len(student.Preferences))
			for _, pref := range student.Preferences {
				if pref.CompanyID != id {
					prefs = append(prefs, pref)
				}
			}
			student.Preferences = prefs
		}

		dropOffers(st, func(o *models.OfferStatus) bool { return o.CompanyID == id })
		return nil
	})
}

// GetCompanyByID returns one company with its derived slot view
func (s *CompanyService) GetCompanyByID(ctx context.Context, id string) (*models.Company, error) {
	var company *models.Company
	err := s.store.View(ctx, func(st *store.State) error {
		found := st.CompanyByID(id)
		if found == nil {
			return apperrors.ErrCompanyNotFound
		}
		company = companyView(st, found)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return company, nil
}

// ListCompanies returns all companies in insertion order, views attached
func (s *CompanyService) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	var companies []*models.Company
	err := s.store.View(ctx, func(st *store.State) error {
		companies = make([]*models.Company, 0, len(st.Companies))
		for _, company := range st.Companies {
			companies = append(companies, companyView(st, company))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return companies, nil
}
