package services

import (
	"context"
	"fmt"

	"github.com/selim/placemate/internal/app/models"
	"github.com/selim/placemate/internal/app/models/dto"
	"github.com/selim/placemate/internal/app/store"
	"github.com/selim/placemate/internal/pkg/apperrors"
)

// OfferService tracks offer outcomes per student/company pair
type OfferService struct {
	store *store.Store
}

// NewOfferService creates a new offer service instance
func NewOfferService(st *store.Store) *OfferService {
	return &OfferService{store: st}
}

// SetOfferStatus upserts the offer status for a student/company pair. Both
// parties must exist and the status must be a known value.
func (s *OfferService) SetOfferStatus(ctx context.Context, req *dto.SetOfferStatusRequest) (*models.OfferStatus, error) {
	status := models.OfferStatusValue(req.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidOfferStatus, req.Status)
	}

	var saved *models.OfferStatus
	err := s.store.Update(ctx, "offer.set", func(st *store.State) error {
		if st.StudentByID(req.StudentID) == nil {
			return apperrors.ErrStudentNotFound
		}
		if st.CompanyByID(req.CompanyID) == nil {
			return apperrors.ErrCompanyNotFound
		}

		for _, offer := range st.Offers {
			if offer.StudentID == req.StudentID && offer.CompanyID == req.CompanyID {
				offer.Status = status
				o := *offer
				saved = &o
				return nil
			}
		}

		offer := &models.OfferStatus{
			StudentID: req.StudentID,
			CompanyID: req.CompanyID,
			Status:    status,
		}
		st.Offers = append(st.Offers, offer)
		o := *offer
		saved = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// ListOffers returns every offer row, optionally filtered to one student
func (s *OfferService) ListOffers(ctx context.Context, studentID string) ([]*models.OfferStatus, error) {
	var offers []*models.OfferStatus
	err := s.store.View(ctx, func(st *store.State) error {
		if studentID != "" && st.StudentByID(studentID) == nil {
			return apperrors.ErrStudentNotFound
		}

		offers = make([]*models.OfferStatus, 0, len(st.Offers))
		for _, offer := range st.Offers {
			if studentID != "" && offer.StudentID != studentID {
				continue
			}
			o := *offer
			offers = append(offers, &o)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return offers, nil
}
