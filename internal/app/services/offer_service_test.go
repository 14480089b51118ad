package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selim/placemate/internal/app/models"
	"github.com/selim/placemate/internal/app/models/dto"
	"github.com/selim/placemate/internal/pkg/apperrors"
)

func TestSetOfferStatusUpserts(t *testing.T) {
	f := newFixture()
	company := f.addCompany(t, "Acme")
	student := f.addStudent(t, "Alice Chan", "S100")

	offer, err := f.offers.SetOfferStatus(f.ctx, &dto.SetOfferStatusRequest{
		StudentID: student.ID, CompanyID: company.ID, Status: "offered",
	})
	require.NoError(t, err)
	assert.Equal(t, models.OfferOffered, offer.Status)

	// Same pair updates in place
	offer, err = f.offers.SetOfferStatus(f.ctx, &dto.SetOfferStatusRequest{
		StudentID: student.ID, CompanyID: company.ID, Status: "accepted",
	})
	require.NoError(t, err)
	assert.Equal(t, models.OfferAccepted, offer.Status)

	offers, err := f.offers.ListOffers(f.ctx, "")
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, models.OfferAccepted, offers[0].Status)
}

func TestSetOfferStatusValidation(t *testing.T) {
	f := newFixture()
	company := f.addCompany(t, "Acme")
	student := f.addStudent(t, "Alice Chan", "S100")

	_, err := f.offers.SetOfferStatus(f.ctx, &dto.SetOfferStatusRequest{
		StudentID: student.ID, CompanyID: company.ID, Status: "maybe",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidOfferStatus)

	_, err = f.offers.SetOfferStatus(f.ctx, &dto.SetOfferStatusRequest{
		StudentID: "missing", CompanyID: company.ID, Status: "pending",
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	_, err = f.offers.SetOfferStatus(f.ctx, &dto.SetOfferStatusRequest{
		StudentID: student.ID, CompanyID: "missing", Status: "pending",
	})
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)
}

func TestListOffersFilteredByStudent(t *testing.T) {
	f := newFixture()
	company := f.addCompany(t, "Acme")
	alice := f.addStudent(t, "Alice Chan", "S100")
	brian := f.addStudent(t, "Brian Ho", "S101")

	for _, id := range []string{alice.ID, brian.ID} {
		_, err := f.offers.SetOfferStatus(f.ctx, &dto.SetOfferStatusRequest{
			StudentID: id, CompanyID: company.ID, Status: "pending",
		})
		require.NoError(t, err)
	}

	offers, err := f.offers.ListOffers(f.ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, alice.ID, offers[0].StudentID)

	_, err = f.offers.ListOffers(f.ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
