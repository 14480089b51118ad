package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selim/placemate/internal/app/models"
	"github.com/selim/placemate/internal/pkg/apperrors"
)

// failingSnapshotter wraps a memory snapshotter and fails saves on demand
type failingSnapshotter struct {
	inner    *MemorySnapshotter
	failSave bool
}

func (f *failingSnapshotter) Load(ctx context.Context) (*State, error) {
	return f.inner.Load(ctx)
}

func (f *failingSnapshotter) Save(ctx context.Context, state *State) error {
	if f.failSave {
		return errors.New("disk full")
	}
	return f.inner.Save(ctx, state)
}

func TestUpdateAppliesMutation(t *testing.T) {
	st := New(NewMemorySnapshotter())
	ctx := context.Background()

	err := st.Update(ctx, "company.add", func(s *State) error {
		s.Companies = append(s.Companies, &models.Company{ID: "c1", Name: "Acme"})
		return nil
	})
	require.NoError(t, err)

	err = st.View(ctx, func(s *State) error {
		require.Len(t, s.Companies, 1)
		assert.Equal(t, "Acme", s.Companies[0].Name)
		return nil
	})
	require.NoError(t, err)
}

func TestUpdateFailedSaveLeavesStateUntouched(t *testing.T) {
	snap := &failingSnapshotter{inner: NewMemorySnapshotter()}
	st := New(snap)
	ctx := context.Background()

	require.NoError(t, st.Update(ctx, "company.add", func(s *State) error {
		s.Companies = append(s.Companies, &models.Company{ID: "c1", Name: "Acme"})
		return nil
	}))

	snap.failSave = true
	err := st.Update(ctx, "company.add", func(s *State) error {
		s.Companies = append(s.Companies, &models.Company{ID: "c2", Name: "Globex"})
		return nil
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrStorage))

	snap.failSave = false
	err = st.View(ctx, func(s *State) error {
		assert.Len(t, s.Companies, 1)
		return nil
	})
	require.NoError(t, err)
}

func TestUpdateFnErrorAbortsWithoutSaving(t *testing.T) {
	st := New(NewMemorySnapshotter())
	ctx := context.Background()

	sentinel := errors.New("nope")
	err := st.Update(ctx, "company.add", func(s *State) error {
		s.Companies = append(s.Companies, &models.Company{ID: "c1"})
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	err = st.View(ctx, func(s *State) error {
		assert.Empty(t, s.Companies)
		return nil
	})
	require.NoError(t, err)
}

func TestSubscribeNotifiedAfterMutation(t *testing.T) {
	st := New(NewMemorySnapshotter())
	ctx := context.Background()

	var ops []string
	st.Subscribe(func(ev Event) { ops = append(ops, ev.Op) })

	require.NoError(t, st.Update(ctx, "slot.book", func(s *State) error { return nil }))
	require.NoError(t, st.Update(ctx, "slot.unbook", func(s *State) error { return nil }))

	assert.Equal(t, []string{"slot.book", "slot.unbook"}, ops)
}

func TestSubscribeNotNotifiedOnFailure(t *testing.T) {
	st := New(NewMemorySnapshotter())
	ctx := context.Background()

	notified := 0
	st.Subscribe(func(Event) { notified++ })

	_ = st.Update(ctx, "company.add", func(s *State) error { return errors.New("boom") })
	assert.Zero(t, notified)
}

func TestCloneIsDeep(t *testing.T) {
	original := NewState()
	original.Companies = append(original.Companies, &models.Company{ID: "c1", Name: "Acme"})
	original.Students = append(original.Students, &models.Student{
		ID:          "s1",
		Preferences: []*models.StudentPreference{{StudentID: "s1", CompanyID: "c1", Rank: 1}},
	})
	original.Slots = append(original.Slots, &models.InterviewSlot{ID: "sl1", CompanyID: "c1"})
	original.Offers = append(original.Offers, &models.OfferStatus{StudentID: "s1", CompanyID: "c1", Status: models.OfferPending})

	clone := original.Clone()
	clone.Companies[0].Name = "Changed"
	clone.Students[0].Preferences[0].Rank = 9
	clone.Slots[0].Booked = true
	clone.Offers[0].Status = models.OfferAccepted

	assert.Equal(t, "Acme", original.Companies[0].Name)
	assert.Equal(t, 1, original.Students[0].Preferences[0].Rank)
	assert.False(t, original.Slots[0].Booked)
	assert.Equal(t, models.OfferPending, original.Offers[0].Status)
}

func TestStateLookups(t *testing.T) {
	s := NewState()
	s.Companies = append(s.Companies, &models.Company{ID: "c1", Name: "Acme"})
	s.Students = append(s.Students, &models.Student{ID: "s1", StudentNumber: "S100"})
	s.Slots = append(s.Slots,
		&models.InterviewSlot{ID: "sl1", CompanyID: "c1"},
		&models.InterviewSlot{ID: "sl2", CompanyID: "c1", Booked: true, StudentID: "s1"},
		&models.InterviewSlot{ID: "sl3", CompanyID: "c2"},
	)

	assert.NotNil(t, s.CompanyByID("c1"))
	assert.Nil(t, s.CompanyByID("missing"))
	assert.NotNil(t, s.CompanyByName("Acme"))
	assert.NotNil(t, s.StudentByNumber("S100"))
	assert.Nil(t, s.StudentByNumber("S999"))
	assert.Len(t, s.SlotsForCompany("c1"), 2)
	assert.Len(t, s.SlotsBookedBy("s1"), 1)
	assert.Equal(t, "sl2", s.SlotsBookedBy("s1")[0].ID)
}
