package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/selim/placemate/internal/app/models"
	"github.com/selim/placemate/internal/app/models/dto"
	"github.com/selim/placemate/internal/app/store"
	"github.com/selim/placemate/internal/pkg/apperrors"
)

// StudentService manages the student registry and preference lists
type StudentService struct {
	store *store.Store
}

// NewStudentService creates a new student service instance
func NewStudentService(st *store.Store) *StudentService {
	return &StudentService{store: st}
}

// AddStudent registers a new student
func (s *StudentService) AddStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	var created *models.Student
	err := s.store.Update(ctx, "student.add", func(st *store.State) error {
		student := &models.Student{
			ID:            uuid.New().String(),
			Name:          req.Name,
			Email:         req.Email,
			StudentNumber: req.StudentNumber,
			Tel:           req.Tel,
			GPA:           req.GPA,
			Preferences:   []*models.StudentPreference{},
		}
		st.Students = append(st.Students, student)
		created = studentView(st, student)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateStudent edits a student's own fields. Preferences and bookings are
// untouched.
func (s *StudentService) UpdateStudent(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*models.Student, error) {
	var updated *models.Student
	err := s.store.Update(ctx, "student.update", func(st *store.State) error {
		student := st.StudentByID(id)
		if student == nil {
			return apperrors.ErrStudentNotFound
		}

		student.Name = req.Name
		student.Email = req.Email
		student.StudentNumber = req.StudentNumber
		student.Tel = req.Tel
		student.GPA = req.GPA

		updated = studentView(st, student)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteStudent removes a student. Slots they had booked are released back
// to the pool, and their offer rows are dropped.
func (s *StudentService) DeleteStudent(ctx context.Context, id string) error {
	return s.store.Update(ctx, "student.delete", func(st *store.State) error {
		if st.StudentByID(id) == nil {
			return apperrors.ErrStudentNotFound
		}

		students := make([]*models.Student, 0, len(st.Students)-1)
		for _, student := range st.Students {
			if student.ID != id {
				students = append(students, student)
			}
		}
		st.Students = students

		for _, slot := range st.Slots {
			if slot.Booked && slot.StudentID == id {
				releaseSlot(slot)
			}
		}

		dropOffers(st, func(o *models.OfferStatus) bool { return o.StudentID == id })
		return nil
	})
}

// GetStudentByID returns one student with the derived booked-interview view
func (s *StudentService) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	var student *models.Student
	err := s.store.View(ctx, func(st *store.State) error {
		found := st.StudentByID(id)
		if found == nil {
			return apperrors.ErrStudentNotFound
		}
		student = studentView(st, found)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return student, nil
}

// ListStudents returns all students in insertion order, views attached
func (s *StudentService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	var students []*models.Student
	err := s.store.View(ctx, func(st *store.State) error {
		students = make([]*models.Student, 0, len(st.Students))
		for _, student := range st.Students {
			students = append(students, studentView(st, student))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return students, nil
}

// SetPreference upserts the student's ranked interest in a company: at most
// one preference per company, latest rank wins. Rank 0 removes the
// preference.
func (s *StudentService) SetPreference(ctx context.Context, studentID string, req *dto.SetPreferenceRequest) (*models.Student, error) {
	var updated *models.Student
	err := s.store.Update(ctx, "student.preference", func(st *store.State) error {
		student := st.StudentByID(studentID)
		if student == nil {
			return apperrors.ErrStudentNotFound
		}
		if st.CompanyByID(req.CompanyID) == nil {
			return apperrors.ErrCompanyNotFound
		}

		setPreference(student, req.CompanyID, req.Rank)
		updated = studentView(st, student)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// setPreference applies the upsert/remove semantics on the student's list
func setPreference(student *models.Student, companyID string, rank int) {
	if rank == 0 {
		prefs := make([]*models.StudentPreference, 0, len(student.Preferences))
		for _, pref := range student.Preferences {
			if pref.CompanyID != companyID {
				prefs = append(prefs, pref)
			}
		}
		student.Preferences = prefs
		return
	}

	for _, pref := range student.Preferences {
		if pref.CompanyID == companyID {
			pref.Rank = rank
			return
		}
	}
	student.Preferences = append(student.Preferences, &models.StudentPreference{
		StudentID: student.ID,
		CompanyID: companyID,
		Rank:      rank,
	})
}
