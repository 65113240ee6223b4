package dto

import (
	"testing"

	"clinic-admin/pkg/validator"

	"github.com/stretchr/testify/assert"
)

func validAppointmentForm() AppointmentForm {
	return AppointmentForm{
		PatientID:       1,
		DoctorID:        2,
		SpecialtyID:     []int{3},
		AppointmentDate: "2026-11-02T09:30:00Z",
		Observation:     "first visit",
	}
}

func TestListRequestPagination(t *testing.T) {
	v := validator.NewValidator()

	cases := []struct {
		name  string
		page  PageRequest
		valid bool
	}{
		{"first page", PageRequest{Page: 1, ItemsPerPage: 10}, true},
		{"max items", PageRequest{Page: 3, ItemsPerPage: 100}, true},
		{"zero page", PageRequest{Page: 0, ItemsPerPage: 10}, false},
		{"negative page", PageRequest{Page: -1, ItemsPerPage: 10}, false},
		{"zero items", PageRequest{Page: 1, ItemsPerPage: 0}, false},
		{"too many items", PageRequest{Page: 1, ItemsPerPage: 101}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := GetAppointmentListRequest{PageRequest: tc.page}
			err := v.Validate(&req)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestListRequestErrorsUseWireNames(t *testing.T) {
	v := validator.NewValidator()

	req := GetDoctorListRequest{PageRequest: PageRequest{Page: 0, ItemsPerPage: 0}}
	errs := v.FormatValidationErrors(v.Validate(&req))

	assert.Contains(t, errs, "page")
	assert.Contains(t, errs, "itemsPerPage")
}

func TestAppointmentFormSpecialties(t *testing.T) {
	v := validator.NewValidator()

	t.Run("multiple specialties accepted", func(t *testing.T) {
		form := validAppointmentForm()
		form.SpecialtyID = []int{3, 5, 8}
		assert.NoError(t, v.Validate(&form))
	})

	t.Run("empty specialties rejected", func(t *testing.T) {
		form := validAppointmentForm()
		form.SpecialtyID = []int{}
		err := v.Validate(&form)
		assert.Error(t, err)
		assert.Contains(t, v.FormatValidationErrors(err), "specialtyId")
	})

	t.Run("missing specialties rejected", func(t *testing.T) {
		form := validAppointmentForm()
		form.SpecialtyID = nil
		assert.Error(t, v.Validate(&form))
	})

	t.Run("duplicate specialties rejected", func(t *testing.T) {
		form := validAppointmentForm()
		form.SpecialtyID = []int{3, 3}
		assert.Error(t, v.Validate(&form))
	})

	t.Run("non-positive id rejected", func(t *testing.T) {
		form := validAppointmentForm()
		form.SpecialtyID = []int{3, 0}
		assert.Error(t, v.Validate(&form))
	})
}

func TestAppointmentFormDate(t *testing.T) {
	v := validator.NewValidator()

	for _, date := range []string{"2026-11-02T09:30:00Z", "2026-11-02T09:30:00-03:00", "2026-11-02T09:30"} {
		form := validAppointmentForm()
		form.AppointmentDate = date
		assert.NoError(t, v.Validate(&form), date)
	}

	for _, date := range []string{"", "tomorrow", "02/11/2026 09:30"} {
		form := validAppointmentForm()
		form.AppointmentDate = date
		assert.Error(t, v.Validate(&form), date)
	}
}

func TestDoctorFormSpecialties(t *testing.T) {
	v := validator.NewValidator()

	assert.NoError(t, v.Validate(&DoctorForm{Name: "Dr. Ana Lima"}), "doctor without specialties is allowed")
	assert.NoError(t, v.Validate(&DoctorForm{Name: "Dr. Ana Lima", Specialty: []int{1, 2}}))
	assert.Error(t, v.Validate(&DoctorForm{Name: "Dr. Ana Lima", Specialty: []int{1, 1}}))
	assert.Error(t, v.Validate(&DoctorForm{Name: ""}))

	zero := 0
	assert.Error(t, v.Validate(&DoctorForm{Name: "Dr. Ana Lima", StatusID: &zero}))
}
