package usecase

import (
	"context"
	"testing"

	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPatientCreateWithStatus(t *testing.T) {
	patients := new(mockPatientRepo)
	statuses := new(mockStatusRepo)
	audit := &nopAuditService{}
	uc := NewPatientUsecase(testLogger(), patients, statuses, audit)

	statuses.On("FindByID", mock.Anything, 1).Return(&entity.Status{ID: 1, Name: "Active"}, nil)
	patients.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Patient).ID = 12
	}).Return(nil)

	resp, err := uc.Create(context.Background(), &dto.PatientForm{Name: "Maria Souza", StatusID: intPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, 12, resp.ID)
	require.NotNil(t, resp.Status)
	assert.Equal(t, "Active", resp.Status.Name)
	assert.Equal(t, []string{entity.AuditActionPatientCreate}, audit.actions)
}

func TestPatientCreateUnknownStatus(t *testing.T) {
	patients := new(mockPatientRepo)
	statuses := new(mockStatusRepo)
	uc := NewPatientUsecase(testLogger(), patients, statuses, &nopAuditService{})

	statuses.On("FindByID", mock.Anything, 42).Return(nil, nil)

	_, err := uc.Create(context.Background(), &dto.PatientForm{Name: "Maria Souza", StatusID: intPtr(42)})
	assert.ErrorIs(t, err, ErrUnknownStatus)
	patients.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPatientListPassesFilters(t *testing.T) {
	patients := new(mockPatientRepo)
	uc := NewPatientUsecase(testLogger(), patients, new(mockStatusRepo), &nopAuditService{})

	filter := entity.PatientFilter{Name: strPtr("maria"), StatusID: intPtr(2)}
	patients.On("FindAll", mock.Anything, filter, entity.Page{Limit: 5, Offset: 0}).
		Return([]entity.Patient{{ID: 1, Name: "Maria Souza"}}, int64(6), nil)

	resp, err := uc.GetList(context.Background(), &dto.GetPatientListRequest{
		PageRequest: dto.PageRequest{Page: 1, ItemsPerPage: 5},
		Name:        strPtr("maria"),
		StatusID:    intPtr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), resp.Total)
	assert.Len(t, resp.Items, 1)
}

func TestPatientDeleteWithAppointments(t *testing.T) {
	patients := new(mockPatientRepo)
	uc := NewPatientUsecase(testLogger(), patients, new(mockStatusRepo), &nopAuditService{})

	patients.On("FindByID", mock.Anything, 3).Return(&entity.Patient{ID: 3, Name: "João"}, nil)
	patients.On("Delete", mock.Anything, 3).
		Return(int64(0), &pgconn.PgError{Code: "23503", ConstraintName: "fk_appointments_patient"})

	err := uc.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, ErrPatientReferenced)
}

func TestPatientUpdateNotFound(t *testing.T) {
	patients := new(mockPatientRepo)
	uc := NewPatientUsecase(testLogger(), patients, new(mockStatusRepo), &nopAuditService{})

	patients.On("FindByID", mock.Anything, 8).Return(nil, nil)

	_, err := uc.Update(context.Background(), 8, &dto.PatientForm{Name: "Ana"})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}
