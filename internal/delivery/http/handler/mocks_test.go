package handler

import (
	"context"

	"clinic-admin/internal/delivery/dto"

	"github.com/stretchr/testify/mock"
)

type mockSpecialtyUsecase struct{ mock.Mock }

func (m *mockSpecialtyUsecase) Create(ctx context.Context, form *dto.SpecialtyForm) (*dto.SpecialtyResponse, error) {
	args := m.Called(ctx, form)
	resp, _ := args.Get(0).(*dto.SpecialtyResponse)
	return resp, args.Error(1)
}

func (m *mockSpecialtyUsecase) GetList(ctx context.Context, req *dto.GetSpecialtyListRequest) (*dto.GetSpecialtyListResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.GetSpecialtyListResponse)
	return resp, args.Error(1)
}

func (m *mockSpecialtyUsecase) Get(ctx context.Context, id int) (*dto.SpecialtyResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*dto.SpecialtyResponse)
	return resp, args.Error(1)
}

func (m *mockSpecialtyUsecase) Update(ctx context.Context, id int, form *dto.SpecialtyForm) (*dto.SpecialtyResponse, error) {
	args := m.Called(ctx, id, form)
	resp, _ := args.Get(0).(*dto.SpecialtyResponse)
	return resp, args.Error(1)
}

func (m *mockSpecialtyUsecase) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSpecialtyUsecase) Options(ctx context.Context) ([]dto.SpecialtyResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).([]dto.SpecialtyResponse)
	return resp, args.Error(1)
}

type mockDoctorUsecase struct{ mock.Mock }

func (m *mockDoctorUsecase) Create(ctx context.Context, form *dto.DoctorForm) (*dto.DoctorResponse, error) {
	args := m.Called(ctx, form)
	resp, _ := args.Get(0).(*dto.DoctorResponse)
	return resp, args.Error(1)
}

func (m *mockDoctorUsecase) GetList(ctx context.Context, req *dto.GetDoctorListRequest) (*dto.GetDoctorListResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.GetDoctorListResponse)
	return resp, args.Error(1)
}

func (m *mockDoctorUsecase) Get(ctx context.Context, id int) (*dto.DoctorResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*dto.DoctorResponse)
	return resp, args.Error(1)
}

func (m *mockDoctorUsecase) Update(ctx context.Context, id int, form *dto.DoctorForm) (*dto.DoctorResponse, error) {
	args := m.Called(ctx, id, form)
	resp, _ := args.Get(0).(*dto.DoctorResponse)
	return resp, args.Error(1)
}

func (m *mockDoctorUsecase) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type mockAppointmentUsecase struct{ mock.Mock }

func (m *mockAppointmentUsecase) Create(ctx context.Context, form *dto.AppointmentForm) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, form)
	resp, _ := args.Get(0).(*dto.AppointmentResponse)
	return resp, args.Error(1)
}

func (m *mockAppointmentUsecase) GetList(ctx context.Context, req *dto.GetAppointmentListRequest) (*dto.GetAppointmentListResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.GetAppointmentListResponse)
	return resp, args.Error(1)
}

func (m *mockAppointmentUsecase) Get(ctx context.Context, id int) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*dto.AppointmentResponse)
	return resp, args.Error(1)
}

func (m *mockAppointmentUsecase) Update(ctx context.Context, id int, form *dto.AppointmentForm) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, id, form)
	resp, _ := args.Get(0).(*dto.AppointmentResponse)
	return resp, args.Error(1)
}

func (m *mockAppointmentUsecase) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}
