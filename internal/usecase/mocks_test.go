package usecase

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"clinic-admin/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

type mockSpecialtyRepo struct{ mock.Mock }

func (m *mockSpecialtyRepo) Create(ctx context.Context, specialty *entity.Specialty) error {
	return m.Called(ctx, specialty).Error(0)
}

func (m *mockSpecialtyRepo) FindAll(ctx context.Context, filter entity.NameFilter, page entity.Page) ([]entity.Specialty, int64, error) {
	args := m.Called(ctx, filter, page)
	specialties, _ := args.Get(0).([]entity.Specialty)
	return specialties, args.Get(1).(int64), args.Error(2)
}

func (m *mockSpecialtyRepo) FindByID(ctx context.Context, id int) (*entity.Specialty, error) {
	args := m.Called(ctx, id)
	specialty, _ := args.Get(0).(*entity.Specialty)
	return specialty, args.Error(1)
}

func (m *mockSpecialtyRepo) FindByIDs(ctx context.Context, ids []int) ([]entity.Specialty, error) {
	args := m.Called(ctx, ids)
	specialties, _ := args.Get(0).([]entity.Specialty)
	return specialties, args.Error(1)
}

func (m *mockSpecialtyRepo) ListAll(ctx context.Context) ([]entity.Specialty, error) {
	args := m.Called(ctx)
	specialties, _ := args.Get(0).([]entity.Specialty)
	return specialties, args.Error(1)
}

func (m *mockSpecialtyRepo) Update(ctx context.Context, specialty *entity.Specialty) error {
	return m.Called(ctx, specialty).Error(0)
}

func (m *mockSpecialtyRepo) Delete(ctx context.Context, id int) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockStatusRepo struct{ mock.Mock }

func (m *mockStatusRepo) Create(ctx context.Context, status *entity.Status) error {
	return m.Called(ctx, status).Error(0)
}

func (m *mockStatusRepo) FindAll(ctx context.Context, filter entity.NameFilter, page entity.Page) ([]entity.Status, int64, error) {
	args := m.Called(ctx, filter, page)
	statuses, _ := args.Get(0).([]entity.Status)
	return statuses, args.Get(1).(int64), args.Error(2)
}

func (m *mockStatusRepo) FindByID(ctx context.Context, id int) (*entity.Status, error) {
	args := m.Called(ctx, id)
	status, _ := args.Get(0).(*entity.Status)
	return status, args.Error(1)
}

func (m *mockStatusRepo) ListAll(ctx context.Context) ([]entity.Status, error) {
	args := m.Called(ctx)
	statuses, _ := args.Get(0).([]entity.Status)
	return statuses, args.Error(1)
}

func (m *mockStatusRepo) Update(ctx context.Context, status *entity.Status) error {
	return m.Called(ctx, status).Error(0)
}

func (m *mockStatusRepo) Delete(ctx context.Context, id int) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockPatientRepo struct{ mock.Mock }

func (m *mockPatientRepo) Create(ctx context.Context, patient *entity.Patient) error {
	return m.Called(ctx, patient).Error(0)
}

func (m *mockPatientRepo) FindAll(ctx context.Context, filter entity.PatientFilter, page entity.Page) ([]entity.Patient, int64, error) {
	args := m.Called(ctx, filter, page)
	patients, _ := args.Get(0).([]entity.Patient)
	return patients, args.Get(1).(int64), args.Error(2)
}

func (m *mockPatientRepo) FindByID(ctx context.Context, id int) (*entity.Patient, error) {
	args := m.Called(ctx, id)
	patient, _ := args.Get(0).(*entity.Patient)
	return patient, args.Error(1)
}

func (m *mockPatientRepo) Update(ctx context.Context, patient *entity.Patient) error {
	return m.Called(ctx, patient).Error(0)
}

func (m *mockPatientRepo) Delete(ctx context.Context, id int) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockDoctorRepo struct{ mock.Mock }

func (m *mockDoctorRepo) Create(ctx context.Context, doctor *entity.Doctor) error {
	return m.Called(ctx, doctor).Error(0)
}

func (m *mockDoctorRepo) FindAll(ctx context.Context, filter entity.DoctorFilter, page entity.Page) ([]entity.Doctor, int64, error) {
	args := m.Called(ctx, filter, page)
	doctors, _ := args.Get(0).([]entity.Doctor)
	return doctors, args.Get(1).(int64), args.Error(2)
}

func (m *mockDoctorRepo) FindByID(ctx context.Context, id int) (*entity.Doctor, error) {
	args := m.Called(ctx, id)
	doctor, _ := args.Get(0).(*entity.Doctor)
	return doctor, args.Error(1)
}

func (m *mockDoctorRepo) Update(ctx context.Context, doctor *entity.Doctor) error {
	return m.Called(ctx, doctor).Error(0)
}

func (m *mockDoctorRepo) Delete(ctx context.Context, id int) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockAppointmentRepo struct{ mock.Mock }

func (m *mockAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	return m.Called(ctx, appointment).Error(0)
}

func (m *mockAppointmentRepo) FindAll(ctx context.Context, filter entity.AppointmentFilter, page entity.Page) ([]entity.Appointment, int64, error) {
	args := m.Called(ctx, filter, page)
	appointments, _ := args.Get(0).([]entity.Appointment)
	return appointments, args.Get(1).(int64), args.Error(2)
}

func (m *mockAppointmentRepo) FindByID(ctx context.Context, id int) (*entity.Appointment, error) {
	args := m.Called(ctx, id)
	appointment, _ := args.Get(0).(*entity.Appointment)
	return appointment, args.Error(1)
}

func (m *mockAppointmentRepo) Update(ctx context.Context, appointment *entity.Appointment) error {
	return m.Called(ctx, appointment).Error(0)
}

func (m *mockAppointmentRepo) Delete(ctx context.Context, id int) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockAuditLogRepo struct{ mock.Mock }

func (m *mockAuditLogRepo) Create(ctx context.Context, log *entity.AuditLog) error {
	return m.Called(ctx, log).Error(0)
}

func (m *mockAuditLogRepo) FindAll(ctx context.Context, page entity.Page) ([]entity.AuditLog, int64, error) {
	args := m.Called(ctx, page)
	logs, _ := args.Get(0).([]entity.AuditLog)
	return logs, args.Get(1).(int64), args.Error(2)
}

// nopAuditService records the actions it was asked to log.
type nopAuditService struct {
	actions []string
}

func (s *nopAuditService) LogCreate(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) {
	s.actions = append(s.actions, action)
}

func (s *nopAuditService) LogUpdate(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) {
	s.actions = append(s.actions, action)
}

func (s *nopAuditService) LogDelete(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) {
	s.actions = append(s.actions, action)
}

func (s *nopAuditService) LogEvent(ctx context.Context, userID *uuid.UUID, action string) {
	s.actions = append(s.actions, action)
}

func (s *nopAuditService) Stop() {}

type mockLookupCache struct{ mock.Mock }

func (m *mockLookupCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *mockLookupCache) Set(ctx context.Context, key string, value interface{}) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *mockLookupCache) Invalidate(ctx context.Context, keys ...string) error {
	args := []interface{}{ctx}
	for _, k := range keys {
		args = append(args, k)
	}
	return m.Called(args...).Error(0)
}

// memoryTokenStore keeps token ids in a map.
type memoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]time.Duration
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{tokens: map[string]time.Duration{}}
}

func (s *memoryTokenStore) key(kind string, userID uuid.UUID, tokenID string) string {
	return kind + ":" + userID.String() + ":" + tokenID
}

func (s *memoryTokenStore) Store(ctx context.Context, kind string, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[s.key(kind, userID, tokenID)] = ttl
	return nil
}

func (s *memoryTokenStore) Exists(ctx context.Context, kind string, userID uuid.UUID, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[s.key(kind, userID, tokenID)]
	return ok, nil
}

func (s *memoryTokenStore) Consume(ctx context.Context, kind string, userID uuid.UUID, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := s.key(kind, userID, tokenID)
	if _, ok := s.tokens[k]; !ok {
		return false, nil
	}
	delete(s.tokens, k)
	return true, nil
}

func (s *memoryTokenStore) Revoke(ctx context.Context, kind string, userID uuid.UUID, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, s.key(kind, userID, tokenID))
	return nil
}

func (s *memoryTokenStore) RevokeAll(ctx context.Context, kind string, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefix := kind + ":" + userID.String() + ":"
	for k := range s.tokens {
		if strings.HasPrefix(k, prefix) {
			delete(s.tokens, k)
		}
	}
	return nil
}

func (s *memoryTokenStore) count(kind string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k := range s.tokens {
		if strings.HasPrefix(k, kind+":") {
			n++
		}
	}
	return n
}
