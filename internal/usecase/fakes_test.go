package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"ads-dental-admin/internal/domain/entity"
	"ads-dental-admin/internal/domain/repository"
	"ads-dental-admin/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var errBackend = errors.New("backend unavailable")

func newTestLogger() *logrus.Logger {
	log, _ := test.NewNullLogger()
	return log
}

func newTestAudit() service.AuditService {
	return service.NewAuditService(newTestLogger())
}

// memoryStorage is an in-memory SessionStorage.
type memoryStorage struct {
	mu   sync.Mutex
	data map[string]string
	err  error
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{data: map[string]string{}}
}

func (m *memoryStorage) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", false, m.err
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memoryStorage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.data[key] = value
	return nil
}

func (m *memoryStorage) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

type fakeAuthRepo struct {
	loginResult *repository.LoginResult
	loginErr    error
	registerErr error

	logins    int
	registers int
}

func (f *fakeAuthRepo) Login(_ context.Context, _, _ string) (*repository.LoginResult, error) {
	f.logins++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResult, nil
}

func (f *fakeAuthRepo) Register(_ context.Context, _, _, _, _ string) error {
	f.registers++
	return f.registerErr
}

// stubSession is a fixed SessionUsecase for usecases that only read it.
type stubSession struct {
	session *entity.Session
}

func signedIn(roles ...string) *stubSession {
	return &stubSession{session: &entity.Session{
		Token: "tok",
		User:  entity.User{Username: "ann", Email: "ann@example.com", Roles: entity.RoleSet(roles)},
	}}
}

func (s *stubSession) Login(context.Context, string, string) (*entity.Session, error) {
	return nil, errors.New("not supported")
}

func (s *stubSession) Register(context.Context, string, string, string, string) (*entity.Session, error) {
	return nil, errors.New("not supported")
}

func (s *stubSession) Logout(context.Context) error {
	s.session = nil
	return nil
}

func (s *stubSession) Restore(context.Context) (*entity.Session, error) {
	return s.session, nil
}

func (s *stubSession) Current() (*entity.Session, bool) {
	if s.session == nil {
		return nil, false
	}
	cp := *s.session
	return &cp, true
}

func (s *stubSession) OnSessionChange(func()) {}

func (s *stubSession) Token() string {
	if s.session == nil {
		return ""
	}
	return s.session.Token
}

type fakePatientRepo struct {
	mu       sync.Mutex
	patients []entity.Patient
	err      error
	finds    int
	created  []*entity.Patient
	updated  map[int]*entity.Patient
	deleted  []int
}

func (f *fakePatientRepo) FindAll(context.Context, string) ([]entity.Patient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finds++
	if f.err != nil {
		return nil, f.err
	}
	return append([]entity.Patient(nil), f.patients...), nil
}

func (f *fakePatientRepo) Create(_ context.Context, _ string, p *entity.Patient) (*entity.Patient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, p)
	cp := *p
	cp.PatientNo = len(f.patients) + 1
	f.patients = append(f.patients, cp)
	return &cp, nil
}

func (f *fakePatientRepo) Update(_ context.Context, _ string, patientNo int, p *entity.Patient) (*entity.Patient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updated == nil {
		f.updated = map[int]*entity.Patient{}
	}
	f.updated[patientNo] = p
	return p, nil
}

func (f *fakePatientRepo) Delete(_ context.Context, _ string, patientNo int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, patientNo)
	return nil
}

type fakeDentistRepo struct {
	dentists []entity.Dentist
	err      error
}

func (f *fakeDentistRepo) FindAll(context.Context, string) ([]entity.Dentist, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.dentists, nil
}

type fakeSurgeryRepo struct {
	surgeries []entity.Surgery
	err       error
}

func (f *fakeSurgeryRepo) FindAll(context.Context, string) ([]entity.Surgery, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.surgeries, nil
}

type fakeAddressRepo struct {
	addresses []entity.Address
	err       error
}

func (f *fakeAddressRepo) FindAll(context.Context, string) ([]entity.Address, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]entity.Address(nil), f.addresses...), nil
}

type patchCall struct {
	id    int
	patch entity.AppointmentPatch
}

type fakeAppointmentRepo struct {
	mu           sync.Mutex
	appointments []entity.Appointment
	findErr      error
	createErr    error
	updateErr    error

	finds   int
	created []*entity.Appointment
	updates []patchCall
	deleted []int

	// block, when set, holds Create and Update until it is closed.
	block   chan struct{}
	waiting atomic.Int32
}

func (f *fakeAppointmentRepo) FindAll(context.Context, string) ([]entity.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finds++
	if f.findErr != nil {
		return nil, f.findErr
	}
	return append([]entity.Appointment(nil), f.appointments...), nil
}

func (f *fakeAppointmentRepo) Create(_ context.Context, _ string, a *entity.Appointment) (*entity.Appointment, error) {
	if f.block != nil {
		f.waiting.Add(1)
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, a)
	if f.createErr != nil {
		return nil, f.createErr
	}
	cp := *a
	cp.ID = 100 + len(f.created)
	return &cp, nil
}

func (f *fakeAppointmentRepo) Update(_ context.Context, _ string, id int, patch entity.AppointmentPatch) (*entity.Appointment, error) {
	if f.block != nil {
		f.waiting.Add(1)
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, patchCall{id: id, patch: patch})
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &entity.Appointment{ID: id}, nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, _ string, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAppointmentRepo) requests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created) + len(f.updates) + len(f.deleted)
}

func intRef(v int) *int {
	return &v
}

func strRef(v string) *string {
	return &v
}
