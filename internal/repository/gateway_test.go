package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"ads-dental-admin/config"
	"ads-dental-admin/internal/domain/entity"
	"ads-dental-admin/internal/infrastructure/backend"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackendClient(t *testing.T, handler http.HandlerFunc) *backend.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	log := logrus.New()
	log.SetOutput(io.Discard)
	return backend.NewClient(config.BackendConfig{BaseURL: ts.URL}, log, nil)
}

func TestPatientRepository_FindAll(t *testing.T) {
	client := newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/patients", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"patient_no":1,"first_name":"Ann","last_name":"Smith","email":"a@x.io","phone":"1","address":{"id":2,"street":"Main","city":"Iowa City","state":"IA","zip_code":"52240"}}]`))
	})

	patients, err := NewPatientRepository(client).FindAll(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, "Ann Smith", patients[0].FullName())
	require.NotNil(t, patients[0].Address)
	assert.Equal(t, "Iowa City", patients[0].Address.City)
}

func TestPatientRepository_FindAllRejectsMissingIdentity(t *testing.T) {
	client := newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"patient_no":1,"first_name":"A"},{"first_name":"B"}]`))
	})

	_, err := NewPatientRepository(client).FindAll(context.Background(), "tok")

	var reqErr *backend.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, backend.KindPatient, reqErr.EntityKind)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestPatientRepository_UpdateAndDelete(t *testing.T) {
	var calls []string
	client := newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodPut {
			var p entity.Patient
			require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
			assert.Equal(t, "Bob", p.FirstName)
			_, _ = w.Write([]byte(`{"patient_no":9,"first_name":"Bob"}`))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	repo := NewPatientRepository(client)

	updated, err := repo.Update(context.Background(), "tok", 9, &entity.Patient{FirstName: "Bob"})
	require.NoError(t, err)
	assert.Equal(t, 9, updated.PatientNo)

	require.NoError(t, repo.Delete(context.Background(), "tok", 9))
	assert.Equal(t, []string{"PUT /patients/9", "DELETE /patients/9"}, calls)
}

func TestAppointmentRepository_UpdateSendsOnlyPatchedFields(t *testing.T) {
	client := newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/appointments/12", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"status":"COMPLETED"}`, string(body))
		_, _ = w.Write([]byte(`{"id":12,"status":"COMPLETED"}`))
	})

	updated, err := NewAppointmentRepository(client).Update(context.Background(), "tok", 12, entity.StatusPatch(entity.AppointmentStatusCompleted))
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusCompleted, updated.Status)
}

func TestAppointmentRepository_CreateFailure(t *testing.T) {
	client := newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	_, err := NewAppointmentRepository(client).Create(context.Background(), "tok", &entity.Appointment{})

	var reqErr *backend.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, backend.OpCreate, reqErr.Operation)
	assert.Equal(t, backend.KindAppointment, reqErr.EntityKind)
}

func TestReadOnlyRepositories(t *testing.T) {
	client := newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/dentists":
			_, _ = w.Write([]byte(`[{"id":5,"first_name":"Dee","specialization":"Ortho"}]`))
		case "/surgeries":
			_, _ = w.Write([]byte(`[{"surgery_no":2,"name":"Downtown"}]`))
		case "/addresses":
			_, _ = w.Write([]byte(`[{"id":1,"city":"Ames","state":"IA"}]`))
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	dentists, err := NewDentistRepository(client).FindAll(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "Ortho", dentists[0].Specialization)

	surgeries, err := NewSurgeryRepository(client).FindAll(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, 2, surgeries[0].SurgeryNo)

	addresses, err := NewAddressRepository(client).FindAll(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "Ames", addresses[0].City)
}

func TestAuthRepository_Login(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantRoles entity.RoleSet
		wantEmail string
	}{
		{"flat roles", `{"access_token":"t","roles":["ADMIN"]}`, entity.RoleSet{"ADMIN"}, ""},
		{"nested user", `{"access_token":"t","user":{"email":"d@x.io","roles":["DENTIST"]}}`, entity.RoleSet{"DENTIST"}, "d@x.io"},
		{"no roles", `{"access_token":"t"}`, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/auth/login", r.URL.Path)
				require.NoError(t, r.ParseForm())
				assert.Equal(t, "ann", r.PostForm.Get("username"))
				assert.Equal(t, "secret", r.PostForm.Get("password"))
				_, _ = w.Write([]byte(tt.body))
			})

			result, err := NewAuthRepository(client).Login(context.Background(), "ann", "secret")
			require.NoError(t, err)
			assert.Equal(t, "t", result.AccessToken)
			assert.Equal(t, tt.wantRoles, result.Roles)
			assert.Equal(t, tt.wantEmail, result.Email)
		})
	}
}

func TestAuthRepository_LoginWithoutToken(t *testing.T) {
	client := newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token_type":"bearer"}`))
	})

	_, err := NewAuthRepository(client).Login(context.Background(), "ann", "secret")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestAuthRepository_Register(t *testing.T) {
	client := newBackendClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"username":"ann","email":"ann@example.com","password":"pw","role":"PATIENT"}`, string(body))
		w.WriteHeader(http.StatusCreated)
	})

	err := NewAuthRepository(client).Register(context.Background(), "ann", "ann@example.com", "pw", "PATIENT")
	require.NoError(t, err)
}
