package usecase

import (
	"context"
	"strconv"
	"sync"

	"ads-dental-admin/internal/converter"
	"ads-dental-admin/internal/delivery/dto"
	"ads-dental-admin/internal/domain/entity"
	"ads-dental-admin/internal/domain/repository"
	"ads-dental-admin/internal/service"
	"ads-dental-admin/pkg/validator"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// WorkflowState is the state of the appointment modal.
type WorkflowState string

const (
	WorkflowClosed     WorkflowState = "closed"
	WorkflowLoading    WorkflowState = "loadingReferenceData"
	WorkflowEditing    WorkflowState = "editing"
	WorkflowSubmitting WorkflowState = "submitting"
)

// WorkflowMode tells a create form from an edit form.
type WorkflowMode string

const (
	WorkflowModeCreate WorkflowMode = "create"
	WorkflowModeEdit   WorkflowMode = "edit"
)

// Inline messages shown in the modal
const (
	MsgLoadFailed   = "Failed to load data"
	MsgCreateFailed = "Failed to create appointment"
	MsgUpdateFailed = "Failed to update appointment"
)

// AppointmentWorkflow drives the booking/editing modal:
// closed -> loadingReferenceData -> editing -> submitting -> closed | editing.
type AppointmentWorkflow interface {
	OpenCreate(ctx context.Context) (*dto.AppointmentWorkflowResponse, error)
	OpenEdit(ctx context.Context, appointment *entity.Appointment) (*dto.AppointmentWorkflowResponse, error)
	Bind(patch dto.AppointmentFormPatch) (*dto.AppointmentWorkflowResponse, error)
	Submit(ctx context.Context) (*dto.AppointmentWorkflowResponse, error)
	Close() *dto.AppointmentWorkflowResponse
	Snapshot() *dto.AppointmentWorkflowResponse
}

type appointmentWorkflow struct {
	log             *logrus.Logger
	validator       *validator.CustomValidator
	session         SessionUsecase
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	dentistRepo     repository.DentistRepository
	surgeryRepo     repository.SurgeryRepository
	audit           service.AuditService
	onSuccess       func(ctx context.Context)

	mu sync.Mutex
	// generation changes on every open and close; a response carrying an
	// older generation belongs to a modal that is gone.
	generation    uint64
	state         WorkflowState
	mode          WorkflowMode
	appointmentID int
	original      entity.AppointmentStatus
	form          dto.AppointmentForm
	patients      []entity.Patient
	dentists      []entity.Dentist
	surgeries     []entity.Surgery
	inlineError   string
}

// NewAppointmentWorkflow builds a closed workflow. onSuccess runs once after
// every successful submit, before the modal closes; it may be nil.
func NewAppointmentWorkflow(
	log *logrus.Logger,
	v *validator.CustomValidator,
	session SessionUsecase,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	dentistRepo repository.DentistRepository,
	surgeryRepo repository.SurgeryRepository,
	audit service.AuditService,
	onSuccess func(ctx context.Context),
) AppointmentWorkflow {
	return &appointmentWorkflow{
		log:             log,
		validator:       v,
		session:         session,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		dentistRepo:     dentistRepo,
		surgeryRepo:     surgeryRepo,
		audit:           audit,
		onSuccess:       onSuccess,
		state:           WorkflowClosed,
		form:            converter.EmptyAppointmentForm(),
	}
}

// OpenCreate resets the form with status BOOKED and loads the reference lists.
func (w *appointmentWorkflow) OpenCreate(ctx context.Context) (*dto.AppointmentWorkflowResponse, error) {
	session, err := w.requireRole(entity.RoleAdmin, entity.RolePatient)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	gen := w.reset()
	w.state = WorkflowLoading
	w.mode = WorkflowModeCreate
	w.mu.Unlock()

	return w.loadReferenceData(ctx, session.Token, gen), nil
}

// OpenEdit pre-populates the form from appointment. Only BOOKED appointments
// can be edited.
func (w *appointmentWorkflow) OpenEdit(ctx context.Context, appointment *entity.Appointment) (*dto.AppointmentWorkflowResponse, error) {
	session, err := w.requireRole(entity.RoleAdmin, entity.RolePatient)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if !appointment.IsBooked() {
		return nil, ErrAppointmentNotEditable
	}

	w.mu.Lock()
	gen := w.reset()
	w.state = WorkflowLoading
	w.mode = WorkflowModeEdit
	w.appointmentID = appointment.ID
	w.original = appointment.Status
	w.form = converter.AppointmentToForm(appointment)
	w.mu.Unlock()

	return w.loadReferenceData(ctx, session.Token, gen), nil
}

// Bind changes the fields present in patch. Binding is allowed while the
// reference lists are still loading.
func (w *appointmentWorkflow) Bind(patch dto.AppointmentFormPatch) (*dto.AppointmentWorkflowResponse, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case WorkflowClosed:
		return nil, ErrWorkflowClosed
	case WorkflowSubmitting:
		return nil, ErrWorkflowBusy
	}

	w.form = converter.ApplyFormPatch(w.form, patch)
	return w.snapshot(), nil
}

// Submit validates the form and sends it. A ValidationError means no request
// was issued. A backend failure keeps the modal open with an inline error.
// A save that lands after Close is still audited, but neither refetches nor
// touches the form opened since.
func (w *appointmentWorkflow) Submit(ctx context.Context) (*dto.AppointmentWorkflowResponse, error) {
	token := w.session.Token()
	if token == "" {
		return nil, ErrNoSession
	}

	w.mu.Lock()
	switch w.state {
	case WorkflowClosed:
		w.mu.Unlock()
		return nil, ErrWorkflowClosed
	case WorkflowLoading, WorkflowSubmitting:
		w.mu.Unlock()
		return nil, ErrWorkflowBusy
	}

	appointment, err := w.validate()
	if err != nil {
		w.mu.Unlock()
		return nil, err
	}

	gen := w.generation
	mode := w.mode
	actor := w.actor()
	id := w.appointmentID
	w.state = WorkflowSubmitting
	w.inlineError = ""
	w.mu.Unlock()

	var (
		saved   *entity.Appointment
		sendErr error
	)
	if mode == WorkflowModeCreate {
		saved, sendErr = w.appointmentRepo.Create(ctx, token, appointment)
	} else {
		saved, sendErr = w.appointmentRepo.Update(ctx, token, id, converter.AppointmentToPatch(appointment))
	}

	if sendErr != nil {
		w.log.Warnf("Failed to %s appointment: %+v", mode, sendErr)

		w.mu.Lock()
		defer w.mu.Unlock()
		if gen != w.generation {
			return nil, ErrWorkflowClosed
		}
		w.state = WorkflowEditing
		if mode == WorkflowModeCreate {
			w.inlineError = MsgCreateFailed
		} else {
			w.inlineError = MsgUpdateFailed
		}
		return w.snapshot(), sendErr
	}

	if mode == WorkflowModeCreate {
		savedID := ""
		if saved != nil {
			savedID = strconv.Itoa(saved.ID)
		}
		w.audit.LogCreate(ctx, actor, "appointment", savedID, appointment)
	} else {
		w.audit.LogUpdate(ctx, actor, "appointment", strconv.Itoa(id), appointment)
	}

	// The backend accepted it, but the modal it came from is gone.
	w.mu.Lock()
	stale := gen != w.generation
	w.mu.Unlock()
	if stale {
		w.log.Infof("Appointment %s saved after its form was closed", mode)
		return w.Snapshot(), nil
	}

	if w.onSuccess != nil {
		w.onSuccess(ctx)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if gen == w.generation {
		w.reset()
	}
	return w.snapshot(), nil
}

// Close discards the form. An in-flight request still completes and is
// audited, but it no longer touches the form.
func (w *appointmentWorkflow) Close() *dto.AppointmentWorkflowResponse {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reset()
	return w.snapshot()
}

func (w *appointmentWorkflow) Snapshot() *dto.AppointmentWorkflowResponse {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot()
}

// loadReferenceData fetches the three lists in parallel. Siblings are not
// cancelled when one fails; whatever arrived stays populated.
func (w *appointmentWorkflow) loadReferenceData(ctx context.Context, token string, gen uint64) *dto.AppointmentWorkflowResponse {
	var (
		g         errgroup.Group
		patients  []entity.Patient
		dentists  []entity.Dentist
		surgeries []entity.Surgery
	)

	g.Go(func() error {
		var err error
		patients, err = w.patientRepo.FindAll(ctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		dentists, err = w.dentistRepo.FindAll(ctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		surgeries, err = w.surgeryRepo.FindAll(ctx, token)
		return err
	})
	err := g.Wait()

	w.mu.Lock()
	defer w.mu.Unlock()

	if gen != w.generation {
		return w.snapshot()
	}

	w.patients = patients
	w.dentists = dentists
	w.surgeries = surgeries
	if err != nil {
		w.log.Warnf("Failed to load appointment reference data: %+v", err)
		w.inlineError = MsgLoadFailed
	}
	w.state = WorkflowEditing
	return w.snapshot()
}

// validate must be called with mu held.
func (w *appointmentWorkflow) validate() (*entity.Appointment, error) {
	fields := map[string]string{}
	if err := w.validator.Validate(w.form); err != nil {
		fields = w.validator.FormatValidationErrors(err)
	}

	status := entity.AppointmentStatus(w.form.Status)
	if _, ok := fields["status"]; !ok {
		switch w.mode {
		case WorkflowModeCreate:
			if status != entity.AppointmentStatusBooked {
				fields["status"] = "status must be BOOKED for a new appointment"
			}
		case WorkflowModeEdit:
			if err := entity.CanTransition(w.original, status); err != nil {
				fields["status"] = err.Error()
			}
		}
	}

	appointment, invalid := converter.FormToAppointment(w.form)
	for field, msg := range invalid {
		if _, ok := fields[field]; !ok {
			fields[field] = msg
		}
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	return appointment, nil
}

// reset must be called with mu held. It returns the new generation.
func (w *appointmentWorkflow) reset() uint64 {
	w.generation++
	w.state = WorkflowClosed
	w.mode = ""
	w.appointmentID = 0
	w.original = ""
	w.form = converter.EmptyAppointmentForm()
	w.patients = nil
	w.dentists = nil
	w.surgeries = nil
	w.inlineError = ""
	return w.generation
}

func (w *appointmentWorkflow) snapshot() *dto.AppointmentWorkflowResponse {
	return &dto.AppointmentWorkflowResponse{
		State:         string(w.state),
		Mode:          string(w.mode),
		AppointmentID: w.appointmentID,
		Form:          w.form,
		Patients:      nonNil(w.patients),
		Dentists:      nonNil(w.dentists),
		Surgeries:     nonNil(w.surgeries),
		Error:         w.inlineError,
	}
}

func (w *appointmentWorkflow) requireRole(roles ...string) (*entity.Session, error) {
	session, ok := w.session.Current()
	if !ok {
		return nil, ErrNoSession
	}
	if !session.User.Roles.HasAny(roles...) {
		return nil, ErrForbidden
	}
	return session, nil
}

func (w *appointmentWorkflow) actor() string {
	if session, ok := w.session.Current(); ok {
		return session.User.Username
	}
	return ""
}
