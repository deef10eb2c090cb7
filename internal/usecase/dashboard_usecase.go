package usecase

import (
	"context"

	"ads-dental-admin/internal/delivery/dto"
	"ads-dental-admin/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type DashboardUsecase interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	log             *logrus.Logger
	session         SessionUsecase
	patientRepo     repository.PatientRepository
	dentistRepo     repository.DentistRepository
	appointmentRepo repository.AppointmentRepository
	surgeryRepo     repository.SurgeryRepository
}

func NewDashboardUsecase(
	log *logrus.Logger,
	session SessionUsecase,
	patientRepo repository.PatientRepository,
	dentistRepo repository.DentistRepository,
	appointmentRepo repository.AppointmentRepository,
	surgeryRepo repository.SurgeryRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		log:             log,
		session:         session,
		patientRepo:     patientRepo,
		dentistRepo:     dentistRepo,
		appointmentRepo: appointmentRepo,
		surgeryRepo:     surgeryRepo,
	}
}

// GetDashboard builds the role cards. Counts are fetched for admins only;
// a failed count fetch keeps the cards and reports MsgLoadFailed.
func (u *dashboardUsecase) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	s, err := currentSession(u.session)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{Cards: []dto.DashboardCard{}}

	if s.User.IsAdmin() {
		stats, err := u.loadStats(ctx, s.Token)
		if err != nil {
			u.log.Warnf("Failed to load dashboard stats: %+v", err)
			resp.Error = MsgLoadFailed
		}
		resp.Stats = stats
		resp.Cards = append(resp.Cards,
			dto.DashboardCard{Title: "Total Patients", Value: intPtr(stats.Patients)},
			dto.DashboardCard{Title: "Total Dentists", Value: intPtr(stats.Dentists)},
			dto.DashboardCard{Title: "Appointments", Value: intPtr(stats.Appointments)},
			dto.DashboardCard{Title: "Surgeries", Value: intPtr(stats.Surgeries)},
		)
	}
	if s.User.IsDentist() {
		resp.Cards = append(resp.Cards, dto.DashboardCard{
			Title: "Your Appointments",
			Body:  "View and manage your scheduled appointments.",
		})
	}
	if s.User.IsPatient() {
		resp.Cards = append(resp.Cards, dto.DashboardCard{
			Title: "Welcome Back!",
			Body:  "Book a new appointment or view your upcoming visits.",
		})
	}

	return resp, nil
}

// loadStats always returns non-nil stats; counts that failed stay zero.
func (u *dashboardUsecase) loadStats(ctx context.Context, token string) (*dto.DashboardStats, error) {
	var (
		g     errgroup.Group
		stats dto.DashboardStats
	)

	g.Go(func() error {
		patients, err := u.patientRepo.FindAll(ctx, token)
		stats.Patients = len(patients)
		return err
	})
	g.Go(func() error {
		dentists, err := u.dentistRepo.FindAll(ctx, token)
		stats.Dentists = len(dentists)
		return err
	})
	g.Go(func() error {
		appointments, err := u.appointmentRepo.FindAll(ctx, token)
		stats.Appointments = len(appointments)
		return err
	})
	g.Go(func() error {
		surgeries, err := u.surgeryRepo.FindAll(ctx, token)
		stats.Surgeries = len(surgeries)
		return err
	})

	err := g.Wait()
	return &stats, err
}

func intPtr(v int) *int {
	return &v
}
