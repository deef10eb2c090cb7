package usecase

import (
	"context"

	"ads-dental-admin/internal/delivery/dto"
	"ads-dental-admin/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type SurgeryUsecase interface {
	GetSurgeries(ctx context.Context) (*dto.SurgeryListResponse, error)
}

type surgeryUsecase struct {
	log         *logrus.Logger
	session     SessionUsecase
	surgeryRepo repository.SurgeryRepository
}

func NewSurgeryUsecase(log *logrus.Logger, session SessionUsecase, surgeryRepo repository.SurgeryRepository) SurgeryUsecase {
	return &surgeryUsecase{
		log:         log,
		session:     session,
		surgeryRepo: surgeryRepo,
	}
}

func (u *surgeryUsecase) GetSurgeries(ctx context.Context) (*dto.SurgeryListResponse, error) {
	s, err := currentSession(u.session, SurgeriesPageRoles...)
	if err != nil {
		return nil, err
	}

	surgeries, err := u.surgeryRepo.FindAll(ctx, s.Token)
	if err != nil {
		u.log.Warnf("Failed to find all surgeries: %+v", err)
		return nil, err
	}

	return &dto.SurgeryListResponse{
		Surgeries: nonNil(surgeries),
		Total:     len(surgeries),
	}, nil
}
